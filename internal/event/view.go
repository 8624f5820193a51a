package event

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Column identifies a sortable table column.
type Column string

const (
	ColumnID       Column = "id"
	ColumnName     Column = "eventName"
	ColumnCategory Column = "eventCategory"
	ColumnDate     Column = "eventDate"
	ColumnTime     Column = "eventTime"
	ColumnVenue    Column = "eventLocation"
	ColumnZip      Column = "eventCityzip"
	ColumnPrice    Column = "eventPrice"
	ColumnStatus   Column = "approvalStatus"
)

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// StatusAll passes every event through the status filter.
const StatusAll = "All"

// Query describes one derived view of the event collection. The zero
// value is the unfiltered, unsorted view.
type Query struct {
	Status     string
	Search     string
	SortColumn Column
	SortDir    Direction
	PastOnly   bool
}

// Toggle returns the query after a click on col: the same column flips
// direction, a different column sorts ascending.
func (q Query) Toggle(col Column) Query {
	if q.SortColumn == col && q.SortDir == Ascending {
		q.SortDir = Descending
	} else {
		q.SortDir = Ascending
	}
	q.SortColumn = col
	return q
}

// Apply derives the filtered, ordered view from events. The input slice
// is never mutated; the pipeline is source -> status filter -> search ->
// sort. PastOnly is a mutually exclusive view mode that keeps events
// strictly before now and ignores the status filter and search text.
func Apply(events []Event, q Query, now time.Time) []Event {
	var out []Event

	if q.PastOnly {
		for _, ev := range events {
			if ev.Date.Before(now) {
				out = append(out, ev)
			}
		}
	} else {
		out = filterStatus(events, q.Status)
		out = filterSearch(out, q.Search)
	}

	sortEvents(out, q.SortColumn, q.SortDir)
	return out
}

func filterStatus(events []Event, status string) []Event {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if status == "" || status == StatusAll || ev.ApprovalStatus == status {
			out = append(out, ev)
		}
	}
	return out
}

func filterSearch(events []Event, search string) []Event {
	term := strings.ToLower(search)
	if term == "" {
		return events
	}
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if strings.Contains(strings.ToLower(ev.Name), term) ||
			strings.Contains(strings.ToLower(ev.Description), term) {
			out = append(out, ev)
		}
	}
	return out
}

func sortEvents(events []Event, col Column, dir Direction) {
	if col == "" {
		return
	}
	sort.SliceStable(events, func(i, j int) bool {
		c := compare(events[i], events[j], col)
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
}

// compare is the three-way comparison behind every column sort.
func compare(a, b Event, col Column) int {
	switch col {
	case ColumnID:
		return a.ID - b.ID
	case ColumnName:
		return strings.Compare(a.Name, b.Name)
	case ColumnCategory:
		return strings.Compare(a.Category, b.Category)
	case ColumnDate:
		return a.Date.Compare(b.Date.Time)
	case ColumnTime:
		return a.Time.Minutes() - b.Time.Minutes()
	case ColumnVenue:
		return strings.Compare(a.Venue, b.Venue)
	case ColumnZip:
		return strings.Compare(a.CityZip, b.CityZip)
	case ColumnPrice:
		return a.Price.Cmp(b.Price)
	case ColumnStatus:
		return strings.Compare(a.ApprovalStatus, b.ApprovalStatus)
	default:
		return 0
	}
}

// Counts holds the dashboard tile numbers.
type Counts struct {
	All      int
	Approved int
	Pending  int
	Rejected int
}

// CountByStatus tallies the tile counts from the full collection.
func CountByStatus(events []Event) Counts {
	c := Counts{All: len(events)}
	for _, ev := range events {
		switch ev.ApprovalStatus {
		case StatusApproved:
			c.Approved++
		case StatusPending:
			c.Pending++
		case StatusRejected:
			c.Rejected++
		}
	}
	return c
}

// FilterQuery describes the public browser's extended filters. Empty
// fields are inactive; price bounds are only applied when both are set,
// and likewise for the date range.
type FilterQuery struct {
	Category  string
	StartDate string
	EndDate   string
	Venue     string
	MinPrice  string
	MaxPrice  string
}

// ApplyPublic derives the public listing view: extended filters first,
// then the free-text search over name, venue and category.
func ApplyPublic(events []Event, f FilterQuery, search string) []Event {
	out := make([]Event, 0, len(events))
	out = append(out, events...)

	if f.Category != "" {
		out = keep(out, func(ev Event) bool { return ev.Category == f.Category })
	}
	if start, err1 := ParseDate(f.StartDate); err1 == nil {
		if end, err2 := ParseDate(f.EndDate); err2 == nil {
			out = keep(out, func(ev Event) bool {
				return !ev.Date.Before(start.Time) && !ev.Date.After(end.Time)
			})
		}
	}
	if f.Venue != "" {
		venue := strings.ToLower(f.Venue)
		out = keep(out, func(ev Event) bool {
			return strings.Contains(strings.ToLower(ev.Venue), venue)
		})
	}
	if lo, ok1 := parsePrice(f.MinPrice); ok1 {
		if hi, ok2 := parsePrice(f.MaxPrice); ok2 {
			out = keep(out, func(ev Event) bool {
				return ev.Price.Cmp(lo) >= 0 && ev.Price.Cmp(hi) <= 0
			})
		}
	}

	if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
		out = keep(out, func(ev Event) bool {
			return strings.Contains(strings.ToLower(ev.Name), term) ||
				strings.Contains(strings.ToLower(ev.Venue), term) ||
				strings.Contains(strings.ToLower(ev.Category), term)
		})
	}

	return out
}

// SearchSubmissions filters a user's submissions by name or category,
// case-insensitively. An empty term returns the input unchanged.
func SearchSubmissions(events []Event, text string) []Event {
	term := strings.ToLower(strings.TrimSpace(text))
	if term == "" {
		return events
	}
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if strings.Contains(strings.ToLower(ev.Name), term) ||
			strings.Contains(strings.ToLower(ev.Category), term) {
			out = append(out, ev)
		}
	}
	return out
}

func parsePrice(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func keep(events []Event, pred func(Event) bool) []Event {
	out := events[:0]
	for _, ev := range events {
		if pred(ev) {
			out = append(out, ev)
		}
	}
	return out
}
