package event

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleEvents() []Event {
	return []Event{
		{ID: 1, Name: "Jazz Night", Description: "Live jazz downtown", Category: "Music",
			Date: date("2026-10-01"), Time: TimeOfDay{19, 30}, Venue: "The Pageant",
			CityZip: "63112", Price: decimal.NewFromFloat(25), ApprovalStatus: StatusApproved},
		{ID: 2, Name: "Food Truck Friday", Description: "Street food festival", Category: "Food",
			Date: date("2026-09-05"), Time: TimeOfDay{11, 0}, Venue: "Tower Grove Park",
			CityZip: "63110", Price: decimal.NewFromFloat(5), ApprovalStatus: StatusPending},
		{ID: 3, Name: "Art Fair", Description: "Local artists and jazz bands", Category: "Art",
			Date: date("2025-06-15"), Time: TimeOfDay{9, 0}, Venue: "Laumeier Park",
			CityZip: "63127", Price: decimal.NewFromFloat(12.5), ApprovalStatus: StatusRejected},
		{ID: 4, Name: "Tech Meetup", Description: "Monthly developer meetup", Category: "Tech",
			Date: date("2026-11-20"), Time: TimeOfDay{18, 0}, Venue: "Cortex", CityZip: "63110",
			Price: decimal.NewFromFloat(10), ApprovalStatus: StatusApproved},
	}
}

func TestApplyStatusFilterSubset(t *testing.T) {
	events := sampleEvents()

	for _, status := range []string{StatusAll, StatusApproved, StatusPending, StatusRejected} {
		got := Apply(events, Query{Status: status}, time.Now())
		if len(got) > len(events) {
			t.Fatalf("filter %q produced %d events from %d", status, len(got), len(events))
		}
		for _, ev := range got {
			if status != StatusAll && ev.ApprovalStatus != status {
				t.Errorf("filter %q kept event %d with status %q", status, ev.ID, ev.ApprovalStatus)
			}
		}
	}

	if got := Apply(events, Query{Status: StatusAll}, time.Now()); len(got) != len(events) {
		t.Errorf("All filter dropped events: got %d, want %d", len(got), len(events))
	}
}

func TestApplyStatusFilterCaseSensitive(t *testing.T) {
	events := sampleEvents()
	if got := Apply(events, Query{Status: "approved"}, time.Now()); len(got) != 0 {
		t.Errorf("lowercase status matched %d events, want 0", len(got))
	}
}

func TestApplySearch(t *testing.T) {
	events := sampleEvents()

	got := Apply(events, Query{Search: "JAZZ"}, time.Now())
	if len(got) != 2 {
		t.Fatalf("search JAZZ: got %d events, want 2", len(got))
	}
	for _, ev := range got {
		if ev.ID != 1 && ev.ID != 3 {
			t.Errorf("search JAZZ matched unexpected event %d", ev.ID)
		}
	}

	if got := Apply(events, Query{Search: ""}, time.Now()); len(got) != len(events) {
		t.Errorf("empty search changed the set: got %d, want %d", len(got), len(events))
	}
}

func TestApplySearchAfterStatusFilter(t *testing.T) {
	events := sampleEvents()
	got := Apply(events, Query{Status: StatusApproved, Search: "jazz"}, time.Now())
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("status+search: got %v, want only event 1", ids(got))
	}
}

func TestApplySortAndReverse(t *testing.T) {
	events := sampleEvents()

	asc := Apply(events, Query{SortColumn: ColumnPrice, SortDir: Ascending}, time.Now())
	want := []int{2, 4, 3, 1}
	if !equalIDs(asc, want) {
		t.Fatalf("price ascending: got %v, want %v", ids(asc), want)
	}

	desc := Apply(events, Query{SortColumn: ColumnPrice, SortDir: Descending}, time.Now())
	for i := range want {
		if desc[i].ID != want[len(want)-1-i] {
			t.Fatalf("price descending: got %v, want reverse of %v", ids(desc), want)
		}
	}
}

func TestApplySortColumns(t *testing.T) {
	events := sampleEvents()

	cases := []struct {
		col  Column
		want []int
	}{
		{ColumnID, []int{1, 2, 3, 4}},
		{ColumnName, []int{3, 2, 1, 4}},
		{ColumnDate, []int{3, 2, 1, 4}},
		{ColumnTime, []int{3, 2, 4, 1}},
		{ColumnStatus, []int{1, 4, 2, 3}},
	}
	for _, tc := range cases {
		got := Apply(events, Query{SortColumn: tc.col, SortDir: Ascending}, time.Now())
		if !equalIDs(got, tc.want) {
			t.Errorf("sort by %s: got %v, want %v", tc.col, ids(got), tc.want)
		}
	}
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	events := sampleEvents()
	Apply(events, Query{SortColumn: ColumnName, SortDir: Descending}, time.Now())
	if !equalIDs(events, []int{1, 2, 3, 4}) {
		t.Fatalf("source order changed: %v", ids(events))
	}
}

func TestQueryToggle(t *testing.T) {
	var q Query

	q = q.Toggle(ColumnName)
	if q.SortColumn != ColumnName || q.SortDir != Ascending {
		t.Fatalf("first click: got %v %v", q.SortColumn, q.SortDir)
	}

	q = q.Toggle(ColumnName)
	if q.SortDir != Descending {
		t.Fatalf("second click on same column should flip to descending")
	}

	q = q.Toggle(ColumnPrice)
	if q.SortColumn != ColumnPrice || q.SortDir != Ascending {
		t.Fatalf("different column should reset to ascending, got %v %v", q.SortColumn, q.SortDir)
	}
}

func TestApplyPastOnly(t *testing.T) {
	events := sampleEvents()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	got := Apply(events, Query{PastOnly: true, Status: StatusApproved, Search: "nomatch"}, now)
	if !equalIDs(got, []int{3}) {
		t.Fatalf("past events: got %v, want [3] (status and search must be ignored)", ids(got))
	}
}

func TestCountByStatus(t *testing.T) {
	c := CountByStatus(sampleEvents())
	if c.All != 4 || c.Approved != 2 || c.Pending != 1 || c.Rejected != 1 {
		t.Fatalf("counts: got %+v", c)
	}
}

func TestApplyPublicFilters(t *testing.T) {
	events := sampleEvents()

	got := ApplyPublic(events, FilterQuery{Category: "Music"}, "")
	if !equalIDs(got, []int{1}) {
		t.Fatalf("category filter: got %v", ids(got))
	}

	got = ApplyPublic(events, FilterQuery{StartDate: "2026-09-01", EndDate: "2026-10-31"}, "")
	if !equalIDs(got, []int{1, 2}) {
		t.Fatalf("date range: got %v", ids(got))
	}

	got = ApplyPublic(events, FilterQuery{Venue: "park"}, "")
	if !equalIDs(got, []int{2, 3}) {
		t.Fatalf("venue filter: got %v", ids(got))
	}

	got = ApplyPublic(events, FilterQuery{MinPrice: "10", MaxPrice: "20"}, "")
	if !equalIDs(got, []int{3, 4}) {
		t.Fatalf("price range: got %v", ids(got))
	}

	// Only one bound set: the range is inactive.
	got = ApplyPublic(events, FilterQuery{MinPrice: "10"}, "")
	if len(got) != len(events) {
		t.Fatalf("half-open price range should be inactive, got %v", ids(got))
	}

	got = ApplyPublic(events, FilterQuery{}, "cortex")
	if !equalIDs(got, []int{4}) {
		t.Fatalf("public search by venue: got %v", ids(got))
	}
}

func TestSearchSubmissions(t *testing.T) {
	events := sampleEvents()

	got := SearchSubmissions(events, "food")
	if !equalIDs(got, []int{2}) {
		t.Fatalf("search by name/category: got %v", ids(got))
	}

	got = SearchSubmissions(events, "tech")
	if !equalIDs(got, []int{4}) {
		t.Fatalf("search by category: got %v", ids(got))
	}

	if got := SearchSubmissions(events, "  "); len(got) != len(events) {
		t.Fatalf("blank search should be a no-op, got %d", len(got))
	}
}

func ids(events []Event) []int {
	out := make([]int, len(events))
	for i, ev := range events {
		out[i] = ev.ID
	}
	return out
}

func equalIDs(events []Event, want []int) bool {
	if len(events) != len(want) {
		return false
	}
	for i, ev := range events {
		if ev.ID != want[i] {
			return false
		}
	}
	return true
}
