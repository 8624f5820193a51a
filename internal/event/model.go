package event

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Approval states as the backend spells them.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Event mirrors the backend event resource. The server owns the
// canonical copy; every value here is a read-through snapshot.
type Event struct {
	ID             int             `json:"id"`
	Name           string          `json:"eventName"`
	Description    string          `json:"description"`
	Category       string          `json:"eventCategory"`
	Date           Date            `json:"eventDate"`
	Time           TimeOfDay       `json:"eventTime"`
	Venue          string          `json:"eventLocation"`
	CityZip        string          `json:"eventCityzip"`
	Price          decimal.Decimal `json:"eventPrice"`
	ApprovalStatus string          `json:"approvalStatus"`
	Image          string          `json:"eventImage,omitempty"`
	ImageMimeType  string          `json:"imageMimeType,omitempty"`
}

// TimeOfDay is an hour/minute pair. The backend serializes it as a
// two-element JSON array [hour, minute].
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{t.Hour, t.Minute})
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = TimeOfDay{}
		return nil
	}
	var parts []int
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("event time: %w", err)
	}
	if len(parts) != 2 {
		return fmt.Errorf("event time: expected [hour, minute], got %d elements", len(parts))
	}
	t.Hour, t.Minute = parts[0], parts[1]
	return nil
}

// IsZero reports whether the time was never set.
func (t TimeOfDay) IsZero() bool {
	return t.Hour == 0 && t.Minute == 0
}

// String formats the time for table cells, e.g. "7:30 PM".
func (t TimeOfDay) String() string {
	ref := time.Date(0, 1, 1, t.Hour, t.Minute, 0, 0, time.UTC)
	return ref.Format("3:04 PM")
}

// Minutes returns the offset from midnight, the sort key for time columns.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Date is a calendar date. The backend is inconsistent about the wire
// form (bare "2006-01-02" from forms, RFC3339 timestamps from JPA), so
// unmarshaling accepts both.
type Date struct {
	time.Time
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// ParseDate parses a date from any accepted wire layout.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return Date{Time: ts}, nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format("2006-01-02"))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("event date: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("event date: %w", err)
	}
	*d = parsed
	return nil
}

// Draft is a working copy of one event under edit. It never touches the
// collection until a save round-trips through the server.
type Draft struct {
	ID             int
	Name           string
	Description    string
	Category       string
	Date           string
	Time           string
	Venue          string
	CityZip        string
	Price          string
	ApprovalStatus string
}

// NewDraft seeds a draft from an event snapshot.
func NewDraft(ev Event) Draft {
	d := Draft{
		ID:             ev.ID,
		Name:           ev.Name,
		Description:    ev.Description,
		Category:       ev.Category,
		Venue:          ev.Venue,
		CityZip:        ev.CityZip,
		Price:          ev.Price.String(),
		ApprovalStatus: ev.ApprovalStatus,
	}
	if !ev.Date.IsZero() {
		d.Date = ev.Date.Format("2006-01-02")
	}
	if !ev.Time.IsZero() {
		d.Time = fmt.Sprintf("%02d:%02d", ev.Time.Hour, ev.Time.Minute)
	}
	return d
}

// ToEvent converts a validated draft back into the wire shape. Call
// Validate first; conversion assumes the fields parse.
func (d Draft) ToEvent() (Event, error) {
	date, err := ParseDate(strings.TrimSpace(d.Date))
	if err != nil {
		return Event{}, err
	}
	tod, err := parseTimeOfDay(strings.TrimSpace(d.Time))
	if err != nil {
		return Event{}, err
	}
	price, err := decimal.NewFromString(strings.TrimSpace(d.Price))
	if err != nil {
		return Event{}, fmt.Errorf("parse price %q: %w", d.Price, err)
	}
	return Event{
		ID:             d.ID,
		Name:           strings.TrimSpace(d.Name),
		Description:    strings.TrimSpace(d.Description),
		Category:       strings.TrimSpace(d.Category),
		Date:           date,
		Time:           tod,
		Venue:          strings.TrimSpace(d.Venue),
		CityZip:        strings.TrimSpace(d.CityZip),
		Price:          price,
		ApprovalStatus: strings.TrimSpace(d.ApprovalStatus),
	}, nil
}

func parseTimeOfDay(s string) (TimeOfDay, error) {
	ts, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return TimeOfDay{Hour: ts.Hour(), Minute: ts.Minute()}, nil
}

// Submission holds the new-event form fields plus the image to upload.
// The approval status is not part of the form; creation always starts
// an event as Pending.
type Submission struct {
	Name        string
	Description string
	Category    string
	Date        string
	Time        string
	Venue       string
	CityZip     string
	Price       string
	ImagePath   string
}
