package event

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTimeOfDayJSON(t *testing.T) {
	got, err := json.Marshal(TimeOfDay{19, 30})
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "[19,30]" {
		t.Fatalf("marshal: got %s, want [19,30]", got)
	}

	var tod TimeOfDay
	if err := json.Unmarshal([]byte("[9,5]"), &tod); err != nil {
		t.Fatal(err)
	}
	if tod.Hour != 9 || tod.Minute != 5 {
		t.Fatalf("unmarshal: got %+v", tod)
	}

	if err := json.Unmarshal([]byte("[9]"), &tod); err == nil {
		t.Fatal("single-element array should not unmarshal")
	}

	if err := json.Unmarshal([]byte("null"), &tod); err != nil {
		t.Fatalf("null should unmarshal to the zero value: %v", err)
	}
	if !tod.IsZero() {
		t.Fatalf("null gave %+v", tod)
	}
}

func TestTimeOfDayString(t *testing.T) {
	cases := []struct {
		tod  TimeOfDay
		want string
	}{
		{TimeOfDay{19, 30}, "7:30 PM"},
		{TimeOfDay{0, 5}, "12:05 AM"},
		{TimeOfDay{12, 0}, "12:00 PM"},
	}
	for _, tc := range cases {
		if got := tc.tod.String(); got != tc.want {
			t.Errorf("%+v: got %q, want %q", tc.tod, got, tc.want)
		}
	}
}

func TestDateJSONLayouts(t *testing.T) {
	for _, wire := range []string{
		`"2026-10-01"`,
		`"2026-10-01T00:00:00Z"`,
		`"2026-10-01T00:00:00"`,
	} {
		var d Date
		if err := json.Unmarshal([]byte(wire), &d); err != nil {
			t.Fatalf("unmarshal %s: %v", wire, err)
		}
		if d.Year() != 2026 || d.Month() != 10 || d.Day() != 1 {
			t.Errorf("unmarshal %s: got %v", wire, d)
		}
	}

	var d Date
	if err := json.Unmarshal([]byte(`"10/01/2026"`), &d); err == nil {
		t.Fatal("slash-formatted date should not unmarshal")
	}

	d, err := ParseDate("2026-10-01")
	if err != nil {
		t.Fatal(err)
	}
	got, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `"2026-10-01"` {
		t.Fatalf("marshal: got %s", got)
	}
}

func TestEventJSONRoundTrip(t *testing.T) {
	wire := `{
		"id": 12,
		"eventName": "Jazz Night",
		"description": "Live jazz downtown",
		"eventCategory": "Music",
		"eventDate": "2026-10-01",
		"eventTime": [19, 30],
		"eventLocation": "The Pageant",
		"eventCityzip": "63112",
		"eventPrice": 25.5,
		"approvalStatus": "Approved"
	}`

	var ev Event
	if err := json.Unmarshal([]byte(wire), &ev); err != nil {
		t.Fatal(err)
	}
	if ev.ID != 12 || ev.Name != "Jazz Night" || ev.CityZip != "63112" {
		t.Fatalf("unmarshal: got %+v", ev)
	}
	if !ev.Price.Equal(decimal.NewFromFloat(25.5)) {
		t.Fatalf("price: got %s", ev.Price)
	}
	if ev.Time.Hour != 19 || ev.Time.Minute != 30 {
		t.Fatalf("time: got %+v", ev.Time)
	}

	out, err := json.Marshal(ev)
	if err != nil {
		t.Fatal(err)
	}
	var back Event
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	assertSameEvent(t, back, ev)
}

// assertSameEvent compares field by field; Price holds a pointer
// internally, so struct equality is not usable.
func assertSameEvent(t *testing.T, got, want Event) {
	t.Helper()
	if got.ID != want.ID || got.Name != want.Name || got.Description != want.Description ||
		got.Category != want.Category || got.Venue != want.Venue ||
		got.CityZip != want.CityZip || got.ApprovalStatus != want.ApprovalStatus {
		t.Fatalf("event fields differ:\n got %+v\nwant %+v", got, want)
	}
	if got.Time != want.Time {
		t.Fatalf("time differs: got %+v, want %+v", got.Time, want.Time)
	}
	if !got.Date.Equal(want.Date.Time) {
		t.Fatalf("date differs: got %v, want %v", got.Date, want.Date)
	}
	if !got.Price.Equal(want.Price) {
		t.Fatalf("price differs: got %s, want %s", got.Price, want.Price)
	}
}

func TestDraftRoundTrip(t *testing.T) {
	orig := Event{
		ID:             3,
		Name:           "Art Fair",
		Description:    "Local artists",
		Category:       "Art",
		Date:           mustDate(t, "2026-06-15"),
		Time:           TimeOfDay{9, 0},
		Venue:          "Laumeier Park",
		CityZip:        "63127",
		Price:          decimal.RequireFromString("12.5"),
		ApprovalStatus: StatusPending,
	}

	d := NewDraft(orig)
	if d.Date != "2026-06-15" || d.Time != "09:00" || d.Price != "12.5" {
		t.Fatalf("draft seeding: got %+v", d)
	}

	back, err := d.ToEvent()
	if err != nil {
		t.Fatal(err)
	}
	assertSameEvent(t, back, orig)
}

func TestDraftToEventRejectsBadFields(t *testing.T) {
	d := NewDraft(Event{Price: decimal.NewFromInt(1)})
	d.Date = "not-a-date"
	d.Time = "09:00"
	if _, err := d.ToEvent(); err == nil {
		t.Fatal("bad date should not convert")
	}

	d.Date = "2026-06-15"
	d.Time = "9 am"
	if _, err := d.ToEvent(); err == nil {
		t.Fatal("bad time should not convert")
	}
}

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
