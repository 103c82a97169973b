package validate

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestCheck_TextAndName(t *testing.T) {
	value, err := Check(KindName, "  Jane Doe  ")
	if err != nil {
		t.Fatal(err)
	}
	if value != "Jane Doe" {
		t.Fatalf("expected trimmed value, got %q", value)
	}
	if _, err := Check(KindText, "   "); ReasonOf(err) != ReasonEmpty {
		t.Fatalf("expected empty rejection, got %v", err)
	}
	if _, err := Check(KindText, strings.Repeat("x", 501)); ReasonOf(err) != ReasonTooLong {
		t.Fatalf("expected too_long rejection, got %v", err)
	}
}

func TestCheck_Email(t *testing.T) {
	value, err := Check(KindEmail, "Jane.Doe@Example.COM")
	if err != nil {
		t.Fatal(err)
	}
	if value != "jane.doe@example.com" {
		t.Fatalf("expected lowercased email, got %q", value)
	}
	for _, bad := range []string{"jane", "jane@", "@example.com", "jane@example", "jane doe@example.com"} {
		if _, err := Check(KindEmail, bad); ReasonOf(err) != ReasonBadEmail {
			t.Fatalf("%q: expected bad_email rejection, got %v", bad, err)
		}
	}
}

func TestCheck_Phone(t *testing.T) {
	for _, good := range []string{"+1 555 123 4567", "0501234567", "555-123-4567"} {
		if _, err := Check(KindPhone, good); err != nil {
			t.Fatalf("%q: unexpected rejection: %v", good, err)
		}
	}
	for _, bad := range []string{"12345", "call me", "+1 555 abc"} {
		if _, err := Check(KindPhone, bad); ReasonOf(err) != ReasonBadPhone {
			t.Fatalf("%q: expected bad_phone rejection, got %v", bad, err)
		}
	}
}

func TestCheck_Dates(t *testing.T) {
	for _, good := range []string{"2020-01", "2020-12", "1999"} {
		value, err := Check(KindDate, good)
		if err != nil {
			t.Fatalf("%q: unexpected rejection: %v", good, err)
		}
		if value != good {
			t.Fatalf("%q: value changed to %q", good, value)
		}
	}
	for _, bad := range []string{"2020-13", "2020-00", "20-01", "January 2020"} {
		if _, err := Check(KindDate, bad); ReasonOf(err) != ReasonBadDate {
			t.Fatalf("%q: expected bad_date rejection, got %v", bad, err)
		}
	}
	if _, err := Check(KindDate, "1899"); ReasonOf(err) != ReasonOutOfRange {
		t.Fatalf("expected out_of_range for 1899, got %v", err)
	}
	future := fmt.Sprintf("%d", time.Now().Year()+2)
	if _, err := Check(KindDate, future); ReasonOf(err) != ReasonOutOfRange {
		t.Fatalf("expected out_of_range for %s, got %v", future, err)
	}
}

func TestCheck_EndDatePresentMarkers(t *testing.T) {
	for _, raw := range []string{"present", "Present", "now", "current", "الآن", "حاليا"} {
		value, err := Check(KindEndDate, raw)
		if err != nil {
			t.Fatalf("%q: unexpected rejection: %v", raw, err)
		}
		if value != PresentMarker {
			t.Fatalf("%q: expected normalized marker, got %q", raw, value)
		}
	}
	// A plain date must still pass through the end_date kind.
	if _, err := Check(KindEndDate, "2023-06"); err != nil {
		t.Fatal(err)
	}
}

func TestCheck_UnknownKind(t *testing.T) {
	if _, err := Check(Kind("bogus"), "value"); ReasonOf(err) != ReasonUnknownKind {
		t.Fatalf("expected unknown_kind rejection, got %v", err)
	}
}

func TestCheckRange(t *testing.T) {
	cases := []struct {
		start, end string
		ok         bool
	}{
		{"2020-01", "2021-06", true},
		{"2020-01", "2020-01", true},
		{"2020-06", "2020-01", false},
		{"2021", "2020", false},
		{"2020", "2020-06", true},
		{"2019-12", "present", true},
	}
	for _, tc := range cases {
		err := CheckRange(tc.start, tc.end)
		if tc.ok && err != nil {
			t.Fatalf("%s..%s: unexpected rejection: %v", tc.start, tc.end, err)
		}
		if !tc.ok && ReasonOf(err) != ReasonRangeInverted {
			t.Fatalf("%s..%s: expected range_inverted, got %v", tc.start, tc.end, err)
		}
	}
}

func TestIsInvalid(t *testing.T) {
	_, err := Check(KindEmail, "nope")
	if !IsInvalid(err) {
		t.Fatal("expected a validation error")
	}
	if IsInvalid(nil) {
		t.Fatal("nil must not be a validation error")
	}
}
