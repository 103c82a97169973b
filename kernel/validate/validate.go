// Package validate holds the pure per-field checks used by section
// handlers. Every rejection carries a stable machine-readable reason code
// so callers can pick a re-prompt without inspecting message text.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Kind selects the check applied to one raw field value.
type Kind string

const (
	KindText    Kind = "text"
	KindName    Kind = "name"
	KindEmail   Kind = "email"
	KindPhone   Kind = "phone"
	KindDate    Kind = "date"
	KindEndDate Kind = "end_date"
	KindSkill   Kind = "skill"
)

// Reason is a stable machine-readable rejection code.
type Reason string

const (
	ReasonEmpty         Reason = "empty"
	ReasonBadEmail      Reason = "bad_email"
	ReasonBadPhone      Reason = "bad_phone"
	ReasonBadDate       Reason = "bad_date"
	ReasonRangeInverted Reason = "range_inverted"
	ReasonOutOfRange    Reason = "out_of_range"
	ReasonTooLong       Reason = "too_long"
	ReasonUnknownKind   Reason = "unknown_kind"
	ReasonUnrecognized  Reason = "unrecognized"
	ReasonLimitReached  Reason = "limit_reached"
)

// PresentMarker is the normalized open-end marker for date ranges.
const PresentMarker = "present"

// presentWords are accepted spellings of the open-end marker.
var presentWords = map[string]bool{
	"present": true,
	"now":     true,
	"current": true,
	"الآن":    true,
	"الان":    true,
	"حاليا":   true,
}

// Error is the invalid result of a field check.
type Error struct {
	Kind   Kind
	Reason Reason
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("validate: %s field rejected (%s)", e.Kind, e.Reason)
}

// ReasonOf extracts the rejection code from err, or "" for non-validation
// errors.
func ReasonOf(err error) Reason {
	var target *Error
	if errors.As(err, &target) {
		return target.Reason
	}
	return ""
}

// IsInvalid reports whether err is a field validation rejection.
func IsInvalid(err error) bool {
	var target *Error
	return errors.As(err, &target)
}

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?[\d\s-]{8,}$`)
	yearRe  = regexp.MustCompile(`^\d{4}$`)
	monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

const (
	maxTextLen  = 500
	maxSkillLen = 80

	minYear = 1900
)

// Check validates and normalizes one raw value. On rejection the returned
// error is always *Error. Pure: no session access, no side effects.
func Check(kind Kind, raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", &Error{Kind: kind, Reason: ReasonEmpty}
	}
	switch kind {
	case KindText, KindName:
		if len(value) > maxTextLen {
			return "", &Error{Kind: kind, Reason: ReasonTooLong}
		}
		return value, nil
	case KindEmail:
		value = strings.ToLower(value)
		if !emailRe.MatchString(value) {
			return "", &Error{Kind: kind, Reason: ReasonBadEmail}
		}
		return value, nil
	case KindPhone:
		if !phoneRe.MatchString(value) {
			return "", &Error{Kind: kind, Reason: ReasonBadPhone}
		}
		return value, nil
	case KindDate:
		return checkDate(kind, value)
	case KindEndDate:
		if presentWords[strings.ToLower(value)] {
			return PresentMarker, nil
		}
		return checkDate(kind, value)
	case KindSkill:
		if len(value) > maxSkillLen {
			return "", &Error{Kind: kind, Reason: ReasonTooLong}
		}
		return value, nil
	default:
		return "", &Error{Kind: kind, Reason: ReasonUnknownKind}
	}
}

func checkDate(kind Kind, value string) (string, error) {
	switch {
	case monthRe.MatchString(value):
	case yearRe.MatchString(value):
	default:
		return "", &Error{Kind: kind, Reason: ReasonBadDate}
	}
	year, err := strconv.Atoi(value[:4])
	if err != nil || year < minYear || year > time.Now().Year()+1 {
		return "", &Error{Kind: kind, Reason: ReasonOutOfRange}
	}
	return value, nil
}

// CheckRange rejects date ranges whose end precedes their start. Both
// values must already be normalized; an end of PresentMarker is always
// accepted.
func CheckRange(start, end string) error {
	if end == PresentMarker {
		return nil
	}
	if dateSortKey(end) < dateSortKey(start) {
		return &Error{Kind: KindEndDate, Reason: ReasonRangeInverted}
	}
	return nil
}

// dateSortKey maps "2006" and "2006-01" onto a comparable yyyymm integer.
// A bare year counts as January so "2020" does not precede "2020-06".
func dateSortKey(value string) int {
	year, _ := strconv.Atoi(value[:4])
	month := 1
	if len(value) == 7 {
		month, _ = strconv.Atoi(value[5:])
	}
	return year*100 + month
}
