package models

import (
	"bytes"
	"fmt"
	"strings"
)

// Answer is the tri-state reply to a property question. Unanswered is
// distinct from No: pricing treats Unanswered as No, but scheduling stays
// blocked while a relevant question is unanswered.
type Answer int

const (
	AnswerUnanswered Answer = iota
	AnswerNo
	AnswerYes
)

// Answered reports whether the question has been answered either way.
func (a Answer) Answered() bool {
	return a == AnswerYes || a == AnswerNo
}

// Bool collapses the answer for price and duration math: only an explicit
// Yes counts, Unanswered falls back to false.
func (a Answer) Bool() bool {
	return a == AnswerYes
}

// String returns the display form used in logs and booking metadata.
func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "Yes"
	case AnswerNo:
		return "No"
	default:
		return "Unanswered"
	}
}

// MarshalJSON encodes the answer as true, false, or null so the widget can
// round-trip the same nullable-boolean shape it submits.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a {
	case AnswerYes:
		return []byte("true"), nil
	case AnswerNo:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts true/false/null plus the string forms "yes"/"no"/""
// so sloppy callers still map onto a defined state.
func (a *Answer) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = AnswerUnanswered
		return nil
	case bytes.Equal(data, []byte("true")):
		*a = AnswerYes
		return nil
	case bytes.Equal(data, []byte("false")):
		*a = AnswerNo
		return nil
	}

	trimmed := strings.Trim(string(data), `"`)
	parsed, err := ParseAnswer(trimmed)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAnswer converts a query-string or JSON string value to an Answer.
// The empty string means the question was never answered.
func ParseAnswer(value string) (Answer, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return AnswerUnanswered, nil
	case "true", "yes", "1":
		return AnswerYes, nil
	case "false", "no", "0":
		return AnswerNo, nil
	}
	return AnswerUnanswered, fmt.Errorf("invalid answer value %q", value)
}
