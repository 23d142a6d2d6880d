package entity

import (
	"fmt"
	"strconv"
)

// Unrecognized is the sentinel written into textual fields the model could not
// read. Numeric hours fall back to UnrecognizedHours instead. Every field is
// always present; the sentinel replaces absence.
const (
	Unrecognized      = "unrecognized"
	UnrecognizedHours = 0.0
)

// Field keys as they appear in the persisted JSON and in the extraction schema.
const (
	FieldEmployeeName = "employee_name"
	FieldDate         = "date"
	FieldStartTime    = "overtime_start_time"
	FieldEndTime      = "overtime_end_time"
	FieldReason       = "overtime_reason"
	FieldType         = "overtime_type"
	FieldHours        = "hours"
)

// OvertimeEntry is one recognized row of a handwritten overtime form.
type OvertimeEntry struct {
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`                // YYYY-MM-DD, ROC years already converted
	StartTime    string  `json:"overtime_start_time"` // HH:MM, 24-hour
	EndTime      string  `json:"overtime_end_time"`   // HH:MM, 24-hour
	Reason       string  `json:"overtime_reason"`
	Type         string  `json:"overtime_type"`
	Hours        float64 `json:"hours"`
}

// OvertimeDocument is the ordered set of entries extracted from one batch of
// images. Order follows the reading order of the source table; zero entries is
// a legitimate result.
type OvertimeDocument struct {
	Entries []OvertimeEntry `json:"entries"`
}

// SetField mutates one field addressed by its JSON key. Editors address fields
// by key rather than by struct member, so this is the single place the mapping
// lives. Hours accepts float64, int, or a numeric string.
func (e *OvertimeEntry) SetField(key string, value any) error {
	if key == FieldHours {
		h, err := toHours(value)
		if err != nil {
			return err
		}
		e.Hours = h
		return nil
	}

	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field %q requires a string value, got %T", key, value)
	}
	switch key {
	case FieldEmployeeName:
		e.EmployeeName = s
	case FieldDate:
		e.Date = s
	case FieldStartTime:
		e.StartTime = s
	case FieldEndTime:
		e.EndTime = s
	case FieldReason:
		e.Reason = s
	case FieldType:
		e.Type = s
	default:
		return fmt.Errorf("unknown entry field %q", key)
	}
	return nil
}

func toHours(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case string:
		h, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("hours %q is not numeric: %w", v, err)
		}
		return h, nil
	default:
		return 0, fmt.Errorf("hours requires a number, got %T", value)
	}
}
