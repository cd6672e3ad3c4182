package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ValidationMode says whether a row is being created or updated. On create the
// primary-key value is server-generated and skipped entirely.
type ValidationMode int

const (
	ModeCreate ValidationMode = iota
	ModeUpdate
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// ValidateRow checks a candidate row against the column definitions. It returns
// a map of column name to error message; an empty map means the row is valid.
// Columns are validated independently and every failing column is reported.
func ValidateRow(columns []Column, row map[string]any, mode ValidationMode) map[string]string {
	errs := make(map[string]string)

	for _, col := range columns {
		if col.PrimaryKey && mode == ModeCreate {
			continue
		}

		value, present := row[col.Name]
		if isEmptyValue(value) || !present {
			if !col.Nullable {
				errs[col.Name] = fmt.Sprintf("%s cannot be empty", col.Name)
			}
			continue
		}

		if msg := checkTypedValue(col, value); msg != "" {
			errs[col.Name] = msg
		}
	}

	return errs
}

func checkTypedValue(col Column, value any) string {
	switch col.Type {
	case TypeNumber:
		if _, ok := asFiniteNumber(value); !ok {
			return fmt.Sprintf("%s must be a number", col.Name)
		}
	case TypeDate:
		if !isValidDate(value) {
			return fmt.Sprintf("%s must be a valid date", col.Name)
		}
	case TypeList:
		if len(col.ListValues) == 0 {
			return ""
		}
		s := stringValue(value)
		for _, allowed := range col.ListValues {
			if s == allowed {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", col.Name, strings.Join(col.ListValues, ", "))
	case TypeReference, TypeIdentifier:
		if !isValidIdentifierValue(value) {
			return fmt.Sprintf("%s must be a valid id", col.Name)
		}
	case TypeText, TypeLongText, TypeBoolean:
		// Free-form or guaranteed well-formed by the input control.
	}
	return ""
}

func isEmptyValue(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	return false
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asFiniteNumber(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isValidDate(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func isValidIdentifierValue(value any) bool {
	f, ok := asFiniteNumber(value)
	if !ok {
		return false
	}
	return f == math.Trunc(f)
}
