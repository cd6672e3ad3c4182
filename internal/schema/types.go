package schema

import "strings"

// SemanticType is the user-facing column kind, as opposed to the warehouse's
// native column type name.
type SemanticType int

const (
	TypeText SemanticType = iota
	TypeLongText
	TypeNumber
	TypeDate
	TypeBoolean
	TypeList
	TypeReference
	TypeIdentifier
)

func (t SemanticType) String() string {
	switch t {
	case TypeText:
		return "Text"
	case TypeLongText:
		return "Long Text"
	case TypeNumber:
		return "Number"
	case TypeDate:
		return "Date"
	case TypeBoolean:
		return "Boolean"
	case TypeList:
		return "List"
	case TypeReference:
		return "Reference"
	case TypeIdentifier:
		return "Identifier"
	default:
		return "Text"
	}
}

// NativeType returns the warehouse column type for a semantic type.
func (t SemanticType) NativeType() string {
	switch t {
	case TypeText, TypeLongText, TypeList:
		return "STRING"
	case TypeNumber:
		return "DOUBLE"
	case TypeDate:
		return "TIMESTAMP"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeReference, TypeIdentifier:
		return "BIGINT"
	default:
		return "STRING"
	}
}

// SemanticFromNative classifies a native column type back into a semantic type.
// The comment text wins when it carries a List or Reference marker; otherwise
// classification is a substring match on the native type name. Identifier
// columns decode as Number and are re-identified as primary keys from separate
// metadata, not here.
func SemanticFromNative(nativeType, comment string) SemanticType {
	if strings.Contains(comment, markerAllowedValues) {
		return TypeList
	}
	if strings.Contains(comment, markerReferences) {
		return TypeReference
	}

	upper := strings.ToUpper(nativeType)
	switch {
	case containsAny(upper, "VARCHAR", "CHAR", "TEXT", "STRING"):
		if strings.Contains(upper, "MAX") {
			return TypeLongText
		}
		return TypeText
	case containsAny(upper, "INT", "NUMERIC", "DECIMAL", "FLOAT", "REAL", "MONEY", "DOUBLE"):
		return TypeNumber
	case containsAny(upper, "DATE", "TIME"):
		return TypeDate
	case containsAny(upper, "BIT", "BOOLEAN"):
		return TypeBoolean
	default:
		return TypeText
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
