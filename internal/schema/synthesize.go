package schema

import "strings"

// NativeColumn is one column as reported by warehouse introspection.
type NativeColumn struct {
	Name       string
	DataType   string
	Comment    string
	Nullable   bool
	PrimaryKey bool
}

// WarnNoPrimaryKey is reported when no primary key can be identified. The table
// still loads, but update and delete cannot target a single row and stay
// disabled.
const WarnNoPrimaryKey = "no primary key column found; row update and delete are disabled"

// Synthesize reconstructs a table design from native introspection output. It
// is the inverse of Generate's encoding: semantic types come from the native
// type name and the marker comments, and List/Reference metadata is decoded
// from the comment text.
//
// Primary key identification prefers the warehouse's native flag. When none is
// reported, the first column whose name ends with the case-insensitive suffix
// "id" is assumed to be the key. When no column qualifies either, a non-fatal
// warning is returned.
func Synthesize(tableName string, native []NativeColumn) (*TableDesign, []string) {
	d := &TableDesign{Name: tableName}
	var warnings []string

	hasNativeKey := false
	for _, nc := range native {
		if nc.PrimaryKey {
			hasNativeKey = true
			break
		}
	}

	keyIndex := -1
	for i, nc := range native {
		col := Column{
			Name:     nc.Name,
			Type:     SemanticFromNative(nc.DataType, nc.Comment),
			Nullable: nc.Nullable,
		}

		switch col.Type {
		case TypeList:
			col.ListValues = ParseListComment(nc.Comment)
		case TypeReference:
			table, display, ok := ParseReferenceComment(nc.Comment)
			if ok {
				col.ReferenceTable = table
				col.DisplayColumns = display
			}
		}

		isKey := nc.PrimaryKey
		if !hasNativeKey && keyIndex < 0 && strings.HasSuffix(strings.ToLower(nc.Name), "id") {
			isKey = true
		}
		if isKey {
			col.PrimaryKey = true
			col.Nullable = false
			if col.Type == TypeNumber {
				col.Type = TypeIdentifier
				col.Identity = true
			}
			if keyIndex < 0 {
				keyIndex = i
			}
		}

		d.Columns = append(d.Columns, col)
	}

	if keyIndex < 0 && !hasNativeKey {
		warnings = append(warnings, WarnNoPrimaryKey)
	}

	return d, warnings
}
