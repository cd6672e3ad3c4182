package schema

import (
	"fmt"
	"strings"
)

// storageFormat is the table format keyword for the target warehouse.
const storageFormat = "DELTA"

// Namespace is the catalog+schema pair qualifying a table's fully-resolved name.
type Namespace struct {
	Catalog string
	Schema  string
}

// Qualify returns the fully-qualified name of a table in this namespace.
// Identifiers are passed through verbatim, not escaped.
func (n Namespace) Qualify(table string) string {
	return n.Catalog + "." + n.Schema + "." + table
}

// Generate renders the CREATE TABLE statement for a design. It is a pure
// function of its inputs. An empty string means "not ready": the table name or
// a column name is still missing, which the caller must not treat as an error.
func Generate(d *TableDesign, ns Namespace) string {
	if d.Name == "" {
		return ""
	}
	for _, col := range d.Columns {
		if col.Name == "" {
			return ""
		}
	}

	var lines []string
	for _, col := range d.Columns {
		lines = append(lines, columnLine(col))
	}

	var pkNames []string
	for _, col := range d.Columns {
		if col.PrimaryKey {
			pkNames = append(pkNames, col.Name)
		}
	}
	if len(pkNames) > 0 {
		lines = append(lines, fmt.Sprintf("  CONSTRAINT PK_%s PRIMARY KEY (\n    %s\n  )",
			d.Name, strings.Join(pkNames, ",\n    ")))
	}

	ordinal := 0
	for _, col := range d.Columns {
		if col.Type != TypeReference || col.ReferenceTable == "" {
			continue
		}
		ordinal++
		lines = append(lines, fmt.Sprintf("  CONSTRAINT FK_%s_%s_%d FOREIGN KEY (%s) REFERENCES %s (%s)",
			d.Name, col.ReferenceTable, ordinal, col.Name,
			ns.Qualify(col.ReferenceTable), derivedKeyName(col.ReferenceTable)))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("CREATE TABLE %s (\n", ns.Qualify(d.Name)))
	sb.WriteString(strings.Join(lines, ",\n"))
	sb.WriteString(fmt.Sprintf("\n) USING %s;", storageFormat))
	return sb.String()
}

func columnLine(col Column) string {
	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(col.Name)
	sb.WriteString(" ")
	sb.WriteString(col.Type.NativeType())

	if col.Identity {
		sb.WriteString(" GENERATED ALWAYS AS IDENTITY")
	}
	if !col.Nullable {
		sb.WriteString(" NOT NULL")
	}

	// At most one marker comment applies per column.
	switch {
	case col.Type == TypeList && len(col.ListValues) > 0:
		sb.WriteString(" /* " + EncodeListComment(col.ListValues) + " */")
	case col.Type == TypeReference && col.ReferenceTable != "":
		sb.WriteString(" /* " + EncodeReferenceComment(col.ReferenceTable, col.DisplayColumns) + " */")
	}

	return sb.String()
}
