package schema

import "strings"

// Column is one column of a table being designed.
type Column struct {
	Name           string
	Type           SemanticType
	PrimaryKey     bool
	Nullable       bool
	Identity       bool
	ListValues     []string
	ReferenceTable string
	DisplayColumns []string
}

// TableDesign is the in-memory representation of a table being designed. It has
// no persistence of its own: it is consumed once to produce DDL, and on later
// loads a design is rebuilt from warehouse introspection by Synthesize.
type TableDesign struct {
	Name    string
	Columns []Column
}

// NewTableDesign creates a design with the default auto-generated primary-key
// column (`<TableName>ID`, Identifier, identity, not nullable).
func NewTableDesign(name string) *TableDesign {
	return &TableDesign{
		Name: name,
		Columns: []Column{{
			Name:       derivedKeyName(name),
			Type:       TypeIdentifier,
			PrimaryKey: true,
			Identity:   true,
			Nullable:   false,
		}},
	}
}

func derivedKeyName(tableName string) string {
	return tableName + "ID"
}

// AddColumn appends a column with neutral defaults.
func (d *TableDesign) AddColumn() {
	d.Columns = append(d.Columns, Column{Type: TypeText, Nullable: true})
}

// AddListColumn appends a List column. The raw value string is split on commas
// and trimmed; the call is a no-op when no values remain.
func (d *TableDesign) AddListColumn(rawValues string) bool {
	values := splitTrimmed(rawValues)
	if len(values) == 0 {
		return false
	}
	d.Columns = append(d.Columns, Column{
		Type:       TypeList,
		Nullable:   true,
		ListValues: values,
	})
	return true
}

// AddReferenceColumn appends a Reference column named `<table>ID`. The call is
// a no-op when the table name is empty. Display columns default to the
// referenced table's identifier column.
func (d *TableDesign) AddReferenceColumn(table string, displayColumns []string) bool {
	table = strings.TrimSpace(table)
	if table == "" {
		return false
	}
	if len(displayColumns) == 0 {
		displayColumns = []string{derivedKeyName(table)}
	}
	d.Columns = append(d.Columns, Column{
		Name:           derivedKeyName(table),
		Type:           TypeReference,
		Nullable:       true,
		ReferenceTable: table,
		DisplayColumns: displayColumns,
	})
	return true
}

// SetPrimaryKey promotes the column at index to primary key, demoting any other
// primary-key column. The promoted column is forced not-nullable so the
// exactly-one-primary-key invariant holds across the single call.
func (d *TableDesign) SetPrimaryKey(index int) bool {
	if index < 0 || index >= len(d.Columns) {
		return false
	}
	for i := range d.Columns {
		d.Columns[i].PrimaryKey = false
	}
	d.Columns[index].PrimaryKey = true
	d.Columns[index].Nullable = false
	return true
}

// SetNullable sets the nullability of the column at index. Making the primary
// key nullable is rejected.
func (d *TableDesign) SetNullable(index int, nullable bool) bool {
	if index < 0 || index >= len(d.Columns) {
		return false
	}
	if nullable && d.Columns[index].PrimaryKey {
		return false
	}
	d.Columns[index].Nullable = nullable
	return true
}

// RemoveColumn removes the column at index. Removing the primary key is
// rejected.
func (d *TableDesign) RemoveColumn(index int) bool {
	if index < 0 || index >= len(d.Columns) {
		return false
	}
	if d.Columns[index].PrimaryKey {
		return false
	}
	d.Columns = append(d.Columns[:index], d.Columns[index+1:]...)
	return true
}

// Rename changes the table name. When the primary-key column's name still looks
// auto-derived (the bare "ID" default or `<OldName>ID`), it tracks the new
// table name; a manually renamed key column is left alone.
func (d *TableDesign) Rename(newName string) {
	oldName := d.Name
	d.Name = newName
	for i := range d.Columns {
		if !d.Columns[i].PrimaryKey {
			continue
		}
		if d.Columns[i].Name == "ID" || d.Columns[i].Name == derivedKeyName(oldName) {
			d.Columns[i].Name = derivedKeyName(newName)
		}
	}
}

// PrimaryKeyColumn returns the primary-key column and its index, or -1 when the
// design has none.
func (d *TableDesign) PrimaryKeyColumn() (Column, int) {
	for i, col := range d.Columns {
		if col.PrimaryKey {
			return col, i
		}
	}
	return Column{}, -1
}
