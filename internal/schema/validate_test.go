package schema

import (
	"strings"
	"testing"
)

func TestValidateRequiredText(t *testing.T) {
	columns := []Column{
		{Name: "Title", Type: TypeText, Nullable: false},
		{Name: "Notes", Type: TypeText, Nullable: true},
	}

	errs := ValidateRow(columns, map[string]any{"Title": "", "Notes": ""}, ModeCreate)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if _, ok := errs["Title"]; !ok {
		t.Errorf("expected error on Title, got %v", errs)
	}
}

func TestValidatePrimaryKeySkippedOnCreate(t *testing.T) {
	columns := []Column{
		{Name: "TicketID", Type: TypeIdentifier, PrimaryKey: true, Identity: true},
	}

	if errs := ValidateRow(columns, map[string]any{}, ModeCreate); len(errs) != 0 {
		t.Errorf("create mode must skip the key column, got %v", errs)
	}

	if errs := ValidateRow(columns, map[string]any{}, ModeUpdate); len(errs) == 0 {
		t.Error("update mode must not skip the key column")
	}
}

func TestValidateListMembership(t *testing.T) {
	columns := []Column{
		{Name: "Color", Type: TypeList, Nullable: true, ListValues: []string{"Red", "Blue"}},
	}

	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"member", "Red", false},
		{"non-member", "Green", true},
		{"empty on nullable", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRow(columns, map[string]any{"Color": tt.value}, ModeCreate)
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("value %q: errs = %v, wantErr %v", tt.value, errs, tt.wantErr)
			}
		})
	}
}

func TestValidateListErrorListsAllowedValues(t *testing.T) {
	columns := []Column{
		{Name: "Color", Type: TypeList, Nullable: true, ListValues: []string{"Red", "Blue"}},
	}

	errs := ValidateRow(columns, map[string]any{"Color": "Green"}, ModeCreate)
	if msg := errs["Color"]; !strings.Contains(msg, "Red, Blue") {
		t.Errorf("membership error must list the allowed values, got %q", msg)
	}
}

func TestValidateNumber(t *testing.T) {
	columns := []Column{
		{Name: "Amount", Type: TypeNumber, Nullable: true},
	}

	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"float", 12.5, false},
		{"numeric string", "12.5", false},
		{"integer", 3, false},
		{"garbage string", "abc", true},
		{"null on nullable", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRow(columns, map[string]any{"Amount": tt.value}, ModeCreate)
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("value %v: errs = %v, wantErr %v", tt.value, errs, tt.wantErr)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	columns := []Column{
		{Name: "Opened", Type: TypeDate, Nullable: true},
	}

	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"plain date", "2024-03-01", false},
		{"rfc3339", "2024-03-01T10:30:00Z", false},
		{"datetime", "2024-03-01 10:30:00", false},
		{"not a date", "soon", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRow(columns, map[string]any{"Opened": tt.value}, ModeCreate)
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("value %v: errs = %v, wantErr %v", tt.value, errs, tt.wantErr)
			}
		})
	}
}

func TestValidateReference(t *testing.T) {
	columns := []Column{
		{Name: "CustomerID", Type: TypeReference, Nullable: true, ReferenceTable: "Customer"},
	}

	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"numeric id", float64(42), false},
		{"numeric string", "42", false},
		{"fractional", 4.2, true},
		{"garbage", "forty-two", true},
		{"null on nullable", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRow(columns, map[string]any{"CustomerID": tt.value}, ModeCreate)
			if (len(errs) > 0) != tt.wantErr {
				t.Errorf("value %v: errs = %v, wantErr %v", tt.value, errs, tt.wantErr)
			}
		})
	}
}

func TestValidateAggregatesAllColumns(t *testing.T) {
	columns := []Column{
		{Name: "Title", Type: TypeText, Nullable: false},
		{Name: "Amount", Type: TypeNumber, Nullable: true},
		{Name: "Color", Type: TypeList, Nullable: true, ListValues: []string{"Red"}},
	}

	errs := ValidateRow(columns, map[string]any{
		"Title":  "",
		"Amount": "abc",
		"Color":  "Blue",
	}, ModeCreate)

	if len(errs) != 3 {
		t.Errorf("expected 3 errors, got %v", errs)
	}
}
