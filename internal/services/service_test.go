package services

import (
	"context"
	"errors"
	"testing"

	"dbxconsole/internal/config"
	"dbxconsole/internal/models"
	"dbxconsole/internal/schema"
)

type fakeWarehouse struct {
	tables  []models.TableSummary
	columns map[string][]schema.NativeColumn
	rows    map[string][]map[string]any

	executed    []string
	comments    map[string]string
	inserted    []map[string]any
	insertOrder []string
	updated     map[string]any
	deletedID   string
	closed      bool
}

func newFakeWarehouse() *fakeWarehouse {
	return &fakeWarehouse{
		columns:  make(map[string][]schema.NativeColumn),
		rows:     make(map[string][]map[string]any),
		comments: make(map[string]string),
	}
}

func (f *fakeWarehouse) ListTables(ctx context.Context) ([]models.TableSummary, error) {
	return f.tables, nil
}

func (f *fakeWarehouse) Columns(ctx context.Context, table string) ([]schema.NativeColumn, error) {
	return f.columns[table], nil
}

func (f *fakeWarehouse) Rows(ctx context.Context, table string) ([]map[string]any, error) {
	return f.rows[table], nil
}

func (f *fakeWarehouse) InsertRow(ctx context.Context, table string, row map[string]any, columnOrder []string) error {
	f.inserted = append(f.inserted, row)
	f.insertOrder = columnOrder
	return nil
}

func (f *fakeWarehouse) UpdateRow(ctx context.Context, table, pkColumn, rowID string, row map[string]any, columnOrder []string) error {
	f.updated = row
	return nil
}

func (f *fakeWarehouse) DeleteRow(ctx context.Context, table, pkColumn, rowID string) error {
	f.deletedID = rowID
	return nil
}

func (f *fakeWarehouse) Exec(ctx context.Context, statement string) error {
	f.executed = append(f.executed, statement)
	return nil
}

func (f *fakeWarehouse) SetColumnComment(ctx context.Context, table, column, comment string) error {
	f.comments[table+"."+column] = comment
	return nil
}

func (f *fakeWarehouse) Close() error {
	f.closed = true
	return nil
}

func opener(f *fakeWarehouse) WarehouseOpener {
	return func(cfg config.Connection) (Warehouse, error) {
		return f, nil
	}
}

var testConn = config.Connection{
	ServerHostname: "example.cloud.databricks.com",
	HTTPPath:       "/sql/1.0/warehouses/abc",
	AccessToken:    "token",
	Catalog:        "main",
	Schema:         "default",
}

func ticketColumns() []schema.NativeColumn {
	return []schema.NativeColumn{
		{Name: "TicketID", DataType: "BIGINT", Nullable: false, PrimaryKey: true},
		{Name: "Title", DataType: "STRING", Nullable: false},
		{Name: "Status", DataType: "STRING", Nullable: true, Comment: "ALLOWED VALUES: Open, Closed"},
	}
}

func TestGetStructureSynthesizesKey(t *testing.T) {
	f := newFakeWarehouse()
	f.columns["Ticket"] = ticketColumns()

	svc := NewTableService(opener(f), nil)
	columns, warnings, err := svc.GetStructure(context.Background(), testConn, "Ticket")
	if err != nil {
		t.Fatalf("GetStructure failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if !columns[0].IsPrimaryKey {
		t.Error("TicketID must be reported as primary key")
	}
	if columns[2].Comment != "ALLOWED VALUES: Open, Closed" {
		t.Errorf("marker comment must pass through, got %q", columns[2].Comment)
	}
	if !f.closed {
		t.Error("warehouse connection must be closed after the call")
	}
}

func TestGetStructureUnknownTable(t *testing.T) {
	svc := NewTableService(opener(newFakeWarehouse()), nil)
	if _, _, err := svc.GetStructure(context.Background(), testConn, "Nope"); err == nil {
		t.Error("expected an error for an unknown table")
	}
}

func TestCreateTablePersistsComments(t *testing.T) {
	f := newFakeWarehouse()
	svc := NewTableService(opener(f), nil)

	req := &CreateTableRequest{
		SQL: "CREATE TABLE main.default.Ticket (\n  TicketID BIGINT\n) USING DELTA;",
		TableMetadata: &TableMetadata{
			TableName: "Ticket",
			Columns: []ColumnMetadata{
				{Name: "Status", Comment: "ALLOWED VALUES: Open, Closed"},
				{Name: "Title", Comment: ""},
			},
		},
	}

	if err := svc.CreateTable(context.Background(), testConn, req); err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}
	if len(f.executed) != 1 || f.executed[0] != req.SQL {
		t.Errorf("DDL must be executed verbatim, got %v", f.executed)
	}
	if f.comments["Ticket.Status"] != "ALLOWED VALUES: Open, Closed" {
		t.Errorf("marker comment not persisted: %v", f.comments)
	}
	if _, ok := f.comments["Ticket.Title"]; ok {
		t.Error("empty comments must not be written")
	}
}

func TestInsertRowValidates(t *testing.T) {
	f := newFakeWarehouse()
	f.columns["Ticket"] = ticketColumns()
	svc := NewRowService(opener(f))

	fieldErrs, err := svc.InsertRow(context.Background(), testConn, "Ticket", map[string]any{
		"Title":  "",
		"Status": "Pending",
	})
	if !errors.Is(err, ErrRowInvalid) {
		t.Fatalf("expected ErrRowInvalid, got %v", err)
	}
	if len(fieldErrs) != 2 {
		t.Errorf("expected errors on Title and Status, got %v", fieldErrs)
	}
	if len(f.inserted) != 0 {
		t.Error("invalid row must not be inserted")
	}
}

func TestInsertRowFiltersUnknownAndKeyColumns(t *testing.T) {
	f := newFakeWarehouse()
	f.columns["Ticket"] = ticketColumns()
	svc := NewRowService(opener(f))

	fieldErrs, err := svc.InsertRow(context.Background(), testConn, "Ticket", map[string]any{
		"TicketID": 99, // server-generated, must be dropped
		"Title":    "Broken printer",
		"Status":   "Open",
		"bogus":    "x",
	})
	if err != nil {
		t.Fatalf("InsertRow failed: %v (%v)", err, fieldErrs)
	}

	want := []string{"Title", "Status"}
	if len(f.insertOrder) != len(want) {
		t.Fatalf("insert columns = %v, want %v", f.insertOrder, want)
	}
	for i := range want {
		if f.insertOrder[i] != want[i] {
			t.Errorf("insert columns = %v, want %v", f.insertOrder, want)
		}
	}
}

func TestUpdateRowRequiresKey(t *testing.T) {
	f := newFakeWarehouse()
	f.columns["Log"] = []schema.NativeColumn{
		{Name: "Message", DataType: "STRING", Nullable: true},
	}
	svc := NewRowService(opener(f))

	if _, err := svc.UpdateRow(context.Background(), testConn, "Log", "Message", "1", map[string]any{"Message": "hi"}); err == nil {
		t.Error("update on a keyless table must fail")
	}
	if err := svc.DeleteRow(context.Background(), testConn, "Log", "Message", "1"); err == nil {
		t.Error("delete on a keyless table must fail")
	}
}

func TestUpdateRowHappyPath(t *testing.T) {
	f := newFakeWarehouse()
	f.columns["Ticket"] = ticketColumns()
	svc := NewRowService(opener(f))

	fieldErrs, err := svc.UpdateRow(context.Background(), testConn, "Ticket", "TicketID", "7", map[string]any{
		"Title":  "Updated",
		"Status": "Closed",
	})
	if err != nil {
		t.Fatalf("UpdateRow failed: %v (%v)", err, fieldErrs)
	}
	if f.updated == nil {
		t.Error("row was not updated")
	}
}

// A connection failure and a rejected statement must stay distinguishable for
// the caller: each layer's error passes through unwrapped, so the two paths
// carry their own messages.
func TestTransportAndRejectionErrorsStayDistinct(t *testing.T) {
	errTransport := errors.New("failed to reach warehouse at example.cloud.databricks.com: dial tcp: connection refused")
	errRejected := errors.New("statement rejected by warehouse: table already exists")

	failingOpen := func(cfg config.Connection) (Warehouse, error) {
		return nil, errTransport
	}
	rejectingOpen := func(cfg config.Connection) (Warehouse, error) {
		return &rejectingWarehouse{fakeWarehouse: newFakeWarehouse(), err: errRejected}, nil
	}

	req := &CreateTableRequest{SQL: "CREATE TABLE main.default.T (\n  TID BIGINT\n) USING DELTA;"}

	transportErr := NewTableService(failingOpen, nil).CreateTable(context.Background(), testConn, req)
	if !errors.Is(transportErr, errTransport) {
		t.Fatalf("transport failure not propagated: %v", transportErr)
	}

	rejectedErr := NewTableService(rejectingOpen, nil).CreateTable(context.Background(), testConn, req)
	if !errors.Is(rejectedErr, errRejected) {
		t.Fatalf("rejection not propagated: %v", rejectedErr)
	}

	if transportErr.Error() == rejectedErr.Error() {
		t.Errorf("the two failure modes must read differently, both say %q", transportErr)
	}

	if _, err := NewRowService(failingOpen).GetRows(context.Background(), testConn, "Ticket"); !errors.Is(err, errTransport) {
		t.Errorf("row fetch must surface the transport failure, got %v", err)
	}
}

type rejectingWarehouse struct {
	*fakeWarehouse
	err error
}

func (r *rejectingWarehouse) Exec(ctx context.Context, statement string) error {
	return r.err
}

func TestDeleteRowHappyPath(t *testing.T) {
	f := newFakeWarehouse()
	f.columns["Ticket"] = ticketColumns()
	svc := NewRowService(opener(f))

	if err := svc.DeleteRow(context.Background(), testConn, "Ticket", "TicketID", "7"); err != nil {
		t.Fatalf("DeleteRow failed: %v", err)
	}
	if f.deletedID != "7" {
		t.Errorf("deleted id = %q, want 7", f.deletedID)
	}
}
