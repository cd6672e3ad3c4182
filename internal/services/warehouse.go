package services

import (
	"context"

	"dbxconsole/internal/config"
	"dbxconsole/internal/models"
	"dbxconsole/internal/schema"
)

// Warehouse is the slice of warehouse access the services need. The sql
// implementation lives in internal/repositories; tests substitute a fake.
type Warehouse interface {
	ListTables(ctx context.Context) ([]models.TableSummary, error)
	Columns(ctx context.Context, table string) ([]schema.NativeColumn, error)
	Rows(ctx context.Context, table string) ([]map[string]any, error)
	InsertRow(ctx context.Context, table string, row map[string]any, columnOrder []string) error
	UpdateRow(ctx context.Context, table, pkColumn, rowID string, row map[string]any, columnOrder []string) error
	DeleteRow(ctx context.Context, table, pkColumn, rowID string) error
	Exec(ctx context.Context, statement string) error
	SetColumnComment(ctx context.Context, table, column, comment string) error
	Close() error
}

// WarehouseOpener opens a warehouse connection for one request from a
// caller-supplied connection snapshot.
type WarehouseOpener func(cfg config.Connection) (Warehouse, error)
