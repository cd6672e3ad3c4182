package services

import (
	"context"
	"errors"
	"fmt"

	"dbxconsole/internal/config"
	"dbxconsole/internal/schema"
)

// ErrRowInvalid signals that per-column validation failed; the field errors
// travel alongside it.
var ErrRowInvalid = errors.New("row validation failed")

type RowService struct {
	open WarehouseOpener
}

func NewRowService(open WarehouseOpener) *RowService {
	return &RowService{open: open}
}

// GetRows fetches a table's data.
func (s *RowService) GetRows(ctx context.Context, cfg config.Connection, table string) ([]map[string]any, error) {
	w, err := s.open(cfg)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	return w.Rows(ctx, table)
}

// InsertRow validates and inserts one row. On validation failure the returned
// map carries one message per failing column and the error is ErrRowInvalid.
func (s *RowService) InsertRow(ctx context.Context, cfg config.Connection, table string, row map[string]any) (map[string]string, error) {
	w, err := s.open(cfg)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	design, err := s.loadDesign(ctx, w, table)
	if err != nil {
		return nil, err
	}

	if fieldErrs := schema.ValidateRow(design.Columns, row, schema.ModeCreate); len(fieldErrs) > 0 {
		return fieldErrs, ErrRowInvalid
	}

	order := writableColumns(design, row, "")
	return nil, w.InsertRow(ctx, table, row, order)
}

// UpdateRow validates and updates the row addressed by pkColumn=rowID.
func (s *RowService) UpdateRow(ctx context.Context, cfg config.Connection, table, pkColumn, rowID string, row map[string]any) (map[string]string, error) {
	w, err := s.open(cfg)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	design, err := s.loadDesign(ctx, w, table)
	if err != nil {
		return nil, err
	}
	if _, i := design.PrimaryKeyColumn(); i < 0 {
		return nil, fmt.Errorf("table %s has no primary key; updates are disabled", table)
	}

	// The key value addresses the row through the URL, not the body.
	candidate := make(map[string]any, len(row)+1)
	for k, v := range row {
		candidate[k] = v
	}
	if _, ok := candidate[pkColumn]; !ok {
		candidate[pkColumn] = rowID
	}

	if fieldErrs := schema.ValidateRow(design.Columns, candidate, schema.ModeUpdate); len(fieldErrs) > 0 {
		return fieldErrs, ErrRowInvalid
	}

	order := writableColumns(design, row, pkColumn)
	return nil, w.UpdateRow(ctx, table, pkColumn, rowID, row, order)
}

// DeleteRow deletes the row addressed by pkColumn=rowID.
func (s *RowService) DeleteRow(ctx context.Context, cfg config.Connection, table, pkColumn, rowID string) error {
	w, err := s.open(cfg)
	if err != nil {
		return err
	}
	defer w.Close()

	design, err := s.loadDesign(ctx, w, table)
	if err != nil {
		return err
	}
	if _, i := design.PrimaryKeyColumn(); i < 0 {
		return fmt.Errorf("table %s has no primary key; deletes are disabled", table)
	}

	return w.DeleteRow(ctx, table, pkColumn, rowID)
}

func (s *RowService) loadDesign(ctx context.Context, w Warehouse, table string) (*schema.TableDesign, error) {
	native, err := w.Columns(ctx, table)
	if err != nil {
		return nil, err
	}
	if len(native) == 0 {
		return nil, fmt.Errorf("table %s not found", table)
	}

	design, _ := schema.Synthesize(table, native)
	return design, nil
}

// writableColumns returns, in definition order, the columns a write statement
// may touch: present in the payload, not the identity key, not the addressed
// key column. Unknown payload keys are dropped.
func writableColumns(design *schema.TableDesign, row map[string]any, pkColumn string) []string {
	var order []string
	for _, col := range design.Columns {
		if col.PrimaryKey && col.Identity {
			continue
		}
		if col.Name == pkColumn {
			continue
		}
		if _, ok := row[col.Name]; ok {
			order = append(order, col.Name)
		}
	}
	return order
}
