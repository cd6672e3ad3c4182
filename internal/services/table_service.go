package services

import (
	"context"
	"fmt"
	"log"

	"dbxconsole/internal/config"
	"dbxconsole/internal/models"
	"dbxconsole/internal/repositories"
	"dbxconsole/internal/schema"
)

type TableService struct {
	open        WarehouseOpener
	historyRepo *repositories.HistoryRepository
}

func NewTableService(open WarehouseOpener, historyRepo *repositories.HistoryRepository) *TableService {
	return &TableService{
		open:        open,
		historyRepo: historyRepo,
	}
}

type ColumnMetadata struct {
	Name    string `json:"name" binding:"required"`
	Comment string `json:"comment"`
}

type TableMetadata struct {
	TableName string           `json:"tableName" binding:"required"`
	Columns   []ColumnMetadata `json:"columns"`
}

type CreateTableRequest struct {
	SQL           string         `json:"sql" binding:"required"`
	Description   string         `json:"description"`
	CreatedBy     string         `json:"createdBy"`
	TableMetadata *TableMetadata `json:"tableMetadata"`
}

// ListTables returns the tables in the configured namespace.
func (s *TableService) ListTables(ctx context.Context, cfg config.Connection) ([]models.TableSummary, error) {
	w, err := s.open(cfg)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	return w.ListTables(ctx)
}

// GetStructure returns a table's columns as served to the console, along with
// any non-fatal warnings from metadata synthesis.
func (s *TableService) GetStructure(ctx context.Context, cfg config.Connection, table string) ([]models.ColumnInfo, []string, error) {
	w, err := s.open(cfg)
	if err != nil {
		return nil, nil, err
	}
	defer w.Close()

	native, err := w.Columns(ctx, table)
	if err != nil {
		return nil, nil, err
	}
	if len(native) == 0 {
		return nil, nil, fmt.Errorf("table %s not found", table)
	}

	design, warnings := schema.Synthesize(table, native)

	columns := make([]models.ColumnInfo, 0, len(native))
	for i, nc := range native {
		columns = append(columns, models.ColumnInfo{
			Name:         nc.Name,
			DataType:     nc.DataType,
			Comment:      nc.Comment,
			IsPrimaryKey: design.Columns[i].PrimaryKey,
			IsNullable:   nc.Nullable,
		})
	}

	return columns, warnings, nil
}

// CreateTable executes the generated DDL, persists the marker comments as real
// column comments so they survive into introspection, and records the
// statement in the audit trail.
func (s *TableService) CreateTable(ctx context.Context, cfg config.Connection, req *CreateTableRequest) error {
	w, err := s.open(cfg)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Exec(ctx, req.SQL); err != nil {
		return err
	}

	tableName := ""
	if req.TableMetadata != nil {
		tableName = req.TableMetadata.TableName
		for _, col := range req.TableMetadata.Columns {
			if col.Comment == "" {
				continue
			}
			if err := w.SetColumnComment(ctx, tableName, col.Name, col.Comment); err != nil {
				// The table itself exists; a lost comment degrades List and
				// Reference round-tripping for this column but is not fatal.
				log.Printf("warning: %v", err)
			}
		}
	}

	if s.historyRepo != nil {
		if _, err := s.historyRepo.Record(ctx, tableName, req.SQL, req.Description, req.CreatedBy); err != nil {
			log.Printf("warning: %v", err)
		}
	}

	return nil
}

// History returns the recorded DDL statements, newest first.
func (s *TableService) History(ctx context.Context) ([]models.HistoryEntry, error) {
	if s.historyRepo == nil {
		return []models.HistoryEntry{}, nil
	}
	return s.historyRepo.List(ctx)
}
