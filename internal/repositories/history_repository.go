package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dbxconsole/internal/models"
)

// HistoryRepository records executed DDL statements in the local sqlite store.
type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Record persists one executed statement and returns the stored entry.
func (r *HistoryRepository) Record(ctx context.Context, tableName, statement, description, createdBy string) (*models.HistoryEntry, error) {
	entry := &models.HistoryEntry{
		ID:          uuid.NewString(),
		TableName:   tableName,
		Statement:   statement,
		Description: description,
		CreatedBy:   createdBy,
		ExecutedAt:  time.Now().UTC(),
	}

	var desc, by sql.NullString
	if description != "" {
		desc = sql.NullString{String: description, Valid: true}
	}
	if createdBy != "" {
		by = sql.NullString{String: createdBy, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO ddl_history (id, table_name, statement, description, created_by, executed_at) VALUES (?, ?, ?, ?, ?, ?)",
		entry.ID, entry.TableName, entry.Statement, desc, by, entry.ExecutedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record history entry: %w", err)
	}

	return entry, nil
}

// List returns all recorded statements, newest first.
func (r *HistoryRepository) List(ctx context.Context) ([]models.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, table_name, statement, description, created_by, executed_at FROM ddl_history ORDER BY executed_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0)
	for rows.Next() {
		var entry models.HistoryEntry
		var desc, by sql.NullString
		if err := rows.Scan(&entry.ID, &entry.TableName, &entry.Statement, &desc, &by, &entry.ExecutedAt); err != nil {
			return nil, err
		}
		entry.Description = desc.String
		entry.CreatedBy = by.String
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
