package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"dbxconsole/internal/models"
	"dbxconsole/internal/schema"
)

// maxRows caps row fetches; the console has no paging.
const maxRows = 1000

// WarehouseRepository reads and writes one warehouse over an open connection.
// Table and column identifiers are interpolated verbatim, as the DDL path does.
type WarehouseRepository struct {
	db *sql.DB
	ns schema.Namespace
}

func NewWarehouseRepository(db *sql.DB, ns schema.Namespace) *WarehouseRepository {
	return &WarehouseRepository{db: db, ns: ns}
}

func (r *WarehouseRepository) Close() error {
	return r.db.Close()
}

// ListTables returns all base tables in the namespace with their column and row
// counts.
func (r *WarehouseRepository) ListTables(ctx context.Context) ([]models.TableSummary, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_catalog = ? AND table_schema = ?
		AND table_type != 'VIEW'
		ORDER BY table_name
	`

	rows, err := r.db.QueryContext(ctx, query, r.ns.Catalog, r.ns.Schema)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	columnCounts, err := r.columnCounts(ctx)
	if err != nil {
		return nil, err
	}

	tables := make([]models.TableSummary, 0, len(names))
	for _, name := range names {
		var rowCount int64
		countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", r.ns.Qualify(name))
		if err := r.db.QueryRowContext(ctx, countQuery).Scan(&rowCount); err != nil {
			return nil, fmt.Errorf("failed to count rows of %s: %w", name, err)
		}
		tables = append(tables, models.TableSummary{
			ID:          name,
			Name:        name,
			ColumnCount: columnCounts[name],
			RowCount:    rowCount,
		})
	}

	return tables, nil
}

func (r *WarehouseRepository) columnCounts(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT table_name, COUNT(*)
		FROM information_schema.columns
		WHERE table_catalog = ? AND table_schema = ?
		GROUP BY table_name
	`

	rows, err := r.db.QueryContext(ctx, query, r.ns.Catalog, r.ns.Schema)
	if err != nil {
		return nil, fmt.Errorf("failed to count columns: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		counts[name] = count
	}

	return counts, rows.Err()
}

// Columns returns the native column definitions for a table, in ordinal order.
func (r *WarehouseRepository) Columns(ctx context.Context, table string) ([]schema.NativeColumn, error) {
	query := `
		SELECT column_name, full_data_type, is_nullable, comment
		FROM information_schema.columns
		WHERE table_catalog = ? AND table_schema = ? AND table_name = ?
		ORDER BY ordinal_position
	`

	rows, err := r.db.QueryContext(ctx, query, r.ns.Catalog, r.ns.Schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for %s: %w", table, err)
	}
	defer rows.Close()

	var columns []schema.NativeColumn
	for rows.Next() {
		var col schema.NativeColumn
		var nullable string
		var comment sql.NullString
		if err := rows.Scan(&col.Name, &col.DataType, &nullable, &comment); err != nil {
			return nil, err
		}
		col.Nullable = nullable == "YES"
		col.Comment = comment.String
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	pks, err := r.primaryKeyColumns(ctx, table)
	if err != nil {
		return nil, err
	}
	for i := range columns {
		if pks[columns[i].Name] {
			columns[i].PrimaryKey = true
		}
	}

	return columns, nil
}

func (r *WarehouseRepository) primaryKeyColumns(ctx context.Context, table string) (map[string]bool, error) {
	query := `
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		WHERE tc.constraint_type = 'PRIMARY KEY'
			AND tc.table_catalog = ?
			AND tc.table_schema = ?
			AND tc.table_name = ?
		ORDER BY kcu.ordinal_position
	`

	rows, err := r.db.QueryContext(ctx, query, r.ns.Catalog, r.ns.Schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to get primary keys for %s: %w", table, err)
	}
	defer rows.Close()

	pks := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		pks[name] = true
	}

	return pks, rows.Err()
}

// Rows fetches the table's data, capped at maxRows.
func (r *WarehouseRepository) Rows(ctx context.Context, table string) ([]map[string]any, error) {
	query := fmt.Sprintf("SELECT * FROM %s LIMIT %d", r.ns.Qualify(table), maxRows)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rows of %s: %w", table, err)
	}
	defer rows.Close()

	columnNames, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	data := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columnNames))
		pointers := make([]any, len(columnNames))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(columnNames))
		for i, name := range columnNames {
			if b, ok := values[i].([]byte); ok {
				row[name] = string(b)
			} else {
				row[name] = values[i]
			}
		}
		data = append(data, row)
	}

	return data, rows.Err()
}

// InsertRow inserts one row. The caller has already validated the values and
// filtered the map down to real, writable columns.
func (r *WarehouseRepository) InsertRow(ctx context.Context, table string, row map[string]any, columnOrder []string) error {
	if len(columnOrder) == 0 {
		return fmt.Errorf("no writable columns in row")
	}

	placeholders := make([]string, len(columnOrder))
	args := make([]any, len(columnOrder))
	for i, name := range columnOrder {
		placeholders[i] = "?"
		args[i] = row[name]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		r.ns.Qualify(table),
		strings.Join(columnOrder, ", "),
		strings.Join(placeholders, ", "))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s rejected: %w", table, err)
	}
	return nil
}

// UpdateRow updates the row whose pkColumn equals rowID.
func (r *WarehouseRepository) UpdateRow(ctx context.Context, table, pkColumn, rowID string, row map[string]any, columnOrder []string) error {
	if len(columnOrder) == 0 {
		return fmt.Errorf("no writable columns in row")
	}

	assignments := make([]string, len(columnOrder))
	args := make([]any, 0, len(columnOrder)+1)
	for i, name := range columnOrder {
		assignments[i] = name + " = ?"
		args = append(args, row[name])
	}
	args = append(args, rowID)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		r.ns.Qualify(table),
		strings.Join(assignments, ", "),
		pkColumn)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update of %s rejected: %w", table, err)
	}
	return nil
}

// DeleteRow deletes the row whose pkColumn equals rowID.
func (r *WarehouseRepository) DeleteRow(ctx context.Context, table, pkColumn, rowID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", r.ns.Qualify(table), pkColumn)

	if _, err := r.db.ExecContext(ctx, query, rowID); err != nil {
		return fmt.Errorf("delete from %s rejected: %w", table, err)
	}
	return nil
}

// Exec runs a DDL statement verbatim.
func (r *WarehouseRepository) Exec(ctx context.Context, statement string) error {
	if _, err := r.db.ExecContext(ctx, statement); err != nil {
		return fmt.Errorf("statement rejected by warehouse: %w", err)
	}
	return nil
}

// SetColumnComment persists a column comment so marker metadata survives into
// information_schema.
func (r *WarehouseRepository) SetColumnComment(ctx context.Context, table, column, comment string) error {
	escaped := strings.ReplaceAll(comment, "'", "''")
	query := fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s COMMENT '%s'",
		r.ns.Qualify(table), column, escaped)

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to set comment on %s.%s: %w", table, column, err)
	}
	return nil
}
