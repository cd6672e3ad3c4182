package models

import "time"

// TableSummary is one entry in the table listing. ID is the table name: the
// warehouse exposes no stable numeric table id at this layer.
type TableSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ColumnCount int    `json:"columnCount"`
	RowCount    int64  `json:"rCount"`
}

// ColumnInfo is one column of a table's structure as served to the console.
type ColumnInfo struct {
	Name         string `json:"name"`
	DataType     string `json:"dataType"`
	Comment      string `json:"comment,omitempty"`
	IsPrimaryKey bool   `json:"isPrimaryKey,omitempty"`
	IsNullable   bool   `json:"isNullable"`
}

// HistoryEntry is one recorded DDL execution.
type HistoryEntry struct {
	ID          string    `json:"id"`
	TableName   string    `json:"tableName"`
	Statement   string    `json:"statement"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"createdBy,omitempty"`
	ExecutedAt  time.Time `json:"executedAt"`
}
