package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/databricks/databricks-sql-go"

	"dbxconsole/internal/config"
)

// OpenWarehouse opens a connection to the configured SQL warehouse and verifies
// it with a ping. Connections are opened per request and closed by the caller;
// pooling policy is out of scope here.
func OpenWarehouse(cfg config.Connection) (*sql.DB, error) {
	dsn := fmt.Sprintf("token:%s@%s:%d%s",
		cfg.AccessToken,
		cfg.ServerHostname,
		cfg.Port,
		cfg.HTTPPath,
	)

	db, err := sql.Open("databricks", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open warehouse connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach warehouse at %s: %w", cfg.ServerHostname, err)
	}

	return db, nil
}
