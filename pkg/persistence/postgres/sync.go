package postgres // import "github.com/favorexchange/favor-billboard/pkg/persistence/postgres"

import (
	"fmt"
)

const (
	// SyncTableName is the name of the billboard sync table
	SyncTableName = "billboard_sync"
)

// SyncSchemaString returns the query to create this table
// NOTE: This table only is allowed to ever have 1 row
func SyncSchemaString(tableName string) string {
	schema := fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s(
            last_refresh_timestamp BIGINT NOT NULL DEFAULT 0,
            last_event_block BIGINT NOT NULL DEFAULT 0,
            one_row BOOL NOT NULL DEFAULT TRUE
        );
        CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s(one_row);
    `, tableName, tableName+"_one_row", tableName)
	return schema
}

// SyncData contains the synchronization point persisted in the sync table
// NOTE: bigint in postgres: -9223372036854775808 to +9223372036854775807
// block numbers fit comfortably
type SyncData struct {
	LastRefreshTs  int64 `db:"last_refresh_timestamp"`
	LastEventBlock int64 `db:"last_event_block"`
}
