package postgres

import (
	"fmt"
)

// CheckTableCount returns the query to check the count of the table
func CheckTableCount(tableName string) string {
	queryString := fmt.Sprintf(`SELECT COUNT(*) FROM %v`, tableName) // nolint: gosec
	return queryString
}

// DropTable returns the query to drop a table, used to clean up test tables
func DropTable(tableName string) string {
	return fmt.Sprintf(`DROP TABLE IF EXISTS %v`, tableName) // nolint: gosec
}
