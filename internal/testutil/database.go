package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the mirror test database. Expects a MySQL instance
// on localhost:3306 with a 'melmagia_test' schema; tests are skipped
// when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/melmagia_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// SetupTestTables creates the two mirror tables.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createProducts := `
	CREATE TABLE IF NOT EXISTS products (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL,
		category VARCHAR(32) NOT NULL,
		image_url VARCHAR(512),
		rating DOUBLE NOT NULL DEFAULT 0,
		is_available TINYINT(1)
	)`

	createOrders := `
	CREATE TABLE IF NOT EXISTS orders (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		customer_id VARCHAR(64) NOT NULL,
		customer_name VARCHAR(255) NOT NULL,
		items JSON,
		total DECIMAL(10,2) NOT NULL,
		status VARCHAR(32) NOT NULL,
		created_at DATETIME NOT NULL,
		address VARCHAR(512) NOT NULL,
		payment_method VARCHAR(64) NOT NULL,
		courier_name VARCHAR(255)
	)`

	for _, stmt := range []string{createProducts, createOrders} {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to create test table: %v", err)
		}
	}
}

// CleanupTestDB empties the mirror tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	for _, table := range []string{"orders", "products"} {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}
