// Package database provides shared test database helpers.
package database

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/enttest"

	_ "github.com/mattn/go-sqlite3"
)

var dbCounter atomic.Int64

// NewTestClient opens an isolated in-memory SQLite database with the
// schema created, torn down when the test ends. Each call gets its own
// database; cache=shared keeps it alive across the pooled connections of
// a single client.
func NewTestClient(t *testing.T) *ent.Client {
	t.Helper()

	dsn := fmt.Sprintf("file:cardigan_test_%d?mode=memory&cache=shared&_fk=1",
		dbCounter.Add(1))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}
