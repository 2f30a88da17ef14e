package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/ent"
)

// newTestClient opens an in-memory SQLite database with the Ent schema applied.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	cfg := Config{
		Path:         "test?mode=memory&cache=shared",
		MaxOpenConns: 1,
	}

	db, err := stdsql.Open("sqlite3", cfg.DSN())
	require.NoError(t, err)
	db.SetMaxOpenConns(cfg.MaxOpenConns)

	drv := entsql.OpenDB(dialect.SQLite, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests; production uses the embedded SQL migrations.
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		contains []string
		excludes []string
	}{
		{
			name:     "file database enables WAL",
			path:     "/var/lib/cardigan/cardigan.db",
			contains: []string{"_fk=1", "_busy_timeout=5000", "_journal=WAL"},
		},
		{
			name:     "memory database skips WAL",
			path:     ":memory:",
			contains: []string{"_fk=1"},
			excludes: []string{"_journal=WAL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := Config{Path: tt.path}.DSN()
			for _, want := range tt.contains {
				assert.Contains(t, dsn, want)
			}
			for _, notWant := range tt.excludes {
				assert.NotContains(t, dsn, notWant)
			}
		})
	}
}

func TestNewClient_FileDatabase(t *testing.T) {
	ctx := context.Background()

	cfg := Config{
		Path:         filepath.Join(t.TempDir(), "cardigan.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 2,
	}

	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	// Migrations created the tables.
	count, err := client.Job.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Foreign keys are enforced by the DSN.
	var fk int
	err = client.DB().QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk)
}

func TestNewClient_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "cardigan.db")

	for i := 0; i < 2; i++ {
		client, err := NewClient(ctx, Config{Path: path, MaxOpenConns: 2})
		require.NoError(t, err, "open attempt %d", i+1)
		require.NoError(t, client.Close())
	}
}

func TestDatabaseClient_Health(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	err = json.Unmarshal(jsonBytes, &jsonData)
	require.NoError(t, err)

	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.GreaterOrEqual(t, responseTime, float64(0))
	// If this were nanoseconds it would exceed 1,000,000 for a 1ms ping.
	assert.Less(t, responseTime, float64(1000000))
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{"DB_PATH", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS"}

	tests := []struct {
		name     string
		envVars  map[string]string
		wantPath string
		wantOpen int
	}{
		{
			name:     "defaults",
			envVars:  map[string]string{},
			wantPath: "cardigan.db",
			wantOpen: 4,
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"DB_PATH":           "/data/jobs.db",
				"DB_MAX_OPEN_CONNS": "8",
			},
			wantPath: "/data/jobs.db",
			wantOpen: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				os.Setenv(key, val)
			}
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			cfg, err := LoadConfigFromEnv()
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, cfg.Path)
			assert.Equal(t, tt.wantOpen, cfg.MaxOpenConns)
		})
	}
}
