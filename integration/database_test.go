//go:build database

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/huangsam/awardgap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startContainer starts req and returns host:port for the given container port.
func startContainer(t *testing.T, req testcontainers.ContainerRequest, port string) (string, string) {
	ctx := context.Background()
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	require.NoError(t, err)
	return host, mapped.Port()
}

// exerciseBackend runs the full CLI workflow against a configured backend.
func exerciseBackend(t *testing.T, backend schema.DatabaseBackend, connStr string) {
	env := []string{
		"AWARDGAP_STORE_BACKEND=" + string(backend),
		"AWARDGAP_STORE_DB_CONNECT=" + connStr,
	}

	if backend.IsSQL() {
		out, err := runAwardgap(t, env, "store", "migrate")
		require.NoError(t, err)
		assert.Contains(t, out, "version 2")
	}

	_, err := runAwardgap(t, env, "store", "clear")
	require.NoError(t, err)

	// Twice, to exercise the update path of the upsert.
	for range 2 {
		_, err = runAwardgap(t, env, "ingest", "testdata/movielist.csv")
		require.NoError(t, err)
	}

	out, err := runAwardgap(t, env, "intervals", "--output", "json")
	require.NoError(t, err)
	var report schema.IntervalReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Min, 1)
	require.Len(t, report.Max, 1)
	assert.Equal(t, "Joel Silver", report.Min[0].Producer)
	assert.Equal(t, "Matthew Vaughn", report.Max[0].Producer)

	out, err = runAwardgap(t, env, "store", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Movies: 28")

	_, err = runAwardgap(t, env, "store", "clear")
	require.NoError(t, err)
	out, err = runAwardgap(t, env, "movies", "--output", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

// TestAwardgapWithMySQL tests the awardgap CLI with a MySQL backend.
func TestAwardgapWithMySQL(t *testing.T) {
	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "awardgap",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}, "3306")

	exerciseBackend(t, schema.MySQLBackend, fmt.Sprintf("root:secret123@tcp(%s:%s)/awardgap", host, port))
}

// TestAwardgapWithPostgres tests the awardgap CLI with a PostgreSQL backend.
func TestAwardgapWithPostgres(t *testing.T) {
	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}, "5432")

	exerciseBackend(t, schema.PostgreSQLBackend, fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port))
}

// TestAwardgapWithMongo tests the awardgap CLI with a MongoDB backend.
func TestAwardgapWithMongo(t *testing.T) {
	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(60 * time.Second),
	}, "27017")

	exerciseBackend(t, schema.MongoDBBackend, fmt.Sprintf("mongodb://%s:%s/awardgap", host, port))
}
