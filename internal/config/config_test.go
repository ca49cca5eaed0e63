package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanpama/trailgen/internal/config"
)

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`
schema:
  - schema/
output: graph/trails_gen.go
package: graph
ownership:
  User.name: owned
  User.friends: borrowed
otel:
  endpoint: localhost:4317
`))
	require.NoError(t, err)
	require.Equal(t, []string{"schema/"}, cfg.Schema)
	require.Equal(t, "graph", cfg.Package)
	require.Equal(t, config.Owned, cfg.OwnershipOf("User", "name"))
	require.Equal(t, config.Borrowed, cfg.OwnershipOf("User", "friends"))
	require.Equal(t, config.Borrowed, cfg.OwnershipOf("User", "email"))
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.Equal(t, "trailgen", cfg.Otel.Service)
}

func TestParseInvalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		yaml string
		want string
	}{
		{"missing schema", "package: graph", "Schema"},
		{"bad package", "schema: [a.graphql]\npackage: 1graph", "goident"},
		{"bad ownership value", "schema: [a.graphql]\nownership:\n  User.name: shared", "oneof"},
		{"bad ownership key", "schema: [a.graphql]\nownership:\n  name: owned", "fieldref"},
		{"bad log level", "schema: [a.graphql]\nlog:\n  level: loud", "oneof"},
		{"bad log format", "schema: [a.graphql]\nlog:\n  format: xml", "oneof"},
		{"bad otel endpoint", "schema: [a.graphql]\notel:\n  endpoint: collector", "hostname_port"},
		{"unknown key", "schema: [a.graphql]\nsurprise: true", "surprise"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trailgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schema: [schema.graphql]\n"), 0o644))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "trails_gen.go", cfg.Output)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read config")
}
