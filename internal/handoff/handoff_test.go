//go:build !windows

package handoff

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhemric/spaenv/internal/materialize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer drops an executable stub on a private PATH and returns its name.
func fakeServer(t *testing.T, name string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	t.Setenv("PATH", dir)
	return path
}

func TestParse(t *testing.T) {
	want := fakeServer(t, "nginx")

	tests := []struct {
		name     string
		cmdline  string
		wantArgs []string
	}{
		{
			name:     "plain",
			cmdline:  "nginx",
			wantArgs: []string{"nginx"},
		},
		{
			name:     "single-quoted argument kept whole",
			cmdline:  "nginx -g 'daemon off;'",
			wantArgs: []string{"nginx", "-g", "daemon off;"},
		},
		{
			name:     "double quotes",
			cmdline:  `nginx -c "/etc/nginx/nginx.conf"`,
			wantArgs: []string{"nginx", "-c", "/etc/nginx/nginx.conf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse(tt.cmdline)
			require.NoError(t, err)
			assert.Equal(t, want, cmd.Path)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	tests := []struct {
		name    string
		cmdline string
	}{
		{name: "empty", cmdline: ""},
		{name: "blank", cmdline: "   "},
		{name: "unterminated quote", cmdline: "nginx 'daemon"},
		{name: "binary not on PATH", cmdline: "no-such-server"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.cmdline)
			require.Error(t, err)
		})
	}
}

func TestParseEmptyIsConfigError(t *testing.T) {
	_, err := Parse("")
	var cfgErr *materialize.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestFromArgs(t *testing.T) {
	want := fakeServer(t, "caddy")

	cmd, err := FromArgs([]string{"caddy", "file-server", "--root", "/srv"})
	require.NoError(t, err)
	assert.Equal(t, want, cmd.Path)
	assert.Equal(t, []string{"caddy", "file-server", "--root", "/srv"}, cmd.Args)
}

func TestFromArgsEmpty(t *testing.T) {
	_, err := FromArgs(nil)
	require.Error(t, err)
	var cfgErr *materialize.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}
