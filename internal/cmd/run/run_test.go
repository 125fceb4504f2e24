package run

import (
	"bytes"
	"testing"

	"github.com/dhemric/spaenv/internal/cmdutil"
	"github.com/google/shlex"
	"github.com/stretchr/testify/require"
)

func TestNewCmdRun(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantGlobs     []string
		wantServeArgs []string
	}{
		{
			name:  "no args",
			input: "",
		},
		{
			name:          "server command after double dash",
			input:         "-g 'dist/*.js' -a ENV -- nginx -g 'daemon off;'",
			wantGlobs:     []string{"dist/*.js"},
			wantServeArgs: []string{"nginx", "-g", "daemon off;"},
		},
		{
			name:          "bare server command",
			input:         "-- caddy file-server --root /srv",
			wantServeArgs: []string{"caddy", "file-server", "--root", "/srv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &cmdutil.Factory{}

			var gotOpts *Options
			cmd := NewCmdRun(f, func(opts *Options) error {
				gotOpts = opts
				return nil
			})

			argv, err := shlex.Split(tt.input)
			require.NoError(t, err)
			cmd.SetArgs(argv)
			cmd.SetIn(&bytes.Buffer{})
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			_, err = cmd.ExecuteC()
			require.NoError(t, err)
			require.NotNil(t, gotOpts)
			require.Equal(t, tt.wantGlobs, gotOpts.Pass.Globs)
			require.Equal(t, tt.wantServeArgs, gotOpts.ServeArgs)
		})
	}
}

func TestCmdRun_Properties(t *testing.T) {
	f := &cmdutil.Factory{}
	cmd := NewCmdRun(f, nil)

	require.Equal(t, "run [flags] [-- COMMAND [ARG...]]", cmd.Use)
	require.NotEmpty(t, cmd.Short)
	require.NotEmpty(t, cmd.Long)
	require.NotEmpty(t, cmd.Example)
	require.NotNil(t, cmd.RunE)

	// run shares the pass flags with render but has no dry-run: a dry pass
	// followed by a real server start would serve raw placeholders.
	require.NotNil(t, cmd.Flags().Lookup("glob"))
	require.NotNil(t, cmd.Flags().Lookup("strict"))
	require.Nil(t, cmd.Flags().Lookup("dry-run"))
}
