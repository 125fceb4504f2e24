package render

import (
	"bytes"
	"testing"

	"github.com/dhemric/spaenv/internal/cmdutil"
	"github.com/google/shlex"
	"github.com/stretchr/testify/require"
)

func TestNewCmdRender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantOpts Options
	}{
		{
			name:  "no flags",
			input: "",
		},
		{
			name:  "globs and allow names",
			input: "-g 'dist/runtime-env*.js' -g dist/index.html -a ENV -a BASE_URL",
			wantOpts: Options{
				Globs: []string{"dist/runtime-env*.js", "dist/index.html"},
				Allow: []string{"ENV", "BASE_URL"},
			},
		},
		{
			name:  "prefixes and all-env",
			input: "-p VITE_ --all-env",
			wantOpts: Options{
				Prefixes: []string{"VITE_"},
				AllEnv:   true,
			},
		},
		{
			name:  "strict dry-run with env file and lock",
			input: "--strict --dry-run --env-file .env.production --lock-file /tmp/spaenv.lock",
			wantOpts: Options{
				EnvFiles: []string{".env.production"},
				Strict:   true,
				DryRun:   true,
				LockFile: "/tmp/spaenv.lock",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &cmdutil.Factory{}

			var gotOpts *Options
			cmd := NewCmdRender(f, func(opts *Options) error {
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
			require.Equal(t, tt.wantOpts, *gotOpts)
		})
	}
}

func TestCmdRender_Properties(t *testing.T) {
	f := &cmdutil.Factory{}
	cmd := NewCmdRender(f, nil)

	require.Equal(t, "render [flags]", cmd.Use)
	require.NotEmpty(t, cmd.Short)
	require.NotEmpty(t, cmd.Long)
	require.NotEmpty(t, cmd.Example)
	require.NotNil(t, cmd.RunE)

	for _, flag := range []string{"glob", "allow", "prefix", "all-env", "env-file", "strict", "dry-run", "lock-file"} {
		require.NotNil(t, cmd.Flags().Lookup(flag), flag)
	}
	require.NotNil(t, cmd.Flags().ShorthandLookup("g"))
	require.NotNil(t, cmd.Flags().ShorthandLookup("a"))
	require.NotNil(t, cmd.Flags().ShorthandLookup("p"))
}

func TestCmdRenderRejectsPositionalArgs(t *testing.T) {
	f := &cmdutil.Factory{}
	cmd := NewCmdRender(f, func(opts *Options) error { return nil })

	cmd.SetArgs([]string{"stray"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	_, err := cmd.ExecuteC()
	require.Error(t, err)
}
