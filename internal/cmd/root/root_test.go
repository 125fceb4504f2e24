package root

import (
	"testing"

	"github.com/dhemric/spaenv/internal/cmdutil"
	"github.com/dhemric/spaenv/internal/iostreams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmdRoot(t *testing.T) {
	ios, _, _, _ := iostreams.Test()
	f := &cmdutil.Factory{Version: "1.0.0", Commit: "abc1234", IOStreams: ios}

	cmd := NewCmdRoot(f)

	require.Equal(t, "spaenv", cmd.Use)
	assert.True(t, cmd.SilenceUsage)

	want := []string{"init", "render", "run", "watch", "version"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "missing subcommand %q", name)
	}

	require.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("workdir"))
}
