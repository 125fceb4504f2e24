package cmdutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 3}
	assert.Equal(t, "exit status 3", err.Error())
}

func TestFlagError(t *testing.T) {
	err := FlagErrorf("unknown flag %q", "--bogus")
	assert.Equal(t, `unknown flag "--bogus"`, err.Error())

	var flagErr *FlagError
	assert.True(t, errors.As(err, &flagErr))
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &flagErr))
}
