package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMainVersion(t *testing.T) {
	assert.Equal(t, 0, Main([]string{"uos", "-version"}))
	assert.Equal(t, 0, Main([]string{"uos", "version"}))
}

func TestCommandsRegistered(t *testing.T) {
	initCommands(nil, nil)

	for _, name := range []string{
		"realms", "realm", "configs", "config", "config get", "config fetch",
		"config set", "config delete", "user", "persona", "friends", "version",
	} {
		factory, ok := Commands[name]
		if assert.True(t, ok, name) {
			c, err := factory()
			assert.NoError(t, err)
			assert.NotEmpty(t, c.Synopsis(), name)
		}
	}
}
