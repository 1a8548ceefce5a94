package cmd

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version", "--env-file", "testdata-missing.env"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, Version+"\n", out.String())
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	setupLogging(map[string]string{"LOG_LEVEL": "debug", "LOG_FORMAT": "json"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	setupLogging(map[string]string{"LOG_LEVEL": "loud"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["api"])
	assert.True(t, names["version"])
}
