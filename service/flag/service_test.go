package flag

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/envbump/model"
)

var testDefaults = model.Config{
	Dir:       ".",
	Pattern:   ".env*",
	Key:       "SERVER_APP_VERSION",
	Output:    "table",
	LogLevel:  "warn",
	LogFormat: "text",
}

func TestGetParsedFlagsAllOptions(t *testing.T) {
	flags, err := NewService(testDefaults, io.Discard).GetParsedFlags([]string{
		"--dir", "/srv/app",
		"--pattern", "*.env",
		"--key", "CLIENT_APP_VERSION",
		"--output", "json",
		"--log-level", "debug",
		"--log-format", "logfmt",
		"--dry-run",
		"--buffered",
		"--strict",
		"2.3.1",
	})
	require.NoError(t, err)

	assert.Equal(t, model.Flags{
		TargetVersion: "2.3.1",
		Dir:           "/srv/app",
		Pattern:       "*.env",
		Key:           "CLIENT_APP_VERSION",
		Output:        "json",
		LogLevel:      "debug",
		LogFormat:     "logfmt",
		DryRun:        true,
		Buffered:      true,
		Strict:        true,
	}, flags)
}

func TestGetParsedFlagsDefaults(t *testing.T) {
	flags, err := NewService(testDefaults, io.Discard).GetParsedFlags([]string{"1.0.0"})
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", flags.TargetVersion)
	assert.Equal(t, ".", flags.Dir)
	assert.Equal(t, ".env*", flags.Pattern)
	assert.Equal(t, "SERVER_APP_VERSION", flags.Key)
	assert.Equal(t, "table", flags.Output)
	assert.False(t, flags.DryRun || flags.Buffered || flags.Strict || flags.Version)
}

func TestGetParsedFlagsShortNames(t *testing.T) {
	flags, err := NewService(testDefaults, io.Discard).GetParsedFlags([]string{"-d", "deploy", "-k", "APP_V", "-o", "none", "5.0.0-rc:1"})
	require.NoError(t, err)

	assert.Equal(t, "deploy", flags.Dir)
	assert.Equal(t, "APP_V", flags.Key)
	assert.Equal(t, "none", flags.Output)
	assert.Equal(t, "5.0.0-rc:1", flags.TargetVersion)
}

func TestGetParsedFlagsPositional(t *testing.T) {
	svc := NewService(testDefaults, io.Discard)

	flags, err := svc.GetParsedFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, flags.TargetVersion)

	flags, err = svc.GetParsedFlags([]string{"-v"})
	require.NoError(t, err)
	assert.True(t, flags.Version)

	_, err = svc.GetParsedFlags([]string{"1.0.0", "2.0.0"})
	assert.Error(t, err)

	flags, err = svc.GetParsedFlags([]string{"--", "-1"})
	require.NoError(t, err)
	assert.Equal(t, "-1", flags.TargetVersion)
}

func TestGetParsedFlagsErrors(t *testing.T) {
	_, err := NewService(testDefaults, io.Discard).GetParsedFlags([]string{"--unknown"})
	assert.Error(t, err)

	_, err = NewService(testDefaults, io.Discard).GetParsedFlags([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestGetParsedFlagsUsageGoesToWriter(t *testing.T) {
	var out bytes.Buffer
	_, err := NewService(testDefaults, &out).GetParsedFlags([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
	assert.Contains(t, out.String(), "Usage: envbump [flags] <version>")
	assert.Contains(t, out.String(), "--dry-run")
}
