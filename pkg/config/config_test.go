package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xplshn/vinculum/pkg/cli"
	"github.com/xplshn/vinculum/pkg/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.NewConfig()
	assert.Equal(t, config.StdVinculum, cfg.StdName)
	assert.Equal(t, config.NotationUnicode, cfg.Notation)
	assert.Equal(t, 4_000_000, cfg.MaxValue)

	for ft := config.Feature(0); ft < config.FeatCount; ft++ {
		assert.True(t, cfg.IsFeatureEnabled(ft), cfg.Features[ft].Name)
	}
	assert.True(t, cfg.IsWarningEnabled(config.WarnNonCanonical))
	assert.False(t, cfg.IsWarningEnabled(config.WarnLowercase))
	assert.False(t, cfg.IsWarningEnabled(config.WarnPedantic))
	assert.Equal(t, config.WarnStrayNulla, cfg.WarningMap["stray-nulla"])
	assert.Equal(t, config.FeatFoldCase, cfg.FeatureMap["fold-case"])
}

func TestApplyStd(t *testing.T) {
	cfg := config.NewConfig()
	require.NoError(t, cfg.ApplyStd(config.StdClassic))
	assert.Equal(t, config.MaxClassic, cfg.MaxValue)
	assert.False(t, cfg.IsFeatureEnabled(config.FeatASCIIMega))
	assert.False(t, cfg.IsFeatureEnabled(config.FeatUnicodeMega))
	assert.True(t, cfg.IsFeatureEnabled(config.FeatNulla))
	assert.False(t, cfg.IsWarningEnabled(config.WarnMixedNotation))

	require.NoError(t, cfg.ApplyStd(config.StdVinculum))
	assert.Equal(t, config.MaxVinculum, cfg.MaxValue)
	assert.True(t, cfg.IsFeatureEnabled(config.FeatUnicodeMega))
	assert.True(t, cfg.IsWarningEnabled(config.WarnMixedNotation))

	err := cfg.ApplyStd("etruscan")
	assert.EqualError(t, err, "unsupported standard 'etruscan'. Supported: 'vinculum', 'classic'")
	assert.Equal(t, config.StdVinculum, cfg.StdName)
}

func TestApplyStdPedantic(t *testing.T) {
	cfg := config.NewConfig()
	cfg.SetWarning(config.WarnPedantic, true)
	require.NoError(t, cfg.ApplyStd(config.StdClassic))

	assert.False(t, cfg.IsFeatureEnabled(config.FeatNulla), "classic numerals had no zero")
	assert.False(t, cfg.IsFeatureEnabled(config.FeatFoldCase))
	assert.True(t, cfg.IsWarningEnabled(config.WarnLowercase))
	assert.True(t, cfg.IsWarningEnabled(config.WarnStrayNulla))
}

func TestSetNotation(t *testing.T) {
	cfg := config.NewConfig()
	require.NoError(t, cfg.SetNotation("ASCII"))
	assert.Equal(t, config.NotationASCII, cfg.Notation)
	assert.Error(t, cfg.SetNotation("morse"))
	assert.Equal(t, config.NotationASCII, cfg.Notation)
}

func TestProcessFlags(t *testing.T) {
	cfg := config.NewConfig()
	cfg.ProcessFlags([]string{"-Wno-non-canonical", "-Wall", "-Fno-nulla", "-Wbogus"})

	assert.False(t, cfg.IsWarningEnabled(config.WarnNonCanonical), "individual flags win over -Wall")
	assert.True(t, cfg.IsWarningEnabled(config.WarnLowercase))
	assert.False(t, cfg.IsWarningEnabled(config.WarnPedantic), "-Wall leaves pedantic alone")
	assert.False(t, cfg.IsFeatureEnabled(config.FeatNulla))

	cfg.ProcessFlags([]string{"-Wno-all"})
	for wt := config.Warning(0); wt < config.WarnCount; wt++ {
		assert.False(t, cfg.IsWarningEnabled(wt), cfg.Warnings[wt].Name)
	}
}

func TestFlagGroups(t *testing.T) {
	cfg := config.NewConfig()
	fs := cli.NewFlagSet("vinculum")
	warningFlags, featureFlags := cfg.SetupFlagGroups(fs)
	require.Len(t, warningFlags, int(config.WarnCount))
	require.Len(t, featureFlags, int(config.FeatCount))
	assert.True(t, featureFlags[config.FeatNulla].Default)
	assert.False(t, warningFlags[config.WarnLowercase].Default)

	require.NoError(t, fs.Parse([]string{"-Wlowercase", "-Fno-fold-case", "-Wno-stray-nulla"}))
	cfg.ApplyFlagGroups(warningFlags, featureFlags)

	assert.True(t, cfg.IsWarningEnabled(config.WarnLowercase))
	assert.False(t, cfg.IsWarningEnabled(config.WarnStrayNulla))
	assert.False(t, cfg.IsFeatureEnabled(config.FeatFoldCase))
	assert.True(t, cfg.IsFeatureEnabled(config.FeatNulla), "untouched switches keep their state")
}
