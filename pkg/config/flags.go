package config

import "github.com/xplshn/vinculum/pkg/cli"

// SetupFlagGroups registers -W<warning> and -F<feature> switches on fs. The
// returned entries are indexed by Warning and Feature respectively.
func (c *Config) SetupFlagGroups(fs *cli.FlagSet) (warningFlags, featureFlags []cli.FlagGroupEntry) {
	warningFlags = make([]cli.FlagGroupEntry, WarnCount)
	for i := Warning(0); i < WarnCount; i++ {
		info := c.Warnings[i]
		enabled, disabled := false, false
		warningFlags[i] = cli.FlagGroupEntry{
			Name:     info.Name,
			Prefix:   "W",
			Usage:    info.Description,
			Default:  info.Enabled,
			Enabled:  &enabled,
			Disabled: &disabled,
		}
	}

	featureFlags = make([]cli.FlagGroupEntry, FeatCount)
	for i := Feature(0); i < FeatCount; i++ {
		info := c.Features[i]
		enabled, disabled := false, false
		featureFlags[i] = cli.FlagGroupEntry{
			Name:     info.Name,
			Prefix:   "F",
			Usage:    info.Description,
			Default:  info.Enabled,
			Enabled:  &enabled,
			Disabled: &disabled,
		}
	}

	fs.AddFlagGroup("Warning Flags", "Enable or disable specific warnings", "warning", "Available Warnings:", warningFlags)
	fs.AddFlagGroup("Feature Flags", "Enable or disable specific features", "feature", "Available Features:", featureFlags)
	return warningFlags, featureFlags
}

// ApplyFlagGroups copies the switches given on the command line back into the
// config. Untouched switches leave the current (standard-derived) state alone.
func (c *Config) ApplyFlagGroups(warningFlags, featureFlags []cli.FlagGroupEntry) {
	for i, entry := range warningFlags {
		if entry.Enabled != nil && *entry.Enabled {
			c.SetWarning(Warning(i), true)
		}
		if entry.Disabled != nil && *entry.Disabled {
			c.SetWarning(Warning(i), false)
		}
	}
	for i, entry := range featureFlags {
		if entry.Enabled != nil && *entry.Enabled {
			c.SetFeature(Feature(i), true)
		}
		if entry.Disabled != nil && *entry.Disabled {
			c.SetFeature(Feature(i), false)
		}
	}
}
