package config

import (
	"fmt"
	"strings"
)

type Feature int

const (
	FeatASCIIMega Feature = iota
	FeatUnicodeMega
	FeatNulla
	FeatFoldCase
	FeatCount
)

type Warning int

const (
	WarnNonCanonical Warning = iota
	WarnStrayNulla
	WarnMixedNotation
	WarnLowercase
	WarnPedantic
	WarnCount
)

// Notation selects how generated numerals spell the vinculum.
type Notation string

const (
	NotationUnicode Notation = "unicode"
	NotationASCII   Notation = "ascii"
)

const (
	StdVinculum = "vinculum"
	StdClassic  = "classic"
)

const (
	// MaxVinculum is the exclusive ceiling when overlined letters are available:
	// the top decimal position (M̅) never needs a digit above 3.
	MaxVinculum = 4_000_000
	// MaxClassic is the exclusive ceiling of plain I..M notation.
	MaxClassic = 4_000
)

type Info struct {
	Name        string
	Enabled     bool
	Description string
}

type Config struct {
	Features   map[Feature]Info
	Warnings   map[Warning]Info
	FeatureMap map[string]Feature
	WarningMap map[string]Warning
	StdName    string
	Notation   Notation
	MaxValue   int
}

func NewConfig() *Config {
	cfg := &Config{
		Features:   make(map[Feature]Info),
		Warnings:   make(map[Warning]Info),
		FeatureMap: make(map[string]Feature),
		WarningMap: make(map[string]Warning),
		StdName:    StdVinculum,
		Notation:   NotationUnicode,
		MaxValue:   MaxVinculum,
	}

	features := map[Feature]Info{
		FeatASCIIMega:   {"ascii-mega", true, "Accept the ASCII '_' prefix as a vinculum (e.g. '_X')."},
		FeatUnicodeMega: {"unicode-mega", true, "Accept the combining overline U+0305 as a vinculum."},
		FeatNulla:       {"nulla", true, "Accept 'N' as the numeral for zero."},
		FeatFoldCase:    {"fold-case", true, "Uppercase numeral text before reading it."},
	}

	warnings := map[Warning]Info{
		WarnNonCanonical:  {"non-canonical", true, "Warn when a numeral is not written in standard form."},
		WarnStrayNulla:    {"stray-nulla", true, "Warn when 'N' appears next to other numerals."},
		WarnMixedNotation: {"mixed-notation", true, "Warn when '_' and U+0305 are both used in one numeral."},
		WarnLowercase:     {"lowercase", false, "Warn when a numeral had to be case folded."},
		WarnPedantic:      {"pedantic", false, "Issue all warnings demanded by the selected standard."},
	}

	cfg.Features, cfg.Warnings = features, warnings
	for ft, info := range features {
		cfg.FeatureMap[info.Name] = ft
	}
	for wt, info := range warnings {
		cfg.WarningMap[info.Name] = wt
	}

	return cfg
}

func (c *Config) SetFeature(ft Feature, enabled bool) {
	if info, ok := c.Features[ft]; ok {
		info.Enabled = enabled
		c.Features[ft] = info
	}
}

func (c *Config) IsFeatureEnabled(ft Feature) bool { return c.Features[ft].Enabled }

func (c *Config) SetWarning(wt Warning, enabled bool) {
	if info, ok := c.Warnings[wt]; ok {
		info.Enabled = enabled
		c.Warnings[wt] = info
	}
}

func (c *Config) IsWarningEnabled(wt Warning) bool { return c.Warnings[wt].Enabled }

// ApplyStd switches between the vinculum notation and plain classic numerals.
func (c *Config) ApplyStd(stdName string) error {
	isPedantic := c.IsWarningEnabled(WarnPedantic)

	type stdSettings struct {
		feature       Feature
		classicValue  bool
		vinculumValue bool
	}

	settings := []stdSettings{
		{FeatASCIIMega, false, true},
		{FeatUnicodeMega, false, true},
		{FeatNulla, !isPedantic, true},
		{FeatFoldCase, !isPedantic, !isPedantic},
	}

	switch stdName {
	case StdClassic:
		for _, s := range settings {
			c.SetFeature(s.feature, s.classicValue)
		}
		c.MaxValue = MaxClassic
		c.SetWarning(WarnMixedNotation, false)
	case StdVinculum:
		for _, s := range settings {
			c.SetFeature(s.feature, s.vinculumValue)
		}
		c.MaxValue = MaxVinculum
		c.SetWarning(WarnMixedNotation, true)
	default:
		return fmt.Errorf("unsupported standard '%s'. Supported: '%s', '%s'", stdName, StdVinculum, StdClassic)
	}
	if isPedantic {
		c.SetWarning(WarnLowercase, true)
		c.SetWarning(WarnStrayNulla, true)
		c.SetWarning(WarnNonCanonical, true)
	}
	c.StdName = stdName
	return nil
}

func (c *Config) SetNotation(name string) error {
	switch n := Notation(strings.ToLower(name)); n {
	case NotationUnicode, NotationASCII:
		c.Notation = n
		return nil
	default:
		return fmt.Errorf("unsupported notation '%s'. Supported: '%s', '%s'", name, NotationUnicode, NotationASCII)
	}
}

func (c *Config) applyFlag(flag string) {
	trimmed := strings.TrimPrefix(flag, "-")
	isNo := strings.HasPrefix(trimmed, "Wno-") || strings.HasPrefix(trimmed, "Fno-")
	enable := !isNo

	var name string
	var isWarning bool

	switch {
	case strings.HasPrefix(trimmed, "W"):
		name = strings.TrimPrefix(trimmed, "W")
		if isNo {
			name = strings.TrimPrefix(name, "no-")
		}
		isWarning = true
	case strings.HasPrefix(trimmed, "F"):
		name = strings.TrimPrefix(trimmed, "F")
		if isNo {
			name = strings.TrimPrefix(name, "no-")
		}
	default:
		name = trimmed
		isWarning = true
	}

	if name == "all" && isWarning {
		for i := Warning(0); i < WarnCount; i++ {
			if i != WarnPedantic {
				c.SetWarning(i, enable)
			}
		}
		return
	}

	if isWarning {
		if w, ok := c.WarningMap[name]; ok {
			c.SetWarning(w, enable)
		}
	} else {
		if f, ok := c.FeatureMap[name]; ok {
			c.SetFeature(f, enable)
		}
	}
}

// ProcessFlags applies -W/-F style flags; -Wall and -Wno-all go first so that
// individual flags can override them.
func (c *Config) ProcessFlags(flags []string) {
	for _, f := range flags {
		if f == "-Wall" || f == "-Wno-all" {
			c.applyFlag(f)
		}
	}
	for _, f := range flags {
		if f != "-Wall" && f != "-Wno-all" {
			c.applyFlag(f)
		}
	}
}
