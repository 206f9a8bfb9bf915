package boolde

import "github.com/sirupsen/logrus"

// Config modifies Engine behaviour and diagnostics. Algorithm is the only
// field a model file can set directly (via its "algorithm" key); Log is
// wired by the caller in Go, not loaded from YAML, and tolerances are
// configured separately on Model, not here.
type Config struct {
	Log       *logrus.Logger `yaml:"-"`
	Algorithm struct {
		// MaxSwitchDensity bounds switches-per-unit-time; zero disables the
		// check. Guards against runaway oscillation in a misbehaving
		// transition function (e.g. one with no hysteresis against its own
		// most recent output).
		MaxSwitchDensity float64 `yaml:"max_switch_density"`
	} `yaml:"algorithm"`
}

func (c Config) withDefaults() Config {
	return c
}
