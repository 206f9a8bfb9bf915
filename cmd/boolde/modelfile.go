package main

import (
	"fmt"
	"os"

	"github.com/soypat/boolde"
	"github.com/soypat/boolde/series"
	"gopkg.in/yaml.v3"
)

// seriesFile is one switch-time/state history or forcing series as it
// appears in a YAML model file: either an explicit list of switch times and
// states, or a set of numeric samples to be thresholded into a series.
type seriesFile struct {
	Times  []float64 `yaml:"times"`
	States []bool    `yaml:"states"`

	SampleTimes  []float64 `yaml:"sample_times"`
	SampleValues []float64 `yaml:"sample_values"`
	Threshold    float64   `yaml:"threshold"`
	Relative     bool      `yaml:"relative"`

	End float64 `yaml:"end"`
}

func (sf seriesFile) build(tol series.Tolerance, opts ...series.Option) (series.BooleanSeries, error) {
	if len(sf.SampleTimes) > 0 {
		if sf.Relative {
			return series.RelativeThreshold(sf.SampleTimes, sf.SampleValues, sf.Threshold, tol, opts...)
		}
		return series.AbsoluteThreshold(sf.SampleTimes, sf.SampleValues, sf.Threshold, tol, opts...)
	}
	return series.New(sf.Times, sf.States, sf.End, tol, opts...)
}

// modelFile is the top-level YAML shape loaded by `boolde run`.
type modelFile struct {
	Variables []string `yaml:"variables"`
	Forcing   []string `yaml:"forcing"`
	Delays    []float64 `yaml:"delays"`

	History       []seriesFile `yaml:"history"`
	ForcingSeries []seriesFile `yaml:"forcing_series"`

	EndTime float64 `yaml:"end_time"`

	Tolerance struct {
		AbsTol float64 `yaml:"abs_tol"`
		RelTol float64 `yaml:"rel_tol"`
	} `yaml:"tolerance"`

	Algorithm struct {
		MaxSwitchDensity float64 `yaml:"max_switch_density"`
	} `yaml:"algorithm"`

	Transition struct {
		LuaFile   string `yaml:"lua_file"`
		LuaScript string `yaml:"lua_script"`
	} `yaml:"transition"`
}

func loadModelFile(path string) (*modelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}
	var mf modelFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parsing model file: %w", err)
	}
	return &mf, nil
}

func (mf *modelFile) luaScript() (string, error) {
	if mf.Transition.LuaScript != "" {
		return mf.Transition.LuaScript, nil
	}
	if mf.Transition.LuaFile != "" {
		data, err := os.ReadFile(mf.Transition.LuaFile)
		if err != nil {
			return "", fmt.Errorf("reading lua_file: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("model file must set transition.lua_script or transition.lua_file")
}

func (mf *modelFile) tolerance() boolde.Tolerance {
	return boolde.Tolerance{AbsTol: mf.Tolerance.AbsTol, RelTol: mf.Tolerance.RelTol}
}

func (mf *modelFile) seriesTolerance() series.Tolerance {
	return series.Tolerance{AbsTol: mf.Tolerance.AbsTol, RelTol: mf.Tolerance.RelTol}
}
