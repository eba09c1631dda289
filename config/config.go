// Package config loads extraction jobs from YAML files.
//
//	preset: summary
//	input: olddata/may.docx
//	output: olddata/may_data.json
//	print_summary: true
//	limits:
//	  paragraphs: 100
//	  tables: 20
//
// The preset supplies every default; fields present in the file override
// it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/docxtract"
)

// Preset names.
const (
	PresetSummary = "summary"
	PresetPlain   = "plain"
)

// Default paths of the summary job.
const (
	DefaultInput  = "olddata/may.docx"
	DefaultOutput = "olddata/may_data.json"
)

// File is the on-disk job description. Pointer fields distinguish
// "absent" from "false"/"0".
type File struct {
	Preset         string `yaml:"preset"`
	Input          string `yaml:"input"`
	Output         string `yaml:"output"`
	IncludeStats   *bool  `yaml:"include_stats"`
	Truncate       *bool  `yaml:"truncate"`
	ParagraphIndex *bool  `yaml:"paragraph_index"`
	PrintSummary   *bool  `yaml:"print_summary"`
	Limits         Limits `yaml:"limits"`
}

// Limits holds the truncation limits applied when truncate is on.
type Limits struct {
	Paragraphs int `yaml:"paragraphs"`
	Tables     int `yaml:"tables"`
}

func (f *File) defaults() {
	if f.Preset == "" {
		f.Preset = PresetSummary
	}
	if f.Input == "" && f.Preset == PresetSummary {
		f.Input = DefaultInput
		if f.Output == "" {
			f.Output = DefaultOutput
		}
	}
	if f.Limits.Paragraphs <= 0 {
		f.Limits.Paragraphs = docxtract.DefaultMaxParagraphs
	}
	if f.Limits.Tables <= 0 {
		f.Limits.Tables = docxtract.DefaultMaxTables
	}
}

// validate checks the fields defaults cannot fill in.
func (f *File) validate() error {
	switch f.Preset {
	case PresetSummary, PresetPlain:
	default:
		return fmt.Errorf("unknown preset %q (want %q or %q)", f.Preset, PresetSummary, PresetPlain)
	}
	if f.Input == "" {
		return fmt.Errorf("input is required for the %s preset", f.Preset)
	}
	return nil
}

// Load reads a YAML job file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML job description and applies defaults.
func Parse(data []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parsing job file: %w", err)
	}
	f.defaults()
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Job converts the file into a runnable job.
func (f *File) Job() docxtract.Job {
	var job docxtract.Job
	if f.Preset == PresetPlain {
		job = docxtract.PlainJob(f.Input, f.Output)
	} else {
		job = docxtract.SummaryJob(f.Input, f.Output)
	}

	opts := job.Options
	if f.IncludeStats != nil {
		opts = opts.WithStats(*f.IncludeStats)
	}
	if f.ParagraphIndex != nil {
		opts = opts.WithParagraphIndex(*f.ParagraphIndex)
	}

	truncate := f.Preset == PresetSummary
	if f.Truncate != nil {
		truncate = *f.Truncate
	}
	if truncate {
		opts = opts.WithLimits(f.Limits.Paragraphs, f.Limits.Tables)
	} else {
		opts = opts.WithLimits(0, 0)
	}
	job.Options = opts

	if f.PrintSummary != nil {
		job.PrintSummary = *f.PrintSummary
	}
	return job
}
