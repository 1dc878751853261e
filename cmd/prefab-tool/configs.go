package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/unityflow/unityflow/format"
	"github.com/unityflow/unityflow/normalize"
)

type MainConfig struct {
	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type NormalizeConfig struct {
	*MainConfig

	Stdout        bool `cli:"name=stdout desc='write to stdout instead of the file'"`
	NoSortDocs    bool `cli:"name=no-sort-documents desc='do not sort documents by fileID'"`
	NoSortMods    bool `cli:"name=no-sort-modifications desc='do not sort m_Modifications arrays'"`
	NoFloats      bool `cli:"name=no-normalize-floats desc='do not normalize floating-point values'"`
	HexFloats     bool `cli:"name=hex-floats desc='use lossless IEEE 754 hex format for floats'"`
	NoQuaternions bool `cli:"name=no-normalize-quaternions desc='do not normalize quaternions'"`
	Precision     int  `cli:"name=precision desc='decimal precision for float normalization (default 6)'"`

	Normalize *cli.Command
}

func (cfg *NormalizeConfig) options() *normalize.Options {
	opts := normalize.DefaultOptions()
	opts.SortDocuments = !cfg.NoSortDocs
	opts.SortModifications = !cfg.NoSortMods
	opts.NormalizeFloats = !cfg.NoFloats
	opts.HexFloats = cfg.HexFloats
	opts.NormalizeQuaternions = !cfg.NoQuaternions
	if cfg.Precision > 0 {
		opts.FloatPrecision = cfg.Precision
	}
	return opts
}

type DiffConfig struct {
	*MainConfig

	NoNormalize bool `cli:"name=no-normalize desc='do not normalize files before diffing'"`
	Context     int  `cli:"name=C aliases=context desc='number of context lines (default 3)'"`
	ExitCode    bool `cli:"name=exit-code desc='exit with 1 if files differ, 0 if identical'"`
	NoColor     bool `cli:"name=no-color desc='never colorize output'"`

	Format format.DiffFormat

	Diff *cli.Command
}

func (cfg *DiffConfig) formatOpt(_ *cli.Context, a string) (any, error) {
	f, err := format.ParseDiffFormat(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Format = f
	return f, nil
}

type ValidateConfig struct {
	*MainConfig

	Strict bool   `cli:"name=strict desc='treat warnings as errors'"`
	JSON   bool   `cli:"name=json desc='output JSON instead of text'"`
	Quiet  bool   `cli:"name=q aliases=quiet desc='only output errors'"`
	Rules  string `cli:"name=rules desc='YAML file replacing the builtin class rule table'"`

	Validate *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Path   string `cli:"name=p aliases=path desc='property path to extract from each object'"`
	Class  string `cli:"name=class desc='restrict to objects of this class'"`
	Counts bool   `cli:"name=counts desc='print per-class object counts instead of summaries'"`

	Query *cli.Command
}

type MergeConfig struct {
	*MainConfig

	FilePath string `cli:"name=path desc='original file path (for git merge driver %P)'"`

	Merge *cli.Command
}
