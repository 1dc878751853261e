package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/unityflow/unityflow"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two files", cli.ErrUsage)
	}
	a, err := readArg(args[0])
	if err != nil {
		return err
	}
	b, err := readArg(args[1])
	if err != nil {
		return err
	}
	opts := unityflow.DefaultDiffOptions()
	opts.Normalize = !cfg.NoNormalize
	opts.ContextLines = cfg.Context
	opts.Format = cfg.Format
	res, err := unityflow.Diff(a, b, opts)
	if err != nil {
		return err
	}
	colorize := diffColors(cfg, cc)
	for _, line := range res.Lines {
		if _, err := fmt.Fprintln(cc.Out, colorize(line)); err != nil {
			return err
		}
	}
	if cfg.ExitCode && res.HasChanges {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffColors(cfg *DiffConfig, cc *cli.Context) func(string) string {
	plain := func(s string) string { return s }
	if cfg.NoColor {
		return plain
	}
	f, ok := cc.Out.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return plain
	}
	add := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	hdr := color.New(color.FgCyan)
	return func(s string) string {
		switch {
		case strings.HasPrefix(s, "+"):
			return add.Sprint(s)
		case strings.HasPrefix(s, "-"):
			return del.Sprint(s)
		case strings.HasPrefix(s, "@@"), strings.HasPrefix(s, "***"):
			return hdr.Sprint(s)
		}
		return s
	}
}
