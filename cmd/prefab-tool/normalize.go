package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/unityflow/unityflow"
)

func normalizeCmd(cfg *NormalizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Normalize.Parse(cc, args)
	if err != nil {
		cfg.Normalize.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: normalize requires at least one file", cli.ErrUsage)
	}
	opts := cfg.options()
	toStdout := cfg.Stdout || cfg.Out != ""
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		text, err := unityflow.Normalize(d, opts)
		if err != nil {
			return fmt.Errorf("error normalizing %s: %w", arg, err)
		}
		if toStdout || arg == "-" {
			if _, err := cc.Out.Write([]byte(text)); err != nil {
				return err
			}
			continue
		}
		if err := os.WriteFile(arg, []byte(text), 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", arg, err)
		}
	}
	return nil
}
