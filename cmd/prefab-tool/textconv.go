package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/unityflow/unityflow"
)

// textconvCmd prints the canonical rendering of one file on stdout for
// use as a git textconv filter. On any parse failure it falls back to
// the raw bytes so git diff still shows something.
func textconvCmd(cfg *MainConfig, cc *cli.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: git-textconv requires exactly one file", cli.ErrUsage)
	}
	d, err := readArg(args[0])
	if err != nil {
		return err
	}
	text, err := unityflow.Normalize(d, nil)
	if err != nil {
		_, werr := cc.Out.Write(d)
		return werr
	}
	_, err = cc.Out.Write([]byte(text))
	return err
}
