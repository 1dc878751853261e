package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/unityflow/unityflow"
)

// mergeCmd is a git merge driver. git invokes it with the base, ours,
// and theirs versions and expects the merged result written back into
// the ours file, exiting 1 when conflicts remain.
func mergeCmd(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: merge requires base, ours, and theirs files", cli.ErrUsage)
	}
	base, err := readArg(args[0])
	if err != nil {
		return err
	}
	ours, err := readArg(args[1])
	if err != nil {
		return err
	}
	theirs, err := readArg(args[2])
	if err != nil {
		return err
	}
	res, err := unityflow.ThreeWayMerge(base, ours, theirs, nil)
	if err != nil {
		return err
	}
	if cfg.Out != "" || args[1] == "-" {
		if _, err := cc.Out.Write([]byte(res.Text)); err != nil {
			return err
		}
	} else if err := os.WriteFile(args[1], []byte(res.Text), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", args[1], err)
	}
	if res.HasConflict {
		name := cfg.FilePath
		if name == "" {
			name = args[1]
		}
		for i := range res.Conflicts {
			c := &res.Conflicts[i]
			fmt.Fprintf(os.Stderr, "%s: %s conflict at fileID %d %s\n",
				name, c.Kind, c.FileID, c.Path)
		}
		return cli.ExitCodeErr(1)
	}
	return nil
}
