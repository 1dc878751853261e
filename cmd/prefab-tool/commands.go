package main

import (
	"github.com/scott-cotton/cli"

	"github.com/unityflow/unityflow/format"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts := []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
	}

	return cli.NewCommandAt(&cfg.Main, "prefab-tool").
		WithSynopsis("prefab-tool [opts] command [opts]").
		WithDescription("prefab-tool works with Unity prefab, scene, and asset files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return prefabToolMain(cfg, cc, args)
		}).
		WithSubs(
			NormalizeCommand(cfg),
			DiffCommand(cfg),
			ValidateCommand(cfg),
			QueryCommand(cfg),
			TextconvCommand(cfg),
			MergeCommand(cfg))
}

func NormalizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NormalizeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("normalize").
		WithAliases("n", "norm").
		WithSynopsis("normalize [opts] [files]").
		WithDescription("normalize Unity files to canonical form, in place by default").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return normalizeCmd(cfg, cc, args)
		})
	cfg.Normalize = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3, Format: format.Unified}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "format",
		Description: "diff format: unified, context, summary",
		Type:        cli.NamedFuncOpt(cfg.formatOpt, "(format)"),
	})
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff [opts] a b").
		WithDescription("diff two Unity files after normalization").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diffCmd(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("validate").
		WithAliases("v", "val").
		WithSynopsis("validate [opts] [files]").
		WithDescription("check Unity files for structural problems").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return validateCmd(cfg, cc, args)
		})
	cfg.Validate = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query [opts] [files]").
		WithDescription("summarize objects in Unity files, or extract a property path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return queryCmd(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

func TextconvCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("git-textconv").
		WithAliases("textconv").
		WithSynopsis("git-textconv <file>").
		WithDescription("print a file in canonical form for git diff textconv").
		WithRun(func(cc *cli.Context, args []string) error {
			return textconvCmd(mainCfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("merge").
		WithAliases("m").
		WithSynopsis("merge [opts] base ours theirs").
		WithDescription("three-way merge of Unity files for use as a git merge driver").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mergeCmd(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}
