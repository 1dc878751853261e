package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/unityflow/unityflow/parse"
	"github.com/unityflow/unityflow/validate"
)

func validateCmd(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		cfg.Validate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: validate requires at least one file", cli.ErrUsage)
	}
	vopts := []validate.ValidatorOption{validate.Strict(cfg.Strict)}
	if cfg.Rules != "" {
		rules, err := validate.LoadRulesFile(cfg.Rules)
		if err != nil {
			return fmt.Errorf("error loading rules %s: %w", cfg.Rules, err)
		}
		vopts = append(vopts, validate.WithRules(rules))
	}
	va, err := validate.New(vopts...)
	if err != nil {
		return err
	}
	failed := false
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		doc, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		res := va.Validate(doc)
		if !res.IsValid() {
			failed = true
		}
		if err := printResult(cfg, cc, arg, res); err != nil {
			return err
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func printResult(cfg *ValidateConfig, cc *cli.Context, arg string, res *validate.Result) error {
	if cfg.JSON {
		type fileResult struct {
			File   string           `json:"file"`
			Valid  bool             `json:"valid"`
			Issues []validate.Issue `json:"issues"`
		}
		enc := json.NewEncoder(cc.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(fileResult{File: arg, Valid: res.IsValid(), Issues: res.Issues})
	}
	issues := res.Issues
	if cfg.Quiet {
		issues = res.Errors()
	}
	for i := range issues {
		if _, err := fmt.Fprintf(cc.Out, "%s: %s\n", arg, issues[i].String()); err != nil {
			return err
		}
	}
	if !cfg.Quiet {
		verdict := "ok"
		if !res.IsValid() {
			verdict = "invalid"
		}
		if _, err := fmt.Fprintf(cc.Out, "%s: %s (%d issues)\n", arg, verdict, len(res.Issues)); err != nil {
			return err
		}
	}
	return nil
}
