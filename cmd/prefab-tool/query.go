package main

import (
	"fmt"
	"sort"

	"github.com/scott-cotton/cli"

	"github.com/unityflow/unityflow/encode"
	"github.com/unityflow/unityflow/ir"
	"github.com/unityflow/unityflow/parse"
)

func queryCmd(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires at least one file", cli.ErrUsage)
	}
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		doc, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		if cfg.Counts {
			if err := printClassCounts(cc, cfg, doc); err != nil {
				return err
			}
			continue
		}
		for _, obj := range doc.Objects {
			if cfg.Class != "" && obj.ClassName != cfg.Class {
				continue
			}
			if cfg.Path == "" {
				if err := printObjectSummary(cc, obj); err != nil {
					return err
				}
				continue
			}
			n := ir.GetPath(obj.Content, cfg.Path)
			if n == nil {
				continue
			}
			if err := printPathValue(cc, obj, n); err != nil {
				return err
			}
		}
	}
	return nil
}

func printClassCounts(cc *cli.Context, cfg *QueryConfig, doc *ir.Document) error {
	var order []string
	counts := map[string]int{}
	for _, obj := range doc.Objects {
		if cfg.Class != "" && obj.ClassName != cfg.Class {
			continue
		}
		if _, ok := counts[obj.ClassName]; !ok {
			order = append(order, obj.ClassName)
		}
		counts[obj.ClassName]++
	}
	sort.Strings(order)
	for _, c := range order {
		if _, err := fmt.Fprintf(cc.Out, "%s: %d\n", c, counts[c]); err != nil {
			return err
		}
	}
	return nil
}

func printObjectSummary(cc *cli.Context, obj *ir.Object) error {
	name := ""
	if n := ir.Get(obj.Content, "m_Name"); n != nil && n.Type == ir.StringType {
		name = " " + n.StringValue()
	}
	stripped := ""
	if obj.Stripped {
		stripped = " stripped"
	}
	_, err := fmt.Fprintf(cc.Out, "&%d !u!%d %s%s%s\n",
		obj.FileID, obj.ClassID, obj.ClassName, name, stripped)
	return err
}

func printPathValue(cc *cli.Context, obj *ir.Object, n *ir.Node) error {
	if n.Type.IsLeaf() {
		_, err := fmt.Fprintf(cc.Out, "&%d: %s\n", obj.FileID, n.Raw)
		return err
	}
	if _, err := fmt.Fprintf(cc.Out, "&%d:\n", obj.FileID); err != nil {
		return err
	}
	return encode.EncodeNode(n, cc.Out)
}
