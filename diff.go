package unityflow

import (
	"strings"

	"github.com/unityflow/unityflow/encode"
	"github.com/unityflow/unityflow/format"
	"github.com/unityflow/unityflow/libdiff"
	"github.com/unityflow/unityflow/normalize"
	"github.com/unityflow/unityflow/parse"
)

type DiffOptions struct {
	// Normalize canonicalizes both inputs before comparing, so the
	// diff shows semantic changes rather than serialization noise.
	Normalize bool

	// NormalizeOptions overrides the default normalization; nil means
	// defaults.
	NormalizeOptions *normalize.Options

	ContextLines int
	Format       format.DiffFormat
}

func DefaultDiffOptions() *DiffOptions {
	return &DiffOptions{
		Normalize:    true,
		ContextLines: 3,
		Format:       format.Unified,
	}
}

type DiffResult struct {
	HasChanges bool
	Lines      []string
}

// Diff compares two file texts line by line.
func Diff(a, b []byte, opts *DiffOptions) (*DiffResult, error) {
	if opts == nil {
		opts = DefaultDiffOptions()
	}
	as, bs := string(a), string(b)
	if opts.Normalize {
		var err error
		if as, err = normalizeText(a, opts.NormalizeOptions); err != nil {
			return nil, err
		}
		if bs, err = normalizeText(b, opts.NormalizeOptions); err != nil {
			return nil, err
		}
	}
	edits := libdiff.DiffLines(as, bs)
	res := &DiffResult{HasChanges: libdiff.HasChanges(edits)}
	if res.HasChanges {
		res.Lines = libdiff.Render(edits, opts.Format, opts.ContextLines)
	}
	return res, nil
}

// Normalize parses, canonicalizes and re-renders one file text.
func Normalize(d []byte, opts *normalize.Options) (string, error) {
	return normalizeText(d, opts)
}

func normalizeText(d []byte, opts *normalize.Options) (string, error) {
	doc, err := parse.Parse(d)
	if err != nil {
		return "", err
	}
	return encode.MustString(normalize.Normalize(doc, opts)), nil
}

// Text joins rendered diff lines for display.
func (r *DiffResult) Text() string {
	return strings.Join(r.Lines, "\n")
}
