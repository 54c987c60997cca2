// Package jsondoc bridges JSON documents and tree cursors. A parsed
// document is a plain any-tree where arrays are branches, which is exactly
// the shape the cursor operates on.
package jsondoc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/agentic-research/zipper"
)

// ErrNotFound indicates an index path that walks off the document.
var ErrNotFound = errors.New("no node at path")

// Load parses the JSON document at path into an any-tree.
func Load(fsys billy.Filesystem, path string) (any, error) {
	data, err := util.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// Save writes doc back as indented JSON.
func Save(fsys billy.Filesystem, path string, doc any) error {
	out := oj.JSON(doc, 2) + "\n"
	if err := util.WriteFile(fsys, path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Select runs a JSONPath query against a plain document and returns the
// matching values. This queries data directly; the cursor itself never
// searches.
func Select(doc any, selector string) ([]any, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", selector, err)
	}
	return x.Get(doc), nil
}

// ParseSteps parses a dotted child-index path like "1.0.2". The empty
// string addresses the root.
func ParseSteps(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ".")
	steps := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid step %q in path %q", p, s)
		}
		steps[i] = n
	}
	return steps, nil
}

// Focus walks a cursor from its current position to the child addressed
// by a dotted index path, one level per step.
func Focus(loc *zipper.Loc, path string) (*zipper.Loc, error) {
	steps, err := ParseSteps(path)
	if err != nil {
		return nil, err
	}
	for depth, idx := range steps {
		child := loc.Down()
		if child == nil {
			return nil, fmt.Errorf("%w: %q has no children at depth %d", ErrNotFound, path, depth)
		}
		for i := 0; i < idx; i++ {
			child = child.Right()
			if child == nil {
				return nil, fmt.Errorf("%w: %q index %d out of range at depth %d", ErrNotFound, path, idx, depth)
			}
		}
		loc = child
	}
	return loc, nil
}
