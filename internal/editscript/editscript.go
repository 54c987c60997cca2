// Package editscript applies HCL-described batches of cursor edits to a
// JSON document. A script is a sequence of edit blocks:
//
//	edit "replace" {
//	  at    = "1.0"
//	  value = "3.5"
//	}
//
//	edit "remove" {
//	  at = "2"
//	}
//
// "at" is a dotted child-index path and "value" a JSON literal. Each edit
// focuses a cursor on the addressed node, applies the operation, and the
// reconstructed root feeds the next edit.
package editscript

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/ohler55/ojg/oj"

	"github.com/agentic-research/zipper"
	"github.com/agentic-research/zipper/internal/jsondoc"
)

// Op is a single edit: what to do, where, and with which value.
type Op struct {
	Kind  string `hcl:"kind,label"`
	At    string `hcl:"at"`
	Value string `hcl:"value,optional"`
}

// Script is an ordered list of edits.
type Script struct {
	Ops []Op `hcl:"edit,block"`
}

// Parse reads a script from HCL source. Every op is validated up front so
// a bad script fails before any edit runs.
func Parse(src []byte, filename string) (*Script, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", filename, diags.Error())
	}
	var s Script
	if diags := gohcl.DecodeBody(f.Body, nil, &s); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", filename, diags.Error())
	}
	for i, op := range s.Ops {
		if err := op.validate(); err != nil {
			return nil, fmt.Errorf("%s: edit %d: %w", filename, i, err)
		}
	}
	return &s, nil
}

func (o Op) validate() error {
	switch o.Kind {
	case "replace", "insert-left", "insert-right", "insert-child", "append-child":
		if o.Value == "" {
			return fmt.Errorf("%q requires a value", o.Kind)
		}
	case "remove":
		if o.Value != "" {
			return fmt.Errorf("%q takes no value", o.Kind)
		}
	default:
		return fmt.Errorf("unknown edit kind %q", o.Kind)
	}
	if _, err := jsondoc.ParseSteps(o.At); err != nil {
		return err
	}
	return nil
}

// Apply runs every edit in order against doc and returns the resulting
// document. doc itself is never modified.
func (s *Script) Apply(doc any) (any, error) {
	for i, op := range s.Ops {
		next, err := op.apply(doc)
		if err != nil {
			return nil, fmt.Errorf("edit %d (%s at %q): %w", i, op.Kind, op.At, err)
		}
		doc = next
	}
	return doc, nil
}

func (o Op) apply(doc any) (any, error) {
	loc, err := jsondoc.Focus(zipper.New(doc), o.At)
	if err != nil {
		return nil, err
	}

	var val any
	if o.Value != "" {
		if val, err = oj.ParseString(o.Value); err != nil {
			return nil, fmt.Errorf("value %q: %w", o.Value, err)
		}
	}

	switch o.Kind {
	case "replace":
		loc = loc.Replace(val)
	case "insert-left":
		loc, err = loc.InsertLeft(val)
	case "insert-right":
		loc, err = loc.InsertRight(val)
	case "insert-child":
		loc, err = loc.InsertChild(val)
	case "append-child":
		loc, err = loc.AppendChild(val)
	case "remove":
		loc, err = loc.Remove()
	}
	if err != nil {
		return nil, err
	}
	return loc.Root(), nil
}
