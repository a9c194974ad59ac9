// Command jstyperdemo is ambient diagnostic tooling, not part of the
// core library: it loads a declarative YAML environment and a YAML
// operation script, drives a Typer instance over the script, and
// prints the resulting type of every variable it was asked about.
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsfuzz/typer/internal/environment"
	"github.com/jsfuzz/typer/internal/ir"
	"github.com/jsfuzz/typer/internal/lattice"
	"github.com/jsfuzz/typer/internal/state"
)

// scriptOp is the wire shape of one line of a YAML operation script.
// Only the fields relevant to Op are meaningful, mirroring ir.Operation
// itself.
type scriptOp struct {
	Op       string   `yaml:"op"`
	Output   string   `yaml:"output"`
	Outputs  []string `yaml:"outputs"`
	Input    string   `yaml:"input"`
	Left     string   `yaml:"left"`
	Right    string   `yaml:"right"`
	Object   string   `yaml:"object"`
	Value    string   `yaml:"value"`
	Values   []string `yaml:"values"`
	Receiver string   `yaml:"receiver"`
	Args     []string `yaml:"args"`
	Name     string   `yaml:"name"`
	Operator string   `yaml:"operator"`
	Keys     []string `yaml:"keys"`
	Index    int      `yaml:"index"`
	Selecting []string `yaml:"selecting"`
	HasRest  bool     `yaml:"hasRest"`

	// Block lifecycle
	Kind           string `yaml:"kind"`
	Branch         string `yaml:"branch"`
	HasAlternative bool   `yaml:"hasAlternative"`
	IsDefault      bool   `yaml:"isDefault"`
	IsFirstCase    bool   `yaml:"isFirstCase"`
	IsLastCase     bool   `yaml:"isLastCase"`
	LoopVar        string `yaml:"loopVar"`
	LoopVarType    string `yaml:"loopVarType"`
}

// script is the top-level shape of a YAML operation-script document.
type script struct {
	Operations []scriptOp `yaml:"operations"`
	Queries    []string   `yaml:"queries"`
}

func loadScript(path string) (*script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("script: parse yaml: %w", err)
	}
	return &s, nil
}

// blockKindByName maps a script's textual block kind to state.Kind,
// covering the control-flow constructs the demo tool can drive (the
// function/class/object-literal builders are exercised directly by
// the Go test suite instead, since their metadata is richer than a
// flat YAML line comfortably expresses).
func blockKindByName(name string) (state.Kind, bool) {
	switch name {
	case "conditional":
		return state.KindConditional, true
	case "loop":
		return state.KindLoop, true
	case "switchCase":
		return state.KindSwitchCase, true
	case "try":
		return state.KindTry, true
	case "catch":
		return state.KindCatch, true
	case "finally":
		return state.KindFinally, true
	default:
		return state.KindRoot, false
	}
}

// constantOps, binaryOps and unaryOps map a script's textual op name to
// ir.OpKind for the operation families the demo tool drives directly.
var constantOps = map[string]ir.OpKind{
	"loadInteger":   ir.OpLoadInteger,
	"loadFloat":     ir.OpLoadFloat,
	"loadString":    ir.OpLoadString,
	"loadBoolean":   ir.OpLoadBoolean,
	"loadBigInt":    ir.OpLoadBigInt,
	"loadRegExp":    ir.OpLoadRegExp,
	"loadNull":      ir.OpLoadNull,
	"loadUndefined": ir.OpLoadUndefined,
	"loadThis":      ir.OpLoadThis,
}

var binaryOps = map[string]ir.OpKind{
	"binary":      ir.OpBinary,
	"logicOr":     ir.OpLogicOr,
	"logicAnd":    ir.OpLogicAnd,
	"compare":     ir.OpCompare,
	"instanceOf":  ir.OpInstanceOf,
	"in":          ir.OpIn,
}

var unaryOps = map[string]ir.OpKind{
	"unary":      ir.OpUnary,
	"logicalNot": ir.OpLogicalNot,
	"typeOf":     ir.OpTypeOf,
}

// buildOperation translates one non-block scriptOp into an ir.Operation.
// The object-literal and class member ops it accepts need an open
// object-literal or class body, which blockKindByName does not offer, so
// Analyze rejects them with a BlockMismatchError.
func buildOperation(s scriptOp) (ir.Operation, bool) {
	if kind, ok := constantOps[s.Op]; ok {
		if s.Op == "loadThis" {
			return ir.Load(kind, ir.Variable(s.Output)), true
		}
		return ir.LoadNamed(kind, ir.Variable(s.Output), s.Name), true
	}
	if kind, ok := unaryOps[s.Op]; ok {
		return ir.Unary(kind, s.Operator, ir.Variable(s.Input), ir.Variable(s.Output)), true
	}
	if kind, ok := binaryOps[s.Op]; ok {
		return ir.Binary(kind, s.Operator, ir.Variable(s.Left), ir.Variable(s.Right), ir.Variable(s.Output)), true
	}

	switch s.Op {
	case "reassign":
		return ir.Reassign(ir.Variable(s.Output), ir.Variable(s.Input)), true
	case "reassignWithOp":
		return ir.ReassignWithOp(ir.Variable(s.Output), ir.Variable(s.Input), s.Operator), true
	case "loadBuiltin":
		return ir.LoadNamed(ir.OpLoadBuiltin, ir.Variable(s.Output), s.Name), true
	case "createObject":
		values := make([]ir.Variable, len(s.Values))
		for i, v := range s.Values {
			values[i] = ir.Variable(v)
		}
		return ir.CreateObject(ir.Variable(s.Output), s.Keys, values), true
	case "setProperty":
		return ir.SetProperty(ir.Variable(s.Object), s.Name, ir.Variable(s.Value)), true
	case "deleteProperty":
		return ir.DeleteProperty(ir.Variable(s.Object), s.Name), true
	case "getProperty":
		return ir.GetProperty(ir.Variable(s.Object), s.Name, ir.Variable(s.Output)), true
	case "callMethod":
		args := toVars(s.Args)
		return ir.CallMethod(ir.Variable(s.Receiver), s.Name, args, ir.Variable(s.Output)), true
	case "callFunction":
		args := toVars(s.Args)
		return ir.CallFunction(ir.Variable(s.Receiver), args, ir.Variable(s.Output)), true
	case "construct":
		args := toVars(s.Args)
		return ir.Construct(ir.Variable(s.Receiver), args, ir.Variable(s.Output)), true
	case "destruct":
		return ir.Destruct(ir.Variable(s.Object), s.Selecting, s.HasRest, toVars(s.Outputs)), true
	case "addProperty":
		return ir.AddProperty(s.Name, ir.Variable(s.Value)), true
	case "addElement":
		return ir.AddElement(s.Index, ir.Variable(s.Value)), true
	case "addInstanceProperty":
		return ir.AddInstanceProperty(s.Name), true
	case "addStaticProperty":
		return ir.AddStaticProperty(s.Name), true
	}
	return ir.Operation{}, false
}

func toVars(names []string) []ir.Variable {
	out := make([]ir.Variable, len(names))
	for i, n := range names {
		out[i] = ir.Variable(n)
	}
	return out
}

func loopVarType(name string) lattice.Type {
	t, err := environment.ParseTypeName(name)
	if err != nil {
		return lattice.Unknown
	}
	return t
}
