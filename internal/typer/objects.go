package typer

import (
	"strconv"

	"github.com/jsfuzz/typer/internal/ir"
	"github.com/jsfuzz/typer/internal/lattice"
)

// analyzeCreateObject implements spec.md §4.4: `createObject({k: v, …})`
// produces `.object(withProperties: keys)`. Keys that are non-negative
// integer literals are integer-element entries and are left out of the
// property set (addElement is the block-based counterpart for those).
func (t *Typer) analyzeCreateObject(op ir.Operation) error {
	props := make([]string, 0, len(op.Properties))
	for _, k := range op.Properties {
		if _, err := strconv.ParseUint(k, 10, 32); err == nil {
			continue
		}
		props = append(props, k)
	}
	t.define(op.Outputs[0], lattice.Object(lattice.WithProperties(props...)))
	return nil
}

// analyzeSetProperty implements `setProperty(name, of: O, to: V)`: O's
// type gains name in its properties set. V's type is read but not
// otherwise used — the lattice tracks property *names*, not per-name
// value types, on a plain object shape (property value types come from
// the Environment for group-tagged objects; see getProperty).
func (t *Typer) analyzeSetProperty(op ir.Operation) error {
	object := op.Inputs[0]
	current := t.get(object)
	t.set(object, current.WithProperty(op.Name))
	return nil
}

// analyzeDeleteProperty implements `deleteProperty(name, of: O)`:
// removes name from O's properties.
func (t *Typer) analyzeDeleteProperty(op ir.Operation) error {
	object := op.Inputs[0]
	t.set(object, t.get(object).WithoutProperty(op.Name))
	return nil
}

// analyzeGetProperty implements `getProperty(name, of: O)`: consults
// the Environment keyed by O's group; no group or an unknown property
// both widen to .unknown.
func (t *Typer) analyzeGetProperty(op ir.Operation) error {
	object := t.get(op.Inputs[0])
	t.define(op.Outputs[0], t.env.TypeOfProperty(op.Name, object.Group()))
	return nil
}

// analyzeCallMethod implements `callMethod(m, on: O, …)`: the return
// type comes from the Environment's signature for m on O's group;
// unknown method ⇒ .unknown.
func (t *Typer) analyzeCallMethod(op ir.Operation) error {
	receiver := t.get(op.Inputs[0])
	sig := t.env.SignatureOfMethod(op.Name, receiver.Group())
	if sig == nil {
		t.define(op.Outputs[0], lattice.Unknown)
		return nil
	}
	t.define(op.Outputs[0], sig.ReturnType)
	return nil
}

// analyzeCallFunction implements `callFunction(F, …)`: F's call
// signature's return type, or .unknown if F is not callable.
func (t *Typer) analyzeCallFunction(op ir.Operation) error {
	fn := t.get(op.Inputs[0])
	if sig := fn.CallSignature(); sig != nil {
		t.define(op.Outputs[0], sig.ReturnType)
		return nil
	}
	t.define(op.Outputs[0], lattice.Unknown)
	return nil
}

// analyzeConstruct implements `construct(C, …)`: C's construct
// signature's return type, or .object() if C is not known to be
// constructible (spec.md §9's open question: a self-defined
// constructor's `construct` result is not further refined here beyond
// the type recorded at class-definition close — see classes.go).
func (t *Typer) analyzeConstruct(op ir.Operation) error {
	ctor := t.get(op.Inputs[0])
	if sig := ctor.ConstructSignature(); sig != nil {
		t.define(op.Outputs[0], sig.ReturnType)
		return nil
	}
	t.define(op.Outputs[0], lattice.Object())
	return nil
}

// analyzeDestruct implements `destruct(O, selecting: […], hasRestElement: …)`:
// each selected output's type comes from getProperty on O; a trailing
// rest-element output is .object().
func (t *Typer) analyzeDestruct(op ir.Operation) error {
	object := t.get(op.Inputs[0])
	outputs := op.Outputs
	n := len(op.Selecting)
	for i := 0; i < n && i < len(outputs); i++ {
		t.define(outputs[i], t.env.TypeOfProperty(op.Selecting[i], object.Group()))
	}
	if op.HasRestElement && len(outputs) > n {
		t.define(outputs[n], lattice.Object())
	}
	return nil
}
