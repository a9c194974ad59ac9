package lattice

import (
	"sort"
	"strings"
)

// stringSet is an immutable, value-comparable set of names.
type stringSet map[string]struct{}

func newStringSet(names ...string) stringSet {
	if len(names) == 0 {
		return nil
	}
	s := make(stringSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s stringSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (s stringSet) with(name string) stringSet {
	out := make(stringSet, len(s)+1)
	for n := range s {
		out[n] = struct{}{}
	}
	out[name] = struct{}{}
	return out
}

func (s stringSet) without(name string) stringSet {
	if !s.has(name) {
		return s
	}
	out := make(stringSet, len(s))
	for n := range s {
		if n != name {
			out[n] = struct{}{}
		}
	}
	return out
}

func unionSets(a, b stringSet) stringSet {
	out := make(stringSet, len(a)+len(b))
	for n := range a {
		out[n] = struct{}{}
	}
	for n := range b {
		out[n] = struct{}{}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func intersectSets(a, b stringSet) stringSet {
	var out stringSet
	for n := range a {
		if b.has(n) {
			if out == nil {
				out = make(stringSet)
			}
			out[n] = struct{}{}
		}
	}
	return out
}

func subsetOf(a, b stringSet) bool {
	for n := range a {
		if !b.has(n) {
			return false
		}
	}
	return true
}

// Shape is the structural description of an object value: a nominal
// group tag, named properties/methods, and optional call/construct
// signatures (spec.md §3.1).
type Shape struct {
	Group              string
	Properties         stringSet
	Methods            stringSet
	CallSignature      *Signature
	ConstructSignature *Signature
}

func newShape(group string, properties, methods []string) *Shape {
	return &Shape{
		Group:      group,
		Properties: newStringSet(properties...),
		Methods:    newStringSet(methods...),
	}
}

// withProperty returns a shape equal to s but with name added to Properties.
func (s *Shape) withProperty(name string) *Shape {
	if s == nil {
		return &Shape{Properties: newStringSet(name)}
	}
	cp := *s
	cp.Properties = s.Properties.with(name)
	return &cp
}

// withoutProperty returns a shape equal to s but with name removed from Properties.
func (s *Shape) withoutProperty(name string) *Shape {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Properties = s.Properties.without(name)
	return &cp
}

func (s *Shape) withMethod(name string) *Shape {
	if s == nil {
		return &Shape{Methods: newStringSet(name)}
	}
	cp := *s
	cp.Methods = s.Methods.with(name)
	return &cp
}

func sigEqualPtr(a, b *Signature) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// unionShapes implements spec.md §3.1's union rule: properties/methods
// intersect (an object behaves like either shape only when it has what's
// shared by both), group/signatures carry over only when equal. When only
// one side carries a shape, that shape is kept unchanged.
func unionShapes(a, b *Shape) *Shape {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := &Shape{
		Properties: intersectSets(a.Properties, b.Properties),
		Methods:    intersectSets(a.Methods, b.Methods),
	}
	if a.Group != "" && a.Group == b.Group {
		out.Group = a.Group
	}
	if sigEqualPtr(a.CallSignature, b.CallSignature) {
		out.CallSignature = a.CallSignature
	}
	if sigEqualPtr(a.ConstructSignature, b.ConstructSignature) {
		out.ConstructSignature = a.ConstructSignature
	}
	return out
}

// combineShapes implements spec.md §4.1's "combining .constructor(sig) +
// .object(withProperties: …)" rule: unlike unionShapes (the lattice
// meet, used when merging two possible types of the same variable),
// this is the constructive merge used to build one shape out of two
// shapes describing the SAME value — e.g. a class's static shape plus
// its constructor signature. Properties/methods union (the value truly
// has both), and a signature is kept from whichever side carries one
// (the two sides are never expected to disagree; when both set a given
// signature, a's is kept).
func combineShapes(a, b *Shape) *Shape {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := &Shape{
		Properties: unionSets(a.Properties, b.Properties),
		Methods:    unionSets(a.Methods, b.Methods),
		Group:      a.Group,
	}
	if out.Group == "" {
		out.Group = b.Group
	}
	out.CallSignature = a.CallSignature
	if out.CallSignature == nil {
		out.CallSignature = b.CallSignature
	}
	out.ConstructSignature = a.ConstructSignature
	if out.ConstructSignature == nil {
		out.ConstructSignature = b.ConstructSignature
	}
	return out
}

// intersectShapes implements spec.md §4.1: properties/methods union,
// group/signatures retained iff both sides equal. The result carries no
// shape unless both sides do.
func intersectShapes(a, b *Shape) *Shape {
	if a == nil || b == nil {
		return nil
	}
	out := &Shape{
		Properties: unionSets(a.Properties, b.Properties),
		Methods:    unionSets(a.Methods, b.Methods),
	}
	if a.Group == b.Group {
		out.Group = a.Group
	}
	if sigEqualPtr(a.CallSignature, b.CallSignature) {
		out.CallSignature = a.CallSignature
	}
	if sigEqualPtr(a.ConstructSignature, b.ConstructSignature) {
		out.ConstructSignature = a.ConstructSignature
	}
	return out
}

// shapeIs implements the object half of Is: a's properties/methods must
// be a superset of b's, and group/signatures must agree whenever b sets
// them.
func shapeIs(a, b *Shape) bool {
	if b == nil {
		return true
	}
	if a == nil {
		return false
	}
	if !subsetOf(b.Properties, a.Properties) {
		return false
	}
	if !subsetOf(b.Methods, a.Methods) {
		return false
	}
	if b.Group != "" && a.Group != b.Group {
		return false
	}
	if b.CallSignature != nil && !sigEqualPtr(a.CallSignature, b.CallSignature) {
		return false
	}
	if b.ConstructSignature != nil && !sigEqualPtr(a.ConstructSignature, b.ConstructSignature) {
		return false
	}
	return true
}

// shapeEqual is structural, value-based equality used for interning and
// for the "group/signatures equal-or-dropped" union rule.
func shapeEqual(a, b *Shape) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Group != b.Group {
		return false
	}
	if len(a.Properties) != len(b.Properties) || !subsetOf(a.Properties, b.Properties) {
		return false
	}
	if len(a.Methods) != len(b.Methods) || !subsetOf(a.Methods, b.Methods) {
		return false
	}
	return sigEqualPtr(a.CallSignature, b.CallSignature) && sigEqualPtr(a.ConstructSignature, b.ConstructSignature)
}

func (s *Shape) String() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("{")
	if s.Group != "" {
		b.WriteString("group:")
		b.WriteString(s.Group)
	}
	if len(s.Properties) > 0 {
		if b.Len() > 1 {
			b.WriteString(", ")
		}
		b.WriteString("props:")
		b.WriteString(strings.Join(s.Properties.sorted(), ","))
	}
	if len(s.Methods) > 0 {
		if b.Len() > 1 {
			b.WriteString(", ")
		}
		b.WriteString("methods:")
		b.WriteString(strings.Join(s.Methods.sorted(), ","))
	}
	if s.CallSignature != nil {
		if b.Len() > 1 {
			b.WriteString(", ")
		}
		b.WriteString("call:")
		b.WriteString(s.CallSignature.String())
	}
	if s.ConstructSignature != nil {
		if b.Len() > 1 {
			b.WriteString(", ")
		}
		b.WriteString("new:")
		b.WriteString(s.ConstructSignature.String())
	}
	b.WriteString("}")
	return b.String()
}
