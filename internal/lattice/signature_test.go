package lattice

import "testing"

func TestParamBoundType(t *testing.T) {
	tests := []struct {
		name  string
		param Param
		want  Type
	}{
		{"plain keeps its type", Plain(Integer), Integer},
		{"opt widens with undefined", Opt(Integer), Integer.Union(Undefined)},
		{"rest binds to array-like object", Rest(Integer), Object()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.param.BoundType(); !got.Equal(tt.want) {
				t.Errorf("BoundType() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSignatureEqual(t *testing.T) {
	a := NewSignature(Boolean, Plain(Integer), Opt(String))
	b := NewSignature(Boolean, Plain(Integer), Opt(String))
	c := NewSignature(Boolean, Plain(Integer), Opt(Float))
	if !a.Equal(b) {
		t.Errorf("identical signatures should be equal")
	}
	if a.Equal(c) {
		t.Errorf("signatures differing in a parameter type should not be equal")
	}
}

func TestScenario3ClassValueShape(t *testing.T) {
	// Class with instance props a,b, instance method f, instance getter c,
	// instance method g, static props a,d, static method g, static setter e,
	// static method h:
	// class value = .object(props:{a,d,e}, methods:{g,h}) +
	//               .constructor([.string]=>.object(props:{a,b,c}, methods:{f,g}))
	instanceType := Object(WithProperties("a", "b", "c"), WithMethods("f", "g"))
	ctorSig := NewSignature(instanceType, Plain(String))
	staticShape := Object(WithProperties("a", "d", "e"), WithMethods("g", "h"))
	classValue := Constructor(ctorSig).Combine(staticShape)

	if !classValue.Shape().Properties.has("a") || !classValue.Shape().Properties.has("d") || !classValue.Shape().Properties.has("e") {
		t.Errorf("class value static properties = %v, want a,d,e", classValue.Shape().Properties.sorted())
	}
	if !classValue.Shape().Methods.has("g") || !classValue.Shape().Methods.has("h") {
		t.Errorf("class value static methods = %v, want g,h", classValue.Shape().Methods.sorted())
	}
	ret := classValue.ConstructSignature().ReturnType
	if !ret.Shape().Properties.has("a") || !ret.Shape().Properties.has("b") || !ret.Shape().Properties.has("c") {
		t.Errorf("constructed instance properties = %v, want a,b,c", ret.Shape().Properties.sorted())
	}
	if !ret.Shape().Methods.has("f") || !ret.Shape().Methods.has("g") {
		t.Errorf("constructed instance methods = %v, want f,g", ret.Shape().Methods.sorted())
	}
}
