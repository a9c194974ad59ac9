package environment

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsfuzz/typer/internal/lattice"
)

// yamlMethod is the wire shape of one method-signature entry in a YAML
// environment document.
type yamlMethod struct {
	Params  []string `yaml:"params"`
	Returns string   `yaml:"returns"`
}

// yamlGroup is the wire shape of one group's facts.
type yamlGroup struct {
	Properties map[string]string    `yaml:"properties"`
	Methods    map[string]yamlMethod `yaml:"methods"`
}

// yamlDocument is the top-level shape of an environment YAML file, the
// declarative fixture format this repository uses instead of a
// hand-written Go stub for every test scenario (spec.md §9: "prefer a
// trait/interface with a stub implementation for tests").
type yamlDocument struct {
	Builtins   map[string]string    `yaml:"builtins"`
	Groups     map[string]yamlGroup `yaml:"groups"`
	Properties map[string]string    `yaml:"properties"` // program-wide declarations
	Methods    map[string]yamlMethod `yaml:"methods"`    // program-wide declarations
}

// LoadYAMLFile reads a YAML environment document from disk and merges
// it into a fresh StubEnvironment.
func LoadYAMLFile(path string) (*StubEnvironment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("environment: read %s: %w", path, err)
	}
	return LoadYAML(data)
}

// LoadYAML parses a YAML environment document into a fresh StubEnvironment.
func LoadYAML(data []byte) (*StubEnvironment, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("environment: parse yaml: %w", err)
	}

	env := NewStubEnvironment()

	for name, typeName := range doc.Builtins {
		t, err := ParseTypeName(typeName)
		if err != nil {
			return nil, fmt.Errorf("environment: builtin %q: %w", name, err)
		}
		env.SetBuiltin(name, t)
	}

	for name, typeName := range doc.Properties {
		t, err := ParseTypeName(typeName)
		if err != nil {
			return nil, fmt.Errorf("environment: property %q: %w", name, err)
		}
		env.DeclareProperty(name, t)
	}

	for name, m := range doc.Methods {
		sig, err := parseMethod(m)
		if err != nil {
			return nil, fmt.Errorf("environment: method %q: %w", name, err)
		}
		env.DeclareMethod(name, sig)
	}

	for group, facts := range doc.Groups {
		for name, typeName := range facts.Properties {
			t, err := ParseTypeName(typeName)
			if err != nil {
				return nil, fmt.Errorf("environment: group %q property %q: %w", group, name, err)
			}
			env.SetGroupProperty(group, name, t)
		}
		for name, m := range facts.Methods {
			sig, err := parseMethod(m)
			if err != nil {
				return nil, fmt.Errorf("environment: group %q method %q: %w", group, name, err)
			}
			env.SetGroupMethod(group, name, sig)
		}
	}

	return env, nil
}

func parseMethod(m yamlMethod) (lattice.Signature, error) {
	ret, err := ParseTypeName(m.Returns)
	if err != nil {
		return lattice.Signature{}, err
	}
	params := make([]lattice.Param, len(m.Params))
	for i, p := range m.Params {
		t, err := ParseTypeName(p)
		if err != nil {
			return lattice.Signature{}, err
		}
		params[i] = lattice.Plain(t)
	}
	return lattice.NewSignature(ret, params...), nil
}

// ParseTypeName turns a short type name (as written in an environment
// YAML document, or passed by other ambient tooling such as the demo
// CLI's script loader) into a lattice.Type. "object" is the unconstrained
// object shape; "object:Group" tags it with a nominal group.
func ParseTypeName(name string) (lattice.Type, error) {
	if strings.HasPrefix(name, "object:") {
		return lattice.Object(lattice.OfGroup(strings.TrimPrefix(name, "object:"))), nil
	}
	switch name {
	case "", "unknown":
		return lattice.Unknown, nil
	case "undefined":
		return lattice.Undefined, nil
	case "null":
		return lattice.Null, nil
	case "boolean":
		return lattice.Boolean, nil
	case "integer":
		return lattice.Integer, nil
	case "float":
		return lattice.Float, nil
	case "number":
		return lattice.Number, nil
	case "string":
		return lattice.String, nil
	case "bigint":
		return lattice.BigInt, nil
	case "regexp":
		return lattice.RegExp, nil
	case "iterable":
		return lattice.Iterable, nil
	case "primitive":
		return lattice.Primitive, nil
	case "anything":
		return lattice.Anything, nil
	case "object":
		return lattice.Object(), nil
	default:
		return lattice.Type{}, fmt.Errorf("unrecognized type name %q", name)
	}
}
