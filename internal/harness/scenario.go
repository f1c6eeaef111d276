// Package harness runs fixture scenarios against the classifier and reports
// pass or fail for each.
package harness

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/funvibe/refinedtype/internal/classify"
	"github.com/funvibe/refinedtype/internal/config"
	"github.com/funvibe/refinedtype/internal/deepequal"
	"github.com/funvibe/refinedtype/internal/value"
	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var defaultSuite []byte

var (
	ErrUnknownOp    = errors.New("unknown operation")
	ErrInvalidInput = errors.New("invalid scenario input")
)

var knownOps = map[string]bool{
	config.OpClassify:              true,
	config.OpClassifyAll:           true,
	config.OpAllSameNativeType:     true,
	config.OpAllUniqueRefinedTypes: true,
	config.OpCountByRefinedType:    true,
	config.OpDeepEqual:             true,
}

// Scenario is one labelled call into the core with its expected result.
type Scenario struct {
	Name     string
	Op       string
	Input    value.Value
	Expected value.Value
}

// Suite is an ordered list of scenarios.
type Suite struct {
	Scenarios []Scenario
}

type suiteFile struct {
	Scenarios []scenarioFile `yaml:"scenarios"`
}

type scenarioFile struct {
	Name     string    `yaml:"name"`
	Op       string    `yaml:"op"`
	Input    yaml.Node `yaml:"input"`
	Expected yaml.Node `yaml:"expected"`
}

// DefaultSuite returns the built-in scenario suite.
func DefaultSuite() (*Suite, error) {
	return LoadSuite(defaultSuite)
}

// LoadSuite decodes a YAML suite. Each scenario's input and expected value
// are fixture literals in the form value.FromYAML accepts.
func LoadSuite(data []byte) (*Suite, error) {
	var file suiteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("cannot parse suite: %w", err)
	}

	suite := &Suite{Scenarios: make([]Scenario, 0, len(file.Scenarios))}
	for i, sf := range file.Scenarios {
		name := sf.Name
		if name == "" {
			name = fmt.Sprintf("#%d %s", i+1, sf.Op)
		}
		if !knownOps[sf.Op] {
			return nil, fmt.Errorf("scenario %q: %w %q", name, ErrUnknownOp, sf.Op)
		}
		input, err := value.FromYAMLNode(&sf.Input)
		if err != nil {
			return nil, fmt.Errorf("scenario %q input: %w", name, err)
		}
		expected, err := value.FromYAMLNode(&sf.Expected)
		if err != nil {
			return nil, fmt.Errorf("scenario %q expected: %w", name, err)
		}
		if sf.Op == config.OpClassify && !isLabel(expected) {
			return nil, fmt.Errorf("scenario %q: %w: expected %s is not a refined type label", name, ErrInvalidInput, value.Inspect(expected))
		}
		suite.Scenarios = append(suite.Scenarios, Scenario{
			Name:     name,
			Op:       sf.Op,
			Input:    input,
			Expected: expected,
		})
	}
	return suite, nil
}

// Run invokes the scenario's operation and returns the actual result as a
// value. A table-less count result is undefined.
func (s Scenario) Run() (value.Value, error) {
	switch s.Op {
	case config.OpClassify:
		return value.NewString(string(classify.Classify(s.Input))), nil

	case config.OpDeepEqual:
		pair, err := s.elements()
		if err != nil {
			return nil, err
		}
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: %s needs a pair, got %d values", ErrInvalidInput, s.Op, len(pair))
		}
		return value.NewBoolean(deepequal.Equal(pair[0], pair[1])), nil
	}

	vs, err := s.elements()
	if err != nil {
		return nil, err
	}
	switch s.Op {
	case config.OpClassifyAll:
		labels := classify.ClassifyAll(vs)
		out := make([]value.Value, len(labels))
		for i, l := range labels {
			out[i] = value.NewString(string(l))
		}
		return value.NewArray(out...), nil
	case config.OpAllSameNativeType:
		return value.NewBoolean(classify.AllSameNativeType(vs)), nil
	case config.OpAllUniqueRefinedTypes:
		return value.NewBoolean(classify.AllUniqueRefinedTypes(vs)), nil
	case config.OpCountByRefinedType:
		table, ok := classify.CountByRefinedType(vs)
		if !ok {
			return value.Undef, nil
		}
		return table.ToValue(), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownOp, s.Op)
}

func isLabel(v value.Value) bool {
	s, ok := v.(*value.String)
	if !ok {
		return false
	}
	for _, l := range classify.Labels {
		if string(l) == s.Value {
			return true
		}
	}
	return false
}

func (s Scenario) elements() ([]value.Value, error) {
	arr, ok := s.Input.(*value.Array)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects an array, got %s", ErrInvalidInput, s.Op, value.Inspect(s.Input))
	}
	return arr.Elements, nil
}
