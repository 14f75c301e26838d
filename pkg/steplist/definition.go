package steplist

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
)

// stage kinds a step may declare
const (
	KindIntegrity = "integrity"
	KindData      = "data"
	KindVolume    = "volume"
)

var defaultKinds = []string{KindIntegrity, KindData, KindVolume}

// Definition is one step as written in the step list file
type Definition struct {
	Name   string            `yaml:"-"`
	Stages []string          `yaml:"stages"`
	Delta  bool              `yaml:"delta"`
	Tables []TableDefinition `yaml:"tables"`
}

// TableDefinition maps a source table onto a destination table
type TableDefinition struct {
	Source      string   `yaml:"source"`
	Destination string   `yaml:"destination"`
	Key         string   `yaml:"key"`
	Ignore      []string `yaml:"ignore"`
}

// Has reports whether the step declares a stage of the given kind
func (d Definition) Has(kind string) bool {
	for _, k := range d.Stages {
		if k == kind {
			return true
		}
	}
	return false
}

type document struct {
	Steps yaml.Node `yaml:"steps"`
}

// Parse reads step definitions keeping the order in which they appear in the document
func Parse(data []byte) ([]Definition, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, domain.StepListError{Reason: err.Error()}
	}
	if doc.Steps.Kind == 0 {
		return nil, domain.StepListError{Reason: "no steps defined"}
	}
	if doc.Steps.Kind != yaml.MappingNode {
		return nil, domain.StepListError{Reason: fmt.Sprintf("steps must be a mapping (line %d)", doc.Steps.Line)}
	}

	seen := make(map[string]bool)
	definitions := make([]Definition, 0, len(doc.Steps.Content)/2)
	for i := 0; i+1 < len(doc.Steps.Content); i += 2 {
		name := doc.Steps.Content[i].Value
		if name == "" {
			return nil, domain.StepListError{Reason: fmt.Sprintf("empty step name (line %d)", doc.Steps.Content[i].Line)}
		}
		if seen[name] {
			return nil, domain.StepListError{Step: name, Reason: "defined more than once"}
		}
		seen[name] = true

		var def Definition
		if err := doc.Steps.Content[i+1].Decode(&def); err != nil {
			return nil, domain.StepListError{Step: name, Reason: err.Error()}
		}
		def.Name = name
		if err := normalize(&def); err != nil {
			return nil, err
		}
		definitions = append(definitions, def)
	}
	return definitions, nil
}

func normalize(def *Definition) error {
	if len(def.Stages) == 0 {
		def.Stages = append([]string(nil), defaultKinds...)
	}
	kinds := make(map[string]bool, len(def.Stages))
	for _, k := range def.Stages {
		switch k {
		case KindIntegrity, KindData, KindVolume:
		default:
			return domain.StepListError{Step: def.Name, Reason: fmt.Sprintf("unknown stage %q", k)}
		}
		if kinds[k] {
			return domain.StepListError{Step: def.Name, Reason: fmt.Sprintf("stage %q listed twice", k)}
		}
		kinds[k] = true
	}
	if len(def.Tables) == 0 {
		return domain.StepListError{Step: def.Name, Reason: "no tables"}
	}
	for i := range def.Tables {
		if def.Tables[i].Source == "" {
			return domain.StepListError{Step: def.Name, Reason: fmt.Sprintf("table %d has no source", i)}
		}
		if def.Tables[i].Key == "" {
			return domain.StepListError{Step: def.Name, Reason: fmt.Sprintf("table %s has no key", def.Tables[i].Source)}
		}
		if def.Tables[i].Destination == "" {
			def.Tables[i].Destination = def.Tables[i].Source
		}
	}
	return nil
}
