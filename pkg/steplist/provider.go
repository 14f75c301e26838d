package steplist

import (
	"context"
	"database/sql"
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
	"github.com/asecurityteam/data-migration-tool/pkg/stages"
)

// Config contains the step list settings
type Config struct {
	File      string `description:"YAML file listing the migration steps in order."`
	BatchSize int    `description:"Number of rows read from the source per query."`
}

// Name is used by the settings library to replace the default naming convention.
func (c *Config) Name() string {
	return "Steps"
}

// FileProvider builds the step list from a YAML file and wires every stage to
// the source and destination databases.
type FileProvider struct {
	Path        string
	LogFn       domain.LogFn
	Source      *sql.DB
	Destination *sql.DB
	Progress    domain.ProgressRecorder
	BatchSize   int

	readFile func(string) ([]byte, error) // unit test seam
}

func (p *FileProvider) definitions() ([]Definition, error) {
	read := p.readFile
	if read == nil {
		read = ioutil.ReadFile
	}
	data, err := read(p.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read step list %s", p.Path)
	}
	return Parse(data)
}

// StepList returns the steps of the given mode in file order
func (p *FileProvider) StepList(ctx context.Context, mode string) (domain.StepList, error) {
	if mode != domain.ModeData {
		return nil, domain.StepListError{Reason: fmt.Sprintf("unsupported mode %q", mode)}
	}
	definitions, err := p.definitions()
	if err != nil {
		return nil, err
	}
	steps := make(domain.StepList, 0, len(definitions))
	for _, def := range definitions {
		steps = append(steps, p.build(def))
	}
	return steps, nil
}

// DeltaTables lists the source tables needing change tracking, each once, in step order.
// A table tracked by several steps must use the same key in all of them.
func (p *FileProvider) DeltaTables() ([]stages.DeltaTable, error) {
	definitions, err := p.definitions()
	if err != nil {
		return nil, err
	}
	keys := make(map[string]string)
	tables := make([]stages.DeltaTable, 0)
	for _, def := range definitions {
		if !def.Delta {
			continue
		}
		for _, t := range def.Tables {
			if key, ok := keys[t.Source]; ok {
				if key != t.Key {
					return nil, domain.StepListError{
						Step:   def.Name,
						Reason: fmt.Sprintf("table %s is tracked with key %s and %s", t.Source, key, t.Key),
					}
				}
				continue
			}
			keys[t.Source] = t.Key
			tables = append(tables, stages.DeltaTable{Name: t.Source, Key: t.Key})
		}
	}
	return tables, nil
}

func (p *FileProvider) build(def Definition) domain.Step {
	tables := make([]stages.TableMap, 0, len(def.Tables))
	for _, t := range def.Tables {
		tables = append(tables, stages.TableMap{
			Source:      t.Source,
			Destination: t.Destination,
			Key:         t.Key,
			Ignore:      t.Ignore,
		})
	}
	step := domain.Step{Name: def.Name}
	if def.Has(KindIntegrity) {
		step.Integrity = &stages.StructureIntegrity{
			LogFn:       p.LogFn,
			Source:      p.Source,
			Destination: p.Destination,
			Tables:      tables,
		}
	}
	if def.Has(KindData) {
		step.Data = &stages.TableCopy{
			LogFn:       p.LogFn,
			Source:      p.Source,
			Destination: p.Destination,
			Progress:    p.Progress,
			Step:        def.Name,
			Tables:      tables,
			BatchSize:   p.BatchSize,
		}
	}
	if def.Has(KindVolume) {
		step.Volume = &stages.RowCountVolume{
			LogFn:       p.LogFn,
			Source:      p.Source,
			Destination: p.Destination,
			Tables:      tables,
		}
	}
	return step
}
