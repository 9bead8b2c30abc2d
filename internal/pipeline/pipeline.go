// Package pipeline assembles validated generation steps into a runnable
// map generation.
package pipeline

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/MeKo-Tech/terragen/internal/grid"
	"github.com/MeKo-Tech/terragen/internal/step"
)

// Pipeline is an ordered list of validated generation steps for a map of
// a fixed size. Steps run sequentially; two pipelines must not run
// concurrently against the same map, since attribute ids are positional.
type Pipeline struct {
	name   string
	size   grid.Size2d
	steps  []step.Step
	logger *slog.Logger
}

// Data is the serializable mirror of a Pipeline.
type Data struct {
	Name  string      `json:"name"`
	Size  grid.Size2d `json:"size"`
	Steps []step.Data `json:"steps"`
}

// FromData validates the steps in order, tracking the attribute names
// created along the way, and creates the pipeline. A step referencing a
// name that does not exist at its position in the sequence fails the
// whole conversion.
func FromData(data Data, logger *slog.Logger) (*Pipeline, error) {
	if data.Size.Area() == 0 {
		return nil, fmt.Errorf("pipeline %q: degenerate size %s", data.Name, data.Size)
	}

	names := []string{}
	steps := make([]step.Step, 0, len(data.Steps))
	for i, stepData := range data.Steps {
		s, err := stepData.ToStep(&names)
		if err != nil {
			return nil, fmt.Errorf("pipeline %q: step %d: %w", data.Name, i, err)
		}
		steps = append(steps, s)
	}

	return &Pipeline{name: data.Name, size: data.Size, steps: steps, logger: logger}, nil
}

// Load reads a pipeline definition from a JSON file.
func Load(path string, logger *slog.Logger) (*Pipeline, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline file: %w", err)
	}

	var data Data
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline file %s: %w", path, err)
	}

	return FromData(data, logger)
}

// Data returns the serializable mirror of the pipeline. It is the
// inverse of FromData.
func (p *Pipeline) Data() Data {
	names := []string{}
	steps := make([]step.Data, 0, len(p.steps))
	for _, s := range p.steps {
		steps = append(steps, step.ToData(s, &names))
	}
	return Data{Name: p.name, Size: p.size, Steps: steps}
}

// Name returns the pipeline's name, shared with the generated map.
func (p *Pipeline) Name() string {
	return p.name
}

// StepCount returns the number of steps.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// Run creates a fresh map and executes every step in order.
func (p *Pipeline) Run() (*grid.Map2d, error) {
	m := grid.New(p.name, p.size)

	for i, s := range p.steps {
		p.log().Info("Running generation step", "map", p.name, "step", s.Name(), "position", i)
		if err := s.Run(m); err != nil {
			return nil, fmt.Errorf("pipeline %q: step %d (%s): %w", p.name, i, s.Name(), err)
		}
	}

	return m, nil
}

func (p *Pipeline) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return slog.Default()
}
