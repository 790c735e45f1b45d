package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathviz/core"
)

// scenario is the YAML shape of a pathviz input file.
//
// Example:
//
//	edges:
//	  - {from: 0, to: 1, weight: 4}
//	  - {from: 1, to: 2, weight: -6}
//	source: 0
//	sink: 2
//	weight_in: 1
//	weight_out: 2
//	title: my graph
type scenario struct {
	Edges     []scenarioEdge `yaml:"edges"`
	Source    int            `yaml:"source"`
	Sink      int            `yaml:"sink"`
	WeightIn  float64        `yaml:"weight_in"`
	WeightOut float64        `yaml:"weight_out"`
	Title     string         `yaml:"title"`
}

type scenarioEdge struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// coreEdges converts the scenario's YAML edge records to core.Edge values.
func (s scenario) coreEdges() []core.Edge {
	edges := make([]core.Edge, len(s.Edges))
	for i, e := range s.Edges {
		edges[i] = core.Edge{From: e.From, To: e.To, Weight: e.Weight}
	}

	return edges
}

// loadScenario reads and parses a YAML scenario file. Structural validation
// (existing source/sink, non-empty edges) is left to the pipeline, which
// owns those rules.
func loadScenario(path string) (scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scenario{}, fmt.Errorf("read scenario %q: %w", path, err)
	}

	var sc scenario
	if err = yaml.Unmarshal(data, &sc); err != nil {
		return scenario{}, fmt.Errorf("parse scenario %q: %w", path, err)
	}

	return sc, nil
}
