package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
edges:
  - {from: 0, to: 1, weight: 4}
  - {from: 1, to: 2, weight: -6}
source: 0
sink: 2
weight_in: 1
weight_out: 2
title: tiny chain
`), 0o644))

	sc, err := loadScenario(path)
	require.NoError(t, err)
	require.Len(t, sc.Edges, 2)
	require.Equal(t, scenarioEdge{From: 1, To: 2, Weight: -6}, sc.Edges[1])
	require.Equal(t, 0, sc.Source)
	require.Equal(t, 2, sc.Sink)
	require.Equal(t, "tiny chain", sc.Title)

	edges := sc.coreEdges()
	require.Equal(t, -6.0, edges[1].Weight)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := loadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadScenario_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("edges: [not-an-edge"), 0o644))

	_, err := loadScenario(path)
	require.Error(t, err)
}

func TestDefaultScenario_ShapeOfReferenceData(t *testing.T) {
	sc := defaultScenario()
	require.Len(t, sc.Edges, 15)
	require.Equal(t, 0, sc.Source)
	require.Equal(t, 8, sc.Sink)

	// Exactly one negative edge: 3→4 at weight -6.
	negatives := 0
	for _, e := range sc.Edges {
		if e.Weight < 0 {
			negatives++
			require.Equal(t, scenarioEdge{From: 3, To: 4, Weight: -6}, e)
		}
	}
	require.Equal(t, 1, negatives)
}
