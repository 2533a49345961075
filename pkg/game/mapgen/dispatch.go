package mapgen

import (
	"fmt"
	"math/rand"
	"strings"

	"darkdelve/pkg/logger"
)

// Algorithm is the explicit tag selecting a generation strategy. Selection
// is a plain configuration value; nothing is wired implicitly.
type Algorithm int

// Implemented strategies.
const (
	AlgorithmSimpleRooms Algorithm = iota
	AlgorithmBSPDungeon
	AlgorithmBSPInterior
	AlgorithmCellularAutomata
	AlgorithmDrunkardsWalk
	AlgorithmDLA
	AlgorithmMaze
	AlgorithmVoronoi

	algorithmCount
)

// String returns the algorithm's short configuration token.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmSimpleRooms:
		return "simple"
	case AlgorithmBSPDungeon:
		return "bsp"
	case AlgorithmBSPInterior:
		return "bsp-interior"
	case AlgorithmCellularAutomata:
		return "cellular"
	case AlgorithmDrunkardsWalk:
		return "drunkard"
	case AlgorithmDLA:
		return "dla"
	case AlgorithmMaze:
		return "maze"
	case AlgorithmVoronoi:
		return "voronoi"
	default:
		return "unknown"
	}
}

// ParseAlgorithm resolves a configuration token to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a := Algorithm(0); a < algorithmCount; a++ {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", s)
}

// Options carries cross-strategy construction settings. The per-strategy
// configs fall back to their documented defaults when nil.
type Options struct {
	Snapshot bool
	Drunkard *DrunkardConfig
	DLA      *DLAConfig
	Voronoi  *VoronoiConfig
}

// New constructs the builder for an explicitly chosen algorithm.
func New(alg Algorithm, width, height, depth int, opts Options) Builder {
	switch alg {
	case AlgorithmBSPDungeon:
		return NewBSPDungeonBuilder(width, height, depth, opts.Snapshot)
	case AlgorithmBSPInterior:
		return NewBSPInteriorBuilder(width, height, depth, opts.Snapshot)
	case AlgorithmCellularAutomata:
		return NewCellularAutomataBuilder(width, height, depth, opts.Snapshot)
	case AlgorithmDrunkardsWalk:
		config := DrunkardOpenArea()
		if opts.Drunkard != nil {
			config = *opts.Drunkard
		}
		return NewDrunkardBuilder(width, height, depth, opts.Snapshot, config)
	case AlgorithmDLA:
		config := DLAInward()
		if opts.DLA != nil {
			config = *opts.DLA
		}
		return NewDLABuilder(width, height, depth, opts.Snapshot, config)
	case AlgorithmMaze:
		return NewMazeBuilder(width, height, depth, opts.Snapshot)
	case AlgorithmVoronoi:
		config := DefaultVoronoiConfig()
		if opts.Voronoi != nil {
			config = *opts.Voronoi
		}
		return NewVoronoiBuilder(width, height, depth, opts.Snapshot, config)
	default:
		return NewSimpleRoomsBuilder(width, height, depth, opts.Snapshot)
	}
}

// Random picks a strategy, and a preset for the configurable ones, from the
// injected rand source.
func Random(rng *rand.Rand, width, height, depth int, opts Options) Builder {
	alg := Algorithm(rng.Intn(int(algorithmCount)))

	switch alg {
	case AlgorithmDrunkardsWalk:
		presets := []DrunkardConfig{DrunkardOpenArea(), DrunkardOpenHalls(), DrunkardWindingPassages()}
		config := presets[rng.Intn(len(presets))]
		opts.Drunkard = &config
	case AlgorithmDLA:
		presets := []DLAConfig{DLAInward(), DLAOutward(), DLAAttractor(), DLAInsectoid()}
		config := presets[rng.Intn(len(presets))]
		opts.DLA = &config
	case AlgorithmVoronoi:
		config := DefaultVoronoiConfig()
		config.Metric = VoronoiMetric(rng.Intn(3))
		opts.Voronoi = &config
	}

	builder := New(alg, width, height, depth, opts)
	logger.Log.WithField("algorithm", builder.Name()).Debug("builder selected")
	return builder
}
