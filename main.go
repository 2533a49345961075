package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"darkdelve/pkg/game/devtools"
	"darkdelve/pkg/game/levelgen"
	"darkdelve/pkg/game/mapgen"
	"darkdelve/pkg/game/viewer"
	"darkdelve/pkg/logger"
)

func initI18n() {
	gotext.Configure("locales", "en_GB", "default")
}

func main() {
	algorithmFlag := flag.String("algorithm", "", "generation algorithm (simple, bsp, bsp-interior, cellular, drunkard, dla, maze, voronoi); empty picks one at random")
	seed := flag.Int64("seed", 0, "generation seed; 0 derives one from the clock")
	width := flag.Int("width", 80, "map width in tiles")
	height := flag.Int("height", 50, "map height in tiles")
	depth := flag.Int("depth", 1, "dungeon depth of the generated level")
	snapshots := flag.Bool("snapshots", false, "record a snapshot of every generation step")
	view := flag.String("view", "", "play back the snapshot history: tui or window")
	dump := flag.Bool("dump", false, "write a full debug dump to map.txt")
	flag.Parse()

	logger.Init()
	initI18n()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	opts := mapgen.Options{Snapshot: *snapshots || *view != ""}

	var builder mapgen.Builder
	if *algorithmFlag == "" {
		builder = mapgen.Random(rng, *width, *height, *depth, opts)
	} else {
		alg, err := mapgen.ParseAlgorithm(*algorithmFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		builder = mapgen.New(alg, *width, *height, *depth, opts)
	}

	builder.Build(rng)

	m := builder.Map()
	m.PopulateBlocked()
	startX, startY := builder.StartingPosition()
	intents := levelgen.RollSpawns(m, builder.SpawnRegions(), *depth, rng)

	logger.Log.WithField("algorithm", builder.Name()).
		WithField("seed", *seed).
		WithField("spawns", len(intents)).
		Info("level generated")

	switch *view {
	case "tui":
		viewer.PlayTUI(builder.Name(), builder.SnapshotHistory(), startX, startY)
	case "window":
		if err := viewer.PlayWindow(builder.Name(), builder.SnapshotHistory(), startX, startY); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		devtools.RenderMap(m, startX, startY)
	}

	if *dump {
		path, err := devtools.DumpMapToFile(m, builder.Name(), *seed, startX, startY, intents)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(gotext.Get("Map dump written to"), path)
	}
}
