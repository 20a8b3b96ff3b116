package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/plus3/blockfall/game"
)

const tickSeconds = 1.0 / 60.0

// policyActions are the inputs the random policy draws from. Movement and
// rotation dominate; drops are rare so games last long enough to exercise
// gravity, locking and line clears.
var policyActions = []game.Action{
	game.ActionMoveLeft, game.ActionMoveLeft,
	game.ActionMoveRight, game.ActionMoveRight,
	game.ActionRotateCW,
	game.ActionRotateCCW,
	game.ActionSoftDrop, game.ActionSoftDrop,
	game.ActionHardDrop,
}

func main() {
	games := flag.Int("games", 10, "The number of full games to simulate.")
	seed := flag.Uint64("seed", 1, "Base RNG seed; game i plays with seed+i.")
	actionsPerTick := flag.Int("actions-per-tick", 1, "How many random inputs to enqueue each tick.")
	maxTicks := flag.Int("max-ticks", 100000, "Safety cap on ticks per game.")
	flag.Parse()

	log.Printf("Simulating %d games...", *games)

	report := &Report{
		Games:          *games,
		Seed:           *seed,
		ActionsPerTick: *actionsPerTick,
	}

	startTime := time.Now()

	for i := 0; i < *games; i++ {
		gameSeed := *seed + uint64(i)
		outcome := playGame(gameSeed, *actionsPerTick, *maxTicks, report)

		report.Scores.Samples = append(report.Scores.Samples, int64(outcome.score))
		report.Lines.Samples = append(report.Lines.Samples, int64(outcome.lines))
		report.Ticks.Samples = append(report.Ticks.Samples, int64(outcome.ticks))
	}

	report.TotalTime = time.Since(startTime)
	report.Scores.Finalize()
	report.Lines.Finalize()
	report.Ticks.Finalize()

	log.Println("Simulation finished.")

	fmt.Println("\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

type outcome struct {
	score int
	lines int
	ticks int
}

// playGame runs one full game with a seeded random input policy and returns
// its outcome. Per-system timing merges into the report across games.
func playGame(seed uint64, actionsPerTick, maxTicks int, report *Report) outcome {
	rng := rand.New(rand.NewPCG(seed, seed))

	world := game.NewWorld(game.Config{Seed: seed})
	scheduler := game.NewScheduler(world)
	for _, system := range game.DefaultSystems() {
		scheduler.Register(system)
	}

	world.Enqueue(game.ActionStart)

	ticks := 0
	for ; ticks < maxTicks; ticks++ {
		if world.Session.State() != game.StateRunning && ticks > 0 {
			break
		}
		for i := 0; i < actionsPerTick; i++ {
			world.Enqueue(policyActions[rng.IntN(len(policyActions))])
		}
		scheduler.Once(tickSeconds)
	}

	report.MergeSystems(scheduler.Stats().Systems)

	return outcome{
		score: world.Session.Score(),
		lines: world.Session.Lines(),
		ticks: ticks,
	}
}
