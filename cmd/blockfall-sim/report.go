package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/blockfall/game"
)

type Report struct {
	// Configuration
	Games          int
	Seed           uint64
	ActionsPerTick int

	// Results
	TotalTime time.Duration
	Scores    Stats
	Lines     Stats
	Ticks     Stats
	Systems   []game.SystemStats
}

type Stats struct {
	Min     int64
	Max     int64
	Avg     float64
	Samples []int64
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total int64
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = float64(total) / float64(len(s.Samples))
}

// MergeSystems folds one scheduler's per-system stats into the report's
// running totals, matched by position in the pipeline.
func (r *Report) MergeSystems(systems []game.SystemStats) {
	if r.Systems == nil {
		r.Systems = make([]game.SystemStats, len(systems))
		copy(r.Systems, systems)
		return
	}

	for i, sys := range systems {
		agg := &r.Systems[i]
		agg.ExecutionCount += sys.ExecutionCount
		agg.TotalDuration += sys.TotalDuration
		if sys.MinDuration < agg.MinDuration {
			agg.MinDuration = sys.MinDuration
		}
		if sys.MaxDuration > agg.MaxDuration {
			agg.MaxDuration = sys.MaxDuration
		}
		if agg.ExecutionCount > 0 {
			agg.AvgDuration = agg.TotalDuration / time.Duration(agg.ExecutionCount)
		}
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Games Played:** {{.Games}}
- **Base Seed:** {{.Seed}}
- **Actions Per Tick:** {{.ActionsPerTick}}

## Outcomes
- **Total Wall Time:** {{.TotalTime}}
- **Score:** avg {{printf "%.1f" .Scores.Avg}} (min {{.Scores.Min}}, max {{.Scores.Max}})
- **Lines Cleared:** avg {{printf "%.1f" .Lines.Avg}} (min {{.Lines.Min}}, max {{.Lines.Max}})
- **Game Length (ticks):** avg {{printf "%.0f" .Ticks.Avg}} (min {{.Ticks.Min}}, max {{.Ticks.Max}})

## System Timing
| System | Executions | Avg | Min | Max |
|---|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{end}}`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
