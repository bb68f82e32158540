// Package telemetry collects per-run records and session aggregates, and
// optionally writes them to CSV for offline analysis.
package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// RunRecord describes one finished run, from (re)start to the collision or
// the player abandoning it from the pause menu.
type RunRecord struct {
	EndedAtTick int64   `csv:"ended_at_tick"` // session-global tick counter
	Score       int     `csv:"score"`
	Length      int     `csv:"length"` // snake segments at end of run
	Ticks       int     `csv:"ticks"`  // movement ticks this run lasted
	DurationSec float64 `csv:"duration_sec"`
	Cause       string  `csv:"cause"` // "collision" or "abandoned"
	HighScore   int     `csv:"high_score"`
}

// Collector accumulates run records over a session.
type Collector struct {
	runs []RunRecord
}

func NewCollector() *Collector {
	return &Collector{}
}

// Record appends a finished run.
func (c *Collector) Record(r RunRecord) {
	c.runs = append(c.runs, r)
}

// Runs returns all recorded runs in order.
func (c *Collector) Runs() []RunRecord {
	return c.runs
}

// Summary holds aggregate score statistics for the session.
type Summary struct {
	Runs        int
	ScoreMean   float64
	ScoreStd    float64
	ScoreMedian float64
	ScoreMax    int
	TotalTicks  int
}

// Summary computes aggregates over all recorded runs. StdDev needs two runs;
// with fewer it reports zero.
func (c *Collector) Summary() Summary {
	n := len(c.runs)
	if n == 0 {
		return Summary{}
	}

	scores := make([]float64, n)
	sum := Summary{Runs: n}
	for i, r := range c.runs {
		scores[i] = float64(r.Score)
		if r.Score > sum.ScoreMax {
			sum.ScoreMax = r.Score
		}
		sum.TotalTicks += r.Ticks
	}

	sum.ScoreMean = stat.Mean(scores, nil)
	if n > 1 {
		sum.ScoreStd = stat.StdDev(scores, nil)
	}
	sort.Float64s(scores)
	sum.ScoreMedian = stat.Quantile(0.5, stat.Empirical, scores, nil)
	return sum
}
