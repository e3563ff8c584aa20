package replay

import (
	"context"
	"fmt"
	"time"

	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/observability/log"
	"github.com/zeusync/rewardshaping/internal/core/observability/report"
	"github.com/zeusync/rewardshaping/internal/core/rewards"
)

// Result sums what every car earned over an episode.
type Result struct {
	Episode string
	Steps   int
	Returns map[int]float64
}

type Evaluator struct {
	log log.Log
	// Name prefixes the report keys. Empty logs a Combined per entry.
	Name   string
	Weight float64
}

// NewEvaluator logs to logger, or nowhere when it is nil.
func NewEvaluator(logger log.Log) *Evaluator {
	if logger == nil {
		logger = log.Nop()
	}
	return &Evaluator{log: logger, Weight: 1}
}

// Evaluate runs ep through a silent Evaluator.
func Evaluate(ctx context.Context, reward rewards.LoggableReward, ep *Episode, rep *report.Report) (Result, error) {
	return NewEvaluator(nil).Evaluate(ctx, reward, ep, rep)
}

// Evaluate resets reward on the first state, then scores every player of
// every step with the action it applied the step before. After each step the
// breakdown is logged into rep and cleared.
func (e *Evaluator) Evaluate(ctx context.Context, reward rewards.LoggableReward, ep *Episode, rep *report.Report) (Result, error) {
	res := Result{Episode: ep.Name, Returns: make(map[int]float64)}
	if len(ep.Steps) == 0 {
		return res, fmt.Errorf("%w: %s", ErrEmptyEpisode, ep.Name)
	}

	logger := e.log.With(log.String("episode", ep.Name))
	started := time.Now()

	reward.Reset(&ep.Steps[0].State)
	prev := make(map[int]game.Action)

	for i := range ep.Steps {
		if err := ctx.Err(); err != nil {
			logger.Warn("evaluation interrupted", log.Int("step", i), log.Error(err))
			return res, err
		}

		step := &ep.Steps[i]
		state := &step.State
		for j := range state.Players {
			p := &state.Players[j]
			res.Returns[p.CarID] += reward.GetReward(p, state, prev[p.CarID])
		}
		reward.Log(rep, e.Name, e.Weight)
		reward.ClearChanges()

		for id, a := range step.Actions {
			prev[id] = a
		}
		res.Steps++
	}

	logger.Debug("episode evaluated",
		log.Int("steps", res.Steps),
		log.Int("cars", len(res.Returns)),
		log.Duration("elapsed", time.Since(started)),
	)
	return res, nil
}
