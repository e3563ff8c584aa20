// Package pinch scores the setup and execution of pinches: the ball being
// squeezed between a car and the wall, ceiling, ground or a teammate.
package pinch

import (
	"errors"

	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/rewards"
	"github.com/zeusync/rewardshaping/pkg/encoding"
)

var _ rewards.LoggableReward = (*PinchReward)(nil)

type BallHandling struct {
	// BallVelW weights the ball speed gained on a touch.
	BallVelW float64 `json:"ballVelW" yaml:"ballVelW"`
	TouchW   float64 `json:"touchW" yaml:"touchW"`
	// GoalDirectionSimilarity is the minimum cosine between the ball velocity
	// and the direction to the opponent goal.
	GoalDirectionSimilarity float64 `json:"goalDirectionSimilarity" yaml:"goalDirectionSimilarity"`
	GoalDirectionW          float64 `json:"goalDirectionW" yaml:"goalDirectionW"`
}

type PinchArgs struct {
	BallHandling BallHandling `json:"ballHandling" yaml:"ballHandling"`
}

func DefaultPinchArgs() *PinchArgs {
	return &PinchArgs{
		BallHandling: BallHandling{
			BallVelW:                1.0,
			TouchW:                  1.0,
			GoalDirectionSimilarity: 0.8,
			GoalDirectionW:          3.0,
		},
	}
}

func (a *PinchArgs) Validate() error {
	h := a.BallHandling
	return errors.Join(
		rewards.NonNegative("ballHandling.ballVelW", h.BallVelW),
		rewards.Similarity("ballHandling.goalDirectionSimilarity", h.GoalDirectionSimilarity),
	)
}

func (a *PinchArgs) Serialize() ([]byte, error) { return encoding.ToJSON(a) }

func (a *PinchArgs) Deserialize(data []byte) error { return encoding.FromJSON(data, a) }

// PinchReward rewards touches that accelerate the ball, more so when the
// ball leaves towards the opponent goal.
type PinchReward struct {
	rewards.Loggable
	config *PinchArgs

	initialBallSpeed float64
	lastBallSpeed    map[int]float64
}

// NewPinchReward uses the defaults when args is nil.
func NewPinchReward(args *PinchArgs) *PinchReward {
	if args == nil {
		args = DefaultPinchArgs()
	}
	return &PinchReward{config: args, lastBallSpeed: make(map[int]float64)}
}

func (r *PinchReward) Reset(initial *game.State) {
	r.initialBallSpeed = initial.Ball.Speed()
	clear(r.lastBallSpeed)
}

func (r *PinchReward) GetReward(player *game.Player, state *game.State, _ game.Action) float64 {
	r.Begin()
	ball := state.Ball
	speed := ball.Speed()

	last, ok := r.lastBallSpeed[player.CarID]
	if !ok {
		last = r.initialBallSpeed
	}

	if player.BallTouched {
		h := r.config.BallHandling
		r.Track("touch", h.TouchW)

		if gain := speed - last; gain > 0 {
			r.Track("ballAccel", h.BallVelW*gain/game.BallMaxSpeed)
		}

		toGoal := game.OpponentGoal(player.Team).Sub(ball.Pos)
		if sim := ball.Vel.Cos(toGoal); speed > 0 && sim >= h.GoalDirectionSimilarity {
			r.Track("goalDirection", h.GoalDirectionW*sim*speed/game.BallMaxSpeed)
		}
	}

	r.lastBallSpeed[player.CarID] = speed
	return r.End()
}

func (r *PinchReward) GetConfig() rewards.Config { return r.config }
