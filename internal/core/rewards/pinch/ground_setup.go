package pinch

import (
	"errors"

	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/observability/report"
	"github.com/zeusync/rewardshaping/internal/core/rewards"
	"github.com/zeusync/rewardshaping/pkg/encoding"
)

var _ rewards.LoggableReward = (*PinchGroundSetupReward)(nil)

type PinchGroundSetupArgs struct {
	PinchRewardConfig PinchArgs `json:"pinchRewardConfig" yaml:"pinchRewardConfig"`
	// MaxBallHeight is the highest the ball may be for a touch to count as a ground pinch.
	MaxBallHeight float64 `json:"maxBallHeight" yaml:"maxBallHeight"`
}

func DefaultPinchGroundSetupArgs() *PinchGroundSetupArgs {
	return &PinchGroundSetupArgs{
		PinchRewardConfig: *DefaultPinchArgs(),
		MaxBallHeight:     2 * game.BallRadius,
	}
}

func (a *PinchGroundSetupArgs) Validate() error {
	return errors.Join(
		rewards.Positive("maxBallHeight", a.MaxBallHeight),
		a.PinchRewardConfig.Validate(),
	)
}

func (a *PinchGroundSetupArgs) Serialize() ([]byte, error) { return encoding.ToJSON(a) }

func (a *PinchGroundSetupArgs) Deserialize(data []byte) error { return encoding.FromJSON(data, a) }

// PinchGroundSetupReward counts pinches of a ball crushed into the floor.
type PinchGroundSetupReward struct {
	rewards.Loggable
	config *PinchGroundSetupArgs
	pinch  *PinchReward
}

// NewPinchGroundSetupReward uses the defaults when args is nil.
func NewPinchGroundSetupReward(args *PinchGroundSetupArgs) *PinchGroundSetupReward {
	if args == nil {
		args = DefaultPinchGroundSetupArgs()
	}
	return &PinchGroundSetupReward{config: args, pinch: NewPinchReward(&args.PinchRewardConfig)}
}

func (r *PinchGroundSetupReward) Reset(initial *game.State) { r.pinch.Reset(initial) }

func (r *PinchGroundSetupReward) GetReward(player *game.Player, state *game.State, prevAction game.Action) float64 {
	r.Begin()
	pinch := r.pinch.GetReward(player, state, prevAction)
	if state.Ball.Pos.Z <= r.config.MaxBallHeight {
		r.Track("pinch", pinch)
	}
	return r.End()
}

func (r *PinchGroundSetupReward) ClearChanges() {
	r.Loggable.ClearChanges()
	r.pinch.ClearChanges()
}

// Log writes this reward's terms under name and the nested pinch breakdown
// under name/pinchReward. The nested key covers every call, counted or not;
// name/pinch holds only what was counted.
func (r *PinchGroundSetupReward) Log(rep *report.Report, name string, weight float64) {
	r.Loggable.Log(rep, name, weight)
	r.pinch.Log(rep, rewards.Key(name, "pinchReward"), weight)
}

func (r *PinchGroundSetupReward) GetConfig() rewards.Config { return r.config }
