package pinch

import (
	"errors"

	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/observability/report"
	"github.com/zeusync/rewardshaping/internal/core/rewards"
	"github.com/zeusync/rewardshaping/pkg/encoding"
)

var _ rewards.LoggableReward = (*PinchTeamSetupReward)(nil)

type PinchTeamSetupArgs struct {
	PinchRewardConfig PinchArgs `json:"pinchRewardConfig" yaml:"pinchRewardConfig"`
	// TeammateMaxDist is how close a teammate must be to the ball for the pinch to count.
	TeammateMaxDist float64 `json:"teammateMaxDist" yaml:"teammateMaxDist"`
}

func DefaultPinchTeamSetupArgs() *PinchTeamSetupArgs {
	return &PinchTeamSetupArgs{
		PinchRewardConfig: *DefaultPinchArgs(),
		TeammateMaxDist:   400,
	}
}

func (a *PinchTeamSetupArgs) Validate() error {
	return errors.Join(
		rewards.Positive("teammateMaxDist", a.TeammateMaxDist),
		a.PinchRewardConfig.Validate(),
	)
}

func (a *PinchTeamSetupArgs) Serialize() ([]byte, error) { return encoding.ToJSON(a) }

func (a *PinchTeamSetupArgs) Deserialize(data []byte) error { return encoding.FromJSON(data, a) }

// PinchTeamSetupReward counts pinches against a teammate.
type PinchTeamSetupReward struct {
	rewards.Loggable
	config *PinchTeamSetupArgs
	pinch  *PinchReward
}

// NewPinchTeamSetupReward uses the defaults when args is nil.
func NewPinchTeamSetupReward(args *PinchTeamSetupArgs) *PinchTeamSetupReward {
	if args == nil {
		args = DefaultPinchTeamSetupArgs()
	}
	return &PinchTeamSetupReward{config: args, pinch: NewPinchReward(&args.PinchRewardConfig)}
}

func (r *PinchTeamSetupReward) Reset(initial *game.State) { r.pinch.Reset(initial) }

func (r *PinchTeamSetupReward) GetReward(player *game.Player, state *game.State, prevAction game.Action) float64 {
	r.Begin()
	pinch := r.pinch.GetReward(player, state, prevAction)
	for _, mate := range state.Teammates(player) {
		if mate.Phys.Pos.Dist(state.Ball.Pos) <= r.config.TeammateMaxDist {
			r.Track("pinch", pinch)
			break
		}
	}
	return r.End()
}

func (r *PinchTeamSetupReward) ClearChanges() {
	r.Loggable.ClearChanges()
	r.pinch.ClearChanges()
}

// Log writes this reward's terms under name and the nested pinch breakdown
// under name/pinchReward. The nested key covers every call, counted or not;
// name/pinch holds only what was counted.
func (r *PinchTeamSetupReward) Log(rep *report.Report, name string, weight float64) {
	r.Loggable.Log(rep, name, weight)
	r.pinch.Log(rep, rewards.Key(name, "pinchReward"), weight)
}

func (r *PinchTeamSetupReward) GetConfig() rewards.Config { return r.config }
