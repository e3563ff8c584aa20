package rewards

import (
	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/observability/report"
	"github.com/zeusync/rewardshaping/pkg/encoding"
)

// Reward is called once per player per step by the training loop.
type Reward interface {
	// Reset clears per-episode scratch state.
	Reset(initial *game.State)
	// GetReward scores player in state given the action it applied last step.
	GetReward(player *game.Player, state *game.State, prevAction game.Action) float64
}

// Config holds the tunable parameters of a reward.
type Config interface {
	encoding.Serializable
	Validate() error
}

// LoggableReward is a Reward whose contribution can be broken down in a report.
type LoggableReward interface {
	Reward
	// ClearChanges drops everything tracked since the last clear.
	ClearChanges()
	// Log writes the weighted contribution under name and each sub-term under name/term.
	Log(r *report.Report, name string, weight float64)
	GetConfig() Config
}

// NoArgs is the Config of rewards without parameters.
type NoArgs struct{}

func (NoArgs) Validate() error { return nil }

func (NoArgs) Serialize() ([]byte, error) { return []byte("{}"), nil }

func (*NoArgs) Deserialize(data []byte) error { return encoding.FromJSON(data, &struct{}{}) }
