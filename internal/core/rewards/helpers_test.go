package rewards

import (
	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/pkg/encoding"
)

type constArgs struct {
	Value float64 `json:"value" yaml:"value"`
	Bonus float64 `json:"bonus" yaml:"bonus"`
}

func defaultConstArgs() *constArgs { return &constArgs{Value: 1} }

func (a *constArgs) Validate() error { return NonNegative("bonus", a.Bonus) }

func (a *constArgs) Serialize() ([]byte, error) { return encoding.ToJSON(a) }

func (a *constArgs) Deserialize(data []byte) error { return encoding.FromJSON(data, a) }

// constReward pays value every call and bonus on touches.
type constReward struct {
	Loggable
	cfg    *constArgs
	resets int
}

func newConstReward(cfg *constArgs) LoggableReward { return &constReward{cfg: cfg} }

func (r *constReward) Reset(*game.State) { r.resets++ }

func (r *constReward) GetReward(p *game.Player, _ *game.State, _ game.Action) float64 {
	r.Begin()
	r.Track("value", r.cfg.Value)
	if p.BallTouched {
		r.Track("bonus", r.cfg.Bonus)
	}
	return r.End()
}

func (r *constReward) GetConfig() Config { return r.cfg }

// bare has no breakdown of its own.
type bare float64

func (bare) Reset(*game.State) {}

func (b bare) GetReward(*game.Player, *game.State, game.Action) float64 { return float64(b) }

func testRegistry() Registry {
	reg := NewRegistry()
	reg.Register("Const", FactoryOf(defaultConstArgs, newConstReward))
	return reg
}
