package rewards

import (
	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/observability/report"
)

var _ LoggableReward = (*Combined)(nil)

type Entry struct {
	Name   string
	// Type is the registry name the reward was built from, if any.
	Type   string
	Weight float64
	Reward LoggableReward
}

// Combined sums weighted rewards and logs each one under its own name.
type Combined struct {
	Loggable
	entries []Entry
	config  *FileConfig
}

func NewCombined(entries ...Entry) *Combined {
	return &Combined{entries: entries}
}

// Add appends a reward. Plain rewards are wrapped with AsLoggable.
func (c *Combined) Add(name string, weight float64, r Reward) *Combined {
	c.entries = append(c.entries, Entry{Name: name, Weight: weight, Reward: AsLoggable(r)})
	return c
}

func (c *Combined) Entries() []Entry { return c.entries }

func (c *Combined) Reset(initial *game.State) {
	for _, e := range c.entries {
		e.Reward.Reset(initial)
	}
}

func (c *Combined) GetReward(player *game.Player, state *game.State, prevAction game.Action) float64 {
	c.Begin()
	for _, e := range c.entries {
		c.step += e.Weight * e.Reward.GetReward(player, state, prevAction)
	}
	return c.End()
}

func (c *Combined) ClearChanges() {
	c.Loggable.ClearChanges()
	for _, e := range c.entries {
		e.Reward.ClearChanges()
	}
}

// Log writes each entry under name/entry, or under the entry name alone when
// name is empty, in which case the combined total is not written.
func (c *Combined) Log(r *report.Report, name string, weight float64) {
	if name != "" {
		c.Loggable.Log(r, name, weight)
	}
	for _, e := range c.entries {
		e.Reward.Log(r, Key(name, e.Name), weight*e.Weight)
	}
}

// GetConfig returns the file config the reward was built from, or one
// describing the entries when it was assembled by hand.
func (c *Combined) GetConfig() Config {
	if c.config != nil {
		return c.config
	}
	cfg := &FileConfig{}
	for _, e := range c.entries {
		w := e.Weight
		spec := RewardSpec{Name: e.Name, Type: e.Type, Weight: &w}
		if args, err := configArgs(e.Reward.GetConfig()); err == nil {
			spec.Args = args
		}
		cfg.Rewards = append(cfg.Rewards, spec)
	}
	return cfg
}
