// Package doubletap scores double taps: a touch into the opponent backboard
// followed by a second touch off the rebound before the ball lands.
package doubletap

import (
	"math"

	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/rewards"
	"github.com/zeusync/rewardshaping/pkg/encoding"
)

var _ rewards.LoggableReward = (*DoubleTapReward)(nil)

// groundContactZ is the ball height at which it counts as landed.
const groundContactZ = game.BallRadius + 10

type DoubleTapArgs struct {
	BackboardBounceW float64 `json:"backboardBounceW" yaml:"backboardBounceW"`
	SecondTouchW     float64 `json:"secondTouchW" yaml:"secondTouchW"`
	GoalW            float64 `json:"goalW" yaml:"goalW"`
	// BackboardDist is how far from the back wall, ball surface to wall, a rebound is detected.
	BackboardDist float64 `json:"backboardDist" yaml:"backboardDist"`
}

func DefaultDoubleTapArgs() *DoubleTapArgs {
	return &DoubleTapArgs{
		BackboardBounceW: 5,
		SecondTouchW:     20,
		GoalW:            50,
		BackboardDist:    300,
	}
}

func (a *DoubleTapArgs) Validate() error {
	return rewards.NonNegative("backboardDist", a.BackboardDist)
}

func (a *DoubleTapArgs) Serialize() ([]byte, error) { return encoding.ToJSON(a) }

func (a *DoubleTapArgs) Deserialize(data []byte) error { return encoding.FromJSON(data, a) }

// sequence is the attempt in flight. It starts over when the ball lands
// between bounce and second touch.
type sequence struct {
	touched      bool
	bounced      bool
	doubleTapped bool
	scored       bool
}

// paid records the transitions already rewarded this episode.
type paid struct {
	bounce      bool
	secondTouch bool
	goal        bool
}

type progress struct {
	lastVelY float64
	seq      sequence
	paid     paid
}

// DoubleTapReward follows each car through touch, backboard rebound,
// second touch and goal. Every transition pays once per episode, however
// many attempts the car makes.
type DoubleTapReward struct {
	rewards.Loggable
	config *DoubleTapArgs

	initialVelY float64
	progress    map[int]*progress
}

// NewDoubleTapReward uses the defaults when args is nil.
func NewDoubleTapReward(args *DoubleTapArgs) *DoubleTapReward {
	if args == nil {
		args = DefaultDoubleTapArgs()
	}
	return &DoubleTapReward{config: args, progress: make(map[int]*progress)}
}

func (r *DoubleTapReward) Reset(initial *game.State) {
	r.initialVelY = initial.Ball.Vel.Y
	clear(r.progress)
}

func (r *DoubleTapReward) GetReward(player *game.Player, state *game.State, _ game.Action) float64 {
	r.Begin()
	r.Score(player, state)
	return r.End()
}

// Score advances the player's double tap and tracks the terms it earns into
// the current call. Rewards embedding DoubleTapReward call it between their
// own Begin and End.
func (r *DoubleTapReward) Score(player *game.Player, state *game.State) {
	cfg := r.config
	p := r.progressOf(player.CarID)
	ball := state.Ball
	dir := player.Team.Dir()

	seq := &p.seq

	if player.BallTouched {
		switch {
		case seq.bounced && !seq.doubleTapped:
			seq.doubleTapped = true
			if !p.paid.secondTouch {
				p.paid.secondTouch = true
				r.Track("secondTouch", cfg.SecondTouchW)
			}
		case !seq.bounced:
			seq.touched = true
		}
	}

	if seq.touched && !seq.bounced && r.NearBackboard(player.Team, ball.Pos) &&
		p.lastVelY*dir > 0 && ball.Vel.Y*dir <= 0 {
		seq.bounced = true
		if !p.paid.bounce {
			p.paid.bounce = true
			r.Track("backboardBounce", cfg.BackboardBounceW)
		}
	}

	if seq.bounced && !seq.doubleTapped && ball.Pos.Z <= groundContactZ {
		// landed before the second touch
		*seq = sequence{}
	}

	if seq.doubleTapped && !seq.scored && game.IsGoal(player.Team, ball) {
		seq.scored = true
		if !p.paid.goal {
			p.paid.goal = true
			r.Track("goal", cfg.GoalW)
		}
	}

	p.lastVelY = ball.Vel.Y
}

// NearBackboard reports whether pos is against the opponent backboard, above the goal.
func (r *DoubleTapReward) NearBackboard(team game.Team, pos game.Vec) bool {
	gap := math.Abs(game.OpponentBackWallY(team)-pos.Y) - game.BallRadius
	return gap <= r.config.BackboardDist && pos.Z >= game.GoalHeight
}

// Stage describes how far the car got, for tests and debugging.
func (r *DoubleTapReward) Stage(carID int) string {
	p, ok := r.progress[carID]
	switch {
	case !ok:
		return "none"
	case p.seq.scored:
		return "goal"
	case p.seq.doubleTapped:
		return "double_tap"
	case p.seq.bounced:
		return "bounced"
	case p.seq.touched:
		return "touched"
	default:
		return "none"
	}
}

func (r *DoubleTapReward) progressOf(carID int) *progress {
	p, ok := r.progress[carID]
	if !ok {
		p = &progress{lastVelY: r.initialVelY}
		r.progress[carID] = p
	}
	return p
}

func (r *DoubleTapReward) GetConfig() rewards.Config { return r.config }
