package doubletap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/rewards"
)

func TestGroundDoubleTapZone(t *testing.T) {
	r := NewGroundDoubleTapReward(nil)

	assert.True(t, r.InZone(game.Blue, v(0, 5000, 1000)))
	assert.False(t, r.InZone(game.Blue, v(0, 5000, 300)))
	assert.False(t, r.InZone(game.Blue, v(0, 4000, 1000)))
	assert.False(t, r.InZone(game.Orange, v(0, 5000, 1000)))
	assert.True(t, r.InZone(game.Orange, v(0, -5000, 1000)))

	assert.Zero(t, r.DistToZone(game.Blue, v(0, 5000, 1000)))
	assert.InDelta(t, 100, r.DistToZone(game.Blue, v(0, 4520, 1000)), 1e-9)
	assert.InDelta(t, math.Hypot(4620, game.GoalHeight-93), r.DistToZone(game.Blue, v(0, 0, 93)), 1e-9)

	c := r.ZoneCenter(game.Blue)
	assert.InDelta(t, 4870, c.Y, 1e-9)
	assert.True(t, r.InZone(game.Blue, c))
}

func TestGroundDoubleTapCloseness(t *testing.T) {
	r := NewGroundDoubleTapReward(nil)
	s := stateOf(ball(v(0, 4520, 1000), v(0, 0, 0)), game.Blue, false)
	r.Reset(s)

	assert.InDelta(t, 0.5, step(r, s), 1e-9)
	assert.Zero(t, r.Term("towardsZone"))
}

func TestGroundDoubleTapLiftingTouch(t *testing.T) {
	r := NewGroundDoubleTapReward(nil)
	pos := v(0, 0, 1022)
	vel := r.ZoneCenter(game.Blue).Sub(pos).Normalized().Scale(2000)
	s := stateOf(ball(pos, vel), game.Blue, true)
	r.Reset(s)

	closeness := 100 / (100 + r.DistToZone(game.Blue, pos))
	assert.InDelta(t, 2+closeness+30+1.5, step(r, s), 1e-9)
	assert.InDelta(t, 2, r.Term("towardsZone"), 1e-9)
	assert.Equal(t, "touched", r.Stage(1))
}

func TestGroundDoubleTapTouchAwayFromZone(t *testing.T) {
	r := NewGroundDoubleTapReward(nil)
	s := stateOf(ball(v(0, 0, 500), v(0, -2000, 0)), game.Blue, true)
	r.Reset(s)

	step(r, s)
	assert.Zero(t, r.Term("touch"))
	assert.Zero(t, r.Term("towardsZone"))
}

func TestGroundDoubleTapInsideZoneUsesBaseOnly(t *testing.T) {
	r := NewGroundDoubleTapReward(nil)
	r.Reset(stateOf(ball(v(0, 0, 93), v(0, 0, 0)), game.Blue, false))

	step(r, stateOf(ball(v(0, 0, 500), v(0, 2000, 1000)), game.Blue, true))
	r.ClearChanges()

	got := step(r, stateOf(ball(v(0, 4900, 1200), v(0, -1500, 0)), game.Blue, false))
	assert.Equal(t, 5.0, got)
	assert.Zero(t, r.Term("zoneCloseness"))
}

func TestGroundDoubleTapFactory(t *testing.T) {
	reg := rewards.NewRegistry()
	Register(reg)
	assert.Equal(t, []string{"DoubleTapReward", "GroundDoubleTapReward"}, reg.Names())

	lr, err := reg.New("GroundDoubleTapReward", map[string]any{
		"doubleTap":  map[string]any{"goalW": 10},
		"ballZoning": map[string]any{"distFromBackboard": 800},
	})
	require.NoError(t, err)

	args := lr.GetConfig().(*GroundDoubleTapArgs)
	assert.Equal(t, 10.0, args.DoubleTap.GoalW)
	assert.Equal(t, 20.0, args.DoubleTap.SecondTouchW)
	assert.Equal(t, 800.0, args.BallZoning.DistFromBackboard)
	assert.Equal(t, game.GoalHeight, args.BallZoning.MinHeight)

	_, err = reg.New("GroundDoubleTapReward", map[string]any{
		"ballZoning": map[string]any{"minHeight": 3000},
	})
	assert.ErrorIs(t, err, rewards.ErrInvalidConfig)
}
