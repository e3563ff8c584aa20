package doubletap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/observability/report"
	"github.com/zeusync/rewardshaping/internal/core/rewards"
)

func TestDoubleTapSequence(t *testing.T) {
	r := NewDoubleTapReward(nil)
	r.Reset(stateOf(ball(v(0, 0, 93), v(0, 0, 0)), game.Blue, false))

	assert.Zero(t, step(r, stateOf(ball(v(0, 0, 500), v(0, 2000, 1000)), game.Blue, true)))
	assert.Equal(t, "touched", r.Stage(1))

	assert.Equal(t, 5.0, step(r, stateOf(ball(v(0, 4900, 1200), v(0, -1500, 0)), game.Blue, false)))
	assert.Equal(t, "bounced", r.Stage(1))

	assert.Equal(t, 20.0, step(r, stateOf(ball(v(0, 4500, 900), v(0, 3000, 0)), game.Blue, true)))
	assert.Equal(t, "double_tap", r.Stage(1))

	assert.Equal(t, 50.0, step(r, stateOf(ball(v(0, 5300, 400), v(0, 3000, 0)), game.Blue, false)))
	assert.Equal(t, "goal", r.Stage(1))

	assert.Zero(t, step(r, stateOf(ball(v(0, 5400, 400), v(0, 3000, 0)), game.Blue, true)))
	assert.Equal(t, 5, r.Calls())
	assert.Equal(t, 50.0, r.Term("goal"))
}

func TestDoubleTapNeedsFirstTouch(t *testing.T) {
	r := NewDoubleTapReward(nil)
	r.Reset(stateOf(ball(v(0, 4000, 1200), v(0, 2000, 0)), game.Blue, false))

	assert.Zero(t, step(r, stateOf(ball(v(0, 4900, 1200), v(0, -1500, 0)), game.Blue, false)))
	assert.Equal(t, "none", r.Stage(1))
}

func TestDoubleTapBounceBelowCrossbarIgnored(t *testing.T) {
	r := NewDoubleTapReward(nil)
	r.Reset(stateOf(ball(v(0, 0, 93), v(0, 0, 0)), game.Blue, false))

	step(r, stateOf(ball(v(0, 3000, 300), v(0, 2000, 0)), game.Blue, true))
	assert.Zero(t, step(r, stateOf(ball(v(0, 4950, 300), v(0, -1500, 0)), game.Blue, false)))
	assert.Equal(t, "touched", r.Stage(1))
}

func TestDoubleTapLandingResetsProgress(t *testing.T) {
	r := NewDoubleTapReward(nil)
	r.Reset(stateOf(ball(v(0, 0, 93), v(0, 0, 0)), game.Blue, false))

	step(r, stateOf(ball(v(0, 0, 500), v(0, 2000, 1000)), game.Blue, true))
	step(r, stateOf(ball(v(0, 4900, 1200), v(0, -1500, 0)), game.Blue, false))
	require.Equal(t, "bounced", r.Stage(1))

	step(r, stateOf(ball(v(0, 4000, 93), v(0, -500, 0)), game.Blue, false))
	assert.Equal(t, "none", r.Stage(1))

	assert.Zero(t, step(r, stateOf(ball(v(0, 4000, 300), v(0, 500, 0)), game.Blue, true)))
}

func TestDoubleTapRepeatedAttemptsPayOnce(t *testing.T) {
	r := NewDoubleTapReward(nil)
	r.Reset(stateOf(ball(v(0, 0, 93), v(0, 0, 0)), game.Blue, false))

	for n := 0; n < 3; n++ {
		step(r, stateOf(ball(v(0, 0, 500), v(0, 2000, 1000)), game.Blue, true))
		step(r, stateOf(ball(v(0, 4900, 1200), v(0, -1500, 0)), game.Blue, false))
		step(r, stateOf(ball(v(0, 4000, 93), v(0, -500, 0)), game.Blue, false))
		require.Equal(t, "none", r.Stage(1))
	}
	assert.Equal(t, 5.0, r.Term("backboardBounce"))

	// a later attempt still completes, paying only what is left
	step(r, stateOf(ball(v(0, 0, 500), v(0, 2000, 1000)), game.Blue, true))
	assert.Zero(t, step(r, stateOf(ball(v(0, 4900, 1200), v(0, -1500, 0)), game.Blue, false)))
	assert.Equal(t, 20.0, step(r, stateOf(ball(v(0, 4500, 900), v(0, 3000, 0)), game.Blue, true)))
	assert.Equal(t, "double_tap", r.Stage(1))
	assert.Equal(t, 5.0, r.Term("backboardBounce"))
}

func TestDoubleTapResetAllowsNewPayout(t *testing.T) {
	r := NewDoubleTapReward(nil)
	initial := stateOf(ball(v(0, 0, 93), v(0, 0, 0)), game.Blue, false)

	for n := 0; n < 2; n++ {
		r.Reset(initial)
		step(r, stateOf(ball(v(0, 0, 500), v(0, 2000, 1000)), game.Blue, true))
		assert.Equal(t, 5.0, step(r, stateOf(ball(v(0, 4900, 1200), v(0, -1500, 0)), game.Blue, false)))
	}
}

func TestDoubleTapOrange(t *testing.T) {
	r := NewDoubleTapReward(nil)
	r.Reset(stateOf(ball(v(0, 0, 93), v(0, 0, 0)), game.Orange, false))

	step(r, stateOf(ball(v(0, 0, 500), v(0, -2000, 1000)), game.Orange, true))
	assert.Equal(t, 5.0, step(r, stateOf(ball(v(0, -4900, 1200), v(0, 1500, 0)), game.Orange, false)))
	assert.Equal(t, 20.0, step(r, stateOf(ball(v(0, -4500, 900), v(0, -3000, 0)), game.Orange, true)))
	assert.Equal(t, 50.0, step(r, stateOf(ball(v(0, -5300, 400), v(0, -3000, 0)), game.Orange, false)))
}

func TestDoubleTapResetClearsProgress(t *testing.T) {
	r := NewDoubleTapReward(nil)
	initial := stateOf(ball(v(0, 0, 93), v(0, 0, 0)), game.Blue, false)
	r.Reset(initial)
	step(r, stateOf(ball(v(0, 0, 500), v(0, 2000, 1000)), game.Blue, true))

	r.Reset(initial)
	assert.Equal(t, "none", r.Stage(1))
}

func TestDoubleTapLog(t *testing.T) {
	r := NewDoubleTapReward(nil)
	r.Reset(stateOf(ball(v(0, 0, 93), v(0, 0, 0)), game.Blue, false))
	step(r, stateOf(ball(v(0, 0, 500), v(0, 2000, 1000)), game.Blue, true))
	step(r, stateOf(ball(v(0, 4900, 1200), v(0, -1500, 0)), game.Blue, false))

	rep := report.New()
	r.Log(rep, "dt", 2)

	got, ok := rep.Get("dt")
	require.True(t, ok)
	assert.InDelta(t, 5.0, got, 1e-9)
	got, _ = rep.Get("dt/backboardBounce")
	assert.InDelta(t, 5.0, got, 1e-9)

	r.ClearChanges()
	rep.Clear()
	r.Log(rep, "dt", 1)
	assert.Zero(t, rep.Len())
}

func TestDoubleTapArgsValidate(t *testing.T) {
	args := DefaultDoubleTapArgs()
	require.NoError(t, args.Validate())

	args.BackboardDist = -1
	assert.ErrorIs(t, args.Validate(), rewards.ErrInvalidConfig)
}
