package pinch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/observability/report"
	"github.com/zeusync/rewardshaping/internal/core/rewards"
)

func TestPinchRewardNoTouch(t *testing.T) {
	r := NewPinchReward(nil)
	s := stateOf(obj(v(0, 0, 93), v(0, 3000, 0)), car(1, game.Blue, v(0, -200, 17), v(0, 0, 0)))
	r.Reset(s)

	assert.Zero(t, r.GetReward(&s.Players[0], s, game.Action{}))
	assert.Zero(t, r.Term("touch"))
}

func TestPinchRewardAcceleratingTouchTowardsGoal(t *testing.T) {
	r := NewPinchReward(nil)
	initial := stateOf(obj(v(0, 0, 93), v(0, 0, 0)), car(1, game.Blue, v(0, -200, 17), v(0, 0, 0)))
	r.Reset(initial)

	s := stateOf(obj(v(0, 0, 93), v(0, 3000, 0)), car(1, game.Blue, v(0, -200, 17), v(0, 0, 0)))
	s.Players[0].BallTouched = true

	sim := s.Ball.Vel.Cos(game.OpponentGoal(game.Blue).Sub(s.Ball.Pos))
	got := r.GetReward(&s.Players[0], s, game.Action{})

	assert.InDelta(t, 1+0.5+3*sim*0.5, got, 1e-9)
	assert.InDelta(t, 0.5, r.Term("ballAccel"), 1e-9)
	assert.InDelta(t, 1.0, r.Term("touch"), 1e-9)
}

func TestPinchRewardSlowingTouchAwayFromGoal(t *testing.T) {
	r := NewPinchReward(nil)
	r.Reset(stateOf(obj(v(0, 0, 93), v(0, 3000, 0))))

	s := stateOf(obj(v(0, 0, 93), v(0, -1000, 0)), car(1, game.Blue, v(0, 200, 17), v(0, 0, 0)))
	s.Players[0].BallTouched = true

	assert.InDelta(t, 1.0, r.GetReward(&s.Players[0], s, game.Action{}), 1e-9)
}

func TestPinchRewardOrangeAttacksNegativeY(t *testing.T) {
	r := NewPinchReward(nil)
	r.Reset(stateOf(obj(v(0, 0, 93), v(0, 0, 0))))

	s := stateOf(obj(v(0, 0, 93), v(0, -6000, 0)), car(1, game.Orange, v(0, 200, 17), v(0, 0, 0)))
	s.Players[0].BallTouched = true

	got := r.GetReward(&s.Players[0], s, game.Action{})
	assert.Greater(t, r.Term("goalDirection"), 2.9)
	assert.Greater(t, got, 4.9)
}

func TestPinchRewardTracksSpeedPerCar(t *testing.T) {
	r := NewPinchReward(nil)
	r.Reset(stateOf(obj(v(0, 0, 93), v(0, 0, 0))))

	s := stateOf(obj(v(0, 0, 93), v(600, 0, 0)),
		car(1, game.Blue, v(-200, 0, 17), v(0, 0, 0)),
		car(2, game.Orange, v(200, 0, 17), v(0, 0, 0)),
	)
	s.Players[0].BallTouched = true
	s.Players[1].BallTouched = true

	a := r.GetReward(&s.Players[0], s, game.Action{})
	b := r.GetReward(&s.Players[1], s, game.Action{})
	assert.InDelta(t, 1.1, a, 1e-9)
	assert.InDelta(t, a, b, 1e-9, "second car must still see the gain from the initial speed")

	// same step again: no more gain for car 1
	assert.InDelta(t, 1.0, r.GetReward(&s.Players[0], s, game.Action{}), 1e-9)
}

func TestPinchRewardLogAndClear(t *testing.T) {
	r := NewPinchReward(nil)
	r.Reset(stateOf(obj(v(0, 0, 93), v(500, 0, 0))))

	s := stateOf(obj(v(0, 0, 93), v(500, 0, 0)), car(1, game.Blue, v(-200, 0, 17), v(0, 0, 0)))
	s.Players[0].BallTouched = true
	r.GetReward(&s.Players[0], s, game.Action{})
	s.Players[0].BallTouched = false
	r.GetReward(&s.Players[0], s, game.Action{})

	rep := report.New()
	r.Log(rep, "pinch", 2)

	total, ok := rep.Get("pinch")
	require.True(t, ok)
	assert.InDelta(t, 1.0, total, 1e-9)
	touch, _ := rep.Get(rewards.Key("pinch", "touch"))
	assert.InDelta(t, 1.0, touch, 1e-9)

	r.ClearChanges()
	r.Log(rep, "pinch", 2)
	assert.EqualValues(t, 1, rep.Count("pinch"))
}

func TestPinchArgsValidate(t *testing.T) {
	a := DefaultPinchArgs()
	require.NoError(t, a.Validate())

	a.BallHandling.GoalDirectionSimilarity = 1.5
	assert.ErrorIs(t, a.Validate(), rewards.ErrInvalidConfig)
}

func TestPinchArgsSerializeRoundTrip(t *testing.T) {
	a := DefaultPinchArgs()
	a.BallHandling.TouchW = 4

	data, err := a.Serialize()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"goalDirectionSimilarity": 0.8`)

	b := &PinchArgs{}
	require.NoError(t, b.Deserialize(data))
	assert.Equal(t, a, b)
}
