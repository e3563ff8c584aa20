package doubletap

import (
	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/systems/physics"
)

var v = physics.V

func ball(pos, vel game.Vec) game.PhysObj {
	return game.PhysObj{Pos: pos, Vel: vel}
}

func stateOf(b game.PhysObj, team game.Team, touched bool) *game.State {
	p := game.Player{CarID: 1, Team: team, BallTouched: touched, HasFlip: true, HasJump: true}
	return &game.State{Ball: b, Players: []game.Player{p}}
}

type rewardFunc interface {
	GetReward(*game.Player, *game.State, game.Action) float64
}

func step(r rewardFunc, s *game.State) float64 {
	return r.GetReward(&s.Players[0], s, game.Action{})
}
