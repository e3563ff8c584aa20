package pinch

import (
	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/systems/physics"
)

var v = physics.V

func obj(pos, vel game.Vec) game.PhysObj {
	return game.PhysObj{Pos: pos, Vel: vel}
}

func car(id int, team game.Team, pos, vel game.Vec) game.Player {
	return game.Player{CarID: id, Team: team, Phys: obj(pos, vel), HasFlip: true, HasJump: true}
}

func stateOf(ball game.PhysObj, players ...game.Player) *game.State {
	return &game.State{Ball: ball, Players: players}
}
