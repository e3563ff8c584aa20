package pinch

import (
	"math"

	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/systems/physics"
)

func flat(v game.Vec) game.Vec { return physics.V(v.X, v.Y, 0) }

// speedMatch is 1 when both speeds are equal and falls to 0 once they differ
// by a full car max speed.
func speedMatch(carSpeed, ballSpeed float64) float64 {
	return math.Max(0, 1-math.Abs(carSpeed-ballSpeed)/game.CarMaxSpeed)
}

// behindBall reports whether car trails ball along the planar unit direction
// travel, staying within offX and offY of the ball's travel line.
func behindBall(car, ball, travel game.Vec, offX, offY float64) bool {
	rel := flat(ball.Sub(car))
	along := rel.Dot(travel)
	if along <= 0 {
		return false
	}
	perp := rel.Sub(travel.Scale(along))
	return math.Abs(perp.X) <= offX && math.Abs(perp.Y) <= offY
}

// nearestSideWall is the unit x direction of the side wall closest to pos.
func nearestSideWall(pos game.Vec) game.Vec {
	return physics.V(physics.Sign(pos.X), 0, 0)
}
