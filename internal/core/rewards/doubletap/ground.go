package doubletap

import (
	"errors"
	"math"

	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/rewards"
	"github.com/zeusync/rewardshaping/internal/core/systems/physics"
	"github.com/zeusync/rewardshaping/pkg/encoding"
)

var _ rewards.LoggableReward = (*GroundDoubleTapReward)(nil)

type BallZoning struct {
	// DistFromBackboard is the depth of the backboard zone in front of the back wall.
	DistFromBackboard float64 `json:"distFromBackboard" yaml:"distFromBackboard"`
	// MinHeight is the lowest ball height inside the backboard zone.
	MinHeight float64 `json:"minHeight" yaml:"minHeight"`
}

type BallHandling struct {
	// BallTowardsZoneW weights the similarity between ball velocity and the way to the zone.
	BallTowardsZoneW    float64 `json:"ballTowardsZoneW" yaml:"ballTowardsZoneW"`
	DistToZoneReduction float64 `json:"distToZoneReduction" yaml:"distToZoneReduction"`
	TouchW              float64 `json:"touchW" yaml:"touchW"`
	BallHeightW         float64 `json:"ballHeightW" yaml:"ballHeightW"`
}

type GroundDoubleTapArgs struct {
	BallZoning   BallZoning    `json:"ballZoning" yaml:"ballZoning"`
	BallHandling BallHandling  `json:"ballHandling" yaml:"ballHandling"`
	DoubleTap    DoubleTapArgs `json:"doubleTap" yaml:"doubleTap"`
}

func DefaultGroundDoubleTapArgs() *GroundDoubleTapArgs {
	return &GroundDoubleTapArgs{
		BallZoning: BallZoning{
			DistFromBackboard: 500,
			MinHeight:         game.GoalHeight,
		},
		BallHandling: BallHandling{
			BallTowardsZoneW:    2,
			DistToZoneReduction: 100,
			TouchW:              30,
			BallHeightW:         3,
		},
		DoubleTap: *DefaultDoubleTapArgs(),
	}
}

func (a *GroundDoubleTapArgs) Validate() error {
	return errors.Join(
		rewards.Positive("ballZoning.distFromBackboard", a.BallZoning.DistFromBackboard),
		rewards.Ordered("ballZoning.minHeight", a.BallZoning.MinHeight, "ceiling", game.CeilingZ),
		rewards.Positive("ballHandling.distToZoneReduction", a.BallHandling.DistToZoneReduction),
		a.DoubleTap.Validate(),
	)
}

func (a *GroundDoubleTapArgs) Serialize() ([]byte, error) { return encoding.ToJSON(a) }

func (a *GroundDoubleTapArgs) Deserialize(data []byte) error { return encoding.FromJSON(data, a) }

// GroundDoubleTapReward guides a double tap started from the ground: the
// first touch has to lift the ball into the backboard zone, after which the
// double tap terms take over.
type GroundDoubleTapReward struct {
	*DoubleTapReward
	config *GroundDoubleTapArgs
}

// NewGroundDoubleTapReward uses the defaults when args is nil.
func NewGroundDoubleTapReward(args *GroundDoubleTapArgs) *GroundDoubleTapReward {
	if args == nil {
		args = DefaultGroundDoubleTapArgs()
	}
	return &GroundDoubleTapReward{
		DoubleTapReward: NewDoubleTapReward(&args.DoubleTap),
		config:          args,
	}
}

// InZone reports whether pos is inside the team's backboard zone.
func (r *GroundDoubleTapReward) InZone(team game.Team, pos game.Vec) bool {
	z := r.config.BallZoning
	front := game.OpponentBackWallY(team) - team.Dir()*z.DistFromBackboard
	return (pos.Y-front)*team.Dir() >= 0 && pos.Z >= z.MinHeight
}

// ZoneCenter is the middle of the team's backboard zone.
func (r *GroundDoubleTapReward) ZoneCenter(team game.Team) game.Vec {
	z := r.config.BallZoning
	y := game.OpponentBackWallY(team) - team.Dir()*z.DistFromBackboard/2
	return physics.V(0, y, (z.MinHeight+game.CeilingZ)/2)
}

// DistToZone is the distance from pos to the zone, 0 inside it.
func (r *GroundDoubleTapReward) DistToZone(team game.Team, pos game.Vec) float64 {
	z := r.config.BallZoning
	front := game.OpponentBackWallY(team) - team.Dir()*z.DistFromBackboard
	dy := math.Max(0, (front-pos.Y)*team.Dir())
	dz := math.Max(0, z.MinHeight-pos.Z)
	return math.Hypot(dy, dz)
}

func (r *GroundDoubleTapReward) GetReward(player *game.Player, state *game.State, _ game.Action) float64 {
	r.Begin()
	ball := state.Ball

	if !r.InZone(player.Team, ball.Pos) {
		h := r.config.BallHandling
		sim := ball.Vel.Cos(r.ZoneCenter(player.Team).Sub(ball.Pos))
		if sim > 0 {
			r.Track("towardsZone", h.BallTowardsZoneW*sim)
		}

		dist := r.DistToZone(player.Team, ball.Pos)
		r.Track("zoneCloseness", h.DistToZoneReduction/(h.DistToZoneReduction+dist))

		if player.BallTouched && sim > 0 {
			r.Track("touch", h.TouchW)
			r.Track("ballHeight", h.BallHeightW*ball.Pos.Z/game.CeilingZ)
		}
	}

	r.Score(player, state)
	return r.End()
}

func (r *GroundDoubleTapReward) GetConfig() rewards.Config { return r.config }
