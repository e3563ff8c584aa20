package pinch

import (
	"errors"
	"math"

	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/observability/report"
	"github.com/zeusync/rewardshaping/internal/core/rewards"
	"github.com/zeusync/rewardshaping/internal/core/systems/physics"
	"github.com/zeusync/rewardshaping/pkg/encoding"
)

var _ rewards.LoggableReward = (*PinchWallSetupReward)(nil)

type WallHandling struct {
	// WallMinHeightToPinch is the minimum ball height for a touch to count as a wall pinch.
	WallMinHeightToPinch float64 `json:"wallMinHeightToPinch" yaml:"wallMinHeightToPinch"`
}

type SimilarityWallSetup struct {
	SimilarityBallAgentReward float64 `json:"similarityBallAgentReward" yaml:"similarityBallAgentReward"`
	SimilarityBallAgentThresh float64 `json:"similarityBallAgentThresh" yaml:"similarityBallAgentThresh"`
	// SimilarityBallWallThresh gates the whole setup on the ball heading into the corner.
	SimilarityBallWallThresh float64 `json:"similarityBallWallThresh" yaml:"similarityBallWallThresh"`
}

type BallWallSetupHandling struct {
	// BallDistReduction divides the distance punishment: lower punishes harder.
	BallDistReduction     float64 `json:"ballDistReduction" yaml:"ballDistReduction"`
	SpeedMatchW           float64 `json:"speedMatchW" yaml:"speedMatchW"`
	AgentDistToBallThresh float64 `json:"agentDistToBallThresh" yaml:"agentDistToBallThresh"`
	BallOffsetX           float64 `json:"ballOffsetX" yaml:"ballOffsetX"`
	BallOffsetY           float64 `json:"ballOffsetY" yaml:"ballOffsetY"`
	BehindTheBallReward   float64 `json:"behindTheBallReward" yaml:"behindTheBallReward"`
}

// GroundWallSetupHandling holds penalties subtracted inside the ground ban
// distance, GroundBanPunishment when grounded and GroundBanReward otherwise.
type GroundWallSetupHandling struct {
	GroundBanPunishment    float64 `json:"groundBanPunishment" yaml:"groundBanPunishment"`
	GroundBanReward        float64 `json:"groundBanReward" yaml:"groundBanReward"`
	CreepingDistanceReward float64 `json:"creepingDistanceReward" yaml:"creepingDistanceReward"`
}

type DistancesWallSetup struct {
	CreepingDistance  float64 `json:"creepingDistance" yaml:"creepingDistance"`
	GroundBanDistance float64 `json:"groundBanDistance" yaml:"groundBanDistance"`
	MaxDistToTrigger  float64 `json:"maxDistToTrigger" yaml:"maxDistToTrigger"`
}

type FlipHandlingWallSetup struct {
	HasFlipReward     float64 `json:"hasFlipReward" yaml:"hasFlipReward"`
	HasFlipPunishment float64 `json:"hasFlipPunishment" yaml:"hasFlipPunishment"`
	// MaxDistance from the ball surface to count as on the ball.
	MaxDistance               float64 `json:"maxDistance" yaml:"maxDistance"`
	HasFlipRewardWhenBall     float64 `json:"hasFlipRewardWhenBall" yaml:"hasFlipRewardWhenBall"`
	HasFlipPunishmentWhenBall float64 `json:"hasFlipPunishmentWhenBall" yaml:"hasFlipPunishmentWhenBall"`
}

type PinchWallSetupArgs struct {
	DistancesWallSetup      DistancesWallSetup      `json:"distancesWallSetup" yaml:"distancesWallSetup"`
	FlipHandlingWallSetup   FlipHandlingWallSetup   `json:"flipHandlingWallSetup" yaml:"flipHandlingWallSetup"`
	SimilarityWallSetup     SimilarityWallSetup     `json:"similarityWallSetup" yaml:"similarityWallSetup"`
	GroundWallSetupHandling GroundWallSetupHandling `json:"groundWallSetupHandling" yaml:"groundWallSetupHandling"`
	BallWallHandling        BallWallSetupHandling   `json:"ballWallHandling" yaml:"ballWallHandling"`
	WallHandling            WallHandling            `json:"wallHandling" yaml:"wallHandling"`

	PinchRewardConfig PinchArgs `json:"pinchRewardConfig" yaml:"pinchRewardConfig"`
}

func DefaultPinchWallSetupArgs() *PinchWallSetupArgs {
	return &PinchWallSetupArgs{
		DistancesWallSetup: DistancesWallSetup{
			CreepingDistance:  2000,
			GroundBanDistance: 1000,
			MaxDistToTrigger:  4000,
		},
		FlipHandlingWallSetup: FlipHandlingWallSetup{
			HasFlipReward:             1,
			HasFlipPunishment:         -1,
			MaxDistance:               100,
			HasFlipRewardWhenBall:     20,
			HasFlipPunishmentWhenBall: -20,
		},
		SimilarityWallSetup: SimilarityWallSetup{
			SimilarityBallAgentReward: 0.2,
			SimilarityBallAgentThresh: 0.8,
			SimilarityBallWallThresh:  0.8,
		},
		GroundWallSetupHandling: GroundWallSetupHandling{
			GroundBanPunishment:    0.1,
			GroundBanReward:        -0.1,
			CreepingDistanceReward: 0.01,
		},
		BallWallHandling: BallWallSetupHandling{
			BallDistReduction:     1000,
			SpeedMatchW:           1,
			AgentDistToBallThresh: 550,
			BallOffsetX:           150,
			BallOffsetY:           150,
			BehindTheBallReward:   0.01,
		},
		WallHandling: WallHandling{
			WallMinHeightToPinch: 150,
		},
		PinchRewardConfig: *DefaultPinchArgs(),
	}
}

func (a *PinchWallSetupArgs) Validate() error {
	d := a.DistancesWallSetup
	s := a.SimilarityWallSetup
	b := a.BallWallHandling
	return errors.Join(
		rewards.Ordered("distancesWallSetup.groundBanDistance", d.GroundBanDistance,
			"distancesWallSetup.creepingDistance", d.CreepingDistance),
		rewards.Ordered("distancesWallSetup.creepingDistance", d.CreepingDistance,
			"distancesWallSetup.maxDistToTrigger", d.MaxDistToTrigger),
		rewards.NonNegative("distancesWallSetup.groundBanDistance", d.GroundBanDistance),
		rewards.NonNegative("flipHandlingWallSetup.maxDistance", a.FlipHandlingWallSetup.MaxDistance),
		rewards.Similarity("similarityWallSetup.similarityBallAgentThresh", s.SimilarityBallAgentThresh),
		rewards.Similarity("similarityWallSetup.similarityBallWallThresh", s.SimilarityBallWallThresh),
		rewards.Positive("ballWallHandling.ballDistReduction", b.BallDistReduction),
		rewards.NonNegative("ballWallHandling.agentDistToBallThresh", b.AgentDistToBallThresh),
		rewards.NonNegative("ballWallHandling.ballOffsetX", b.BallOffsetX),
		rewards.NonNegative("ballWallHandling.ballOffsetY", b.BallOffsetY),
		a.PinchRewardConfig.Validate(),
	)
}

func (a *PinchWallSetupArgs) Serialize() ([]byte, error) { return encoding.ToJSON(a) }

func (a *PinchWallSetupArgs) Deserialize(data []byte) error { return encoding.FromJSON(data, a) }

// PinchWallSetupReward shapes the run-up of a corner pinch: the ball rolls
// along the side wall into the offensive corner while the car follows,
// leaves the ground and keeps its flip for the ball.
type PinchWallSetupReward struct {
	rewards.Loggable
	config *PinchWallSetupArgs
	pinch  *PinchReward
}

// NewPinchWallSetupReward uses the defaults when args is nil.
func NewPinchWallSetupReward(args *PinchWallSetupArgs) *PinchWallSetupReward {
	if args == nil {
		args = DefaultPinchWallSetupArgs()
	}
	return &PinchWallSetupReward{config: args, pinch: NewPinchReward(&args.PinchRewardConfig)}
}

func (r *PinchWallSetupReward) Reset(initial *game.State) {
	r.pinch.Reset(initial)
}

func (r *PinchWallSetupReward) GetReward(player *game.Player, state *game.State, prevAction game.Action) float64 {
	r.Begin()
	cfg := r.config
	ball := state.Ball
	car := player.Phys

	pinch := r.pinch.GetReward(player, state, prevAction)
	if ball.Pos.Z >= cfg.WallHandling.WallMinHeightToPinch {
		r.Track("pinch", pinch)
	}

	dist := car.Pos.Dist(ball.Pos)
	if dist > cfg.DistancesWallSetup.MaxDistToTrigger {
		return r.End()
	}

	xFwd := physics.Sign(ball.Pos.X)
	yFwd := player.Team.Dir()
	corner := r.GetCornerIntersection(xFwd, yFwd, ball.Pos.X)
	if flat(ball.Vel).Cos(flat(corner.Sub(ball.Pos))) < cfg.SimilarityWallSetup.SimilarityBallWallThresh {
		return r.End()
	}

	sim := cfg.SimilarityWallSetup
	if car.Vel.Cos(ball.Vel) >= sim.SimilarityBallAgentThresh {
		r.Track("ballAgentParallel", sim.SimilarityBallAgentReward)
	}

	bh := cfg.BallWallHandling
	if dist <= bh.AgentDistToBallThresh {
		r.Track("speedMatch", bh.SpeedMatchW*speedMatch(car.Speed(), ball.Speed()))
		if behindBall(car.Pos, ball.Pos, physics.V(0, yFwd, 0), bh.BallOffsetX, bh.BallOffsetY) {
			r.Track("behindBall", bh.BehindTheBallReward)
		}
	}
	r.Track("ballDist", -dist/bh.BallDistReduction)

	gh := cfg.GroundWallSetupHandling
	fh := cfg.FlipHandlingWallSetup
	dw := cfg.DistancesWallSetup
	if dist <= dw.GroundBanDistance {
		// both are penalties: a negative GroundBanReward pays the airborne car
		if player.OnGround {
			r.Track("groundBan", -gh.GroundBanPunishment)
		} else {
			r.Track("groundBan", -gh.GroundBanReward)
		}
	}
	if dist <= dw.CreepingDistance {
		r.Track("creeping", gh.CreepingDistanceReward)
		if player.HasFlip {
			r.Track("flip", fh.HasFlipReward)
		} else {
			r.Track("flip", fh.HasFlipPunishment)
		}
	}

	if dist-game.BallRadius <= fh.MaxDistance {
		// the flip should be spent into the ball
		if player.HasFlip {
			r.Track("flipOnBall", fh.HasFlipPunishmentWhenBall)
		} else {
			r.Track("flipOnBall", fh.HasFlipRewardWhenBall)
		}
	}

	return r.End()
}

func (r *PinchWallSetupReward) ClearChanges() {
	r.Loggable.ClearChanges()
	r.pinch.ClearChanges()
}

// Log writes this reward's terms under name and the nested pinch breakdown
// under name/pinchReward. The nested key covers every call, counted or not;
// name/pinch holds only what was counted.
func (r *PinchWallSetupReward) Log(rep *report.Report, name string, weight float64) {
	r.Loggable.Log(rep, name, weight)
	r.pinch.Log(rep, rewards.Key(name, "pinchReward"), weight)
}

func (r *PinchWallSetupReward) GetConfig() rewards.Config { return r.config }

// Corner returns the y of the corner chamfer at x for the corner selected by
// the orientations (each -1 or 1).
func (r *PinchWallSetupReward) Corner(x, xOrientation, yOrientation float64) float64 {
	return yOrientation * (game.CornerLine - xOrientation*x)
}

// GetCornerIntersection is where a ball travelling parallel to the side
// wall at xPos meets the corner picked by xFwd and yFwd. Balls too central
// to reach the chamfer stop at the back wall.
func (r *PinchWallSetupReward) GetCornerIntersection(xFwd, yFwd, xPos float64) game.Vec {
	x := xFwd * math.Min(math.Abs(xPos), game.SideWallX)
	y := r.Corner(x, xFwd, yFwd)
	if math.Abs(y) > game.BackWallY {
		y = yFwd * game.BackWallY
	}
	return physics.V(x, y, 0)
}
