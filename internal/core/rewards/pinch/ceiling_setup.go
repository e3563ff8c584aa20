package pinch

import (
	"errors"
	"math"

	"github.com/zeusync/rewardshaping/internal/core/game"
	"github.com/zeusync/rewardshaping/internal/core/observability/report"
	"github.com/zeusync/rewardshaping/internal/core/rewards"
	"github.com/zeusync/rewardshaping/pkg/encoding"
)

var _ rewards.LoggableReward = (*PinchCeilingSetupReward)(nil)

type BallGroundHandling struct {
	// AgentDistToBallThresh is the distance past which the car is too far to be behind the ball.
	AgentDistToBallThresh float64 `json:"agentDistToBallThresh" yaml:"agentDistToBallThresh"`
	BallDistReduction     float64 `json:"ballDistReduction" yaml:"ballDistReduction"`
	BallOffsetX           float64 `json:"ballOffsetX" yaml:"ballOffsetX"`
	BallOffsetY           float64 `json:"ballOffsetY" yaml:"ballOffsetY"`
	BehindTheBallReward   float64 `json:"behindTheBallReward" yaml:"behindTheBallReward"`
}

type AgentSimilarity struct {
	SimilarityBallAgentReward float64 `json:"similarityBallAgentReward" yaml:"similarityBallAgentReward"`
	// SimilarityBallAgentThresh is the minimum cosine between car and ball velocities.
	SimilarityBallAgentThresh float64 `json:"similarityBallAgentThresh" yaml:"similarityBallAgentThresh"`
	SpeedMatchW               float64 `json:"speedMatchW" yaml:"speedMatchW"`
}

type CeilingHandling struct {
	// DistToCeilThresh is how far below the ceiling the ball may be, about one ball.
	DistToCeilThresh float64 `json:"distToCeilThresh" yaml:"distToCeilThresh"`
	OnCeilingReward  float64 `json:"onCeilingReward" yaml:"onCeilingReward"`
	// BanZoneHeight is the ball height from which being grounded is banned.
	BanZoneHeight    float64 `json:"banZoneHeight" yaml:"banZoneHeight"`
	GroundedBan      float64 `json:"groundedBan" yaml:"groundedBan"`
	UngroundedReward float64 `json:"ungroundedReward" yaml:"ungroundedReward"`
}

type GroundHandling struct {
	AgentSimilarity    AgentSimilarity    `json:"agentSimilarity" yaml:"agentSimilarity"`
	BallGroundHandling BallGroundHandling `json:"ballGroundHandling" yaml:"ballGroundHandling"`

	// DistWallThresh is the ball to side wall distance under which the ball is on the wall.
	DistWallThresh float64 `json:"distWallThresh" yaml:"distWallThresh"`
	// GroundThresh is the ball height above which it left the ground.
	GroundThresh               float64 `json:"groundThresh" yaml:"groundThresh"`
	TouchReward                float64 `json:"touchReward" yaml:"touchReward"`
	WallAgentAndBallThreshold  float64 `json:"wallAgentAndBallThreshold" yaml:"wallAgentAndBallThreshold"`
	WallAgentAndBallPunishment float64 `json:"wallAgentAndBallPunishment" yaml:"wallAgentAndBallPunishment"`
}

type CeilingWallHandling struct {
	BallDistReduction  float64 `json:"ballDistReduction" yaml:"ballDistReduction"`
	BallHeightW        float64 `json:"ballHeightW" yaml:"ballHeightW"`
	UnderTheBallReward float64 `json:"underTheBallReward" yaml:"underTheBallReward"`
	UnderBallOffsetY   float64 `json:"underBallOffsetY" yaml:"underBallOffsetY"`
}

type PinchCeilingSetupArgs struct {
	GroundHandling    GroundHandling      `json:"groundHandling" yaml:"groundHandling"`
	WallHandling      CeilingWallHandling `json:"wallHandling" yaml:"wallHandling"`
	CeilingHandling   CeilingHandling     `json:"ceilingHandling" yaml:"ceilingHandling"`
	PinchRewardConfig PinchArgs           `json:"pinchRewardConfig" yaml:"pinchRewardConfig"`
}

func DefaultPinchCeilingSetupArgs() *PinchCeilingSetupArgs {
	return &PinchCeilingSetupArgs{
		GroundHandling: GroundHandling{
			AgentSimilarity: AgentSimilarity{
				SimilarityBallAgentReward: 0.1,
				SimilarityBallAgentThresh: 0.8,
				SpeedMatchW:               1,
			},
			BallGroundHandling: BallGroundHandling{
				AgentDistToBallThresh: 550,
				BallDistReduction:     1000,
				BallOffsetX:           150,
				BallOffsetY:           150,
				BehindTheBallReward:   0.01,
			},
			DistWallThresh:             50 + game.BallRadius,
			GroundThresh:               200,
			TouchReward:                1,
			WallAgentAndBallThreshold:  0.5,
			WallAgentAndBallPunishment: -2,
		},
		WallHandling: CeilingWallHandling{
			BallDistReduction:  500,
			BallHeightW:        15,
			UnderTheBallReward: 10,
			UnderBallOffsetY:   100,
		},
		CeilingHandling: CeilingHandling{
			DistToCeilThresh: game.BallRadius + 20,
			OnCeilingReward:  0.01,
			BanZoneHeight:    1500,
			GroundedBan:      -1,
			UngroundedReward: 1,
		},
		PinchRewardConfig: *DefaultPinchArgs(),
	}
}

func (a *PinchCeilingSetupArgs) Validate() error {
	g := a.GroundHandling
	return errors.Join(
		rewards.Similarity("groundHandling.agentSimilarity.similarityBallAgentThresh", g.AgentSimilarity.SimilarityBallAgentThresh),
		rewards.Positive("groundHandling.ballGroundHandling.ballDistReduction", g.BallGroundHandling.BallDistReduction),
		rewards.NonNegative("groundHandling.ballGroundHandling.ballOffsetX", g.BallGroundHandling.BallOffsetX),
		rewards.NonNegative("groundHandling.ballGroundHandling.ballOffsetY", g.BallGroundHandling.BallOffsetY),
		rewards.NonNegative("groundHandling.distWallThresh", g.DistWallThresh),
		rewards.Similarity("groundHandling.wallAgentAndBallThreshold", g.WallAgentAndBallThreshold),
		rewards.Ordered("groundHandling.groundThresh", g.GroundThresh,
			"ceilingHandling.banZoneHeight", a.CeilingHandling.BanZoneHeight),
		rewards.Positive("wallHandling.ballDistReduction", a.WallHandling.BallDistReduction),
		rewards.NonNegative("wallHandling.underBallOffsetY", a.WallHandling.UnderBallOffsetY),
		rewards.NonNegative("ceilingHandling.distToCeilThresh", a.CeilingHandling.DistToCeilThresh),
		a.PinchRewardConfig.Validate(),
	)
}

func (a *PinchCeilingSetupArgs) Serialize() ([]byte, error) { return encoding.ToJSON(a) }

func (a *PinchCeilingSetupArgs) Deserialize(data []byte) error { return encoding.FromJSON(data, a) }

// Zone is the phase of a ceiling pinch, derived from where the ball is.
type Zone uint8

const (
	ZoneNone Zone = iota
	ZoneGround
	ZoneWall
	ZoneCeiling
)

func (z Zone) String() string {
	switch z {
	case ZoneGround:
		return "ground"
	case ZoneWall:
		return "wall"
	case ZoneCeiling:
		return "ceiling"
	default:
		return "none"
	}
}

// PinchCeilingSetupReward walks the ball from the ground, up the side wall
// and into the ceiling, where the car pinches it.
type PinchCeilingSetupReward struct {
	rewards.Loggable
	config *PinchCeilingSetupArgs
	pinch  *PinchReward
}

// NewPinchCeilingSetupReward uses the defaults when args is nil.
func NewPinchCeilingSetupReward(args *PinchCeilingSetupArgs) *PinchCeilingSetupReward {
	if args == nil {
		args = DefaultPinchCeilingSetupArgs()
	}
	return &PinchCeilingSetupReward{config: args, pinch: NewPinchReward(&args.PinchRewardConfig)}
}

func (r *PinchCeilingSetupReward) Reset(initial *game.State) {
	r.pinch.Reset(initial)
}

// ZoneOf classifies the ball position.
func (r *PinchCeilingSetupReward) ZoneOf(ball game.Vec) Zone {
	g := r.config.GroundHandling
	onWall := game.SideWallX-math.Abs(ball.X) <= g.DistWallThresh
	switch {
	case ball.Z >= r.config.CeilingHandling.BanZoneHeight:
		return ZoneCeiling
	case onWall && ball.Z > g.GroundThresh:
		return ZoneWall
	case ball.Z <= g.GroundThresh:
		return ZoneGround
	default:
		return ZoneNone
	}
}

func (r *PinchCeilingSetupReward) GetReward(player *game.Player, state *game.State, prevAction game.Action) float64 {
	r.Begin()
	pinch := r.pinch.GetReward(player, state, prevAction)

	switch r.ZoneOf(state.Ball.Pos) {
	case ZoneCeiling:
		r.ceiling(player, state, pinch)
	case ZoneWall:
		r.wall(player, state)
	case ZoneGround:
		r.ground(player, state)
	}

	return r.End()
}

func (r *PinchCeilingSetupReward) ceiling(player *game.Player, state *game.State, pinch float64) {
	c := r.config.CeilingHandling
	if player.OnGround {
		r.Track("groundedBan", c.GroundedBan)
	} else {
		r.Track("ungrounded", c.UngroundedReward)
	}
	if game.CeilingZ-state.Ball.Pos.Z <= c.DistToCeilThresh {
		r.Track("onCeiling", c.OnCeilingReward)
	}
	r.Track("pinch", pinch)
}

func (r *PinchCeilingSetupReward) wall(player *game.Player, state *game.State) {
	w := r.config.WallHandling
	ball := state.Ball.Pos
	car := player.Phys.Pos

	r.Track("ballDist", -car.Dist(ball)/w.BallDistReduction)
	r.Track("ballHeight", w.BallHeightW*ball.Z/game.CeilingZ)
	if car.Z < ball.Z && math.Abs(car.Y-ball.Y) <= w.UnderBallOffsetY {
		r.Track("underBall", w.UnderTheBallReward)
	}
}

func (r *PinchCeilingSetupReward) ground(player *game.Player, state *game.State) {
	g := r.config.GroundHandling
	ball := state.Ball
	car := player.Phys
	dist := car.Pos.Dist(ball.Pos)

	as := g.AgentSimilarity
	if car.Vel.Cos(ball.Vel) >= as.SimilarityBallAgentThresh {
		r.Track("ballAgentSimilarity", as.SimilarityBallAgentReward)
	}
	r.Track("speedMatch", as.SpeedMatchW*speedMatch(car.Speed(), ball.Speed()))

	wallDir := nearestSideWall(ball.Pos)
	bg := g.BallGroundHandling
	if dist <= bg.AgentDistToBallThresh && behindBall(car.Pos, ball.Pos, wallDir, bg.BallOffsetX, bg.BallOffsetY) {
		r.Track("behindBall", bg.BehindTheBallReward)
	}
	r.Track("ballDist", -dist/bg.BallDistReduction)

	if player.BallTouched {
		r.Track("touch", g.TouchReward)
	}

	ballOff := !ball.Vel.IsZero() && flat(ball.Vel).Cos(wallDir) < g.WallAgentAndBallThreshold
	carOff := !car.Vel.IsZero() && flat(car.Vel).Cos(wallDir) < g.WallAgentAndBallThreshold
	if ballOff || carOff {
		r.Track("wallDirection", g.WallAgentAndBallPunishment)
	}
}

func (r *PinchCeilingSetupReward) ClearChanges() {
	r.Loggable.ClearChanges()
	r.pinch.ClearChanges()
}

// Log writes this reward's terms under name and the nested pinch breakdown
// under name/pinchReward. The nested key covers every call, counted or not;
// name/pinch holds only what was counted.
func (r *PinchCeilingSetupReward) Log(rep *report.Report, name string, weight float64) {
	r.Loggable.Log(rep, name, weight)
	r.pinch.Log(rep, rewards.Key(name, "pinchReward"), weight)
}

func (r *PinchCeilingSetupReward) GetConfig() rewards.Config { return r.config }
