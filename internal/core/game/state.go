package game

import "github.com/zeusync/rewardshaping/internal/core/systems/physics"

type Vec = physics.Vec3

type Team uint8

const (
	Blue Team = iota
	Orange
)

func (t Team) String() string {
	if t == Orange {
		return "orange"
	}
	return "blue"
}

// Dir is the y direction the team attacks: blue scores in +y.
func (t Team) Dir() float64 {
	if t == Orange {
		return -1
	}
	return 1
}

// PhysObj is the kinematic state of the ball or a car.
type PhysObj struct {
	Pos    Vec `json:"pos"`
	Vel    Vec `json:"vel"`
	AngVel Vec `json:"ang_vel"`
}

func (p PhysObj) Speed() float64 { return p.Vel.Length() }

// Player is one car as seen during a single step.
type Player struct {
	CarID       int     `json:"car_id"`
	Team        Team    `json:"team"`
	Phys        PhysObj `json:"phys"`
	OnGround    bool    `json:"on_ground"`
	HasFlip     bool    `json:"has_flip"`
	HasJump     bool    `json:"has_jump"`
	BallTouched bool    `json:"ball_touched"`
	Boost       float64 `json:"boost"`
	IsDemoed    bool    `json:"is_demoed"`
}

// State is the full game state passed to rewards each step.
type State struct {
	Ball           PhysObj  `json:"ball"`
	Players        []Player `json:"players"`
	LastTouchCarID int      `json:"last_touch_car_id"`
	BlueScore      int      `json:"blue_score"`
	OrangeScore    int      `json:"orange_score"`
}

// Teammates returns the other cars on the player's team.
func (s *State) Teammates(p *Player) []*Player {
	var mates []*Player
	for i := range s.Players {
		o := &s.Players[i]
		if o.Team == p.Team && o.CarID != p.CarID {
			mates = append(mates, o)
		}
	}
	return mates
}

// Action is the controller input applied by a car during the previous step.
type Action struct {
	Throttle  float64 `json:"throttle"`
	Steer     float64 `json:"steer"`
	Pitch     float64 `json:"pitch"`
	Yaw       float64 `json:"yaw"`
	Roll      float64 `json:"roll"`
	Jump      float64 `json:"jump"`
	Boost     float64 `json:"boost"`
	Handbrake float64 `json:"handbrake"`
}

// OpponentGoal is the center of the goal the team attacks.
func OpponentGoal(t Team) Vec {
	return physics.V(0, t.Dir()*BackWallY, GoalHeight/2)
}

// OpponentBackWallY is the signed y of the back wall behind the opponent goal.
func OpponentBackWallY(t Team) float64 {
	return t.Dir() * BackWallY
}

// IsGoal reports whether the ball crossed into the net team t attacks.
func IsGoal(t Team, ball PhysObj) bool {
	return ball.Pos.Y*t.Dir() > GoalThreshold
}
