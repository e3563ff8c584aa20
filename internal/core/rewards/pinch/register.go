package pinch

import "github.com/zeusync/rewardshaping/internal/core/rewards"

// Register adds every pinch reward to r under its type name.
func Register(r rewards.Registry) {
	r.Register("PinchReward", rewards.FactoryOf(DefaultPinchArgs,
		func(a *PinchArgs) rewards.LoggableReward { return NewPinchReward(a) }))
	r.Register("PinchWallSetupReward", rewards.FactoryOf(DefaultPinchWallSetupArgs,
		func(a *PinchWallSetupArgs) rewards.LoggableReward { return NewPinchWallSetupReward(a) }))
	r.Register("PinchCeilingSetupReward", rewards.FactoryOf(DefaultPinchCeilingSetupArgs,
		func(a *PinchCeilingSetupArgs) rewards.LoggableReward { return NewPinchCeilingSetupReward(a) }))
	r.Register("PinchGroundSetupReward", rewards.FactoryOf(DefaultPinchGroundSetupArgs,
		func(a *PinchGroundSetupArgs) rewards.LoggableReward { return NewPinchGroundSetupReward(a) }))
	r.Register("PinchTeamSetupReward", rewards.FactoryOf(DefaultPinchTeamSetupArgs,
		func(a *PinchTeamSetupArgs) rewards.LoggableReward { return NewPinchTeamSetupReward(a) }))
}
