package doubletap

import "github.com/zeusync/rewardshaping/internal/core/rewards"

// Register adds the double tap rewards to r under their type names.
func Register(r rewards.Registry) {
	r.Register("DoubleTapReward", rewards.FactoryOf(DefaultDoubleTapArgs,
		func(a *DoubleTapArgs) rewards.LoggableReward { return NewDoubleTapReward(a) }))
	r.Register("GroundDoubleTapReward", rewards.FactoryOf(DefaultGroundDoubleTapArgs,
		func(a *GroundDoubleTapArgs) rewards.LoggableReward { return NewGroundDoubleTapReward(a) }))
}
