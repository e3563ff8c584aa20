// Package builtin wires every reward shipped with the module into a registry.
package builtin

import (
	"github.com/zeusync/rewardshaping/internal/core/rewards"
	"github.com/zeusync/rewardshaping/internal/core/rewards/doubletap"
	"github.com/zeusync/rewardshaping/internal/core/rewards/pinch"
)

// Registry returns a registry holding the pinch and double tap rewards.
func Registry() rewards.Registry {
	r := rewards.NewRegistry()
	pinch.Register(r)
	doubletap.Register(r)
	return r
}
