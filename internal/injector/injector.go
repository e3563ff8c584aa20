//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/rewardshaping/internal/core/observability/log"
	"github.com/zeusync/rewardshaping/internal/core/rewards/builtin"
)

func InitializeToolkit(level log.Level) *Toolkit {
	wire.Build(log.New, builtin.Registry, NewToolkit)
	return nil
}
