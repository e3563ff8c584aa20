package injector

import (
	"github.com/zeusync/rewardshaping/internal/core/observability/log"
	"github.com/zeusync/rewardshaping/internal/core/rewards"
)

// Toolkit is what the command line needs to build and evaluate rewards.
type Toolkit struct {
	Log      *log.Logger
	Registry rewards.Registry
}

func NewToolkit(logger *log.Logger, registry rewards.Registry) *Toolkit {
	return &Toolkit{Log: logger, Registry: registry}
}
