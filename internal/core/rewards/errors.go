package rewards

import "errors"

var (
	ErrUnknownReward   = errors.New("unknown reward type")
	ErrInvalidConfig   = errors.New("invalid reward configuration")
	ErrDuplicateReward = errors.New("duplicate reward name")
)
