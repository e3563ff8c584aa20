package replay

import "errors"

var (
	ErrEmptyEpisode = errors.New("episode has no steps")
	ErrMalformed    = errors.New("malformed episode")
)
