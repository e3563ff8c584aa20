package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Thresh float64 `json:"thresh"`
}

type sample struct {
	Weight float64 `json:"weight"`
	Inner  inner   `json:"inner"`
}

func TestOverlayKeepsDefaults(t *testing.T) {
	s := sample{Weight: 1, Inner: inner{Thresh: 0.8}}
	err := Overlay(map[string]any{"inner": map[string]any{"thresh": 0.5}}, &s)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Weight)
	assert.Equal(t, 0.5, s.Inner.Thresh)
}

func TestOverlayRejectsUnknownKeys(t *testing.T) {
	s := sample{}
	err := Overlay(map[string]any{"wieght": 2}, &s)
	assert.Error(t, err)
}

func TestOverlayEmptyIsNoop(t *testing.T) {
	s := sample{Weight: 3}
	require.NoError(t, Overlay(nil, &s))
	assert.Equal(t, 3.0, s.Weight)
}

func TestToMap(t *testing.T) {
	s := sample{Weight: 2, Inner: inner{Thresh: 0.1}}
	m, err := ToMap(s)
	require.NoError(t, err)
	assert.Equal(t, 2.0, m["weight"])
}
