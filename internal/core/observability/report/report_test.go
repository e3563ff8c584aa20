package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndAdd(t *testing.T) {
	r := New()
	r.Set("steps", 3)
	r.Add("steps", 2)
	r.Add("touches", 1)
	r.Add("touches", 1)

	v, ok := r.Get("steps")
	require.True(t, ok)
	assert.Equal(t, 5.0, v)

	v, _ = r.Get("touches")
	assert.Equal(t, 2.0, v)
	assert.EqualValues(t, 2, r.Count("touches"))

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestAddAvg(t *testing.T) {
	r := New()
	r.AddAvg("pinch", 1)
	r.AddAvg("pinch", 2)
	r.AddAvg("pinch", 6)

	v, _ := r.Get("pinch")
	assert.InDelta(t, 3.0, v, 1e-9)
	assert.EqualValues(t, 3, r.Count("pinch"))
}

func TestMergeWeightsAverages(t *testing.T) {
	a := New()
	a.AddAvg("reward", 1)
	a.Add("goals", 1)

	b := New()
	b.AddAvg("reward", 4)
	b.AddAvg("reward", 4)
	b.AddAvg("reward", 4)
	b.Add("goals", 2)
	b.AddAvg("only_b", 7)

	a.Merge(b)

	v, _ := a.Get("reward")
	assert.InDelta(t, 13.0/4.0, v, 1e-9)
	v, _ = a.Get("goals")
	assert.Equal(t, 3.0, v)
	v, _ = a.Get("only_b")
	assert.Equal(t, 7.0, v)

	a.Merge(nil)
	a.Merge(a)
	assert.Equal(t, 3, a.Len())
}

func TestKeysSortedAndClear(t *testing.T) {
	r := New()
	r.Set("b", 1)
	r.Set("a", 1)
	r.Set("c/x", 1)

	assert.Equal(t, []string{"a", "b", "c/x"}, r.Keys())
	assert.Len(t, r.Fields(), 3)
	assert.Equal(t, "a", r.Fields()[0].Key)

	r.Clear()
	assert.Zero(t, r.Len())
}

func TestFprint(t *testing.T) {
	r := New()
	r.Set("wall_setup", 0.5)
	r.Set("wall_setup/pinch", 0.25)

	var buf bytes.Buffer
	require.NoError(t, r.Fprint(&buf))
	out := buf.String()
	assert.Contains(t, out, "wall_setup        0.500000")
	assert.Contains(t, out, "wall_setup/pinch  0.250000")
}
