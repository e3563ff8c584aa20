package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorOps(t *testing.T) {
	a := V(1, 2, 3)
	b := V(4, -2, 0.5)

	assert.Equal(t, V(5, 0, 3.5), a.Add(b))
	assert.Equal(t, V(-3, 4, 2.5), a.Sub(b))
	assert.Equal(t, V(2, 4, 6), a.Scale(2))
	assert.InDelta(t, 1.5, a.Dot(b), 1e-9)
	assert.InDelta(t, math.Sqrt(14), a.Length(), 1e-9)
}

func TestNormalized(t *testing.T) {
	assert.InDelta(t, 1.0, V(3, 4, 12).Normalized().Length(), 1e-9)
	assert.Equal(t, Vec3{}, Vec3{}.Normalized())
}

func TestCos(t *testing.T) {
	assert.InDelta(t, 1.0, V(1, 0, 0).Cos(V(500, 0, 0)), 1e-9)
	assert.InDelta(t, -1.0, V(0, 2, 0).Cos(V(0, -7, 0)), 1e-9)
	assert.InDelta(t, 0.0, V(1, 0, 0).Cos(V(0, 0, 3)), 1e-9)
	assert.Equal(t, 0.0, V(1, 0, 0).Cos(Vec3{}))
}

func TestDistances(t *testing.T) {
	a := V(0, 0, 100)
	b := V(3, 4, 0)
	assert.InDelta(t, 5.0, a.Dist2D(b), 1e-9)
	assert.InDelta(t, math.Sqrt(25+10000), a.Dist(b), 1e-9)
	assert.InDelta(t, 5.0, Distance2(0, 0, 3, 4), 1e-9)
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1.0, Sign(-0.1))
	assert.Equal(t, 1.0, Sign(0))
}
