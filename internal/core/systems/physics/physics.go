package physics

import "math"

// Vec3 is a position, velocity or direction in arena units (uu, uu/s).
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// V is shorthand for building a Vec3.
func V(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Normalized returns the unit vector. The zero vector stays zero.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Dist is the euclidean distance between two points.
func (v Vec3) Dist(o Vec3) float64 { return v.Sub(o).Length() }

// Dist2D ignores height.
func (v Vec3) Dist2D(o Vec3) float64 { return Distance2(v.X, v.Y, o.X, o.Y) }

// Cos is the cosine similarity of two vectors, 0 when either is zero.
func (v Vec3) Cos(o Vec3) float64 {
	lv, lo := v.Length(), o.Length()
	if lv == 0 || lo == 0 {
		return 0
	}
	c := v.Dot(o) / (lv * lo)
	// rounding can push parallel vectors slightly past 1
	return math.Max(-1, math.Min(1, c))
}

// Distance2 computes Euclidean distance between two 2D points.
func Distance2(x1, y1, x2, y2 float64) float64 { return math.Hypot(x2-x1, y2-y1) }

// Sign returns -1 for negative values and 1 otherwise.
func Sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

