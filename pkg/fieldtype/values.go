package fieldtype

import (
	"math"
	"strconv"
	"strings"
)

// Vec3 is the decoded form of a Vector3 field.
type Vec3 [3]float32

// Vec3d is the decoded form of a Vector3d field.
type Vec3d [3]float64

// Vec4 is the decoded form of a Vector4 field.
type Vec4 [4]float32

// Quat is the decoded form of a Quaternion field. Only X, Y and Z travel on
// the wire; W is reconstructed on decode.
type Quat struct {
	X, Y, Z, W float32
}

// String renders the vector as "<x, y, z>".
func (v Vec3) String() string {
	return formatTuple(32, float64(v[0]), float64(v[1]), float64(v[2]))
}

// String renders the vector as "<x, y, z>".
func (v Vec3d) String() string {
	return formatTuple(64, v[0], v[1], v[2])
}

// String renders the vector as "<x, y, z, w>".
func (v Vec4) String() string {
	return formatTuple(32, float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3]))
}

// String renders the rotation as "<x, y, z, w>".
func (q Quat) String() string {
	return formatTuple(32, float64(q.X), float64(q.Y), float64(q.Z), float64(q.W))
}

// Normalize returns q scaled to unit length with a non-negative W.
// The zero quaternion normalizes to the identity rotation.
func (q Quat) Normalize() Quat {
	mag := math.Sqrt(float64(q.X)*float64(q.X) + float64(q.Y)*float64(q.Y) +
		float64(q.Z)*float64(q.Z) + float64(q.W)*float64(q.W))
	if mag == 0 {
		return Quat{W: 1}
	}
	n := Quat{
		X: float32(float64(q.X) / mag),
		Y: float32(float64(q.Y) / mag),
		Z: float32(float64(q.Z) / mag),
		W: float32(float64(q.W) / mag),
	}
	if n.W < 0 {
		n = Quat{X: -n.X, Y: -n.Y, Z: -n.Z, W: -n.W}
	}
	return n
}

// quatFromXYZ rebuilds the W component of a unit quaternion.
func quatFromXYZ(x, y, z float32) Quat {
	t := 1 - (float64(x)*float64(x) + float64(y)*float64(y) + float64(z)*float64(z))
	w := 0.0
	if t > 0 {
		w = math.Sqrt(t)
	}
	return Quat{X: x, Y: y, Z: z, W: float32(w)}
}

func formatTuple(bits int, parts ...float64) string {
	var b strings.Builder
	b.WriteByte('<')
	for i, p := range parts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatFloat(p, bits))
	}
	b.WriteByte('>')
	return b.String()
}

func formatFloat(f float64, bits int) string {
	return strconv.FormatFloat(f, 'g', -1, bits)
}
