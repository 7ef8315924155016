package quaternion

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Quaternion is w + x·i + y·j + z·k stored as (w, x, y, z).
type Quaternion [4]float64

// Identity returns the identity rotation (1, 0, 0, 0).
func Identity() Quaternion { return Quaternion{1, 0, 0, 0} }

// W returns the scalar part.
func (q Quaternion) W() float64 { return q[0] }

// X returns the i component.
func (q Quaternion) X() float64 { return q[1] }

// Y returns the j component.
func (q Quaternion) Y() float64 { return q[2] }

// Z returns the k component.
func (q Quaternion) Z() float64 { return q[3] }

// Dot returns the 4-component inner product of q and p.
func (q Quaternion) Dot(p Quaternion) float64 {
	return vecmath.DotProduct(q[:], p[:])
}

// Norm returns the Euclidean norm of q.
func (q Quaternion) Norm() float64 { return math.Sqrt(q.Dot(q)) }

// Normalize returns q scaled to unit norm. The zero quaternion is returned
// unchanged.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	if n == 0 {
		return q
	}
	vecmath.ScaleBlockInPlace(q[:], 1/n)

	return q
}

// Neg returns −q, which encodes the same rotation as q.
func (q Quaternion) Neg() Quaternion { return Quaternion{-q[0], -q[1], -q[2], -q[3]} }

// Conj returns the conjugate (w, −x, −y, −z), the inverse of a unit quaternion.
func (q Quaternion) Conj() Quaternion { return Quaternion{q[0], -q[1], -q[2], -q[3]} }

// Mul returns the Hamilton product q·p (apply p first, then q).
func (q Quaternion) Mul(p Quaternion) Quaternion {
	w0, x0, y0, z0 := q[0], q[1], q[2], q[3]
	w1, x1, y1, z1 := p[0], p[1], p[2], p[3]

	return Quaternion{
		w0*w1 - x0*x1 - y0*y1 - z0*z1,
		w0*x1 + x0*w1 + y0*z1 - z0*y1,
		w0*y1 - x0*z1 + y0*w1 + z0*x1,
		w0*z1 + x0*y1 - y0*x1 + z0*w1,
	}
}

// Canonical returns q or −q, whichever has w ≥ 0. Negative zeros are
// replaced by +0, so w never carries a sign bit.
func (q Quaternion) Canonical() Quaternion {
	if q[0] < 0 {
		q = q.Neg()
	}
	for i := range q {
		q[i] += 0
	}

	return q
}

// ApproxEqual reports whether q and p agree within tol component-wise, up to
// the sign ambiguity q ≡ −q.
func ApproxEqual(q, p Quaternion, tol float64) bool {
	same, flipped := true, true
	for i := range q {
		if !(math.Abs(q[i]-p[i]) <= tol) {
			same = false
		}
		if !(math.Abs(q[i]+p[i]) <= tol) {
			flipped = false
		}
	}

	return same || flipped
}
