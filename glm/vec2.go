package glm

import "math"

type Vec2[T numeric] [2]T

// UnitVec2 returns the unit vector pointing in the direction of the given angle.
func UnitVec2(angle Rad) Vec2f {
	s, c := fastSincos(angle)
	return Vec2f{c, s}
}

func (lhs Vec2[T]) Dot(rhs Vec2[T]) T {
	return (lhs[0] * rhs[0]) + (lhs[1] * rhs[1])
}

// Cross returns the z component of the 3d cross product of both vectors.
func (lhs Vec2[T]) Cross(rhs Vec2[T]) T {
	return lhs[0]*rhs[1] - lhs[1]*rhs[0]
}

func (lhs Vec2[T]) Length() T {
	return T(math.Sqrt(float64(lhs.Dot(lhs))))
}

func (lhs Vec2[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

func (lhs Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{
		lhs[0] * s,
		lhs[1] * s,
	}
}

func (lhs Vec2[T]) Normalize() Vec2[T] {
	length := lhs.Length()
	if length == 0 {
		return Vec2[T]{}
	}

	return lhs.Scale(1 / length)
}

// Perp returns the vector rotated by 90 degrees counter clockwise.
func (lhs Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{-lhs[1], lhs[0]}
}

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
	}
}

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
	}
}

func (lhs Vec2[T]) Mul(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
	}
}

// Lerp interpolates linearly between lhs and rhs.
func (lhs Vec2[T]) Lerp(rhs Vec2[T], t T) Vec2[T] {
	return lhs.Add(rhs.Sub(lhs).Scale(t))
}

func (lhs Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], z}
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}

func (lhs Vec2[T]) ToVec2f() Vec2f {
	return Vec2f{float32(lhs[0]), float32(lhs[1])}
}
