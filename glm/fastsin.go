package glm

import (
	"math"

	"golang.org/x/mobile/exp/f32"
)

func fastSincos(r Rad) (float32, float32) {
	return fastSin(r), fastCos(r)
}

func fastSin(r Rad) float32 {
	return f32.Sin(float32(r))
}

func fastCos(r Rad) float32 {
	return f32.Cos(float32(r))
}

// Sincos returns sin and cos of the given angle.
func Sincos(r Rad) (sin, cos float32) {
	return fastSincos(r)
}

// Atan2 returns the angle of the vector (x, y).
func Atan2(y, x float32) Rad {
	return Rad(math.Atan2(float64(y), float64(x)))
}
