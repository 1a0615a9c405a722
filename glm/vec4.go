package glm

type Vec4[T numeric] [4]T

func (lhs Vec4[T]) Mul(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
		lhs[2] * rhs[2],
		lhs[3] * rhs[3],
	}
}

func (lhs Vec4[T]) XYZW() (x, y, z, w T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	w = lhs[3]
	return
}

// ToWGPU returns the components as a plain array, ready to be uploaded.
func (lhs Vec4[T]) ToWGPU() [4]T {
	return lhs
}
