package glm

import (
	"unsafe"
)

// Mat3 is a column major 3x3 matrix.
type Mat3[T Numeric] [9]T

// Mat3FromColumns builds a matrix from its three column vectors.
func Mat3FromColumns[T Numeric](c0, c1, c2 Vec3[T]) Mat3[T] {
	return Mat3[T]{
		c0[0], c0[1], c0[2],
		c1[0], c1[1], c1[2],
		c2[0], c2[1], c2[2],
	}
}

func (lhs Mat3[T]) Transform(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0]*rhs[0] + lhs[3]*rhs[1] + lhs[6]*rhs[2],
		lhs[1]*rhs[0] + lhs[4]*rhs[1] + lhs[7]*rhs[2],
		lhs[2]*rhs[0] + lhs[5]*rhs[1] + lhs[8]*rhs[2],
	}
}

// Determinant is the scalar triple product of the three columns.
func (lhs Mat3[T]) Determinant() T {
	c := lhs.Columns()
	return c[0].Dot(c[1].Cross(c[2]))
}

func (lhs Mat3[T]) Columns() [3]Vec3[T] {
	return *(*[3]Vec3[T])(unsafe.Pointer(&lhs))
}
