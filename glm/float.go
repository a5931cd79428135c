package glm

import "golang.org/x/exp/constraints"

type float interface {
	constraints.Float
}

// Numeric is the set of element types vectors and matrices can hold.
type Numeric interface {
	constraints.Float | constraints.Integer
}
