package glm

// Vec2 holds sizes and positions in screen space.
type Vec2[T Numeric] [2]T
