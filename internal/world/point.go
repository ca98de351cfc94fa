package world

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Adjacent reports whether q is one orthogonal step from p.
func (p Point) Adjacent(q Point) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}

// Direction is an orthogonal step.
type Direction struct {
	DX, DY int
}

var (
	North = Direction{DX: 0, DY: -1}
	South = Direction{DX: 0, DY: 1}
	West  = Direction{DX: -1, DY: 0}
	East  = Direction{DX: 1, DY: 0}
)

// Directions holds the four orthogonal steps in a fixed order.
var Directions = [4]Direction{North, South, West, East}
