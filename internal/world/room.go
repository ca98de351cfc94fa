package world

// Room represents a rectangular room carved into the grid.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Corridor is a full-span row (Horizontal) or column of floor.
type Corridor struct {
	Horizontal bool
	Offset     int // y for horizontal corridors, x for vertical ones
}
