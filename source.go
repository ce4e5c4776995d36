package burst

// SourceKind selects the spawn region of a burst.
type SourceKind uint8

const (
	SourcePoint  SourceKind = iota // every particle starts at Point
	SourceCircle                   // disc of Radius around Center
	SourceRect                     // axis-aligned box from Min to Max
)

// String returns the lower-case name used by preset files.
func (k SourceKind) String() string {
	switch k {
	case SourcePoint:
		return "point"
	case SourceCircle:
		return "circle"
	case SourceRect:
		return "rect"
	default:
		return "unknown"
	}
}

// Source describes where the particles of a burst are spawned. Only the
// fields belonging to Kind are meaningful.
type Source struct {
	Kind SourceKind

	// Point is the spawn position for SourcePoint.
	Point Vec2
	// Center and Radius describe SourceCircle.
	Center Vec2
	Radius float32
	// Min and Max are opposite corners for SourceRect.
	Min, Max Vec2
}

// PointSource returns a source that spawns every particle at (x, y).
func PointSource(x, y float32) Source {
	return Source{Kind: SourcePoint, Point: Vec2{x, y}}
}

// CircleSource returns a source that spawns particles inside a disc.
func CircleSource(center Vec2, radius float32) Source {
	return Source{Kind: SourceCircle, Center: center, Radius: radius}
}

// RectSource returns a source that spawns particles inside the box [min, max].
func RectSource(min, max Vec2) Source {
	return Source{Kind: SourceRect, Min: min, Max: max}
}

// Translate returns the source moved by d.
func (s Source) Translate(d Vec2) Source {
	switch s.Kind {
	case SourcePoint:
		s.Point = s.Point.Add(d)
	case SourceCircle:
		s.Center = s.Center.Add(d)
	case SourceRect:
		s.Min = s.Min.Add(d)
		s.Max = s.Max.Add(d)
	}
	return s
}

// ShapeKind selects how a particle is drawn.
type ShapeKind uint8

const (
	ShapeSquare ShapeKind = iota // filled square, side = particle size
	ShapeCircle                  // filled circle, diameter = particle size
	ShapeSprite                  // named sprite asset
)

// String returns the lower-case name used by preset files.
func (k ShapeKind) String() string {
	switch k {
	case ShapeSquare:
		return "square"
	case ShapeCircle:
		return "circle"
	case ShapeSprite:
		return "sprite"
	default:
		return "unknown"
	}
}

// Shape is the rendering form of a particle. Name is set only for ShapeSprite.
type Shape struct {
	Kind ShapeKind
	Name string
}

// SquareShape returns the square shape.
func SquareShape() Shape { return Shape{Kind: ShapeSquare} }

// CircleShape returns the circle shape.
func CircleShape() Shape { return Shape{Kind: ShapeCircle} }

// SpriteShape returns a shape that draws the named sprite.
func SpriteShape(name string) Shape { return Shape{Kind: ShapeSprite, Name: name} }
