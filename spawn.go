package burst

import "math"

// Position samples one spawn position inside src.
//
// Circle sources draw the angle first and then the distance, both uniformly,
// so particles cluster toward the center instead of filling the disc evenly.
// Rect sources draw x then y.
func (s *Sampler) Position(src Source) Vec2 {
	switch src.Kind {
	case SourcePoint:
		return src.Point
	case SourceCircle:
		angle := float64(s.Float(0, 2*math.Pi))
		dist := s.Float(0, src.Radius)
		return Vec2{
			X: src.Center.X + dist*float32(math.Cos(angle)),
			Y: src.Center.Y + dist*float32(math.Sin(angle)),
		}
	case SourceRect:
		x := s.Float(src.Min.X, src.Max.X)
		y := s.Float(src.Min.Y, src.Max.Y)
		return Vec2{x, y}
	default:
		return src.Point
	}
}
