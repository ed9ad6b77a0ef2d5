package sim

// LandsOn reports whether b overlaps p horizontally and its feet are inside
// the band (p.Y, p.Y+band]. Only landings on top are detected; a body falling
// more than band units per frame can pass through.
func LandsOn(b *Body, p Platform, band float64) bool {
	bottom := b.Bottom()
	return b.Pos.X+b.Width > p.X &&
		b.Pos.X < p.Right() &&
		bottom > p.Y &&
		bottom <= p.Y+band
}
