package view

import "time"

// Highlight remembers the last selected cell for a short while after the tap.
type Highlight struct {
	duration time.Duration

	cell int
	at   time.Time
}

func NewHighlight(duration time.Duration) *Highlight {
	return &Highlight{
		duration: duration,
		cell:     NoCell,
	}
}

func (that *Highlight) Select(cell int, now time.Time) {
	that.cell = cell
	that.at = now
}

func (that *Highlight) Clear() {
	that.cell = NoCell
	that.at = time.Time{}
}

// Cell returns the highlighted cell at now, or NoCell once the highlight has expired.
func (that *Highlight) Cell(now time.Time) int {
	if !that.Active(now) {
		return NoCell
	}
	return that.cell
}

func (that *Highlight) Active(now time.Time) bool {
	if that.cell == NoCell {
		return false
	}
	return now.Before(that.ExpiresAt())
}

func (that *Highlight) ExpiresAt() time.Time {
	return that.at.Add(that.duration)
}

func (that *Highlight) Duration() time.Duration {
	return that.duration
}
