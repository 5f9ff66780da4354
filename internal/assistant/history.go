package assistant

import "travel-assistant/internal/model"

// History is an append-only turn log that never holds more than limit turns.
type History struct {
	turns []model.Turn
	limit int
}

// NewHistory creates a History holding at most limit turns.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 2 * DefaultMaxHistory
	}
	return &History{turns: make([]model.Turn, 0, limit), limit: limit}
}

// Append adds t and drops the oldest turns beyond the limit.
func (h *History) Append(t model.Turn) {
	if len(h.turns) < h.limit {
		h.turns = append(h.turns, t)
		return
	}
	copy(h.turns, h.turns[1:])
	h.turns[len(h.turns)-1] = t
}

// Turns returns a copy of the stored turns, oldest first.
func (h *History) Turns() []model.Turn {
	out := make([]model.Turn, len(h.turns))
	copy(out, h.turns)
	return out
}

// Len returns the number of stored turns.
func (h *History) Len() int {
	return len(h.turns)
}

// Clear removes every turn.
func (h *History) Clear() {
	h.turns = h.turns[:0]
}
