package utils

// History remembers the hashes of the most recent generations so a driver
// can notice a still life or a short oscillator.
type History struct {
	window int
	hashes []string
}

// NewHistory keeps up to window hashes; window is at least 1.
func NewHistory(window int) *History {
	return &History{window: max(1, window)}
}

// Observe records hash and reports whether it was already among the
// remembered generations.
func (h *History) Observe(hash string) bool {
	repeated := false
	for _, seen := range h.hashes {
		if seen == hash {
			repeated = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.window {
		h.hashes = h.hashes[1:]
	}
	return repeated
}

// Reset forgets every remembered generation
func (h *History) Reset() {
	h.hashes = nil
}
