package ui

// RepeatMode decides what happens when a revolution completes.
type RepeatMode int

const (
	// RepeatOne redraws the current drawing.
	RepeatOne RepeatMode = iota
	// RepeatTour moves on to the next drawing in the gallery.
	RepeatTour
)

// Next cycles to the next repeat mode.
func (r RepeatMode) Next() RepeatMode {
	switch r {
	case RepeatOne:
		return RepeatTour
	default:
		return RepeatOne
	}
}

// String returns the name of the repeat mode.
func (r RepeatMode) String() string {
	switch r {
	case RepeatTour:
		return "tour"
	default:
		return "one"
	}
}

// Icon returns a visual indicator for the repeat mode.
func (r RepeatMode) Icon() string {
	switch r {
	case RepeatTour:
		return "[tour]"
	default:
		return ""
	}
}
