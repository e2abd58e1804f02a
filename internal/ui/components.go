package ui

import "fmt"

// renderEpicycleCount shows the active count against the drawing's limit.
func renderEpicycleCount(active, limit int) string {
	if limit > 0 && active >= limit {
		return fmt.Sprintf("%d epicycles (max)", active)
	}
	return fmt.Sprintf("%d epicycles", active)
}

// renderGalleryPosition shows "[i/n]" for galleries of more than one drawing.
func renderGalleryPosition(index, total int) string {
	if total <= 1 {
		return ""
	}
	return fmt.Sprintf("[%d/%d]", index+1, total)
}
