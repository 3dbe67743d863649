package domain

// FallbackColor is the neutral display color used when neither the list nor
// its category define one.
const FallbackColor = "#808080"

// Progress returns the completion percentage for the items, 0 when empty.
func Progress(items []Item) float64 {
	if len(items) == 0 {
		return 0
	}
	completed := 0
	for _, it := range items {
		if it.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(items)) * 100
}

// DisplayColor resolves the color to render a list with:
// explicit list color, then the category default, then FallbackColor.
// categoryColor is the default for the list's category ("" when the
// category defines none).
func DisplayColor(list List, categoryColor string) string {
	if list.Color != "" {
		return list.Color
	}
	if categoryColor != "" {
		return categoryColor
	}
	return FallbackColor
}
