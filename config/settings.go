package config

// FontSizeConfig contains point sizes for the registered font faces
type FontSizeConfig struct {
	Regular float64 // task rows and the entry widget
	Large   float64 // task rows when UseLargerFont is set
	Title   float64
	Small   float64 // hints
}

// FontSizes is the global font size configuration
var FontSizes FontSizeConfig

func init() {
	FontSizes = FontSizeConfig{
		Regular: 16,
		Large:   22,
		Title:   20,
		Small:   12,
	}
}
