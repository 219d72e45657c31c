package config

import "image/color"

// TodoMenuConfig contains the to-do overlay configuration values
type TodoMenuConfig struct {
	PageSize   int
	LayoutPath string // path inside assets.LayoutFS

	// Fade-in of the backdrop when the menu opens, in seconds
	FadeSeconds float32

	OverlayColor      color.RGBA
	DialogColor       color.RGBA
	DialogBorderColor color.RGBA
	TitleColor        color.RGBA
	TitleBgColor      color.RGBA
	RowColor          color.RGBA
	RowHoverColor     color.RGBA
	RowBorderColor    color.RGBA
	TextColor         color.RGBA
	ShadowColor       color.RGBA
	NavColor          color.RGBA
	CloseColor        color.RGBA

	BorderWidth  float32
	ShadowOffset int
	TextPaddingX int

	// Entry row placement (ebitenui anchors it bottom-centre)
	EntryBottomPadding int
	EntryWidth         int
	EntryHeight        int
	ConfirmWidth       int
	EntryPlaceholder   string
	ConfirmLabel       string
}

// FarmConfig contains the host scene's look
type FarmConfig struct {
	GrassColor color.RGBA
	SoilColor  color.RGBA
	PlotSize   int
	PlotGap    int
	HintColor  color.RGBA
	HintY      int
	HintFmt    string // %s is replaced with the open key name
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	OpenOnStart bool // Open the to-do list as soon as the scene starts
}

// Global configuration instances
var C *Config
var TodoMenu TodoMenuConfig
var Farm FarmConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Wheat        = color.RGBA{R: 245, G: 222, B: 179, A: 255}
	Parchment    = color.RGBA{R: 252, G: 236, B: 196, A: 255}
	Brown        = color.RGBA{R: 133, G: 72, B: 36, A: 255}
	DarkBrown    = color.RGBA{R: 86, G: 22, B: 12, A: 255}
	ShadowBrown  = color.RGBA{R: 221, G: 148, B: 84, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	TodoMenu = TodoMenuConfig{
		PageSize:    5,
		LayoutPath:  "layout/todo.tmx",
		FadeSeconds: 0.2,

		OverlayColor:      BlackOverlay,
		DialogColor:       Parchment,
		DialogBorderColor: Brown,
		TitleColor:        DarkBrown,
		TitleBgColor:      Wheat,
		RowColor:          White,
		RowHoverColor:     Wheat, // matches the original hover tint
		RowBorderColor:    Brown,
		TextColor:         DarkBrown,
		ShadowColor:       ShadowBrown,
		NavColor:          Orange,
		CloseColor:        LightRed,

		BorderWidth:  4,
		ShadowOffset: 2,
		TextPaddingX: 14,

		EntryBottomPadding: 90,
		EntryWidth:         360,
		EntryHeight:        30,
		ConfirmWidth:       60,
		EntryPlaceholder:   "New task...",
		ConfirmLabel:       "OK",
	}

	Farm = FarmConfig{
		GrassColor: color.RGBA{R: 84, G: 150, B: 60, A: 255},
		SoilColor:  color.RGBA{R: 120, G: 80, B: 44, A: 255},
		PlotSize:   48,
		PlotGap:    16,
		HintColor:  White,
		HintY:      528,
		HintFmt:    "Press %s to open your To Do List",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		OpenOnStart: false,
	}
}
