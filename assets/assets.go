package assets

import "embed"

var (
	// LayoutFS holds the Tiled maps describing menu geometry
	//go:embed all:layout
	LayoutFS embed.FS
)
