package systems

import (
	"fmt"

	cfg "github.com/automoto/farm-todo/config"
	"github.com/automoto/farm-todo/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawFarm renders the field behind the overlay and the open-key hint
func DrawFarm(e *ecs.ECS, screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Farm.GrassColor, false)

	step := cfg.Farm.PlotSize + cfg.Farm.PlotGap
	for y := cfg.Farm.PlotGap; y+cfg.Farm.PlotSize < cfg.Farm.HintY-cfg.Farm.PlotGap; y += step {
		for x := cfg.Farm.PlotGap; x+cfg.Farm.PlotSize <= width-cfg.Farm.PlotGap; x += step {
			vector.FillRect(
				screen,
				float32(x), float32(y),
				float32(cfg.Farm.PlotSize), float32(cfg.Farm.PlotSize),
				cfg.Farm.SoilColor,
				false,
			)
		}
	}

	if IsTodoOpen(e) {
		return
	}

	hint := fmt.Sprintf(cfg.Farm.HintFmt, cfg.OpenListKeyName())
	hintFont := fonts.Small.Get()
	hintX := (width - font.MeasureString(hintFont, hint).Round()) / 2
	text.Draw(screen, hint, hintFont, hintX, cfg.Farm.HintY, cfg.Farm.HintColor)
}
