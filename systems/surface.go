package systems

import (
	"image"
	"image/color"

	cfg "github.com/automoto/farm-todo/config"
	"github.com/automoto/farm-todo/fonts"
	"github.com/automoto/farm-todo/todo"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// screenSurface draws the to-do menu onto an ebiten image
type screenSurface struct {
	screen    *ebiten.Image
	titleFace font.Face
}

func newScreenSurface(screen *ebiten.Image, titleFace font.Face) *screenSurface {
	return &screenSurface{screen: screen, titleFace: titleFace}
}

func (s *screenSurface) DrawDialog(rect image.Rectangle) {
	s.box(rect, cfg.TodoMenu.DialogColor, cfg.TodoMenu.DialogBorderColor)
}

func (s *screenSurface) DrawTitle(rect image.Rectangle, title string) {
	s.box(rect, cfg.TodoMenu.TitleBgColor, cfg.TodoMenu.DialogBorderColor)
	s.centeredText(rect, title, s.titleFace, cfg.TodoMenu.TitleColor)
}

func (s *screenSurface) DrawCloseButton(rect image.Rectangle) {
	s.box(rect, cfg.TodoMenu.CloseColor, cfg.TodoMenu.DialogBorderColor)
	s.centeredText(rect, "X", fonts.Regular.Get(), cfg.White)
}

func (s *screenSurface) DrawRow(rect image.Rectangle, label string, hovered, largeFont bool) {
	fill := cfg.TodoMenu.RowColor
	if hovered {
		fill = cfg.TodoMenu.RowHoverColor
	}
	s.box(rect, fill, cfg.TodoMenu.RowBorderColor)

	face := fonts.RowFace(largeFont)
	x := rect.Min.X + cfg.TodoMenu.TextPaddingX
	y := baselineFor(rect, face)

	// Shadow first, then the label on top
	off := cfg.TodoMenu.ShadowOffset
	text.Draw(s.screen, label, face, x+off, y+off, cfg.TodoMenu.ShadowColor)
	text.Draw(s.screen, label, face, x, y, cfg.TodoMenu.TextColor)
}

func (s *screenSurface) DrawNavIcon(rect image.Rectangle, forward bool) {
	s.box(rect, cfg.TodoMenu.NavColor, cfg.TodoMenu.DialogBorderColor)
	arrow := "<"
	if forward {
		arrow = ">"
	}
	s.centeredText(rect, arrow, fonts.Large.Get(), cfg.White)
}

func (s *screenSurface) DrawEntry(entry todo.TextEntry) {
	if d, ok := entry.(interface{ Draw(*ebiten.Image) }); ok {
		d.Draw(s.screen)
	}
}

func (s *screenSurface) box(rect image.Rectangle, fill, border color.RGBA) {
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())
	vector.FillRect(s.screen, x, y, w, h, fill, false)
	vector.StrokeRect(s.screen, x, y, w, h, cfg.TodoMenu.BorderWidth, border, false)
}

func (s *screenSurface) centeredText(rect image.Rectangle, str string, face font.Face, clr color.Color) {
	width := font.MeasureString(face, str).Round()
	x := rect.Min.X + (rect.Dx()-width)/2
	text.Draw(s.screen, str, face, x, baselineFor(rect, face), clr)
}

// baselineFor returns the y that vertically centres a line of face in rect
func baselineFor(rect image.Rectangle, face font.Face) int {
	m := face.Metrics()
	ascent, descent := m.Ascent.Round(), m.Descent.Round()
	return rect.Min.Y + (rect.Dy()-(ascent+descent))/2 + ascent
}
