package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TaskEntryOptions configures the entry row
type TaskEntryOptions struct {
	BottomPadding int
	EntryWidth    int
	EntryHeight   int
	ConfirmWidth  int
	Placeholder   string
	ConfirmLabel  string
	FontSize      float64
}

// TaskEntryUI is the single-line task text box with its OK button.
// The button has no click handler: the to-do menu routes clicks on it.
type TaskEntryUI struct {
	UI *ebitenui.UI

	input     *widget.TextInput
	okButton  *widget.Button
	entryFace text.Face
}

func NewTaskEntryUI(opts TaskEntryOptions) (*TaskEntryUI, error) {
	ui := &TaskEntryUI{}
	if err := ui.loadFonts(opts.FontSize); err != nil {
		return nil, err
	}
	ui.buildUI(opts)
	return ui, nil
}

func (ui *TaskEntryUI) loadFonts(size float64) error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load entry font: %w", err)
	}
	ui.entryFace = &text.GoTextFace{Source: fontSource, Size: size}
	return nil
}

func (ui *TaskEntryUI) buildUI(opts TaskEntryOptions) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Bottom: opts.BottomPadding}
	entryRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	ui.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(opts.EntryWidth, opts.EntryHeight)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     eimage.NewNineSliceColor(color.RGBA{252, 236, 196, 255}),
			Disabled: eimage.NewNineSliceColor(color.RGBA{200, 190, 160, 255}),
		}),
		widget.TextInputOpts.Face(&ui.entryFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{86, 22, 12, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{86, 22, 12, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(opts.Placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(6)),
	)
	entryRow.AddChild(ui.input)

	ui.okButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(opts.ConfirmWidth, opts.EntryHeight)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    eimage.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   eimage.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: eimage.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text(opts.ConfirmLabel, &ui.entryFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
	)
	entryRow.AddChild(ui.okButton)

	rootContainer.AddChild(entryRow)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *TaskEntryUI) Text() string {
	return ui.input.GetText()
}

func (ui *TaskEntryUI) SetText(s string) {
	ui.input.SetText(s)
}

func (ui *TaskEntryUI) EntryBounds() image.Rectangle {
	return ui.input.GetWidget().Rect
}

func (ui *TaskEntryUI) ConfirmBounds() image.Rectangle {
	return ui.okButton.GetWidget().Rect
}

// Focus gives the text box keyboard focus so typing starts immediately
func (ui *TaskEntryUI) Focus() {
	ui.input.Focus(true)
}

func (ui *TaskEntryUI) Update() {
	ui.UI.Update()
}

func (ui *TaskEntryUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
