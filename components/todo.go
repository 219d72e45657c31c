package components

import (
	"github.com/automoto/farm-todo/todo"
	"github.com/automoto/farm-todo/ui"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TodoOverlayData stores the open to-do menu. Menu is nil while closed;
// closing discards the menu and its entry widget.
type TodoOverlayData struct {
	Menu  *todo.Menu
	Entry *ui.TaskEntryUI

	Fade      *gween.Tween
	FadeAlpha float32 // 0.0 - 1.0 backdrop opacity multiplier
}

var TodoOverlay = donburi.NewComponentType[TodoOverlayData]()
