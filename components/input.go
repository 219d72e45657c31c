package components

import (
	cfg "github.com/automoto/farm-todo/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions,
// plus the raw key and pointer events the overlay forwards to the menu.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	JustPressedKeys []ebiten.Key // Keys pressed this frame, in ebiten order

	CursorX, CursorY int
	LeftJustPressed  bool // right clicks are ignored
}

var Input = donburi.NewComponentType[InputData]()
