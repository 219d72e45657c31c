package systems

import (
	"fmt"
	"log"

	"github.com/automoto/farm-todo/assets"
	"github.com/automoto/farm-todo/components"
	cfg "github.com/automoto/farm-todo/config"
	"github.com/automoto/farm-todo/fonts"
	"github.com/automoto/farm-todo/layout"
	"github.com/automoto/farm-todo/persistence"
	"github.com/automoto/farm-todo/todo"
	"github.com/automoto/farm-todo/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateTodoOverlay creates the system that opens the to-do menu on the
// open key, forwards input to it while open and discards it once closed.
func NewUpdateTodoOverlay(store *persistence.Store, settings persistence.Settings) ecs.System {
	return func(e *ecs.ECS) {
		overlay := GetOrCreateTodoOverlay(e)
		input := getOrCreateInput(e)

		if overlay.Menu == nil {
			if !GetAction(input, cfg.ActionToggleList).JustPressed && !consumeOpenOnStart() {
				return
			}
			if err := openTodoMenu(e, overlay, store, settings); err != nil {
				log.Printf("Warning: Could not open to-do list: %v", err)
				return
			}
		}

		updateFade(overlay)
		overlay.Entry.Update()

		menu := overlay.Menu
		menu.Hover(input.CursorX, input.CursorY)

		// The key that opened the menu is forwarded too; it arms the close guard.
		for _, key := range input.JustPressedKeys {
			if err := menu.HandleKeyDown(key.String()); err != nil {
				log.Printf("Warning: Could not save to-do list: %v", err)
			}
			if menu.Closed() {
				break
			}
		}

		if !menu.Closed() && input.LeftJustPressed {
			if err := menu.HandlePointerDown(input.CursorX, input.CursorY); err != nil {
				log.Printf("Warning: Could not save to-do list: %v", err)
			}
		}

		if menu.Closed() {
			closeTodoMenu(overlay)
		}
	}
}

var openOnStartPending = true

// consumeOpenOnStart reports the debug open-on-start request once
func consumeOpenOnStart() bool {
	if !cfg.Debug.OpenOnStart || !openOnStartPending {
		return false
	}
	openOnStartPending = false
	return true
}

func openTodoMenu(e *ecs.ECS, overlay *components.TodoOverlayData, store *persistence.Store, settings persistence.Settings) error {
	menuLayout, err := layout.Load(assets.LayoutFS, cfg.TodoMenu.LayoutPath, cfg.TodoMenu.PageSize)
	if err != nil {
		return err
	}

	data, err := store.LoadData()
	if err != nil {
		return err
	}

	entry, err := ui.NewTaskEntryUI(ui.TaskEntryOptions{
		BottomPadding: cfg.TodoMenu.EntryBottomPadding,
		EntryWidth:    cfg.TodoMenu.EntryWidth,
		EntryHeight:   cfg.TodoMenu.EntryHeight,
		ConfirmWidth:  cfg.TodoMenu.ConfirmWidth,
		Placeholder:   cfg.TodoMenu.EntryPlaceholder,
		ConfirmLabel:  cfg.TodoMenu.ConfirmLabel,
		FontSize:      cfg.FontSizes.Regular,
	})
	if err != nil {
		return fmt.Errorf("build task entry: %w", err)
	}
	entry.Focus()

	overlay.Entry = entry
	overlay.Menu = todo.NewMenu(data, store.SaveFunc(data), settings, menuLayout, entry, ecsSounds{e: e})
	overlay.Fade = gween.New(0, 1, cfg.TodoMenu.FadeSeconds, ease.OutQuad)
	overlay.FadeAlpha = 0
	return nil
}

func closeTodoMenu(overlay *components.TodoOverlayData) {
	overlay.Menu = nil
	overlay.Entry = nil
	overlay.Fade = nil
	overlay.FadeAlpha = 0
}

func updateFade(overlay *components.TodoOverlayData) {
	if overlay.Fade == nil {
		overlay.FadeAlpha = 1
		return
	}
	alpha, done := overlay.Fade.Update(1 / float32(ebiten.TPS()))
	overlay.FadeAlpha = alpha
	if done {
		overlay.Fade = nil
	}
}

// DrawTodoOverlay renders the dimmed backdrop and the open menu
func DrawTodoOverlay(e *ecs.ECS, screen *ebiten.Image) {
	overlay := GetOrCreateTodoOverlay(e)
	if overlay.Menu == nil {
		return
	}

	backdrop := cfg.TodoMenu.OverlayColor
	backdrop.A = uint8(float32(backdrop.A) * overlay.FadeAlpha)
	vector.FillRect(
		screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		backdrop,
		false,
	)

	overlay.Menu.Render(newScreenSurface(screen, fonts.Title.Get()))
}

// IsTodoOpen returns true while the to-do menu is showing
func IsTodoOpen(e *ecs.ECS) bool {
	return GetOrCreateTodoOverlay(e).Menu != nil
}

// GetOrCreateTodoOverlay returns the singleton TodoOverlay component, creating if needed
func GetOrCreateTodoOverlay(e *ecs.ECS) *components.TodoOverlayData {
	if _, ok := components.TodoOverlay.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.TodoOverlay))
		components.TodoOverlay.SetValue(ent, components.TodoOverlayData{})
	}

	ent, _ := components.TodoOverlay.First(e.World)
	return components.TodoOverlay.Get(ent)
}
