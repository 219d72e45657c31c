package todo

import (
	"fmt"
	"image"

	"github.com/automoto/farm-todo/persistence"
)

// Title is drawn in the tab above the dialog
const Title = "To Do List"

// Keys that confirm the text entry, by ebiten key name
var confirmKeys = map[string]bool{
	"Enter":       true,
	"NumpadEnter": true,
}

// menuKey is the engine-level menu key that always closes the overlay
const menuKey = "Escape"

// Cue is a named sound cue the menu asks the host to play
type Cue int

const (
	CueNavigate Cue = iota
	CueDismiss
)

// SoundPlayer plays fire-and-forget sound cues
type SoundPlayer interface {
	PlayCue(cue Cue)
}

// TextEntry is the single-line entry control that owns the typed buffer.
// Its bounds are read on every click because the host lays it out.
type TextEntry interface {
	Text() string
	SetText(text string)
	EntryBounds() image.Rectangle
	ConfirmBounds() image.Rectangle
}

// Surface receives the menu's draw calls
type Surface interface {
	DrawDialog(rect image.Rectangle)
	DrawTitle(rect image.Rectangle, title string)
	DrawCloseButton(rect image.Rectangle)
	DrawRow(rect image.Rectangle, label string, hovered, largeFont bool)
	DrawNavIcon(rect image.Rectangle, forward bool)
	DrawEntry(entry TextEntry)
}

// Menu is the to-do overlay controller. The host feeds it pointer and key
// events and asks it to render once per frame. While open it is the only
// writer of data.SavedTasks.
type Menu struct {
	data     *persistence.Data
	save     func() error
	settings persistence.Settings

	layout  Layout
	regions *regions
	pager   *Pager
	entry   TextEntry
	sounds  SoundPlayer

	closeKeys map[string]bool
	canClose  bool
	closed    bool

	hoverX, hoverY int
}

// NewMenu builds an open menu over data. The page size is the number of
// row slots in layout.
func NewMenu(data *persistence.Data, save func() error, settings persistence.Settings, layout Layout, entry TextEntry, sounds SoundPlayer) *Menu {
	m := &Menu{
		data:     data,
		save:     save,
		settings: settings,
		layout:   layout,
		regions:  newRegions(layout),
		pager:    NewPager(len(layout.Rows)),
		entry:    entry,
		sounds:   sounds,
		closeKeys: map[string]bool{
			menuKey: true,
		},
		hoverX: -1,
		hoverY: -1,
	}
	if settings.OpenListKey != "" {
		m.closeKeys[settings.OpenListKey] = true
	}
	m.reload()
	return m
}

func (m *Menu) Pager() *Pager  { return m.pager }
func (m *Menu) Closed() bool   { return m.closed }
func (m *Menu) CanClose() bool { return m.canClose }

// reload re-reads the task list and repaginates
func (m *Menu) reload() {
	m.pager.Reload(m.data.SavedTasks)
}

// Hover records the pointer position used for row highlighting
func (m *Menu) Hover(x, y int) {
	m.hoverX, m.hoverY = x, y
}

// HandlePointerDown routes a left click to exactly one action.
// The returned error comes from the save callback.
func (m *Menu) HandlePointerDown(x, y int) error {
	if m.closed {
		return nil
	}

	m.regions.set(tagEntry, m.entry.EntryBounds())
	m.regions.set(tagConfirm, m.entry.ConfirmBounds())

	if m.regions.contains(tagClose, x, y) {
		m.dismiss()
		return nil
	}

	for slot := 0; slot < m.pager.PageSize(); slot++ {
		if _, ok := m.pager.Item(slot); ok && m.regions.contains(rowTag(slot), x, y) {
			return m.deleteTask(m.pager.AbsoluteIndex(slot))
		}
	}

	switch {
	case m.pager.CanForward() && m.regions.contains(tagForward, x, y):
		m.pager.Forward()
		m.sounds.PlayCue(CueNavigate)
	case m.pager.CanBack() && m.regions.contains(tagBack, x, y):
		m.pager.Back()
		m.sounds.PlayCue(CueNavigate)
	case m.regions.contains(tagEntry, x, y):
		// focus is handled by the entry control itself
	case m.regions.contains(tagConfirm, x, y):
		return m.AddTask()
	default:
		m.dismiss()
	}
	return nil
}

// HandleKeyDown routes a key press by ebiten key name.
// Close keys only close once the guard is armed; any other outcome arms it,
// so the key that opened the menu cannot close it in the same press.
func (m *Menu) HandleKeyDown(key string) error {
	if m.closed {
		return nil
	}

	if m.closeKeys[key] && m.canClose {
		m.closed = true
		return nil
	}
	m.canClose = true

	if confirmKeys[key] {
		return m.AddTask()
	}
	return nil
}

// AddTask appends the entry text as the newest task. An empty entry is a no-op.
func (m *Menu) AddTask() error {
	text := m.entry.Text()
	if text == "" {
		return nil
	}

	m.data.SavedTasks = append(m.data.SavedTasks, text)
	err := m.save()
	m.entry.SetText("")
	m.reload()
	if err != nil {
		return fmt.Errorf("save after add: %w", err)
	}
	return nil
}

func (m *Menu) deleteTask(index int) error {
	if index < 0 || index >= len(m.data.SavedTasks) {
		return nil
	}

	tasks := m.data.SavedTasks
	m.data.SavedTasks = append(tasks[:index:index], tasks[index+1:]...)
	err := m.save()
	m.reload()
	if err != nil {
		return fmt.Errorf("save after delete: %w", err)
	}
	return nil
}

func (m *Menu) dismiss() {
	m.sounds.PlayCue(CueDismiss)
	m.closed = true
}

// Render draws the dialog, the current page and whichever navigation
// icons apply.
func (m *Menu) Render(s Surface) {
	s.DrawDialog(m.layout.Dialog)
	s.DrawTitle(m.layout.Title, Title)
	s.DrawCloseButton(m.layout.Close)

	for slot, rect := range m.layout.Rows {
		label, ok := m.pager.Item(slot)
		if !ok {
			continue
		}
		hovered := image.Pt(m.hoverX, m.hoverY).In(rect)
		s.DrawRow(rect, label, hovered, m.settings.UseLargerFont)
	}

	if m.pager.CanForward() {
		s.DrawNavIcon(m.layout.Forward, true)
	}
	if m.pager.CanBack() {
		s.DrawNavIcon(m.layout.Back, false)
	}

	s.DrawEntry(m.entry)
}
