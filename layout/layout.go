// Package layout loads the to-do menu geometry from a Tiled map.
package layout

import (
	"fmt"
	"image"
	"io/fs"

	"github.com/automoto/farm-todo/todo"
	"github.com/lafriks/go-tiled"
)

// ObjectGroup is the Tiled object layer holding the menu regions
const ObjectGroup = "TodoMenu"

// Object names recognised in the TodoMenu layer
const (
	objDialog  = "dialog"
	objTitle   = "title"
	objClose   = "close"
	objBack    = "back"
	objForward = "forward"
	objRow     = "row"
)

// Load parses a TMX file and returns the menu layout. Every row object needs
// an int "slot" property; slots must cover [0, pageSize) exactly once.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string, pageSize int) (todo.Layout, error) {
	menuMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return todo.Layout{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var group *tiled.ObjectGroup
	for _, og := range menuMap.ObjectGroups {
		if og.Name == ObjectGroup {
			group = og
			break
		}
	}
	if group == nil {
		return todo.Layout{}, fmt.Errorf("%s: no %s object group", tmxPath, ObjectGroup)
	}

	l := todo.Layout{
		Screen: image.Rect(0, 0, menuMap.Width*menuMap.TileWidth, menuMap.Height*menuMap.TileHeight),
		Rows:   make([]image.Rectangle, pageSize),
	}
	named := map[string]*image.Rectangle{
		objDialog:  &l.Dialog,
		objTitle:   &l.Title,
		objClose:   &l.Close,
		objBack:    &l.Back,
		objForward: &l.Forward,
	}
	found := make(map[string]bool, len(named))
	seenSlots := make(map[int]bool, pageSize)

	for _, o := range group.Objects {
		rect := objectRect(o)

		if o.Name == objRow {
			slot := o.Properties.GetInt("slot")
			if slot < 0 || slot >= pageSize {
				return todo.Layout{}, fmt.Errorf("%s: row slot %d out of range [0, %d)", tmxPath, slot, pageSize)
			}
			if seenSlots[slot] {
				return todo.Layout{}, fmt.Errorf("%s: duplicate row slot %d", tmxPath, slot)
			}
			seenSlots[slot] = true
			l.Rows[slot] = rect
			continue
		}

		if dst, ok := named[o.Name]; ok {
			*dst = rect
			found[o.Name] = true
		}
	}

	for name := range named {
		if !found[name] {
			return todo.Layout{}, fmt.Errorf("%s: missing %q object", tmxPath, name)
		}
	}
	if len(seenSlots) != pageSize {
		return todo.Layout{}, fmt.Errorf("%s: expected %d row slots, found %d", tmxPath, pageSize, len(seenSlots))
	}

	return l, nil
}

func objectRect(o *tiled.Object) image.Rectangle {
	x, y := int(o.X), int(o.Y)
	return image.Rect(x, y, x+int(o.Width), y+int(o.Height))
}
