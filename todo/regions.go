package todo

import (
	"fmt"
	"image"

	"github.com/solarlune/resolv"
)

// Resolv tags for the menu's clickable regions
const (
	tagClose   = "close"
	tagForward = "forward"
	tagBack    = "back"
	tagEntry   = "entry"
	tagConfirm = "confirm"
	tagCursor  = "cursor"
)

const regionCellSize = 8

func rowTag(slot int) string {
	return fmt.Sprintf("row%d", slot)
}

// Layout is the screen geometry of the menu. Rows are indexed by slot.
type Layout struct {
	Screen  image.Rectangle
	Dialog  image.Rectangle
	Title   image.Rectangle
	Close   image.Rectangle
	Back    image.Rectangle
	Forward image.Rectangle
	Rows    []image.Rectangle
}

// regions answers "is the pointer inside region X" through a resolv space.
// Entry and confirm regions move with the ebitenui layout, so they are
// repositioned before every test.
type regions struct {
	space   *resolv.Space
	cursor  *resolv.Object
	objects map[string]*resolv.Object
}

func newRegions(l Layout) *regions {
	w, h := l.Screen.Dx(), l.Screen.Dy()
	if w <= 0 || h <= 0 {
		w, h = l.Dialog.Max.X, l.Dialog.Max.Y
	}

	r := &regions{
		space:   resolv.NewSpace(w, h, regionCellSize, regionCellSize),
		cursor:  resolv.NewObject(0, 0, 1, 1, tagCursor),
		objects: make(map[string]*resolv.Object),
	}
	r.space.Add(r.cursor)

	r.set(tagClose, l.Close)
	r.set(tagForward, l.Forward)
	r.set(tagBack, l.Back)
	r.set(tagEntry, image.Rectangle{})
	r.set(tagConfirm, image.Rectangle{})
	for slot, rect := range l.Rows {
		r.set(rowTag(slot), rect)
	}
	return r
}

// set creates or moves the region with the given tag.
func (r *regions) set(tag string, rect image.Rectangle) {
	obj, ok := r.objects[tag]
	if !ok {
		obj = resolv.NewObject(0, 0, 0, 0, tag)
		r.objects[tag] = obj
		r.space.Add(obj)
	}
	obj.X = float64(rect.Min.X)
	obj.Y = float64(rect.Min.Y)
	obj.W = float64(rect.Dx())
	obj.H = float64(rect.Dy())
	obj.Update()
}

// contains reports whether (x, y) falls inside the region tagged tag.
func (r *regions) contains(tag string, x, y int) bool {
	obj, ok := r.objects[tag]
	if !ok || obj.W <= 0 || obj.H <= 0 {
		return false
	}

	r.cursor.X = float64(x)
	r.cursor.Y = float64(y)
	r.cursor.Update()

	// Broadphase by shared cells, then an exact bounds test
	check := r.cursor.Check(0, 0, tag)
	if check == nil {
		return false
	}
	for _, candidate := range check.ObjectsByTags(tag) {
		if candidate == obj && pointInObject(obj, float64(x), float64(y)) {
			return true
		}
	}
	return false
}

func pointInObject(obj *resolv.Object, x, y float64) bool {
	return x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H
}
