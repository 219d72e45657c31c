package layout

import (
	"fmt"
	"image"
	"os"
	"strings"
	"testing"
	"testing/fstest"
)

func tmx(objects ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="30" height="17" tilewidth="32" tileheight="32" infinite="0" nextlayerid="2" nextobjectid="20">
 <objectgroup id="1" name="TodoMenu">
` + strings.Join(objects, "\n") + `
 </objectgroup>
</map>`
}

func object(id int, name string, x, y, w, h int) string {
	return fmt.Sprintf(`  <object id="%d" name="%s" x="%d" y="%d" width="%d" height="%d"/>`, id, name, x, y, w, h)
}

func row(id, slot, y int) string {
	return fmt.Sprintf(`  <object id="%d" name="row" x="10" y="%d" width="100" height="20">
   <properties>
    <property name="slot" type="int" value="%d"/>
   </properties>
  </object>`, id, y, slot)
}

func baseObjects() []string {
	return []string{
		object(1, "dialog", 0, 0, 200, 200),
		object(2, "title", 50, 0, 100, 20),
		object(3, "close", 180, 0, 20, 20),
		object(4, "back", 0, 180, 20, 20),
		object(5, "forward", 180, 180, 20, 20),
	}
}

func loadString(t *testing.T, content string, pageSize int) (image.Rectangle, []image.Rectangle, error) {
	t.Helper()
	fsys := fstest.MapFS{"menu.tmx": {Data: []byte(content)}}
	l, err := Load(fsys, "menu.tmx", pageSize)
	return l.Screen, l.Rows, err
}

func TestLoadShippedLayoutHasFiveRows(t *testing.T) {
	l, err := Load(os.DirFS("../assets"), "layout/todo.tmx", 5)
	if err != nil {
		t.Fatalf("load shipped layout: %v", err)
	}
	if len(l.Rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(l.Rows))
	}
	for i := 1; i < len(l.Rows); i++ {
		if l.Rows[i].Min.Y <= l.Rows[i-1].Min.Y {
			t.Fatalf("expected rows stacked top to bottom, row %d at %v after %v", i, l.Rows[i], l.Rows[i-1])
		}
	}
	if l.Back.Min.X >= l.Forward.Min.X {
		t.Fatalf("expected back icon left of forward icon, got %v and %v", l.Back, l.Forward)
	}
	if !l.Rows[0].In(l.Dialog) {
		t.Fatalf("expected rows inside dialog, row 0 %v dialog %v", l.Rows[0], l.Dialog)
	}
}

func TestLoadOrdersRowsBySlotProperty(t *testing.T) {
	objects := append(baseObjects(), row(6, 1, 60), row(7, 0, 30))

	screen, rows, err := loadString(t, tmx(objects...), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if screen != image.Rect(0, 0, 960, 544) {
		t.Fatalf("unexpected screen %v", screen)
	}
	if rows[0] != image.Rect(10, 30, 110, 50) || rows[1] != image.Rect(10, 60, 110, 80) {
		t.Fatalf("unexpected rows %v", rows)
	}
}

func TestLoadRejectsDuplicateSlot(t *testing.T) {
	objects := append(baseObjects(), row(6, 0, 30), row(7, 0, 60))

	_, _, err := loadString(t, tmx(objects...), 2)
	if err == nil || !strings.Contains(err.Error(), "duplicate row slot 0") {
		t.Fatalf("expected duplicate slot error, got %v", err)
	}
}

func TestLoadRejectsMissingSlot(t *testing.T) {
	objects := append(baseObjects(), row(6, 0, 30))

	_, _, err := loadString(t, tmx(objects...), 2)
	if err == nil || !strings.Contains(err.Error(), "expected 2 row slots, found 1") {
		t.Fatalf("expected missing slot error, got %v", err)
	}
}

func TestLoadRejectsSlotOutOfRange(t *testing.T) {
	objects := append(baseObjects(), row(6, 0, 30), row(7, 5, 60))

	_, _, err := loadString(t, tmx(objects...), 2)
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected out of range error, got %v", err)
	}
}

func TestLoadRejectsMissingNamedObject(t *testing.T) {
	objects := append(baseObjects()[1:], row(6, 0, 30))

	_, _, err := loadString(t, tmx(objects...), 1)
	if err == nil || !strings.Contains(err.Error(), `missing "dialog"`) {
		t.Fatalf("expected missing dialog error, got %v", err)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "nope.tmx", 5); err == nil {
		t.Fatal("expected error for missing file")
	}
}
