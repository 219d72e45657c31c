package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontWithSizeRegistersFace(t *testing.T) {
	if err := LoadFontWithSize(Regular, goregular.TTF, 16); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := LoadFontWithSize(Large, goregular.TTF, 22); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	small := RowFace(false).Metrics().Height
	large := RowFace(true).Metrics().Height
	if large <= small {
		t.Fatalf("expected larger row face to be taller, got %v <= %v", large, small)
	}
}

func TestLoadFontWithSizeRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize(Small, []byte("not a font"), 12); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetUnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unregistered font")
		}
	}()
	FontName("missing").Get()
}
