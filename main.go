package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/farm-todo/config"
	"github.com/automoto/farm-todo/fonts"
	"github.com/automoto/farm-todo/persistence"
	"github.com/automoto/farm-todo/scenes"
	"github.com/automoto/farm-todo/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(store *persistence.Store, settings persistence.Settings) *Game {
	mustLoadFont(fonts.Regular, config.FontSizes.Regular)
	mustLoadFont(fonts.Large, config.FontSizes.Large)
	mustLoadFont(fonts.Title, config.FontSizes.Title)
	mustLoadFont(fonts.Small, config.FontSizes.Small)

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewFarmScene(store, settings),
	}
}

func mustLoadFont(name fonts.FontName, size float64) {
	if err := fonts.LoadFontWithSize(name, goregular.TTF, size); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.OpenOnStart, "open", config.Debug.OpenOnStart, "open the to-do list on start")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Farm To Do")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	store, err := persistence.Open("farm-todo")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence, tasks will not be saved: %v", err)
		store = persistence.NewStore(persistence.NewMemoryItems())
	}

	settings, err := store.LoadSettings()
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
	}
	keyName, ok := config.SetOpenListKey(settings.OpenListKey)
	if !ok {
		log.Printf("Warning: Unknown open key %q, using %s", settings.OpenListKey, persistence.DefaultSettings().OpenListKey)
		keyName = config.OpenListKeyName()
	}
	settings.OpenListKey = keyName

	systems.PreloadAllSFX()

	if err := ebiten.RunGame(NewGame(store, settings)); err != nil {
		log.Fatal(err)
	}
}
