package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/farm-todo/config"
	"github.com/automoto/farm-todo/persistence"
	"github.com/automoto/farm-todo/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FarmScene is the field the player works in, with the to-do overlay on top
type FarmScene struct {
	ecs      *ecs.ECS
	store    *persistence.Store
	settings persistence.Settings
	once     sync.Once
}

// NewFarmScene creates a new farm scene backed by store
func NewFarmScene(store *persistence.Store, settings persistence.Settings) *FarmScene {
	return &FarmScene{store: store, settings: settings}
}

func (fs *FarmScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()
}

func (fs *FarmScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FarmScene) configure() {
	fs.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	fs.ecs.AddSystem(systems.UpdateAudio)
	fs.ecs.AddSystem(systems.UpdateInput)
	fs.ecs.AddSystem(systems.NewUpdateTodoOverlay(fs.store, fs.settings))

	fs.ecs.AddRenderer(cfg.Default, systems.DrawFarm)
	fs.ecs.AddRenderer(cfg.Overlay, systems.DrawTodoOverlay)
}
