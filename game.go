package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/input/keys"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

const cameraSmoothing = 0.15

type Options struct {
	Level   string
	Prefab  string
	Backend string
	Script  string
	Debug   bool
	Watch   bool
}

type Game struct {
	opts Options

	world  *ecs.World
	space  entity.Space
	sched  *ecs.Scheduler
	render *render.RenderSystem
	view   *common.View
	hud    *HUD

	level  *levels.Level
	player ecs.Entity

	watcher *prefabs.Watcher
	paused  bool
	quit    bool
	frames  int
}

func NewGame(opts Options) (*Game, error) {
	lvl, err := levels.Load(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	spec, err := prefabs.LoadActorSpec(opts.Prefab)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	reg, err := spec.Registry()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	space, err := entity.NewSpace(opts.Backend, lvl.Width, lvl.Height, lvl.Gravity)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		opts:  opts,
		world: ecs.NewWorld(),
		space: space,
		view:  common.NewView(),
		level: lvl,
	}
	g.sched = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewMovementSystem(common.DT),
		system.NewPhysicsSystem(space, common.DT),
	)
	g.render = render.NewRenderSystem(g.view)
	g.render.Debug = opts.Debug
	g.hud = NewHUD(func() { g.setPaused(false) }, func() { g.quit = true })

	if err := entity.BuildLevel(g.world, space, lvl, reg); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	spec.Transform.X, spec.Transform.Y = lvl.Spawn.X, lvl.Spawn.Y
	if err := g.spawn(spec); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) source() (input.Source, error) {
	if g.opts.Script == "" {
		return keys.NewKeyboard(), nil
	}
	src, err := prefabs.LoadScript(g.opts.Script)
	if err != nil {
		return nil, fmt.Errorf("load script %q: %w", g.opts.Script, err)
	}
	return input.NewScript(g.opts.Script, src, common.DT)
}

func (g *Game) spawn(spec *prefabs.ActorSpec) error {
	src, err := g.source()
	if err != nil {
		return err
	}
	e, err := entity.BuildPlayer(g.world, g.space, spec, src)
	if err != nil {
		return err
	}
	g.player = e
	return nil
}

// respawn rebuilds the player from the current prefab at its current pose,
// with a new controller.
func (g *Game) respawn() {
	spec, err := prefabs.LoadActorSpec(g.opts.Prefab)
	if err != nil {
		log.Printf("game: reload %s: %v", g.opts.Prefab, err)
		return
	}
	if t, ok := ecs.Get(g.world, g.player, component.TransformComponent.Kind()); ok {
		spec.Transform.X, spec.Transform.Y = t.X, t.Y
		spec.Transform.ScaleX = t.Scale.X
	}
	entity.RemovePlayer(g.world, g.space, g.player)
	if err := g.spawn(spec); err != nil {
		log.Printf("game: respawn %s: %v", g.opts.Prefab, err)
		return
	}
	g.hud.Record("reloaded %s", g.opts.Prefab)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			if change.Script || change.Name == filepath.Base(g.opts.Prefab) {
				g.respawn()
			}
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("game: watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.hud.SetPaused(paused)
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.render.Debug = !g.render.Debug
	}
	g.hud.UI().Update()
	if g.paused {
		return nil
	}

	g.pollWatcher()
	g.frames++
	g.sched.Update(g.world)

	for _, ev := range g.world.Events().Drain() {
		switch ev.Kind {
		case system.EventFlipped:
			if data, ok := ev.Data.(system.FlipData); ok {
				g.hud.Record("%06d flipped %s", g.frames, data.Facing)
			}
		default:
			g.hud.Record("%06d %s", g.frames, ev.Kind)
		}
	}

	g.updateStatus()
	return nil
}

func (g *Game) updateStatus() {
	t, ok := ecs.Get(g.world, g.player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	g.view.Follow(t.X, t.Y, g.level.Width, g.level.Height, cameraSmoothing)

	mv, _ := ecs.Get(g.world, g.player, component.MovementComponent.Kind())
	pb, _ := ecs.Get(g.world, g.player, component.PhysicsBodyComponent.Kind())
	tag, _ := ecs.Get(g.world, g.player, component.PlayerTagComponent.Kind())
	if mv == nil || pb == nil || tag == nil {
		return
	}
	ctrl := mv.Controller
	vel := pb.Body.Velocity()
	g.hud.SetStatus(
		fmt.Sprintf("level %s  backend %s  %.0f fps", g.level.Name, g.backend(), ebiten.ActualFPS()),
		fmt.Sprintf("pos (%.2f, %.2f)  vel (%.2f, %.2f)", t.X, t.Y, vel.X, vel.Y),
		fmt.Sprintf("facing %s  grounded %t", ctrl.Facing(), ctrl.HasLanded()),
		fmt.Sprintf("speed %.0f  jump %.0f  ground %s", ctrl.MovementSpeed(), ctrl.JumpImpulse(), tag.Layers.Names(ctrl.GroundMask())),
	)
}

func (g *Game) backend() string {
	if g.opts.Backend == "" {
		return entity.BackendChipmunk
	}
	return g.opts.Backend
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.render.Debug {
		if dbg, ok := g.space.(interface{ CP() *cp.Space }); ok {
			render.DrawChipmunk(screen, dbg.CP(), g.view)
		}
	}
	g.hud.UI().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	return err
}
