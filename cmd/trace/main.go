// Command trace runs an actor headless under a tengo input script and logs
// its state every tick.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

type options struct {
	level   string
	prefab  string
	backend string
	script  string
	ticks   int
}

func main() {
	var opts options
	flag.StringVar(&opts.level, "level", "flat", "level name in levels/")
	flag.StringVar(&opts.prefab, "prefab", "player.yaml", "actor prefab in prefabs/")
	flag.StringVar(&opts.backend, "backend", entity.BackendChipmunk, "physics backend: cp or grid")
	flag.StringVar(&opts.script, "script", "", "input script in prefabs/scripts (default: the prefab's script)")
	flag.IntVar(&opts.ticks, "ticks", 300, "number of fixed ticks to simulate")
	flag.Parse()

	if err := run(opts, os.Stdout); err != nil {
		log.Fatalf("trace: %v", err)
	}
}

func run(opts options, out io.Writer) error {
	logger := log.New(out, "", 0)

	lvl, err := levels.Load(opts.level)
	if err != nil {
		return err
	}
	spec, err := prefabs.LoadActorSpec(opts.prefab)
	if err != nil {
		return err
	}
	reg, err := spec.Registry()
	if err != nil {
		return err
	}

	scriptName := opts.script
	if scriptName == "" {
		scriptName = spec.Script
	}
	if scriptName == "" {
		return fmt.Errorf("prefab %s names no script; pass -script", opts.prefab)
	}
	src, err := prefabs.LoadScript(scriptName)
	if err != nil {
		return fmt.Errorf("load script %q: %w", scriptName, err)
	}
	script, err := input.NewScript(scriptName, src, common.DT)
	if err != nil {
		return err
	}

	space, err := entity.NewSpace(opts.backend, lvl.Width, lvl.Height, lvl.Gravity)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	if err := entity.BuildLevel(w, space, lvl, reg); err != nil {
		return err
	}
	spec.Transform.X, spec.Transform.Y = lvl.Spawn.X, lvl.Spawn.Y
	player, err := entity.BuildPlayer(w, space, spec, script)
	if err != nil {
		return err
	}

	sched := ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewMovementSystem(common.DT),
		system.NewPhysicsSystem(space, common.DT),
	)

	t, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	pb, _ := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	mv, _ := ecs.Get(w, player, component.MovementComponent.Kind())

	for tick := 0; tick < opts.ticks; tick++ {
		sched.Update(w)

		var events []string
		for _, ev := range w.Events().Drain() {
			events = append(events, string(ev.Kind))
		}
		in := input.Take(script)
		vel := pb.Body.Velocity()
		line := fmt.Sprintf("tick=%04d in=%+.2f/%t x=%.3f y=%.3f vx=%.3f vy=%.3f grounded=%t facing=%s",
			tick, in.Horizontal, in.JumpPressed, t.X, t.Y, vel.X, vel.Y, mv.Controller.HasLanded(), mv.Controller.Facing())
		if len(events) > 0 {
			line += " events=" + strings.Join(events, ",")
		}
		logger.Print(line)
	}
	return nil
}
