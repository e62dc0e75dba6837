package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs/entity"
)

func main() {
	levelName := flag.String("level", "meadow", "level name in levels/ (basename, .json optional)")
	prefab := flag.String("prefab", "player.yaml", "actor prefab in prefabs/")
	backend := flag.String("backend", entity.BackendChipmunk, "physics backend: cp or grid")
	script := flag.String("script", "", "drive the actor with a tengo script from prefabs/scripts instead of the keyboard")
	debug := flag.Bool("debug", false, "draw ground contacts and physics shapes")
	watch := flag.Bool("watch", false, "respawn the actor when its prefab changes on disk")
	flag.Parse()

	game, err := NewGame(Options{
		Level:   *levelName,
		Prefab:  *prefab,
		Backend: *backend,
		Script:  *script,
		Debug:   *debug,
		Watch:   *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("platformer")
	ebiten.SetTPS(common.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
