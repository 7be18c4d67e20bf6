// Calm opens a window with the relaxation scenes. Pick a scene from the home
// menu, or jump straight to one with -game.
//
//	calm -game breath-sync
//	calm -game pop-bubbles -pick-intro
//	calm -script tour.json -screenshots out/
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/calm"
	"github.com/phanxgames/calm/ecs"
	"github.com/phanxgames/calm/games"
	"github.com/phanxgames/calm/sound"
)

const (
	windowTitle  = "calm"
	headerHeight = 40
)

var (
	background  = calm.RGB{R: 14, G: 16, B: 24}
	pointerRing = calm.RGB{R: 255, G: 214, B: 150}
)

type options struct {
	game          string
	width, height int
	mute          bool
	reducedMotion bool
	intro         string
	pickIntro     bool
	script        string
	screenshots   string
	debug         bool
	fps           bool
	pointers      bool
	seed          uint64
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.game, "game", "", "scene to open (default: home menu)")
	flag.IntVar(&o.width, "width", 960, "window width")
	flag.IntVar(&o.height, "height", 720, "window height")
	flag.BoolVar(&o.mute, "mute", false, "disable sound")
	flag.BoolVar(&o.reducedMotion, "reduced-motion", false, "slow down drifting motion")
	flag.StringVar(&o.intro, "intro", "", "intro image for pop-bubbles")
	flag.BoolVar(&o.pickIntro, "pick-intro", false, "choose the intro image with a file dialog")
	flag.StringVar(&o.script, "script", "", "JSON script to run, then exit")
	flag.StringVar(&o.screenshots, "screenshots", "screenshots", "directory for script screenshots")
	flag.BoolVar(&o.debug, "debug", false, "print diagnostics to stderr")
	flag.BoolVar(&o.fps, "fps", false, "show an FPS readout")
	flag.BoolVar(&o.pointers, "pointers", false, "mark held pointers (tracked in a donburi world)")
	flag.Uint64Var(&o.seed, "seed", 0, "random seed (0: time based)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags]\n\nscenes:\n", os.Args[0])
		for _, rt := range games.Routes() {
			fmt.Fprintf(flag.CommandLine.Output(), "  %-16s %s\n", rt.Name, rt.Title)
		}
		fmt.Fprintln(flag.CommandLine.Output(), "\nflags:")
		flag.PrintDefaults()
	}
	flag.Parse()
	return o
}

// introPath resolves the intro image: the dialog wins over -intro, and a
// cancelled dialog means no image.
func introPath(o options) (string, error) {
	if !o.pickIntro {
		return o.intro, nil
	}
	path, err := zenity.SelectFile(
		zenity.Title("Choose an intro image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("select intro image: %w", err)
	}
	return path, nil
}

// trackPointers mirrors every pointer event into a donburi world and rings
// each held pointer on top of the scene.
func trackPointers(host *calm.Host, router *calm.Router) {
	bridge := ecs.NewBridge(donburi.NewWorld())
	ecs.TrackPointers(bridge.World())
	host.SetEntityStore(bridge)
	router.OnUpdate(func() error {
		bridge.Flush()
		return nil
	})
	router.OnOverlay(func(c *calm.Canvas) {
		origin := host.Container()
		for _, p := range ecs.ActivePointers(bridge.World()) {
			x, y := origin.X+p.X, origin.Y+p.Y
			c.StrokeCircle(x, y, 18, 2, pointerRing.Alpha(0.8))
			c.Line(origin.X+p.StartX, origin.Y+p.StartY, x, y, 1, pointerRing.Alpha(0.35))
		}
	})
}

func main() {
	o := parseFlags()

	var mountOpts []calm.MountOption
	mountOpts = append(mountOpts, calm.WithOptions(calm.Options{ReducedMotion: o.reducedMotion}))
	if o.seed != 0 {
		mountOpts = append(mountOpts, calm.WithRand(calm.NewRand(o.seed)))
	}

	path, err := introPath(o)
	if err != nil {
		log.Fatal(err)
	}
	if path != "" {
		pic, err := calm.LoadPicture(path)
		if err != nil {
			log.Fatal(err)
		}
		mountOpts = append(mountOpts, calm.WithIntro(pic))
	}

	if !o.mute {
		player := sound.NewPlayer(sound.DefaultConfig())
		if err := player.Start(); err != nil {
			log.Printf("audio unavailable, running silent: %v", err)
		} else {
			defer player.Close()
			mountOpts = append(mountOpts, calm.WithSound(player))
		}
	}

	host := calm.NewHost()
	host.ScreenshotDir = o.screenshots
	router := calm.NewRouter(host, games.Routes(), mountOpts...)
	router.OnChange(func(route, title string) {
		if title == "" {
			title = windowTitle
		} else {
			title = windowTitle + " - " + title
		}
		ebiten.SetWindowTitle(title)
	})
	if o.pointers {
		trackPointers(host, router)
	}

	if o.script != "" {
		runner, err := calm.LoadScript(o.script)
		if err != nil {
			log.Fatal(err)
		}
		runner.SetNavigator(router)
		runner.ExitWhenDone(true)
		host.SetScriptRunner(runner)
	}

	if o.game != "" {
		// Size the container before the first Layout so the scene mounts
		// on real geometry.
		host.SetHeaderHeight(headerHeight)
		host.SetViewport(float64(o.width), float64(o.height), 1)
		if _, ok := router.Lookup(o.game); !ok {
			log.Fatalf("unknown game %q (see -help)", o.game)
		}
		router.Navigate(o.game)
	}

	if err := calm.Run(host, calm.RunConfig{
		Title:        windowTitle,
		Width:        o.width,
		Height:       o.height,
		HeaderHeight: headerHeight,
		Background:   background,
		ShowFPS:      o.fps,
		Debug:        o.debug,
	}); err != nil {
		log.Fatal(err)
	}
}
