package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/runner"
	"github.com/milk9111/platformer/script"
	"github.com/milk9111/platformer/sim"
	"github.com/milk9111/platformer/tui"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type options struct {
	frontend    string
	configPath  string
	watch       bool
	debug       bool
	sprites     string
	scriptPath  string
	frames      uint64
	metricsAddr string
	mute        bool
}

func main() {
	var opts options
	flag.StringVar(&opts.frontend, "frontend", "gui", "frontend: gui, tui or headless")
	flag.StringVar(&opts.configPath, "config", "", "tuning file (.yaml or .toml); empty uses the built-in defaults")
	flag.BoolVar(&opts.watch, "watch", false, "reload the tuning file when it changes (requires -config)")
	flag.BoolVar(&opts.debug, "debug", false, "enable debug overlay")
	flag.StringVar(&opts.sprites, "sprites", assets.SpriteSheetPath, "sprite sheet for the gui frontend")
	flag.StringVar(&opts.scriptPath, "script", "", "tengo autopilot script for the headless frontend")
	flag.Uint64Var(&opts.frames, "frames", 0, "headless: stop after this many frames (0 = until the script quits)")
	flag.StringVar(&opts.metricsAddr, "metrics", "", "serve Prometheus metrics on this address, e.g. :9090")
	flag.BoolVar(&opts.mute, "mute", false, "disable sound")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	settings, err := config.LoadSettings(opts.configPath)
	if err != nil {
		return err
	}

	world := sim.NewWorld()
	settings.Apply(world)

	loopOpts := []runner.Option{runner.WithFrameDelay(settings.FrameDelay())}
	if opts.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		loopOpts = append(loopOpts, runner.WithMetrics(runner.NewMetrics(reg)))
		srv := serveMetrics(opts.metricsAddr, reg)
		defer srv.Close()
	}
	loop := runner.NewLoop(world, loopOpts...)

	var onReload []func(config.Settings)
	if opts.watch {
		if opts.configPath == "" {
			return errors.New("-watch requires -config")
		}
		reloader, err := config.NewReloader(opts.configPath)
		if err != nil {
			return fmt.Errorf("config: watch %s: %w", opts.configPath, err)
		}
		defer reloader.Close()
		loop.BeforeFrame = func(w *sim.World) {
			s, changed, err := reloader.Check()
			if err != nil {
				log.Printf("config: reload %s: %v", opts.configPath, err)
				return
			}
			if !changed {
				return
			}
			s.Apply(w)
			loop.SetFrameDelay(s.FrameDelay())
			for _, fn := range onReload {
				fn(s)
			}
			log.Printf("config: reloaded %s", opts.configPath)
		}
	}

	switch opts.frontend {
	case "gui":
		return runGUI(loop, settings, opts, func(fn func(config.Settings)) { onReload = append(onReload, fn) })
	case "tui":
		return runTUI(loop, opts)
	case "headless":
		return runHeadless(loop, opts)
	default:
		return fmt.Errorf("unknown frontend %q", opts.frontend)
	}
}

func runTUI(loop *runner.Loop, opts options) error {
	screen, err := tui.New(!opts.mute)
	if err != nil {
		return err
	}
	defer screen.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return ignoreCancel(loop.Run(ctx, screen))
}

func runHeadless(loop *runner.Loop, opts options) error {
	var src runner.EventSource
	if opts.scriptPath != "" {
		pilot, err := script.LoadFile(opts.scriptPath)
		if err != nil {
			return err
		}
		src = pilot
	}
	if src == nil && opts.frames == 0 {
		return errors.New("headless: nothing would stop the run; pass -frames or -script")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := runner.NewHeadless(loop.World(), src, opts.frames)
	err := ignoreCancel(loop.Run(ctx, h))

	b := loop.World().Body
	log.Printf("headless: frames=%d x=%.2f y=%.2f vx=%.2f vy=%.2f jumping=%t jumps=%d landings=%d",
		h.Frames(), b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.Jumping, loop.World().Jumps, loop.World().Landings)
	return err
}

func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics: %v", err)
		}
	}()
	return srv
}
