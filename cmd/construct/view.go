package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/gops/agent"
	"github.com/signadot/construct"
	"github.com/signadot/construct/frame"
	"github.com/signadot/construct/paint"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) (err error) {
	args, err = cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: view requires 1 file, got %v", cli.ErrUsage, args)
	}
	file := args[0]
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "gops agent failed: %v\n", err)
		}
		defer agent.Close()
	}
	var bOpts []construct.Option
	if cfg.Patch != "" {
		d, err := os.ReadFile(cfg.Patch)
		if err != nil {
			return fmt.Errorf("could not read patch: %w", err)
		}
		bOpts = append(bOpts, construct.Patch(d))
	}
	c, err := construct.Open(file, bOpts...)
	if err != nil {
		return err
	}
	sc, err := c.Scene()
	if err != nil {
		return err
	}

	backend := frame.Terminal
	if cfg.Backend != "" {
		backend, err = frame.ParseBackend(cfg.Backend)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	fOpts := frame.Options{Width: 320, Height: 200, PNG: cfg.PNG}
	if cfg.Headless || cfg.PNG != "" {
		backend = frame.Headless
	}
	if cfg.Size != "" {
		fOpts.Width, fOpts.Height, err = parseSize(cfg.Size)
		if err != nil {
			return err
		}
	}
	if f, ok := cc.Out.(*os.File); ok {
		fOpts.Out = f
	}
	surf, err := frame.Open(backend, fOpts)
	if errors.Is(err, frame.ErrNotTerminal) {
		return fmt.Errorf("%w: use -headless to render offscreen", err)
	}
	if err != nil {
		return err
	}
	defer func() {
		if cErr := surf.Close(); cErr != nil && err == nil {
			err = cErr
		}
	}()

	loop := frame.NewLoop(surf, paint.NewPainter(sc.Styles), sc)
	loop.Reload = func() (*frame.Scene, error) {
		c, err := construct.Open(file, bOpts...)
		if err != nil {
			return nil, err
		}
		return c.Scene()
	}
	if cfg.Watch {
		w, err := frame.Watch(c.Files()...)
		if err != nil {
			return fmt.Errorf("could not watch %s: %w", file, err)
		}
		defer w.Close()
		loop.Sources = append(loop.Sources, w)
	}
	return loop.Run()
}

func parseSize(v string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(v, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: bad size %q, want WxH", cli.ErrUsage, v)
	}
	return w, h, nil
}
