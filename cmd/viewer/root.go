package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"glb-viewer/internal/config"
	"glb-viewer/internal/debug"
	"glb-viewer/internal/download"
	"glb-viewer/internal/env"
	"glb-viewer/internal/fonts"
	"glb-viewer/internal/graphics"
	"glb-viewer/internal/logger"
	"glb-viewer/internal/picker"
	"glb-viewer/internal/render"
	"glb-viewer/internal/viewer"
	"glb-viewer/internal/watch"
)

type options struct {
	configPath string
	envPath    string
	model      string
	url        string
	watch      bool
	css        string
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", config.DefaultPath, "viewer config file (YAML)")
	fs.StringVar(&o.envPath, "env", ".env", "environment file")
	fs.StringVar(&o.model, "model", "", "open this .glb file at startup")
	fs.StringVar(&o.url, "url", "", "fetch and open this .glb URL at startup")
	fs.BoolVar(&o.watch, "watch", false, "reload the model file when it changes on disk")
	fs.StringVar(&o.css, "css", "", "extra stylesheet for the overlay")
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:          "viewer [file.glb]",
		Short:        "Show a rotating cube, or the glTF binary model you open",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if o.model != "" {
					return fmt.Errorf("give the model either as an argument or with --model, not both")
				}
				o.model = args[0]
			}
			return run(cmd.Context(), o, cmd.Flags().Changed("watch"))
		},
	}
	o.addFlags(cmd.Flags())
	return cmd
}

// loadPrefs layers config file, environment and flags, in that order.
func loadPrefs(o *options, watchSet bool) (config.Prefs, error) {
	if err := env.Load(o.envPath); err != nil {
		return config.Prefs{}, fmt.Errorf("load %s: %w", o.envPath, err)
	}
	prefs, err := config.Load(o.configPath)
	if err != nil {
		return config.Prefs{}, err
	}
	if err := env.Apply(&prefs); err != nil {
		return config.Prefs{}, err
	}
	if o.url != "" {
		prefs.Model.URL = o.url
	}
	if watchSet {
		prefs.Model.Watch = o.watch
	}
	return prefs, nil
}

func run(ctx context.Context, o *options, watchSet bool) error {
	prefs, err := loadPrefs(o, watchSet)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(prefs.Log.Level)
	if err != nil {
		return err
	}
	log := logger.New(logger.WithLevel(level), logger.WithConsole(os.Stderr), logger.WithLogFile(prefs.Log.File))
	defer log.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := render.NewRenderer(prefs.Grid)
	deps := viewer.Deps{
		Builder:     &render.ModelBuilder{},
		Placeholder: renderer.Placeholder(),
		Fetcher:     download.New(download.WithMaxBytes(prefs.Model.MaxBytes)),
		Log:         log.Logger,
	}

	var watcher *watch.Watcher
	if prefs.Model.Watch {
		watcher, err = watch.New(0, log.Logger)
		if err != nil {
			return err
		}
		defer watcher.Close()
		deps.Watcher = watcher
	}

	app := viewer.New(prefs, deps)

	overlay := debug.New()
	overlay.ShowFPS = prefs.ShowFPS
	overlay.ShowMemAlloc = prefs.ShowFPS
	if prefs.ShowLog {
		overlay.Lines = log.Lines
	}
	front := render.NewFrontend(ctx, app, renderer, picker.New(log.Logger), overlay, log.Logger)
	if prefs.Font != "" {
		path, err := fonts.Find(prefs.Font)
		if err == nil {
			var family string
			if family, err = fonts.Family(path); err == nil {
				log.Debug("overlay font", "family", family, "file", path)
				front.UI().SetFont(path)
			}
		}
		if err != nil {
			log.Warn("using default font", "font", prefs.Font, "error", err)
		}
	}
	if o.css != "" {
		if err := front.UI().LoadCSS(o.css); err != nil {
			return err
		}
	}

	watching := make(chan struct{})
	if watcher != nil {
		go func() {
			defer close(watching)
			watcher.Run(ctx, func(path string) {
				log.Info("model file changed", "file", path)
				app.OpenFile(ctx, path)
			})
		}()
	} else {
		close(watching)
	}

	switch {
	case o.model != "":
		front.ShowFile(o.model)
		app.OpenFile(ctx, o.model)
	case prefs.Model.URL != "":
		front.ShowFile(prefs.Model.URL)
		app.OpenURL(ctx, prefs.Model.URL)
	}

	log.Info("viewer started", "config", o.configPath, "watch", prefs.Model.Watch)
	graphics.Run(graphics.Window{
		Width:      prefs.Window.Width,
		Height:     prefs.Window.Height,
		Title:      prefs.Window.Title,
		Fullscreen: prefs.Window.Fullscreen,
		Background: config.MustColor(prefs.Background),
	}, front.Update, front.Draw, front.Close)

	cancel()
	<-watching
	app.Wait()
	return nil
}
