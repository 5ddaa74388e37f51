package main

import (
	"fmt"
	"os"

	"github.com/df07/go-sdf-raymarcher/pkg/config"
	"github.com/df07/go-sdf-raymarcher/pkg/imageio"
	"github.com/df07/go-sdf-raymarcher/pkg/log"
	"github.com/df07/go-sdf-raymarcher/pkg/renderer"
	"github.com/df07/go-sdf-raymarcher/pkg/scene"
	"github.com/df07/go-sdf-raymarcher/web/server"
	"github.com/urfave/cli"
)

var logger = log.New("sdfr")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	// The default version flag also claims -v
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "sdfr"
	app.Usage = "render signed distance field scenes with sphere tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Render one frame of a built-in scene. Settings come from the defaults, then
the optional YAML config file, then the command line flags.

The output format follows the file extension: .ppm (or none), .png or .bmp.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Usage: "YAML config file",
				},
				cli.StringFlag{
					Name:  "scene",
					Value: "default",
					Usage: "built-in scene name",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 1024,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 768,
					Usage: "frame height",
				},
				cli.Float64Flag{
					Name:  "fov",
					Value: 60,
					Usage: "vertical field of view in degrees",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers, 0 for one per CPU",
				},
				cli.IntFlag{
					Name:  "span",
					Value: 0,
					Usage: "pixels per work item, 0 for one row",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "out.ppm",
					Usage: "image filename for the rendered frame",
				},
				cli.BoolFlag{
					Name:  "stats",
					Usage: "print per-worker render statistics",
				},
			},
			Action: renderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: listScenes,
		},
		{
			Name:   "config",
			Usage:  "print the default configuration as YAML",
			Action: printConfig,
		},
		{
			Name:  "serve",
			Usage: "serve renders over HTTP",
			Description: `
Start an HTTP server with these endpoints:

  /api/render?scene=default&width=400&height=300&fov=60&format=png
  /api/scenes
  /api/health`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port",
					Value: 8080,
					Usage: "port to serve on",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers per request, 0 for one per CPU",
				},
			},
			Action: serve,
		},
	}
	return app
}

func setupLogging(ctx *cli.Context, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
	return nil
}

// loadConfig merges the defaults, the config file and any flags set on the
// command line, in that order
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := ctx.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if ctx.IsSet("scene") {
		cfg.Scene.Name = ctx.String("scene")
	}
	if ctx.IsSet("width") {
		cfg.Render.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Render.Height = ctx.Int("height")
	}
	if ctx.IsSet("fov") {
		cfg.Render.FOV = ctx.Float64("fov")
	}
	if ctx.IsSet("workers") {
		cfg.Render.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("span") {
		cfg.Render.SpanSize = ctx.Int("span")
	}
	if ctx.IsSet("out") {
		cfg.Output.Path = ctx.String("out")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// createScene builds a built-in scene and checks it is renderable
func createScene(name string) (*scene.Scene, error) {
	sc, err := scene.New(name)
	if err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Render a still frame.
func renderFrame(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if err := setupLogging(ctx, cfg.Log.Level); err != nil {
		return err
	}

	sc, err := createScene(cfg.Scene.Name)
	if err != nil {
		return err
	}

	rt, err := renderer.NewRaytracer(sc, cfg.RendererConfig())
	if err != nil {
		return err
	}

	logger.Noticef("rendering scene %q at %dx%d", sc.Name, cfg.Render.Width, cfg.Render.Height)
	img, stats := rt.Render()

	if err := imageio.WriteFile(cfg.Output.Path, img); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output.Path, err)
	}
	logger.Noticef("wrote %s in %s", cfg.Output.Path, stats.Duration)

	if ctx.Bool("stats") {
		stats.Table(ctx.App.Writer)
	}
	return nil
}

func listScenes(ctx *cli.Context) error {
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(ctx.App.Writer, "%-12s %s\n", info.Name, info.Description)
	}
	return nil
}

func printConfig(ctx *cli.Context) error {
	data, err := config.DefaultConfig().Marshal()
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(data)
	return err
}

func serve(ctx *cli.Context) error {
	if err := setupLogging(ctx, "notice"); err != nil {
		return err
	}
	logger.Noticef("serving renders on port %d", ctx.Int("port"))
	return server.NewServer(ctx.Int("port"), ctx.Int("workers")).Start()
}
