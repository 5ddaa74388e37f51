package renderer

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/integrator"
	"github.com/df07/go-sdf-raymarcher/pkg/log"
	"github.com/df07/go-sdf-raymarcher/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	Width    int     // Image width in pixels
	Height   int     // Image height in pixels
	FOV      float64 // Vertical field of view in radians
	Workers  int     // Number of workers, 0 for one per CPU
	SpanSize int     // Pixels per task, 0 for one image row
	March    core.MarchConfig
}

// DefaultConfig returns the standard 1024x768 render at a 60 degree field
// of view
func DefaultConfig() Config {
	return Config{
		Width:    1024,
		Height:   768,
		FOV:      math.Pi / 3,
		Workers:  0,
		SpanSize: 0,
		March:    core.DefaultMarchConfig(),
	}
}

// Validate checks that the configuration describes a renderable image
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if !(c.FOV > 0 && c.FOV < math.Pi) {
		return fmt.Errorf("%w: %g", ErrInvalidFOV, c.FOV)
	}
	if c.SpanSize < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSpanSize, c.SpanSize)
	}
	return nil
}

// Raytracer renders a scene into an image using a pool of workers
type Raytracer struct {
	scene         *scene.Scene
	config        Config
	camera        *Camera
	newIntegrator IntegratorFactory
	logger        log.Logger
}

// NewRaytracer creates a raytracer that shades with a Whitted integrator
func NewRaytracer(sc *scene.Scene, config Config) (*Raytracer, error) {
	if sc == nil {
		return nil, ErrNilScene
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	rt := &Raytracer{
		scene:  sc,
		config: config,
		camera: NewCamera(config.Width, config.Height, config.FOV),
		logger: log.New("renderer"),
	}
	rt.newIntegrator = func() integrator.Integrator {
		return integrator.NewWhitted(sc, config.March)
	}
	return rt, nil
}

// SetIntegratorFactory replaces the integrator each worker is given
func (rt *Raytracer) SetIntegratorFactory(factory IntegratorFactory) {
	rt.newIntegrator = factory
}

// Camera returns the camera primary rays are generated from
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// RenderFramebuffer shades every pixel in linear radiance
func (rt *Raytracer) RenderFramebuffer() (*Framebuffer, RenderStats) {
	width, height := rt.config.Width, rt.config.Height
	spanSize := rt.config.SpanSize
	if spanSize == 0 {
		spanSize = width
	}

	fb := NewFramebuffer(width, height)
	spans := SplitSpans(width*height, spanSize)
	pool := NewWorkerPool(rt.camera, fb, rt.newIntegrator, rt.config.Workers, len(spans))

	rt.logger.Infof("rendering %q at %dx%d: %d spans on %d workers",
		rt.scene.Name, width, height, len(spans), pool.GetNumWorkers())

	start := time.Now()
	pool.Start()
	for _, span := range spans {
		pool.SubmitTask(span)
	}
	for i := 0; i < len(spans); i++ {
		result, _ := pool.GetResult()
		rt.logger.Debugf("span %d done by worker %d: %d pixels in %s",
			result.TaskID, result.WorkerID, result.Pixels, result.Duration)
	}
	pool.Stop()

	stats := newRenderStats(width, height, len(spans), time.Since(start), pool.WorkerStats())
	if stats.Counters.DegenerateNormals > 0 {
		rt.logger.Warningf("%d hits had no surface normal", stats.Counters.DegenerateNormals)
	}
	rt.logger.Infof("render finished in %s", stats.Duration)
	return fb, stats
}

// Render shades every pixel and returns the tone mapped image
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	fb, stats := rt.RenderFramebuffer()
	return fb.Image(), stats
}
