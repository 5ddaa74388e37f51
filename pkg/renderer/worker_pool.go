package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-sdf-raymarcher/pkg/integrator"
)

// SpanTask is a contiguous range [Start, End) of the flat pixel index
type SpanTask struct {
	Start  int
	End    int
	TaskID int // For deterministic ordering
}

// SpanResult contains the result from rendering a span
type SpanResult struct {
	TaskID   int
	WorkerID int
	Pixels   int
	Duration time.Duration
}

// IntegratorFactory creates the integrator owned by a single worker
type IntegratorFactory func() integrator.Integrator

// WorkerPool manages parallel span rendering into a shared framebuffer.
// Spans never overlap, so workers write the framebuffer without locking.
type WorkerPool struct {
	taskQueue   chan SpanTask
	resultQueue chan SpanResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual span rendering tasks
type Worker struct {
	ID          int
	integrator  integrator.Integrator
	camera      *Camera
	framebuffer *Framebuffer
	taskQueue   chan SpanTask
	resultQueue chan SpanResult

	// Only read after the pool has stopped
	spans  int
	pixels int
	busy   time.Duration
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// queueSize bounds the task and result buffers; submitting more tasks than
// that before draining results blocks.
func NewWorkerPool(camera *Camera, fb *Framebuffer, newIntegrator IntegratorFactory, numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan SpanTask, queueSize),
		resultQueue: make(chan SpanResult, queueSize),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			integrator:  newIntegrator(),
			camera:      camera,
			framebuffer: fb,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue and waits for every worker to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a span task to the worker pool
func (wp *WorkerPool) SubmitTask(task SpanTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed span result
func (wp *WorkerPool) GetResult() (SpanResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// WorkerStats reports per-worker totals. Call it only after Stop.
func (wp *WorkerPool) WorkerStats() []WorkerStats {
	stats := make([]WorkerStats, 0, len(wp.workers))
	for _, w := range wp.workers {
		stats = append(stats, WorkerStats{
			WorkerID: w.ID,
			Spans:    w.spans,
			Pixels:   w.pixels,
			Busy:     w.busy,
			Counters: w.integrator.Counters(),
		})
	}
	return stats
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		start := time.Now()
		w.renderSpan(task)
		elapsed := time.Since(start)

		pixels := task.End - task.Start
		w.spans++
		w.pixels += pixels
		w.busy += elapsed

		w.resultQueue <- SpanResult{
			TaskID:   task.TaskID,
			WorkerID: w.ID,
			Pixels:   pixels,
			Duration: elapsed,
		}
	}
}

// renderSpan shades every pixel of the span into the framebuffer
func (w *Worker) renderSpan(task SpanTask) {
	width := w.framebuffer.Width
	for idx := task.Start; idx < task.End; idx++ {
		i, j := idx%width, idx/width
		w.framebuffer.Pixels[idx] = w.integrator.RayColor(w.camera.RayFor(i, j))
	}
}

// SplitSpans divides the flat index range [0, total) into contiguous spans of
// at most size pixels
func SplitSpans(total, size int) []SpanTask {
	if total <= 0 || size <= 0 {
		return nil
	}
	spans := make([]SpanTask, 0, (total+size-1)/size)
	for start := 0; start < total; start += size {
		spans = append(spans, SpanTask{
			Start:  start,
			End:    min(start+size, total),
			TaskID: len(spans),
		})
	}
	return spans
}
