// Package dispatch runs jobs on a pool of workers and feeds their outputs
// back into the status fan-out.
package dispatch

import (
	"context"
	"iter"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fisher-hooks/fisher/pkg/events"
	"github.com/fisher-hooks/fisher/pkg/jobs"
	"github.com/fisher-hooks/fisher/pkg/logger"
)

const (
	// DefaultWorkers is used when the configured worker count is not positive.
	DefaultWorkers = 2
	queueSize      = 64
)

// Processor runs a single job to completion.
type Processor interface {
	Process(job *jobs.Job) (events.JobOutput, error)
}

// StatusFanOut turns a job output into the status jobs it triggers.
type StatusFanOut interface {
	JobsAfterOutput(output events.JobOutput) (iter.Seq[*jobs.Job], bool)
}

// ResultHandler receives the outcome of every processed job. It is called
// from worker goroutines.
type ResultHandler func(job *jobs.Job, output events.JobOutput, err error)

// Dispatcher is an in-memory job queue served by a fixed number of workers.
// Jobs are lost when the process exits.
type Dispatcher struct {
	processor Processor
	fanOut    StatusFanOut
	logger    logger.Logger
	workers   int
	onResult  ResultHandler

	queue   chan *jobs.Job
	pending sync.WaitGroup

	mu        sync.Mutex
	closed    bool
	closing   chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
	runOnce   sync.Once
}

// NewDispatcher creates a dispatcher running jobs on processor and queueing
// the status jobs returned by fanOut.
func NewDispatcher(processor Processor, fanOut StatusFanOut, workers int) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Dispatcher{
		processor: processor,
		fanOut:    fanOut,
		logger:    logger.NewNoopLogger(),
		workers:   workers,
		queue:     make(chan *jobs.Job, queueSize),
		closing:   make(chan struct{}),
		stopped:   make(chan struct{}),
	}
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dispatcher) WithLogger(l logger.Logger) *Dispatcher {
	d.logger = l
	return d
}

// WithResultHandler sets the callback invoked after each job.
func (d *Dispatcher) WithResultHandler(handler ResultHandler) *Dispatcher {
	d.onResult = handler
	return d
}

// Queue schedules job. It blocks while the queue is full and fails once
// Close was called or Run returned.
func (d *Dispatcher) Queue(job *jobs.Job) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrClosed
	}
	d.pending.Add(1)
	d.mu.Unlock()

	if !d.send(job) {
		return ErrClosed
	}
	return nil
}

// Close stops accepting new jobs. Run returns once the jobs already queued,
// and the status jobs they trigger, are done.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		d.mu.Unlock()
		close(d.closing)
	})
}

// Run serves the queue until Close drained it or ctx is done. A job already
// running when ctx is cancelled is left to finish. Run must be called once.
func (d *Dispatcher) Run(ctx context.Context) error {
	err := ErrAlreadyRunning
	d.runOnce.Do(func() {
		err = d.run(ctx)
	})
	return err
}

func (d *Dispatcher) run(ctx context.Context) error {
	drained := make(chan struct{})
	go func() {
		select {
		case <-d.closing:
			d.pending.Wait()
			close(drained)
		case <-d.stopped:
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < d.workers; i++ {
		g.Go(func() error {
			return d.work(gctx, drained)
		})
	}

	d.logger.Debugf("Dispatcher started with %d workers", d.workers)
	err := g.Wait()

	close(d.stopped)
	d.discard()
	return err
}

// discard drops the jobs left in the queue after the workers stopped.
func (d *Dispatcher) discard() {
	for {
		select {
		case job := <-d.queue:
			d.logger.Debugf("Dropping queued hook %s", job.HookName())
			d.pending.Done()
		default:
			return
		}
	}
}

func (d *Dispatcher) work(ctx context.Context, drained <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-drained:
			return nil
		case job := <-d.queue:
			d.handle(job)
		}
	}
}

func (d *Dispatcher) handle(job *jobs.Job) {
	defer d.pending.Done()

	output, err := d.processor.Process(job)
	if err != nil {
		d.logger.Errorf("Hook %s failed: %v", job.HookName(), err)
	} else {
		d.logger.Debugf("Hook %s completed", job.HookName())
	}

	if d.onResult != nil {
		d.onResult(job, output, err)
	}

	next, ok := d.fanOut.JobsAfterOutput(output)
	if !ok {
		return
	}
	for statusJob := range next {
		// The parent job is still pending, so the counter cannot reach zero here.
		d.pending.Add(1)
		go d.send(statusJob)
	}
}

// send hands job to the workers, giving up if Run has returned.
func (d *Dispatcher) send(job *jobs.Job) bool {
	select {
	case d.queue <- job:
		return true
	case <-d.stopped:
		d.pending.Done()
		return false
	}
}
