// Package bg implements the background loop that runs the submitted jobs
// one after another.
package bg

import (
	"context"
	"errors"
	"fmt"
	"runtime/trace"
	"sync"

	"github.com/google/uuid"
	"github.com/rusq/dlog"
)

const defQueueSz = 16

var (
	// ErrStopped is returned by Submit when the loop is not running.
	ErrStopped = errors.New("background loop is stopped")
	// ErrPanic is returned by the job that panicked.
	ErrPanic = errors.New("job panicked")
)

// StopFunc cancels the running jobs and waits until the loop exits.
type StopFunc func() error

type loopOptions struct {
	ctx     context.Context
	queueSz int
}

// Option for Start.
type Option interface {
	apply(o *loopOptions)
}

type fnOption func(o *loopOptions)

func (f fnOption) apply(o *loopOptions) {
	f(o)
}

// WithContext sets base context for the jobs.
func WithContext(ctx context.Context) Option {
	return fnOption(func(o *loopOptions) {
		o.ctx = ctx
	})
}

// WithQueueSize sets the number of jobs that can wait in the queue before
// Submit blocks.
func WithQueueSize(n int) Option {
	return fnOption(func(o *loopOptions) {
		if n > 0 {
			o.queueSz = n
		}
	})
}

// runner is the type-erased job.
type runner interface {
	run()
	abort(err error)
}

// Loop runs jobs sequentially in a single goroutine.
type Loop struct {
	ctx   context.Context
	queue chan runner

	mu      sync.RWMutex
	stopped bool
}

// Start starts the loop in background.
func Start(options ...Option) (*Loop, StopFunc) {
	opt := &loopOptions{
		ctx:     context.Background(),
		queueSz: defQueueSz,
	}
	for _, o := range options {
		o.apply(opt)
	}

	ctx, cancel := context.WithCancel(opt.ctx)
	l := &Loop{
		ctx:   ctx,
		queue: make(chan runner, opt.queueSz),
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.loop(ctx)
	}()

	var once sync.Once
	stopFn := func() error {
		once.Do(func() {
			cancel()
			l.mu.Lock()
			l.stopped = true
			close(l.queue)
			l.mu.Unlock()
		})
		<-done
		return nil
	}
	return l, stopFn
}

func (l *Loop) loop(ctx context.Context) {
	for r := range l.queue {
		if err := ctx.Err(); err != nil {
			r.abort(err)
			continue
		}
		r.run()
	}
}

// Submit schedules fn to run on the loop.  It blocks if the queue is full,
// until there's space in the queue or ctx is cancelled.  Cancelling ctx
// cancels the job.
func Submit[T any](ctx context.Context, l *Loop, name string, fn func(ctx context.Context) (T, error)) (*Job[T], error) {
	j := newJob(l.ctx, name, fn)
	stop := context.AfterFunc(ctx, j.Cancel)
	j.release = func() { stop() }

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.stopped {
		j.discard()
		return nil, ErrStopped
	}
	select {
	case l.queue <- j:
	case <-l.ctx.Done():
		j.discard()
		return nil, ErrStopped
	case <-ctx.Done():
		j.discard()
		return nil, ctx.Err()
	}
	dlog.Debugf("job %s (%s) submitted", j.ID, name)
	return j, nil
}

// Job is the unit of work executed by the Loop.
type Job[T any] struct {
	ID   string
	Name string

	ctx     context.Context
	cancel  context.CancelFunc
	release func()
	fn      func(ctx context.Context) (T, error)

	done   chan struct{}
	result T
	err    error
}

func newJob[T any](parent context.Context, name string, fn func(ctx context.Context) (T, error)) *Job[T] {
	ctx, cancel := context.WithCancel(parent)
	return &Job[T]{
		ID:      uuid.NewString(),
		Name:    name,
		ctx:     ctx,
		cancel:  cancel,
		release: func() {},
		fn:      fn,
		done:    make(chan struct{}),
	}
}

func (j *Job[T]) run() {
	defer j.finish()
	if err := j.ctx.Err(); err != nil {
		j.err = err
		return
	}

	ctx, task := trace.NewTask(j.ctx, j.Name)
	defer task.End()

	defer func() {
		if r := recover(); r != nil {
			j.err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	j.result, j.err = j.fn(ctx)
}

func (j *Job[T]) abort(err error) {
	j.err = err
	j.finish()
}

func (j *Job[T]) finish() {
	j.release()
	j.cancel()
	close(j.done)
	dlog.Debugf("job %s (%s) finished: %v", j.ID, j.Name, j.err)
}

// discard releases the resources of the job that was never queued.
func (j *Job[T]) discard() {
	j.release()
	j.cancel()
}

// Cancel requests the job cancellation.  If the job has not started yet, it
// will not run.
func (j *Job[T]) Cancel() {
	j.cancel()
}

// Done returns a channel that is closed when the job finishes.
func (j *Job[T]) Done() <-chan struct{} {
	return j.done
}

// Wait waits for the job to finish and returns its result.
func (j *Job[T]) Wait() (T, error) {
	<-j.done
	return j.result, j.err
}
