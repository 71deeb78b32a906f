// Package dispatch moves blocking work off the UI goroutine and hands the
// outcome back to it.
//
// Each call to Go starts one goroutine. When the work finishes, its
// completion callback is not run on that goroutine; it is handed to a
// Poster, which queues it for the single goroutine allowed to touch
// widgets. In the application the Poster is fyne.Do; in tests it is a
// Queue drained by the test itself.
package dispatch

import (
	"context"
	"fmt"
	"sync"
)

// Poster schedules fn to run on the UI goroutine.
type Poster func(fn func())

// Dispatcher starts background tasks. There is no cancellation per task,
// no timeout and no limit on how many run at once; ctx is only cancelled
// when the whole application shuts down.
type Dispatcher struct {
	ctx  context.Context
	post Poster
	wg   sync.WaitGroup
}

// New returns a Dispatcher whose tasks receive ctx and whose completions
// go through post.
func New(ctx context.Context, post Poster) *Dispatcher {
	return &Dispatcher{ctx: ctx, post: post}
}

// Go runs work on a new goroutine and posts done(result, err) once it
// returns. A panic inside work is recovered and reported as err, so a
// failing task never takes the process down.
func Go[T any](d *Dispatcher, work func(context.Context) (T, error), done func(T, error)) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		result, err := run(d.ctx, work)
		d.post(func() { done(result, err) })
	}()
}

// Wait blocks until every started task has posted its completion.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func run[T any](ctx context.Context, work func(context.Context) (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("background task panicked: %v", r)
		}
	}()
	return work(ctx)
}
