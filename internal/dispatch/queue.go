package dispatch

import "context"

// Queue is a buffered single-consumer queue of closures. Any goroutine
// may Post; exactly one goroutine should call Next or Drain and is then
// the only one running the posted closures.
type Queue struct {
	ch chan func()
}

// NewQueue returns a queue holding up to size pending closures. Post
// blocks while the queue is full.
func NewQueue(size int) *Queue {
	return &Queue{ch: make(chan func(), size)}
}

// Post enqueues fn. It satisfies Poster.
func (q *Queue) Post(fn func()) {
	q.ch <- fn
}

// Next waits for one closure and runs it on the calling goroutine.
// It returns false if ctx ends first.
func (q *Queue) Next(ctx context.Context) bool {
	select {
	case fn := <-q.ch:
		fn()
		return true
	case <-ctx.Done():
		return false
	}
}

// Drain runs every closure already queued without waiting for more and
// returns how many ran.
func (q *Queue) Drain() int {
	n := 0
	for {
		select {
		case fn := <-q.ch:
			fn()
			n++
		default:
			return n
		}
	}
}

// Len reports how many closures are waiting.
func (q *Queue) Len() int {
	return len(q.ch)
}
