package worker

import "fmt"
import "sync"
import "sync/atomic"

import "github.com/bnclabs/golog"
import s "github.com/bnclabs/gosettings"

// Task is a deferred unit of work. No result comes back through the
// queue, failure handling is the task's own business.
type Task func()

// Pool of workers sharing one FIFO queue. The queue and its
// condition are the only shared state, guarded by the mutex; task
// execution always happens outside the critical section so a slow
// task never blocks producers or other workers.
type Pool struct {
	name    string
	threads int64

	mu       sync.Mutex
	nonempty *sync.Cond
	queue    []Task

	// statistics
	n_submitted int64
	n_executed  int64 // updated by workers, read atomically
	logprefix   string
}

// NewPool spawn "threads" workers waiting for tasks.
func NewPool(name string, setts s.Settings) *Pool {
	p := &Pool{name: name}
	p.logprefix = fmt.Sprintf("POOL [%s]", name)
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	p.threads = setts.Int64("threads")
	if p.threads < 1 {
		panic(fmt.Errorf("%v %v threads", p.logprefix, p.threads))
	}
	p.queue = make([]Task, 0, setts.Int64("queuesize"))
	p.nonempty = sync.NewCond(&p.mu)

	for i := int64(0); i < p.threads; i++ {
		go p.run()
	}
	log.Infof("%v started %v workers ...\n", p.logprefix, p.threads)
	return p
}

// Submit append the task to the queue and wake up one waiting
// worker. Never blocks on queue capacity and never times out.
func (p *Pool) Submit(task Task) {
	p.mu.Lock()
	p.queue = append(p.queue, task)
	p.n_submitted++
	p.nonempty.Signal()
	p.mu.Unlock()
}

// Stats return a snapshot of pool counters.
func (p *Pool) Stats() map[string]interface{} {
	p.mu.Lock()
	stats := map[string]interface{}{
		"threads":     p.threads,
		"n_submitted": p.n_submitted,
		"n_executed":  atomic.LoadInt64(&p.n_executed),
		"n_pending":   int64(len(p.queue)),
	}
	p.mu.Unlock()
	return stats
}

func (p *Pool) run() {
	for {
		p.mu.Lock()
		for len(p.queue) == 0 {
			p.nonempty.Wait()
		}
		task := p.queue[0]
		p.queue[0] = nil // free the slot for the collector
		p.queue = p.queue[1:]
		p.mu.Unlock()

		task()
		atomic.AddInt64(&p.n_executed, 1)
	}
}
