// Package worker implement a bounded pool of workers draining one
// FIFO task queue, used to move blocking or CPU-bound work off the
// caller's path. Tasks are fire-and-forget closures, executed by
// exactly one worker, outside the queue lock. A pool has no stop
// button, it runs until the process exits.
package worker
