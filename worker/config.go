package worker

import "runtime"

import s "github.com/bnclabs/gosettings"

// Defaultsettings for worker pool.
//
// "threads" (int64, default: number of CPUs),
//      Number of workers draining the task queue.
//
// "queuesize" (int64, default: 64),
//      Initial capacity of the task queue. The queue grows without
//      bound, this only avoids early reallocations.
//
func Defaultsettings() s.Settings {
	return s.Settings{
		"threads":   int64(runtime.NumCPU()),
		"queuesize": int64(64),
	}
}
