package ardrone

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/golang/glog"
)

// errorLog folds the errors of a periodic loop into one warning per quiet period.
type errorLog struct {
	name      string
	debounced func(f func())

	mu    sync.Mutex
	count int
	last  error
}

func newErrorLog(name string, quiet time.Duration) *errorLog {
	return &errorLog{
		name:      name,
		debounced: debounce.New(quiet),
	}
}

// Report records err and schedules a flush once errors stop arriving.
func (l *errorLog) Report(err error) {
	l.mu.Lock()
	l.count++
	l.last = err
	l.mu.Unlock()
	l.debounced(l.flush)
}

func (l *errorLog) flush() {
	l.mu.Lock()
	n, err := l.count, l.last
	l.count, l.last = 0, nil
	l.mu.Unlock()

	if n == 0 {
		return
	}
	glog.Warningf("%s: %d error(s), last: %v", l.name, n, err)
}
