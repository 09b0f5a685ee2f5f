package injector

import (
	"runtime"
	"strconv"
	"strings"
)

// goid returns the current goroutine ID, parsed from the "goroutine N [...]"
// header of its stack trace.
func goid() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	idField := strings.Fields(strings.TrimPrefix(string(buf[:n]), "goroutine "))[0]
	id, _ := strconv.ParseInt(idField, 10, 64)
	return id
}

// acquire takes c.mu for the calling goroutine and records it as owner.
// held is true when the caller already owns the lock, in which case release
// is a no-op.
func (c *Container) acquire() (release func(), held bool) {
	id := goid()
	if c.owner.Load() == id {
		return func() {}, true
	}

	c.mu.Lock()
	c.owner.Store(id)
	return func() {
		c.owner.Store(0)
		c.mu.Unlock()
	}, false
}
