/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qindex

import (
	"sync"
	"time"

	"github.com/haraldrudell/gridquery/plog"
)

// defaultQuietPeriod is how long a rate-limited warning window stays
// open before it resets.
const defaultQuietPeriod = time.Minute

// rateLimitedLogger emits at most one warning per quiet-period window,
// tracking the first log time in the window and how many events were
// suppressed since.
type rateLimitedLogger struct {
	log         *plog.LogInstance
	quietPeriod time.Duration

	lock          sync.Mutex
	firstLogTime  time.Time
	countInWindow int
}

func newRateLimitedLogger() (rl *rateLimitedLogger) {
	return &rateLimitedLogger{log: plog.NewLog(), quietPeriod: defaultQuietPeriod}
}

// warnMissingPosting logs that key was expected but absent from the
// inverse index posting for value, at most once per quiet-period window.
func (rl *rateLimitedLogger) warnMissingPosting(indexLabel string, value any, key any) {
	rl.lock.Lock()
	defer rl.lock.Unlock()

	var now = time.Now()
	if rl.firstLogTime.IsZero() || now.Sub(rl.firstLogTime) > rl.quietPeriod {
		rl.firstLogTime = now
		rl.countInWindow = 0
		rl.log.Logw(
			"qindex %s: key %v missing from expected posting %v (suppressing further identical warnings for %s)",
			indexLabel, key, value, rl.quietPeriod,
		)
	}
	rl.countInWindow++
}
