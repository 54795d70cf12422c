/*
© 2026–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package qgrid

import (
	"sync"
	"sync/atomic"
)

// Subject is an opaque authenticated principal. The query core never
// inspects it — it only carries the value through to an
// AdmissionFilter (qindex.ConditionalIndex) that does.
type Subject any

// currentSubject holds the process-wide current subject. Go has no
// per-goroutine local storage, so the "ambient caller identity for the
// duration of a privileged call" idiom is modeled with an explicit
// scoped-acquisition guard instead: WithSubject serializes acquisition
// of the single "current" slot across goroutines and CurrentSubject
// reads whatever is currently installed.
var (
	acquireMu      sync.Mutex // serializes WithSubject spans, one active at a time
	currentSubject atomic.Value
	everSetSubject atomic.Bool
)

type subjectBox struct {
	subject Subject
}

// WithSubject installs subject as the current subject for the duration
// of fn, then restores the prior state. Concurrent WithSubject calls
// from distinct goroutines serialize on acquisition: there is a single
// current slot.
func WithSubject(subject Subject, fn func()) {
	acquireMu.Lock()
	defer acquireMu.Unlock()

	var previous, hadPrevious = currentSubject.Load().(subjectBox)
	currentSubject.Store(subjectBox{subject: subject})
	everSetSubject.Store(true)
	defer func() {
		if hadPrevious {
			currentSubject.Store(previous)
		} else {
			currentSubject.Store(subjectBox{})
		}
	}()

	fn()
}

// CurrentSubject returns the subject installed by the active
// WithSubject span, or ok==false if none is active.
func CurrentSubject() (subject Subject, ok bool) {
	var box, _ = currentSubject.Load().(subjectBox)
	subject = box.subject
	ok = subject != nil
	return
}

// EverAuthenticated reports whether WithSubject has ever been invoked
// in this process, independent of whether a span is currently active.
func EverAuthenticated() bool { return everSetSubject.Load() }
