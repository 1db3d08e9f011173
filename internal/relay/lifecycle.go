package relay

import "sync"

// Lifecycle is the state of one embedding: it starts empty every time an
// embedded application attaches to the session.
type Lifecycle struct {
	mu sync.Mutex

	sessionReadyHandled bool
	authSent            bool
	authConfirmed       bool
	addToBankInFlight   bool
	persistenceServices any
	recordID            string
}

// beginReady reports whether the ready signal should be handled, i.e. it is
// the first one of this lifecycle. It marks the signal as handled.
func (l *Lifecycle) beginReady() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sessionReadyHandled {
		return false
	}
	l.sessionReadyHandled = true
	return true
}

// resetReady allows a later ready signal to be handled again.
func (l *Lifecycle) resetReady() {
	l.mu.Lock()
	l.sessionReadyHandled = false
	l.mu.Unlock()
}

func (l *Lifecycle) markAuthSent() {
	l.mu.Lock()
	l.authSent = true
	l.mu.Unlock()
}

// confirmAuth records the application's acknowledgement of the identity
// message and reports whether one had been sent.
func (l *Lifecycle) confirmAuth() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.authConfirmed = true
	return l.authSent
}

// beginAddToBank reports whether an add-to-bank operation may start. Only
// one may run at a time.
func (l *Lifecycle) beginAddToBank() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.addToBankInFlight {
		return false
	}
	l.addToBankInFlight = true
	return true
}

func (l *Lifecycle) endAddToBank() {
	l.mu.Lock()
	l.addToBankInFlight = false
	l.mu.Unlock()
}

func (l *Lifecycle) setPersistenceServices(services any) {
	l.mu.Lock()
	l.persistenceServices = services
	l.mu.Unlock()
}

// RecordID returns the id of the user record loaded in this lifecycle, or an
// empty string before the record is known.
func (l *Lifecycle) RecordID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recordID
}

func (l *Lifecycle) setRecordID(id string) {
	if id == "" {
		return
	}
	l.mu.Lock()
	l.recordID = id
	l.mu.Unlock()
}

// LifecycleState is a point-in-time copy of the lifecycle flags.
type LifecycleState struct {
	SessionReadyHandled bool
	AuthSent            bool
	AuthConfirmed       bool
	AddToBankInFlight   bool
	PersistenceServices any
	RecordID            string
}

// State returns a copy of the lifecycle flags.
func (l *Lifecycle) State() LifecycleState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return LifecycleState{
		SessionReadyHandled: l.sessionReadyHandled,
		AuthSent:            l.authSent,
		AuthConfirmed:       l.authConfirmed,
		AddToBankInFlight:   l.addToBankInFlight,
		PersistenceServices: l.persistenceServices,
		RecordID:            l.recordID,
	}
}
