package lvlog

import "sync"

// LockFunc is a lock hook in callback form: fn(true, udata) acquires,
// fn(false, udata) releases.
type LockFunc func(lock bool, udata any)

// Locker adapts fn into a sync.Locker bound to udata.
func (fn LockFunc) Locker(udata any) sync.Locker {
	return &funcLocker{fn: fn, udata: udata}
}

type funcLocker struct {
	fn    LockFunc
	udata any
}

func (l *funcLocker) Lock()   { l.fn(true, l.udata) }
func (l *funcLocker) Unlock() { l.fn(false, l.udata) }

// lockBox lets an interface value sit behind an atomic.Pointer.
type lockBox struct{ sync.Locker }
