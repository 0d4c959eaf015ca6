// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"sync"

	"github.com/xrgo/engine/hw"
)

// WindowObserver is implemented by observers that track the focus
// of windows other than the main window.
type WindowObserver interface {
	OnWindowActivate(w hw.Window, active bool)
}

// Lifecycle broadcasts application activation changes to its
// observers. At most one of them is the graphics device; see
// AttachDevice.
type Lifecycle struct {
	mu        sync.Mutex
	observers []hw.Observer
	device    hw.Observer
}

var _ hw.Notifier = (*Lifecycle)(nil)

func NewLifecycle() *Lifecycle {
	return new(Lifecycle)
}

// Add registers o. Adding an observer twice has no effect.
func (l *Lifecycle) Add(o hw.Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.observers {
		if e == o {
			return
		}
	}
	l.observers = append(l.observers, o)
}

// Remove unregisters o.
func (l *Lifecycle) Remove(o hw.Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, e := range l.observers {
		if e == o {
			l.observers = append(l.observers[:i], l.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered observers.
func (l *Lifecycle) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.observers)
}

// AttachDevice registers the graphics device o. Only the first
// device is accepted until it detaches.
func (l *Lifecycle) AttachDevice(o hw.Observer) bool {
	l.mu.Lock()
	if l.device != nil {
		l.mu.Unlock()
		return false
	}
	l.device = o
	l.mu.Unlock()
	l.Add(o)
	return true
}

// DetachDevice unregisters the graphics device o. Other values of
// o are ignored.
func (l *Lifecycle) DetachDevice(o hw.Observer) {
	l.mu.Lock()
	if l.device != o {
		l.mu.Unlock()
		return
	}
	l.device = nil
	l.mu.Unlock()
	l.Remove(o)
}

// Activate calls OnAppActivate of every observer in registration
// order.
func (l *Lifecycle) Activate() {
	for _, o := range l.snapshot() {
		o.OnAppActivate()
	}
}

// Deactivate calls OnAppDeactivate of every observer in
// registration order.
func (l *Lifecycle) Deactivate() {
	for _, o := range l.snapshot() {
		o.OnAppDeactivate()
	}
}

// WindowActivate calls OnWindowActivate of every observer that
// implements WindowObserver.
func (l *Lifecycle) WindowActivate(w hw.Window, active bool) {
	for _, o := range l.snapshot() {
		if wo, ok := o.(WindowObserver); ok {
			wo.OnWindowActivate(w, active)
		}
	}
}

// snapshot lets observers unregister from their callbacks.
func (l *Lifecycle) snapshot() []hw.Observer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]hw.Observer(nil), l.observers...)
}
