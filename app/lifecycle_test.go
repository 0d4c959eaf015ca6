// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"reflect"
	"testing"
)

func TestLifecycleBroadcast(t *testing.T) {
	l := NewLifecycle()
	var order []int
	a := &funcObserver{activate: func() { order = append(order, 1) }}
	b := &funcObserver{activate: func() { order = append(order, 2) }}
	l.Add(a)
	l.Add(b)
	l.Add(a)
	if n := l.Len(); n != 2 {
		t.Fatalf("got %d observers, expected 2", n)
	}
	l.Activate()
	if want := []int{1, 2}; !reflect.DeepEqual(order, want) {
		t.Errorf("got order %v, expected %v", order, want)
	}
	l.Remove(a)
	order = nil
	l.Activate()
	if want := []int{2}; !reflect.DeepEqual(order, want) {
		t.Errorf("got order %v after Remove, expected %v", order, want)
	}
}

func TestLifecycleAttachDevice(t *testing.T) {
	l := NewLifecycle()
	first, second := new(observer), new(observer)
	if !l.AttachDevice(first) {
		t.Fatal("first device rejected")
	}
	if l.AttachDevice(second) {
		t.Error("second device accepted")
	}
	if n := l.Len(); n != 1 {
		t.Errorf("got %d observers, expected 1", n)
	}
	// Detaching a device that isn't attached changes nothing.
	l.DetachDevice(second)
	l.Deactivate()
	if want := []string{"deactivate"}; !reflect.DeepEqual(first.events, want) {
		t.Errorf("got events %v, expected %v", first.events, want)
	}
	if len(second.events) != 0 {
		t.Errorf("unregistered device got events %v", second.events)
	}

	l.DetachDevice(first)
	if n := l.Len(); n != 0 {
		t.Errorf("got %d observers after detach, expected 0", n)
	}
	if !l.AttachDevice(second) {
		t.Error("device rejected after the first detached")
	}
}

func TestLifecycleRemoveDuringBroadcast(t *testing.T) {
	l := NewLifecycle()
	calls := 0
	var self *funcObserver
	self = &funcObserver{deactivate: func() {
		calls++
		l.Remove(self)
	}}
	other := new(observer)
	l.Add(self)
	l.Add(other)
	l.Deactivate()
	l.Deactivate()
	if calls != 1 {
		t.Errorf("got %d calls, expected 1", calls)
	}
	if want := []string{"deactivate", "deactivate"}; !reflect.DeepEqual(other.events, want) {
		t.Errorf("got events %v, expected %v", other.events, want)
	}
}

type funcObserver struct {
	activate   func()
	deactivate func()
}

func (o *funcObserver) OnAppActivate() {
	if o.activate != nil {
		o.activate()
	}
}

func (o *funcObserver) OnAppDeactivate() {
	if o.deactivate != nil {
		o.deactivate()
	}
}
