// SPDX-License-Identifier: Unlicense OR MIT

package hw

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/xrgo/engine/gpu/gl"
)

// ErrUploaderClosed is returned by Uploader.Do after Close.
var ErrUploaderClosed = errors.New("hw: uploader closed")

// Uploader runs GPU resource creation on the helper context. It
// owns an OS thread with the helper context current for its whole
// lifetime, so at most one Uploader exists per device.
//
// Objects created by a job are visible to the primary context once
// Do returns: every job is followed by glFinish on the helper
// context. Objects must not be used by the primary context before
// that point.
type Uploader struct {
	d      *Device
	jobs   chan uploadJob
	done   chan struct{}
	exited chan struct{}
	once   sync.Once
}

type uploadJob struct {
	f    func(f gl.Functions) error
	errc chan error
}

// NewUploader starts the helper thread. It fails if the device has
// no helper context or another Uploader is open.
func (d *Device) NewUploader() (*Uploader, error) {
	if d.helper == nil || d.funcs == nil {
		return nil, errors.New("hw: device has no helper context")
	}
	d.uploaderMu.Lock()
	defer d.uploaderMu.Unlock()
	if d.uploader != nil {
		return nil, errors.New("hw: helper context already in use")
	}
	u := &Uploader{
		d:      d,
		jobs:   make(chan uploadJob),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	ready := make(chan error)
	go u.run(ready)
	if err := <-ready; err != nil {
		return nil, err
	}
	d.uploader = u
	return u, nil
}

func (u *Uploader) run(ready chan<- error) {
	defer close(u.exited)
	// The current context is bound to the OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if err := u.d.MakeContextCurrent(HelperContext); err != nil {
		u.d.log.Error("! Could not make helper context current", "err", err)
		ready <- err
		return
	}
	defer u.d.MakeContextCurrent(NoContext)
	ready <- nil
	funcs := u.d.funcs
	for {
		select {
		case j := <-u.jobs:
			err := j.f(funcs)
			funcs.Finish()
			j.errc <- err
		case <-u.done:
			return
		}
	}
}

// Do runs f on the helper thread and waits for it and the GPU to
// finish. If ctx is done first, Do returns ctx.Err(); a job that
// already started still runs to completion.
func (u *Uploader) Do(ctx context.Context, f func(f gl.Functions) error) error {
	j := uploadJob{f: f, errc: make(chan error, 1)}
	select {
	case u.jobs <- j:
	case <-u.done:
		return ErrUploaderClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-j.errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close unbinds the helper context and stops the thread. It waits
// for a running job. Close may be called from any goroutine.
func (u *Uploader) Close() {
	u.once.Do(func() {
		close(u.done)
		<-u.exited
		u.d.uploaderMu.Lock()
		if u.d.uploader == u {
			u.d.uploader = nil
		}
		u.d.uploaderMu.Unlock()
	})
}
