/*
 * Copyright (c) "Graphwire"
 * Graphwire Technologies [https://graphwire.io]
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package async

import (
	"context"
	"sync"
)

// Promise is the producing side of a single-shot boolean Future. It is
// resolved at most once, by whichever of the racing producer side events
// fires first, further resolutions are ignored.
type Promise struct {
	fut  *Future
	once sync.Once
}

// Future is the consuming side of a Promise. It never resolves
// spontaneously, only through the Promise.
type Future struct {
	done chan struct{}
	val  bool
	err  error
}

func NewPromise() *Promise {
	return &Promise{fut: &Future{done: make(chan struct{})}}
}

// Succeed resolves the future with a value.
func (p *Promise) Succeed(val bool) {
	p.once.Do(func() {
		p.fut.val = val
		close(p.fut.done)
	})
}

// Fail resolves the future with an error.
func (p *Promise) Fail(err error) {
	p.once.Do(func() {
		p.fut.err = err
		close(p.fut.done)
	})
}

func (p *Promise) Future() *Future {
	return p.fut
}

// Done returns a channel that is closed when the future is resolved, for
// select based consumption.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks the calling goroutine until the future is resolved or the
// context expires. An abandoned future requires no cleanup, its resolution
// is simply never observed.
func (f *Future) Await(ctx context.Context) (bool, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
