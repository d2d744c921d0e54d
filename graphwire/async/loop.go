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
	"container/list"
	"sync"
)

// Queue schedules work for execution on the transport's I/O context.
// Implemented by the transport event loop, work scheduled from any goroutine
// runs serialized and in FIFO order.
type Queue interface {
	Schedule(work func())
}

// Loop is a Queue backed by a single goroutine. Used by embedders that have
// no event loop of their own and by tests. The queue is unbounded, the
// protocol provides no backpressure at this layer.
type Loop struct {
	mut    sync.Mutex
	cond   *sync.Cond
	queue  list.List // List[func()]
	closed bool
	done   chan struct{}
}

func NewLoop() *Loop {
	l := &Loop{done: make(chan struct{})}
	l.cond = sync.NewCond(&l.mut)
	go l.run()
	return l
}

// Schedule appends work to the queue. Scheduling on a closed loop is a no-op.
func (l *Loop) Schedule(work func()) {
	l.mut.Lock()
	defer l.mut.Unlock()
	if l.closed {
		return
	}
	l.queue.PushBack(work)
	l.cond.Signal()
}

func (l *Loop) run() {
	for {
		l.mut.Lock()
		for l.queue.Len() == 0 && !l.closed {
			l.cond.Wait()
		}
		e := l.queue.Front()
		if e == nil {
			// Closed and drained
			l.mut.Unlock()
			close(l.done)
			return
		}
		l.queue.Remove(e)
		l.mut.Unlock()
		e.Value.(func())()
	}
}

// Close stops the loop after all already scheduled work has run and waits
// for the goroutine to exit.
func (l *Loop) Close() {
	l.mut.Lock()
	if !l.closed {
		l.closed = true
		l.cond.Signal()
	}
	l.mut.Unlock()
	<-l.done
}
