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

package stream

import (
	"container/list"

	"github.com/graphwire/graphwire-go-driver/graphwire/db"
)

// fifo buffers records between the I/O side and the consumer side, pushed at
// the tail and popped from the head in insertion order. Unbounded. All
// access goes through the handler mutex.
type fifo struct {
	l list.List
}

func (f *fifo) push(rec *db.Record) {
	f.l.PushBack(rec)
}

func (f *fifo) pop() *db.Record {
	e := f.l.Front()
	if e == nil {
		return nil
	}
	f.l.Remove(e)
	return e.Value.(*db.Record)
}

func (f *fifo) empty() bool {
	return f.l.Len() == 0
}
