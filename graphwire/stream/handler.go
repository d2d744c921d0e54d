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
	"sync"

	"github.com/graphwire/graphwire-go-driver/graphwire/async"
	"github.com/graphwire/graphwire-go-driver/graphwire/db"
	"github.com/graphwire/graphwire-go-driver/graphwire/log"
)

// Connection is the external resource owning the socket the stream arrives
// on. Released by the handler exactly once when the stream reaches a
// terminal state.
type Connection interface {
	Release()
}

// KeySource provides the ordered field name list of a result, shared by
// every record of that result. Owned by the run machinery since the names
// arrive with the statement response, not with the records.
type KeySource interface {
	Keys() []string
}

// Handler receives protocol events for one result stream on the I/O context
// and serves them to the consumer as a pull based record stream.
//
// The protocol entry points OnRecord/OnSuccess/OnFailure are invoked only by
// the transport, in strict order: zero or more OnRecord, then exactly one of
// OnSuccess/OnFailure, never anything after that. The consumer API is
// invoked only by the consumer. One mutex guards the buffer, the terminal
// state, the summary and the waiter slot, so everything written on the I/O
// side is published to the consumer side. In particular the waiter slot must
// never be checked and installed without mutual exclusion, a resolve
// sneaking in between the two is a lost wakeup.
type Handler struct {
	keys  KeySource
	conn  Connection
	queue async.Queue
	log   log.Logger
	logId string

	mut       sync.Mutex
	buf       fifo
	waiter    *async.Promise
	sum       *db.Summary
	err       error
	completed bool
}

// NewHandler creates a handler for one result stream. conn may be nil when
// the stream does not own a connection to release.
func NewHandler(keys KeySource, conn Connection, queue async.Queue, logId string, logger log.Logger) *Handler {
	return &Handler{
		keys:  keys,
		conn:  conn,
		queue: queue,
		log:   logger,
		logId: logId,
	}
}

// OnRecord buffers a record built from the shared key list and the received
// values. I/O context only.
func (h *Handler) OnRecord(values []interface{}) {
	rec := &db.Record{Keys: h.keys.Keys(), Values: values}
	h.mut.Lock()
	h.buf.push(rec)
	waiter := h.takeWaiterLocked()
	h.mut.Unlock()

	if waiter != nil {
		waiter.Succeed(true)
	}
}

// OnSuccess completes the stream with the received summary metadata. A
// decode failure is a stream failure, never a silent partial summary. I/O
// context only.
func (h *Handler) OnSuccess(meta map[string]interface{}) {
	sum, err := extractSummary(meta)
	if err != nil {
		h.OnFailure(err)
		return
	}

	h.mut.Lock()
	h.sum = sum
	h.completed = true
	hasMoreRecords := !h.buf.empty()
	waiter := h.takeWaiterLocked()
	conn := h.takeConnectionLocked()
	h.mut.Unlock()

	if conn != nil {
		conn.Release()
	}
	if waiter != nil {
		waiter.Succeed(hasMoreRecords)
	}
	h.log.Debugf(log.Stream, h.logId, "Stream completed")
}

// OnFailure fails the stream. Records buffered before the failure remain
// drainable. I/O context only.
func (h *Handler) OnFailure(err error) {
	h.mut.Lock()
	h.err = err
	h.completed = true
	waiter := h.takeWaiterLocked()
	conn := h.takeConnectionLocked()
	h.mut.Unlock()

	if conn != nil {
		conn.Release()
	}
	if waiter != nil {
		waiter.Fail(err)
	}
	h.log.Error(log.Stream, h.logId, err)
}

// RecordAvailable returns a future that resolves with true when a record can
// be fetched with NextRecord, with false when the stream completed without
// further records, or fails with the stream error. Never blocks the calling
// goroutine, the check itself runs on the I/O context. The consumer must not
// issue a new call before the previous future resolved.
func (h *Handler) RecordAvailable() *async.Future {
	promise := async.NewPromise()
	h.queue.Schedule(func() {
		h.pollAvailable(promise)
	})
	return promise.Future()
}

func (h *Handler) pollAvailable(promise *async.Promise) {
	h.mut.Lock()
	switch {
	case !h.buf.empty():
		h.mut.Unlock()
		promise.Succeed(true)
	case h.err != nil:
		err := h.err
		h.mut.Unlock()
		promise.Fail(err)
	case h.completed:
		h.mut.Unlock()
		promise.Succeed(false)
	case h.waiter != nil:
		h.mut.Unlock()
		promise.Fail(&db.UsageError{Message: "overlapping RecordAvailable calls on the same stream"})
	default:
		h.waiter = promise
		h.mut.Unlock()
	}
}

// NextRecord pops the buffer head, nil when no record is buffered.
func (h *Handler) NextRecord() *db.Record {
	h.mut.Lock()
	defer h.mut.Unlock()
	return h.buf.pop()
}

// Keys returns the shared field name list of the result.
func (h *Handler) Keys() []string {
	return h.keys.Keys()
}

// IsCompleted returns true once the stream reached a terminal state, whether
// completed or failed.
func (h *Handler) IsCompleted() bool {
	h.mut.Lock()
	defer h.mut.Unlock()
	return h.completed
}

// Summary returns the decoded summary, nil until the stream completed
// successfully. The summary is write once, repeated calls return the same
// value.
func (h *Handler) Summary() *db.Summary {
	h.mut.Lock()
	defer h.mut.Unlock()
	return h.sum
}

func (h *Handler) StatementType() db.StatementType {
	h.mut.Lock()
	defer h.mut.Unlock()
	if h.sum == nil {
		return db.StatementTypeUnknown
	}
	return h.sum.StmntType
}

// Counters returns nil both before completion and when the server sent no
// stats block.
func (h *Handler) Counters() *db.Counters {
	h.mut.Lock()
	defer h.mut.Unlock()
	if h.sum == nil {
		return nil
	}
	return h.sum.Counters
}

func (h *Handler) Plan() *db.Plan {
	h.mut.Lock()
	defer h.mut.Unlock()
	if h.sum == nil {
		return nil
	}
	return h.sum.Plan
}

func (h *Handler) Profile() *db.ProfiledPlan {
	h.mut.Lock()
	defer h.mut.Unlock()
	if h.sum == nil {
		return nil
	}
	return h.sum.ProfiledPlan
}

func (h *Handler) Notifications() []db.Notification {
	h.mut.Lock()
	defer h.mut.Unlock()
	if h.sum == nil {
		return nil
	}
	return h.sum.Notifications
}

func (h *Handler) ResultConsumedAfter() int64 {
	h.mut.Lock()
	defer h.mut.Unlock()
	if h.sum == nil {
		return db.TimerUnknown
	}
	return h.sum.ResultConsumedAfter
}

func (h *Handler) ResultAvailableAfter() int64 {
	h.mut.Lock()
	defer h.mut.Unlock()
	if h.sum == nil {
		return db.TimerUnknown
	}
	return h.sum.ResultAvailableAfter
}

// takeWaiterLocked clears the waiter slot so that it is resolved at most
// once. Caller holds the mutex.
func (h *Handler) takeWaiterLocked() *async.Promise {
	waiter := h.waiter
	h.waiter = nil
	return waiter
}

// takeConnectionLocked drops the connection reference so that it is released
// exactly once regardless of which terminal event fires. Caller holds the
// mutex.
func (h *Handler) takeConnectionLocked() Connection {
	conn := h.conn
	h.conn = nil
	return conn
}
