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

package db

import (
	"fmt"
	"strings"
)

type dbErrCls int

const (
	dbErrClsSentinel dbErrCls = iota
	dbErrClsClient
	dbErrClsTransient
	dbErrClsUnknown
)

// DatabaseError is a failure reported by the server through the protocol.
type DatabaseError struct {
	Code string
	Msg  string
	cls  dbErrCls
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("Server error: [%s] %s", e.Code, e.Msg)
}

func (e *DatabaseError) getCls() dbErrCls {
	// Code is on format: Graphwire.{classification}.X.Y like for example:
	// Graphwire.ClientError.Statement.SyntaxError
	if e.cls == dbErrClsSentinel {
		parts := strings.Split(e.Code, ".")
		if len(parts) < 2 || parts[0] != "Graphwire" {
			e.cls = dbErrClsUnknown
			return e.cls
		}
		switch parts[1] {
		case "TransientError":
			e.cls = dbErrClsTransient
		case "ClientError":
			e.cls = dbErrClsClient
		default:
			e.cls = dbErrClsUnknown
		}
	}
	return e.cls
}

// IsTransient returns true for errors where retrying on a fresh stream might
// succeed, the retry itself is a higher layer's responsibility.
func (e *DatabaseError) IsTransient() bool {
	return e.getCls() == dbErrClsTransient
}

func (e *DatabaseError) IsClient() bool {
	return e.getCls() == dbErrClsClient
}

// DecodeError is raised when summary metadata delivered with a success
// message is malformed or type-mismatched.
type DecodeError struct {
	Msg string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode summary metadata: %s", e.Msg)
}

// UsageError represents errors caused by incorrect usage of the API, as
// opposed to runtime or data errors.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}
