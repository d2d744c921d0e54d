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

import "errors"

// Record is one row of a query result. Keys are shared between all records
// of the same result and are never mutated, Values are owned by the record.
type Record struct {
	Keys   []string
	Values []interface{}
}

// Get returns the value corresponding to the given key along with a boolean
// that is true if a value was found.
func (r *Record) Get(key string) (interface{}, bool) {
	for i := range r.Keys {
		if r.Keys[i] == key {
			return r.Values[i], true
		}
	}
	return nil, false
}

// GetByIndex returns the value at the given index.
func (r *Record) GetByIndex(index int) interface{} {
	if len(r.Values) <= index {
		panic(errors.New("index out of bounds"))
	}
	return r.Values[index]
}
