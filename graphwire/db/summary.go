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

// StatementType defines the type of the statement a summary belongs to.
type StatementType int

const (
	StatementTypeUnknown     StatementType = 0
	StatementTypeReadOnly    StatementType = 1
	StatementTypeReadWrite   StatementType = 2
	StatementTypeWriteOnly   StatementType = 3
	StatementTypeSchemaWrite StatementType = 4
)

// Counter key names as they appear in the stats block of the summary
// metadata.
const (
	NodesCreated         = "nodes-created"
	NodesDeleted         = "nodes-deleted"
	RelationshipsCreated = "relationships-created"
	RelationshipsDeleted = "relationships-deleted"
	PropertiesSet        = "properties-set"
	LabelsAdded          = "labels-added"
	LabelsRemoved        = "labels-removed"
	IndexesAdded         = "indexes-added"
	IndexesRemoved       = "indexes-removed"
	ConstraintsAdded     = "constraints-added"
	ConstraintsRemoved   = "constraints-removed"
)

// Counters contains the update statistics of a statement. All values default
// to zero when the server omits them from the stats block.
type Counters struct {
	NodesCreated         int
	NodesDeleted         int
	RelationshipsCreated int
	RelationshipsDeleted int
	PropertiesSet        int
	LabelsAdded          int
	LabelsRemoved        int
	IndexesAdded         int
	IndexesRemoved       int
	ConstraintsAdded     int
	ConstraintsRemoved   int
}

// ContainsUpdates returns true if the statement made any change to the
// database.
func (c *Counters) ContainsUpdates() bool {
	return c.NodesCreated > 0 || c.NodesDeleted > 0 ||
		c.RelationshipsCreated > 0 || c.RelationshipsDeleted > 0 ||
		c.PropertiesSet > 0 || c.LabelsAdded > 0 || c.LabelsRemoved > 0 ||
		c.IndexesAdded > 0 || c.IndexesRemoved > 0 ||
		c.ConstraintsAdded > 0 || c.ConstraintsRemoved > 0
}

// Plan describes the plan that the server planner produced to execute a
// statement. The plan is a tree, each sub-plan containing zero or more
// child plans.
type Plan struct {
	// Operator is the operation this plan is performing.
	Operator string
	// Arguments for the operator, defining its specific behavior.
	Arguments map[string]interface{}
	// Identifiers used by this part of the plan, both user introduced and
	// automatically generated ones.
	Identifiers []string
	// Zero or more child plans feeding records into this one.
	Children []Plan
}

// ProfiledPlan is the same as a regular Plan except that it has been
// executed, so it also carries the per operator runtime statistics.
type ProfiledPlan struct {
	Operator    string
	Arguments   map[string]interface{}
	Identifiers []string
	// DbHits is the number of times this part of the plan touched the
	// underlying data stores.
	DbHits int64
	// Records is the number of records this part of the plan produced.
	Records  int64
	Children []ProfiledPlan
}

// Notification represents a notification generated when executing a
// statement, typically pinpointing problems or other information about the
// statement.
type Notification struct {
	Code        string
	Title       string
	Description string
	// Position in the statement this notification points to. Not all
	// notifications have a unique position, in which case it is nil.
	Position *InputPosition
	Severity string
}

// InputPosition points at a specific position in a statement.
type InputPosition struct {
	// Offset contains the character offset, starting at 0.
	Offset int
	// Line contains the line number, starting at 1.
	Line int
	// Column contains the column number, starting at 1.
	Column int
}

// TimerUnknown is the value of the summary timers when the server did not
// report them.
const TimerUnknown int64 = -1

// Summary is the aggregate description of a completed statement.
type Summary struct {
	StmntType StatementType
	// Counters is nil when the server sent no stats block at all, which is
	// distinct from a stats block reporting zero updates.
	Counters      *Counters
	Plan          *Plan
	ProfiledPlan  *ProfiledPlan
	Notifications []Notification
	Bookmark      string
	// ResultAvailableAfter and ResultConsumedAfter are server side timings
	// in milliseconds, TimerUnknown when not reported.
	ResultAvailableAfter int64
	ResultConsumedAfter  int64
}
