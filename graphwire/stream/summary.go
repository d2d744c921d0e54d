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
	"fmt"

	"github.com/graphwire/graphwire-go-driver/graphwire/db"
)

// Extraction of summary metadata received with the final success message of
// a stream. Pure functions, keys that are not interpreted here are ignored,
// malformed values of interpreted keys fail with db.DecodeError.

func extractSummary(meta map[string]interface{}) (*db.Summary, error) {
	stmntType, err := extractStatementType(meta)
	if err != nil {
		return nil, err
	}
	counters, err := extractCounters(meta)
	if err != nil {
		return nil, err
	}
	plan, err := extractPlan(meta)
	if err != nil {
		return nil, err
	}
	profile, err := extractProfile(meta)
	if err != nil {
		return nil, err
	}
	notifications, err := extractNotifications(meta)
	if err != nil {
		return nil, err
	}
	bookmark, err := stringValue(meta, "bookmark")
	if err != nil {
		return nil, err
	}
	availableAfter, err := extractTimer(meta, "result_available_after")
	if err != nil {
		return nil, err
	}
	consumedAfter, err := extractTimer(meta, "result_consumed_after")
	if err != nil {
		return nil, err
	}
	return &db.Summary{
		StmntType:            stmntType,
		Counters:             counters,
		Plan:                 plan,
		ProfiledPlan:         profile,
		Notifications:        notifications,
		Bookmark:             bookmark,
		ResultAvailableAfter: availableAfter,
		ResultConsumedAfter:  consumedAfter,
	}, nil
}

func extractStatementType(meta map[string]interface{}) (db.StatementType, error) {
	x, ok := meta["type"]
	if !ok {
		return db.StatementTypeUnknown, nil
	}
	code, ok := x.(string)
	if !ok {
		return db.StatementTypeUnknown, &db.DecodeError{Msg: fmt.Sprintf("statement type is %T, expected string", x)}
	}
	switch code {
	case "r":
		return db.StatementTypeReadOnly, nil
	case "rw":
		return db.StatementTypeReadWrite, nil
	case "w":
		return db.StatementTypeWriteOnly, nil
	case "s":
		return db.StatementTypeSchemaWrite, nil
	}
	return db.StatementTypeUnknown, &db.DecodeError{Msg: fmt.Sprintf("unknown statement type code: %q", code)}
}

// A missing stats block means no counters at all, which is not the same
// thing as a stats block reporting zero updates.
func extractCounters(meta map[string]interface{}) (*db.Counters, error) {
	x, ok := meta["stats"]
	if !ok {
		return nil, nil
	}
	stats, ok := x.(map[string]interface{})
	if !ok {
		return nil, &db.DecodeError{Msg: fmt.Sprintf("stats is %T, expected map", x)}
	}
	counters := db.Counters{}
	for _, c := range []struct {
		key string
		dst *int
	}{
		{db.NodesCreated, &counters.NodesCreated},
		{db.NodesDeleted, &counters.NodesDeleted},
		{db.RelationshipsCreated, &counters.RelationshipsCreated},
		{db.RelationshipsDeleted, &counters.RelationshipsDeleted},
		{db.PropertiesSet, &counters.PropertiesSet},
		{db.LabelsAdded, &counters.LabelsAdded},
		{db.LabelsRemoved, &counters.LabelsRemoved},
		{db.IndexesAdded, &counters.IndexesAdded},
		{db.IndexesRemoved, &counters.IndexesRemoved},
		{db.ConstraintsAdded, &counters.ConstraintsAdded},
		{db.ConstraintsRemoved, &counters.ConstraintsRemoved},
	} {
		n, err := counterValue(stats, c.key)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return &counters, nil
}

func counterValue(stats map[string]interface{}, key string) (int, error) {
	x, ok := stats[key]
	if !ok || x == nil {
		return 0, nil
	}
	n, ok := x.(int64)
	if !ok {
		return 0, &db.DecodeError{Msg: fmt.Sprintf("counter %s is %T, expected integer", key, x)}
	}
	return int(n), nil
}

func extractPlan(meta map[string]interface{}) (*db.Plan, error) {
	x, ok := meta["plan"]
	if !ok {
		return nil, nil
	}
	m, ok := x.(map[string]interface{})
	if !ok {
		return nil, &db.DecodeError{Msg: fmt.Sprintf("plan is %T, expected map", x)}
	}
	plan, err := decodePlan(m)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func decodePlan(m map[string]interface{}) (db.Plan, error) {
	operator, err := stringValue(m, "operatorType")
	if err != nil {
		return db.Plan{}, err
	}
	args, err := mapValue(m, "args")
	if err != nil {
		return db.Plan{}, err
	}
	identifiers, err := stringListValue(m, "identifiers")
	if err != nil {
		return db.Plan{}, err
	}
	plan := db.Plan{Operator: operator, Arguments: args, Identifiers: identifiers, Children: []db.Plan{}}
	children, err := listValue(m, "children")
	if err != nil {
		return db.Plan{}, err
	}
	for _, c := range children {
		cm, ok := c.(map[string]interface{})
		if !ok {
			return db.Plan{}, &db.DecodeError{Msg: fmt.Sprintf("plan child is %T, expected map", c)}
		}
		child, err := decodePlan(cm)
		if err != nil {
			return db.Plan{}, err
		}
		plan.Children = append(plan.Children, child)
	}
	return plan, nil
}

func extractProfile(meta map[string]interface{}) (*db.ProfiledPlan, error) {
	x, ok := meta["profile"]
	if !ok {
		return nil, nil
	}
	m, ok := x.(map[string]interface{})
	if !ok {
		return nil, &db.DecodeError{Msg: fmt.Sprintf("profile is %T, expected map", x)}
	}
	profile, err := decodeProfile(m)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func decodeProfile(m map[string]interface{}) (db.ProfiledPlan, error) {
	operator, err := stringValue(m, "operatorType")
	if err != nil {
		return db.ProfiledPlan{}, err
	}
	args, err := mapValue(m, "args")
	if err != nil {
		return db.ProfiledPlan{}, err
	}
	identifiers, err := stringListValue(m, "identifiers")
	if err != nil {
		return db.ProfiledPlan{}, err
	}
	dbHits, err := intValue(m, "dbHits")
	if err != nil {
		return db.ProfiledPlan{}, err
	}
	rows, err := intValue(m, "rows")
	if err != nil {
		return db.ProfiledPlan{}, err
	}
	profile := db.ProfiledPlan{
		Operator:    operator,
		Arguments:   args,
		Identifiers: identifiers,
		DbHits:      dbHits,
		Records:     rows,
		Children:    []db.ProfiledPlan{},
	}
	children, err := listValue(m, "children")
	if err != nil {
		return db.ProfiledPlan{}, err
	}
	for _, c := range children {
		cm, ok := c.(map[string]interface{})
		if !ok {
			return db.ProfiledPlan{}, &db.DecodeError{Msg: fmt.Sprintf("profile child is %T, expected map", c)}
		}
		child, err := decodeProfile(cm)
		if err != nil {
			return db.ProfiledPlan{}, err
		}
		profile.Children = append(profile.Children, child)
	}
	return profile, nil
}

// Notifications are always a sequence, never nil, an absent key decodes to
// an empty one.
func extractNotifications(meta map[string]interface{}) ([]db.Notification, error) {
	notifications := []db.Notification{}
	list, err := listValue(meta, "notifications")
	if err != nil {
		return nil, err
	}
	for _, x := range list {
		m, ok := x.(map[string]interface{})
		if !ok {
			return nil, &db.DecodeError{Msg: fmt.Sprintf("notification is %T, expected map", x)}
		}
		notification, err := decodeNotification(m)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

func decodeNotification(m map[string]interface{}) (db.Notification, error) {
	notification := db.Notification{}
	var err error
	if notification.Code, err = stringValue(m, "code"); err != nil {
		return notification, err
	}
	if notification.Title, err = stringValue(m, "title"); err != nil {
		return notification, err
	}
	if notification.Description, err = stringValue(m, "description"); err != nil {
		return notification, err
	}
	if notification.Severity, err = stringValue(m, "severity"); err != nil {
		return notification, err
	}
	x, ok := m["position"]
	if !ok {
		return notification, nil
	}
	pm, ok := x.(map[string]interface{})
	if !ok {
		return notification, &db.DecodeError{Msg: fmt.Sprintf("notification position is %T, expected map", x)}
	}
	position := db.InputPosition{}
	offset, err := intValue(pm, "offset")
	if err != nil {
		return notification, err
	}
	line, err := intValue(pm, "line")
	if err != nil {
		return notification, err
	}
	column, err := intValue(pm, "column")
	if err != nil {
		return notification, err
	}
	position.Offset = int(offset)
	position.Line = int(line)
	position.Column = int(column)
	notification.Position = &position
	return notification, nil
}

func extractTimer(meta map[string]interface{}, key string) (int64, error) {
	x, ok := meta[key]
	if !ok {
		return db.TimerUnknown, nil
	}
	ms, ok := x.(int64)
	if !ok {
		return db.TimerUnknown, &db.DecodeError{Msg: fmt.Sprintf("%s is %T, expected integer", key, x)}
	}
	return ms, nil
}

// Coercion helpers, an absent key yields the zero value.

func stringValue(m map[string]interface{}, key string) (string, error) {
	x, ok := m[key]
	if !ok {
		return "", nil
	}
	s, ok := x.(string)
	if !ok {
		return "", &db.DecodeError{Msg: fmt.Sprintf("%s is %T, expected string", key, x)}
	}
	return s, nil
}

func intValue(m map[string]interface{}, key string) (int64, error) {
	x, ok := m[key]
	if !ok {
		return 0, nil
	}
	n, ok := x.(int64)
	if !ok {
		return 0, &db.DecodeError{Msg: fmt.Sprintf("%s is %T, expected integer", key, x)}
	}
	return n, nil
}

func mapValue(m map[string]interface{}, key string) (map[string]interface{}, error) {
	x, ok := m[key]
	if !ok {
		return nil, nil
	}
	v, ok := x.(map[string]interface{})
	if !ok {
		return nil, &db.DecodeError{Msg: fmt.Sprintf("%s is %T, expected map", key, x)}
	}
	return v, nil
}

func listValue(m map[string]interface{}, key string) ([]interface{}, error) {
	x, ok := m[key]
	if !ok {
		return nil, nil
	}
	v, ok := x.([]interface{})
	if !ok {
		return nil, &db.DecodeError{Msg: fmt.Sprintf("%s is %T, expected list", key, x)}
	}
	return v, nil
}

func stringListValue(m map[string]interface{}, key string) ([]string, error) {
	list, err := listValue(m, key)
	if err != nil {
		return nil, err
	}
	strings := make([]string, len(list))
	for i, x := range list {
		s, ok := x.(string)
		if !ok {
			return nil, &db.DecodeError{Msg: fmt.Sprintf("%s element is %T, expected string", key, x)}
		}
		strings[i] = s
	}
	return strings, nil
}
