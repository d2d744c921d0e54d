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
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/graphwire/graphwire-go-driver/graphwire/db"
)

var _ = Describe("Summary metadata", func() {

	Context("statement type", func() {
		When("the type key is absent", func() {
			It("should decode to unknown without error", func() {
				stmntType, err := extractStatementType(map[string]interface{}{})
				Expect(err).To(BeNil())
				Expect(stmntType).To(Equal(db.StatementTypeUnknown))
			})
		})

		When("the type key holds a known code", func() {
			It("should map each code to its statement type", func() {
				codes := map[string]db.StatementType{
					"r":  db.StatementTypeReadOnly,
					"rw": db.StatementTypeReadWrite,
					"w":  db.StatementTypeWriteOnly,
					"s":  db.StatementTypeSchemaWrite,
				}
				for code, expected := range codes {
					stmntType, err := extractStatementType(map[string]interface{}{"type": code})
					Expect(err).To(BeNil())
					Expect(stmntType).To(Equal(expected))
				}
			})
		})

		When("the type key holds an unknown code", func() {
			It("should fail with a decode error", func() {
				_, err := extractStatementType(map[string]interface{}{"type": "x"})
				Expect(err).To(BeAssignableToTypeOf(&db.DecodeError{}))
			})
		})

		When("the type key holds a non string", func() {
			It("should fail with a decode error", func() {
				_, err := extractStatementType(map[string]interface{}{"type": int64(1)})
				Expect(err).To(BeAssignableToTypeOf(&db.DecodeError{}))
			})
		})
	})

	Context("counters", func() {
		When("the stats block is absent", func() {
			It("should decode to no counters at all", func() {
				counters, err := extractCounters(map[string]interface{}{})
				Expect(err).To(BeNil())
				Expect(counters).To(BeNil())
			})
		})

		When("the stats block is present but empty", func() {
			It("should decode to all zero counters, distinct from absent", func() {
				counters, err := extractCounters(map[string]interface{}{
					"stats": map[string]interface{}{},
				})
				Expect(err).To(BeNil())
				Expect(counters).To(Equal(&db.Counters{}))
				Expect(counters.ContainsUpdates()).To(BeFalse())
			})
		})

		When("the stats block holds some counters", func() {
			It("should default the others to zero", func() {
				counters, err := extractCounters(map[string]interface{}{
					"stats": map[string]interface{}{
						db.NodesCreated: int64(3),
						db.NodesDeleted: int64(0),
					},
				})
				Expect(err).To(BeNil())
				Expect(counters.NodesCreated).To(Equal(3))
				Expect(counters.NodesDeleted).To(Equal(0))
				Expect(counters.RelationshipsCreated).To(Equal(0))
				Expect(counters.ConstraintsRemoved).To(Equal(0))
				Expect(counters.ContainsUpdates()).To(BeTrue())
			})
		})

		When("a counter is null", func() {
			It("should default to zero", func() {
				counters, err := extractCounters(map[string]interface{}{
					"stats": map[string]interface{}{db.PropertiesSet: nil},
				})
				Expect(err).To(BeNil())
				Expect(counters.PropertiesSet).To(Equal(0))
			})
		})

		When("a counter is not an integer", func() {
			It("should fail with a decode error", func() {
				_, err := extractCounters(map[string]interface{}{
					"stats": map[string]interface{}{db.NodesCreated: "three"},
				})
				Expect(err).To(BeAssignableToTypeOf(&db.DecodeError{}))
			})
		})
	})

	Context("plan", func() {
		When("the plan key is absent", func() {
			It("should decode to no plan", func() {
				plan, err := extractPlan(map[string]interface{}{})
				Expect(err).To(BeNil())
				Expect(plan).To(BeNil())
			})
		})

		When("the plan key holds a tree", func() {
			It("should decode operators, arguments, identifiers and children", func() {
				plan, err := extractPlan(map[string]interface{}{
					"plan": map[string]interface{}{
						"operatorType": "opType",
						"identifiers":  []interface{}{"id1", "id2"},
						"args": map[string]interface{}{
							"arg1": 1001,
						},
						"children": []interface{}{
							map[string]interface{}{
								"operatorType": "cop",
								"identifiers":  []interface{}{"cid"},
							},
						},
					},
				})
				Expect(err).To(BeNil())
				Expect(plan).To(Equal(&db.Plan{
					Operator:    "opType",
					Arguments:   map[string]interface{}{"arg1": 1001},
					Identifiers: []string{"id1", "id2"},
					Children: []db.Plan{
						{Operator: "cop", Identifiers: []string{"cid"}, Children: []db.Plan{}},
					},
				}))
			})
		})
	})

	Context("profile", func() {
		When("the profile key holds an executed tree", func() {
			It("should additionally decode the per operator statistics", func() {
				profile, err := extractProfile(map[string]interface{}{
					"profile": map[string]interface{}{
						"operatorType": "opType",
						"dbHits":       int64(7),
						"rows":         int64(4),
						"identifiers":  []interface{}{"id1"},
						"children": []interface{}{
							map[string]interface{}{
								"operatorType": "cop",
								"dbHits":       int64(1),
								"rows":         int64(2),
							},
						},
					},
				})
				Expect(err).To(BeNil())
				Expect(profile).To(Equal(&db.ProfiledPlan{
					Operator:    "opType",
					DbHits:      7,
					Records:     4,
					Identifiers: []string{"id1"},
					Children: []db.ProfiledPlan{
						{Operator: "cop", DbHits: 1, Records: 2, Identifiers: []string{}, Children: []db.ProfiledPlan{}},
					},
				}))
			})
		})
	})

	Context("notifications", func() {
		When("the notifications key is absent", func() {
			It("should decode to an empty sequence, never nil", func() {
				notifications, err := extractNotifications(map[string]interface{}{})
				Expect(err).To(BeNil())
				Expect(notifications).NotTo(BeNil())
				Expect(notifications).To(HaveLen(0))
			})
		})

		When("notifications are present", func() {
			It("should decode each element, position being optional", func() {
				notifications, err := extractNotifications(map[string]interface{}{
					"notifications": []interface{}{
						map[string]interface{}{
							"code":        "c1",
							"title":       "t1",
							"description": "d1",
							"severity":    "s1",
							"position": map[string]interface{}{
								"offset": int64(1),
								"line":   int64(2),
								"column": int64(3),
							},
						},
						map[string]interface{}{
							"code":        "c2",
							"title":       "t2",
							"description": "d2",
							"severity":    "s2",
						},
					},
				})
				Expect(err).To(BeNil())
				Expect(notifications).To(Equal([]db.Notification{
					{Code: "c1", Title: "t1", Description: "d1", Severity: "s1",
						Position: &db.InputPosition{Offset: 1, Line: 2, Column: 3}},
					{Code: "c2", Title: "t2", Description: "d2", Severity: "s2"},
				}))
			})
		})
	})

	Context("timers", func() {
		When("result_consumed_after is absent", func() {
			It("should decode to the unknown sentinel", func() {
				sum, err := extractSummary(map[string]interface{}{})
				Expect(err).To(BeNil())
				Expect(sum.ResultConsumedAfter).To(Equal(db.TimerUnknown))
				Expect(sum.ResultAvailableAfter).To(Equal(db.TimerUnknown))
			})
		})

		When("result_consumed_after is present", func() {
			It("should decode the milliseconds as is", func() {
				sum, err := extractSummary(map[string]interface{}{
					"result_consumed_after":  int64(42),
					"result_available_after": int64(7),
				})
				Expect(err).To(BeNil())
				Expect(sum.ResultConsumedAfter).To(Equal(int64(42)))
				Expect(sum.ResultAvailableAfter).To(Equal(int64(7)))
			})
		})
	})

	Context("whole summary", func() {
		It("should ignore keys it does not interpret", func() {
			sum, err := extractSummary(map[string]interface{}{
				"type":       "r",
				"bookmark":   "gw:bookmark:v1:tx42",
				"server":     "Graphwire/1.2.3",
				"extra_key":  int64(99),
				"some_other": "stuff",
			})
			Expect(err).To(BeNil())
			Expect(sum.StmntType).To(Equal(db.StatementTypeReadOnly))
			Expect(sum.Bookmark).To(Equal("gw:bookmark:v1:tx42"))
			Expect(sum.Counters).To(BeNil())
			Expect(sum.Plan).To(BeNil())
			Expect(sum.ProfiledPlan).To(BeNil())
			Expect(sum.Notifications).To(HaveLen(0))
		})
	})
})
