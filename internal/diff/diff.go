// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package diff builds the field-change records stored as audit metadata,
// so the activity log captures what changed rather than full before and
// after snapshots.
package diff

import (
	"reflect"
)

// Change records one leaf-level field change.
type Change struct {
	From any `json:"from"`
	To   any `json:"to"`
}

// Fields compares before and after restricted to the given keys.
// Nested maps are diffed recursively key by key; slices compare by
// content and report as a single change. The result maps field name to
// either a Change or a nested map of the same shape.
func Fields(before, after map[string]any, fields []string) map[string]any {
	result := make(map[string]any)

	for _, key := range fields {
		oldVal, newVal := before[key], after[key]

		oldMap, oldIsMap := oldVal.(map[string]any)
		newMap, newIsMap := newVal.(map[string]any)

		switch {
		case oldIsMap && newIsMap:
			keys := make([]string, 0, len(oldMap)+len(newMap))
			seen := make(map[string]bool)
			for k := range oldMap {
				keys = append(keys, k)
				seen[k] = true
			}
			for k := range newMap {
				if !seen[k] {
					keys = append(keys, k)
				}
			}
			if sub := Fields(oldMap, newMap, keys); len(sub) > 0 {
				result[key] = sub
			}
		case isSlice(oldVal) && isSlice(newVal):
			if !reflect.DeepEqual(oldVal, newVal) {
				result[key] = Change{From: oldVal, To: newVal}
			}
		default:
			if !reflect.DeepEqual(oldVal, newVal) {
				result[key] = Change{From: oldVal, To: newVal}
			}
		}
	}

	return result
}

func isSlice(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Slice
}
