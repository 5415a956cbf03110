// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package diff

import (
	"reflect"
	"testing"
)

func TestFields(t *testing.T) {
	testCases := []struct {
		name     string
		before   map[string]any
		after    map[string]any
		fields   []string
		expected map[string]any
	}{
		{
			name:     "flat change",
			before:   map[string]any{"name": "Acme", "slug": "acme"},
			after:    map[string]any{"name": "Acme Labs", "slug": "acme"},
			fields:   []string{"name", "slug"},
			expected: map[string]any{"name": Change{From: "Acme", To: "Acme Labs"}},
		},
		{
			name:     "no change yields empty result",
			before:   map[string]any{"name": "Acme"},
			after:    map[string]any{"name": "Acme"},
			fields:   []string{"name"},
			expected: map[string]any{},
		},
		{
			name:     "keys outside the field list are ignored",
			before:   map[string]any{"name": "Acme", "secret": "a"},
			after:    map[string]any{"name": "Acme", "secret": "b"},
			fields:   []string{"name"},
			expected: map[string]any{},
		},
		{
			name: "nested maps diff recursively",
			before: map[string]any{
				"settings": map[string]any{"theme": "dark", "locale": "en"},
			},
			after: map[string]any{
				"settings": map[string]any{"theme": "light", "locale": "en"},
			},
			fields: []string{"settings"},
			expected: map[string]any{
				"settings": map[string]any{"theme": Change{From: "dark", To: "light"}},
			},
		},
		{
			name: "key added inside a nested map",
			before: map[string]any{
				"settings": map[string]any{"theme": "dark"},
			},
			after: map[string]any{
				"settings": map[string]any{"theme": "dark", "locale": "en"},
			},
			fields: []string{"settings"},
			expected: map[string]any{
				"settings": map[string]any{"locale": Change{From: nil, To: "en"}},
			},
		},
		{
			name:     "identical nested maps collapse to nothing",
			before:   map[string]any{"settings": map[string]any{"theme": "dark"}},
			after:    map[string]any{"settings": map[string]any{"theme": "dark"}},
			fields:   []string{"settings"},
			expected: map[string]any{},
		},
		{
			name:     "slices compare by content",
			before:   map[string]any{"labels": []string{"a", "b"}},
			after:    map[string]any{"labels": []string{"a", "b"}},
			fields:   []string{"labels"},
			expected: map[string]any{},
		},
		{
			name:   "changed slice reports as one change",
			before: map[string]any{"labels": []string{"a"}},
			after:  map[string]any{"labels": []string{"a", "b"}},
			fields: []string{"labels"},
			expected: map[string]any{
				"labels": Change{From: []string{"a"}, To: []string{"a", "b"}},
			},
		},
		{
			name:     "nil to value",
			before:   map[string]any{},
			after:    map[string]any{"description": "new"},
			fields:   []string{"description"},
			expected: map[string]any{"description": Change{From: nil, To: "new"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Fields(tc.before, tc.after, tc.fields)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
