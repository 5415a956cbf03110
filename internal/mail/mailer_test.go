// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"testing"
	"time"
)

func TestLifetimeText(t *testing.T) {
	testCases := []struct {
		name     string
		lifetime time.Duration
		expected string
	}{
		{name: "default three days", lifetime: 72 * time.Hour, expected: "3 days"},
		{name: "single day", lifetime: 24 * time.Hour, expected: "1 day"},
		{name: "uneven duration falls back to hours", lifetime: 36 * time.Hour, expected: "36 hours"},
		{name: "single hour", lifetime: time.Hour, expected: "1 hour"},
		{name: "unset defaults to three days", lifetime: 0, expected: "3 days"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := lifetimeText(tc.lifetime); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
