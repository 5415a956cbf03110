// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/gosimple/slug"

	"github.com/kanbanly/workspace-service/internal/storage"
)

const slugMaxAttempts = 5

// uniqueSlug derives a slug from name and retries with a random suffix
// on collision. Uniqueness is ultimately enforced by the unique index on
// the slug column; this loop just keeps the happy path collision free.
// excludeID skips the workspace being renamed.
func (s *Service) uniqueSlug(ctx context.Context, name, excludeID string) (string, error) {
	base := slug.Make(name)
	candidate := base

	for attempt := 0; attempt < slugMaxAttempts; attempt++ {
		existingID, err := s.storage.GetWorkspaceIDBySlug(ctx, candidate)
		if errors.Is(err, storage.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check slug availability: %w", err)
		}
		if existingID == excludeID {
			return candidate, nil
		}

		suffix, err := randomSuffix()
		if err != nil {
			return "", err
		}
		candidate = base + "-" + suffix
	}

	return "", ErrSlugGeneration
}

func randomSuffix() (string, error) {
	b := make([]byte, 2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate slug suffix: %w", err)
	}
	return hex.EncodeToString(b), nil
}
