package app

import (
	"context"

	apperrors "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/errors"
)

// Reset deletes every player and NPC record. The transport layer restricts
// this to admin callers.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ResetAll(ctx); err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, "reset records", err)
	}
	return nil
}
