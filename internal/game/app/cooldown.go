package app

import (
	"fmt"
	"time"

	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/core/cooldown"
	"github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/core/currency"
	apperrors "github.com/Sinexo/Fully-Automatic-Wishing-Machine/internal/platform/errors"
)

// checkCooldown gates one action behind its window. A nil return means the
// action is ready; otherwise the error carries the action name and the
// formatted remaining wait.
func checkCooldown(lastMark string, window time.Duration, now time.Time, action string) *apperrors.Error {
	ready, remaining := cooldown.Check(lastMark, window, now)
	if ready {
		return nil
	}
	return apperrors.WithMetadata(
		apperrors.CodeCooldownActive,
		fmt.Sprintf("%s is on cooldown for %s", action, currency.FormatDuration(remaining)),
		map[string]string{
			"Action":    action,
			"Remaining": currency.FormatDuration(remaining),
		},
	)
}
