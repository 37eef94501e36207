package ports

import (
	"time"

	"github.com/bnema/labdesk/internal/domain"
)

// CommandObserver records one finished command invocation.
type CommandObserver interface {
	ObserveCommand(name string, status domain.OutcomeStatus, kind domain.FailureKind, elapsed time.Duration)
}
