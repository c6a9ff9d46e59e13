package contracts

import (
	"context"

	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/pkg/dto/requests"
	"codexrfa-service/internal/pkg/dto/responses"
)

// SessionUsecase drives the caregiver-facing traversal flow: one session
// per caregiver, one advance per submitted answer.
type SessionUsecase interface {
	// StartSession pins a form snapshot, derives the patient identity from
	// the identifying fields (which are never stored), and returns the
	// session token plus the first localized question.
	StartSession(ctx context.Context, request *requests.StartSession) (*responses.SessionStarted, error)
	// AdvanceSession records the latest answer and returns either the next
	// localized question or the completion payload with triggered flags.
	AdvanceSession(ctx context.Context, sessionID string, request *requests.AdvanceSession) (*responses.SessionStep, error)
}

// SubmissionRepository persists completed submission records append-only,
// keyed by the 8-character record identifier.
type SubmissionRepository interface {
	// CreateSubmission inserts the record. On a duplicate record ID it
	// regenerates the identifier and retries; the stored record's ID is
	// reflected back into record.
	CreateSubmission(ctx context.Context, record *models.SubmissionRecord) error
}
