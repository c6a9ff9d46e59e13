package contracts

import (
	"context"

	"codexrfa-service/internal/app/models"
)

// Notifier delivers the red flag report to the doctor. Invoked by the
// session usecase only when triggered flags are non-empty; the flags are
// fully resolved (localized text and links) before handoff.
type Notifier interface {
	NotifyRedFlags(ctx context.Context, doctor *models.Doctor, record *models.SubmissionRecord) error
}

// MediaStorage resolves education media object keys into presigned URLs
// that caregivers and doctors can open directly.
type MediaStorage interface {
	PresignEducationMedia(ctx context.Context, objectKey string) (string, error)
}
