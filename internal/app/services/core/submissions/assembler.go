package submissions

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/pkg/constvars"
)

// Assemble composes the audit record for one completed session. Pure
// composition: no storage or network calls; the caller persists the
// record and notifies the doctor when flags is non-empty.
func Assemble(session *models.TraversalSession, flags []models.TriggeredFlag) (*models.SubmissionRecord, error) {
	recordID, err := GenerateRecordID()
	if err != nil {
		return nil, err
	}

	responses := make(map[string]interface{}, session.Answers.Len())
	for _, answer := range session.Answers.Entries {
		if len(answer.Values) > 0 {
			responses[answer.QuestionID] = answer.Values
		} else {
			responses[answer.QuestionID] = answer.Value
		}
		if answer.FreeText != "" {
			responses[answer.QuestionID+"_text"] = answer.FreeText
		}
	}

	flagIDs := make([]string, 0, len(flags))
	for _, flag := range flags {
		flagIDs = append(flagIDs, flag.RedFlagID)
	}

	return &models.SubmissionRecord{
		RecordID:    recordID,
		Patient:     session.Patient,
		DoctorID:    session.DoctorID,
		FormID:      session.FormID,
		FormVersion: session.FormVersion,
		Language:    session.Language,
		Responses:   responses,
		RedFlagIDs:  flagIDs,
		RedFlags:    flags,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// GenerateRecordID returns a fresh 8-hex-character identifier from a
// non-deterministic random source, unrelated to patient identity or
// answers. With 4 random bytes the chance that the n-th record collides
// with any earlier one is n/2^32; the repository regenerates on a
// duplicate-key conflict.
func GenerateRecordID() (string, error) {
	buf := make([]byte, constvars.RecordIDByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
