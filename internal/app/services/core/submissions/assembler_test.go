package submissions

import (
	"testing"
	"time"

	"codexrfa-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecordID(t *testing.T) {
	t.Run("eight lowercase hex characters", func(t *testing.T) {
		id, err := GenerateRecordID()
		require.NoError(t, err)
		assert.Len(t, id, 8)
		assert.Regexp(t, "^[0-9a-f]{8}$", id)
	})

	t.Run("no duplicates across many generations", func(t *testing.T) {
		seen := make(map[string]struct{}, 10000)
		for i := 0; i < 10000; i++ {
			id, err := GenerateRecordID()
			require.NoError(t, err)
			_, dup := seen[id]
			require.False(t, dup, "duplicate record id %s at iteration %d", id, i)
			seen[id] = struct{}{}
		}
	})
}

func TestAssemble(t *testing.T) {
	session := &models.TraversalSession{
		ID:          "sess-1",
		DoctorID:    "doc-1",
		FormID:      "fever_rfa",
		FormVersion: 3,
		Language:    "hi",
		Patient:     models.PatientIdentity{Hash: "ab12", KDFVersion: "v1"},
		StartedAt:   time.Now().UTC(),
	}
	session.Answers.Append(models.Answer{QuestionID: "q1", Value: "7"})
	session.Answers.Append(models.Answer{QuestionID: "q2", Values: []string{"q2_rash", "q2_vomit"}, FreeText: "since monday"})

	flags := []models.TriggeredFlag{
		{RedFlagID: "prolonged_fever", Severity: "high", Language: "hi"},
	}

	record, err := Assemble(session, flags)
	require.NoError(t, err)

	assert.Len(t, record.RecordID, 8)
	assert.Equal(t, "doc-1", record.DoctorID)
	assert.Equal(t, "fever_rfa", record.FormID)
	assert.Equal(t, int64(3), record.FormVersion)
	assert.Equal(t, "ab12", record.Patient.Hash)

	assert.Equal(t, "7", record.Responses["q1"])
	assert.Equal(t, []string{"q2_rash", "q2_vomit"}, record.Responses["q2"])
	assert.Equal(t, "since monday", record.Responses["q2_text"])

	assert.Equal(t, []string{"prolonged_fever"}, record.RedFlagIDs)
	assert.Len(t, record.RedFlags, 1)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestAssembleWithoutFlags(t *testing.T) {
	session := &models.TraversalSession{ID: "sess-2", FormID: "fever_rfa"}
	session.Answers.Append(models.Answer{QuestionID: "q1", Value: "2"})

	record, err := Assemble(session, nil)
	require.NoError(t, err)
	assert.Empty(t, record.RedFlagIDs)
	assert.Empty(t, record.RedFlags)
}
