// Package redflags evaluates a form's red flag triggers against a
// completed answer set and resolves localized guidance for the caller.
package redflags

import (
	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/app/services/core/rules"
)

// Evaluate returns the triggered flags for the completed answers, in the
// snapshot's deterministic red flag order. Flags are independent: adding
// or reordering flags never changes another flag's outcome. A triggered
// flag lacking a translation in languageCode falls back to the form's
// default-language content and is marked accordingly, never dropped.
func Evaluate(snapshot *models.FormSnapshot, languageCode string, answers *models.AnswerSet) []models.TriggeredFlag {
	triggered := make([]models.TriggeredFlag, 0)

	for _, flagID := range snapshot.RedFlagOrder {
		flag := snapshot.RedFlags[flagID]
		if flag == nil {
			continue
		}
		if !rules.Evaluate(flag.Trigger, answers) {
			continue
		}
		triggered = append(triggered, Resolve(flag, languageCode))
	}

	return triggered
}

// Resolve localizes one red flag's guidance content for languageCode.
func Resolve(flag *models.RedFlag, languageCode string) models.TriggeredFlag {
	resolved := models.TriggeredFlag{
		RedFlagID:       flag.ID,
		Severity:        flag.Severity,
		Language:        languageCode,
		PatientResponse: flag.DefaultPatientResponse,
		DoctorAtAGlance: flag.DoctorAtAGlance,
		PatientVideoURL: flag.PatientVideoURL,
		DoctorVideoURL:  flag.DoctorVideoURL,
	}

	translation, ok := flag.Translations[languageCode]
	if !ok {
		resolved.FallbackLanguage = true
		return resolved
	}
	if translation.PatientResponse != "" {
		resolved.PatientResponse = translation.PatientResponse
	}
	if translation.DoctorAtAGlance != "" {
		resolved.DoctorAtAGlance = translation.DoctorAtAGlance
	}
	return resolved
}
