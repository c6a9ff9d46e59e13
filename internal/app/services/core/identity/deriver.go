// Package identity derives the deterministic, irreversible patient
// identifier from a small set of low-entropy caregiver-supplied fields.
// Callers must never pass names, phone numbers, or other high-entropy PII.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode"

	"codexrfa-service/internal/app/models"
	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/exceptions"

	"golang.org/x/crypto/pbkdf2"
)

// Params is the process-wide KDF configuration. The secret and iteration
// count never appear in derived output; the version tag does, so a future
// parameter change cannot silently collide with older identities.
type Params struct {
	Secret     string
	Iterations int
	Version    string
}

// Validate fails when the secret is absent. Called once at startup; the
// deriver must not operate with an empty secret.
func (p Params) Validate() error {
	if strings.TrimSpace(p.Secret) == "" {
		return exceptions.ErrIdentityConfiguration()
	}
	return nil
}

// Fields is the fixed, ordered set of identifying inputs.
type Fields struct {
	DateOfBirth      string
	GuardianInitials string
}

// Derive canonicalizes fields, joins them in declared order, and computes
// a salted PBKDF2-SHA256 digest. Identical fields under the same params
// always yield the identical identity; the output is one-way.
func Derive(fields Fields, params Params) (models.PatientIdentity, error) {
	if err := params.Validate(); err != nil {
		return models.PatientIdentity{}, err
	}

	dob, err := canonicalDate(fields.DateOfBirth)
	if err != nil {
		return models.PatientIdentity{}, err
	}
	initials, err := canonicalInitials(fields.GuardianInitials)
	if err != nil {
		return models.PatientIdentity{}, err
	}

	canonical := dob + constvars.IdentityFieldSeparator + initials
	salt := deriveSalt(params)
	key := pbkdf2.Key([]byte(canonical), salt, params.Iterations, constvars.IdentityKeyLength, sha256.New)

	return models.PatientIdentity{
		Hash:       hex.EncodeToString(key),
		KDFVersion: params.Version,
	}, nil
}

// deriveSalt binds the salt to the secret and version tag so rotating
// either produces a disjoint identity space.
func deriveSalt(params Params) []byte {
	sum := sha256.Sum256([]byte(params.Secret + constvars.IdentityFieldSeparator + params.Version))
	return sum[:]
}

func canonicalDate(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", exceptions.ErrIdentityFieldValidation("date_of_birth")
	}
	parsed, err := time.Parse(constvars.DateLayoutISO, trimmed)
	if err != nil {
		return "", exceptions.ErrIdentityFieldValidation("date_of_birth")
	}
	return parsed.Format(constvars.DateLayoutISO), nil
}

func canonicalInitials(raw string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" || len(trimmed) > 4 {
		return "", exceptions.ErrIdentityFieldValidation("guardian_initials")
	}
	for _, r := range trimmed {
		if !unicode.IsLetter(r) {
			return "", exceptions.ErrIdentityFieldValidation("guardian_initials")
		}
	}
	return trimmed, nil
}
