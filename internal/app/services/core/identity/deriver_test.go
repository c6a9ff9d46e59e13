package identity

import (
	"strings"
	"testing"

	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	return Params{Secret: "unit-test-secret", Iterations: 1000, Version: "v1"}
}

func TestDerive(t *testing.T) {
	fields := Fields{DateOfBirth: "2019-03-01", GuardianInitials: "jd"}

	t.Run("identical fields derive the identical identity", func(t *testing.T) {
		first, err := Derive(fields, testParams())
		require.NoError(t, err)
		second, err := Derive(fields, testParams())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("output carries the version tag and no raw fields", func(t *testing.T) {
		derived, err := Derive(fields, testParams())
		require.NoError(t, err)
		assert.Equal(t, "v1", derived.KDFVersion)
		assert.Len(t, derived.Hash, constvars.IdentityKeyLength*2)
		assert.NotContains(t, derived.Hash, "2019")
		assert.NotContains(t, derived.Hash, "jd")
	})

	t.Run("canonicalization normalizes case and whitespace", func(t *testing.T) {
		derived, err := Derive(fields, testParams())
		require.NoError(t, err)
		messy, err := Derive(Fields{DateOfBirth: " 2019-03-01 ", GuardianInitials: " JD "}, testParams())
		require.NoError(t, err)
		assert.Equal(t, derived.Hash, messy.Hash)
	})

	t.Run("different fields derive different identities", func(t *testing.T) {
		derived, err := Derive(fields, testParams())
		require.NoError(t, err)
		other, err := Derive(Fields{DateOfBirth: "2019-03-02", GuardianInitials: "jd"}, testParams())
		require.NoError(t, err)
		assert.NotEqual(t, derived.Hash, other.Hash)
	})

	t.Run("rotating the secret moves the identity space", func(t *testing.T) {
		derived, err := Derive(fields, testParams())
		require.NoError(t, err)

		rotated := testParams()
		rotated.Secret = "another-secret"
		moved, err := Derive(fields, rotated)
		require.NoError(t, err)
		assert.NotEqual(t, derived.Hash, moved.Hash)
	})

	t.Run("bumping the version moves the identity space", func(t *testing.T) {
		derived, err := Derive(fields, testParams())
		require.NoError(t, err)

		bumped := testParams()
		bumped.Version = "v2"
		moved, err := Derive(fields, bumped)
		require.NoError(t, err)
		assert.NotEqual(t, derived.Hash, moved.Hash)
		assert.Equal(t, "v2", moved.KDFVersion)
	})

	t.Run("empty secret is a configuration error", func(t *testing.T) {
		params := testParams()
		params.Secret = "  "
		_, err := Derive(fields, params)
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusInternalServerError))
	})

	t.Run("malformed date is a field validation error", func(t *testing.T) {
		for _, raw := range []string{"", "01-03-2019", "2019-13-01", "yesterday"} {
			_, err := Derive(Fields{DateOfBirth: raw, GuardianInitials: "jd"}, testParams())
			require.Error(t, err, "date %q", raw)
			assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
		}
	})

	t.Run("malformed initials are a field validation error", func(t *testing.T) {
		for _, raw := range []string{"", "j2", "toolong", "j d"} {
			_, err := Derive(Fields{DateOfBirth: "2019-03-01", GuardianInitials: raw}, testParams())
			require.Error(t, err, "initials %q", raw)
			assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
		}
	})

	t.Run("hash is lowercase hex", func(t *testing.T) {
		derived, err := Derive(fields, testParams())
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(derived.Hash), derived.Hash)
		assert.Regexp(t, "^[0-9a-f]+$", derived.Hash)
	})
}
