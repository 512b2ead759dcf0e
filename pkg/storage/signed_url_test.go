package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignedURLSignerGenerateAndParse(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	token, expiresAt, err := signer.Generate("job.1", "leave-requests/file.csv")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	jobID, path, parsedExpiry, err := signer.Parse(token, false)
	require.NoError(t, err)
	require.Equal(t, "job.1", jobID)
	require.Equal(t, "leave-requests/file.csv", path)
	require.True(t, expiresAt.Equal(parsedExpiry))
}

func TestSignedURLSignerExpired(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Minute)
	now := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
	signer.now = func() time.Time { return now }

	token, _, err := signer.Generate("job-1", "file.csv")
	require.NoError(t, err)
	now = now.Add(2 * time.Minute)

	_, _, _, err = signer.Parse(token, false)
	require.ErrorIs(t, err, ErrTokenExpired)

	jobID, path, _, err := signer.Parse(token, true)
	require.NoError(t, err)
	require.Equal(t, "job-1", jobID)
	require.Equal(t, "file.csv", path)
}

func TestSignedURLSignerRejectsTampering(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	token, _, err := signer.Generate("job-1", "file.csv")
	require.NoError(t, err)

	other := NewSignedURLSigner("other", time.Hour)
	_, _, _, err = other.Parse(token, false)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, _, _, err = signer.Parse("not-a-token", false)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = NewSignedURLSigner("", time.Hour).Generate("job-1", "file.csv")
	require.Error(t, err)
}
