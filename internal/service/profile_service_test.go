package service

import (
	"testing"
	"time"

	"study_tracker_backend/internal/config"
	"study_tracker_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileTokenRoundTrip(t *testing.T) {
	svc := NewProfileService(&config.Config{JWT: config.JWTConfig{Secret: "test-secret-with-enough-length", ExpireTime: time.Hour}})

	issued, err := svc.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ProfileID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, time.Minute)

	id, err := svc.Resolve(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, issued.ProfileID, id)

	other := NewProfileService(&config.Config{JWT: config.JWTConfig{Secret: "another-secret", ExpireTime: time.Hour}})
	_, err = other.Resolve(issued.Token)
	assert.ErrorIs(t, err, util.ErrInvalidProfileToken)
}
