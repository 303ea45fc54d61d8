package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("traveller@example.com"))
	assert.False(t, IsEmail(""))
	assert.False(t, IsEmail("not-an-email"))
}

func TestIsTenDigitPhone(t *testing.T) {
	assert.True(t, IsTenDigitPhone("9876543210"))
	assert.False(t, IsTenDigitPhone("987654321"))
	assert.False(t, IsTenDigitPhone("98765432100"))
	assert.False(t, IsTenDigitPhone("+987654321"))
	assert.False(t, IsTenDigitPhone("98765abcde"))
}

func TestGenerateNumericOTP(t *testing.T) {
	otp, err := GenerateNumericOTP(6)
	require.NoError(t, err)
	assert.Len(t, otp, 6)
	assert.Regexp(t, `^[0-9]{6}$`, otp)

	_, err = GenerateNumericOTP(0)
	assert.Error(t, err)
}

func TestCheckHealthDegraded(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("down") }

	snap := CheckHealth(context.Background(), ok, []Pinger{ok, down})
	assert.Equal(t, "degraded", snap.Status)
	assert.True(t, snap.Mongo)
	assert.Equal(t, []bool{true, false}, snap.Redis)
	assert.Equal(t, snap, GetHealthStatus())

	snap = CheckHealth(context.Background(), ok, []Pinger{ok})
	assert.Equal(t, "ok", snap.Status)
}
