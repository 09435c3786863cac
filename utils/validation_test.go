package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+66812345678",
		"+1 (555) 123-4567",
		"66-81-234-5678",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{
		"",
		"abc",
		"+",
		"++66812345678",
		"081234567890123456",
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}

func TestGenerateJWTSecret(t *testing.T) {
	first := GenerateJWTSecret()
	second := GenerateJWTSecret()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)

	decoded, err := base64.StdEncoding.DecodeString(first)
	assert.NoError(t, err)
	assert.Len(t, decoded, 32)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}
