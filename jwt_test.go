package main

import (
	"testing"

	"oakwoods-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := utils.GenerateJWT("000000000000000000000001", "owner@oakwoods.test")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "000000000000000000000001", claims.UserID)
	assert.Equal(t, "owner@oakwoods.test", claims.Email)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"Пустой токен", ""},
		{"Не JWT", "not-a-token"},
		{"Поврежденный токен", "eyJhbGciOiJIUzI1NiJ9.broken.signature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := utils.ValidateJWT(tt.token)
			assert.Error(t, err)
		})
	}
}
