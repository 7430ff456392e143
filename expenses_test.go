package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpenseCreateAndList(t *testing.T) {
	app, _ := setupTestApp()
	token := generateTestJWT()

	expenses := []map[string]interface{}{
		{"description": "Generator Fuel", "amount": 15000, "date": "2026-02-18"},
		{"description": "Transport for Ibrahim", "amount": 3500, "date": "2026-02-17"},
	}

	for _, expense := range expenses {
		resp, err := doJSON(app, "POST", "/expenses", expense, token)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
		assert.NotEmpty(t, decodeMap(resp)["id"])
	}

	resp, err := doJSON(app, "GET", "/expenses", nil, token)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	list := decodeList(resp)
	assert.Len(t, list, 2)
	for _, expense := range list {
		assert.NotEmpty(t, expense["id"])
		assert.NotEmpty(t, expense["created_at"])
		assert.NotContains(t, expense, "_id")
	}
	assert.Equal(t, "Generator Fuel", list[0]["description"])
	assert.EqualValues(t, 15000, list[0]["amount"])
}
