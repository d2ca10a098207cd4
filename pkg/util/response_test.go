package util

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResponseDefaultsMessage(t *testing.T) {
	resp := NewResponse(http.StatusOK, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Success", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestNewResponseKeepsExplicitMessage(t *testing.T) {
	resp := NewResponse(http.StatusCreated, map[string]string{"id": "TNT_0000000001"}, "Tenant created")
	assert.Equal(t, "Tenant created", resp.Message)
}
