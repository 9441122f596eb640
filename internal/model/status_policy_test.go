package model

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeletePolicy(t *testing.T) {
	assert.True(t, DeletePolicy.IsSuccess(http.StatusOK))
	assert.True(t, DeletePolicy.IsSuccess(http.StatusAccepted))
	assert.False(t, DeletePolicy.IsSuccess(http.StatusCreated))
	assert.False(t, DeletePolicy.IsSuccess(http.StatusNotFound))
	assert.False(t, DeletePolicy.IsSuccess(http.StatusPreconditionFailed))
}

func TestDocumentPolicy(t *testing.T) {
	assert.True(t, DocumentPolicy.IsSuccess(http.StatusCreated))
	assert.True(t, DocumentPolicy.IsSuccess(http.StatusAccepted))
	assert.False(t, DocumentPolicy.IsSuccess(http.StatusConflict))
}

func TestCursorPolicy(t *testing.T) {
	assert.True(t, CursorPolicy.IsSuccess(http.StatusCreated))
	assert.False(t, CursorPolicy.IsSuccess(http.StatusBadRequest))
}
