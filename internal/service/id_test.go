package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntryID_ParsesAndDiffers(t *testing.T) {
	first := newEntryID()
	second := newEntryID()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	_, err = uuid.Parse(second)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
