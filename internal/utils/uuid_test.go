package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	first := NewUUID()
	second := NewUUID()

	require.NotEqual(t, uuid.Nil, first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, uuid.Version(7), first.Version())
}
