package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTopic(t *testing.T) {
	tp, err := NewTopic("Bug report", "Something is broken", true, false)
	require.NoError(t, err)
	assert.Equal(t, "Bug report", tp.Name())
	assert.True(t, tp.IsQuickAction())
	assert.False(t, tp.IsUrgent())

	_, err = NewTopic("", "desc", false, false)
	require.Error(t, err)

	// urgent implies quick action
	_, err = NewTopic("Urgent request", "", false, true)
	require.Error(t, err)

	urgent, err := NewTopic("Urgent request", "", true, true)
	require.NoError(t, err)
	assert.True(t, urgent.IsUrgent())
}
