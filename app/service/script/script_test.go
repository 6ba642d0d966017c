package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAt(t *testing.T) {
	first, ok := At(0)
	require.True(t, ok)
	assert.Equal(t, "income", first.Key)

	last, ok := At(Len() - 1)
	require.True(t, ok)
	assert.Equal(t, "legal_issues", last.Key)

	_, ok = At(Len())
	assert.False(t, ok)

	_, ok = At(-1)
	assert.False(t, ok)
}

func TestStepOrder(t *testing.T) {
	want := []string{"income", "rent", "expenses", "total_debt", "creditors_count", "has_warnings", "legal_issues"}

	require.Equal(t, len(want), Len())
	for i, key := range want {
		step, ok := At(i)
		require.True(t, ok)
		assert.Equal(t, key, step.Key)
	}
}

func TestQuestionIncludesHint(t *testing.T) {
	step, ok := At(0)
	require.True(t, ok)
	assert.Contains(t, step.Question(), step.Prompt)
	assert.Contains(t, step.Question(), "\n\n("+step.Hint+")")
}
