package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryForQuestion(t *testing.T) {
	first, err := CategoryForQuestion(1)
	require.NoError(t, err)
	assert.Equal(t, "Introduction", first)

	third, err := CategoryForQuestion(3)
	require.NoError(t, err)
	assert.Equal(t, "Technical Knowledge - Clinical Procedures", third)

	last, err := CategoryForQuestion(10)
	require.NoError(t, err)
	assert.Equal(t, InterviewCategories[9], last)
}

func TestCategoryForQuestionOutOfRange(t *testing.T) {
	for _, number := range []int{0, -1, 11, 100} {
		_, err := CategoryForQuestion(number)
		require.Error(t, err)

		var rangeErr *QuestionNumberError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, number, rangeErr.Number)
	}
}

func TestInterviewCategoriesCount(t *testing.T) {
	assert.Len(t, InterviewCategories, 10)
}
