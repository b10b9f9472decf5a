package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/interview-practice/internal/models"
)

func TestLatestTurnPair(t *testing.T) {
	history := []models.Message{
		{Role: models.RoleInterviewer, Content: "Tell me about yourself."},
		{Role: models.RoleCandidate, Content: "I am a dentist with five years of experience."},
		{Role: models.RoleInterviewer, Content: "How do you handle a nervous patient?"},
		{Role: models.RoleCandidate, Content: "I explain each step before I do it."},
	}

	question, answer, ok := LatestTurnPair(history)
	assert.True(t, ok)
	assert.Equal(t, "How do you handle a nervous patient?", question)
	assert.Equal(t, "I explain each step before I do it.", answer)
}

func TestLatestTurnPairNonAdjacent(t *testing.T) {
	// The latest question and latest answer are picked independently even
	// when the history ends with two interviewer messages.
	history := []models.Message{
		{Role: models.RoleInterviewer, Content: "First question"},
		{Role: models.RoleCandidate, Content: "My answer"},
		{Role: models.RoleInterviewer, Content: "Follow-up question"},
	}

	question, answer, ok := LatestTurnPair(history)
	assert.True(t, ok)
	assert.Equal(t, "Follow-up question", question)
	assert.Equal(t, "My answer", answer)
}

func TestLatestTurnPairIncomplete(t *testing.T) {
	_, _, ok := LatestTurnPair(nil)
	assert.False(t, ok)

	_, _, ok = LatestTurnPair([]models.Message{
		{Role: models.RoleInterviewer, Content: "Only a question"},
	})
	assert.False(t, ok)

	_, _, ok = LatestTurnPair([]models.Message{
		{Role: models.RoleCandidate, Content: "Only an answer"},
	})
	assert.False(t, ok)
}
