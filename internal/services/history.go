package services

import "alfredoptarigan/interview-practice/internal/models"

// LatestTurnPair scans the history from the end and returns the most recent
// interviewer question and candidate answer. The two halves are matched
// independently, so the latest question and latest answer are used even when
// they are not adjacent in the history. ok is false unless both were found.
func LatestTurnPair(history []models.Message) (question, answer string, ok bool) {
	var haveQuestion, haveAnswer bool

	for i := len(history) - 1; i >= 0; i-- {
		switch history[i].Role {
		case models.RoleInterviewer:
			if !haveQuestion {
				question = history[i].Content
				haveQuestion = true
			}
		case models.RoleCandidate:
			if !haveAnswer {
				answer = history[i].Content
				haveAnswer = true
			}
		}
		if haveQuestion && haveAnswer {
			break
		}
	}

	return question, answer, haveQuestion && haveAnswer
}
