package models

// Conversation roles. The caller owns the full history and replays it on
// every request; nothing is stored server-side.
const (
	RoleInterviewer = "interviewer"
	RoleCandidate   = "candidate"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type StartInterviewRequest struct {
	InterviewType string `json:"interview_type"`
	UserName      string `json:"user_name"`
	UserEmail     string `json:"user_email"`
}

type QuestionRequest struct {
	InterviewType       string    `json:"interview_type"`
	ConversationHistory []Message `json:"conversation_history"`
	QuestionNumber      int       `json:"question_number"`
	UserName            string    `json:"user_name"`
}

type QuestionResponse struct {
	InterviewID    string `json:"interview_id,omitempty"`
	Question       string `json:"question"`
	Category       string `json:"category"`
	QuestionNumber int    `json:"question_number"`
	AudioBase64    string `json:"audio_base64,omitempty"`
}

type TurnEvaluationRequest struct {
	InterviewType string `json:"interview_type"`
	Category      string `json:"category"`
	Question      string `json:"question"`
	Answer        string `json:"answer"`
	TurnNumber    int    `json:"turn_number"`
}

// TurnScore is the per-answer evaluation result. CriterionScores carries the
// raw 0-10 score per rubric criterion; OverallTurnScore is the weighted
// average rounded to one decimal.
type TurnScore struct {
	TurnNumber       int                `json:"turn_number"`
	Question         string             `json:"question"`
	Answer           string             `json:"answer"`
	Category         string             `json:"category"`
	CriterionScores  map[string]float64 `json:"criterion_scores"`
	OverallTurnScore float64            `json:"overall_turn_score"`
	Feedback         string             `json:"feedback"`
	Strengths        []string           `json:"strengths"`
	Improvements     []string           `json:"improvements"`
}

type TurnEvaluationResponse struct {
	TurnScore TurnScore `json:"turn_score"`
}

type InterviewEvaluationRequest struct {
	InterviewType       string    `json:"interview_type"`
	ConversationHistory []Message `json:"conversation_history"`
	UserName            string    `json:"user_name"`
}

type InterviewEvaluationResponse struct {
	OverallScore        float64            `json:"overall_score"`
	CategoryScores      map[string]float64 `json:"category_scores"`
	Strengths           []string           `json:"strengths"`
	AreasForImprovement []string           `json:"areas_for_improvement"`
	DetailedFeedback    string             `json:"detailed_feedback"`
	Summary             string             `json:"summary"`
}

type AudioResponse struct {
	AudioBase64 string `json:"audio_base64"`
	ContentType string `json:"content_type"`
}

type TranscriptionResponse struct {
	Transcription string `json:"transcription"`
	Success       bool   `json:"success"`
}
