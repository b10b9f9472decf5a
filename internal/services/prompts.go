package services

import (
	"errors"
	"fmt"
	"strings"

	"alfredoptarigan/interview-practice/internal/models"
)

// ErrUnknownInterviewType is returned when the requested interview type has
// no registered system prompt.
var ErrUnknownInterviewType = errors.New("unknown interview type")

// InterviewTypes lists the supported interview types in presentation order.
var InterviewTypes = []string{"dentist", "hygienist"}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// SystemPrompt returns the interviewer persona prompt for the interview type.
func (pb *PromptBuilder) SystemPrompt(interviewType string) (string, error) {
	prompt, ok := systemPrompts[interviewType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownInterviewType, interviewType)
	}
	return prompt, nil
}

// FirstQuestionDirective builds the directive for the opening question: a
// warm, name-personalized greeting plus an introductory question.
func (pb *PromptBuilder) FirstQuestionDirective(userName, category string) string {
	return fmt.Sprintf(`This is the first question for %s. Start with a warm greeting using their name, then ask an introductory question that helps you get to know them professionally.

Category focus: %s

Be creative and genuine in your approach. Think about what you'd genuinely want to know about this person as a hiring manager. Make it conversational and welcoming. Only provide the greeting and question, nothing else.`, userName, category)
}

// NextQuestionDirective builds the directive for questions 2-10, branching on
// how the previous answer was classified. A nil analysis falls back to a
// plain continue instruction.
func (pb *PromptBuilder) NextQuestionDirective(questionNumber int, category, previousQuestion string, analysis *models.AnswerClassification) string {
	if analysis == nil {
		return fmt.Sprintf(`Continue the interview by asking a NEW, CREATIVE question for the %s category.

Current question number: %d
Category focus: %s

Think of an original, thoughtful question that:
- Assesses the %s competency in a unique way
- Feels natural and conversational
- Is different from typical interview questions
- Shows you're genuinely curious about this candidate

Do not mention the category name explicitly.`, category, questionNumber, category, category)
	}

	switch analysis.Scenario {
	case models.ScenarioOffTopic:
		return fmt.Sprintf(`The candidate gave a totally irrelevant answer that did not address the question at all.

Previous question: %s
Analysis: %s

Your task:
1. Politely but directly state that the answer wasn't what you asked about
2. Do NOT acknowledge or validate the irrelevant content
3. Briefly restate what the question was actually asking
4. Move on to the NEXT question for the %s category

Be professional but direct. Don't dwell on it - just correct and move on to a NEW, CREATIVE question for %s.`, previousQuestion, analysis.Reasoning, category, category)

	case models.ScenarioDoesNotKnow:
		return fmt.Sprintf(`The candidate indicated they don't know the answer or are unsure how to respond.

Previous question: %s
Analysis: %s

Your task:
1. Acknowledge their honesty in a supportive way
2. Provide brief encouragement
3. Move on to the NEXT question for the %s category

Be supportive and professional. Make them feel comfortable while moving forward with a NEW, CREATIVE question.`, previousQuestion, analysis.Reasoning, category)

	default: // on topic, including the classifier's fallback default
		quality := analysis.Quality
		if quality == "" {
			quality = models.QualityGood
		}

		return fmt.Sprintf(`The candidate gave an on-topic answer.

Previous question: %s
Answer quality: %s
Analysis: %s

Your task:
1. Give a brief, natural acknowledgment (1-2 sentences) - USE VARIED LANGUAGE
2. Move to the NEXT question for the %s category

CRITICAL CREATIVITY REQUIREMENT:
- Generate a COMPLETELY NEW and ORIGINAL question for %s
- DO NOT ask questions you've asked in previous interviews
- Think creatively about different aspects of %s
- Vary your question format and approach
- Make it feel spontaneous and natural

PERSONALIZATION (when accurate and natural):
- Review what the candidate has ACTUALLY said in their previous answers
- ONLY reference experiences/details they explicitly mentioned
- If they said "no experience with X" → Don't reference X as expertise
- If unsure about their background → Ask a fresh standalone question
- Accuracy > Personalization

ACKNOWLEDGMENT VARIETY - Use different language each time:
- Acknowledge specific details from their answer
- Note their approach or reasoning
- Build naturally into the next topic
- NEVER use repetitive phrases like "thank you for sharing"

FORMAT YOUR RESPONSE:
[Brief, VARIED acknowledgment with specific reference to their answer]
[NEW, CREATIVE question for %s - make it unique and unpredictable]

Make every question feel natural, unrehearsed, and completely different from past interviews.`,
			previousQuestion, quality, analysis.Reasoning, category, category, category, category)
	}
}

// AnalysisDirective builds the classification prompt for the previous
// question/answer pair. The model must return one of three scenario codes.
func (pb *PromptBuilder) AnalysisDirective(previousQuestion, answer string) string {
	return fmt.Sprintf(`You are an expert interviewer analyzing a candidate's response.

PREVIOUS QUESTION: %s

CANDIDATE'S ANSWER: %s

Analyze this answer and classify it into ONE of these THREE scenarios:

A) CORRECT_ON_TOPIC - The answer is relevant and addresses the question (can be right, partially right, or even wrong but still within the context of what was asked)
B) OFF_TOPIC - The answer is completely irrelevant and does not address what was asked at all
C) DOES_NOT_KNOW - The candidate explicitly says they don't know, are unsure, have no experience with this, or cannot answer the question

Return ONLY a JSON object in this exact format:
{
    "scenario": "<A, B, or C>",
    "reasoning": "<brief 1-sentence explanation>",
    "answer_quality": "<good/weak/wrong/irrelevant/unknown>",
    "is_on_topic": <true or false>
}`, previousQuestion, answer)
}

// TurnEvaluationDirective builds the system prompt for grading one answer
// against the rendered rubric.
func (pb *PromptBuilder) TurnEvaluationDirective(rubricText string) string {
	return fmt.Sprintf(`You are an expert dental interview evaluator. You must evaluate a candidate's response using the provided rubric.

%s
CRITICAL INSTRUCTIONS:
1. Score each criterion independently based on the scoring guide
2. Provide a score (0-10) for EACH criterion listed in the rubric
3. Be objective and reference specific parts of the candidate's answer
4. Identify 1-2 strengths and 1-2 areas for improvement
5. Keep feedback constructive and specific
6. IF THE ANSWER IS BLANK, EMPTY, OR JUST SILENCE, SCORE ALL CRITERIA AS 0

Return your evaluation in this EXACT JSON format:
{
    "criterion_scores": {
        "<criterion_1_name>": <score_0_to_10>,
        "<criterion_2_name>": <score_0_to_10>,
        "<criterion_3_name>": <score_0_to_10>
    },
    "feedback": "<2-3 sentences explaining the scores, referencing specific parts of the answer>",
    "strengths": ["<specific strength 1>", "<specific strength 2>"],
    "improvements": ["<specific improvement 1>", "<specific improvement 2>"]
}

IMPORTANT:
- Use the EXACT criterion names from the rubric above
- Each score must be a number between 0 and 10
- Be honest but constructive
- If the answer is "I don't know" or completely off-topic, score Relevance as 0-2`, rubricText)
}

// TurnText formats the question/answer pair evaluated against the rubric.
func (pb *PromptBuilder) TurnText(question, answer string) string {
	return fmt.Sprintf(`QUESTION: %s

CANDIDATE'S ANSWER: %s

Now evaluate this answer using the rubric provided.`, question, answer)
}

// InterviewEvaluationDirective builds the system prompt for the aggregate
// end-of-interview evaluation.
func (pb *PromptBuilder) InterviewEvaluationDirective(userName, interviewType string) string {
	numbered := make([]string, len(InterviewCategories))
	for i, category := range InterviewCategories {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, category)
	}

	categoryScores := make([]string, len(InterviewCategories))
	for i, category := range InterviewCategories {
		categoryScores[i] = fmt.Sprintf("        %q: <score 0-10>", category)
	}

	return fmt.Sprintf(`You are an expert interviewer and career coach specializing in dental positions.
You have just completed an interview with %s for a %s position.

Review the entire interview conversation and provide a comprehensive, professional evaluation.

Interview Categories (in order):
%s

EVALUATION APPROACH:
- Consider the quality, depth, and professionalism of responses across all categories
- Look for patterns of strength and areas needing development
- Be specific and reference actual responses from the interview
- Balance encouragement with constructive feedback
- Consider both technical knowledge AND communication skills

SCORING GUIDELINES (0-10 scale):
- 9-10: Excellent - Comprehensive, accurate, professional responses throughout
- 7-8: Good - Strong performance with minor areas for improvement
- 5-6: Satisfactory - Adequate responses but significant room for growth
- 2-4: Needs Improvement - Multiple gaps in knowledge or communication
- 0-1: Poor - Significant deficiencies or inability to answer most questions

Provide your evaluation in the following JSON format:
{
    "overall_score": <number between 0-10>,
    "category_scores": {
%s
    },
    "strengths": [
        "<specific strength 1>",
        "<specific strength 2>",
        "<specific strength 3>"
    ],
    "areas_for_improvement": [
        "<specific area 1>",
        "<specific area 2>",
        "<specific area 3>"
    ],
    "detailed_feedback": "<2-3 paragraphs of detailed, constructive feedback covering their overall performance, communication style, technical knowledge, and professionalism>",
    "summary": "<1-2 sentences summarizing their interview performance and readiness for the role>"
}

Return ONLY the JSON object, no additional text.`,
		userName, interviewType, strings.Join(numbered, "\n"), strings.Join(categoryScores, ",\n"))
}

// Transcript renders the conversation history as labeled plain text for the
// aggregate evaluation.
func (pb *PromptBuilder) Transcript(history []models.Message) string {
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		speaker := "CANDIDATE"
		if msg.Role == models.RoleInterviewer {
			speaker = "INTERVIEWER"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, msg.Content))
	}
	return strings.Join(lines, "\n\n")
}
