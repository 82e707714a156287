package service

import (
	"fmt"
	"strings"

	"github.com/lshigami/Margays/internal/model"
)

// Keyword tables used by the evaluator. They are data, not logic, so tests
// can enumerate them and product can extend them without touching scoring.
var (
	technicalTerms = []string{
		"algorithm", "data structure", "complexity", "database", "optimization",
		"scalability", "concurrency", "thread", "cache", "index",
		"recursion", "hash", "queue", "stack", "design pattern",
		"api", "latency", "throughput", "transaction", "encryption",
	}

	analysisTerms = []string{"algorithm", "complexity", "optimization"}

	causalConnectives = []string{"because", "therefore", "this means"}

	codeMarkers = []string{"```", "{", "}", "[", "]"}
)

// structureMarkers are the characters whose presence earns the structure bonus.
const structureMarkers = "\n:;,"

// Word-count thresholds for the length bonus, per difficulty. The high
// threshold is checked first; the mid bonus is not cumulative with it.
var lengthThresholds = map[string]struct{ High, Mid int }{
	model.DifficultyEasy:   {High: 30, Mid: 15},
	model.DifficultyMedium: {High: 60, Mid: 40},
	model.DifficultyHard:   {High: 100, Mid: 70},
}

const (
	baselineScore      = 50
	highLengthBonus    = 20
	midLengthBonus     = 10
	technicalTermBonus = 3
	technicalTermCap   = 15
	structureBonus     = 10
	relevanceBonus     = 5
	relevanceCap       = 15
	shortAnswerWords   = 20
)

// EvaluationResult carries everything the heuristic produces for one answer.
type EvaluationResult struct {
	Score        int
	Feedback     string
	Strengths    []string
	Improvements []string
	Suggestions  []string
}

// ProgressObserver receives the evaluation progress as a 0-100 percentage.
type ProgressObserver func(percent int)

// EvaluationService scores an answer against its question. It is a pure
// function of its inputs: no I/O, no shared state, identical output for
// identical input.
type EvaluationService interface {
	Evaluate(question *model.Question, answerText string) EvaluationResult
	// EvaluateWithProgress is Evaluate with an optional observer. The result
	// is computed synchronously and a single 100% tick is reported.
	EvaluateWithProgress(question *model.Question, answerText string, observer ProgressObserver) EvaluationResult
}

type evaluationService struct{}

func NewEvaluationService() EvaluationService {
	return &evaluationService{}
}

func (s *evaluationService) Evaluate(question *model.Question, answerText string) EvaluationResult {
	return s.EvaluateWithProgress(question, answerText, nil)
}

func (s *evaluationService) EvaluateWithProgress(question *model.Question, answerText string, observer ProgressObserver) EvaluationResult {
	result := EvaluationResult{
		Score:        computeScore(question, answerText),
		Strengths:    analyzeStrengths(question, answerText),
		Improvements: analyzeImprovements(question, answerText),
		Suggestions:  buildSuggestions(question),
	}
	result.Feedback = buildFeedback(result.Score, question, answerText)

	if observer != nil {
		observer(100)
	}
	return result
}

// computeScore starts at the baseline and adds independently capped,
// non-negative adjustments, then clamps to [0, 100].
func computeScore(question *model.Question, answerText string) int {
	score := baselineScore
	lower := strings.ToLower(answerText)

	// Length bonus on word count, thresholds per difficulty.
	words := wordCount(answerText)
	if t, ok := lengthThresholds[question.Difficulty]; ok {
		if words >= t.High {
			score += highLengthBonus
		} else if words >= t.Mid {
			score += midLengthBonus
		}
	}

	// Technical depth: distinct vocabulary terms found anywhere in the text.
	technical := 0
	for _, term := range technicalTerms {
		if strings.Contains(lower, term) {
			technical += technicalTermBonus
		}
	}
	if technical > technicalTermCap {
		technical = technicalTermCap
	}
	score += technical

	// Structure: any line break or list/clause punctuation.
	if strings.ContainsAny(answerText, structureMarkers) {
		score += structureBonus
	}

	// Relevance: question tokens longer than 3 characters found in the
	// answer. Substring semantics, so a token embedded in a longer word
	// still counts.
	relevance := 0
	for _, token := range strings.Fields(strings.ToLower(question.Text)) {
		if len(token) > 3 && strings.Contains(lower, token) {
			relevance += relevanceBonus
		}
	}
	if relevance > relevanceCap {
		relevance = relevanceCap
	}
	score += relevance

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func buildFeedback(score int, question *model.Question, answerText string) string {
	var feedback string
	switch {
	case score >= 80:
		feedback = "Excellent answer! Comprehensive and well-structured."
	case score >= 60:
		feedback = "Good answer with solid coverage of the topic."
	case score >= 40:
		feedback = "Your answer covers the basics, but could be more detailed."
	default:
		feedback = "This answer needs improvement. Add technical depth and concrete examples."
	}

	if wordCount(answerText) < shortAnswerWords && question.Difficulty != model.DifficultyEasy {
		feedback += " A question of this difficulty usually deserves a longer answer."
	}
	return feedback
}

func analyzeStrengths(question *model.Question, answerText string) []string {
	var strengths []string
	lower := strings.ToLower(answerText)

	if containsAnyOf(answerText, codeMarkers) {
		strengths = append(strengths, "Included code examples")
	}
	if len(strings.Split(answerText, "\n")) > 3 {
		strengths = append(strengths, "Well-structured response")
	}
	if containsAnyOf(lower, analysisTerms) {
		strengths = append(strengths, "Used appropriate technical terminology")
	}
	if containsAnyOf(lower, causalConnectives) {
		strengths = append(strengths, "Clear explanations and reasoning")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Attempted to answer the question")
	}
	return strengths
}

func analyzeImprovements(question *model.Question, answerText string) []string {
	var improvements []string
	lower := strings.ToLower(answerText)

	if !containsAnyOf(answerText, codeMarkers) && question.Difficulty != model.DifficultyEasy {
		improvements = append(improvements, "Add code examples to illustrate your points")
	}
	if len(strings.Split(answerText, "\n")) <= 3 {
		improvements = append(improvements, "Use line breaks to structure your answer for clarity")
	}
	if !containsAnyOf(lower, analysisTerms) && question.Difficulty != model.DifficultyEasy {
		improvements = append(improvements, "Use more technical terminology")
	}
	if !containsAnyOf(lower, causalConnectives) {
		improvements = append(improvements, "Explain the reasoning behind your statements")
	}

	if len(improvements) == 0 {
		improvements = append(improvements, "Keep practicing with similar questions")
	}
	return improvements
}

func buildSuggestions(question *model.Question) []string {
	suggestions := []string{
		fmt.Sprintf("Practice more %s questions at %s difficulty", question.Category, question.Difficulty),
		fmt.Sprintf("Review the fundamentals of %s", question.Category),
		"Structure answers with a short introduction, details, and a conclusion",
		"Include concrete examples from projects you have worked on",
	}
	if question.Difficulty == model.DifficultyHard {
		suggestions = append(suggestions,
			"Break complex problems into smaller parts before answering",
			"Discuss trade-offs between alternative approaches",
		)
	}
	return suggestions
}

// wordCount splits on whitespace runs. Splitting text with no words still
// yields a single empty token, so the count is never below 1.
func wordCount(text string) int {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 1
	}
	return len(words)
}

func containsAnyOf(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
