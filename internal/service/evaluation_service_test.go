package service

import (
	"strings"
	"testing"

	"github.com/lshigami/Margays/internal/model"
)

func question(text, category, difficulty string) *model.Question {
	return &model.Question{ID: 1, Text: text, Category: category, Difficulty: difficulty}
}

// 32 words, one technical term ("algorithm"), a comma, and no overlap with
// the question tokens.
const easyAnswer = "The algorithm runs over sorted input, halving the candidate window at every step until one element remains or none fit the target value so lookups finish quickly even for very large collections."

func TestEvaluateEasyAnswerScore(t *testing.T) {
	t.Parallel()

	svc := NewEvaluationService()
	q := question("Describe binary search", "data structures", model.DifficultyEasy)

	result := svc.Evaluate(q, easyAnswer)

	// 50 baseline + 20 length + 3 technical + 10 structure, no relevance.
	if result.Score != 83 {
		t.Fatalf("expected score 83, got %d", result.Score)
	}
	if !strings.HasPrefix(result.Feedback, "Excellent") {
		t.Fatalf("expected excellent-band feedback, got %q", result.Feedback)
	}
}

func TestEvaluateShortHardAnswer(t *testing.T) {
	t.Parallel()

	svc := NewEvaluationService()
	q := question("Explain time complexity of quicksort", "algorithms", model.DifficultyHard)

	result := svc.Evaluate(q, "I don't know.")

	// No bonus applies: 4 words, no technical terms, no structure markers,
	// no question token appears in the answer.
	if result.Score != 50 {
		t.Fatalf("expected score 50, got %d", result.Score)
	}
	if !strings.Contains(result.Feedback, "longer answer") {
		t.Fatalf("expected short-answer addendum for a hard question, got %q", result.Feedback)
	}
}

func TestScoreAlwaysInRange(t *testing.T) {
	t.Parallel()

	svc := NewEvaluationService()
	texts := []string{
		"",
		"   ",
		"one",
		easyAnswer,
		strings.Repeat("algorithm database concurrency cache queue stack, ", 50),
		strings.Repeat("word ", 500),
	}
	for _, difficulty := range []string{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
		q := question("Explain the design of a distributed cache", "system design", difficulty)
		for _, text := range texts {
			result := svc.Evaluate(q, text)
			if result.Score < 0 || result.Score > 100 {
				t.Fatalf("score %d out of range for difficulty %s, text %q", result.Score, difficulty, text)
			}
		}
	}
}

func TestScoreMonotoneInWordCount(t *testing.T) {
	t.Parallel()

	svc := NewEvaluationService()
	for difficulty, thresholds := range lengthThresholds {
		q := question("Go?", "general", difficulty)
		prev := -1
		for words := 1; words <= thresholds.High; words++ {
			text := strings.TrimSpace(strings.Repeat("zzz ", words))
			result := svc.Evaluate(q, text)
			if prev > result.Score {
				t.Fatalf("score decreased from %d to %d at %d words (difficulty %s)", prev, result.Score, words, difficulty)
			}
			prev = result.Score
		}
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	t.Parallel()

	svc := NewEvaluationService()
	q := question("Describe database indexing strategies", "databases", model.DifficultyMedium)
	text := "Indexes speed up lookups because the database avoids full scans.\nB-tree and hash indexes differ."

	first := svc.Evaluate(q, text)
	second := svc.Evaluate(q, text)

	if first.Score != second.Score || first.Feedback != second.Feedback {
		t.Fatalf("evaluation is not deterministic: %v vs %v", first, second)
	}
}

func TestTechnicalTermContributionCapped(t *testing.T) {
	t.Parallel()

	svc := NewEvaluationService()
	q := question("Go?", "general", model.DifficultyEasy)

	// 10 distinct vocabulary terms, 10 words total: no length bonus, no
	// structure markers, no relevance. 50 + min(10*3, 15) = 65.
	text := "algorithm database concurrency cache queue stack hash recursion encryption latency"
	result := svc.Evaluate(q, text)
	if result.Score != 65 {
		t.Fatalf("expected technical contribution capped at 15 (score 65), got %d", result.Score)
	}
}

func TestRelevanceContributionCapped(t *testing.T) {
	t.Parallel()

	svc := NewEvaluationService()
	q := question("alpha beta gamma delta epsilon", "general", model.DifficultyEasy)

	// All five question tokens appear: 5 words, no other bonus.
	// 50 + min(5*5, 15) = 65.
	result := svc.Evaluate(q, "alpha beta gamma delta epsilon")
	if result.Score != 65 {
		t.Fatalf("expected relevance contribution capped at 15 (score 65), got %d", result.Score)
	}
}

func TestRelevanceMatchesSubstrings(t *testing.T) {
	t.Parallel()

	svc := NewEvaluationService()
	q := question("Explain quicksort", "algorithms", model.DifficultyEasy)

	// "quicksort" is embedded inside a longer word and still counts.
	result := svc.Evaluate(q, "myquicksortvariant runs fast")
	if result.Score != 55 {
		t.Fatalf("expected 50 + 5 relevance = 55, got %d", result.Score)
	}
}

func TestWordCountOfEmptyText(t *testing.T) {
	t.Parallel()

	// Splitting an empty string on whitespace runs yields one empty token.
	if got := wordCount(""); got != 1 {
		t.Fatalf("expected word count 1 for empty text, got %d", got)
	}
	if got := wordCount("   \t\n"); got != 1 {
		t.Fatalf("expected word count 1 for whitespace-only text, got %d", got)
	}
	if got := wordCount("one  two\nthree"); got != 3 {
		t.Fatalf("expected word count 3, got %d", got)
	}
}

func TestFeedbackBands(t *testing.T) {
	t.Parallel()

	long := strings.TrimSpace(strings.Repeat("zzz ", 30))
	q := question("Go?", "general", model.DifficultyMedium)

	cases := []struct {
		score  int
		prefix string
	}{
		{80, "Excellent"},
		{60, "Good answer"},
		{40, "Your answer covers the basics"},
		{39, "This answer needs improvement"},
	}
	for _, tc := range cases {
		feedback := buildFeedback(tc.score, q, long)
		if !strings.HasPrefix(feedback, tc.prefix) {
			t.Fatalf("score %d: expected feedback starting %q, got %q", tc.score, tc.prefix, feedback)
		}
	}
}

func TestStrengthsWhenAllChecksPass(t *testing.T) {
	t.Parallel()

	svc := NewEvaluationService()
	q := question("Explain this", "algorithms", model.DifficultyHard)
	text := "First, consider the algorithm below because it shows the idea:\nfunc f() {\nreturn 1\n}"

	result := svc.Evaluate(q, text)
	if len(result.Strengths) != 4 {
		t.Fatalf("expected 4 strengths, got %v", result.Strengths)
	}
	if len(result.Improvements) != 1 || result.Improvements[0] != "Keep practicing with similar questions" {
		t.Fatalf("expected the default improvement, got %v", result.Improvements)
	}
}

func TestImprovementsForBareAnswer(t *testing.T) {
	t.Parallel()

	svc := NewEvaluationService()

	// Easy difficulty gates off the code-example and terminology improvements.
	easy := svc.Evaluate(question("Go?", "general", model.DifficultyEasy), "short answer")
	if len(easy.Strengths) != 1 || easy.Strengths[0] != "Attempted to answer the question" {
		t.Fatalf("expected the default strength, got %v", easy.Strengths)
	}
	if len(easy.Improvements) != 2 {
		t.Fatalf("expected 2 improvements for an easy bare answer, got %v", easy.Improvements)
	}

	hard := svc.Evaluate(question("Go?", "general", model.DifficultyHard), "short answer")
	if len(hard.Improvements) != 4 {
		t.Fatalf("expected 4 improvements for a hard bare answer, got %v", hard.Improvements)
	}
}

func TestSuggestionsCount(t *testing.T) {
	t.Parallel()

	svc := NewEvaluationService()

	medium := svc.Evaluate(question("Go?", "databases", model.DifficultyMedium), "whatever")
	if len(medium.Suggestions) != 4 {
		t.Fatalf("expected 4 suggestions for medium, got %v", medium.Suggestions)
	}

	hard := svc.Evaluate(question("Go?", "databases", model.DifficultyHard), "whatever")
	if len(hard.Suggestions) != 6 {
		t.Fatalf("expected 6 suggestions for hard, got %v", hard.Suggestions)
	}
	if !strings.Contains(hard.Suggestions[0], "databases") || !strings.Contains(hard.Suggestions[0], "hard") {
		t.Fatalf("expected category and difficulty in the first suggestion, got %q", hard.Suggestions[0])
	}
}

func TestProgressObserverReportsCompletion(t *testing.T) {
	t.Parallel()

	svc := NewEvaluationService()
	q := question("Go?", "general", model.DifficultyEasy)

	var ticks []int
	withObserver := svc.EvaluateWithProgress(q, easyAnswer, func(percent int) {
		ticks = append(ticks, percent)
	})
	if len(ticks) != 1 || ticks[0] != 100 {
		t.Fatalf("expected a single 100%% tick, got %v", ticks)
	}

	plain := svc.Evaluate(q, easyAnswer)
	if plain.Score != withObserver.Score {
		t.Fatalf("observer changed the result: %d vs %d", plain.Score, withObserver.Score)
	}
}
