package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCorrect() SubmittedAnswers {
	return SubmittedAnswers{
		Q1: TextAnswer("service worker"),
		Q2: TextAnswer("b"),
		Q3: TextAnswer("c"),
		Q4: TextAnswer("b"),
		Q5: ChoiceAnswer("progressive", "responsive", "offline", "installable"),
	}
}

func mustQuestion(t *testing.T, id QuestionID) Question {
	t.Helper()
	q, ok := DefaultKey().Question(id)
	require.True(t, ok, "question %s missing from default key", id)
	return q
}

func TestFillInBlank(t *testing.T) {
	q := mustQuestion(t, Q1)

	tests := []struct {
		input string
		want  bool
	}{
		{"service worker", true},
		{"Service Worker", true},
		{" service worker ", true},
		{"SERVICE WORKER\n", true},
		{"serviceworker", true},
		{"service-worker", true},
		{"Service-Worker", true},
		{"worker service", false},
		{"service  worker", false},
		{"service workers", false},
		{"web worker", false},
		{"", false},
		{"   ", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := FillInBlank(q, tc.input)
			assert.Equal(t, tc.want, got.Correct)
			if tc.want {
				assert.Equal(t, 5, got.Score)
			} else {
				assert.Equal(t, 0, got.Score)
			}
			assert.Equal(t, 5, got.MaxScore)
			assert.Equal(t, 1, got.QuestionNum)
			assert.Equal(t, "service worker", got.CorrectAnswer)
		})
	}
}

func TestFillInBlank_DisplaysNormalizedAnswer(t *testing.T) {
	q := mustQuestion(t, Q1)

	assert.Equal(t, "service worker", FillInBlank(q, "  Service Worker ").UserAnswer)
	assert.Equal(t, NoAnswer, FillInBlank(q, "  ").UserAnswer)
}

func TestSingleChoice(t *testing.T) {
	tests := []struct {
		id          QuestionID
		correctKey  string
		description string
	}{
		{Q2, "b", "HTTPS (Hypertext Transfer Protocol Secure)"},
		{Q3, "c", "To provide metadata about the app and control how it appears when installed"},
		{Q4, "b", "Network First"},
	}

	for _, tc := range tests {
		t.Run(string(tc.id), func(t *testing.T) {
			q := mustQuestion(t, tc.id)

			got := SingleChoice(q, tc.correctKey)
			assert.True(t, got.Correct)
			assert.Equal(t, 5, got.Score)
			assert.Equal(t, tc.correctKey, got.UserAnswer)
			assert.Equal(t, tc.description, got.CorrectAnswer)

			for _, opt := range q.Options {
				if opt.Key == tc.correctKey {
					continue
				}
				wrong := SingleChoice(q, opt.Key)
				assert.False(t, wrong.Correct, "key %q", opt.Key)
				assert.Equal(t, 0, wrong.Score, "key %q", opt.Key)
			}

			none := SingleChoice(q, "")
			assert.False(t, none.Correct)
			assert.Equal(t, 0, none.Score)
			assert.Equal(t, NoAnswer, none.UserAnswer)
		})
	}
}

func TestSingleChoice_ExactKeyOnly(t *testing.T) {
	q := mustQuestion(t, Q2)

	for _, in := range []string{"B", " b", "b ", "HTTPS", "z"} {
		assert.False(t, SingleChoice(q, in).Correct, "input %q", in)
	}
}

func TestGrade_SingleChoiceReadsTextOnly(t *testing.T) {
	g := NewGrader(DefaultKey())

	res := g.Grade(SubmittedAnswers{Q2: ChoiceAnswer("b")})
	assert.False(t, res.Questions[1].Correct)
	assert.Equal(t, 0, res.Questions[1].Score)
	assert.Equal(t, NoAnswer, res.Questions[1].UserAnswer)

	res = g.Grade(SubmittedAnswers{Q2: TextAnswer("b")})
	assert.True(t, res.Questions[1].Correct)
}

func TestMultiSelect(t *testing.T) {
	q := mustQuestion(t, Q5)

	tests := []struct {
		name    string
		answers []string
		want    bool
	}{
		{"exact", []string{"progressive", "responsive", "offline", "installable"}, true},
		{"any order", []string{"installable", "offline", "progressive", "responsive"}, true},
		{"duplicates collapse", []string{"progressive", "progressive", "responsive", "offline", "installable"}, true},
		{"proper subset", []string{"progressive", "responsive", "offline"}, false},
		{"single member", []string{"offline"}, false},
		{"superset", []string{"progressive", "responsive", "offline", "installable", "native"}, false},
		{"disjoint", []string{"native", "server-rendered"}, false},
		{"same size different members", []string{"progressive", "responsive", "offline", "native"}, false},
		{"empty", []string{}, false},
		{"nil", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MultiSelect(q, tc.answers)
			assert.Equal(t, tc.want, got.Correct)
			if tc.want {
				assert.Equal(t, 10, got.Score)
			} else {
				assert.Equal(t, 0, got.Score)
			}
			assert.Equal(t, 10, got.MaxScore)
		})
	}
}

func TestMultiSelect_DisplaysSelectionsInOrder(t *testing.T) {
	q := mustQuestion(t, Q5)

	got := MultiSelect(q, []string{"offline", "progressive"})
	assert.Equal(t, "offline, progressive", got.UserAnswer)
	assert.Equal(t, "Progressive, Responsive, Connectivity Independent (Offline), Installable", got.CorrectAnswer)

	assert.Equal(t, NoAnswer, MultiSelect(q, nil).UserAnswer)
}

func TestGrade_AllCorrect(t *testing.T) {
	g := NewGrader(DefaultKey())

	res := g.Grade(allCorrect())

	assert.Equal(t, 30, res.TotalScore)
	assert.Equal(t, 30, res.MaxScore)
	assert.True(t, res.Passed)
	assert.Equal(t, 100, res.Percentage())
	assert.Equal(t, 5, res.CorrectCount())
}

func TestGrade_OnlyFillInAndMultiSelectCorrect(t *testing.T) {
	g := NewGrader(DefaultKey())

	res := g.Grade(SubmittedAnswers{
		Q1: TextAnswer("serviceworker"),
		Q2: TextAnswer("a"),
		Q3: TextAnswer("a"),
		Q4: TextAnswer("a"),
		Q5: ChoiceAnswer("responsive", "installable", "progressive", "offline"),
	})

	assert.Equal(t, 15, res.TotalScore)
	assert.False(t, res.Passed)
	assert.Equal(t, 50, res.Percentage())
}

func TestGrade_QuestionOrder(t *testing.T) {
	res := NewGrader(DefaultKey()).Grade(nil)

	require.Len(t, res.Questions, 5)
	for i, qr := range res.Questions {
		assert.Equal(t, i+1, qr.QuestionNum)
	}
}

func TestGrade_EmptyAnswersAreTotal(t *testing.T) {
	g := NewGrader(DefaultKey())

	for name, answers := range map[string]SubmittedAnswers{
		"nil":   nil,
		"empty": {},
		"blank": {
			Q1: TextAnswer(""),
			Q2: TextAnswer(""),
			Q3: TextAnswer(""),
			Q4: TextAnswer(""),
			Q5: ChoiceAnswer(),
		},
		"unknown ids": {"q9": TextAnswer("b")},
	} {
		t.Run(name, func(t *testing.T) {
			res := g.Grade(answers)
			assert.Equal(t, 0, res.TotalScore)
			assert.Equal(t, 30, res.MaxScore)
			assert.False(t, res.Passed)
			require.Len(t, res.Questions, 5)
			for _, qr := range res.Questions {
				assert.False(t, qr.Correct)
				assert.Equal(t, 0, qr.Score)
				assert.Equal(t, NoAnswer, qr.UserAnswer)
			}
		})
	}
}

func TestGrade_MaxScoresSumToTotal(t *testing.T) {
	res := NewGrader(DefaultKey()).Grade(nil)

	sum := 0
	for _, qr := range res.Questions {
		sum += qr.MaxScore
	}
	assert.Equal(t, MaxScore, sum)
	assert.Equal(t, MaxScore, res.MaxScore)
}

func TestGrade_PassBoundary(t *testing.T) {
	key := NewAnswerKey([]Question{
		{ID: Q1, Num: 1, Kind: KindSingleChoice, Points: 11, Accepted: []string{"a"}},
		{ID: Q2, Num: 2, Kind: KindSingleChoice, Points: 10, Accepted: []string{"a"}},
		{ID: Q3, Num: 3, Kind: KindSingleChoice, Points: 9, Accepted: []string{"a"}},
	})
	require.Equal(t, 30, key.MaxScore())
	g := NewGrader(key)

	pass := g.Grade(SubmittedAnswers{Q1: TextAnswer("a"), Q2: TextAnswer("a")})
	assert.Equal(t, 21, pass.TotalScore)
	assert.True(t, pass.Passed)

	fail := g.Grade(SubmittedAnswers{Q1: TextAnswer("a"), Q3: TextAnswer("a")})
	assert.Equal(t, 20, fail.TotalScore)
	assert.False(t, fail.Passed)
}

func TestGrade_DefaultKeyNearMisses(t *testing.T) {
	g := NewGrader(DefaultKey())

	fourSingles := allCorrect()
	fourSingles[Q5] = ChoiceAnswer("progressive")
	res := g.Grade(fourSingles)
	assert.Equal(t, 20, res.TotalScore)
	assert.False(t, res.Passed)

	missOne := allCorrect()
	missOne[Q4] = TextAnswer("a")
	res = g.Grade(missOne)
	assert.Equal(t, 25, res.TotalScore)
	assert.True(t, res.Passed)
}

func TestGrade_Idempotent(t *testing.T) {
	g := NewGrader(DefaultKey())
	answers := SubmittedAnswers{
		Q1: TextAnswer(" Service-Worker "),
		Q3: TextAnswer("c"),
		Q5: ChoiceAnswer("offline", "installable"),
	}

	first := g.Grade(answers)
	second := g.Grade(answers)

	assert.Equal(t, first, second)
	assert.Equal(t, " Service-Worker ", answers[Q1].Text, "grading must not modify input")
}

func TestGrade_UnknownKindIsIncorrect(t *testing.T) {
	key := NewAnswerKey([]Question{
		{ID: Q1, Num: 1, Kind: Kind("essay"), Points: 5, Accepted: []string{"x"}},
	})

	res := NewGrader(key).Grade(SubmittedAnswers{Q1: TextAnswer("x")})
	require.Len(t, res.Questions, 1)
	assert.False(t, res.Questions[0].Correct)
	assert.Equal(t, 0, res.TotalScore)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		total, max, want int
	}{
		{30, 30, 100},
		{15, 30, 50},
		{20, 30, 67},
		{25, 30, 83},
		{5, 30, 17},
		{0, 30, 0},
		{0, 0, 0},
	}
	for _, tc := range tests {
		got := QuizResult{TotalScore: tc.total, MaxScore: tc.max}.Percentage()
		assert.Equal(t, tc.want, got, "%d/%d", tc.total, tc.max)
	}
}
