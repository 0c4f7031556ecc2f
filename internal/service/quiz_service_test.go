package service

import (
	"errors"
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/store"
	"learnhub_backend/internal/util"
)

func newQuizFixture(t *testing.T) *QuizService {
	t.Helper()
	st := newTestStore(t)
	if err := st.Update(func(s *store.State) error {
		s.Courses = append(s.Courses,
			model.Course{
				ID:    "with-quiz",
				Title: "Go 入门",
				Quiz: &model.Quiz{
					PassingScore: 70,
					Questions: []model.Question{
						{Text: "Q1", Options: []string{"a", "b"}, CorrectOption: 0},
						{Text: "Q2", Options: []string{"a", "b"}, CorrectOption: 1},
						{Text: "Q3", Options: []string{"a", "b"}, CorrectOption: 1},
					},
				},
			},
			model.Course{ID: "no-quiz", Title: "没有测验的课"},
		)
		return nil
	}); err != nil {
		t.Fatalf("seed courses: %v", err)
	}
	return NewQuizService(repository.NewCourseRepository(st))
}

func TestSubmitQuizPassAndFail(t *testing.T) {
	svc := newQuizFixture(t)

	result, err := svc.SubmitQuiz("with-quiz", QuizSubmission{Answers: []int{0, 1, 1}})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Score != 100 || !result.Passed || result.Total != 3 {
		t.Fatalf("perfect answers: expected {100 true 3}, got %+v", result)
	}

	result, err = svc.SubmitQuiz("with-quiz", QuizSubmission{Answers: []int{0, 0, 0}})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Score != 33 || result.Passed {
		t.Fatalf("one of three: expected {33 false}, got %+v", result)
	}
}

func TestSubmitQuizShortAnswerSheet(t *testing.T) {
	svc := newQuizFixture(t)

	// 缺答按答错计
	result, err := svc.SubmitQuiz("with-quiz", QuizSubmission{Answers: []int{0}})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Score != 33 {
		t.Fatalf("expected 33, got %d", result.Score)
	}
}

func TestSubmitQuizCourseWithoutQuiz(t *testing.T) {
	svc := newQuizFixture(t)

	if _, err := svc.SubmitQuiz("no-quiz", QuizSubmission{Answers: []int{0}}); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSubmitQuizUnknownCourse(t *testing.T) {
	svc := newQuizFixture(t)

	if _, err := svc.SubmitQuiz("missing", QuizSubmission{}); !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}
