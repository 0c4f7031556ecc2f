package service

import (
	"fmt"
	"math"

	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
)

// QuizSubmission 测验答卷：answers[i] 是第 i 题所选选项的下标，
// 缺答或下标越界都按答错计
type QuizSubmission struct {
	Answers []int `json:"answers"`
}

type QuizResult struct {
	Score  int  `json:"score"`
	Passed bool `json:"passed"`
	Total  int  `json:"total"`
}

// QuizService 只读判分，成绩不落盘；前端拿到分数后再决定是否申请证书
type QuizService struct {
	courses *repository.CourseRepository
}

func NewQuizService(courses *repository.CourseRepository) *QuizService {
	return &QuizService{courses: courses}
}

func (s *QuizService) SubmitQuiz(courseID string, submission QuizSubmission) (*QuizResult, error) {
	course, err := s.courses.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if course.Quiz == nil || len(course.Quiz.Questions) == 0 {
		return nil, fmt.Errorf("%w: course has no quiz", util.ErrValidation)
	}

	correct := 0
	for i, q := range course.Quiz.Questions {
		if i < len(submission.Answers) && submission.Answers[i] == q.CorrectOption {
			correct++
		}
	}

	total := len(course.Quiz.Questions)
	score := int(math.Round(100 * float64(correct) / float64(total)))
	return &QuizResult{
		Score:  score,
		Passed: score >= course.Quiz.PassingScore,
		Total:  total,
	}, nil
}
