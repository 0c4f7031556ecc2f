package service

import (
	"fmt"
	"strings"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/store"
	"learnhub_backend/internal/util"

	"github.com/google/uuid"
)

// CreateCourseRequest 创建课程的入参，id 由服务端生成
type CreateCourseRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Duration    string         `json:"duration"`
	Lessons     []model.Lesson `json:"lessons"`
	Quiz        *model.Quiz    `json:"quiz"`
}

// UpdateCourseRequest 部分更新，只合并显式出现的字段
type UpdateCourseRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Category    *string         `json:"category"`
	Duration    *string         `json:"duration"`
	Lessons     *[]model.Lesson `json:"lessons"`
	Quiz        *model.Quiz     `json:"quiz"`
}

type CatalogService struct {
	courses *repository.CourseRepository
	store   *store.Store
}

func NewCatalogService(courses *repository.CourseRepository, st *store.Store) *CatalogService {
	return &CatalogService{courses: courses, store: st}
}

func (s *CatalogService) ListCourses() []model.Course {
	return s.courses.FindAll()
}

func (s *CatalogService) GetCourse(id string) (*model.Course, error) {
	return s.courses.FindByID(id)
}

// CreateCourse 校验必填字段后生成 ID 并追加到目录。课程只增不删。
func (s *CatalogService) CreateCourse(req CreateCourseRequest) (*model.Course, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", util.ErrValidation)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", util.ErrValidation)
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", util.ErrValidation)
	}

	lessons := req.Lessons
	if lessons == nil {
		lessons = []model.Lesson{}
	}

	course := model.Course{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Duration:    req.Duration,
		Lessons:     lessons,
		Quiz:        req.Quiz,
		CreatedAt:   time.Now(),
	}

	err := s.store.Update(func(st *store.State) error {
		st.Courses = append(st.Courses, course)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse 浅合并：请求里出现的字段整体覆盖，未出现的保持原值
func (s *CatalogService) UpdateCourse(id string, req UpdateCourseRequest) (*model.Course, error) {
	var updated model.Course
	err := s.store.Update(func(st *store.State) error {
		course := st.Course(id)
		if course == nil {
			return util.ErrCourseNotFound
		}

		if req.Title != nil {
			course.Title = *req.Title
		}
		if req.Description != nil {
			course.Description = *req.Description
		}
		if req.Category != nil {
			course.Category = *req.Category
		}
		if req.Duration != nil {
			course.Duration = *req.Duration
		}
		if req.Lessons != nil {
			course.Lessons = *req.Lessons
		}
		if req.Quiz != nil {
			course.Quiz = req.Quiz
		}

		updated = *course
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
