package repository

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/store"
	"learnhub_backend/internal/util"
)

type CourseRepository struct {
	Store *store.Store
}

func NewCourseRepository(s *store.Store) *CourseRepository {
	return &CourseRepository{Store: s}
}

// FindAll 返回全部课程，保持插入顺序，返回副本
func (r *CourseRepository) FindAll() []model.Course {
	var out []model.Course
	r.Store.View(func(st *store.State) {
		out = make([]model.Course, len(st.Courses))
		copy(out, st.Courses)
	})
	return out
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var found *model.Course
	r.Store.View(func(st *store.State) {
		if c := st.Course(id); c != nil {
			cp := *c
			found = &cp
		}
	})
	if found == nil {
		return nil, util.ErrCourseNotFound
	}
	return found, nil
}
