package service

import (
	"math"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/store"
	"learnhub_backend/internal/util"
)

type ProgressService struct {
	progress *repository.ProgressRepository
	store    *store.Store
}

func NewProgressService(progress *repository.ProgressRepository, st *store.Store) *ProgressService {
	return &ProgressService{progress: progress, store: st}
}

// RecordLessonCompletion 上报一次课时完成。
// (userID, courseID) 的记录不存在则懒创建；重复上报同一课时不改变结果。
// 没有任何课时的课程视为天然完成（进度 100）。
func (s *ProgressService) RecordLessonCompletion(courseID, lessonID, userID string) (*model.ProgressSnapshot, error) {
	var snap model.ProgressSnapshot
	err := s.store.Update(func(st *store.State) error {
		course := st.Course(courseID)
		if course == nil {
			return util.ErrCourseNotFound
		}

		rec := st.ProgressFor(userID, courseID)
		if rec == nil {
			st.Progress = append(st.Progress, model.ProgressRecord{
				UserID:           userID,
				CourseID:         courseID,
				CompletedLessons: []string{},
			})
			rec = &st.Progress[len(st.Progress)-1]
		}

		if !rec.HasCompleted(lessonID) {
			rec.CompletedLessons = append(rec.CompletedLessons, lessonID)
		}

		rec.Progress = completionPercent(course, rec.CompletedLessons)
		rec.Completed = rec.Progress == 100

		snap = model.ProgressSnapshot{Progress: rec.Progress, Completed: rec.Completed}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *ProgressService) GetProgressForUser(userID string) []model.ProgressRecord {
	return s.progress.FindByUser(userID)
}

// completionPercent 只把属于该课程的课时计入分子，
// 历史上报中已失效的课时 ID 不会把进度推过 100
func completionPercent(course *model.Course, completed []string) int {
	total := len(course.Lessons)
	if total == 0 {
		return 100
	}

	done := 0
	for _, lesson := range course.Lessons {
		for _, id := range completed {
			if id == lesson.ID {
				done++
				break
			}
		}
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}
