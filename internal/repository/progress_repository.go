package repository

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/store"
)

type ProgressRepository struct {
	Store *store.Store
}

func NewProgressRepository(s *store.Store) *ProgressRepository {
	return &ProgressRepository{Store: s}
}

// FindByUser 返回该用户全部课程的进度记录
func (r *ProgressRepository) FindByUser(userID string) []model.ProgressRecord {
	out := []model.ProgressRecord{}
	r.Store.View(func(st *store.State) {
		for _, rec := range st.Progress {
			if rec.UserID == userID {
				out = append(out, rec)
			}
		}
	})
	return out
}
