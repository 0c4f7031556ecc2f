package repository

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/store"
)

type CertificateRepository struct {
	Store *store.Store
}

func NewCertificateRepository(s *store.Store) *CertificateRepository {
	return &CertificateRepository{Store: s}
}

// FindByUser 返回该用户名下已签发的全部证书
func (r *CertificateRepository) FindByUser(userID string) []model.Certificate {
	out := []model.Certificate{}
	r.Store.View(func(st *store.State) {
		for _, cert := range st.Certificates {
			if cert.UserID == userID {
				out = append(out, cert)
			}
		}
	})
	return out
}
