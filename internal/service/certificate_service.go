package service

import (
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/store"
	"learnhub_backend/internal/util"

	"github.com/google/uuid"
)

type CertificateService struct {
	certificates *repository.CertificateRepository
	store        *store.Store
}

func NewCertificateService(certificates *repository.CertificateRepository, st *store.Store) *CertificateService {
	return &CertificateService{certificates: certificates, store: st}
}

// IssueCertificate 为 (userID, courseID) 签发一张证书并返回其 ID。
// 不校验进度是否到 100：重复调用会重复发证，与线上前端的调用约定一致。
// 若已有进度记录则回填证书引用。
func (s *CertificateService) IssueCertificate(courseID, userID string, score *int) (string, error) {
	var id string
	err := s.store.Update(func(st *store.State) error {
		course := st.Course(courseID)
		if course == nil {
			return util.ErrCourseNotFound
		}

		cert := model.Certificate{
			ID:          uuid.NewString(),
			UserID:      userID,
			CourseID:    courseID,
			CourseTitle: course.Title,
			IssuedAt:    time.Now(),
			Score:       score,
		}
		st.Certificates = append(st.Certificates, cert)

		if rec := st.ProgressFor(userID, courseID); rec != nil {
			rec.CertificateID = cert.ID
		}

		id = cert.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *CertificateService) ListCertificatesForUser(userID string) []model.Certificate {
	return s.certificates.FindByUser(userID)
}
