package controller

import (
	"errors"
	"net/http"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
}

func NewCertificateController(certificateService *service.CertificateService) *CertificateController {
	return &CertificateController{CertificateService: certificateService}
}

type issueCertificateRequest struct {
	UserID string `json:"userId"`
	Score  *int   `json:"score"`
}

// @Summary 签发证书
// @Tags 证书
// @Accept json
// @Produce json
// @Param courseId path string true "课程ID"
// @Param body body issueCertificateRequest true "用户与可选成绩"
// @Success 201 {object} map[string]string
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/courses/{courseId}/certificates [post]
func (c *CertificateController) IssueCertificate(ctx *gin.Context) {
	var req issueCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid JSON body")
		return
	}
	if req.UserID == "" {
		util.BadRequest(ctx, "userId is required")
		return
	}

	id, err := c.CertificateService.IssueCertificate(ctx.Param("courseId"), req.UserID, req.Score)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "course not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary 用户证书列表
// @Tags 证书
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {array} model.Certificate
// @Router /api/certificates/{userId} [get]
func (c *CertificateController) ListForUser(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.CertificateService.ListCertificatesForUser(ctx.Param("userId")))
}
