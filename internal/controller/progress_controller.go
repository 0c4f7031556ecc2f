package controller

import (
	"errors"
	"net/http"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type recordLessonRequest struct {
	UserID string `json:"userId"`
}

// @Summary 上报课时完成
// @Description 幂等：重复上报同一课时不改变进度
// @Tags 学习进度
// @Accept json
// @Produce json
// @Param courseId path string true "课程ID"
// @Param lessonId path string true "课时ID"
// @Param body body recordLessonRequest true "上报用户"
// @Success 200 {object} model.ProgressSnapshot
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/courses/{courseId}/lessons/{lessonId}/progress [patch]
func (c *ProgressController) RecordLessonCompletion(ctx *gin.Context) {
	var req recordLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid JSON body")
		return
	}
	if req.UserID == "" {
		util.BadRequest(ctx, "userId is required")
		return
	}

	snap, err := c.ProgressService.RecordLessonCompletion(
		ctx.Param("courseId"), ctx.Param("lessonId"), req.UserID)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "course not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

// @Summary 用户进度
// @Description 返回该用户所有课程的进度记录
// @Tags 学习进度
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {array} model.ProgressRecord
// @Router /api/progress/{userId} [get]
func (c *ProgressController) GetProgressForUser(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.ProgressService.GetProgressForUser(ctx.Param("userId")))
}
