package controller

import (
	"errors"
	"net/http"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// @Summary 提交测验答卷
// @Description 判分不落盘，返回分数与是否通过
// @Tags 测验
// @Accept json
// @Produce json
// @Param courseId path string true "课程ID"
// @Param answers body service.QuizSubmission true "答案下标"
// @Success 200 {object} service.QuizResult
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/courses/{courseId}/quiz/submissions [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var submission service.QuizSubmission
	if err := ctx.ShouldBindJSON(&submission); err != nil {
		util.BadRequest(ctx, "invalid JSON body")
		return
	}

	result, err := c.QuizService.SubmitQuiz(ctx.Param("courseId"), submission)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, "course not found")
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, result)
}
