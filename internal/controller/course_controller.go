package controller

import (
	"errors"
	"net/http"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CatalogService *service.CatalogService
}

func NewCourseController(catalogService *service.CatalogService) *CourseController {
	return &CourseController{CatalogService: catalogService}
}

// @Summary 课程列表
// @Description 返回全部课程，按创建顺序
// @Tags 课程目录
// @Produce json
// @Success 200 {array} model.Course
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.CatalogService.ListCourses())
}

// @Summary 课程详情
// @Tags 课程目录
// @Produce json
// @Param courseId path string true "课程ID"
// @Success 200 {object} model.Course
// @Failure 404 {object} util.ErrorResponse
// @Router /api/courses/{courseId} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.CatalogService.GetCourse(ctx.Param("courseId"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "course not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// @Summary 创建课程
// @Description 管理端接口，需携带 x-role: admin
// @Tags 课程目录
// @Accept json
// @Produce json
// @Param course body service.CreateCourseRequest true "课程字段"
// @Success 201 {object} model.Course
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req service.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid JSON body")
		return
	}

	course, err := c.CatalogService.CreateCourse(req)
	if err != nil {
		if errors.Is(err, util.ErrValidation) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// @Summary 更新课程
// @Description 管理端接口，浅合并请求中出现的字段
// @Tags 课程目录
// @Accept json
// @Produce json
// @Param courseId path string true "课程ID"
// @Param course body service.UpdateCourseRequest true "待更新字段"
// @Success 200 {object} model.Course
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/courses/{courseId} [patch]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req service.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid JSON body")
		return
	}

	course, err := c.CatalogService.UpdateCourse(ctx.Param("courseId"), req)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "course not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}
