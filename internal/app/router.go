package app

import (
	"learnhub_backend/internal/middleware"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共接口：目录、进度上报、证书、测验
	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/courses", c.course.ListCourses)
		api.GET("/courses/:courseId", c.course.GetCourse)

		api.PATCH("/courses/:courseId/lessons/:lessonId/progress", c.progress.RecordLessonCompletion)
		api.GET("/progress/:userId", c.progress.GetProgressForUser)

		api.POST("/courses/:courseId/certificates", c.certificate.IssueCertificate)
		api.GET("/certificates/:userId", c.certificate.ListForUser)

		api.POST("/courses/:courseId/quiz/submissions", c.quiz.SubmitQuiz)
	}

	// 管理端接口：x-role 头校验
	admin := router.Group("/api")
	admin.Use(middleware.AdminRequired())
	{
		admin.POST("/courses", c.course.CreateCourse)
		admin.PATCH("/courses/:courseId", c.course.UpdateCourse)
	}
}
