package controller

import (
	"net/http"

	"learnhub_backend/internal/store"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store *store.Store
}

func NewHealthController(s *store.Store) *HealthController {
	return &HealthController{Store: s}
}

// @Summary 健康检查
// @Description 检查服务与存储状态
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if err := c.Store.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "store unavailable")
		return
	}

	var courses, progress, certificates int
	c.Store.View(func(st *store.State) {
		courses = len(st.Courses)
		progress = len(st.Progress)
		certificates = len(st.Certificates)
	})

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"components": gin.H{
			"store": gin.H{
				"courses":      courses,
				"progress":     progress,
				"certificates": certificates,
			},
		},
	})
}
