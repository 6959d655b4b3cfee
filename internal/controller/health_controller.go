package controller

import (
	"net/http"
	"study_tracker_backend/internal/util"
	"study_tracker_backend/pkg/prefs"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const healthProbeKey = "health:probe"

type HealthController struct {
	// DB 为 nil 表示使用内存集合
	DB    *gorm.DB
	Prefs prefs.Store
}

func NewHealthController(db *gorm.DB, store prefs.Store) *HealthController {
	return &HealthController{DB: db, Prefs: store}
}

// @Summary 健康检查
// @Description 检查集合存储和偏好存储
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	components := gin.H{"database": "memory", "prefs": "up"}
	healthy := true

	if c.DB != nil {
		components["database"] = "up"
		sqlDB, err := c.DB.DB()
		if err != nil || sqlDB.PingContext(ctx.Request.Context()) != nil {
			components["database"] = "down"
			healthy = false
		}
	}

	if c.Prefs != nil {
		if _, err := c.Prefs.Get(ctx.Request.Context(), healthProbeKey); err != nil {
			components["prefs"] = "down"
			healthy = false
		}
	}

	if !healthy {
		ctx.JSON(http.StatusServiceUnavailable, util.Response{
			Code:    http.StatusServiceUnavailable,
			Message: "Service degraded",
			Data:    gin.H{"status": "degraded", "components": components},
		})
		return
	}

	util.Success(ctx, gin.H{
		"status":     "ok",
		"components": components,
	})
}
