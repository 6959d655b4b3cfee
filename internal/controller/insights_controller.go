package controller

import (
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InsightsController struct {
	InsightsService *service.InsightsService
}

func NewInsightsController(insightsService *service.InsightsService) *InsightsController {
	return &InsightsController{InsightsService: insightsService}
}

// @Summary 获取学习洞察
// @Tags 洞察
// @Produce json
// @Param range query string false "时间范围" enums(week,month,quarter)
// @Success 200 {object} util.Response{data=service.InsightsView}
// @Router /insights [get]
func (c *InsightsController) GetInsights(ctx *gin.Context) {
	util.Success(ctx, c.InsightsService.View(ctx.Request.Context(), ctx.Query("range")))
}
