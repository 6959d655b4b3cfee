package controller

import (
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HomeController struct {
	HomeService *service.HomeService
}

func NewHomeController(homeService *service.HomeService) *HomeController {
	return &HomeController{HomeService: homeService}
}

// @Summary 首页
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response{data=service.HomeView}
// @Router /home [get]
func (c *HomeController) GetHome(ctx *gin.Context) {
	util.Success(ctx, c.HomeService.View(ctx.Request.Context()))
}
