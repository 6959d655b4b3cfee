package controller

import (
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// @Summary 创建客户端档案
// @Description 签发携带新档案ID的令牌，置顶科目等偏好按档案隔离
// @Tags 档案
// @Produce json
// @Success 201 {object} util.Response{data=service.ProfileToken}
// @Router /profile [post]
func (c *ProfileController) CreateProfile(ctx *gin.Context) {
	token, err := c.ProfileService.Issue()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, token)
}

// @Summary 当前档案
// @Tags 档案
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	util.Success(ctx, gin.H{"profileId": util.GetProfileID(ctx)})
}
