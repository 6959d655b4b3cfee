package controller

import (
	"io"
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CollectionController struct {
	CollectionService *service.CollectionService
}

func NewCollectionController(collectionService *service.CollectionService) *CollectionController {
	return &CollectionController{CollectionService: collectionService}
}

// @Summary 获取集合全部记录
// @Tags 集合
// @Produce json
// @Param collection path string true "集合名称" enums(subjects,studysessions,logbookentries)
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /collections/{collection} [get]
func (c *CollectionController) List(ctx *gin.Context) {
	items, err := c.CollectionService.GetAll(ctx.Request.Context(), ctx.Param("collection"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// @Summary 创建记录
// @Description 未提供 _id 时自动生成
// @Tags 集合
// @Accept json
// @Produce json
// @Param collection path string true "集合名称"
// @Param record body object true "记录"
// @Success 201 {object} util.Response
// @Router /collections/{collection} [post]
func (c *CollectionController) Create(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.CollectionService.Create(ctx.Request.Context(), ctx.Param("collection"), body)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, record)
}

// @Summary 按 ID 整条更新记录
// @Tags 集合
// @Accept json
// @Produce json
// @Param collection path string true "集合名称"
// @Param id path string true "记录ID"
// @Param record body object true "记录"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /collections/{collection}/{id} [put]
func (c *CollectionController) Update(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.CollectionService.Update(ctx.Request.Context(), ctx.Param("collection"), ctx.Param("id"), body)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, record)
}

// @Summary 删除记录
// @Tags 集合
// @Produce json
// @Param collection path string true "集合名称"
// @Param id path string true "记录ID"
// @Param confirm query bool true "确认删除"
// @Success 200 {object} util.Response
// @Failure 428 {object} util.Response
// @Router /collections/{collection}/{id} [delete]
func (c *CollectionController) Delete(ctx *gin.Context) {
	err := c.CollectionService.Delete(ctx.Request.Context(), ctx.Param("collection"), ctx.Param("id"), confirmed(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
