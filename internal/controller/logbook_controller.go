package controller

import (
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LogbookController struct {
	LogbookService *service.LogbookService
}

func NewLogbookController(logbookService *service.LogbookService) *LogbookController {
	return &LogbookController{LogbookService: logbookService}
}

func bindFilter(ctx *gin.Context) service.LogbookFilter {
	var filter service.LogbookFilter
	_ = ctx.ShouldBindQuery(&filter)
	return filter
}

// @Summary 获取错题本
// @Description 搜索、科目、状态三个条件同时生效，结果按记录日期倒序
// @Tags 错题本
// @Produce json
// @Param search query string false "关键字（描述、科目、改正措施）"
// @Param subject query string false "科目名称，all 表示全部"
// @Param status query string false "状态" enums(all,resolved,pending)
// @Success 200 {object} util.Response{data=service.LogbookView}
// @Router /logbook [get]
func (c *LogbookController) GetLogbook(ctx *gin.Context) {
	util.Success(ctx, c.LogbookService.View(ctx.Request.Context(), bindFilter(ctx)))
}

// @Summary 获取新建错题表单
// @Tags 错题本
// @Produce json
// @Success 200 {object} util.Response{data=service.EntryForm}
// @Router /logbook/form [get]
func (c *LogbookController) GetNewEntryForm(ctx *gin.Context) {
	util.Success(ctx, c.LogbookService.NewEntryForm())
}

// @Summary 新建错题
// @Description 描述和关联科目缺一不写入，返回 message=skipped
// @Tags 错题本
// @Accept json
// @Produce json
// @Param entry body service.EntryForm true "错题"
// @Success 201 {object} util.Response{data=service.LogbookView}
// @Router /logbook/entries [post]
func (c *LogbookController) CreateEntry(ctx *gin.Context) {
	c.save(ctx, "")
}

// @Summary 更新错题
// @Tags 错题本
// @Accept json
// @Produce json
// @Param id path string true "错题ID"
// @Param entry body service.EntryForm true "错题"
// @Success 200 {object} util.Response{data=service.LogbookView}
// @Failure 404 {object} util.Response
// @Router /logbook/entries/{id} [put]
func (c *LogbookController) UpdateEntry(ctx *gin.Context) {
	c.save(ctx, ctx.Param("id"))
}

func (c *LogbookController) save(ctx *gin.Context, id string) {
	var form service.EntryForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	saved, view, err := c.LogbookService.Save(ctx.Request.Context(), id, form, bindFilter(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	switch {
	case !saved:
		util.Skipped(ctx, view)
	case id == "":
		util.Created(ctx, view)
	default:
		util.Success(ctx, view)
	}
}

// @Summary 获取编辑表单
// @Description 日期统一为 YYYY-MM-DD
// @Tags 错题本
// @Produce json
// @Param id path string true "错题ID"
// @Success 200 {object} util.Response{data=service.EntryForm}
// @Failure 404 {object} util.Response
// @Router /logbook/entries/{id}/form [get]
func (c *LogbookController) GetEntryForm(ctx *gin.Context) {
	form, err := c.LogbookService.Form(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, form)
}

// @Summary 切换已解决状态
// @Tags 错题本
// @Produce json
// @Param id path string true "错题ID"
// @Success 200 {object} util.Response{data=service.LogbookView}
// @Failure 404 {object} util.Response
// @Router /logbook/entries/{id}/resolved [patch]
func (c *LogbookController) ToggleResolved(ctx *gin.Context) {
	view, err := c.LogbookService.ToggleResolved(ctx.Request.Context(), ctx.Param("id"), bindFilter(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 删除错题
// @Tags 错题本
// @Produce json
// @Param id path string true "错题ID"
// @Param confirm query bool true "确认删除"
// @Success 200 {object} util.Response{data=service.LogbookView}
// @Failure 428 {object} util.Response
// @Router /logbook/entries/{id} [delete]
func (c *LogbookController) DeleteEntry(ctx *gin.Context) {
	view, err := c.LogbookService.Delete(ctx.Request.Context(), ctx.Param("id"), confirmed(ctx), bindFilter(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}
