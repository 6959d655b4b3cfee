package controller

import (
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubjectController struct {
	SubjectService *service.SubjectService
}

func NewSubjectController(subjectService *service.SubjectService) *SubjectController {
	return &SubjectController{SubjectService: subjectService}
}

// @Summary 获取科目列表
// @Description 除 pinned 标签外，置顶科目排在最前
// @Tags 科目
// @Produce json
// @Security BearerAuth
// @Param tab query string false "标签页" enums(all,pinned,active,inactive,beginner,intermediate,advanced)
// @Success 200 {object} util.Response{data=service.SubjectsView}
// @Router /subjects [get]
func (c *SubjectController) GetSubjects(ctx *gin.Context) {
	util.Success(ctx, c.SubjectService.View(ctx.Request.Context(), util.GetProfileID(ctx), ctx.Query("tab")))
}

// @Summary 新建科目
// @Description 科目名称为空时不写入，返回 message=skipped
// @Tags 科目
// @Accept json
// @Produce json
// @Param subject body service.SubjectForm true "科目"
// @Success 201 {object} util.Response{data=service.SubjectsView}
// @Router /subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	c.save(ctx, "")
}

// @Summary 更新科目
// @Description 只更新表单字段，内容模块和进度保持不变
// @Tags 科目
// @Accept json
// @Produce json
// @Param id path string true "科目ID"
// @Param subject body service.SubjectForm true "科目"
// @Success 200 {object} util.Response{data=service.SubjectsView}
// @Failure 404 {object} util.Response
// @Router /subjects/{id} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	c.save(ctx, ctx.Param("id"))
}

func (c *SubjectController) save(ctx *gin.Context, id string) {
	var form service.SubjectForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	saved, view, err := c.SubjectService.Save(ctx.Request.Context(), util.GetProfileID(ctx), id, form, ctx.Query("tab"))
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

// @Summary 删除科目
// @Description 同时从置顶集合中移除
// @Tags 科目
// @Produce json
// @Param id path string true "科目ID"
// @Param confirm query bool true "确认删除"
// @Success 200 {object} util.Response{data=service.SubjectsView}
// @Failure 428 {object} util.Response
// @Router /subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	view, err := c.SubjectService.Delete(ctx.Request.Context(), util.GetProfileID(ctx), ctx.Param("id"), confirmed(ctx), ctx.Query("tab"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 置顶/取消置顶
// @Tags 科目
// @Produce json
// @Param id path string true "科目ID"
// @Success 200 {object} util.Response{data=service.SubjectsView}
// @Router /subjects/{id}/pin [post]
func (c *SubjectController) TogglePin(ctx *gin.Context) {
	view, err := c.SubjectService.TogglePin(ctx.Request.Context(), util.GetProfileID(ctx), ctx.Param("id"), ctx.Query("tab"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 获取内容模块
// @Tags 科目
// @Produce json
// @Param id path string true "科目ID"
// @Success 200 {object} util.Response{data=service.ModulesView}
// @Failure 404 {object} util.Response
// @Router /subjects/{id}/modules [get]
func (c *SubjectController) GetModules(ctx *gin.Context) {
	modules, err := c.SubjectService.Modules(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, modules)
}

// CommitModulesRequest 一次提交的内容模块编辑
type CommitModulesRequest struct {
	Ops []service.ModuleOp `json:"ops" binding:"dive"`
}

// @Summary 提交内容模块编辑
// @Description 依次应用 add/toggle/delete 后整体写回并重新计算进度
// @Tags 科目
// @Accept json
// @Produce json
// @Param id path string true "科目ID"
// @Param ops body controller.CommitModulesRequest true "编辑操作"
// @Success 200 {object} util.Response{data=service.SubjectsView}
// @Failure 400 {object} util.Response
// @Router /subjects/{id}/modules [put]
func (c *SubjectController) CommitModules(ctx *gin.Context) {
	var req CommitModulesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.SubjectService.CommitModules(ctx.Request.Context(), util.GetProfileID(ctx), ctx.Param("id"), req.Ops, ctx.Query("tab"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 科目统计
// @Description 按科目名称匹配计划和错题
// @Tags 科目
// @Produce json
// @Param id path string true "科目ID"
// @Success 200 {object} util.Response{data=service.SubjectStats}
// @Failure 404 {object} util.Response
// @Router /subjects/{id}/stats [get]
func (c *SubjectController) GetSubjectStats(ctx *gin.Context) {
	stats, err := c.SubjectService.Stats(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary 上传科目图片
// @Tags 科目
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "科目ID"
// @Param file formData file true "图片"
// @Success 200 {object} util.Response{data=model.Subject}
// @Failure 400 {object} util.Response
// @Router /subjects/{id}/image [post]
func (c *SubjectController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	contentType, err := util.ValidateImage(src)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	subject, err := c.SubjectService.UploadImage(ctx.Request.Context(), ctx.Param("id"), file.Filename, src, file.Size, contentType)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, subject)
}
