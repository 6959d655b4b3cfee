package controller

import (
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	CalendarService *service.CalendarService
}

func NewCalendarController(calendarService *service.CalendarService) *CalendarController {
	return &CalendarController{CalendarService: calendarService}
}

// @Summary 获取日历视图
// @Description 月历网格、近期计划（最多5条）以及本周统计
// @Tags 日历
// @Produce json
// @Param month query string false "月份 YYYY-MM，默认当前月"
// @Success 200 {object} util.Response{data=service.CalendarView}
// @Failure 400 {object} util.Response
// @Router /calendar [get]
func (c *CalendarController) GetCalendar(ctx *gin.Context) {
	view, err := c.CalendarService.View(ctx.Request.Context(), ctx.Query("month"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 获取新建计划表单
// @Description 点击日历某一天时预填日期
// @Tags 日历
// @Produce json
// @Param date query string false "日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=service.SessionForm}
// @Router /calendar/form [get]
func (c *CalendarController) GetSessionForm(ctx *gin.Context) {
	form, err := c.CalendarService.Form(ctx.Query("date"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, form)
}

// @Summary 新建学习计划
// @Description 名称、日期、科目缺一不写入，返回 message=skipped
// @Tags 日历
// @Accept json
// @Produce json
// @Param month query string false "返回的日历月份"
// @Param session body service.SessionForm true "学习计划"
// @Success 201 {object} util.Response{data=service.CalendarView}
// @Router /calendar/sessions [post]
func (c *CalendarController) CreateSession(ctx *gin.Context) {
	var form service.SessionForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	created, view, err := c.CalendarService.CreateSession(ctx.Request.Context(), form, ctx.Query("month"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	if !created {
		util.Skipped(ctx, view)
		return
	}
	util.Created(ctx, view)
}
