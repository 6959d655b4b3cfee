package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// confirmed 删除接口需携带 confirm=true
func confirmed(ctx *gin.Context) bool {
	ok, _ := strconv.ParseBool(ctx.Query("confirm"))
	return ok
}
