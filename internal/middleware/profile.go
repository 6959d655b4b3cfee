package middleware

import (
	"strings"
	"study_tracker_backend/internal/util"
	"study_tracker_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileResolver 由令牌解析档案 ID
type ProfileResolver interface {
	Resolve(token string) (string, error)
}

// ProfileMiddleware 从 Authorization: Bearer 中解析档案；
// 未携带或无效的令牌不拒绝请求，统一使用默认档案
func ProfileMiddleware(resolver ProfileResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := util.DefaultProfile

		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString != "" {
			id, err := resolver.Resolve(tokenString)
			if err != nil {
				logger.Log.Debug("Ignoring invalid profile token", zap.Error(err))
			} else {
				profileID = id
			}
		}

		c.Set("profile_id", profileID)
		c.Next()
	}
}
