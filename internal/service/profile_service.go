package service

import (
	"study_tracker_backend/internal/config"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/util"
	"time"
)

// ProfileService 签发客户端档案令牌。档案只用于隔离本地偏好，不是用户账户
type ProfileService struct {
	Cfg *config.Config
}

func NewProfileService(cfg *config.Config) *ProfileService {
	return &ProfileService{Cfg: cfg}
}

type ProfileToken struct {
	ProfileID string    `json:"profileId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *ProfileService) Issue() (*ProfileToken, error) {
	id := model.GenerateUUID()
	token, err := util.GenerateProfileToken(id, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &ProfileToken{
		ProfileID: id,
		Token:     token,
		ExpiresAt: time.Now().Add(s.Cfg.JWT.ExpireTime),
	}, nil
}

// Resolve 解析令牌中的档案 ID
func (s *ProfileService) Resolve(token string) (string, error) {
	claims, err := util.ParseProfileToken(token, s.Cfg.JWT.Secret)
	if err != nil {
		return "", err
	}
	return claims.ProfileID, nil
}
