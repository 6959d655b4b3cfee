package service

import (
	"context"
	"encoding/json"
	"fmt"
	"study_tracker_backend/internal/util"
	"study_tracker_backend/pkg/logger"
	"study_tracker_backend/pkg/prefs"
	"sync"

	"go.uber.org/zap"
)

// PinService 维护置顶科目集合，集合以 JSON 数组形式整体写回偏好存储
type PinService struct {
	Store prefs.Store
	mu    sync.Mutex
}

func NewPinService(store prefs.Store) *PinService {
	return &PinService{Store: store}
}

func pinKey(profileID string) string {
	if profileID == "" {
		profileID = util.DefaultProfile
	}
	return fmt.Sprintf("profile:%s:%s", profileID, util.PinnedSubjectsKey)
}

// Pinned 读取置顶科目 ID 列表；读取或解析失败时按空集合处理
func (s *PinService) Pinned(ctx context.Context, profileID string) []string {
	raw, err := s.Store.Get(ctx, pinKey(profileID))
	if err != nil {
		logger.Log.Error("Failed to read pinned subjects", zap.String("profile", profileID), zap.Error(err))
		return []string{}
	}
	return decodePinned(raw)
}

// PinnedSet 把置顶 ID 列表转换为集合，便于按 ID 判断
func PinnedSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// Toggle 已置顶则移除，否则追加到末尾
func (s *PinService) Toggle(ctx context.Context, profileID, subjectID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.Pinned(ctx, profileID)
	next := without(current, subjectID)
	if len(next) == len(current) {
		next = append(next, subjectID)
	}
	return next, s.save(ctx, profileID, next)
}

// Remove 删除科目时同步移除置顶；不在集合中时不写入
func (s *PinService) Remove(ctx context.Context, profileID, subjectID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.Pinned(ctx, profileID)
	next := without(current, subjectID)
	if len(next) == len(current) {
		return current, nil
	}
	return next, s.save(ctx, profileID, next)
}

func (s *PinService) save(ctx context.Context, profileID string, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := s.Store.Set(ctx, pinKey(profileID), string(raw)); err != nil {
		return fmt.Errorf("save pinned subjects: %w", err)
	}
	return nil
}

func decodePinned(raw string) []string {
	ids := []string{}
	if raw == "" {
		return ids
	}
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logger.Log.Warn("Ignoring malformed pinned subjects", zap.Error(err))
		return []string{}
	}
	return ids
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
