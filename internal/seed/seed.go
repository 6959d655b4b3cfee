// Package seed 将 YAML 夹具写入空集合，用于本地演示和联调。
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/service"
	"study_tracker_backend/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Fixtures 以集合名为键的记录列表，字段名与 API 的 JSON 字段一致
type Fixtures map[string][]map[string]any

// LoadFile 读取并解析夹具文件
func LoadFile(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse 解析夹具，未知的集合名直接报错
func Parse(data []byte) (Fixtures, error) {
	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	known := make(map[string]bool)
	for _, name := range repository.Names() {
		known[name] = true
	}
	for name := range fixtures {
		if !known[name] {
			return nil, fmt.Errorf("seed file: unknown collection %q", name)
		}
	}
	return fixtures, nil
}

// Apply 只写入当前为空的集合，已有数据的集合整体跳过。
// 返回每个集合写入的记录数
func Apply(ctx context.Context, collections *service.CollectionService, fixtures Fixtures) (map[string]int, error) {
	inserted := make(map[string]int)
	var errs error

	for _, name := range repository.Names() {
		records := fixtures[name]
		if len(records) == 0 {
			continue
		}

		count, err := collections.Count(ctx, name)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("count %s: %w", name, err))
			continue
		}
		if count > 0 {
			logger.Log.Info("Skipping non-empty collection", zap.String("collection", name), zap.Int("records", count))
			continue
		}

		for i, record := range records {
			body, err := json.Marshal(record)
			if err != nil {
				errs = errors.Join(errs, fmt.Errorf("%s[%d]: %w", name, i, err))
				continue
			}
			if _, err := collections.Create(ctx, name, body); err != nil {
				logger.Log.Error("Failed to seed record", zap.String("collection", name), zap.Int("index", i), zap.Error(err))
				errs = errors.Join(errs, fmt.Errorf("%s[%d]: %w", name, i, err))
				continue
			}
			inserted[name]++
		}
		logger.Log.Info("Seeded collection", zap.String("collection", name), zap.Int("records", inserted[name]))
	}

	return inserted, errs
}
