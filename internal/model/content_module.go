package model

import (
	"encoding/json"
	"math"
)

// ContentModule 科目下可排序、可完成的学习单元
type ContentModule struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Order       int    `json:"order"`
}

type Progress struct {
	Total      int
	Completed  int
	Percentage int
	Complete   bool
}

func ParseContentModules(raw []byte) []ContentModule {
	if len(raw) == 0 {
		return []ContentModule{}
	}
	// 兼容以字符串形式保存的旧数据
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		raw = []byte(encoded)
	}
	var modules []ContentModule
	if err := json.Unmarshal(raw, &modules); err != nil || modules == nil {
		return []ContentModule{}
	}
	return modules
}

// ComputeProgress percentage = round(completed/total*100)，total 为 0 时为 0
func ComputeProgress(modules []ContentModule) Progress {
	p := Progress{Total: len(modules)}
	for _, m := range modules {
		if m.Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	p.Complete = p.Percentage == 100
	return p
}
