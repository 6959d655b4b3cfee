package model

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Subject 学习科目，内容模块以 JSON 序列化后保存在记录上
// swagger:model Subject
type Subject struct {
	UUIDBase
	SubjectName             string         `gorm:"size:255;index" json:"subjectName"`
	SubjectCode             string         `gorm:"size:64" json:"subjectCode"`
	Description             string         `gorm:"type:text" json:"description"`
	SubjectImage            string         `gorm:"size:512" json:"subjectImage"`
	StudyMaterialsLink      string         `gorm:"size:512" json:"studyMaterialsLink"`
	AdditionalResourcesLink string         `gorm:"size:512" json:"additionalResourcesLink"`
	IsActive                bool           `json:"isActive"`
	DifficultyLevel         int            `gorm:"default:1" json:"difficultyLevel"`
	ContentModules          datatypes.JSON `json:"contentModules" swaggertype:"array,object"`
	TotalContentItems       int            `gorm:"default:0" json:"totalContentItems"`
	CompletedContentItems   int            `gorm:"default:0" json:"completedContentItems"`
	ProgressPercentage      int            `gorm:"default:0" json:"progressPercentage"`
	CompletionStatus        bool           `gorm:"default:false" json:"completionStatus"`
}

func (Subject) TableName() string {
	return "subjects"
}

// Difficulty 缺省难度视为 1
func (s *Subject) Difficulty() int {
	if s.DifficultyLevel < 1 {
		return 1
	}
	return s.DifficultyLevel
}

// Modules 解析内容模块，格式错误时返回空列表
func (s *Subject) Modules() []ContentModule {
	return ParseContentModules(s.ContentModules)
}

// SetModules 写回内容模块并重新计算进度字段
func (s *Subject) SetModules(modules []ContentModule) error {
	if modules == nil {
		modules = []ContentModule{}
	}
	raw, err := json.Marshal(modules)
	if err != nil {
		return err
	}
	s.ContentModules = datatypes.JSON(raw)

	p := ComputeProgress(modules)
	s.TotalContentItems = p.Total
	s.CompletedContentItems = p.Completed
	s.ProgressPercentage = p.Percentage
	s.CompletionStatus = p.Complete
	return nil
}

var difficultyLabels = map[int]string{
	1: "Beginner",
	2: "Easy",
	3: "Medium",
	4: "Hard",
	5: "Expert",
}

var difficultyColors = map[int]string{
	1: "bg-green-100 text-green-800 border-green-200",
	2: "bg-blue-100 text-blue-800 border-blue-200",
	3: "bg-yellow-100 text-yellow-800 border-yellow-200",
	4: "bg-orange-100 text-orange-800 border-orange-200",
	5: "bg-red-100 text-red-800 border-red-200",
}

func DifficultyLabel(level int) string {
	if l, ok := difficultyLabels[level]; ok {
		return l
	}
	return "Unknown"
}

func DifficultyColor(level int) string {
	if c, ok := difficultyColors[level]; ok {
		return c
	}
	return "bg-gray-100 text-gray-800 border-gray-200"
}
