package model

// StudySession 学习计划。SubjectName 按名称关联科目而非 ID，
// 科目改名后旧记录不会随之更新
// swagger:model StudySession
type StudySession struct {
	UUIDBase
	SessionName string `gorm:"size:255" json:"sessionName"`
	SessionDate *Date  `gorm:"index" json:"sessionDate" swaggertype:"string"`
	StartTime   string `gorm:"size:16" json:"startTime"`
	EndTime     string `gorm:"size:16" json:"endTime"`
	SubjectName string `gorm:"size:255;index" json:"subjectName"`
	IsDeadline  bool   `gorm:"default:false" json:"isDeadline"`
	Notes       string `gorm:"type:text" json:"notes"`
}

func (StudySession) TableName() string {
	return "studysessions"
}

// HasDate 未设置日期的计划不参与任何按日期的统计
func (s *StudySession) HasDate() bool {
	return s.SessionDate != nil && !s.SessionDate.IsZero()
}
