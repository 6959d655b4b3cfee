package model

// LogbookEntry 错题/失误记录，RelatedSubject 与 StudySession 一样按名称关联科目
// swagger:model LogbookEntry
type LogbookEntry struct {
	UUIDBase
	MistakeDescription string `gorm:"type:text" json:"mistakeDescription"`
	DateRecorded       *Date  `gorm:"index" json:"dateRecorded" swaggertype:"string"`
	RelatedSubject     string `gorm:"size:255;index" json:"relatedSubject"`
	SeverityLevel      int    `gorm:"default:1" json:"severityLevel"`
	CorrectionAction   string `gorm:"type:text" json:"correctionAction"`
	IsResolved         bool   `gorm:"default:false" json:"isResolved"`
}

func (LogbookEntry) TableName() string {
	return "logbookentries"
}

// ApplyDefaults 未填写严重程度时按 1（Minor）处理，与数据库列默认值一致
func (e *LogbookEntry) ApplyDefaults() {
	if e.SeverityLevel < 1 {
		e.SeverityLevel = 1
	}
}

func (e *LogbookEntry) HasDate() bool {
	return e.DateRecorded != nil && !e.DateRecorded.IsZero()
}

var severityLabels = map[int]string{
	1: "Minor",
	2: "Low",
	3: "Medium",
	4: "High",
	5: "Critical",
}

var severityColors = map[int]string{
	1: "bg-green-100 text-green-800 border-green-200",
	2: "bg-yellow-100 text-yellow-800 border-yellow-200",
	3: "bg-orange-100 text-orange-800 border-orange-200",
	4: "bg-red-100 text-red-800 border-red-200",
	5: "bg-purple-100 text-purple-800 border-purple-200",
}

// 严重程度分布图使用的颜色
var severityChartColors = map[int]string{
	1: "#22c55e",
	2: "#3b82f6",
	3: "#eab308",
	4: "#f97316",
	5: "#ef4444",
}

func SeverityLabel(level int) string {
	if l, ok := severityLabels[level]; ok {
		return l
	}
	return "Unknown"
}

func SeverityColor(level int) string {
	if c, ok := severityColors[level]; ok {
		return c
	}
	return "bg-gray-100 text-gray-800 border-gray-200"
}

func SeverityChartColor(level int) string {
	return severityChartColors[level]
}
