package util

const (
	DateFormat  = "2006-01-02"
	MonthFormat = "2006-01"
	TimeFormat  = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
	StorageB2    = "b2"
)

const (
	MimeImage = "image/"
)

// 本地偏好存储中置顶科目使用的键
const PinnedSubjectsKey = "pinnedSubjects"

// 未携带档案令牌的请求使用的档案
const DefaultProfile = "default"
