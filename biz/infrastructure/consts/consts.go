package consts

// 数据库相关
const (
	ID         = "_id"
	StudentID  = "student_id"
	WeekStart  = "week_start"
	Version    = "version"
	Email      = "email"
	OwnerID    = "owner_id"
	BatchID    = "batch_id"
	ClassDay   = "class_day"
	CreateTime = "create_time"
	UpdateTime = "update_time"
)

// 角色
const (
	RoleInstructor = "instructor"
	RoleParent     = "parent"
	RoleStudent    = "student"
)

// http
const (
	Authorization = "Authorization"
	Bearer        = "Bearer "
)

// 默认值
const (
	DefaultMaxAttempts = 3
	MaxRowsPerWeek     = 5
	MinScore           = 0
	MaxScore           = 10
)
