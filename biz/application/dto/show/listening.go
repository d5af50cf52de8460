package show

import (
	"listening-show/biz/application/dto/basic"
	"time"
)

type SubmitListeningReq struct {
	StudentId string `json:"studentId" form:"studentId"`
	Row       string `json:"row" form:"row"`
	Score     any    `json:"score"` // 兼容数字与数字字符串
	Comments  string `json:"comments" form:"comments"`
}

type RowInfo struct {
	Row      string `json:"row"`
	Score    int64  `json:"score"`
	Comments string `json:"comments"`
}

type ListeningInfo struct {
	Id          string     `json:"id"`
	StudentId   string     `json:"studentId"`
	StudentName string     `json:"studentName,omitempty"`
	WeekStart   time.Time  `json:"weekStart"`
	WeekEnd     time.Time  `json:"weekEnd"`
	Rows        []*RowInfo `json:"rows"`
	CreatedBy   string     `json:"createdBy"`
	CreateTime  time.Time  `json:"createTime"`
	UpdateTime  time.Time  `json:"updateTime"`
}

type ListListeningReq struct {
	StudentId         string                   `query:"student" json:"studentId"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

// ListListeningResp Total 为分页前的周数
type ListListeningResp struct {
	Weeks []*ListeningInfo `json:"weeks"`
	Total int64            `json:"total"`
}

type CurrentWeekReq struct {
	StudentId string `query:"student" json:"studentId"`
}

// CurrentWeekResp Week 为空表示本周尚无记录
type CurrentWeekResp struct {
	WeekStart time.Time      `json:"weekStart"`
	WeekEnd   time.Time      `json:"weekEnd"`
	Week      *ListeningInfo `json:"week,omitempty"`
}
