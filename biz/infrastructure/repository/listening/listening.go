package listening

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Row string

const (
	RowA Row = "A"
	RowB Row = "B"
	RowC Row = "C"
	RowD Row = "D"
	RowE Row = "E"
)

// Rows 固定的五个听力考核项
var Rows = []Row{RowA, RowB, RowC, RowD, RowE}

// ParseRow 只接受 A-E, 大小写敏感
func ParseRow(s string) (Row, bool) {
	r := Row(s)
	return r, lo.Contains(Rows, r)
}

// Entry 周记录中的一行, 无独立 id
type Entry struct {
	Row      Row    `bson:"row" json:"row"`
	Score    int64  `bson:"score" json:"score"`
	Comments string `bson:"comments" json:"comments"`
}

// NewEntry 评语去掉首尾空白
func NewEntry(row Row, score int64, comments string) Entry {
	return Entry{
		Row:      row,
		Score:    score,
		Comments: strings.TrimSpace(comments),
	}
}

// Listening 一个学生一周的听力记录, (student_id, week_start) 唯一
type Listening struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID  string             `bson:"student_id" json:"studentId"`
	WeekStart  time.Time          `bson:"week_start" json:"weekStart"`
	WeekEnd    time.Time          `bson:"week_end" json:"weekEnd"`
	Rows       []Entry            `bson:"rows" json:"rows"`
	CreatedBy  string             `bson:"created_by" json:"createdBy"`
	Version    int64              `bson:"version" json:"version"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}

func (l *Listening) HasRow(row Row) bool {
	return lo.ContainsBy(l.Rows, func(e Entry) bool {
		return e.Row == row
	})
}

func (l *Listening) Full(capacity int) bool {
	return len(l.Rows) >= capacity
}

// IMongoMapper 周记录存储. Create 在 (student, weekStart) 已存在时返回 consts.ErrConflict;
// Save 按 Version 做乐观锁, 版本不符时返回 consts.ErrConflict.
type IMongoMapper interface {
	FindByStudentAndWeek(ctx context.Context, studentID string, weekStart time.Time) (*Listening, error)
	Create(ctx context.Context, studentID string, weekStart, weekEnd time.Time, createdBy string) (*Listening, error)
	Save(ctx context.Context, l *Listening) error
	FindByStudent(ctx context.Context, studentID string) ([]*Listening, error)
	DeleteAll(ctx context.Context) (int64, error)
}
