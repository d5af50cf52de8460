package student

import (
	"context"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Levels 学生级别
var Levels = []string{
	"Junior 1", "Junior 2", "Junior 3",
	"Basic",
	"Elementary A", "Elementary B",
	"Intermediate A", "Intermediate B",
	"Higher A", "Higher B",
	"Advance", "Grand",
}

func ValidLevel(level string) bool {
	return lo.Contains(Levels, level)
}

type Student struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Dob        time.Time          `bson:"dob" json:"dob"`
	Level      string             `bson:"level" json:"level"`
	BatchID    string             `bson:"batch_id,omitempty" json:"batchId,omitempty"`
	ClassDay   *int64             `bson:"class_day,omitempty" json:"classDay,omitempty"` // 0=周日 ... 6=周六
	OwnerID    string             `bson:"owner_id,omitempty" json:"ownerId,omitempty"`   // 可代为记录成绩的家长/学生账号
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}

type IMongoMapper interface {
	Insert(ctx context.Context, s *Student) error
	Update(ctx context.Context, s *Student) error
	FindOne(ctx context.Context, id string) (*Student, error)
	FindAll(ctx context.Context) ([]*Student, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*Student, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}
