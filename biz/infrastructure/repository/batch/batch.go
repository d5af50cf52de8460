package batch

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Batch 班次, 如 "Saturday 9am-11am"
type Batch struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Schedule     string             `bson:"schedule" json:"schedule"`
	Students     []string           `bson:"students" json:"students"`
	InstructorID string             `bson:"instructor_id" json:"instructorId"`
	CreateTime   time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime   time.Time          `bson:"update_time" json:"updateTime"`
}

type IMongoMapper interface {
	Insert(ctx context.Context, b *Batch) error
	Update(ctx context.Context, b *Batch) error
	FindOne(ctx context.Context, id string) (*Batch, error)
	FindAll(ctx context.Context) ([]*Batch, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}
