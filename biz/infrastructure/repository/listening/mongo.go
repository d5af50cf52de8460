package listening

import (
	"context"
	"errors"
	"listening-show/biz/infrastructure/config"
	"listening-show/biz/infrastructure/consts"
	"listening-show/biz/infrastructure/util/log"
	"time"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName     = "listening"
	studentWeekIndex   = "uniq_student_week_start"
	indexCreateTimeout = 10 * time.Second
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewListeningMongoMapper config: %v, collection: %s", config, CollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	m := &MongoMapper{
		conn: conn,
	}
	if err := m.ensureIndexes(); err != nil {
		log.Error("create listening index fail: %v", err)
	}
	return m
}

// ensureIndexes 一个学生每个周起点只有一条记录, 并发创建由该索引兜底
func (m *MongoMapper) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), indexCreateTimeout)
	defer cancel()
	_, err := m.conn.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: consts.StudentID, Value: 1}, {Key: consts.WeekStart, Value: 1}},
		Options: options.Index().SetUnique(true).SetName(studentWeekIndex),
	})
	return err
}

func (m *MongoMapper) FindByStudentAndWeek(ctx context.Context, studentID string, weekStart time.Time) (*Listening, error) {
	var l Listening
	// 周起点已被规整为零点, 这里必须用等值匹配
	err := m.conn.FindOneNoCache(ctx, &l, bson.M{
		consts.StudentID: studentID,
		consts.WeekStart: weekStart,
	})
	switch {
	case err == nil:
		return &l, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) Create(ctx context.Context, studentID string, weekStart, weekEnd time.Time, createdBy string) (*Listening, error) {
	now := time.Now()
	l := &Listening{
		ID:         primitive.NewObjectID(),
		StudentID:  studentID,
		WeekStart:  weekStart,
		WeekEnd:    weekEnd,
		Rows:       []Entry{},
		CreatedBy:  createdBy,
		CreateTime: now,
		UpdateTime: now,
	}
	_, err := m.conn.InsertOneNoCache(ctx, l)
	if mongo.IsDuplicateKeyError(err) {
		return nil, consts.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (m *MongoMapper) Save(ctx context.Context, l *Listening) error {
	now := time.Now()
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{
		consts.ID:      l.ID,
		consts.Version: l.Version,
	}, bson.M{
		"$set": bson.M{
			"rows":            l.Rows,
			consts.UpdateTime: now,
		},
		"$inc": bson.M{
			consts.Version: 1,
		},
	})
	if mongo.IsDuplicateKeyError(err) {
		return consts.ErrConflict
	}
	if err != nil {
		return err
	}
	// 记录被删除或已被其他请求修改
	if res.MatchedCount == 0 {
		return consts.ErrConflict
	}
	l.Version++
	l.UpdateTime = now
	return nil
}

func (m *MongoMapper) FindByStudent(ctx context.Context, studentID string) ([]*Listening, error) {
	var data []*Listening
	err := m.conn.Find(ctx, &data, bson.M{consts.StudentID: studentID}, &options.FindOptions{
		Sort: bson.M{consts.WeekStart: -1},
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (m *MongoMapper) DeleteAll(ctx context.Context) (int64, error) {
	return m.conn.DeleteMany(ctx, bson.M{})
}
