package student

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixStudentCacheKey = "cache:student:"
	CollectionName        = "student"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewStudentMongoMapper config: %v, collection: %s", config, CollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, s *Student) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, s)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, s *Student) error {
	s.UpdateTime = time.Now()
	update := bson.M{"$set": s}
	// 可选字段置空时需要显式删除
	unset := bson.M{}
	if s.ClassDay == nil {
		unset[consts.ClassDay] = ""
	}
	if s.BatchID == "" {
		unset[consts.BatchID] = ""
	}
	if s.OwnerID == "" {
		unset[consts.OwnerID] = ""
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	res, err := m.conn.UpdateByID(ctx, prefixStudentCacheKey+s.ID.Hex(), s.ID, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return consts.ErrNotFound
	}
	return nil
}

// FindOne 按 id 查询, 走缓存
func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var s Student
	err = m.conn.FindOne(ctx, prefixStudentCacheKey+id, &s, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &s, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Student, error) {
	var data []*Student
	err := m.conn.Find(ctx, &data, bson.M{}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (m *MongoMapper) FindByOwner(ctx context.Context, ownerID string) ([]*Student, error) {
	var data []*Student
	err := m.conn.Find(ctx, &data, bson.M{consts.OwnerID: ownerID}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	n, err := m.conn.DeleteOne(ctx, prefixStudentCacheKey+id, bson.M{consts.ID: oid})
	if err != nil {
		return err
	}
	if n == 0 {
		return consts.ErrNotFound
	}
	return nil
}

// DeleteAll 仅供清库工具使用, 不清理缓存
func (m *MongoMapper) DeleteAll(ctx context.Context) (int64, error) {
	return m.conn.DeleteMany(ctx, bson.M{})
}
