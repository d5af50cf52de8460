package batch

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
	prefixBatchCacheKey = "cache:batch:"
	CollectionName      = "batch"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewBatchMongoMapper config: %v, collection: %s", config, CollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, b *Batch) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
		b.CreateTime = time.Now()
		b.UpdateTime = b.CreateTime
	}
	if b.Students == nil {
		b.Students = []string{}
	}
	_, err := m.conn.InsertOneNoCache(ctx, b)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, b *Batch) error {
	b.UpdateTime = time.Now()
	res, err := m.conn.UpdateByID(ctx, prefixBatchCacheKey+b.ID.Hex(), b.ID, bson.M{"$set": b})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return consts.ErrNotFound
	}
	return nil
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Batch, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var b Batch
	err = m.conn.FindOne(ctx, prefixBatchCacheKey+id, &b, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &b, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Batch, error) {
	var data []*Batch
	err := m.conn.Find(ctx, &data, bson.M{}, &options.FindOptions{
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
	n, err := m.conn.DeleteOne(ctx, prefixBatchCacheKey+id, bson.M{consts.ID: oid})
	if err != nil {
		return err
	}
	if n == 0 {
		return consts.ErrNotFound
	}
	return nil
}

func (m *MongoMapper) DeleteAll(ctx context.Context) (int64, error) {
	return m.conn.DeleteMany(ctx, bson.M{})
}
