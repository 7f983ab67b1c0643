package cart

import (
	"context"
	"errors"
	"learning-market/biz/infrastructure/config"
	"learning-market/biz/infrastructure/consts"
	"learning-market/biz/infrastructure/util"
	"learning-market/biz/infrastructure/util/log"
	"time"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "carts"
)

type IMongoMapper interface {
	InsertIfAbsent(ctx context.Context, item *CartItem) (bool, error)
	FindOne(ctx context.Context, id string) (*CartItem, error)
	FindByEmail(ctx context.Context, email string) ([]*CartItem, error)
	FindByIDs(ctx context.Context, email string, ids []primitive.ObjectID) ([]*CartItem, error)
	Delete(ctx context.Context, id string) (int64, error)
	DeleteByIDs(ctx context.Context, email string, ids []primitive.ObjectID) (int64, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewCartMongoMapper db: %s, collection: %s", config.Mongo.DB, CollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	// 唯一索引保证并发 upsert 不会写入重复文档
	if _, err := conn.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: consts.ClassItemID, Value: 1}, {Key: consts.Email, Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		log.Error("create unique index on carts fail: %v", err)
	}
	return &MongoMapper{
		conn: conn,
	}
}

// InsertIfAbsent 同一用户同一课程只保留一条, 已存在返回 false
func (m *MongoMapper) InsertIfAbsent(ctx context.Context, item *CartItem) (bool, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	item.CreateTime = time.Now()
	res, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{consts.ClassItemID: item.ClassItemID, consts.Email: item.Email},
		bson.M{consts.SetOnInsert: item},
		options.Update().SetUpsert(true),
	)
	return util.UpsertInserted(res, err)
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*CartItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var item CartItem
	err = m.conn.FindOneNoCache(ctx, &item, bson.M{consts.ID: oid})
	switch {
	case err == nil:
		return &item, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByEmail(ctx context.Context, email string) ([]*CartItem, error) {
	items := make([]*CartItem, 0)
	err := m.conn.Find(ctx, &items, bson.M{consts.Email: email})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (m *MongoMapper) FindByIDs(ctx context.Context, email string, ids []primitive.ObjectID) ([]*CartItem, error) {
	items := make([]*CartItem, 0, len(ids))
	err := m.conn.Find(ctx, &items, bson.M{
		consts.ID:    bson.M{consts.In: ids},
		consts.Email: email,
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, consts.ErrInvalidObjectId
	}
	return m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
}

func (m *MongoMapper) DeleteByIDs(ctx context.Context, email string, ids []primitive.ObjectID) (int64, error) {
	return m.conn.DeleteMany(ctx, bson.M{
		consts.ID:    bson.M{consts.In: ids},
		consts.Email: email,
	})
}
