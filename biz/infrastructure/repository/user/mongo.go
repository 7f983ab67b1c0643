package user

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
	CollectionName = "users"
)

type IMongoMapper interface {
	InsertIfAbsent(ctx context.Context, u *User) (bool, error)
	FindOneByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context) ([]*User, error)
	Delete(ctx context.Context, id string) (int64, error)
	UpdateRole(ctx context.Context, id string, role string) (*mongo.UpdateResult, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewUserMongoMapper db: %s, collection: %s", config.Mongo.DB, CollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	// 唯一索引保证并发 upsert 不会写入重复文档
	if _, err := conn.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: consts.Email, Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		log.Error("create unique index on users fail: %v", err)
	}
	return &MongoMapper{
		conn: conn,
	}
}

// InsertIfAbsent 以邮箱为键插入用户, 已存在时返回 false 且不做修改
func (m *MongoMapper) InsertIfAbsent(ctx context.Context, u *User) (bool, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	now := time.Now()
	u.CreateTime = now
	u.UpdateTime = now
	res, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{consts.Email: u.Email},
		bson.M{consts.SetOnInsert: u},
		options.Update().SetUpsert(true),
	)
	return util.UpsertInserted(res, err)
}

func (m *MongoMapper) FindOneByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := m.conn.FindOneNoCache(ctx, &u, bson.M{consts.Email: email})
	switch {
	case err == nil:
		return &u, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*User, error) {
	users := make([]*User, 0)
	err := m.conn.Find(ctx, &users, bson.M{})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, consts.ErrInvalidObjectId
	}
	return m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
}

func (m *MongoMapper) UpdateRole(ctx context.Context, id string, role string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	return m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		consts.Set: bson.M{
			consts.Role:   role,
			"update_time": time.Now(),
		},
	})
}
