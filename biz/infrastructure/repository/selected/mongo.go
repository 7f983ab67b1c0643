package selected

import (
	"context"
	"learning-market/biz/infrastructure/config"
	"learning-market/biz/infrastructure/consts"
	"learning-market/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionName = "selectedClasses"
)

type IMongoMapper interface {
	Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
}

// MongoMapper 原样保存前端提交的选课文档
type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewSelectedMongoMapper db: %s, collection: %s", config.Mongo.DB, CollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	if doc == nil {
		doc = bson.M{}
	}
	oid := primitive.NewObjectID()
	doc[consts.ID] = oid
	_, err := m.conn.InsertOneNoCache(ctx, doc)
	return oid, err
}
