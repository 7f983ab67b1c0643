package payment

import (
	"context"
	"learning-market/biz/infrastructure/config"
	"learning-market/biz/infrastructure/consts"
	"learning-market/biz/infrastructure/util/log"
	"time"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "payments"
)

type IMongoMapper interface {
	Insert(ctx context.Context, p *Payment) error
	FindAll(ctx context.Context) ([]*Payment, error)
	FindByEmail(ctx context.Context, email string) ([]*Payment, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewPaymentMongoMapper db: %s, collection: %s", config.Mongo.DB, CollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, p *Payment) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, p)
	return err
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Payment, error) {
	payments := make([]*Payment, 0)
	err := m.conn.Find(ctx, &payments, bson.M{}, &options.FindOptions{
		Sort: bson.M{consts.Date: -1},
	})
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (m *MongoMapper) FindByEmail(ctx context.Context, email string) ([]*Payment, error) {
	payments := make([]*Payment, 0)
	err := m.conn.Find(ctx, &payments, bson.M{consts.Email: email}, &options.FindOptions{
		Sort: bson.M{consts.Date: -1},
	})
	if err != nil {
		return nil, err
	}
	return payments, nil
}
