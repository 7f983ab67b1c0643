package transaction

import (
	"context"
	"learning-market/biz/infrastructure/config"
	"learning-market/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/mongo"
)

// ITransactor 在同一个事务中执行 fn, fn 必须使用传入的 ctx 访问数据库
type ITransactor interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
}

type MongoTransactor struct {
	conn *mon.Model
}

// NewMongoTransactor 与各 mapper 使用同一个 URL, go-zero 按 URL 复用客户端, 因此事务能覆盖所有集合
func NewMongoTransactor(config *config.Config) *MongoTransactor {
	log.Info("NewMongoTransactor db: %s", config.Mongo.DB)
	return &MongoTransactor{
		conn: mon.MustNewModel(config.Mongo.URL, config.Mongo.DB, "payments"),
	}
}

func (t *MongoTransactor) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	sess, err := t.conn.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(sessCtx)
	})
	return err
}
