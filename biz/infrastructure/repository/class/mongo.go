package class

import (
	"context"
	"errors"
	"learning-market/biz/infrastructure/config"
	"learning-market/biz/infrastructure/consts"
	"learning-market/biz/infrastructure/util/log"
	"time"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixClassCacheKey = "cache:class:"
	CollectionName      = "classes"
)

type IMongoMapper interface {
	Insert(ctx context.Context, c *Class) error
	FindOne(ctx context.Context, id string) (*Class, error)
	FindAll(ctx context.Context) ([]*Class, error)
	FindByInstructor(ctx context.Context, email string) ([]*Class, error)
	FindByStatus(ctx context.Context, status string) ([]*Class, error)
	FindTopByEnrollment(ctx context.Context, status string, limit int64) ([]*Class, error)
	UpdateStatus(ctx context.Context, id string, status string, feedback *string) (*mongo.UpdateResult, error)
	IncCounters(ctx context.Context, id string, enrolled, seats int64) (*mongo.UpdateResult, error)
	IncCountersNoCache(ctx context.Context, id string, enrolled, seats int64) (*mongo.UpdateResult, error)
	DelCache(ctx context.Context, ids ...string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewClassMongoMapper db: %s, collection: %s", config.Mongo.DB, CollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, c *Class) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
		c.CreateTime = time.Now()
		c.UpdateTime = c.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, c)
	return err
}

// FindOne 按id查询, 走缓存
func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Class
	err = m.conn.FindOne(ctx, prefixClassCacheKey+id, &c, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Class, error) {
	return m.find(ctx, bson.M{})
}

func (m *MongoMapper) FindByInstructor(ctx context.Context, email string) ([]*Class, error) {
	return m.find(ctx, bson.M{consts.InstructorEmail: email})
}

func (m *MongoMapper) FindByStatus(ctx context.Context, status string) ([]*Class, error) {
	return m.find(ctx, bson.M{consts.Status: status})
}

func (m *MongoMapper) FindTopByEnrollment(ctx context.Context, status string, limit int64) ([]*Class, error) {
	return m.find(ctx, bson.M{consts.Status: status}, &options.FindOptions{
		Limit: &limit,
		Sort:  bson.D{{Key: consts.EnrolledStudents, Value: -1}},
	})
}

func (m *MongoMapper) UpdateStatus(ctx context.Context, id string, status string, feedback *string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	set := bson.M{
		consts.Status: status,
		"update_time": time.Now(),
	}
	if feedback != nil {
		set["feedback"] = *feedback
	}
	return m.conn.UpdateOne(ctx, prefixClassCacheKey+id, bson.M{consts.ID: oid}, bson.M{consts.Set: set})
}

// IncCounters 调整报名人数与剩余座位, 任一计数会变为负数时不更新, MatchedCount 为 0
func (m *MongoMapper) IncCounters(ctx context.Context, id string, enrolled, seats int64) (*mongo.UpdateResult, error) {
	filter, update, err := counterUpdate(id, enrolled, seats)
	if err != nil {
		return nil, err
	}
	return m.conn.UpdateOne(ctx, prefixClassCacheKey+id, filter, update)
}

// IncCountersNoCache 供事务内使用, 缓存由调用方在提交后通过 DelCache 清除
func (m *MongoMapper) IncCountersNoCache(ctx context.Context, id string, enrolled, seats int64) (*mongo.UpdateResult, error) {
	filter, update, err := counterUpdate(id, enrolled, seats)
	if err != nil {
		return nil, err
	}
	return m.conn.UpdateOneNoCache(ctx, filter, update)
}

func (m *MongoMapper) DelCache(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, prefixClassCacheKey+id)
	}
	return m.conn.DelCache(ctx, keys...)
}

func counterUpdate(id string, enrolled, seats int64) (bson.M, bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil, consts.ErrInvalidObjectId
	}
	filter := bson.M{consts.ID: oid}
	if enrolled < 0 {
		filter[consts.EnrolledStudents] = bson.M{consts.Gte: -enrolled}
	}
	if seats < 0 {
		filter[consts.AvailableSeats] = bson.M{consts.Gte: -seats}
	}
	update := bson.M{
		consts.Inc: bson.M{
			consts.EnrolledStudents: enrolled,
			consts.AvailableSeats:   seats,
		},
		consts.Set: bson.M{
			"update_time": time.Now(),
		},
	}
	return filter, update, nil
}

func (m *MongoMapper) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*Class, error) {
	classes := make([]*Class, 0)
	if err := m.conn.Find(ctx, &classes, filter, opts...); err != nil {
		return nil, err
	}
	return classes, nil
}
