package service

import (
	"context"
	"errors"
	"learning-market/biz/application/dto/learning"
	"learning-market/biz/infrastructure/cache"
	"learning-market/biz/infrastructure/consts"
	"learning-market/biz/infrastructure/repository/class"
	"learning-market/biz/infrastructure/util/log"

	"github.com/samber/lo"
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func toUpdateResp(res *mongo.UpdateResult) *learning.UpdateResp {
	return &learning.UpdateResp{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
}

// parsePrice 接受数字或数字字符串, 不允许负数
func parsePrice(v any) (float64, error) {
	if v == nil {
		return 0, nil
	}
	price, err := cast.ToFloat64E(v)
	if err != nil || price < 0 {
		return 0, consts.ErrInvalidPrice
	}
	return price, nil
}

func parseSeats(v any) (int64, error) {
	if v == nil {
		return 0, nil
	}
	seats, err := cast.ToInt64E(v)
	if err != nil || seats < 0 {
		return 0, consts.ErrInvalidParams
	}
	return seats, nil
}

func parseObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, consts.ErrInvalidObjectId
		}
		oids = append(oids, oid)
	}
	return oids, nil
}

// wrapErr 业务错误原样返回, 其余错误记录后替换为 fallback
func wrapErr(ctx context.Context, err error, fallback *consts.Errno) error {
	var errno *consts.Errno
	if errors.As(err, &errno) {
		return errno
	}
	log.CtxError(ctx, "操作失败: %v", err)
	return fallback
}

// evictClasses 事务提交后清除计数变化的课程缓存与热门课程缓存
func evictClasses(ctx context.Context, mapper class.IMongoMapper, top cache.ITopClassesCache, ids []string) {
	if len(ids) == 0 {
		return
	}
	if err := mapper.DelCache(ctx, lo.Uniq(ids)...); err != nil {
		log.CtxError(ctx, "清除课程缓存失败, ids=%v: %v", ids, err)
	}
	if err := top.Delete(ctx); err != nil {
		log.CtxError(ctx, "清除热门课程缓存失败: %v", err)
	}
}
