package util

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// UpsertInserted 判断 upsert 是否插入了新文档, 并发写入触发唯一索引冲突时视为已存在
func UpsertInserted(res *mongo.UpdateResult, err error) (bool, error) {
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}
