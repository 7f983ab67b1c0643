package util

import (
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var objectIDToString = copier.TypeConverter{
	SrcType: primitive.ObjectID{},
	DstType: copier.String,
	Fn: func(src interface{}) (interface{}, error) {
		return src.(primitive.ObjectID).Hex(), nil
	},
}

// Copy 在持久化模型和 dto 之间复制同名字段, ObjectID 转为 hex 字符串
func Copy(to, from any) error {
	return copier.CopyWithOption(to, from, copier.Option{
		Converters: []copier.TypeConverter{objectIDToString},
	})
}
