package service

import (
	"context"
	"errors"
	"learning-market/biz/application/dto/learning"
	"learning-market/biz/infrastructure/cache"
	"learning-market/biz/infrastructure/config"
	"learning-market/biz/infrastructure/consts"
	"learning-market/biz/infrastructure/repository/cart"
	"learning-market/biz/infrastructure/repository/class"
	"learning-market/biz/infrastructure/repository/selected"
	"learning-market/biz/infrastructure/repository/transaction"
	"learning-market/biz/infrastructure/util"
	"learning-market/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
)

type ICartService interface {
	AddCart(ctx context.Context, req *learning.AddCartReq) (*learning.InsertResp, error)
	ListCart(ctx context.Context, req *learning.EmailReq) ([]*learning.CartItemInfo, error)
	DeleteCart(ctx context.Context, req *learning.IDReq) (*learning.DeleteResp, error)
	SelectClass(ctx context.Context, doc map[string]any) (*learning.InsertResp, error)
}

type CartService struct {
	Config         *config.Config
	CartMapper     cart.IMongoMapper
	ClassMapper    class.IMongoMapper
	SelectedMapper selected.IMongoMapper
	Transactor     transaction.ITransactor
	TopCache       cache.ITopClassesCache
}

var CartServiceSet = wire.NewSet(
	wire.Struct(new(CartService), "*"),
	wire.Bind(new(ICartService), new(*CartService)),
)

// AddCart 加入购物车, 同一用户重复选择同一课程返回冲突
func (s *CartService) AddCart(ctx context.Context, req *learning.AddCartReq) (*learning.InsertResp, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}
	item := &cart.CartItem{
		ClassItemID:    req.ClassItemID,
		Email:          req.Email,
		ClassName:      req.ClassName,
		ClassPhotoURL:  req.ClassPhotoURL,
		InstructorName: req.InstructorName,
		Price:          price,
	}

	add := func(ctx context.Context) error {
		inserted, err := s.CartMapper.InsertIfAbsent(ctx, item)
		if err != nil {
			return err
		}
		if !inserted {
			return consts.ErrItemSelected
		}
		if !s.Config.Checkout.ReserveSeats {
			return nil
		}
		// 占用一个座位, 座位不足时整个事务回滚
		res, err := s.ClassMapper.IncCountersNoCache(ctx, item.ClassItemID, 0, -1)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return consts.ErrNoSeats
		}
		return nil
	}

	if !s.Config.Checkout.ReserveSeats {
		if err = add(ctx); err != nil {
			return nil, wrapErr(ctx, err, consts.ErrAddCart)
		}
		return &learning.InsertResp{Acknowledged: true, InsertedID: item.ID.Hex()}, nil
	}

	err = s.Transactor.Transact(ctx, add)
	if errors.Is(err, consts.ErrNoSeats) {
		// 区分课程不存在和座位不足
		if _, findErr := s.ClassMapper.FindOne(ctx, item.ClassItemID); findErr != nil {
			err = findErr
		}
	}
	if err != nil {
		return nil, wrapErr(ctx, err, consts.ErrAddCart)
	}
	evictClasses(ctx, s.ClassMapper, s.TopCache, []string{item.ClassItemID})
	return &learning.InsertResp{Acknowledged: true, InsertedID: item.ID.Hex()}, nil
}

func (s *CartService) ListCart(ctx context.Context, req *learning.EmailReq) ([]*learning.CartItemInfo, error) {
	items, err := s.CartMapper.FindByEmail(ctx, req.Email)
	if err != nil {
		log.CtxError(ctx, "获取购物车失败: %v", err)
		return nil, consts.ErrGetCart
	}
	return lo.Map(items, func(item *cart.CartItem, _ int) *learning.CartItemInfo {
		info := new(learning.CartItemInfo)
		_ = util.Copy(info, item)
		return info
	}), nil
}

// DeleteCart 移出购物车, 开启座位预留时同时归还座位
func (s *CartService) DeleteCart(ctx context.Context, req *learning.IDReq) (*learning.DeleteResp, error) {
	if !s.Config.Checkout.ReserveSeats {
		n, err := s.CartMapper.Delete(ctx, req.ID)
		if err != nil {
			return nil, wrapErr(ctx, err, consts.ErrCall)
		}
		return &learning.DeleteResp{Acknowledged: true, DeletedCount: n}, nil
	}

	var (
		deleted int64
		touched []string
	)
	err := s.Transactor.Transact(ctx, func(ctx context.Context) error {
		touched = nil
		item, err := s.CartMapper.FindOne(ctx, req.ID)
		if err != nil {
			return err
		}
		if deleted, err = s.CartMapper.Delete(ctx, req.ID); err != nil || deleted == 0 {
			return err
		}
		if _, err = s.ClassMapper.IncCountersNoCache(ctx, item.ClassItemID, 0, 1); err != nil {
			return err
		}
		touched = append(touched, item.ClassItemID)
		return nil
	})
	if err != nil {
		return nil, wrapErr(ctx, err, consts.ErrCall)
	}
	evictClasses(ctx, s.ClassMapper, s.TopCache, touched)
	return &learning.DeleteResp{Acknowledged: true, DeletedCount: deleted}, nil
}

// SelectClass 原样保存选课记录, 请求体为 null 时拒绝
func (s *CartService) SelectClass(ctx context.Context, doc map[string]any) (*learning.InsertResp, error) {
	if doc == nil {
		return nil, consts.ErrInvalidParams
	}
	oid, err := s.SelectedMapper.Insert(ctx, bson.M(doc))
	if err != nil {
		log.CtxError(ctx, "保存选课失败, doc=%s: %v", util.JSONF(doc), err)
		return nil, consts.ErrCall
	}
	return &learning.InsertResp{Acknowledged: true, InsertedID: oid.Hex()}, nil
}
