package service

import (
	"context"
	"learning-market/biz/adaptor"
	"learning-market/biz/application/dto/learning"
	"learning-market/biz/infrastructure/cache"
	"learning-market/biz/infrastructure/charge"
	"learning-market/biz/infrastructure/config"
	"learning-market/biz/infrastructure/consts"
	"learning-market/biz/infrastructure/repository/cart"
	"learning-market/biz/infrastructure/repository/class"
	"learning-market/biz/infrastructure/repository/payment"
	"learning-market/biz/infrastructure/repository/transaction"
	"learning-market/biz/infrastructure/util"
	"learning-market/biz/infrastructure/util/log"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IPaymentService interface {
	CreatePaymentIntent(ctx context.Context, req *learning.PaymentIntentReq) (*learning.PaymentIntentResp, error)
	RecordPayment(ctx context.Context, req *learning.RecordPaymentReq) (*learning.RecordPaymentResp, error)
	ListPayments(ctx context.Context) ([]*learning.PaymentInfo, error)
	ListPaymentsByEmail(ctx context.Context, req *learning.EmailReq) ([]*learning.PaymentInfo, error)
}

type PaymentService struct {
	Config        *config.Config
	PaymentMapper payment.IMongoMapper
	CartMapper    cart.IMongoMapper
	ClassMapper   class.IMongoMapper
	Transactor    transaction.ITransactor
	ChargeClient  charge.IClient
	TopCache      cache.ITopClassesCache
}

var PaymentServiceSet = wire.NewSet(
	wire.Struct(new(PaymentService), "*"),
	wire.Bind(new(IPaymentService), new(*PaymentService)),
)

// CreatePaymentIntent 按价格向支付服务申请 client secret
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, req *learning.PaymentIntentReq) (*learning.PaymentIntentResp, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}
	amount := int64(math.Round(price * consts.CentsPerUnit))
	if amount <= 0 {
		return nil, consts.ErrInvalidPrice
	}

	secret, err := s.ChargeClient.CreatePaymentIntent(ctx, amount)
	if err != nil {
		log.CtxError(ctx, "创建支付意图失败, amount=%d: %v", amount, err)
		return nil, consts.ErrPaymentIntent
	}
	return &learning.PaymentIntentResp{ClientSecret: secret}, nil
}

// RecordPayment 写入支付记录并清理对应购物车, 两步在同一事务中完成
func (s *PaymentService) RecordPayment(ctx context.Context, req *learning.RecordPaymentReq) (*learning.RecordPaymentResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetEmail() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetEmail() != req.Email {
		return nil, consts.ErrForbidden
	}

	cartIDs := lo.Uniq(req.CartItems)
	if len(cartIDs) == 0 {
		return nil, consts.ErrEmptyCheckout
	}
	oids, err := parseObjectIDs(cartIDs)
	if err != nil {
		return nil, err
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	p := &payment.Payment{
		ID:            primitive.NewObjectID(),
		Email:         req.Email,
		TransactionID: lo.Ternary(req.TransactionID != "", req.TransactionID, uuid.NewString()),
		Price:         price,
		Quantity:      lo.Ternary(req.Quantity > 0, req.Quantity, int64(len(cartIDs))),
		CartItems:     cartIDs,
		ClassNames:    req.ClassNames,
		Status:        lo.Ternary(req.Status != "", req.Status, consts.PaymentSucceeded),
		Date:          time.Now(),
	}

	var (
		deleted  int64
		enrolled []string
	)
	err = s.Transactor.Transact(ctx, func(ctx context.Context) error {
		enrolled = nil
		items, err := s.CartMapper.FindByIDs(ctx, req.Email, oids)
		if err != nil {
			return err
		}
		// 每个引用的购物车条目都必须仍在该用户的购物车中
		if len(items) != len(oids) {
			return consts.ErrNotFound
		}
		p.ClassItems = lo.Ternary(len(req.ClassItems) > 0, req.ClassItems, lo.Map(items, func(item *cart.CartItem, _ int) string {
			return item.ClassItemID
		}))

		if err = s.PaymentMapper.Insert(ctx, p); err != nil {
			return err
		}
		if deleted, err = s.CartMapper.DeleteByIDs(ctx, req.Email, oids); err != nil {
			return err
		}
		if !s.Config.Checkout.ReserveSeats {
			return nil
		}
		// 座位在加购时已扣减, 这里只增加报名人数
		for _, item := range items {
			if _, err = s.ClassMapper.IncCountersNoCache(ctx, item.ClassItemID, 1, 0); err != nil {
				return err
			}
			enrolled = append(enrolled, item.ClassItemID)
		}
		return nil
	})
	if err != nil {
		return nil, wrapErr(ctx, err, consts.ErrRecordPayment)
	}
	evictClasses(ctx, s.ClassMapper, s.TopCache, enrolled)

	log.CtxInfo(ctx, "payment recorded, email=%s, payment=%s, cartItems=%d", p.Email, p.ID.Hex(), deleted)
	return &learning.RecordPaymentResp{
		InsertResult: learning.InsertResp{Acknowledged: true, InsertedID: p.ID.Hex()},
		DeleteResult: learning.DeleteResp{Acknowledged: true, DeletedCount: deleted},
	}, nil
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]*learning.PaymentInfo, error) {
	payments, err := s.PaymentMapper.FindAll(ctx)
	if err != nil {
		log.CtxError(ctx, "获取支付记录失败: %v", err)
		return nil, consts.ErrCall
	}
	return toPaymentInfos(payments), nil
}

// ListPaymentsByEmail 只能查询令牌本人的支付记录
func (s *PaymentService) ListPaymentsByEmail(ctx context.Context, req *learning.EmailReq) ([]*learning.PaymentInfo, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetEmail() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetEmail() != req.Email {
		return nil, consts.ErrForbidden
	}

	payments, err := s.PaymentMapper.FindByEmail(ctx, req.Email)
	if err != nil {
		log.CtxError(ctx, "获取用户支付记录失败: %v", err)
		return nil, consts.ErrCall
	}
	return toPaymentInfos(payments), nil
}

func toPaymentInfos(payments []*payment.Payment) []*learning.PaymentInfo {
	return lo.Map(payments, func(p *payment.Payment, _ int) *learning.PaymentInfo {
		info := new(learning.PaymentInfo)
		_ = util.Copy(info, p)
		return info
	})
}
