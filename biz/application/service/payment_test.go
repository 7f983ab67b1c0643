package service

import (
	"context"
	"errors"
	"learning-market/biz/application/dto/learning"
	"learning-market/biz/infrastructure/consts"
	"learning-market/biz/infrastructure/repository/cart"
	"learning-market/biz/infrastructure/repository/class"
	"learning-market/biz/infrastructure/repository/payment"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type paymentFixture struct {
	svc      *PaymentService
	payments *fakePaymentMapper
	carts    *fakeCartMapper
	classes  *fakeClassMapper
	charge   *fakeChargeClient
	tx       *fakeTransactor
	top      *fakeTopCache
}

func newPaymentFixture(reserve bool, classes ...*class.Class) *paymentFixture {
	payments := &fakePaymentMapper{}
	carts := newFakeCartMapper()
	classMapper := newFakeClassMapper(classes...)
	charge := &fakeChargeClient{}
	tx := &fakeTransactor{payments: payments, carts: carts}
	classMapper.tx = tx
	top := &fakeTopCache{hit: true, tx: tx}
	cfg := testConfig()
	cfg.Checkout.ReserveSeats = reserve
	return &paymentFixture{
		svc: &PaymentService{
			Config:        cfg,
			PaymentMapper: payments,
			CartMapper:    carts,
			ClassMapper:   classMapper,
			Transactor:    tx,
			ChargeClient:  charge,
			TopCache:      top,
		},
		payments: payments,
		carts:    carts,
		classes:  classMapper,
		charge:   charge,
		tx:       tx,
		top:      top,
	}
}

func (f *paymentFixture) addItem(email string, classID string) string {
	item := &cart.CartItem{ID: primitive.NewObjectID(), ClassItemID: classID, Email: email}
	f.carts.items[item.ID] = item
	return item.ID.Hex()
}

func TestPaymentServiceCreatePaymentIntent(t *testing.T) {
	tests := map[string]struct {
		price      any
		wantAmount int64
		wantErr    error
	}{
		"whole units":     {price: 20, wantAmount: 2000},
		"rounds to cents": {price: 19.99, wantAmount: 1999},
		"numeric string":  {price: "0.29", wantAmount: 29},
		"zero":            {price: 0, wantErr: consts.ErrInvalidPrice},
		"missing":         {price: nil, wantErr: consts.ErrInvalidPrice},
		"negative":        {price: -5, wantErr: consts.ErrInvalidPrice},
		"not a number":    {price: "ten", wantErr: consts.ErrInvalidPrice},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newPaymentFixture(false)
			resp, err := f.svc.CreatePaymentIntent(context.Background(), &learning.PaymentIntentReq{Price: tt.price})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, f.charge.amount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "pi_secret_test", resp.ClientSecret)
			assert.Equal(t, tt.wantAmount, f.charge.amount)
		})
	}
}

func TestPaymentServiceCreatePaymentIntentUpstreamError(t *testing.T) {
	f := newPaymentFixture(false)
	f.charge.err = errors.New("card declined")

	_, err := f.svc.CreatePaymentIntent(context.Background(), &learning.PaymentIntentReq{Price: 10})
	assert.ErrorIs(t, err, consts.ErrPaymentIntent)
}

func TestPaymentServiceRecordPayment(t *testing.T) {
	f := newPaymentFixture(false)
	a := f.addItem("s@x.com", "class-a")
	b := f.addItem("s@x.com", "class-b")
	keep := f.addItem("s@x.com", "class-c")
	other := f.addItem("other@x.com", "class-a")

	resp, err := f.svc.RecordPayment(withEmail("s@x.com"), &learning.RecordPaymentReq{
		Email:         "s@x.com",
		TransactionID: "pi_123",
		Price:         "40.5",
		CartItems:     []string{a, b},
		ClassNames:    []string{"A", "B"},
	})
	require.NoError(t, err)
	assert.True(t, resp.InsertResult.Acknowledged)
	assert.EqualValues(t, 2, resp.DeleteResult.DeletedCount)
	assert.Equal(t, 1, f.tx.calls)

	require.Len(t, f.payments.payments, 1)
	p := f.payments.payments[0]
	assert.Equal(t, resp.InsertResult.InsertedID, p.ID.Hex())
	assert.Equal(t, "pi_123", p.TransactionID)
	assert.Equal(t, 40.5, p.Price)
	assert.EqualValues(t, 2, p.Quantity)
	assert.Equal(t, []string{a, b}, p.CartItems)
	assert.Equal(t, []string{"class-a", "class-b"}, p.ClassItems)
	assert.Equal(t, consts.PaymentSucceeded, p.Status)
	assert.False(t, p.Date.IsZero())

	remaining, err := f.carts.FindByEmail(context.Background(), "s@x.com")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep, remaining[0].ID.Hex())
	_, err = f.carts.FindOne(context.Background(), other)
	assert.NoError(t, err)
}

func TestPaymentServiceRecordPaymentRejects(t *testing.T) {
	tests := map[string]struct {
		ctx     context.Context
		req     func(f *paymentFixture) *learning.RecordPaymentReq
		wantErr error
	}{
		"no token": {
			ctx: context.Background(),
			req: func(f *paymentFixture) *learning.RecordPaymentReq {
				return &learning.RecordPaymentReq{Email: "s@x.com", CartItems: []string{f.addItem("s@x.com", "c")}}
			},
			wantErr: consts.ErrNotAuthentication,
		},
		"paying for someone else": {
			ctx: withEmail("mallory@x.com"),
			req: func(f *paymentFixture) *learning.RecordPaymentReq {
				return &learning.RecordPaymentReq{Email: "s@x.com", CartItems: []string{f.addItem("s@x.com", "c")}}
			},
			wantErr: consts.ErrForbidden,
		},
		"empty cart list": {
			ctx: withEmail("s@x.com"),
			req: func(f *paymentFixture) *learning.RecordPaymentReq {
				f.addItem("s@x.com", "c")
				return &learning.RecordPaymentReq{Email: "s@x.com"}
			},
			wantErr: consts.ErrEmptyCheckout,
		},
		"malformed cart id": {
			ctx: withEmail("s@x.com"),
			req: func(f *paymentFixture) *learning.RecordPaymentReq {
				return &learning.RecordPaymentReq{Email: "s@x.com", CartItems: []string{f.addItem("s@x.com", "c"), "nope"}}
			},
			wantErr: consts.ErrInvalidObjectId,
		},
		"cart item of another user": {
			ctx: withEmail("s@x.com"),
			req: func(f *paymentFixture) *learning.RecordPaymentReq {
				return &learning.RecordPaymentReq{Email: "s@x.com", CartItems: []string{f.addItem("s@x.com", "c"), f.addItem("other@x.com", "c")}}
			},
			wantErr: consts.ErrNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newPaymentFixture(false)
			req := tt.req(f)
			before := len(f.carts.items)

			_, err := f.svc.RecordPayment(tt.ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.payments.payments)
			assert.Len(t, f.carts.items, before)
		})
	}
}

func TestPaymentServiceRecordPaymentRollsBack(t *testing.T) {
	f := newPaymentFixture(false)
	a := f.addItem("s@x.com", "class-a")
	f.carts.deleteErr = errDB

	_, err := f.svc.RecordPayment(withEmail("s@x.com"), &learning.RecordPaymentReq{Email: "s@x.com", CartItems: []string{a}})
	assert.ErrorIs(t, err, consts.ErrRecordPayment)
	assert.Empty(t, f.payments.payments)
	assert.Len(t, f.carts.items, 1)
}

func TestPaymentServiceRecordPaymentEnrolls(t *testing.T) {
	c := &class.Class{ClassName: "Go", Status: consts.StatusApproved, AvailableSeats: 4}
	f := newPaymentFixture(true, c)
	a := f.addItem("s@x.com", c.ID.Hex())

	_, err := f.svc.RecordPayment(withEmail("s@x.com"), &learning.RecordPaymentReq{Email: "s@x.com", CartItems: []string{a, a}})
	require.NoError(t, err)
	assert.EqualValues(t, 1, c.EnrolledStudents)
	assert.EqualValues(t, 4, c.AvailableSeats)
	require.Len(t, f.payments.payments, 1)
	assert.Equal(t, []string{a}, f.payments.payments[0].CartItems)

	// 报名人数变化后课程缓存与热门课程缓存都在提交后失效
	assert.Equal(t, []string{c.ID.Hex()}, f.classes.evicted)
	assert.Equal(t, 1, f.top.deletes)
	assert.False(t, f.top.hit)
	assert.Zero(t, f.classes.evictedInTx)
	assert.Zero(t, f.classes.cachedIncInTx)
	assert.Zero(t, f.top.deletesInTx)
}

func TestPaymentServiceRecordPaymentKeepsCacheOnFailure(t *testing.T) {
	c := &class.Class{ClassName: "Go", Status: consts.StatusApproved, AvailableSeats: 4}
	f := newPaymentFixture(true, c)
	a := f.addItem("s@x.com", c.ID.Hex())
	f.carts.deleteErr = errDB

	_, err := f.svc.RecordPayment(withEmail("s@x.com"), &learning.RecordPaymentReq{Email: "s@x.com", CartItems: []string{a}})
	assert.ErrorIs(t, err, consts.ErrRecordPayment)
	assert.Empty(t, f.classes.evicted)
	assert.Zero(t, f.top.deletes)
	assert.True(t, f.top.hit)
}

func TestPaymentServiceRecordPaymentWithoutReserveSkipsEviction(t *testing.T) {
	f := newPaymentFixture(false)
	a := f.addItem("s@x.com", "class-a")

	_, err := f.svc.RecordPayment(withEmail("s@x.com"), &learning.RecordPaymentReq{Email: "s@x.com", CartItems: []string{a}})
	require.NoError(t, err)
	assert.Empty(t, f.classes.evicted)
	assert.Zero(t, f.top.deletes)
}

func TestPaymentServiceListPayments(t *testing.T) {
	f := newPaymentFixture(false)
	now := time.Now()
	f.payments.payments = []*payment.Payment{
		{ID: primitive.NewObjectID(), Email: "s@x.com", Price: 10, Date: now},
		{ID: primitive.NewObjectID(), Email: "other@x.com", Price: 20, Date: now},
	}

	all, err := f.svc.ListPayments(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := f.svc.ListPaymentsByEmail(withEmail("s@x.com"), &learning.EmailReq{Email: "s@x.com"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 10.0, mine[0].Price)
	assert.True(t, now.Equal(mine[0].Date))

	_, err = f.svc.ListPaymentsByEmail(withEmail("s@x.com"), &learning.EmailReq{Email: "other@x.com"})
	assert.ErrorIs(t, err, consts.ErrForbidden)

	_, err = f.svc.ListPaymentsByEmail(context.Background(), &learning.EmailReq{Email: "s@x.com"})
	assert.ErrorIs(t, err, consts.ErrNotAuthentication)
}
