package service

import (
	"context"
	"errors"
	"learning-market/biz/infrastructure/config"
	"learning-market/biz/infrastructure/consts"
	"learning-market/biz/infrastructure/repository/cart"
	"learning-market/biz/infrastructure/repository/class"
	"learning-market/biz/infrastructure/repository/payment"
	"learning-market/biz/infrastructure/repository/user"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var errDB = errors.New("db down")

func testConfig() *config.Config {
	c := new(config.Config)
	c.Auth = config.Auth{Secret: "test-secret", AccessExpire: 3600}
	c.Catalog = config.Catalog{TopLimit: 6, TopCacheExpire: 60}
	c.Stripe = config.Stripe{Currency: "usd"}
	return c
}

type fakeUserMapper struct {
	mu    sync.Mutex
	users map[string]*user.User
	err   error
}

func newFakeUserMapper() *fakeUserMapper {
	return &fakeUserMapper{users: map[string]*user.User{}}
}

func (f *fakeUserMapper) InsertIfAbsent(ctx context.Context, u *user.User) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.users[u.Email]; ok {
		return false, nil
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users[u.Email] = u
	return true, nil
}

func (f *fakeUserMapper) FindOneByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserMapper) FindAll(ctx context.Context) ([]*user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*user.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserMapper) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, consts.ErrInvalidObjectId
	}
	for email, u := range f.users {
		if u.ID == oid {
			delete(f.users, email)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserMapper) UpdateRole(ctx context.Context, id string, role string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	for _, u := range f.users {
		if u.ID == oid {
			u.Role = role
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

type fakeClassMapper struct {
	classes map[string]*class.Class
	err     error

	// tx 非空时记录事务内的缓存操作
	tx            *fakeTransactor
	evicted       []string
	evictedInTx   int
	cachedIncInTx int
}

func newFakeClassMapper(classes ...*class.Class) *fakeClassMapper {
	f := &fakeClassMapper{classes: map[string]*class.Class{}}
	for _, c := range classes {
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		f.classes[c.ID.Hex()] = c
	}
	return f
}

func (f *fakeClassMapper) Insert(ctx context.Context, c *class.Class) error {
	if f.err != nil {
		return f.err
	}
	c.ID = primitive.NewObjectID()
	f.classes[c.ID.Hex()] = c
	return nil
}

func (f *fakeClassMapper) FindOne(ctx context.Context, id string) (*class.Class, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	c, ok := f.classes[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return c, nil
}

func (f *fakeClassMapper) FindAll(ctx context.Context) ([]*class.Class, error) {
	return f.filter(func(*class.Class) bool { return true })
}

func (f *fakeClassMapper) FindByInstructor(ctx context.Context, email string) ([]*class.Class, error) {
	return f.filter(func(c *class.Class) bool { return c.InstructorEmail == email })
}

func (f *fakeClassMapper) FindByStatus(ctx context.Context, status string) ([]*class.Class, error) {
	return f.filter(func(c *class.Class) bool { return c.Status == status })
}

func (f *fakeClassMapper) FindTopByEnrollment(ctx context.Context, status string, limit int64) ([]*class.Class, error) {
	out, err := f.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EnrolledStudents > out[j].EnrolledStudents })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeClassMapper) UpdateStatus(ctx context.Context, id string, status string, feedback *string) (*mongo.UpdateResult, error) {
	c, err := f.FindOne(ctx, id)
	if errors.Is(err, consts.ErrNotFound) {
		return &mongo.UpdateResult{}, nil
	}
	if err != nil {
		return nil, err
	}
	c.Status = status
	if feedback != nil {
		c.Feedback = *feedback
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeClassMapper) IncCounters(ctx context.Context, id string, enrolled, seats int64) (*mongo.UpdateResult, error) {
	if f.tx.inTx() {
		f.cachedIncInTx++
	}
	return f.inc(ctx, id, enrolled, seats)
}

func (f *fakeClassMapper) IncCountersNoCache(ctx context.Context, id string, enrolled, seats int64) (*mongo.UpdateResult, error) {
	return f.inc(ctx, id, enrolled, seats)
}

func (f *fakeClassMapper) DelCache(ctx context.Context, ids ...string) error {
	if f.tx.inTx() {
		f.evictedInTx++
	}
	f.evicted = append(f.evicted, ids...)
	return nil
}

func (f *fakeClassMapper) inc(ctx context.Context, id string, enrolled, seats int64) (*mongo.UpdateResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, err := f.FindOne(ctx, id)
	if errors.Is(err, consts.ErrNotFound) {
		return &mongo.UpdateResult{}, nil
	}
	if err != nil {
		return nil, err
	}
	if c.EnrolledStudents+enrolled < 0 || c.AvailableSeats+seats < 0 {
		return &mongo.UpdateResult{}, nil
	}
	c.EnrolledStudents += enrolled
	c.AvailableSeats += seats
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeClassMapper) filter(keep func(*class.Class) bool) ([]*class.Class, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*class.Class, 0)
	for _, c := range f.classes {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeCartMapper struct {
	items     map[primitive.ObjectID]*cart.CartItem
	deleteErr error
}

func newFakeCartMapper() *fakeCartMapper {
	return &fakeCartMapper{items: map[primitive.ObjectID]*cart.CartItem{}}
}

func (f *fakeCartMapper) InsertIfAbsent(ctx context.Context, item *cart.CartItem) (bool, error) {
	for _, it := range f.items {
		if it.ClassItemID == item.ClassItemID && it.Email == item.Email {
			return false, nil
		}
	}
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	f.items[item.ID] = item
	return true, nil
}

func (f *fakeCartMapper) FindOne(ctx context.Context, id string) (*cart.CartItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	item, ok := f.items[oid]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return item, nil
}

func (f *fakeCartMapper) FindByEmail(ctx context.Context, email string) ([]*cart.CartItem, error) {
	out := make([]*cart.CartItem, 0)
	for _, it := range f.items {
		if it.Email == email {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCartMapper) FindByIDs(ctx context.Context, email string, ids []primitive.ObjectID) ([]*cart.CartItem, error) {
	out := make([]*cart.CartItem, 0)
	for _, id := range ids {
		if it, ok := f.items[id]; ok && it.Email == email {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCartMapper) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, consts.ErrInvalidObjectId
	}
	if _, ok := f.items[oid]; !ok {
		return 0, nil
	}
	delete(f.items, oid)
	return 1, nil
}

func (f *fakeCartMapper) DeleteByIDs(ctx context.Context, email string, ids []primitive.ObjectID) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	var n int64
	for _, id := range ids {
		if it, ok := f.items[id]; ok && it.Email == email {
			delete(f.items, id)
			n++
		}
	}
	return n, nil
}

type fakeSelectedMapper struct {
	docs []bson.M
}

func (f *fakeSelectedMapper) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	oid := primitive.NewObjectID()
	doc[consts.ID] = oid
	f.docs = append(f.docs, doc)
	return oid, nil
}

type fakePaymentMapper struct {
	payments []*payment.Payment
}

func (f *fakePaymentMapper) Insert(ctx context.Context, p *payment.Payment) error {
	f.payments = append(f.payments, p)
	return nil
}

func (f *fakePaymentMapper) FindAll(ctx context.Context) ([]*payment.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentMapper) FindByEmail(ctx context.Context, email string) ([]*payment.Payment, error) {
	out := make([]*payment.Payment, 0)
	for _, p := range f.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeTransactor 记录调用次数, 失败时回放快照来模拟回滚
type fakeTransactor struct {
	calls    int
	active   bool
	payments *fakePaymentMapper
	carts    *fakeCartMapper
}

func (f *fakeTransactor) inTx() bool {
	return f != nil && f.active
}

func (f *fakeTransactor) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	f.active = true
	defer func() { f.active = false }()
	var paymentsBefore []*payment.Payment
	cartsBefore := map[primitive.ObjectID]*cart.CartItem{}
	if f.payments != nil {
		paymentsBefore = append(paymentsBefore, f.payments.payments...)
	}
	if f.carts != nil {
		for k, v := range f.carts.items {
			cartsBefore[k] = v
		}
	}

	err := fn(ctx)
	if err != nil {
		if f.payments != nil {
			f.payments.payments = paymentsBefore
		}
		if f.carts != nil {
			f.carts.items = cartsBefore
		}
	}
	return err
}

type fakeTopCache struct {
	classes     []*class.Class
	hit         bool
	deletes     int
	tx          *fakeTransactor
	deletesInTx int
}

func (f *fakeTopCache) Get(ctx context.Context) ([]*class.Class, bool, error) {
	return f.classes, f.hit, nil
}

func (f *fakeTopCache) Set(ctx context.Context, classes []*class.Class) error {
	f.classes = classes
	f.hit = true
	return nil
}

func (f *fakeTopCache) Delete(ctx context.Context) error {
	if f.tx.inTx() {
		f.deletesInTx++
	}
	f.deletes++
	f.classes = nil
	f.hit = false
	return nil
}

type fakeChargeClient struct {
	amount int64
	err    error
}

func (f *fakeChargeClient) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.amount = amount
	return "pi_secret_test", nil
}
