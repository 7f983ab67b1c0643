package provider

import (
	"learning-market/biz/application/service"
	"learning-market/biz/infrastructure/cache"
	"learning-market/biz/infrastructure/charge"
	"learning-market/biz/infrastructure/config"
	"learning-market/biz/infrastructure/redis"
	"learning-market/biz/infrastructure/repository/cart"
	"learning-market/biz/infrastructure/repository/class"
	"learning-market/biz/infrastructure/repository/payment"
	"learning-market/biz/infrastructure/repository/selected"
	"learning-market/biz/infrastructure/repository/transaction"
	"learning-market/biz/infrastructure/repository/user"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config         *config.Config
	UserService    service.IUserService
	ClassService   service.IClassService
	CartService    service.ICartService
	PaymentService service.IPaymentService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.ClassServiceSet,
	service.CartServiceSet,
	service.PaymentServiceSet,
)

var MapperSet = wire.NewSet(
	user.NewMongoMapper,
	wire.Bind(new(user.IMongoMapper), new(*user.MongoMapper)),
	class.NewMongoMapper,
	wire.Bind(new(class.IMongoMapper), new(*class.MongoMapper)),
	cart.NewMongoMapper,
	wire.Bind(new(cart.IMongoMapper), new(*cart.MongoMapper)),
	selected.NewMongoMapper,
	wire.Bind(new(selected.IMongoMapper), new(*selected.MongoMapper)),
	payment.NewMongoMapper,
	wire.Bind(new(payment.IMongoMapper), new(*payment.MongoMapper)),
	transaction.NewMongoTransactor,
	wire.Bind(new(transaction.ITransactor), new(*transaction.MongoTransactor)),
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	redis.NewRedis,
	cache.NewTopClassesCache,
	wire.Bind(new(cache.ITopClassesCache), new(*cache.TopClassesCache)),
	charge.NewStripeClient,
	wire.Bind(new(charge.IClient), new(*charge.StripeClient)),
	MapperSet,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
