package charge

import (
	"context"
	"learning-market/biz/infrastructure/config"
	"learning-market/biz/infrastructure/consts"
	"net/http"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// IClient 向支付服务申请支付意图
type IClient interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

type StripeClient struct {
	api      *client.API
	currency string
}

func NewStripeClient(config *config.Config) *StripeClient {
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	backends := &stripe.Backends{
		API: stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			HTTPClient: httpClient,
		}),
	}
	api := &client.API{}
	api.Init(config.Stripe.SecretKey, backends)
	return &StripeClient{
		api:      api,
		currency: config.Stripe.Currency,
	}
}

// CreatePaymentIntent amount 单位为分, 返回前端确认支付用的 client secret
func (c *StripeClient) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(c.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{consts.PaymentMethodCard}),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	trace.SpanFromContext(ctx).AddEvent("payment_intent.created", trace.WithAttributes(
		attribute.String("payment_intent.id", pi.ID),
		attribute.Int64("payment_intent.amount", amount),
	))
	return pi.ClientSecret, nil
}
