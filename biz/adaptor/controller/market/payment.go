package market

import (
	"context"
	"learning-market/biz/adaptor"
	"learning-market/biz/application/dto/learning"
	"learning-market/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// CreatePaymentIntent .
// @router /create-payment-intent [POST]
func CreatePaymentIntent(ctx context.Context, c *app.RequestContext) {
	var req learning.PaymentIntentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.PaymentService.CreatePaymentIntent(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// RecordPayment .
// @router /payments [POST]
func RecordPayment(ctx context.Context, c *app.RequestContext) {
	var req learning.RecordPaymentReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.PaymentService.RecordPayment(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ListPayments .
// @router /payments [GET]
func ListPayments(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.PaymentService.ListPayments(ctx)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ListPaymentsByEmail .
// @router /payments/:email [GET]
func ListPaymentsByEmail(ctx context.Context, c *app.RequestContext) {
	var req learning.EmailReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.PaymentService.ListPaymentsByEmail(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}
