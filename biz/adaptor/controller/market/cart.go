package market

import (
	"context"
	"learning-market/biz/adaptor"
	"learning-market/biz/application/dto/learning"
	"learning-market/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// AddCart .
// @router /carts [POST]
func AddCart(ctx context.Context, c *app.RequestContext) {
	var req learning.AddCartReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CartService.AddCart(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ListCart .
// @router /carts [GET]
func ListCart(ctx context.Context, c *app.RequestContext) {
	var req learning.EmailReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CartService.ListCart(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// DeleteCart .
// @router /carts/:id [DELETE]
func DeleteCart(ctx context.Context, c *app.RequestContext) {
	var req learning.IDReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CartService.DeleteCart(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// SelectClass .
// @router /selected-classes [POST]
func SelectClass(ctx context.Context, c *app.RequestContext) {
	var doc map[string]any
	if err := c.BindJSON(&doc); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CartService.SelectClass(ctx, doc)
	adaptor.PostProcess(ctx, c, resp, err)
}
