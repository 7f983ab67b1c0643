package market

import (
	"context"
	"learning-market/biz/adaptor"
	"learning-market/biz/application/dto/learning"
	"learning-market/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// SignToken .
// @router /jwt [POST]
func SignToken(ctx context.Context, c *app.RequestContext) {
	var payload map[string]any
	if err := c.BindJSON(&payload); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.SignToken(ctx, payload)
	adaptor.PostProcess(ctx, c, resp, err)
}

// CreateUser .
// @router /users [POST]
func CreateUser(ctx context.Context, c *app.RequestContext) {
	var req learning.CreateUserReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.CreateUser(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ListUsers .
// @router /users [GET]
func ListUsers(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.UserService.ListUsers(ctx)
	adaptor.PostProcess(ctx, c, resp, err)
}

// DeleteUser .
// @router /users/:id [DELETE]
func DeleteUser(ctx context.Context, c *app.RequestContext) {
	var req learning.IDReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.DeleteUser(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// IsAdmin .
// @router /users/admin/:email [GET]
func IsAdmin(ctx context.Context, c *app.RequestContext) {
	var req learning.EmailReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.IsAdmin(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// IsInstructor .
// @router /users/instructor/:email [GET]
func IsInstructor(ctx context.Context, c *app.RequestContext) {
	var req learning.EmailReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.IsInstructor(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// MakeAdmin .
// @router /users/admin/:id [PATCH]
func MakeAdmin(ctx context.Context, c *app.RequestContext) {
	var req learning.IDReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.MakeAdmin(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// MakeInstructor .
// @router /users/instructor/:id [PATCH]
func MakeInstructor(ctx context.Context, c *app.RequestContext) {
	var req learning.IDReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.MakeInstructor(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}
