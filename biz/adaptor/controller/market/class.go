package market

import (
	"context"
	"learning-market/biz/adaptor"
	"learning-market/biz/application/dto/learning"
	"learning-market/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// CreateClass .
// @router /classes [POST]
func CreateClass(ctx context.Context, c *app.RequestContext) {
	var req learning.CreateClassReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.CreateClass(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ListAllClasses .
// @router /allclasses [GET]
func ListAllClasses(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.ClassService.ListAllClasses(ctx)
	adaptor.PostProcess(ctx, c, resp, err)
}

// UpdateClassStatus .
// @router /allclasses/:classId [PATCH]
// @router /classes/:classId [PATCH]
func UpdateClassStatus(ctx context.Context, c *app.RequestContext) {
	var req learning.UpdateClassStatusReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.UpdateClassStatus(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ListClasses .
// @router /classes [GET]
func ListClasses(ctx context.Context, c *app.RequestContext) {
	var req learning.ListClassesReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.ListClasses(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// GetClass .
// @router /classes/:id [GET]
func GetClass(ctx context.Context, c *app.RequestContext) {
	var req learning.IDReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.GetClass(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ListApprovedClasses .
// @router /approved-classes [GET]
func ListApprovedClasses(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.ClassService.ListApprovedClasses(ctx)
	adaptor.PostProcess(ctx, c, resp, err)
}

// GetApprovedClass .
// @router /approved-classes/:id [GET]
func GetApprovedClass(ctx context.Context, c *app.RequestContext) {
	var req learning.IDReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.GetApprovedClass(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// ListTopClasses .
// @router /top-classes [GET]
func ListTopClasses(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.ClassService.ListTopClasses(ctx)
	adaptor.PostProcess(ctx, c, resp, err)
}

// IncClassCounters .
// @router /approved-classes/:classItemId [PATCH]
func IncClassCounters(ctx context.Context, c *app.RequestContext) {
	var req learning.IncClassCountersReq
	if err := c.BindAndValidate(&req); err != nil {
		adaptor.BadRequest(c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.IncClassCounters(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}
