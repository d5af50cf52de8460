package controller

import (
	"context"
	"listening-show/biz/adaptor"
	"listening-show/biz/application/dto/show"
	"listening-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateBatch .
// @router /api/v1/instructor/batch [POST]
func CreateBatch(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.CreateBatchReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.BatchService.CreateBatch(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, consts.StatusCreated)
}

// ListBatches .
// @router /api/v1/instructor/batch [GET]
func ListBatches(ctx context.Context, c *app.RequestContext) {
	var req show.ListBatchesReq
	p := provider.Get()
	resp, err := p.BatchService.ListBatches(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateBatch .
// @router /api/v1/instructor/batch/:id [PUT]
func UpdateBatch(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.UpdateBatchReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.BatchService.UpdateBatch(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteBatch .
// @router /api/v1/instructor/batch/:id [DELETE]
func DeleteBatch(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.IdReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.BatchService.DeleteBatch(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
