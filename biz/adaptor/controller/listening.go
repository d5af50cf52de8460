package controller

import (
	"context"
	"listening-show/biz/adaptor"
	"listening-show/biz/application/dto/show"
	"listening-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// SubmitListening .
// @router /api/v1/listening [POST]
func SubmitListening(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.SubmitListeningReq
	err = bindJSON(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ListeningService.Submit(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, consts.StatusCreated)
}

// ListListening .
// @router /api/v1/listening [GET]
func ListListening(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.ListListeningReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ListeningService.List(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CurrentWeek .
// @router /api/v1/listening/week [GET]
func CurrentWeek(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.CurrentWeekReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ListeningService.CurrentWeek(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
