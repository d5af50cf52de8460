package controller

import (
	"context"
	"listening-show/biz/adaptor"
	"listening-show/biz/application/dto/show"
	"listening-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateStudent .
// @router /api/v1/instructor/student [POST]
func CreateStudent(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.CreateStudentReq
	err = bindJSON(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.StudentService.CreateStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err, consts.StatusCreated)
}

// ListStudents .
// @router /api/v1/instructor/student [GET]
func ListStudents(ctx context.Context, c *app.RequestContext) {
	var req show.ListStudentsReq
	p := provider.Get()
	resp, err := p.StudentService.ListStudents(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateStudent .
// @router /api/v1/instructor/student/:id [PUT]
func UpdateStudent(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.UpdateStudentReq
	err = bindJSON(c, &req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	req.Id = c.Param("id")

	p := provider.Get()
	resp, err := p.StudentService.UpdateStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteStudent .
// @router /api/v1/instructor/student/:id [DELETE]
func DeleteStudent(ctx context.Context, c *app.RequestContext) {
	req := show.IdReq{Id: c.Param("id")}
	p := provider.Get()
	resp, err := p.StudentService.DeleteStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
