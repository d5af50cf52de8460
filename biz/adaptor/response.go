package adaptor

import (
	"context"
	"listening-show/biz/application/dto/basic"
	"listening-show/biz/infrastructure/consts"
	"listening-show/biz/infrastructure/util"
	"listening-show/biz/infrastructure/util/log"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/codes"
)

// HTTPStatus 错误码到 http 状态码
func HTTPStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument, codes.FailedPrecondition:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Aborted, codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse 非 Errno 的错误不向外暴露细节
func ErrorResponse(err error) (int, *basic.Response) {
	code := consts.CodeOf(err)
	msg := err.Error()
	if code == codes.Unknown {
		msg = consts.ErrCall.Error()
	}
	return HTTPStatus(code), &basic.Response{
		Code: int64(code),
		Msg:  msg,
	}
}

// PostProcess 统一处理响应, okStatus 缺省为 200
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error, okStatus ...int) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)
	if err != nil {
		status, body := ErrorResponse(err)
		c.JSON(status, body)
		return
	}
	status := http.StatusOK
	if len(okStatus) > 0 {
		status = okStatus[0]
	}
	c.JSON(status, resp)
}
