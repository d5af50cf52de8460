package log

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

// Info 普通日志
func Info(format string, v ...any) {
	logx.Infof(format, v...)
}

func Error(format string, v ...any) {
	logx.Errorf(format, v...)
}

// CtxInfo 带上下文的日志, logx 会从 ctx 中取出 trace/span id
func CtxInfo(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Infof(format, v...)
}

func CtxError(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Errorf(format, v...)
}
