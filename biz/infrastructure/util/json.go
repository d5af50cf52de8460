package util

import (
	"github.com/bytedance/sonic"
)

// JSONF 用于日志输出, 序列化失败时返回空串
func JSONF(v any) string {
	s, err := sonic.MarshalString(v)
	if err != nil {
		return ""
	}
	return s
}
