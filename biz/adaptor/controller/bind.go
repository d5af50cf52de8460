package controller

import (
	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app"
)

// bindJSON 用于含 any 字段的请求体, 分数和上课日既可能是数字也可能是字符串
func bindJSON(c *app.RequestContext, req any) error {
	body := c.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return sonic.Unmarshal(body, req)
}
