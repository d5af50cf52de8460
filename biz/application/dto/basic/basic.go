package basic

// UserMeta 从 token 中解析出的调用方信息
type UserMeta struct {
	UserId string `json:"userId" mapstructure:"userId"`
	Role   string `json:"role" mapstructure:"role"`
	Name   string `json:"name" mapstructure:"name"`
}

func (m *UserMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}

func (m *UserMeta) GetRole() string {
	if m == nil {
		return ""
	}
	return m.Role
}

// Response 通用响应
type Response struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}

// PaginationOptions 页码从 1 开始
type PaginationOptions struct {
	Page  *int64 `json:"page,omitempty" query:"page"`
	Limit *int64 `json:"limit,omitempty" query:"limit"`
}
