package show

type SignInReq struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type SignInResp struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	AccessToken  string `json:"accessToken"`
	AccessExpire int64  `json:"accessExpire"`
}

type GetUserInfoReq struct{}

type GetUserInfoResp struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// CreateUserReq 仅供初始化工具使用, 不对外暴露接口
type CreateUserReq struct {
	Name     string
	Email    string
	Password string
	Role     string
}
