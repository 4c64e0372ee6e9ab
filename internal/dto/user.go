// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

// UserSignInRequest 用户登录请求参数
type UserSignInRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// UserSignUpRequest 用户注册请求参数
type UserSignUpRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// UserDTO 用户数据传输对象
type UserDTO struct {
	Username string `json:"username"`
}
