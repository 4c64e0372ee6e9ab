package code

import (
	"fmt"
	"net/http"
)

// Code is a registered user-facing message with an HTTP status attached.
// Error codes implement the error interface so services can return them
// directly and handlers can turn them into a flash message or a re-render.
// Code 是带 HTTP 状态的用户可见消息，错误码实现 error 接口，
// 服务层可直接返回，处理器再将其转换为 flash 消息或页面重渲染。
type Code struct {
	code       int
	status     bool
	statusCode int
	Lang       lang
	args       []any
	details    []string
}

var codes = map[int]string{}

// NewError registers a failure code
// NewError 注册一个失败码
func NewError(code int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("code %d already exists, pick another one", code))
	}
	codes[code] = l.en
	return &Code{code: code, status: false, statusCode: http.StatusOK, Lang: l}
}

// NewSuccess registers a success code
// NewSuccess 注册一个成功码
func NewSuccess(code int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("code %d already exists, pick another one", code))
	}
	codes[code] = l.en
	return &Code{code: code, status: true, statusCode: http.StatusOK, Lang: l}
}

func (c *Code) clone() *Code {
	n := *c
	n.args = append([]any{}, c.args...)
	n.details = append([]string{}, c.details...)
	return &n
}

// Code returns the numeric code
func (c *Code) Code() int { return c.code }

// Status reports whether the code is a success code
func (c *Code) Status() bool { return c.status }

// StatusCode returns the HTTP status to use when re-rendering a page
func (c *Code) StatusCode() int { return c.statusCode }

// Details returns attached detail strings
func (c *Code) Details() []string { return c.details }

// Msg returns the localized message, with any bound arguments applied
// Msg 返回本地化消息，应用已绑定的参数
func (c *Code) Msg() string {
	m := c.Lang.GetMessage()
	if len(c.args) > 0 {
		return fmt.Sprintf(m, c.args...)
	}
	return m
}

// Error implements the error interface
func (c *Code) Error() string { return c.Msg() }

// WithArgs returns a copy with format arguments bound to the message
// WithArgs 返回绑定了格式化参数的副本
func (c *Code) WithArgs(args ...any) *Code {
	n := c.clone()
	n.args = args
	return n
}

// WithDetails returns a copy carrying extra detail strings
// WithDetails 返回附带详情的副本
func (c *Code) WithDetails(details ...string) *Code {
	n := c.clone()
	n.details = append(n.details, details...)
	return n
}

// WithStatusCode returns a copy with a different HTTP status
func (c *Code) WithStatusCode(status int) *Code {
	n := c.clone()
	n.statusCode = status
	return n
}

// Is reports whether err carries the same numeric code.
func (c *Code) Is(err error) bool {
	other, ok := err.(*Code)
	return ok && other.code == c.code
}
