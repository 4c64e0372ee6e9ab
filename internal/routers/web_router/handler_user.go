package web_router

import (
	"net/http"

	"github.com/haierkeys/file-cms-service/internal/app"
	"github.com/haierkeys/file-cms-service/internal/dto"
	pkgapp "github.com/haierkeys/file-cms-service/pkg/app"
	"github.com/haierkeys/file-cms-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// UserHandler user page router handler
// UserHandler 用户页面路由处理器
type UserHandler struct {
	*Handler
}

// NewUserHandler 创建 UserHandler 实例
func NewUserHandler(a *app.App) *UserHandler {
	return &UserHandler{Handler: NewHandler(a)}
}

// SignInForm 渲染登录表单
func (h *UserHandler) SignInForm(c *gin.Context) {
	h.html(c, http.StatusOK, "signin.tmpl", gin.H{})
}

// SignIn handles the sign-in submit. A failed attempt re-renders the
// form at status 200 without hinting which field was wrong.
// SignIn 处理登录提交，失败时以 200 重渲染表单，不提示哪项有误
func (h *UserHandler) SignIn(c *gin.Context) {
	params := &dto.UserSignInRequest{}
	if valid, errs := pkgapp.BindAndValid(c, params); !valid {
		h.html(c, http.StatusOK, "signin.tmpl", gin.H{"Flash": errs.Error()})
		return
	}

	user, err := h.App.UserService.Verify(c.Request.Context(), params)
	if err != nil {
		h.html(c, http.StatusOK, "signin.tmpl", gin.H{
			"Flash":    err.Error(),
			"Username": params.Username,
		})
		return
	}

	s := h.session(c)
	s.SignIn(user.Username)
	s.SetFlash(code.SuccessUserSignedIn.Msg())
	h.redirect(c, "/")
}

// SignOut clears the session identity and flashes the goodbye message.
// SignOut 清除会话身份
func (h *UserHandler) SignOut(c *gin.Context) {
	s := h.session(c)
	s.SignOut()
	s.SetFlash(code.SuccessUserSignedOut.Msg())
	h.redirect(c, "/")
}

// SignUpForm 渲染注册表单
func (h *UserHandler) SignUpForm(c *gin.Context) {
	h.html(c, http.StatusOK, "signup.tmpl", gin.H{})
}

// SignUp handles the registration submit. A new account is persisted but
// not signed in; the visitor is asked to sign in themselves.
// SignUp 处理注册提交，注册成功后不会自动登录
func (h *UserHandler) SignUp(c *gin.Context) {
	params := &dto.UserSignUpRequest{}
	if valid, errs := pkgapp.BindAndValid(c, params); !valid {
		h.html(c, code.ErrorInvalidParams.StatusCode(), "signup.tmpl", gin.H{"Flash": errs.Error()})
		return
	}

	if _, err := h.App.UserService.Register(c.Request.Context(), params); err != nil {
		status := http.StatusInternalServerError
		if cerr, ok := err.(*code.Code); ok {
			status = cerr.StatusCode()
		}
		h.html(c, status, "signup.tmpl", gin.H{
			"Flash":    err.Error(),
			"Username": params.Username,
		})
		return
	}

	h.flashAndRedirect(c, code.SuccessUserSignedUp.Msg(), "/")
}
