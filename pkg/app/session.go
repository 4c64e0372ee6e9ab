package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/haierkeys/file-cms-service/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionIssuer 默认会话签发者
const DefaultSessionIssuer = "file-cms-service"

// DefaultSessionCookie 默认会话 Cookie 名称
const DefaultSessionCookie = "cms_session"

// SessionContextKey is the gin context key the loaded session is stored under.
const SessionContextKey = "session"

// SessionConfig 会话管理器配置
type SessionConfig struct {
	SecretKey  string        // JWT 签名密钥
	CookieName string        // 会话 Cookie 名称
	Expiry     time.Duration // 会话过期时间，默认 7 天
	Issuer     string        // 签发者
	Secure     bool          // 仅 HTTPS 下发送 Cookie
}

// SessionClaims is the JWT payload carried by the session cookie: at most
// one signed-in username and one pending flash message.
// SessionClaims 是会话 Cookie 携带的 JWT 载荷：至多一个已登录用户名
// 和一条待显示的 flash 消息。
type SessionClaims struct {
	Username string `json:"username,omitempty"`
	Flash    string `json:"flash,omitempty"`
	jwt.RegisteredClaims
}

// Session is the per-request mutable view of the cookie state. Handlers
// mutate it and the render/redirect helpers persist it back.
type Session struct {
	Username string
	flash    string
	dirty    bool
}

// IsSignedIn reports whether the session carries an identity.
func (s *Session) IsSignedIn() bool {
	return s.Username != ""
}

// SignIn 设置会话身份
func (s *Session) SignIn(username string) {
	s.Username = username
	s.dirty = true
}

// SignOut 清除会话身份
func (s *Session) SignOut() {
	s.Username = ""
	s.dirty = true
}

// SetFlash stores a one-shot message shown on the next rendered page.
// SetFlash 设置一条只显示一次的消息
func (s *Session) SetFlash(msg string) {
	s.flash = msg
	s.dirty = true
}

// PopFlash returns the pending flash message and clears it.
// PopFlash 返回并清除待显示的消息
func (s *Session) PopFlash() string {
	if s.flash == "" {
		return ""
	}
	msg := s.flash
	s.flash = ""
	s.dirty = true
	return msg
}

// Flash returns the pending flash without clearing it.
func (s *Session) Flash() string {
	return s.flash
}

// Dirty reports whether the session must be written back to the cookie.
func (s *Session) Dirty() bool {
	return s.dirty
}

// SessionManager signs and parses the session cookie.
// SessionManager 负责会话 Cookie 的签发与解析
type SessionManager struct {
	config SessionConfig
}

// NewSessionManager 创建会话管理器
func NewSessionManager(cfg SessionConfig) *SessionManager {
	if cfg.Expiry == 0 {
		cfg.Expiry = 7 * 24 * time.Hour
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultSessionIssuer
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultSessionCookie
	}
	return &SessionManager{config: cfg}
}

// CookieName returns the configured session cookie name.
func (m *SessionManager) CookieName() string {
	return m.config.CookieName
}

// secret binds the signing key to the machine like the auth token scheme.
func (m *SessionManager) secret() []byte {
	return []byte(m.config.SecretKey + "_" + util.GetMachineID())
}

// Load parses the session cookie. Any missing, expired or tampered cookie
// yields a fresh empty session.
// Load 解析会话 Cookie，缺失或无效时返回全新的空会话
func (m *SessionManager) Load(c *gin.Context) *Session {
	cookie, err := c.Cookie(m.config.CookieName)
	if err != nil || cookie == "" {
		return &Session{}
	}

	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(cookie, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret(), nil
	})
	if err != nil || !parsed.Valid {
		return &Session{}
	}

	return &Session{
		Username: claims.Username,
		flash:    claims.Flash,
	}
}

// Save writes the session back to the cookie. An empty session deletes the
// cookie instead.
// Save 将会话写回 Cookie，空会话则删除 Cookie
func (m *SessionManager) Save(c *gin.Context, s *Session) error {
	c.SetSameSite(http.SameSiteLaxMode)

	if s.Username == "" && s.flash == "" {
		c.SetCookie(m.config.CookieName, "", -1, "/", "", m.config.Secure, true)
		s.dirty = false
		return nil
	}

	now := time.Now()
	claims := &SessionClaims{
		Username: s.Username,
		Flash:    s.flash,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.config.Issuer,
			Subject:   "session",
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret())
	if err != nil {
		return err
	}

	c.SetCookie(m.config.CookieName, token, int(m.config.Expiry.Seconds()), "/", "", m.config.Secure, true)
	s.dirty = false
	return nil
}

// GetSession extracts the session loaded by the session middleware.
// GetSession 获取会话中间件装载的会话
func GetSession(c *gin.Context) *Session {
	if v, exist := c.Get(SessionContextKey); exist {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	// Session middleware not installed; degrade to an empty session.
	return &Session{}
}
