package app

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	val "github.com/go-playground/validator/v10"
)

// ValidError 单个字段的校验错误
type ValidError struct {
	Key     string
	Message string
}

func (v *ValidError) Error() string {
	return v.Message
}

type ValidErrors []*ValidError

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

// HasTag reports whether any field failed with the given validation tag.
// HasTag 判断是否存在指定校验标签的错误
func (v ValidErrors) HasTag(tag string) bool {
	for _, err := range v {
		if strings.HasSuffix(err.Key, "."+tag) {
			return true
		}
	}
	return false
}

// BindAndValid binds request parameters and translates validation errors
// using the translator the lang middleware stored in the context.
// BindAndValid 绑定请求参数并使用 lang 中间件存入上下文的翻译器翻译校验错误
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors
	err := c.ShouldBind(v)
	if err == nil {
		return true, nil
	}

	verrs, ok := err.(val.ValidationErrors)
	if !ok {
		errs = append(errs, &ValidError{Key: "request", Message: err.Error()})
		return false, errs
	}

	trans, transOK := c.Value("trans").(ut.Translator)
	for _, fe := range verrs {
		message := fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
		if transOK && trans != nil {
			message = fe.Translate(trans)
		}
		errs = append(errs, &ValidError{
			Key:     fe.Namespace() + "." + fe.Tag(),
			Message: message,
		})
	}
	return false, errs
}
