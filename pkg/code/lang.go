package code

import "errors"

// lang holds the English and Chinese text of a message
// lang 保存一条消息的英文和中文文本
type lang struct {
	en    string
	zh_cn string
}

// Default language is English // 默认语言为英文
var lng = "en"

const FALLBACK_LNG = "en"

var supportedLanguages = []string{"en", "zh_cn"}

// GetMessage returns the message for the globally selected language
// GetMessage 返回全局所选语言对应的消息
func (l lang) GetMessage() string {
	var msg string
	switch lng {
	case "zh_cn":
		msg = l.zh_cn
	default:
		msg = l.en
	}
	if msg == "" {
		msg = l.en
	}
	return msg
}

// GetSupportedLanguages returns all languages the lang type carries
// GetSupportedLanguages 返回 lang 类型支持的所有语言
func GetSupportedLanguages() []string {
	out := make([]string, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// SetGlobalDefaultLang sets the global default language
// SetGlobalDefaultLang 设置全局默认语言
func SetGlobalDefaultLang(language string) error {
	for _, l := range supportedLanguages {
		if language == l {
			lng = language
			return nil
		}
	}
	lng = FALLBACK_LNG
	return errors.New("unsupported language type, set defaulting to " + FALLBACK_LNG)
}

// GetGlobalDefaultLang gets the global default language
// GetGlobalDefaultLang 获取全局默认语言
func GetGlobalDefaultLang() string {
	return lng
}
