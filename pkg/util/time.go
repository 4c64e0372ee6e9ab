package util

import (
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses a duration string, additionally supporting a "d"
// suffix for days and bare numbers meaning seconds.
// ParseDuration 解析时长字符串，额外支持 d（天）后缀，纯数字视为秒
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "d") {
		daysStr := strings.TrimSuffix(s, "d")
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return 0, err
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	// If it is pure numbers, default to seconds
	// 如果是纯数字，默认为秒
	if _, err := strconv.Atoi(s); err == nil {
		s += "s"
	}
	return time.ParseDuration(s)
}
