package timex

import (
	"fmt"
	"time"
)

const layout = "2006-01-02 15:04:05"

// Time is a time.Time that serializes as "2006-01-02 15:04:05"
// Time 是以 "2006-01-02 15:04:05" 格式序列化的 time.Time
type Time time.Time

func Now() Time {
	return Time(time.Now())
}

func (t Time) String() string {
	return time.Time(t).Format(layout)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*t = Time(time.Time{})
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := time.ParseInLocation(layout, s, time.Local)
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}
