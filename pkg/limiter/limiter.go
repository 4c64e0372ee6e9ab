package limiter

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// LimiterIface 限流器接口
type LimiterIface interface {
	// Key 从请求中提取限流键
	Key(c *gin.Context) string
	// GetBucket 获取键对应的令牌桶
	GetBucket(key string) (*ratelimit.Bucket, bool)
	// AddBuckets 注册限流规则
	AddBuckets(rules ...BucketRule) LimiterIface
}

// BucketRule 令牌桶规则
type BucketRule struct {
	// Key 匹配的路径前缀
	Key string
	// FillInterval 放入令牌的间隔
	FillInterval time.Duration
	// Capacity 桶容量
	Capacity int64
	// Quantum 每次放入的令牌数
	Quantum int64
}

type Limiter struct {
	limiterBuckets map[string]*ratelimit.Bucket
}

// MethodLimiter 以请求路径前缀为键的限流器
type MethodLimiter struct {
	*Limiter
}

func NewMethodLimiter() LimiterIface {
	return MethodLimiter{
		Limiter: &Limiter{limiterBuckets: make(map[string]*ratelimit.Bucket)},
	}
}

func (l MethodLimiter) Key(c *gin.Context) string {
	uri := c.Request.URL.Path
	for key := range l.limiterBuckets {
		if strings.HasPrefix(uri, key) {
			return key
		}
	}
	return uri
}

func (l MethodLimiter) GetBucket(key string) (*ratelimit.Bucket, bool) {
	bucket, ok := l.limiterBuckets[key]
	return bucket, ok
}

func (l MethodLimiter) AddBuckets(rules ...BucketRule) LimiterIface {
	for _, rule := range rules {
		if _, ok := l.limiterBuckets[rule.Key]; !ok {
			l.limiterBuckets[rule.Key] = ratelimit.NewBucketWithQuantum(rule.FillInterval, rule.Capacity, rule.Quantum)
		}
	}
	return l
}
