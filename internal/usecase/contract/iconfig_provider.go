package usecasecontract

import "time"

type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiry() time.Duration
	GetCountCacheTTL() time.Duration
	GetRateLimitPerSecond() float64
	GetSecureCookies() bool
}
