package file

import (
	"github.com/custodia-labs/gapi/internal/apis/google"
)

// Recognised configuration keys.
const (
	KeyCredentialsFile = "credentials_file"
	KeyAccessToken     = "access_token"
	KeyVerbose         = "verbose"
	KeyUserAgent       = "user_agent"

	endpointPrefix  = "endpoint."
	rateLimitPrefix = "rate_limit."
)

// EndpointKey returns the key overriding the base URL of api, e.g.
// "endpoint.drive".
func EndpointKey(api google.ServiceType) string {
	return endpointPrefix + string(api)
}

// RateLimitKeys returns the enabled, requests-per-second and burst keys for
// api.
func RateLimitKeys(api google.ServiceType) (enabled, rps, burst string) {
	base := rateLimitPrefix + string(api)
	return base + ".enabled", base + ".rps", base + ".burst"
}

// Settings is the typed view of the configuration used to build API clients.
type Settings struct {
	CredentialsFile string
	AccessToken     string
	Verbose         bool
	UserAgent       string
}

// Settings returns the recognised top-level settings.
func (s *ConfigStore) Settings() Settings {
	return Settings{
		CredentialsFile: s.GetString(KeyCredentialsFile),
		AccessToken:     s.GetString(KeyAccessToken),
		Verbose:         s.GetBool(KeyVerbose),
		UserAgent:       s.GetString(KeyUserAgent),
	}
}

// Endpoint returns the configured base URL override for api, or "".
func (s *ConfigStore) Endpoint(api google.ServiceType) string {
	return s.GetString(EndpointKey(api))
}

// RateLimit returns the client-side rate limit configured for api. An
// explicit rps wins; otherwise enabled = true selects the API's default. The
// second result is false when requests are not to be paced.
func (s *ConfigStore) RateLimit(api google.ServiceType) (google.RateLimitConfig, bool) {
	enabledKey, rpsKey, burstKey := RateLimitKeys(api)

	rps := s.GetFloat(rpsKey)
	if rps <= 0 {
		if !s.GetBool(enabledKey) {
			return google.RateLimitConfig{}, false
		}
		cfg, ok := google.DefaultRateLimits[api]
		return cfg, ok
	}

	burst := s.GetInt(burstKey)
	if burst <= 0 {
		burst = 1
	}
	return google.RateLimitConfig{RequestsPerSecond: rps, BurstSize: burst}, true
}
