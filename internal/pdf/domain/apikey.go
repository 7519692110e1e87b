package domain

import "time"

// DateFormat is the calendar-day format used for key creation dates in the
// key file and in API responses.
const DateFormat = "2006-01-02"

// maskPrefixLen and maskSuffixLen control how much of a key secret is shown
// in listings. The visible prefix doubles as the addressing handle for
// update and delete operations.
const (
	maskPrefixLen = 8
	maskSuffixLen = 4
)

// APIKey is a client credential for the conversion endpoint.
type APIKey struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Created string `json:"created"` // calendar day, see DateFormat
	Active  bool   `json:"active"`
}

// Masked returns the key secret reduced to its first 8 and last 4
// characters. The masked form is safe to log and list, and its prefix is
// what admin endpoints accept as a key identifier.
func (k APIKey) Masked() string {
	return MaskSecret(k.Key)
}

// MaskSecret masks a raw key secret for display.
func MaskSecret(secret string) string {
	if len(secret) <= maskPrefixLen+maskSuffixLen {
		return secret
	}
	return secret[:maskPrefixLen] + "..." + secret[len(secret)-maskSuffixLen:]
}

// SuperUser is the single administrative credential. It cannot convert
// documents on its own but bypasses authentication and rate limiting when
// presented alongside a conversion request.
type SuperUser struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Created string `json:"created"`
}

// RateLimitConfig holds the per-key sliding window ceilings. Both values
// must be positive.
type RateLimitConfig struct {
	RequestsPerMinute int `json:"requests_per_minute"`
	RequestsPerHour   int `json:"requests_per_hour"`
}

// KeyFile is the full persisted state: the super-user credential, every
// client key, and the shared rate limit configuration.
type KeyFile struct {
	SuperUser SuperUser       `json:"super_user"`
	APIKeys   []APIKey        `json:"api_keys"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

// Clone returns a deep copy of the key file. Mutations are always applied
// to a clone so readers holding the previous snapshot are never affected.
func (f *KeyFile) Clone() *KeyFile {
	cp := *f
	cp.APIKeys = make([]APIKey, len(f.APIKeys))
	copy(cp.APIKeys, f.APIKeys)
	return &cp
}

// Today returns the current UTC day formatted per DateFormat.
func Today() string {
	return time.Now().UTC().Format(DateFormat)
}
