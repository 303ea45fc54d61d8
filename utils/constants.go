package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the sliding time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// DateLayout is the calendar date format accepted for travel dates.
const DateLayout = "2006-01-02"
