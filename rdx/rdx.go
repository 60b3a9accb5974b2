package rdx

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"next24/globals"

	"github.com/redis/go-redis/v9"
)

var Conn = redis.NewClient(&redis.Options{
	Addr: addrFromEnv(),
})

func addrFromEnv() string {
	if a := os.Getenv("REDIS_ADDR"); a != "" {
		return a
	}
	return "localhost:6379"
}

// CacheKey builds a stable key from a prefix and arbitrary parameters by
// hashing their JSON form. Marshal order of struct fields is fixed, so
// identical searches map to identical keys.
func CacheKey(prefix string, params interface{}) string {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:unhashable", prefix)
	}
	return fmt.Sprintf("%s:%x", prefix, md5.Sum(raw))
}

// GetJSON loads key into dest. Returns false on miss or any redis error;
// the caller falls through to the real lookup.
func GetJSON(key string, dest interface{}) bool {
	raw, err := Conn.Get(globals.Ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

// SetJSON stores value under key with a TTL. Errors are swallowed: a dead
// cache must never fail the request.
func SetJSON(key string, value interface{}, ttl time.Duration) {
	_ = StoreJSON(key, value, ttl)
}

// StoreJSON is SetJSON for authoritative writes, where the caller must know
// the record did not land.
func StoreJSON(key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Conn.Set(globals.Ctx, key, raw, ttl).Err()
}
