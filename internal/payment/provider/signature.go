package provider

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront/internal/payment/domain"
)

// HMACSHA256Hex returns the lowercase hex HMAC-SHA256 of payload.
func HMACSHA256Hex(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// EqualHex compares two hex digests in constant time.
func EqualHex(expected, got string) bool {
	a, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(expected)))
	if err != nil {
		return false
	}
	b, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(got)))
	if err != nil {
		return false
	}
	return hmac.Equal(a, b)
}

// ParseSignatureHeader splits "t=123,v1=abc,v1=def" into key -> values.
func ParseSignatureHeader(header string) map[string][]string {
	out := make(map[string][]string)
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		out[k] = append(out[k], strings.TrimSpace(v))
	}
	return out
}

// CheckTimestamp rejects unix-second timestamps further than tolerance from now.
// A zero tolerance disables the check.
func CheckTimestamp(ts string, now time.Time, tolerance time.Duration) error {
	sec, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad timestamp", domain.ErrSignature)
	}
	if tolerance <= 0 {
		return nil
	}
	d := now.Sub(time.Unix(sec, 0))
	if d < 0 {
		d = -d
	}
	if d > tolerance {
		return fmt.Errorf("%w: timestamp outside tolerance", domain.ErrSignature)
	}
	return nil
}
