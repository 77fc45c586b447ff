// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

const orderIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomFromCharset(charset string, length int) (string, error) {
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}
	return string(b), nil
}

// GenerateOrderID returns a 9-character uppercase alphanumeric token.
func GenerateOrderID() (string, error) {
	return randomFromCharset(orderIDCharset, 9)
}

var (
	trackingMu   sync.Mutex
	lastTracking int64
)

// GenerateTrackingNumber derives a process-unique token from the creation
// instant. Two checkouts in the same millisecond still get distinct numbers.
func GenerateTrackingNumber() string {
	trackingMu.Lock()
	defer trackingMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastTracking {
		now = lastTracking + 1
	}
	lastTracking = now
	return fmt.Sprintf("ITZ%d", now)
}

// GenerateListingID returns an id for a seller-created product.
func GenerateListingID() (string, error) {
	suffix, err := randomFromCharset("abcdefghijklmnopqrstuvwxyz0123456789", 12)
	if err != nil {
		return "", err
	}
	return "lp-" + suffix, nil
}
