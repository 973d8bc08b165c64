package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ratiolab/ratiometer/internal/model"
)

// Cache defines the interface for report caching.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a passage and the active weights.
// Analysis is a pure function of both, so together they identify the
// result completely.
func Key(text string, w model.WeightsConfig) string {
	h := sha256.New()
	h.Write([]byte(text))
	fmt.Fprintf(h, "|%g|%g|%g|%g", w.EmotionalPenalty, w.LogicalBonus, w.ScientificBonus, w.StructureBonus)
	return "ratiometer:v1:" + hex.EncodeToString(h.Sum(nil))
}
