package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeriesID(t *testing.T) {
	t.Run("known vectors", func(t *testing.T) {
		// xxHash64 reference values with the default seed.
		assert.Equal(t, uint64(0xef46db3751d8e999), SeriesID(""))
		assert.Equal(t, uint64(0x4fdcca5ddb678139), SeriesID("test"))
	})

	t.Run("deterministic", func(t *testing.T) {
		labels := []string{"v1", "v2", "velocity [µM/s]", "mutant A", "wild type"}
		for _, label := range labels {
			assert.Equal(t, SeriesID(label), SeriesID(label), "label %q", label)
		}
	})

	t.Run("distinct labels produce distinct ids", func(t *testing.T) {
		labels := []string{"v1", "v2", "v3", "wild type", "mutant A", "mutant B"}
		seen := make(map[uint64]string, len(labels))
		for _, label := range labels {
			id := SeriesID(label)
			prev, ok := seen[id]
			assert.False(t, ok, "labels %q and %q collided", prev, label)
			seen[id] = label
		}
	})
}

func randLabel(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkSeriesID(b *testing.B) {
	label := randLabel(20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SeriesID(label)
	}
}
