package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		sum  uint64
	}{
		{"empty payload", []byte{}, 0xef46db3751d8e999},
		{"short payload", []byte("test"), 0x4fdcca5ddb678139},
		{"long payload", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
		{"another payload", []byte("another test string"), 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum(tt.data))
		})
	}
}

func TestChecksum_NilEqualsEmpty(t *testing.T) {
	assert.Equal(t, Checksum(nil), Checksum([]byte{}))
}

func randPayload(n int) []byte {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return b
}

func BenchmarkChecksum(b *testing.B) {
	payload := randPayload(4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Checksum(payload)
	}
}
