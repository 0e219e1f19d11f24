package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHasher_Deterministic(t *testing.T) {
	hasher := NewContentHasher()
	payload := []byte("some document content")

	first := hasher.Identity(payload)
	second := hasher.Identity(payload)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex-encoded sha256
}

func TestContentHasher_KnownVector(t *testing.T) {
	hasher := NewContentHasher()

	// 11 bytes, shorter than both windows: the whole payload is used
	// as both the first and last part, so the digest covers the
	// payload twice.
	id := hasher.Identity([]byte("hello world"))
	assert.Equal(t, "524857d0148721c24e3e7795e19ade0cdcf49f2a4dfbef2f1575d1208fa8c54f", id)
}

func TestContentHasher_ShortPayloadUsesWholePayloadTwice(t *testing.T) {
	hasher := NewContentHasher()
	payload := []byte("short")

	sum := sha256.Sum256(append(append([]byte{}, payload...), payload...))
	assert.Equal(t, hex.EncodeToString(sum[:]), hasher.Identity(payload))
}

func TestContentHasher_LargePayloadUsesWindows(t *testing.T) {
	hasher := NewContentHasher()

	payload := make([]byte, 2048)
	for i := range payload {
		payload[i] = byte(i % 256)
	}

	id := hasher.Identity(payload)
	assert.Equal(t, "785b0751fc2c53dc14a4ce3d800e69ef9ce1009eb327ccf458afe09c242c26c9", id)

	// Changing a middle byte outside both windows must not change the
	// identity: the hash is a windowed fingerprint, not a full checksum.
	payload[1024] ^= 0xff
	assert.Equal(t, id, hasher.Identity(payload))

	// Changing a byte inside the first window must change it.
	payload[0] ^= 0xff
	assert.NotEqual(t, id, hasher.Identity(payload))
}

func TestContentHasher_ExactWindowBoundary(t *testing.T) {
	hasher := NewContentHasher()

	// len == LastWindow: the trailing slice is the whole payload.
	payload := bytes.Repeat([]byte("a"), DefaultLastWindow)
	assert.Equal(t, "2edc986847e209b4016e141a6dc8716d3207350f416969382d431539bf292e4a", hasher.Identity(payload))
}

func TestContentHasher_CustomWindows(t *testing.T) {
	hasher := ContentHasher{FirstWindow: 2, LastWindow: 2}

	sum := sha256.Sum256([]byte("abde"))
	require.Equal(t, hex.EncodeToString(sum[:]), hasher.Identity([]byte("abcde")))
}

func TestContentHasher_EmptyPayload(t *testing.T) {
	hasher := NewContentHasher()

	sum := sha256.Sum256(nil)
	assert.Equal(t, hex.EncodeToString(sum[:]), hasher.Identity(nil))
}
