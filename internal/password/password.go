// Package password hashes and verifies passwords with argon2id.
// Digests use the PHC string format: $argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrInvalidDigest is returned when a stored digest cannot be parsed
var ErrInvalidDigest = errors.New("invalid password digest")

// Params are the argon2id cost parameters used for new digests
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

// DefaultParams returns the production cost parameters
func DefaultParams() Params {
	return Params{
		Time:    3,
		Memory:  64 * 1024,
		Threads: 2,
		KeyLen:  32,
		SaltLen: 16,
	}
}

// Hasher produces and checks argon2id digests
type Hasher struct {
	params Params
}

// NewHasher creates a hasher; zero-valued params fall back to DefaultParams
func NewHasher(params Params) *Hasher {
	def := DefaultParams()
	if params.Time == 0 {
		params.Time = def.Time
	}
	if params.Memory == 0 {
		params.Memory = def.Memory
	}
	if params.Threads == 0 {
		params.Threads = def.Threads
	}
	if params.KeyLen == 0 {
		params.KeyLen = def.KeyLen
	}
	if params.SaltLen == 0 {
		params.SaltLen = def.SaltLen
	}
	return &Hasher{params: params}
}

// Hash returns a salted digest of the password
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify checks a password against a digest produced by Hash.
// The parameters embedded in the digest are used, not the hasher's own.
func (h *Hasher) Verify(password, digest string) (bool, error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrInvalidDigest
	}

	version, err := parsePrefixed(parts[2], "v=")
	if err != nil || version != argon2.Version {
		return false, ErrInvalidDigest
	}

	memory, timeCost, threads, err := parseParams(parts[3])
	if err != nil {
		return false, ErrInvalidDigest
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrInvalidDigest
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(expected) == 0 {
		return false, ErrInvalidDigest
	}

	actual := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(actual, expected) == 1, nil
}

func parseParams(value string) (memory, timeCost uint32, threads uint8, err error) {
	fields := strings.Split(value, ",")
	if len(fields) != 3 {
		return 0, 0, 0, ErrInvalidDigest
	}

	m, err := parsePrefixed(fields[0], "m=")
	if err != nil {
		return 0, 0, 0, err
	}
	t, err := parsePrefixed(fields[1], "t=")
	if err != nil {
		return 0, 0, 0, err
	}
	p, err := parsePrefixed(fields[2], "p=")
	if err != nil || p > 255 || p == 0 {
		return 0, 0, 0, ErrInvalidDigest
	}
	return uint32(m), uint32(t), uint8(p), nil
}

func parsePrefixed(value, prefix string) (int, error) {
	if !strings.HasPrefix(value, prefix) {
		return 0, ErrInvalidDigest
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(value, prefix), 10, 32)
	if err != nil {
		return 0, ErrInvalidDigest
	}
	return int(n), nil
}
