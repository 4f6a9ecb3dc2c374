package helpers

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrMalformedHash           = errors.New("password hash is malformed")
	ErrIncompatibleHashVersion = errors.New("password hash uses an incompatible argon2 version")
	ErrInvalidArgon2Params     = errors.New("invalid argon2 parameters")
)

// Argon2Params are the cost settings written into every hash.
type Argon2Params struct {
	Iterations  uint32
	MemoryKiB   uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// Argon2Hasher hashes passwords with argon2id and encodes them in PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
type Argon2Hasher struct {
	params Argon2Params
}

func NewArgon2Hasher(p Argon2Params) (*Argon2Hasher, error) {
	switch {
	case p.Iterations == 0:
		return nil, fmt.Errorf("%w: iterations must be at least 1", ErrInvalidArgon2Params)
	case p.Parallelism == 0:
		return nil, fmt.Errorf("%w: parallelism must be at least 1", ErrInvalidArgon2Params)
	case p.MemoryKiB < 8*uint32(p.Parallelism):
		return nil, fmt.Errorf("%w: memory must be at least 8 KiB per lane", ErrInvalidArgon2Params)
	case p.SaltLength < 8:
		return nil, fmt.Errorf("%w: salt must be at least 8 bytes", ErrInvalidArgon2Params)
	case p.KeyLength < 16:
		return nil, fmt.Errorf("%w: key must be at least 16 bytes", ErrInvalidArgon2Params)
	}
	return &Argon2Hasher{params: p}, nil
}

func (h *Argon2Hasher) Params() Argon2Params { return h.params }

// Hash derives a fresh salted hash for plain.
func (h *Argon2Hasher) Hash(plain string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}
	key := argon2.IDKey([]byte(plain), salt, h.params.Iterations, h.params.MemoryKiB, h.params.Parallelism, h.params.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.MemoryKiB, h.params.Iterations, h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether plain matches encoded, using the parameters stored in encoded.
// A mismatch is (false, nil); an unreadable hash is an error.
func (h *Argon2Hasher) Verify(plain, encoded string) (bool, error) {
	p, salt, key, err := decodeArgon2Hash(encoded)
	if err != nil {
		return false, err
	}
	other := argon2.IDKey([]byte(plain), salt, p.Iterations, p.MemoryKiB, p.Parallelism, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

func decodeArgon2Hash(encoded string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return p, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, ErrMalformedHash
	}
	if version != argon2.Version {
		return p, nil, nil, ErrIncompatibleHashVersion
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemoryKiB, &p.Iterations, &p.Parallelism); err != nil {
		return p, nil, nil, ErrMalformedHash
	}
	if p.Iterations == 0 || p.Parallelism == 0 {
		return p, nil, nil, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return p, nil, nil, ErrMalformedHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, ErrMalformedHash
	}
	p.SaltLength = uint32(len(salt))
	p.KeyLength = uint32(len(key))

	return p, salt, key, nil
}
