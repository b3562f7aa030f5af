// Package cryptox hashes and verifies account passwords.
//
// New hashes are argon2id in the PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// bcrypt hashes ($2a$, $2b$, $2y$) are still verified, and any other stored
// value is treated as a legacy plaintext password. Both older formats report
// NeedsRehash so callers can upgrade them after a successful login.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/studyguide/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
	saltLen             = 16

	// upper bounds accepted from stored hashes
	maxArgonTime   uint32 = 16
	maxArgonMemory uint32 = 1024 * 1024

	argonPrefix = "$argon2id$"
)

// Format identifies how a stored password value is encoded.
type Format int

const (
	FormatPlain Format = iota
	FormatBcrypt
	FormatArgon2id
)

func (f Format) String() string {
	switch f {
	case FormatArgon2id:
		return "argon2id"
	case FormatBcrypt:
		return "bcrypt"
	default:
		return "plain"
	}
}

var ErrMalformedHash = errors.New("malformed password hash")

// DetectFormat classifies a stored password value.
func DetectFormat(stored string) Format {
	switch {
	case strings.HasPrefix(stored, argonPrefix):
		return FormatArgon2id
	case strings.HasPrefix(stored, "$2a$"),
		strings.HasPrefix(stored, "$2b$"),
		strings.HasPrefix(stored, "$2y$"):
		return FormatBcrypt
	default:
		return FormatPlain
	}
}

func deriveKey(password, salt []byte, t, m uint32, p uint8, keyLen uint32) []byte {
	return argon2.IDKey(password, salt, t, m, p, keyLen)
}

// HashPassword returns an argon2id PHC string for password using a fresh
// random salt.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", common.ErrValidation
	}

	salt := common.GenerateRandByteArray(saltLen)
	pw := []byte(password)
	key := deriveKey(pw, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	common.WipeByteArray(pw)

	enc := base64.RawStdEncoding
	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argonPrefix, argon2.Version, argonMemory, argonTime, argonThreads,
		enc.EncodeToString(salt), enc.EncodeToString(key)), nil
}

// VerifyPassword reports whether password matches the stored value.
// An error is returned only when an argon2id value cannot be parsed.
func VerifyPassword(stored, password string) (bool, error) {
	switch DetectFormat(stored) {
	case FormatArgon2id:
		return verifyArgon(stored, password)
	case FormatBcrypt:
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
		return err == nil, nil
	default:
		return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1, nil
	}
}

// NeedsRehash reports whether stored should be replaced with a fresh
// argon2id hash after a successful verification.
func NeedsRehash(stored string) bool {
	if DetectFormat(stored) != FormatArgon2id {
		return true
	}
	p, err := parseArgon(stored)
	if err != nil {
		return true
	}
	return p.time != argonTime || p.memory != argonMemory || p.threads != argonThreads
}

type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
	salt    []byte
	key     []byte
}

func parseArgon(stored string) (*argonParams, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(stored, "$")
	if len(parts) != 6 {
		return nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, ErrMalformedHash
	}

	p := &argonParams{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return nil, ErrMalformedHash
	}
	// argon2.IDKey panics on zero rounds or threads
	if p.time < 1 || p.time > maxArgonTime || p.threads < 1 || p.memory > maxArgonMemory {
		return nil, ErrMalformedHash
	}

	var err error
	enc := base64.RawStdEncoding
	if p.salt, err = enc.DecodeString(parts[4]); err != nil {
		return nil, ErrMalformedHash
	}
	if p.key, err = enc.DecodeString(parts[5]); err != nil || len(p.key) == 0 {
		return nil, ErrMalformedHash
	}
	return p, nil
}

func verifyArgon(stored, password string) (bool, error) {
	p, err := parseArgon(stored)
	if err != nil {
		return false, err
	}
	pw := []byte(password)
	key := deriveKey(pw, p.salt, p.time, p.memory, p.threads, uint32(len(p.key)))
	common.WipeByteArray(pw)
	return subtle.ConstantTimeCompare(key, p.key) == 1, nil
}
