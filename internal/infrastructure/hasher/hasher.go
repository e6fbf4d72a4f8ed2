package hasher

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// legacyDigestLen is the length of the unsalted hex SHA-256 digests
// written by the previous version of the directory.
const legacyDigestLen = sha256.Size * 2

// bcrypt reads at most maxSecretLen bytes. Longer secrets are hashed as
// base64(sha256(secret)) and the stored digest is marked with prehashPrefix.
const (
	maxSecretLen  = 72
	prehashPrefix = "$sha256"
)

var ErrEmptySecret = errors.New("empty secret")

type Hasher struct {
	cost int
}

func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	if len(secret) <= maxSecretLen {
		b, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
		if err != nil {
			return "", fmt.Errorf("bcrypt: %w", err)
		}
		return string(b), nil
	}

	b, err := bcrypt.GenerateFromPassword(prehash(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}

	return prehashPrefix + string(b), nil
}

func (h *Hasher) Verify(digest, secret string) bool {
	if digest == "" || secret == "" {
		return false
	}
	if isLegacyDigest(digest) {
		sum := sha256.Sum256([]byte(secret))
		want := hex.EncodeToString(sum[:])
		return subtle.ConstantTimeCompare([]byte(want), []byte(digest)) == 1
	}

	if rest, ok := strings.CutPrefix(digest, prehashPrefix); ok {
		return bcrypt.CompareHashAndPassword([]byte(rest), prehash(secret)) == nil
	}
	if len(secret) > maxSecretLen {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}

// prehash always applies to the submitted secret when the digest is marked,
// so its own output never verifies in place of the long secret.
func prehash(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func isLegacyDigest(s string) bool {
	if len(s) != legacyDigestLen {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
