package tokencodec

import (
	"accounthub/internal/core/domain/account"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

var saltChars = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// HMAC issues signed tokens carrying the subject public id and an
// absolute expiry timestamp. Tokens are self-contained, validation does
// not require storage access.
type HMAC struct {
	secretKey []byte
	now       func() time.Time
}

func NewHMAC(secretKey string, now func() time.Time) *HMAC {
	return &HMAC{secretKey: []byte(secretKey), now: now}
}

func (h *HMAC) Issue(subject account.PublicID, ttl time.Duration) account.SignedToken {
	expiresAt := h.now().Add(ttl).Unix()
	salt := h.getRandomSalt()
	mac := h.getMac(subject, expiresAt, salt)
	b64 := base64.RawURLEncoding.EncodeToString(
		[]byte(fmt.Sprintf("%s-%d-%s-%s", subject, expiresAt, salt, mac)),
	)
	return account.SignedToken(b64)
}

func (h *HMAC) Decode(token account.SignedToken) (subject account.PublicID, err error) {
	subject, expiresAt, ok := h.parse(token)
	if !ok {
		return subject, account.ErrTokenInvalid
	}
	if h.now().Unix() > expiresAt {
		return subject, account.ErrTokenExpired
	}
	return subject, nil
}

func (h *HMAC) HasExpired(token account.SignedToken) bool {
	_, expiresAt, ok := h.parse(token)
	if !ok {
		return true
	}
	return h.now().Unix() > expiresAt
}

func (h *HMAC) parse(token account.SignedToken) (subject account.PublicID, expiresAt int64, ok bool) {
	decodedToken, err := base64.RawURLEncoding.DecodeString(string(token))
	if err != nil {
		return subject, 0, false
	}
	// The subject is alphanumeric, the first dash always terminates it.
	parts := strings.SplitN(string(decodedToken), "-", 4)
	if len(parts) != 4 {
		return subject, 0, false
	}
	expiresAt, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return subject, 0, false
	}
	salt := parts[2]
	mac := parts[3]
	expectedMac := h.getMac(account.PublicID(parts[0]), expiresAt, salt)
	if subtle.ConstantTimeCompare([]byte(mac), []byte(expectedMac)) != 1 {
		return subject, 0, false
	}
	return account.PublicID(parts[0]), expiresAt, true
}

func (h *HMAC) getMac(subject account.PublicID, expiresAt int64, salt string) string {
	hasher := hmac.New(sha256.New, h.secretKey)
	io.WriteString(hasher, fmt.Sprintf("%s-%d-%s", subject, expiresAt, salt))
	return fmt.Sprintf("%x", hasher.Sum(nil))
}

func (h *HMAC) getRandomSalt() string {
	b := make([]rune, 5)
	for i := range b {
		b[i] = saltChars[rand.Intn(len(saltChars))]
	}
	return string(b)
}
