// Package auth computes the per-request HMAC headers expected by the Megam API.
//
// A request is authenticated by two headers: X-Megam-Date carries the local
// time truncated to the minute and X-Megam-HMAC carries
// "<accountID>:<hex(HMAC-SHA1(secretKey, signingString))>", where the signing
// string is the date, the request path and the base64 MD5 of the body joined
// by newlines. The server recomputes the same value, so two requests signed
// in the same minute with the same path and body carry the same HMAC.
package auth

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	// HeaderHMAC carries "<accountID>:<hex digest>".
	HeaderHMAC = "X-Megam-HMAC"
	// HeaderDate carries the minute the signature was computed in.
	HeaderDate = "X-Megam-Date"

	// DateLayout drops seconds on purpose; the server matches signatures
	// computed within the same minute.
	DateLayout = "2006-01-02 15:04"
)

// ErrConfiguration is returned when the secret key or account id is missing
// at signing time.
var ErrConfiguration = errors.New("auth: missing credentials")

// Credentials identify the caller. AccountID is the account email and
// SecretKey is the account API key.
type Credentials struct {
	AccountID string
	SecretKey string
}

// Validate reports ErrConfiguration when either field is empty.
func (c Credentials) Validate() error {
	switch {
	case c.SecretKey == "" && c.AccountID == "":
		return fmt.Errorf("%w: api key and account id are required", ErrConfiguration)
	case c.SecretKey == "":
		return fmt.Errorf("%w: api key is required", ErrConfiguration)
	case c.AccountID == "":
		return fmt.Errorf("%w: account id is required", ErrConfiguration)
	}
	return nil
}

// SignedHeaders is the output of Sign.
type SignedHeaders struct {
	HMAC string
	Date string
}

// Apply sets both authentication headers on h.
func (s SignedHeaders) Apply(h http.Header) {
	h.Set(HeaderHMAC, s.HMAC)
	h.Set(HeaderDate, s.Date)
}

// Sign signs path and body with the current local time.
func Sign(creds Credentials, path string, body []byte) (SignedHeaders, error) {
	return SignAt(creds, path, body, time.Now())
}

// SignAt signs path and body as if the request were issued at t. It is pure:
// identical inputs within the same minute yield identical headers.
func SignAt(creds Credentials, path string, body []byte, t time.Time) (SignedHeaders, error) {
	if err := creds.Validate(); err != nil {
		return SignedHeaders{}, err
	}
	date := FormatDate(t)

	mac := hmac.New(sha1.New, []byte(creds.SecretKey))
	_, _ = mac.Write([]byte(SigningString(date, path, body)))

	return SignedHeaders{
		HMAC: creds.AccountID + ":" + hex.EncodeToString(mac.Sum(nil)),
		Date: date,
	}, nil
}

// FormatDate renders t in local time with minute granularity.
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// SigningString returns the exact message fed to HMAC-SHA1. Trailing
// whitespace is never part of the signed message.
func SigningString(date, path string, body []byte) string {
	digest := md5.Sum(body)
	s := date + "\n" + path + "\n" + base64.StdEncoding.EncodeToString(digest[:])
	return strings.TrimRight(s, " \t\r\n\v\f\x00")
}
