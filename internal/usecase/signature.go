package usecase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingSignatureHeader   = errors.New("missing x-signature header")
	ErrMalformedSignatureHeader = errors.New("malformed x-signature header")
	ErrSignatureMismatch        = errors.New("webhook signature mismatch")
)

// parseSignatureHeader splits the Mercado Pago x-signature header, format
// "ts=<epoch>,v1=<hex>".
func parseSignatureHeader(raw string) (ts, hash string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", ErrMissingSignatureHeader
	}

	for _, part := range strings.Split(raw, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			hash = strings.TrimSpace(value)
		}
	}

	if ts == "" || hash == "" {
		return "", "", ErrMalformedSignatureHeader
	}
	return ts, hash, nil
}

// VerifyWebhookSignature checks the HMAC-SHA256 of the canonical manifest
// "id:<paymentId>;request-id:<requestId>;ts:<ts>;" against the v1 digest of
// the x-signature header. The comparison is constant time.
func VerifyWebhookSignature(secret, paymentID, requestID, signatureHeader string) error {
	ts, hash, err := parseSignatureHeader(signatureHeader)
	if err != nil {
		return err
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", paymentID, requestID, ts)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(hash))) {
		return ErrSignatureMismatch
	}
	return nil
}
