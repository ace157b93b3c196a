// Package storage issues time-limited signed upload URLs and performs
// the raw PUT against them. A signed URL is a capability: it grants
// write access to exactly one object key until its expiry.
package storage

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"ticketeiro/internal/config"
)

var ErrNotSigned = errors.New("storage: missing signing key")

// UploadRequest describes one object to be written. ContentSHA256 is
// the hex digest of the full body, bound into the signature so the
// store can verify integrity on receipt.
type UploadRequest struct {
	Key           string
	ContentType   string
	ContentLength int64
	ContentSHA256 string
	Metadata      map[string]string
}

type Service struct {
	cfg    config.StorageConfig
	client *http.Client
	now    func() time.Time
}

func NewService(cfg config.StorageConfig, client *http.Client) *Service {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Service{cfg: cfg, client: client, now: time.Now}
}

// SignedUploadURL returns a write-capable URL for the object, valid
// until the configured expiry. All request attributes, the expiry and
// the metadata are covered by an HMAC-SHA256 signature carried in the
// query string.
func (s *Service) SignedUploadURL(req UploadRequest) (string, error) {
	if s.cfg.SigningKey == "" {
		return "", ErrNotSigned
	}
	if req.Key == "" {
		return "", errors.New("storage: empty object key")
	}

	expires := s.now().Add(s.cfg.UploadExpiry).Unix()

	q := url.Values{}
	q.Set("X-Expires", strconv.FormatInt(expires, 10))
	q.Set("X-Content-Type", req.ContentType)
	q.Set("X-Content-Length", strconv.FormatInt(req.ContentLength, 10))
	q.Set("X-Content-Sha256", req.ContentSHA256)
	for k, v := range req.Metadata {
		q.Set("X-Meta-"+k, v)
	}
	q.Set("X-Signature", s.sign(req.Key, q))

	return fmt.Sprintf("%s/%s/%s?%s",
		strings.TrimRight(s.cfg.BaseURL, "/"), s.cfg.Bucket, req.Key, q.Encode()), nil
}

// sign computes the HMAC over the object path and the sorted query
// parameters, excluding the signature itself.
func (s *Service) sign(key string, q url.Values) string {
	names := make([]string, 0, len(q))
	for name := range q {
		if name == "X-Signature" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	mac := hmac.New(sha256.New, []byte(s.cfg.SigningKey))
	fmt.Fprintf(mac, "PUT\n%s/%s\n", s.cfg.Bucket, key)
	for _, name := range names {
		fmt.Fprintf(mac, "%s=%s\n", name, q.Get(name))
	}
	return hex.EncodeToString(mac.Sum(nil))
}

// Upload PUTs the body to a previously signed URL and verifies the
// response status. No retry: past the URL's expiry the store refuses
// the write and the caller fails the whole submission.
func (s *Service) Upload(ctx context.Context, signedURL, contentType string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, signedURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(body))

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload rejected with status %d", resp.StatusCode)
	}
	return nil
}

// StripSignature drops the query string from a signed URL, leaving the
// stable, unsigned object locator that gets persisted.
func StripSignature(signedURL string) string {
	if idx := strings.Index(signedURL, "?"); idx >= 0 {
		return signedURL[:idx]
	}
	return signedURL
}
