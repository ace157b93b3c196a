package storage_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ticketeiro/internal/config"
	"ticketeiro/internal/storage"
)

func testConfig() config.StorageConfig {
	return config.StorageConfig{
		Bucket:       "ticketeiro",
		BaseURL:      "https://files.test",
		SigningKey:   "test-signing-key",
		UploadExpiry: time.Hour,
	}
}

func TestSignedUploadURLShape(t *testing.T) {
	svc := storage.NewService(testConfig(), nil)

	signed, err := svc.SignedUploadURL(storage.UploadRequest{
		Key:           "a1b2c3",
		ContentType:   "image/png",
		ContentLength: 1024,
		ContentSHA256: "deadbeef",
		Metadata:      map[string]string{"userId": "user-1"},
	})
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(signed, "https://files.test/ticketeiro/a1b2c3?"))

	parsed, err := url.Parse(signed)
	assert.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "image/png", q.Get("X-Content-Type"))
	assert.Equal(t, "1024", q.Get("X-Content-Length"))
	assert.Equal(t, "deadbeef", q.Get("X-Content-Sha256"))
	assert.Equal(t, "user-1", q.Get("X-Meta-userId"))
	assert.NotEmpty(t, q.Get("X-Signature"))

	// Expiry sits roughly one hour out
	expires, err := strconv.ParseInt(q.Get("X-Expires"), 10, 64)
	assert.NoError(t, err)
	delta := time.Until(time.Unix(expires, 0))
	assert.Greater(t, delta, 59*time.Minute)
	assert.LessOrEqual(t, delta, time.Hour)
}

func TestSignedUploadURLSignatureBindsAttributes(t *testing.T) {
	svc := storage.NewService(testConfig(), nil)

	first, err := svc.SignedUploadURL(storage.UploadRequest{
		Key: "obj-key", ContentType: "image/png", ContentSHA256: "aaa",
	})
	assert.NoError(t, err)
	second, err := svc.SignedUploadURL(storage.UploadRequest{
		Key: "obj-key", ContentType: "image/png", ContentSHA256: "bbb",
	})
	assert.NoError(t, err)

	// Different content hash, different signature
	sigOf := func(raw string) string {
		parsed, perr := url.Parse(raw)
		assert.NoError(t, perr)
		return parsed.Query().Get("X-Signature")
	}
	assert.NotEqual(t, sigOf(first), sigOf(second))
}

func TestSignedUploadURLMissingKey(t *testing.T) {
	cfg := testConfig()
	cfg.SigningKey = ""
	svc := storage.NewService(cfg, nil)

	_, err := svc.SignedUploadURL(storage.UploadRequest{Key: "obj-key"})
	assert.ErrorIs(t, err, storage.ErrNotSigned)

	svc = storage.NewService(testConfig(), nil)
	_, err = svc.SignedUploadURL(storage.UploadRequest{})
	assert.Error(t, err)
}

func TestUpload(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := storage.NewService(testConfig(), server.Client())
	err := svc.Upload(context.Background(), server.URL+"/ticketeiro/obj-key?X-Signature=abc", "image/png", []byte("png-bytes"))
	assert.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "image/png", gotContentType)
	assert.Equal(t, []byte("png-bytes"), gotBody)
}

func TestUploadRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Expired capability
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	svc := storage.NewService(testConfig(), server.Client())
	err := svc.Upload(context.Background(), server.URL+"/ticketeiro/obj-key", "image/png", []byte("png-bytes"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestStripSignature(t *testing.T) {
	assert.Equal(t,
		"https://files.test/ticketeiro/obj-key",
		storage.StripSignature("https://files.test/ticketeiro/obj-key?X-Expires=1&X-Signature=abc"))

	// Already-bare locators pass through untouched
	assert.Equal(t,
		"https://files.test/ticketeiro/obj-key",
		storage.StripSignature("https://files.test/ticketeiro/obj-key"))
}
