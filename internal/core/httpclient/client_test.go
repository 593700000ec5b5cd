package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracking-viewer/internal/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCodes struct {
	codes []int
}

func (r *recordedCodes) ObserveUpstream(code int) {
	r.codes = append(r.codes, code)
}

// TestLoggingRoundTripper verifies that requests are executed, tagged and recorded.
func TestLoggingRoundTripper(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	require.NoError(t, logger.Init("development", "debug"))

	rec := &recordedCodes{}
	client := NewClient(1*time.Second, rec)
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, UserAgent, gotUA)
	assert.Equal(t, []int{http.StatusOK}, rec.codes)
}

// TestLoggingRoundTripper_KeepsUserAgent verifies a caller-provided agent is left alone.
func TestLoggingRoundTripper_KeepsUserAgent(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "custom/2.0")

	resp, err := NewClient(time.Second, nil).Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "custom/2.0", gotUA)
}

// TestLoggingRoundTripper_Error verifies that failed requests are logged and recorded as 0.
func TestLoggingRoundTripper_Error(t *testing.T) {
	require.NoError(t, logger.Init("development", "debug"))

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	rec := &recordedCodes{}
	client := NewClient(1*time.Second, rec)
	_, err := client.Get(url)
	require.Error(t, err)
	assert.Equal(t, []int{0}, rec.codes)
}
