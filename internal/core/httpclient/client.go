package httpclient

import (
	"net/http"
	"time"

	"tracking-viewer/internal/core/logger"

	"go.uber.org/zap"
)

// UserAgent identifies the viewer to upstream services.
const UserAgent = "tracking-viewer/1.0"

// StatusRecorder receives the status code of every outbound request (0 on transport failure).
type StatusRecorder interface {
	ObserveUpstream(code int)
}

// LoggingRoundTripper logs outbound requests and reports their status codes.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	// Recorder is optional.
	Recorder StatusRecorder
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Named("httpclient")

	if req.Header.Get("User-Agent") == "" {
		// RoundTrippers must not mutate the caller's request.
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}

	log.Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		lrt.record(0)
		log.Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	lrt.record(resp.StatusCode)
	log.Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

func (lrt *LoggingRoundTripper) record(code int) {
	if lrt.Recorder != nil {
		lrt.Recorder.ObserveUpstream(code)
	}
}

// NewClient returns an http.Client with logging middleware.
// recorder may be nil.
func NewClient(timeout time.Duration, recorder StatusRecorder) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied:  http.DefaultTransport,
			Recorder: recorder,
		},
		Timeout: timeout,
	}
}
