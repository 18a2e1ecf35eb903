package metrics_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"jellyfront/pkg/metrics"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestInstrumentTransport_CountsRequests(t *testing.T) {
	before := testutil.ToFloat64(metrics.UpstreamRequestsTotal.WithLabelValues("200", "get"))

	rt := metrics.InstrumentTransport(rtFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("{}"))}, nil
	}))
	client := &http.Client{Transport: rt}

	resp, err := client.Get("http://media.local/System/Info")
	require.NoError(t, err)
	_ = resp.Body.Close()

	after := testutil.ToFloat64(metrics.UpstreamRequestsTotal.WithLabelValues("200", "get"))
	require.InDelta(t, before+1, after, 0.0001)
	require.InDelta(t, 0, testutil.ToFloat64(metrics.UpstreamRequestsInFlight), 0.0001)
}

func TestInstrumentTransport_NilUsesDefault(t *testing.T) {
	require.NotNil(t, metrics.InstrumentTransport(nil))
}
