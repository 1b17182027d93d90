package spot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyAPIClient_FetchEurSpots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`{
			"date": "2025-03-10",
			"eur": {"usd": 1.0831, "gbp": 0.8412, "btc": "n/a", "xyz": 0}
		}`))
	}))
	defer server.Close()

	c := NewCurrencyAPIClient(server.URL, "", time.Second)
	spots, err := c.FetchEurSpots(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"USD": 1.0831, "GBP": 0.8412}, spots)
}

func TestCurrencyAPIClient_FallsBackToMirror(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusBadGateway)
	}))
	defer primary.Close()
	mirror := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`{"date":"2025-03-10","eur":{"chf":0.95}}`))
	}))
	defer mirror.Close()

	spots, err := NewCurrencyAPIClient(primary.URL, mirror.URL, time.Second).FetchEurSpots(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0.95, spots["CHF"])
}

func TestCurrencyAPIClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		time.Sleep(50 * time.Millisecond)
		_, _ = rw.Write([]byte("{}"))
	}))
	defer server.Close()

	_, err := NewCurrencyAPIClient(server.URL, "", time.Millisecond).FetchEurSpots(context.Background())
	assert.Error(t, err)
}

func TestCurrencyAPIClient_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte("<html>"))
	}))
	defer server.Close()

	_, err := NewCurrencyAPIClient(server.URL, "", time.Second).FetchEurSpots(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding json")
}
