package server

import (
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Search.MaxIterations = 1000
	cfg.Search.MaxChildren = 30

	s := NewServer(cfg, log.New(io.Discard))
	t.Cleanup(s.Stop)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return s, ts
}

func dialWebSocket(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHealthEndpoint(t *testing.T) {
	_, ts := startTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))
}

func TestEstimateOverWebSocket(t *testing.T) {
	_, ts := startTestServer(t)
	conn := dialWebSocket(t, ts)

	require.NoError(t, conn.WriteJSON(EstimateRequest{Hand: "AsAh", Iterations: 200, Seed: 7}))

	// Progress frames first, then exactly one result
	var frame Frame
	progress := 0
	for {
		require.NoError(t, conn.ReadJSON(&frame))
		if frame.Type == "progress" {
			progress++
			assert.Equal(t, "AsAh", frame.Hand)
			assert.Equal(t, 200, frame.Total)
			continue
		}
		break
	}

	require.Equal(t, "result", frame.Type)
	assert.Greater(t, progress, 0, "expected at least one progress frame")
	assert.Equal(t, "AsAh", frame.Hand)
	assert.Equal(t, 200, frame.Iterations)
	assert.InDelta(t, 0.853, frame.GroundTruth, 1e-9)
	assert.GreaterOrEqual(t, frame.Estimate, 0.0)
	assert.LessOrEqual(t, frame.Estimate, 1.0)
	assert.InDelta(t, math.Abs(frame.Estimate-frame.GroundTruth), frame.Difference, 1e-9)
}

func TestEstimateInvalidHand(t *testing.T) {
	_, ts := startTestServer(t)
	conn := dialWebSocket(t, ts)

	require.NoError(t, conn.WriteJSON(EstimateRequest{Hand: "XXXX"}))

	var frame Frame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "error", frame.Type)
	assert.NotEmpty(t, frame.Error)
}

func TestEstimateIterationsAboveMax(t *testing.T) {
	_, ts := startTestServer(t)
	conn := dialWebSocket(t, ts)

	require.NoError(t, conn.WriteJSON(EstimateRequest{Hand: "AsKh", Iterations: 10000}))

	var frame Frame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "error", frame.Type)
	assert.Contains(t, frame.Error, "iterations")
}

func TestConnectionSurvivesErrorFrame(t *testing.T) {
	_, ts := startTestServer(t)
	conn := dialWebSocket(t, ts)

	// A client mistake must not kill the connection
	require.NoError(t, conn.WriteJSON(EstimateRequest{Hand: "bogus"}))
	var frame Frame
	require.NoError(t, conn.ReadJSON(&frame))
	require.Equal(t, "error", frame.Type)

	require.NoError(t, conn.WriteJSON(EstimateRequest{Hand: "7s2h", Iterations: 50, Seed: 3}))
	for {
		require.NoError(t, conn.ReadJSON(&frame))
		if frame.Type != "progress" {
			break
		}
	}
	assert.Equal(t, "result", frame.Type)
	assert.Equal(t, "7s2h", frame.Hand)
}
