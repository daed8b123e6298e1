package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/tmsim"
	"github.com/aretw0/tmsim/internal/logging"
	"github.com/aretw0/tmsim/pkg/adapters/http"
	"github.com/aretw0/tmsim/pkg/adapters/memory"
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/aretw0/tmsim/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, opts ...tmsim.Option) *httptest.Server {
	t.Helper()
	metrics := observability.NewMetrics()
	opts = append(opts, tmsim.WithLifecycleHooks(metrics.Hooks(false)))
	eng := tmsim.New(opts...)

	srv := httptest.NewServer(http.NewHandler(eng, logging.NewNop(), http.WithMetrics(metrics.Handler())))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url string, body any) *nethttp.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := nethttp.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) (*nethttp.Response, string) {
	t.Helper()
	resp, err := nethttp.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.String()
}

func TestSimulate(t *testing.T) {
	srv := newServer(t)

	resp := post(t, srv.URL+"/simulate", http.SimulateRequest{Operation: "mult", X: 4, Y: 6})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var rec domain.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, "mult_4_6", rec.ID)
	assert.Equal(t, uint32(24), rec.Result.Value)
	assert.Equal(t, "B00011B", rec.Result.Tape)
	assert.Empty(t, rec.Trace)
}

func TestSimulate_WithTrace(t *testing.T) {
	srv := newServer(t)

	resp := post(t, srv.URL+"/simulate", http.SimulateRequest{Operation: "+", X: 1, Y: 0, Trace: true})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var rec domain.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.True(t, strings.HasPrefix(rec.Trace, "Trace for 1 + 0"))
	assert.Len(t, rec.Result.Steps, rec.Result.StepCount)
}

func TestSimulate_BadRequests(t *testing.T) {
	srv := newServer(t)

	resp := post(t, srv.URL+"/simulate", map[string]any{"operation": "div", "x": 1, "y": 1})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	resp = post(t, srv.URL+"/simulate", map[string]any{"operation": "add", "x": -1, "y": 1})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestRun(t *testing.T) {
	srv := newServer(t)

	resp := post(t, srv.URL+"/run", http.RunRequest{Operation: "add", Tape: "B11B101B"})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var rec domain.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, uint32(8), rec.Result.Value)

	resp = post(t, srv.URL+"/run", http.RunRequest{Operation: "exp", Tape: "B11B101B"})
	assert.Equal(t, nethttp.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSimulate_Limit(t *testing.T) {
	metrics := observability.NewMetrics()
	eng := tmsim.New().Limited(domain.Limit{MaxValue: 1 << 16, MaxCells: 64})
	srv := httptest.NewServer(http.NewHandler(eng, logging.NewNop(), http.WithMetrics(metrics.Handler())))
	t.Cleanup(srv.Close)

	resp := post(t, srv.URL+"/simulate", http.SimulateRequest{Operation: "add", X: 4000000000})
	assert.Equal(t, nethttp.StatusUnprocessableEntity, resp.StatusCode)

	resp = post(t, srv.URL+"/run", http.RunRequest{Operation: "add", Tape: "B" + strings.Repeat("1", 80) + "B1B"})
	assert.Equal(t, nethttp.StatusUnprocessableEntity, resp.StatusCode)

	resp = post(t, srv.URL+"/simulate", http.SimulateRequest{Operation: "add", X: 3, Y: 5})
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestGetGraph(t *testing.T) {
	srv := newServer(t)

	resp, body := get(t, srv.URL+"/graph/mult")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(body, "graph TD\n"))
	assert.Contains(t, body, `Add_sub[["Add*"]]`)

	resp, body = get(t, srv.URL+"/graph/add?format=json")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var states []domain.StateSpec
	require.NoError(t, json.Unmarshal([]byte(body), &states))
	assert.Equal(t, "Start", states[0].Name)

	resp, _ = get(t, srv.URL+"/graph/div")
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestRecords(t *testing.T) {
	store := memory.NewStore()
	srv := newServer(t, tmsim.WithStore(store))

	resp := post(t, srv.URL+"/simulate", http.SimulateRequest{Operation: "exp", X: 2, Y: 3})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp2, body := get(t, srv.URL+"/records")
	require.Equal(t, nethttp.StatusOK, resp2.StatusCode)
	assert.JSONEq(t, `["exp_2_3"]`, body)

	resp2, body = get(t, srv.URL+"/records/exp_2_3")
	require.Equal(t, nethttp.StatusOK, resp2.StatusCode)
	var rec domain.Record
	require.NoError(t, json.Unmarshal([]byte(body), &rec))
	assert.Equal(t, uint32(8), rec.Result.Value)

	resp2, body = get(t, srv.URL+"/records/exp_2_3?format=text")
	require.Equal(t, nethttp.StatusOK, resp2.StatusCode)
	assert.True(t, strings.HasPrefix(body, "Abbreviated Trace for 2 ^ 3 (x to the yth power)"))

	resp2, _ = get(t, srv.URL+"/records/add_9_9")
	assert.Equal(t, nethttp.StatusNotFound, resp2.StatusCode)

	_, err := store.Load(context.Background(), "exp_2_3")
	require.NoError(t, err)
}

func TestRecords_NoStore(t *testing.T) {
	srv := newServer(t)
	resp, _ := get(t, srv.URL+"/records")
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestInfoHealthAndMetrics(t *testing.T) {
	srv := newServer(t)

	_, body := get(t, srv.URL+"/health")
	assert.JSONEq(t, `{"status":"ok"}`, body)

	_, body = get(t, srv.URL+"/info")
	assert.Contains(t, body, `"operations":["add","mult","exp"]`)

	post(t, srv.URL+"/simulate", http.SimulateRequest{Operation: "add", X: 3, Y: 5})
	resp, body := get(t, srv.URL+"/metrics")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `tmsim_simulations_total{operation="add"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	srv := newServer(t)
	req, err := nethttp.NewRequest("OPTIONS", srv.URL+"/simulate", nil)
	require.NoError(t, err)
	resp, err := nethttp.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
