package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/tmsim/internal/adapters"
	"github.com/aretw0/tmsim/internal/config"
	"github.com/aretw0/tmsim/pkg/adapters/memory"
	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts Options) *App {
	t.Helper()
	if opts.ConfigPath == "" {
		opts.ConfigPath = filepath.Join(t.TempDir(), "absent.yaml")
	}
	app, err := Setup(opts)
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

func TestLegacyArgs(t *testing.T) {
	assert.Equal(t, []string{"add", "3", "5"}, LegacyArgs([]string{"-add", "3", "5"}))
	assert.Equal(t, []string{"exp", "2", "5"}, LegacyArgs([]string{"-exp", "2", "5"}))
	assert.Equal(t, []string{"mult", "4", "6"}, LegacyArgs([]string{"mult", "4", "6"}))
	assert.Equal(t, []string{"--debug", "add"}, LegacyArgs([]string{"--debug", "add"}))
	assert.Empty(t, LegacyArgs(nil))
}

func TestSetup_Backends(t *testing.T) {
	dir := t.TempDir()

	app := setup(t, Options{Dir: dir})
	fs, ok := app.Store.(*adapters.FileStore)
	require.True(t, ok)
	assert.Equal(t, dir, fs.BasePath)

	app = setup(t, Options{Backend: config.BackendMemory})
	_, ok = app.Store.(*memory.Store)
	assert.True(t, ok)

	app = setup(t, Options{Backend: config.BackendNone})
	assert.Nil(t, app.Store)
	assert.Nil(t, app.Engine.Store())

	_, err := Setup(Options{ConfigPath: filepath.Join(dir, "absent.yaml"), Backend: "s3"})
	assert.Error(t, err)
}

func TestSetup_ConfigFileAndLogFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "tmsim.yaml")
	logPath := filepath.Join(dir, "tmsim.log")
	require.NoError(t, os.WriteFile(cfgPath, []byte("store:\n  backend: memory\nlog:\n  level: debug\n  file: "+logPath+"\n"), 0644))

	app, err := Setup(Options{ConfigPath: cfgPath})
	require.NoError(t, err)
	assert.Equal(t, config.BackendMemory, app.Config.Store.Backend)

	require.NoError(t, RunSimulation(context.Background(), app, domain.OpAdd, 1, 1, SimulateOptions{}, io.Discard))
	require.NoError(t, app.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"simulation halted"`)
}

func TestRunSimulation_ClassicOutput(t *testing.T) {
	dir := t.TempDir()
	app := setup(t, Options{Dir: dir})

	var out bytes.Buffer
	require.NoError(t, RunSimulation(context.Background(), app, domain.OpAdd, 3, 5, SimulateOptions{}, &out))

	name := filepath.Join(dir, "add_3_5")
	assert.Equal(t, "Created trace file '"+name+"'\nResult: 8\n", out.String())

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Trace for 3 + 5\n\n"))
	assert.True(t, strings.HasSuffix(string(data), "\n\nInterpreted result of this computation: 8"))
}

func TestRunSimulation_Modes(t *testing.T) {
	app := setup(t, Options{Backend: config.BackendNone})
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, RunSimulation(ctx, app, domain.OpMultiply, 4, 6, SimulateOptions{}, &out))
	assert.Equal(t, "Result: 24\n", out.String())

	out.Reset()
	require.NoError(t, RunSimulation(ctx, app, domain.OpMultiply, 2, 2, SimulateOptions{PrintTrace: true}, &out))
	assert.True(t, strings.HasPrefix(out.String(), "Abbreviated Trace for 2 x 2"))

	out.Reset()
	require.NoError(t, RunSimulation(ctx, app, domain.OpExponent, 2, 5, SimulateOptions{Summary: true}, &out))
	assert.True(t, strings.HasPrefix(out.String(), "# 2 ^ 5 = 32"))

	out.Reset()
	require.NoError(t, RunSimulation(ctx, app, domain.OpExponent, 2, 5, SimulateOptions{JSON: true}, &out))
	var rec domain.Record
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, uint32(32), rec.Result.Value)
}

func TestRunGraph(t *testing.T) {
	app := setup(t, Options{Backend: config.BackendNone})

	var out bytes.Buffer
	require.NoError(t, RunGraph(context.Background(), app, domain.OpAdd, nil, &out))
	assert.NotContains(t, out.String(), "classDef")

	out.Reset()
	require.NoError(t, RunGraph(context.Background(), app, domain.OpAdd, []uint32{1, 0}, &out))
	assert.Contains(t, out.String(), "class Halt current;")
}

func TestRecords(t *testing.T) {
	app := setup(t, Options{Backend: config.BackendMemory})
	ctx := context.Background()

	require.NoError(t, RunBatch(ctx, app, strings.NewReader("add 1 2\nmult 2 2\n"), io.Discard, false))

	var out bytes.Buffer
	require.NoError(t, ListRecords(ctx, app, &out))
	assert.Equal(t, "add_1_2\nmult_2_2\n", out.String())

	out.Reset()
	require.NoError(t, ShowRecord(ctx, app, "add_1_2", false, &out))
	assert.True(t, strings.HasPrefix(out.String(), "Trace for 1 + 2"))

	require.NoError(t, DeleteRecord(ctx, app, "add_1_2"))
	err := ShowRecord(ctx, app, "add_1_2", true, &out)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	none := setup(t, Options{Backend: config.BackendNone})
	assert.ErrorIs(t, ListRecords(ctx, none, &out), errNoStore)
}

func TestNewHTTPServer(t *testing.T) {
	app := setup(t, Options{Backend: config.BackendNone})
	srv := NewHTTPServer(app, "")
	assert.Equal(t, ":8080", srv.Addr)

	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
}

func TestServe_StopsOnCancel(t *testing.T) {
	app := setup(t, Options{Backend: config.BackendNone})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, Serve(ctx, app, "127.0.0.1:0"))
}
