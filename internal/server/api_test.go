package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/rightclick/internal/data/dispatcher"
	"github.com/atomicstack/rightclick/internal/logging"
	"github.com/atomicstack/rightclick/internal/menu"
	"github.com/atomicstack/rightclick/internal/metric"
)

// paths into the default tree
const (
	pathEdit     = "1"
	pathFile     = "0"
	pathFloppy   = "0.1.0.1.0"
	pathWhy      = "0.2.4"
	pathDriveA   = "0.1.0"
	pathNowhere  = "0.9"
	pathBadInput = "0.x"
)

type recordingOpener struct {
	urls []string
	err  error
}

func (r *recordingOpener) Open(url string) error {
	r.urls = append(r.urls, url)
	return r.err
}

type fixture struct {
	engine   *dispatcher.Dispatcher
	launcher *recordingOpener
	recorder *metric.Recorder
	handler  http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logging.Configure(t.TempDir() + "/rightclick.log")
	t.Cleanup(func() { logging.Configure("") })

	recorder := metric.NewRecorder()
	engine := dispatcher.New(recorder)
	launcher := &recordingOpener{}
	srv := New(WithAPI(NewAPI(engine, launcher, recorder.Registry())), WithSimpleHealth())
	return &fixture{engine: engine, launcher: launcher, recorder: recorder, handler: srv.Handler()}
}

func (f *fixture) do(t *testing.T, method, target string, out any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec.Code
}

func titles(items []itemView) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func TestMenuRoot(t *testing.T) {
	f := newFixture(t)
	var resp menuResponse
	require.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/menu", &resp))

	assert.Equal(t, "", resp.Path)
	assert.Equal(t, []string{"File", "Edit", "System", "View", "Utilities", "Games", "Help"}, titles(resp.Items))
	assert.True(t, resp.Items[0].Expandable)
	assert.False(t, resp.Items[0].Clickable)
	assert.True(t, resp.Items[1].Clickable)
	assert.Equal(t, 1, resp.Items[1].Index)
}

func TestMenuSubmenu(t *testing.T) {
	f := newFixture(t)
	var resp menuResponse
	require.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/menu?path="+pathDriveA, &resp))

	assert.Equal(t, pathDriveA, resp.Path)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Please insert disk into Drive A", resp.Items[0].Title)
	assert.False(t, resp.Items[0].Clickable || resp.Items[0].Expandable)
	assert.Equal(t, "Insert", resp.Items[1].Title)
}

func TestMenuErrors(t *testing.T) {
	f := newFixture(t)
	cases := []struct {
		target string
		status int
	}{
		{"/api/menu?path=" + pathNowhere, http.StatusNotFound},
		{"/api/menu?path=" + pathEdit, http.StatusNotFound},
		{"/api/menu?path=" + pathBadInput, http.StatusBadRequest},
		{"/api/menu?path=-1", http.StatusBadRequest},
	}
	for _, tc := range cases {
		var resp errorResponse
		assert.Equal(t, tc.status, f.do(t, http.MethodGet, tc.target, &resp), tc.target)
		assert.NotEmpty(t, resp.Error, tc.target)
	}
}

func TestClickChangesStateAndRefreshesRoot(t *testing.T) {
	f := newFixture(t)
	var resp clickResponse
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/click?path="+pathFloppy, &resp))

	assert.Equal(t, "Floppy disk", resp.Title)
	assert.True(t, resp.Changed)
	assert.True(t, resp.State.InsertedDiskInDriveA)
	assert.Equal(t, "File", resp.Items[0].Title)
	assert.Empty(t, resp.Opened)

	var drive menuResponse
	require.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/menu?path="+pathDriveA, &drive))
	assert.Equal(t, []string{"A:\\ contains no files.", "Eject"}, titles(drive.Items))

	var state menu.Snapshot
	require.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/state", &state))
	assert.Equal(t, menu.Snapshot{InsertedDiskInDriveA: true}, state)
}

func TestClickOpensLinksAfterTheLock(t *testing.T) {
	f := newFixture(t)
	var resp clickResponse
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/click?path="+pathWhy, &resp))

	assert.Equal(t, "Why", resp.Title)
	assert.False(t, resp.Changed)
	require.Len(t, resp.Opened, 1)
	assert.Equal(t, resp.Opened, f.launcher.urls)
}

func TestClickReportsLaunchFailures(t *testing.T) {
	f := newFixture(t)
	f.launcher.err = errors.New("no display")
	var resp clickResponse
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/click?path="+pathWhy, &resp))

	assert.Empty(t, resp.Opened)
	assert.Len(t, resp.Failed, 1)
}

func TestClickErrors(t *testing.T) {
	f := newFixture(t)
	cases := []struct {
		target string
		status int
	}{
		{"/api/click?path=" + pathFile, http.StatusConflict},
		{"/api/click?path=" + pathNowhere, http.StatusNotFound},
		{"/api/click", http.StatusNotFound},
		{"/api/click?path=" + pathBadInput, http.StatusBadRequest},
	}
	for _, tc := range cases {
		var resp errorResponse
		assert.Equal(t, tc.status, f.do(t, http.MethodPost, tc.target, &resp), tc.target)
		assert.NotEmpty(t, resp.Error, tc.target)
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/click?path="+pathEdit, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestTreeDepth(t *testing.T) {
	f := newFixture(t)
	var resp treeResponse
	require.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/tree?depth=1", &resp))

	assert.Equal(t, 1, resp.Depth)
	file := resp.Items[0]
	assert.Equal(t, "File", file.Title)
	require.Len(t, file.Children, 4)
	assert.Empty(t, file.Children[1].Children)

	var bad errorResponse
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/api/tree?depth=deep", &bad))

	var def treeResponse
	require.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/tree", &def))
	assert.Equal(t, defaultTreeDepth, def.Depth)
}

func TestTreeDepthIsCapped(t *testing.T) {
	f := newFixture(t)
	var resp treeResponse
	require.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/api/tree?depth=50", &resp))
	assert.Equal(t, maxTreeDepth, resp.Depth)
}

func TestMetricsAndHealth(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/api/click?path="+pathEdit, nil)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `rightclick_clicks_total{changed="false",title="Edit"} 1`)

	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
