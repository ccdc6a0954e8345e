package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/atomicstack/rightclick/internal/data/dispatcher"
	"github.com/atomicstack/rightclick/internal/logging"
	"github.com/atomicstack/rightclick/internal/menu"
	"github.com/atomicstack/rightclick/internal/metric"
)

const (
	defaultTreeDepth = 3
	// Help and usr/ list every sibling under every sibling, so deep dumps
	// grow exponentially.
	maxTreeDepth = 5
)

var errNotClickable = errors.New("menu item is not clickable")

// API serves the menu over JSON. Every engine call runs inside the
// dispatcher lock; URLs are opened after it is released.
type API struct {
	engine   *dispatcher.Dispatcher
	launcher menu.Opener
	metrics  prometheus.Gatherer
}

// NewAPI builds the handlers. metrics may be nil to omit /metrics.
func NewAPI(engine *dispatcher.Dispatcher, launcher menu.Opener, metrics prometheus.Gatherer) *API {
	return &API{engine: engine, launcher: launcher, metrics: metrics}
}

// Register mounts the routes on mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/menu", a.handleMenu)
	mux.HandleFunc("GET /api/tree", a.handleTree)
	mux.HandleFunc("POST /api/click", a.handleClick)
	mux.HandleFunc("GET /api/state", a.handleState)
	if a.metrics != nil {
		mux.Handle("GET /metrics", metric.GetHandlerForRegistry(a.metrics))
	}
}

type itemView struct {
	Index      int    `json:"index"`
	Title      string `json:"title"`
	Clickable  bool   `json:"clickable"`
	Expandable bool   `json:"expandable"`
	Separator  bool   `json:"separator"`
}

type menuResponse struct {
	Path  string     `json:"path"`
	Items []itemView `json:"items"`
}

type treeResponse struct {
	Depth int         `json:"depth"`
	Items []menu.Node `json:"items"`
}

type clickResponse struct {
	Path    string        `json:"path"`
	Title   string        `json:"title"`
	Changed bool          `json:"changed"`
	State   menu.Snapshot `json:"state"`
	Opened  []string      `json:"opened,omitempty"`
	Failed  []string      `json:"failed,omitempty"`
	Items   []itemView    `json:"items"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *API) handleMenu(w http.ResponseWriter, r *http.Request) {
	path, ok := parsePath(w, r)
	if !ok {
		return
	}
	var (
		items []menu.Item
		err   error
	)
	a.engine.Do(func() {
		items, err = a.engine.ItemsAt(path)
	})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, menuResponse{Path: path.String(), Items: viewItems(items)})
}

func (a *API) handleTree(w http.ResponseWriter, r *http.Request) {
	depth := defaultTreeDepth
	if raw := r.URL.Query().Get("depth"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid depth %q", raw))
			return
		}
		depth = min(parsed, maxTreeDepth)
	}
	var nodes []menu.Node
	a.engine.Do(func() {
		nodes = a.engine.Tree(depth)
	})
	writeJSON(w, http.StatusOK, treeResponse{Depth: depth, Items: nodes})
}

func (a *API) handleClick(w http.ResponseWriter, r *http.Request) {
	path, ok := parsePath(w, r)
	if !ok {
		return
	}
	var (
		result dispatcher.Result
		root   []menu.Item
		err    error
	)
	a.engine.Do(func() {
		var item menu.Item
		item, err = a.engine.Resolve(path)
		if err != nil {
			return
		}
		clickable, ok := item.(menu.Clickable)
		if !ok {
			err = fmt.Errorf("%w: %q", errNotClickable, item.Title())
			return
		}
		result = a.engine.Click(path, clickable)
		root = a.engine.Root()
	})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	resp := clickResponse{
		Path:    path.String(),
		Title:   result.Title,
		Changed: result.Changed(),
		State:   result.After,
		Items:   viewItems(root),
	}
	for _, url := range result.URLs {
		if err := a.launcher.Open(url); err != nil {
			logging.Error(err)
			resp.Failed = append(resp.Failed, url)
			continue
		}
		resp.Opened = append(resp.Opened, url)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleState(w http.ResponseWriter, _ *http.Request) {
	var snapshot menu.Snapshot
	a.engine.Do(func() {
		snapshot = a.engine.State().Snapshot()
	})
	writeJSON(w, http.StatusOK, snapshot)
}

func parsePath(w http.ResponseWriter, r *http.Request) (menu.Path, bool) {
	path, err := menu.ParsePath(r.URL.Query().Get("path"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	return path, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errNotClickable):
		return http.StatusConflict
	case errors.Is(err, menu.ErrNotFound), errors.Is(err, menu.ErrNotExpandable):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func viewItems(items []menu.Item) []itemView {
	views := make([]itemView, len(items))
	for i, item := range items {
		clickable, expandable := menu.Capabilities(item)
		views[i] = itemView{
			Index:      i,
			Title:      item.Title(),
			Clickable:  clickable,
			Expandable: expandable,
			Separator:  menu.IsSeparator(item),
		}
	}
	return views
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error(fmt.Errorf("encode response: %w", err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
