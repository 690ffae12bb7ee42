package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	_ "github.com/fosdem/galaxykd/lib/api/docs"
	"github.com/fosdem/galaxykd/lib/config"
	"github.com/fosdem/galaxykd/lib/metrics"
	"github.com/fosdem/galaxykd/lib/stats"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Api exposes render statistics and configuration over HTTP. It is read
// only: nothing it serves can change what is drawn.
type Api struct {
	srv     http.Server
	mux     *http.ServeMux
	cfg     *config.ApiCfg
	fullCfg *config.Config

	Stats *stats.Stats

	wsClients   map[*websocket.Conn]bool
	wsClientsMu sync.Mutex
}

func New(cfg *config.Config, st *stats.Stats) *Api {
	a := &Api{}
	a.cfg = cfg.Api
	a.fullCfg = cfg
	a.mux = http.NewServeMux()
	a.srv.Addr = cfg.Api.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]bool)
	a.Stats = st
	a.routes()
	return a
}

func (a *Api) routes() {
	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("GET /api/stats", a.getStats)
	a.mux.HandleFunc("GET /api/config", a.handleConfig)
	a.mux.HandleFunc("GET /api/ws", a.handleWebsocket)
	a.mux.Handle("GET /metrics", metrics.Handler())
	a.mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

// @Summary	CPU profile of the next 10 seconds
// @Router		/prof [get]
// @Tags		debug
// @Produce	octet-stream
// @Success	200
func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// @Summary	Render statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Snapshot
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	snap := a.Stats.Current()
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(snap)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

// @Summary	Active configuration, defaults included
// @Router		/api/config [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	config.Config
func (a *Api) handleConfig(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.fullCfg)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode config: %s", err), http.StatusInternalServerError)
		return
	}
}

// ServeInBackground starts the API if it is configured and returns nil
// otherwise.
func ServeInBackground(cfg *config.Config, st *stats.Stats) *Api {
	if cfg.Api == nil {
		return nil
	}
	theApi := New(cfg, st)

	slog.Info(fmt.Sprintf("starting web server on %s", cfg.Api.Bind), slog.String("module", "api"))
	go func() {
		err := theApi.Serve()
		if err != nil {
			slog.Error(fmt.Sprintf("web server stopped: %s", err), slog.String("module", "api"))
		}
	}()
	return theApi
}
