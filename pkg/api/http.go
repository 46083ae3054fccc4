package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/nexus-panel/wings/pkg/config"
	"github.com/nexus-panel/wings/pkg/console"
	"github.com/nexus-panel/wings/pkg/log"
	"github.com/nexus-panel/wings/pkg/manager"
	"github.com/nexus-panel/wings/pkg/metrics"
	"github.com/nexus-panel/wings/pkg/runtime"
	"github.com/nexus-panel/wings/pkg/sysinfo"
	"github.com/nexus-panel/wings/pkg/types"
)

// Runtime is the slice of the container runtime the HTTP layer touches
// directly: the version probe for system info and live streams for the
// websocket console. Everything lifecycle-shaped goes through the Manager.
type Runtime interface {
	Version(ctx context.Context) (string, error)
	FollowLogs(ctx context.Context, uuid string) (*runtime.LogStream, error)
	StreamStats(ctx context.Context, uuid string) (*runtime.StatsStream, error)
}

// HTTPServer serves the Panel-facing REST API and the console websocket.
type HTTPServer struct {
	cfg     *config.Config
	manager *manager.Manager
	runtime Runtime
	console *console.Store
	version string
	router  *mux.Router
	srv     *http.Server
	logger  zerolog.Logger
}

// NewHTTPServer wires the REST surface over the manager. version is the
// daemon build version reported by /api/system.
func NewHTTPServer(cfg *config.Config, mgr *manager.Manager, rt Runtime, store *console.Store, version string) *HTTPServer {
	s := &HTTPServer{
		cfg:     cfg,
		manager: mgr,
		runtime: rt,
		console: store,
		version: version,
		logger:  log.WithComponent("http"),
	}
	s.router = s.routes()

	// No WriteTimeout: synchronous installs and large uploads can outlive
	// any reasonable value. Only header reads and idle keepalives are
	// bounded.
	s.srv = &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Start serves HTTP (or HTTPS when a certificate pair is configured) until
// Shutdown is called.
func (s *HTTPServer) Start() error {
	s.logger.Info().Str("addr", s.srv.Addr).Msg("HTTP API listening")

	var err error
	if s.cfg.API.TLSCert != "" && s.cfg.API.TLSKey != "" {
		err = s.srv.ListenAndServeTLS(s.cfg.API.TLSCert, s.cfg.API.TLSKey)
	} else {
		err = s.srv.ListenAndServe()
	}
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

func (s *HTTPServer) routes() *mux.Router {
	r := mux.NewRouter()

	// Anonymous surface: liveness for the Panel, scrape for Prometheus.
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// The websocket authenticates with a query token inside the handler,
	// and the upgrade needs the raw connection, so it stays off the
	// instrumented subrouter.
	r.HandleFunc("/api/servers/{uuid}/ws", s.handleWebsocket).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.instrument, s.requireAuth)

	api.HandleFunc("/system", s.handleSystemInfo).Methods(http.MethodGet)

	api.HandleFunc("/servers", s.handleCreateServer).Methods(http.MethodPost)
	api.HandleFunc("/servers/{uuid}", s.handleDeleteServer).Methods(http.MethodDelete)
	api.HandleFunc("/servers/{uuid}/power", s.handlePowerAction).Methods(http.MethodPost)
	api.HandleFunc("/servers/{uuid}/command", s.handleSendCommand).Methods(http.MethodPost)
	// The Panel has sent both verbs for this one over time.
	api.HandleFunc("/servers/{uuid}/resources", s.handleUpdateResources).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/servers/{uuid}/status", s.handleServerStatus).Methods(http.MethodGet)
	api.HandleFunc("/servers/{uuid}/install", s.handleInstallServer).Methods(http.MethodPost)
	api.HandleFunc("/servers/{uuid}/reinstall", s.handleReinstallServer).Methods(http.MethodPost)

	api.HandleFunc("/servers/{uuid}/files", s.handleListFiles).Methods(http.MethodGet)
	api.HandleFunc("/servers/{uuid}/files/read", s.handleReadFile).Methods(http.MethodGet)
	api.HandleFunc("/servers/{uuid}/files/write", s.handleWriteFile).Methods(http.MethodPost)
	api.HandleFunc("/servers/{uuid}/files/directory", s.handleCreateDirectory).Methods(http.MethodPost)
	api.HandleFunc("/servers/{uuid}/files/rename", s.handleRenameFile).Methods(http.MethodPost)
	api.HandleFunc("/servers/{uuid}/files/delete", s.handleDeleteFiles).Methods(http.MethodPost)
	api.HandleFunc("/servers/{uuid}/files/compress", s.handleCompressFiles).Methods(http.MethodPost)
	api.HandleFunc("/servers/{uuid}/files/decompress", s.handleDecompressFile).Methods(http.MethodPost)
	api.HandleFunc("/servers/{uuid}/files/upload", s.handleUploadFile).Methods(http.MethodPost)

	return r
}

// statusRecorder captures the response code for request metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument records request counts and latencies.
func (s *HTTPServer) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timer := metrics.NewTimer()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		timer.ObserveDurationVec(metrics.APIRequestDuration, r.Method)
		metrics.APIRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()

		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", timer.Duration()).
			Msg("Request handled")
	})
}

// requireAuth rejects requests without a valid bearer credential.
func (s *HTTPServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bearer, ok := bearerFromHeader(r.Header.Get("Authorization"))
		if !ok || !validCredential(bearer, s.cfg.Panel) {
			writeError(w, types.AuthFailed())
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a daemon error onto its HTTP status with an
// {"error": message} body.
func writeError(w http.ResponseWriter, err error) {
	e := types.AsError(err)
	writeJSON(w, e.HTTPStatus(), map[string]string{"error": e.Message})
}

// decode unmarshals a JSON request body into v, answering 400 itself when
// the body does not parse.
func (s *HTTPServer) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return false
	}
	return true
}

// firstNonEmpty accommodates request bodies that arrive in either
// snake_case or camelCase spellings.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func pickUint(primary, alias *uint64) *uint64 {
	if primary != nil {
		return primary
	}
	return alias
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// systemInfoResponse is what the Panel's node overview consumes.
type systemInfoResponse struct {
	Version       string `json:"version"`
	DockerVersion string `json:"docker_version"`
	UptimeSeconds uint64 `json:"uptime_seconds"`
}

func (s *HTTPServer) handleSystemInfo(w http.ResponseWriter, r *http.Request) {
	dockerVersion, err := s.runtime.Version(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, systemInfoResponse{
		Version:       s.version,
		DockerVersion: dockerVersion,
		UptimeSeconds: sysinfo.Uptime(),
	})
}

type createServerRequest struct {
	Server             *types.ServerSpec `json:"server"`
	InstallScript      string            `json:"installScript"`
	InstallScriptSnake string            `json:"install_script"`
	InstallImage       string            `json:"installDockerImage"`
	InstallImageSnake  string            `json:"install_docker_image"`
}

func (r *createServerRequest) script() string {
	return firstNonEmpty(r.InstallScript, r.InstallScriptSnake)
}

func (r *createServerRequest) image() string {
	return firstNonEmpty(r.InstallImage, r.InstallImageSnake)
}

func (s *HTTPServer) handleCreateServer(w http.ResponseWriter, r *http.Request) {
	var body createServerRequest
	if !s.decode(w, r, &body) {
		return
	}
	if body.Server == nil || body.Server.UUID == "" {
		writeError(w, types.Configf("Missing server config"))
		return
	}

	containerID, err := s.manager.Create(r.Context(), body.Server, body.script(), body.image())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"container_id": containerID,
		"uuid":         body.Server.UUID,
	})
}

func (s *HTTPServer) handleDeleteServer(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]
	removeVolumes, _ := strconv.ParseBool(r.URL.Query().Get("remove_volumes"))

	if err := s.manager.Delete(r.Context(), uuid, removeVolumes); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type powerActionRequest struct {
	Action string `json:"action"`
}

func (s *HTTPServer) handlePowerAction(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	var body powerActionRequest
	if !s.decode(w, r, &body) {
		return
	}

	action, err := types.ParsePowerAction(body.Action)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.manager.PowerAction(r.Context(), uuid, action); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"action":  body.Action,
	})
}

type commandRequest struct {
	Command string `json:"command"`
}

func (s *HTTPServer) handleSendCommand(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	var body commandRequest
	if !s.decode(w, r, &body) {
		return
	}

	if err := s.manager.SendCommand(r.Context(), uuid, body.Command); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// resourceUpdateRequest carries limits in the Panel's units: memory and
// disk in MiB, cpu in hundredths of a core.
type resourceUpdateRequest struct {
	MemoryLimit      *uint64 `json:"memory_limit"`
	MemoryLimitCamel *uint64 `json:"memoryLimit"`
	CPULimit         *uint64 `json:"cpu_limit"`
	CPULimitCamel    *uint64 `json:"cpuLimit"`
	DiskLimit        *uint64 `json:"disk_limit"`
	DiskLimitCamel   *uint64 `json:"diskLimit"`
}

func (s *HTTPServer) handleUpdateResources(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	var body resourceUpdateRequest
	if !s.decode(w, r, &body) {
		return
	}

	memory := pickUint(body.MemoryLimit, body.MemoryLimitCamel)
	cpu := pickUint(body.CPULimit, body.CPULimitCamel)
	disk := pickUint(body.DiskLimit, body.DiskLimitCamel)

	// Absent fields keep their stored values.
	if memory == nil || cpu == nil || disk == nil {
		spec, ok := s.manager.Spec(uuid)
		if !ok {
			writeError(w, types.Configf("Missing resource limits"))
			return
		}
		if memory == nil {
			v := spec.MemoryLimit / (1024 * 1024)
			memory = &v
		}
		if cpu == nil {
			v := spec.CPULimit / 10_000_000
			cpu = &v
		}
		if disk == nil {
			v := spec.DiskLimit / (1024 * 1024)
			disk = &v
		}
	}

	if err := s.manager.UpdateResources(r.Context(), uuid, *memory, *cpu, *disk); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Resource limits updated",
	})
}

// serverStatusResponse reports the normalized state; resources is null
// unless the container is running.
type serverStatusResponse struct {
	UUID      string               `json:"uuid"`
	State     types.ServerState    `json:"state"`
	Resources *types.ResourceStats `json:"resources"`
}

func (s *HTTPServer) handleServerStatus(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	state, stats, err := s.manager.Status(r.Context(), uuid)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, serverStatusResponse{
		UUID:      uuid,
		State:     state,
		Resources: stats,
	})
}

// installRequest tolerates the field spellings the Panel has used for
// manual installs: script or installScript, and an optional embedded
// server config.
type installRequest struct {
	Script             string            `json:"script"`
	InstallScript      string            `json:"install_script"`
	InstallScriptCamel string            `json:"installScript"`
	InstallImage       string            `json:"install_image"`
	InstallImageCamel  string            `json:"installDockerImage"`
	Server             *types.ServerSpec `json:"server"`
	ServerSnake        *types.ServerSpec `json:"server_config"`
}

func (r *installRequest) script() string {
	return firstNonEmpty(r.InstallScript, r.InstallScriptCamel, r.Script)
}

func (r *installRequest) image() string {
	return firstNonEmpty(r.InstallImage, r.InstallImageCamel)
}

func (r *installRequest) spec() *types.ServerSpec {
	if r.Server != nil {
		return r.Server
	}
	return r.ServerSnake
}

// handleInstallServer runs the install pipeline synchronously and returns
// the captured output. The path UUID wins over whatever uuid the body
// spec carries.
func (s *HTTPServer) handleInstallServer(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	var body installRequest
	if !s.decode(w, r, &body) {
		return
	}

	script := body.script()
	if script == "" {
		writeError(w, types.Configf("Missing install script"))
		return
	}
	image := body.image()
	if image == "" {
		writeError(w, types.Configf("Missing install image"))
		return
	}

	spec := body.spec()
	if spec == nil {
		spec = s.manager.PlaceholderSpec(uuid)
	} else {
		spec.UUID = uuid
	}

	output, err := s.manager.Install(r.Context(), spec, script, image)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"output":  output,
	})
}

// handleReinstallServer stores the new spec and kicks off the install
// pipeline in the background; the outcome arrives by event and Panel
// callback.
func (s *HTTPServer) handleReinstallServer(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	var body createServerRequest
	if !s.decode(w, r, &body) {
		return
	}

	script := body.script()
	if script == "" {
		writeError(w, types.Configf("Missing install script"))
		return
	}
	image := body.image()
	if image == "" {
		writeError(w, types.Configf("Missing install image"))
		return
	}

	spec := body.Server
	if spec == nil {
		stored, ok := s.manager.Spec(uuid)
		if !ok {
			writeError(w, types.NotFoundf("Server not found: %s", uuid))
			return
		}
		spec = stored
	} else {
		spec.UUID = uuid
	}

	if err := s.manager.Reinstall(r.Context(), spec, script, image); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
