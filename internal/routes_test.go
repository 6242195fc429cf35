package internal

import (
	"callguard/internal/bridge"
	"callguard/internal/controllers"
	"callguard/internal/identity"
	"callguard/internal/notification"
	"callguard/internal/pipeline"
	"callguard/internal/presenter"
	"callguard/internal/providers"
	"callguard/internal/screening"
	"callguard/internal/services"
	"callguard/internal/structures"
	"callguard/internal/testutil"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeEnv struct {
	mux        *http.ServeMux
	screener   screening.ScreenerInterface
	reputation *testutil.MockReputation
	host       *bridge.HostBridge
}

func newRouteEnv(t *testing.T) *routeEnv {
	t.Helper()
	conf := &structures.Config{
		Identity:   structures.IdentityConfig{AccountID: "shop-1"},
		Overlay:    structures.OverlayConfig{MaskChar: "*", PermissionGranted: true, HandoffHistory: 8},
		Reputation: structures.ReputationConfig{UnsetRegion: "unset-sentinel"},
		Screening:  structures.ScreeningConfig{TaskTimeout: 2 * time.Second},
		Journal:    structures.JournalConfig{RetainDays: 30},
	}
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}
	reputation := &testutil.MockReputation{}

	host := bridge.NewHostBridge(conf)
	pres := presenter.NewPresenter(conf, bridge.NewLogSurface(conf, logger), host, presenter.RealClock(), logger, metrics)
	t.Cleanup(func() { pres.Dismiss(presenter.ReasonUserDismiss) })
	journal := services.NewJournalService(conf)
	screener := screening.NewScreener(
		conf,
		pipeline.NewPipeline(&testutil.MockGate{Entitled: true}, reputation, logger),
		pres,
		notification.NewNotifier(bridge.NewLogNotifier(logger), logger),
		identity.NewStore(conf, logger),
		providers.NewCacheProvider(conf, logger),
		journal,
		metrics,
		logger,
	)

	router := InitRoutes(
		controllers.NewCallController(logger, screener),
		controllers.NewOverlayController(conf, pres),
		controllers.NewHandoffController(host),
		controllers.NewStatsController(journal),
	)
	mux := http.NewServeMux()
	for _, r := range router.GetRoutes() {
		mux.Handle(r.Url, r.Handler)
	}
	return &routeEnv{mux: mux, screener: screener, reputation: reputation, host: host}
}

func (e *routeEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	e.mux.ServeHTTP(rr, req)
	return rr
}

func (e *routeEnv) drain(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, e.screener.Shutdown(ctx))
}

func TestInitRoutes_RegistersRoutes(t *testing.T) {
	router := InitRoutes(
		controllers.NewCallController(&testutil.MockLogger{}, nil),
		controllers.NewOverlayController(&structures.Config{}, nil),
		controllers.NewHandoffController(nil),
		controllers.NewStatsController(nil),
	)
	routes := router.GetRoutes()

	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}
	assert.Equal(t, []string{"/call", "/overlay", "/overlay/dismiss", "/overlay/accept", "/handoff", "/stats"}, urls)
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	e := newRouteEnv(t)

	assert.Equal(t, http.StatusMethodNotAllowed, e.do(http.MethodGet, "/call", "").Code)
	rr := e.do(http.MethodPost, "/overlay", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "DELETE, GET", rr.Header().Get("Allow"))
	assert.Equal(t, http.StatusMethodNotAllowed, e.do(http.MethodGet, "/overlay/accept", "").Code)
}

func TestRoutes_CallThenAccept(t *testing.T) {
	e := newRouteEnv(t)

	rr := e.do(http.MethodPost, "/call", `{"id":"c1","handle":"tel:01012345678"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"reject_call":false`)
	e.drain(t)

	rr = e.do(http.MethodGet, "/overlay", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var overlay struct {
		ID      uint64 `json:"id"`
		Variant string `json:"variant"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &overlay))
	assert.Equal(t, "clean", overlay.Variant)

	rr = e.do(http.MethodPost, "/overlay/accept?id="+strconv.FormatUint(overlay.ID, 10), "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, http.StatusNoContent, e.do(http.MethodGet, "/overlay", "").Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodDelete, "/overlay", "").Code)

	rr = e.do(http.MethodGet, "/handoff", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"masked_number":"*******5678"`)

	rr = e.do(http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"clean":1`)
}
