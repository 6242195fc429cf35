package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusHandler(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	})
}

func TestRouterProvider_GetAddsRoute(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/overlay", statusHandler(http.StatusOK))

	routes := rp.GetRoutes()
	require.Len(t, routes, 1)
	assert.Equal(t, "/overlay", routes[0].Url)
}

func TestRouterProvider_MethodsShareOneRoute(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/overlay", statusHandler(http.StatusOK))
	rp.Delete("/overlay", statusHandler(http.StatusNoContent))
	rp.Post("/call", statusHandler(http.StatusCreated))

	routes := rp.GetRoutes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/overlay", routes[0].Url)
	assert.Equal(t, "/call", routes[1].Url)

	rr := httptest.NewRecorder()
	routes[0].Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/overlay", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	routes[0].Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/overlay", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRouterProvider_WrongMethodRejected(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/overlay", statusHandler(http.StatusOK))
	rp.Delete("/overlay", statusHandler(http.StatusNoContent))

	rr := httptest.NewRecorder()
	rp.GetRoutes()[0].Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/overlay", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "DELETE, GET", rr.Header().Get("Allow"))
}
