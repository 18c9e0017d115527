package restapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/satreg/satellite-gateway/registry"
)

func TestErrResponseStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, errResponseStatus(registry.ErrInvalidInput))
	assert.Equal(t, http.StatusBadRequest, errResponseStatus(fmt.Errorf("%w: wrapped", registry.ErrInvalidInput)))
	assert.Equal(t, http.StatusNotFound, errResponseStatus(registry.ErrAccountNotFound))
	assert.Equal(t, http.StatusNotFound, errResponseStatus(registry.ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, errResponseStatus(registry.ErrRPCQueryError))
	assert.Equal(t, http.StatusInternalServerError, errResponseStatus(registry.ErrMalformedAccountData))
	assert.Equal(t, http.StatusInternalServerError, errResponseStatus(errors.New("some other error")))
}

func testRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/satellite/{userAuthority}/{registryAuthority}/{noradId}", GetSatelliteHandler).Methods("GET")
	r.HandleFunc("/fruits", AllFruitsHandler).Methods("GET")
	r.HandleFunc("/fruit/{name}", GetFruitHandler).Methods("GET")
	return r
}

func TestGetSatelliteHandlerBadRequest(t *testing.T) {
	router := testRouter()

	// rejected before any ledger access
	req := httptest.NewRequest("GET", "/satellite/0OIl/0OIl/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFruitHandlers(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest("GET", "/fruits", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"banana"`)

	req = httptest.NewRequest("GET", "/fruit/durian", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
