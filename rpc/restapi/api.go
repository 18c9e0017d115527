package restapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/satreg/satellite-gateway/internal/satapi"
	"github.com/satreg/satellite-gateway/registry"
)

func writeResponse(w http.ResponseWriter, resp interface{}, err error) {
	writeResponseWithStatus(w, resp, err, http.StatusOK)
}

func writeResponseWithStatus(w http.ResponseWriter, resp interface{}, err error, okStatus int) {
	if err != nil {
		w.WriteHeader(errResponseStatus(err))
		fmt.Fprintln(w, err.Error())
		return
	}
	jsonData, _ := json.Marshal(resp)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(okStatus)
	_, _ = w.Write(jsonData)
}

// errResponseStatus map the error taxonomy to http status codes.
// client input errors are 400, missing objects 404, everything else
// (gateway or decode failures) is 500.
func errResponseStatus(err error) int {
	switch {
	case registry.IsClientError(err):
		return http.StatusBadRequest
	case registry.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ServerInfoHandler handle get server info
func ServerInfoHandler(w http.ResponseWriter, r *http.Request) {
	res, err := satapi.GetServerInfo()
	writeResponse(w, res, err)
}

// VersionInfoHandler handle get version info
func VersionInfoHandler(w http.ResponseWriter, r *http.Request) {
	res, err := satapi.GetVersionInfo()
	writeResponse(w, res, err)
}

// GetSatelliteHandler handle get satellite by authorities and norad id
func GetSatelliteHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := satapi.GetSatellite(vars["userAuthority"], vars["registryAuthority"], vars["noradId"])
	writeResponse(w, res, err)
}

// AllFruitsHandler handle get all fruits
func AllFruitsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := satapi.GetAllFruits()
	writeResponse(w, res, err)
}

// GetFruitHandler handle get single fruit by name
func GetFruitHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := satapi.GetFruit(vars["name"])
	writeResponse(w, res, err)
}

// GenerateKeypairHandler handle generate a new random keypair
func GenerateKeypairHandler(w http.ResponseWriter, r *http.Request) {
	res, err := satapi.GenerateKeypair()
	writeResponseWithStatus(w, res, err, http.StatusCreated)
}
