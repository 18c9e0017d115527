package rpcapi

import (
	"net/http"

	rpcjson "github.com/gorilla/rpc/v2/json2"

	"github.com/satreg/satellite-gateway/internal/satapi"
	"github.com/satreg/satellite-gateway/registry"
)

// RPCAPI json rpc api service
type RPCAPI struct{}

// rpc error codes of the error taxonomy
var (
	errCodeInvalidInput rpcjson.ErrorCode = -32098
	errCodeNotFound     rpcjson.ErrorCode = -32097
	errCodeInternal     rpcjson.ErrorCode = -32000
)

func toRPCError(err error) error {
	if err == nil {
		return nil
	}
	code := errCodeInternal
	switch {
	case registry.IsClientError(err):
		code = errCodeInvalidInput
	case registry.IsNotFoundError(err):
		code = errCodeNotFound
	}
	return &rpcjson.Error{
		Code:    code,
		Message: err.Error(),
	}
}

// GetVersionInfoArgs empty args
type GetVersionInfoArgs struct{}

// GetServerInfo api
func (s *RPCAPI) GetServerInfo(r *http.Request, args *GetVersionInfoArgs, result *satapi.ServerInfo) error {
	res, err := satapi.GetServerInfo()
	if err != nil {
		return toRPCError(err)
	}
	if res != nil {
		*result = *res
	}
	return nil
}

// GetVersionInfo api
func (s *RPCAPI) GetVersionInfo(r *http.Request, args *GetVersionInfoArgs, result *string) error {
	res, err := satapi.GetVersionInfo()
	if err != nil {
		return toRPCError(err)
	}
	*result = res
	return nil
}

// GetSatelliteArgs get satellite args
type GetSatelliteArgs struct {
	UserAuthority     string
	RegistryAuthority string
	NoradID           string
}

// GetSatellite api
func (s *RPCAPI) GetSatellite(r *http.Request, args *GetSatelliteArgs, result *satapi.SatelliteInfo) error {
	res, err := satapi.GetSatellite(args.UserAuthority, args.RegistryAuthority, args.NoradID)
	if err != nil {
		return toRPCError(err)
	}
	*result = *res
	return nil
}
