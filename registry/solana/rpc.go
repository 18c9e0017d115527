package solana

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dfuse-io/solana-go"
	solanarpc "github.com/dfuse-io/solana-go/rpc"
	"github.com/ybbus/jsonrpc"

	"github.com/satreg/satellite-gateway/log"
	"github.com/satreg/satellite-gateway/registry"
	"github.com/satreg/satellite-gateway/rpc/client"
)

func (b *Bridge) getClients() (clis []*solanarpc.Client) {
	endpoints := b.GatewayConfig.APIAddress
	clis = make([]*solanarpc.Client, 0)
	for _, endpoint := range endpoints {
		cli := solanarpc.NewClient(endpoint)
		if cli != nil {
			clis = append(clis, cli)
		}
	}
	return
}

func (b *Bridge) getURLs() (rpcURL []string) {
	return b.GatewayConfig.APIAddress
}

// RPCError accumulates gateway errors of one query pass
type RPCError struct {
	errs   []error
	method string
}

func (e *RPCError) log(msg error) {
	log.Warn("[Solana RPC error]", "method", e.method, "msg", msg)
	if len(e.errs) < 1 {
		e.errs = make([]error, 1)
	}
	e.errs = append(e.errs, msg)
}

func (e *RPCError) Error() error {
	return fmt.Errorf("[Solana RPC error] method: %v errors:%+v", e.method, e.errs)
}

// GetAccountData fetch the raw account data at the given address.
// one pass over the configured gateways, no per gateway retry.
// a not found answer is authoritative and stops the pass.
func (b *Bridge) GetAccountData(address solana.PublicKey) ([]byte, error) {
	ctx := context.Background()
	rpcError := &RPCError{[]error{}, "GetAccountInfo"}
	for _, cli := range b.getClients() {
		res, err := cli.GetAccountInfo(ctx, address)
		if err == nil {
			if res.Value == nil {
				return nil, fmt.Errorf("%w: no account at address %v", registry.ErrAccountNotFound, address.String())
			}
			return res.Value.Data, nil
		}
		if errors.Is(err, solanarpc.ErrNotFound) {
			return nil, fmt.Errorf("%w: no account at address %v", registry.ErrAccountNotFound, address.String())
		}
		rpcError.log(err)
	}
	return nil, fmt.Errorf("%w: %v", registry.ErrRPCQueryError, rpcError.Error())
}

// GetLatestBlockNumber returns current finalized block height
func (b *Bridge) GetLatestBlockNumber() (height uint64, err error) {
	ctx := context.Background()
	rpcError := &RPCError{[]error{}, "GetSlot"}
	for _, cli := range b.getClients() {
		res, err := cli.GetSlot(ctx, "")
		if err == nil {
			return uint64(res), nil
		}
		rpcError.log(err)
	}
	return 0, fmt.Errorf("%w: %v", registry.ErrRPCQueryError, rpcError.Error())
}

// GetNodeVersion returns the ledger node software version
func (b *Bridge) GetNodeVersion() (version string, err error) {
	rpcError := &RPCError{[]error{}, "getVersion"}
	for _, rpcURL := range b.getURLs() {
		rpcClient := jsonrpc.NewClient(rpcURL)
		res := &struct {
			SolanaCore string `json:"solana-core"`
		}{}
		err := rpcClient.CallFor(res, "getVersion")
		if err == nil {
			return res.SolanaCore, nil
		}
		rpcError.log(err)
	}
	return "", fmt.Errorf("%w: %v", registry.ErrRPCQueryError, rpcError.Error())
}

// GetGatewayHealth query the plain http health endpoint of every gateway
func (b *Bridge) GetGatewayHealth() map[string]string {
	health := make(map[string]string, len(b.getURLs()))
	for _, rpcURL := range b.getURLs() {
		body, err := client.RPCRawGet(strings.TrimSuffix(rpcURL, "/") + "/health")
		if err != nil {
			health[rpcURL] = "unreachable"
			log.Warn("gateway health query failed", "gateway", rpcURL, "err", err)
			continue
		}
		health[rpcURL] = strings.TrimSpace(body)
	}
	return health
}
