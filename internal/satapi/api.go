package satapi

import (
	"fmt"
	"strconv"

	"github.com/dfuse-io/solana-go"

	"github.com/satreg/satellite-gateway/log"
	"github.com/satreg/satellite-gateway/params"
	"github.com/satreg/satellite-gateway/registry"
	solanabridge "github.com/satreg/satellite-gateway/registry/solana"
)

// LedgerBridge is the ledger capability the api depends on.
// any implementation is substitutable, tests use a stub.
type LedgerBridge interface {
	DeriveSatelliteAddress(userAuthority, registryAuthority solana.PublicKey, noradID uint64) (solana.PublicKey, byte, error)
	GetAccountData(address solana.PublicKey) ([]byte, error)
	GetLatestBlockNumber() (uint64, error)
	GetNodeVersion() (string, error)
	GetGatewayHealth() map[string]string
}

var ledger LedgerBridge

// InitBridge set the ledger bridge used by the api
func InitBridge(b LedgerBridge) {
	ledger = b
}

// GetServerInfo api
func GetServerInfo() (*ServerInfo, error) {
	log.Debug("[api] receive GetServerInfo")
	config := params.GetConfig()
	if config == nil {
		return nil, nil
	}
	info := &ServerInfo{
		Identifier: params.GetIdentifier(),
		Version:    params.VersionWithMeta,
		ProgramID:  config.Registry.ProgramID,
		Gateways:   config.Gateway.APIAddress,
	}
	// gateway facts are informational, the endpoint answers without them
	if height, err := ledger.GetLatestBlockNumber(); err == nil {
		info.BlockHeight = height
	}
	if version, err := ledger.GetNodeVersion(); err == nil {
		info.NodeVersion = version
	}
	info.GatewayHealth = ledger.GetGatewayHealth()
	return info, nil
}

// GetVersionInfo api
func GetVersionInfo() (string, error) {
	log.Debug("[api] receive GetVersionInfo")
	return params.VersionWithMeta, nil
}

// GetSatellite derive the satellite account of the authorities and norad
// id, fetch it from the ledger and decode it to its api form.
func GetSatellite(userAuthority, registryAuthority, noradIDStr string) (*SatelliteInfo, error) {
	log.Debug("[api] receive GetSatellite", "userAuthority", userAuthority, "registryAuthority", registryAuthority, "noradID", noradIDStr)

	userKey, err := solanabridge.ParsePublicKey(userAuthority)
	if err != nil {
		log.Warn("invalid user authority", "userAuthority", userAuthority, "err", err)
		return nil, err
	}
	registryKey, err := solanabridge.ParsePublicKey(registryAuthority)
	if err != nil {
		log.Warn("invalid registry authority", "registryAuthority", registryAuthority, "err", err)
		return nil, err
	}
	noradID, err := strconv.ParseUint(noradIDStr, 10, 64)
	if err != nil {
		log.Warn("invalid norad id", "noradID", noradIDStr, "err", err)
		return nil, fmt.Errorf("%w: invalid norad id '%v': %v", registry.ErrInvalidInput, noradIDStr, err)
	}

	address, bump, err := ledger.DeriveSatelliteAddress(userKey, registryKey, noradID)
	if err != nil {
		log.Error("derive satellite address failed", "noradID", noradID, "err", err)
		return nil, fmt.Errorf("derive satellite address failed: %v", err)
	}
	log.Info("derived satellite account", "address", address.String(), "bump", bump, "noradID", noradID)

	data, err := ledger.GetAccountData(address)
	if err != nil {
		log.Warn("fetch satellite account failed", "address", address.String(), "err", err)
		return nil, err
	}

	sat, err := registry.DecodeSatelliteAccount(data)
	if err != nil {
		log.Error("decode satellite account failed", "address", address.String(), "dataLength", len(data), "err", err)
		return nil, err
	}
	if sat.NoradID != noradID {
		// stored record disagrees with the derivation input, serve it
		// anyway but leave a diagnostic trail
		log.Warn("satellite norad id mismatch", "address", address.String(), "requested", noradID, "stored", sat.NoradID)
	}
	return ConvertSatelliteToInfo(sat), nil
}

// GenerateKeypair create a new random keypair, the secret is returned
// base58 encoded and never stored.
func GenerateKeypair() (*GeneratedKeypair, error) {
	log.Debug("[api] receive GenerateKeypair")
	pub, priv, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate keypair failed: %v", err)
	}
	return &GeneratedKeypair{
		Pubkey:    pub.String(),
		SecretKey: priv.String(),
	}, nil
}
