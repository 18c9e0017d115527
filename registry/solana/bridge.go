package solana

import (
	"github.com/dfuse-io/solana-go"

	"github.com/satreg/satellite-gateway/log"
	"github.com/satreg/satellite-gateway/params"
)

// Bridge solana ledger bridge
type Bridge struct {
	GatewayConfig *params.GatewayConfig
	ProgramID     solana.PublicKey
}

var bridgeInstance *Bridge

// NewBridge new bridge
func NewBridge(gateway *params.GatewayConfig, programID solana.PublicKey) *Bridge {
	return &Bridge{
		GatewayConfig: gateway,
		ProgramID:     programID,
	}
}

// InitBridge init the process wide bridge from loaded config
func InitBridge() {
	config := params.GetConfig()
	programID, err := solana.PublicKeyFromBase58(config.Registry.ProgramID)
	if err != nil {
		log.Fatal("init bridge with wrong program id", "programID", config.Registry.ProgramID, "err", err)
	}
	bridgeInstance = NewBridge(config.Gateway, programID)
	log.Info("init bridge finished", "programID", programID.String(), "gateways", config.Gateway.APIAddress)
}

// GetBridge get the process wide bridge
func GetBridge() *Bridge {
	return bridgeInstance
}
