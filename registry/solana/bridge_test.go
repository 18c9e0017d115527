package solana

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satreg/satellite-gateway/params"
)

func TestInitBridge(t *testing.T) {
	params.SetConfig(&params.GatewayServerConfig{
		Identifier: "test",
		Gateway:    &params.GatewayConfig{APIAddress: []string{"http://127.0.0.1:8899"}},
		Registry:   &params.RegistryConfig{ProgramID: testProgramID},
		APIServer:  &params.APIServerConfig{},
	})
	InitBridge()

	bridge := GetBridge()
	assert.NotNil(t, bridge)
	assert.Equal(t, testProgramID, bridge.ProgramID.String())
	assert.Equal(t, []string{"http://127.0.0.1:8899"}, bridge.GatewayConfig.APIAddress)
}
