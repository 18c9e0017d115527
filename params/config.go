package params

import (
	"encoding/json"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/satreg/satellite-gateway/log"
)

const (
	defaultAPIPort = 11556
)

var (
	gatewayConfig     *GatewayServerConfig
	loadConfigStarter sync.Once
)

// GatewayServerConfig config items (decode from toml file)
type GatewayServerConfig struct {
	Identifier string
	Gateway    *GatewayConfig
	Registry   *RegistryConfig
	APIServer  *APIServerConfig
}

// GatewayConfig remote ledger node config
type GatewayConfig struct {
	APIAddress []string
}

// RegistryConfig satellite registry program config
type RegistryConfig struct {
	ProgramID string
}

// APIServerConfig api service config
type APIServerConfig struct {
	Port           int      `toml:",omitempty" json:",omitempty"`
	AllowedOrigins []string `toml:",omitempty" json:",omitempty"`
}

// GetConfig get gateway server config
func GetConfig() *GatewayServerConfig {
	return gatewayConfig
}

// SetConfig set gateway server config (used in testing)
func SetConfig(config *GatewayServerConfig) {
	gatewayConfig = config
}

// GetAPIPort get api service port
func GetAPIPort() int {
	apiPort := GetConfig().APIServer.Port
	if apiPort == 0 {
		apiPort = defaultAPIPort
	}
	return apiPort
}

// GetIdentifier get identifier
func GetIdentifier() string {
	return GetConfig().Identifier
}

// LoadConfig load config only once
func LoadConfig(configFile string, isCheck bool) *GatewayServerConfig {
	loadConfigStarter.Do(func() {
		if configFile == "" {
			log.Fatalf("LoadConfig error: no config file specified")
		}
		log.Println("LoadConfig Config file is", configFile)

		config := &GatewayServerConfig{}
		if _, err := toml.DecodeFile(configFile, &config); err != nil {
			log.Fatalf("LoadConfig error (toml DecodeFile): %v", err)
		}

		gatewayConfig = config

		var bs []byte
		if log.JSONFormat {
			bs, _ = json.Marshal(config)
		} else {
			bs, _ = json.MarshalIndent(config, "", "  ")
		}
		log.Println("LoadConfig finished.", string(bs))

		if isCheck {
			if err := CheckConfig(); err != nil {
				log.Fatalf("Check config failed. %v", err)
			}
		}
	})
	return gatewayConfig
}
