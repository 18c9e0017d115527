package satapi

import (
	"github.com/satreg/satellite-gateway/registry"
)

// ServerInfo server info
type ServerInfo struct {
	Identifier    string
	Version       string
	ProgramID     string
	Gateways      []string
	BlockHeight   uint64            `json:",omitempty"`
	NodeVersion   string            `json:",omitempty"`
	GatewayHealth map[string]string `json:",omitempty"`
}

// SatelliteInfo is the api projection of a decoded satellite record.
// field names follow the registry program's serialization.
type SatelliteInfo struct {
	Owner           string                   `json:"owner"`
	Name            string                   `json:"name"`
	Country         string                   `json:"country"`
	NoradID         uint64                   `json:"norad_id"`
	LaunchDate      int64                    `json:"launch_date"`
	MintDate        int64                    `json:"mint_date"`
	OrbitType       string                   `json:"orbit_type"`
	Inclination     float64                  `json:"inclination"`
	Altitude        float64                  `json:"altitude"`
	SemiMajorAxis   float64                  `json:"semi_major_axis"`
	Eccentricity    float64                  `json:"eccentricity"`
	Raan            float64                  `json:"raan"`
	ArgOfPeriapsis  float64                  `json:"arg_of_periapsis"`
	ManeuverType    registry.ManeuverType    `json:"maneuver_type"`
	OperationStatus registry.OperationStatus `json:"operation_status"`
}

// Fruit static listing entry
type Fruit struct {
	Name      string   `json:"name"`
	Nutrients []string `json:"nutrients"`
	ID        string   `json:"id,omitempty"`
}

// GeneratedKeypair new random keypair
type GeneratedKeypair struct {
	Pubkey    string `json:"pubkey"`
	SecretKey string `json:"secret_key"`
}
