package registry

import (
	"fmt"

	"github.com/dfuse-io/solana-go"
)

// account data layout constants
const (
	// AccountDiscriminatorSize is the length of the discriminator prefixed
	// to every account the registry program owns. It must be skipped
	// before decoding the satellite payload.
	AccountDiscriminatorSize = 8

	// SatelliteDataSize is the exact byte length of a serialized
	// Satellite record (after the discriminator).
	// owner(32) + name(34) + country(34) + norad_id(8) + launch_date(8) +
	// mint_date(8) + orbit_type(34) + 6 orbital f64 params(48) +
	// maneuver_type(1) + operation_status(1)
	SatelliteDataSize = 32 + PaddedTextSize*3 + 8 + 8 + 8 + 6*8 + 1 + 1
)

// Satellite is the decoded on-chain satellite record. The three text
// fields keep their padded wire form, use the *AsString accessors or
// convert to SatelliteInfo for clean strings.
type Satellite struct {
	Owner           solana.PublicKey
	Name            PaddedText
	Country         PaddedText
	NoradID         uint64
	LaunchDate      int64
	MintDate        int64
	OrbitType       PaddedText
	Inclination     float64
	Altitude        float64
	SemiMajorAxis   float64
	Eccentricity    float64
	Raan            float64
	ArgOfPeriapsis  float64
	ManeuverType    ManeuverType
	OperationStatus OperationStatus
}

// NameAsString returns the satellite name as clean string
func (s *Satellite) NameAsString() string {
	return s.Name.String()
}

// CountryAsString returns the satellite country as clean string
func (s *Satellite) CountryAsString() string {
	return s.Country.String()
}

// OrbitTypeAsString returns the satellite orbit type as clean string
func (s *Satellite) OrbitTypeAsString() string {
	return s.OrbitType.String()
}

// ManeuverType satellite maneuver type.
// wire encoding is the 1 byte variant index in declaration order.
type ManeuverType uint8

// maneuver type variants
const (
	StationKeeping ManeuverType = iota
	OrbitRaising
	OrbitLowering
	InclinationChange
	PhaseAdjustment
	CollisionAvoidance
	EndOfLife
	Desaturation

	maneuverTypeCount = iota
)

var maneuverTypeNames = [maneuverTypeCount]string{
	"StationKeeping",
	"OrbitRaising",
	"OrbitLowering",
	"InclinationChange",
	"PhaseAdjustment",
	"CollisionAvoidance",
	"EndOfLife",
	"Desaturation",
}

// IsValid return true if the variant is in range
func (m ManeuverType) IsValid() bool {
	return uint8(m) < maneuverTypeCount
}

func (m ManeuverType) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("ManeuverType(%d)", uint8(m))
	}
	return maneuverTypeNames[m]
}

// MarshalJSON output the variant name like the registry program does
func (m ManeuverType) MarshalJSON() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: maneuver type %v out of range", ErrMalformedAccountData, uint8(m))
	}
	return []byte(`"` + maneuverTypeNames[m] + `"`), nil
}

// OperationStatus satellite operation status.
// wire encoding is the 1 byte variant index in declaration order.
type OperationStatus uint8

// operation status variants
const (
	Active OperationStatus = iota
	Maintenance
	Offline

	operationStatusCount = iota
)

var operationStatusNames = [operationStatusCount]string{
	"Active",
	"Maintenance",
	"Offline",
}

// IsValid return true if the variant is in range
func (s OperationStatus) IsValid() bool {
	return uint8(s) < operationStatusCount
}

func (s OperationStatus) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("OperationStatus(%d)", uint8(s))
	}
	return operationStatusNames[s]
}

// MarshalJSON output the variant name like the registry program does
func (s OperationStatus) MarshalJSON() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: operation status %v out of range", ErrMalformedAccountData, uint8(s))
	}
	return []byte(`"` + operationStatusNames[s] + `"`), nil
}
