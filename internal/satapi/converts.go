package satapi

import (
	"github.com/satreg/satellite-gateway/registry"
)

// ConvertSatelliteToInfo project a decoded satellite record to its api
// form. the padded text fields become clean strings, everything else is
// copied through. one way only, the record is never rebuilt from it.
func ConvertSatelliteToInfo(sat *registry.Satellite) *SatelliteInfo {
	return &SatelliteInfo{
		Owner:           sat.Owner.String(),
		Name:            sat.NameAsString(),
		Country:         sat.CountryAsString(),
		NoradID:         sat.NoradID,
		LaunchDate:      sat.LaunchDate,
		MintDate:        sat.MintDate,
		OrbitType:       sat.OrbitTypeAsString(),
		Inclination:     sat.Inclination,
		Altitude:        sat.Altitude,
		SemiMajorAxis:   sat.SemiMajorAxis,
		Eccentricity:    sat.Eccentricity,
		Raan:            sat.Raan,
		ArgOfPeriapsis:  sat.ArgOfPeriapsis,
		ManeuverType:    sat.ManeuverType,
		OperationStatus: sat.OperationStatus,
	}
}
