package registry

import (
	"encoding/binary"
	"fmt"

	bin "github.com/dfuse-io/binary"
)

// DecodeSatelliteAccount decode raw account data fetched from the ledger
// into a Satellite record. The data must carry the 8 bytes account
// discriminator followed by exactly SatelliteDataSize payload bytes,
// matching the registry program's serialization bit for bit.
func DecodeSatelliteAccount(data []byte) (*Satellite, error) {
	if len(data) < AccountDiscriminatorSize {
		return nil, fmt.Errorf("%w: account data length %v is shorter than discriminator", ErrMalformedAccountData, len(data))
	}
	return DecodeSatellite(data[AccountDiscriminatorSize:])
}

// DecodeSatellite decode a satellite payload with the discriminator
// already stripped.
func DecodeSatellite(data []byte) (*Satellite, error) {
	if len(data) != SatelliteDataSize {
		return nil, fmt.Errorf("%w: payload length is %v, want %v", ErrMalformedAccountData, len(data), SatelliteDataSize)
	}

	sat := &Satellite{}
	decoder := bin.NewDecoder(data)

	if err := decoder.Decode(&sat.Owner); err != nil {
		return nil, decodeFieldError("owner", err)
	}
	if err := decoder.Decode(&sat.Name); err != nil {
		return nil, decodeFieldError("name", err)
	}
	if err := decoder.Decode(&sat.Country); err != nil {
		return nil, decodeFieldError("country", err)
	}

	var err error
	if sat.NoradID, err = decoder.ReadUint64(binary.LittleEndian); err != nil {
		return nil, decodeFieldError("norad_id", err)
	}
	if sat.LaunchDate, err = decoder.ReadInt64(binary.LittleEndian); err != nil {
		return nil, decodeFieldError("launch_date", err)
	}
	if sat.MintDate, err = decoder.ReadInt64(binary.LittleEndian); err != nil {
		return nil, decodeFieldError("mint_date", err)
	}

	if err := decoder.Decode(&sat.OrbitType); err != nil {
		return nil, decodeFieldError("orbit_type", err)
	}

	if sat.Inclination, err = decoder.ReadFloat64(binary.LittleEndian); err != nil {
		return nil, decodeFieldError("inclination", err)
	}
	if sat.Altitude, err = decoder.ReadFloat64(binary.LittleEndian); err != nil {
		return nil, decodeFieldError("altitude", err)
	}
	if sat.SemiMajorAxis, err = decoder.ReadFloat64(binary.LittleEndian); err != nil {
		return nil, decodeFieldError("semi_major_axis", err)
	}
	if sat.Eccentricity, err = decoder.ReadFloat64(binary.LittleEndian); err != nil {
		return nil, decodeFieldError("eccentricity", err)
	}
	if sat.Raan, err = decoder.ReadFloat64(binary.LittleEndian); err != nil {
		return nil, decodeFieldError("raan", err)
	}
	if sat.ArgOfPeriapsis, err = decoder.ReadFloat64(binary.LittleEndian); err != nil {
		return nil, decodeFieldError("arg_of_periapsis", err)
	}

	maneuver, err := decoder.ReadByte()
	if err != nil {
		return nil, decodeFieldError("maneuver_type", err)
	}
	sat.ManeuverType = ManeuverType(maneuver)
	if !sat.ManeuverType.IsValid() {
		return nil, fmt.Errorf("%w: maneuver type variant %v out of range", ErrMalformedAccountData, maneuver)
	}

	status, err := decoder.ReadByte()
	if err != nil {
		return nil, decodeFieldError("operation_status", err)
	}
	sat.OperationStatus = OperationStatus(status)
	if !sat.OperationStatus.IsValid() {
		return nil, fmt.Errorf("%w: operation status variant %v out of range", ErrMalformedAccountData, status)
	}

	return sat, nil
}

func decodeFieldError(field string, err error) error {
	return fmt.Errorf("%w: decode field '%v' failed: %v", ErrMalformedAccountData, field, err)
}
