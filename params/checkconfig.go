package params

import (
	"errors"

	"github.com/mr-tron/base58"
)

// CheckConfig check config
func CheckConfig() (err error) {
	config := GetConfig()
	if config.Identifier == "" {
		return errors.New("server must config nonempty 'Identifier'")
	}
	if config.Gateway == nil {
		return errors.New("server must config 'Gateway'")
	}
	if len(config.Gateway.APIAddress) == 0 {
		return errors.New("server must config at least one gateway 'APIAddress'")
	}
	if config.Registry == nil {
		return errors.New("server must config 'Registry'")
	}
	if err = checkProgramID(config.Registry.ProgramID); err != nil {
		return err
	}
	if config.APIServer == nil {
		return errors.New("server must config 'APIServer'")
	}
	return nil
}

func checkProgramID(programID string) error {
	if programID == "" {
		return errors.New("registry must config nonempty 'ProgramID'")
	}
	bs, err := base58.Decode(programID)
	if err != nil {
		return errors.New("registry 'ProgramID' is not base58 encoded")
	}
	if len(bs) != 32 {
		return errors.New("registry 'ProgramID' is not a 32 bytes public key")
	}
	return nil
}
