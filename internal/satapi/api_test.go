package satapi

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/dfuse-io/solana-go"
	"github.com/stretchr/testify/assert"

	"github.com/satreg/satellite-gateway/params"
	"github.com/satreg/satellite-gateway/registry"
)

const (
	testUserAuthority     = "HyxaufyvHjyGcyuWL37PNhdA9eCzJAKopfTHpGUUu8oM"
	testRegistryAuthority = "6rtFUHHduJAvy5urNiVWxPvswE6umAfbeioF17ENocv6"
)

// stubBridge answers with canned account data or a canned error
type stubBridge struct {
	accountData []byte
	fetchErr    error
	fetchCalls  int
}

func (b *stubBridge) DeriveSatelliteAddress(userAuthority, registryAuthority solana.PublicKey, noradID uint64) (solana.PublicKey, byte, error) {
	var address solana.PublicKey
	address[0] = 0xda
	binary.LittleEndian.PutUint64(address[1:9], noradID)
	return address, 255, nil
}

func (b *stubBridge) GetAccountData(address solana.PublicKey) ([]byte, error) {
	b.fetchCalls++
	if b.fetchErr != nil {
		return nil, b.fetchErr
	}
	return b.accountData, nil
}

func (b *stubBridge) GetLatestBlockNumber() (uint64, error) { return 123456, nil }
func (b *stubBridge) GetNodeVersion() (string, error)       { return "1.9.0", nil }
func (b *stubBridge) GetGatewayHealth() map[string]string   { return nil }

func testAccountData(t *testing.T) []byte {
	bs := make([]byte, 0, registry.AccountDiscriminatorSize+registry.SatelliteDataSize)
	bs = append(bs, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88)

	owner, err := solana.PublicKeyFromBase58(testUserAuthority)
	assert.Nil(t, err)
	bs = append(bs, owner[:]...)

	appendText := func(text string) {
		padded, err := registry.EncodePaddedText(text)
		assert.Nil(t, err)
		bs = append(bs, padded[:]...)
	}
	appendU64 := func(val uint64) {
		var u64 [8]byte
		binary.LittleEndian.PutUint64(u64[:], val)
		bs = append(bs, u64[:]...)
	}

	appendText("Sentinel-1")
	appendText("Luxembourg")
	appendU64(42)                 // norad_id
	appendU64(uint64(1396577700)) // launch_date
	appendU64(uint64(1700000000)) // mint_date
	appendText("LEO")
	for _, param := range []float64{98.18, 693.0, 7064.14, 0.0001, 227.3, 90.0} {
		appendU64(math.Float64bits(param))
	}
	bs = append(bs, byte(registry.StationKeeping), byte(registry.Active))
	assert.Equal(t, registry.AccountDiscriminatorSize+registry.SatelliteDataSize, len(bs))
	return bs
}

func TestGetServerInfo(t *testing.T) {
	params.SetConfig(&params.GatewayServerConfig{
		Identifier: "SatelliteGateway",
		Gateway:    &params.GatewayConfig{APIAddress: []string{"http://127.0.0.1:8899"}},
		Registry:   &params.RegistryConfig{ProgramID: testRegistryAuthority},
		APIServer:  &params.APIServerConfig{},
	})
	InitBridge(&stubBridge{})

	info, err := GetServerInfo()
	assert.Nil(t, err)
	assert.Equal(t, params.GetIdentifier(), info.Identifier)
	assert.Equal(t, testRegistryAuthority, info.ProgramID)
	assert.Equal(t, uint64(123456), info.BlockHeight)
	assert.Equal(t, "1.9.0", info.NodeVersion)
}

func TestGetSatellite(t *testing.T) {
	stub := &stubBridge{accountData: testAccountData(t)}
	InitBridge(stub)

	info, err := GetSatellite(testUserAuthority, testRegistryAuthority, "42")
	assert.Nil(t, err)
	assert.Equal(t, "Sentinel-1", info.Name)
	assert.Equal(t, "Luxembourg", info.Country)
	assert.Equal(t, "LEO", info.OrbitType)
	assert.Equal(t, uint64(42), info.NoradID)
	assert.Equal(t, testUserAuthority, info.Owner)
	assert.Equal(t, registry.Active, info.OperationStatus)
	assert.Equal(t, 1, stub.fetchCalls)

	bs, err := json.Marshal(info)
	assert.Nil(t, err)
	assert.Contains(t, string(bs), `"name":"Sentinel-1"`)
	assert.Contains(t, string(bs), `"operation_status":"Active"`)
	assert.Contains(t, string(bs), `"norad_id":42`)
}

func TestGetSatelliteNotFound(t *testing.T) {
	InitBridge(&stubBridge{fetchErr: registry.ErrAccountNotFound})

	_, err := GetSatellite(testUserAuthority, testRegistryAuthority, "42")
	assert.True(t, registry.IsNotFoundError(err))
}

func TestGetSatelliteInvalidInput(t *testing.T) {
	stub := &stubBridge{accountData: testAccountData(t)}
	InitBridge(stub)

	_, err := GetSatellite(testUserAuthority, testRegistryAuthority, "not-a-number")
	assert.True(t, errors.Is(err, registry.ErrInvalidInput))

	_, err = GetSatellite("0OIl", testRegistryAuthority, "42")
	assert.True(t, errors.Is(err, registry.ErrInvalidInput))

	_, err = GetSatellite(testUserAuthority, testRegistryAuthority, "-1")
	assert.True(t, errors.Is(err, registry.ErrInvalidInput))

	// no fetch may happen for rejected input
	assert.Equal(t, 0, stub.fetchCalls)
}

func TestGetSatelliteMalformedAccount(t *testing.T) {
	accountData := testAccountData(t)
	InitBridge(&stubBridge{accountData: accountData[:len(accountData)-10]})

	_, err := GetSatellite(testUserAuthority, testRegistryAuthority, "42")
	assert.True(t, errors.Is(err, registry.ErrMalformedAccountData))
}

func TestGetFruit(t *testing.T) {
	fruits, err := GetAllFruits()
	assert.Nil(t, err)
	assert.Equal(t, 3, len(fruits))

	fruit, err := GetFruit("banana")
	assert.Nil(t, err)
	assert.Equal(t, []string{"potassium", "vitamin B6"}, fruit.Nutrients)
	assert.NotEmpty(t, fruit.ID)

	_, err = GetFruit("durian")
	assert.True(t, registry.IsNotFoundError(err))
}
