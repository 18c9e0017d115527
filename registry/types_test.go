package registry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumJSONNames(t *testing.T) {
	bs, err := json.Marshal(Active)
	assert.Nil(t, err)
	assert.Equal(t, `"Active"`, string(bs))

	bs, err = json.Marshal(Offline)
	assert.Nil(t, err)
	assert.Equal(t, `"Offline"`, string(bs))

	bs, err = json.Marshal(StationKeeping)
	assert.Nil(t, err)
	assert.Equal(t, `"StationKeeping"`, string(bs))

	bs, err = json.Marshal(Desaturation)
	assert.Nil(t, err)
	assert.Equal(t, `"Desaturation"`, string(bs))

	_, err = json.Marshal(OperationStatus(3))
	assert.NotNil(t, err)
	_, err = json.Marshal(ManeuverType(8))
	assert.NotNil(t, err)
}

func TestEnumString(t *testing.T) {
	assert.Equal(t, "Maintenance", Maintenance.String())
	assert.Equal(t, "CollisionAvoidance", CollisionAvoidance.String())
	assert.Equal(t, "OperationStatus(9)", OperationStatus(9).String())
	assert.Equal(t, "ManeuverType(200)", ManeuverType(200).String())
}
