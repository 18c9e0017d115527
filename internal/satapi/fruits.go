package satapi

import (
	"fmt"

	"github.com/pborman/uuid"

	"github.com/satreg/satellite-gateway/log"
	"github.com/satreg/satellite-gateway/registry"
)

// fixed in-memory listing, kept from the first version of this service
var allFruits = []*Fruit{
	newFruit("banana", "potassium", "vitamin B6"),
	newFruit("apple", "fiber", "vitamin C"),
	newFruit("orange", "vitamin C", "folate"),
}

func newFruit(name string, nutrients ...string) *Fruit {
	return &Fruit{
		Name:      name,
		Nutrients: nutrients,
		ID:        uuid.NewRandom().String(),
	}
}

// GetAllFruits api
func GetAllFruits() ([]*Fruit, error) {
	log.Debug("[api] receive GetAllFruits")
	return allFruits, nil
}

// GetFruit api
func GetFruit(name string) (*Fruit, error) {
	log.Debug("[api] receive GetFruit", "name", name)
	for _, fruit := range allFruits {
		if fruit.Name == name {
			return fruit, nil
		}
	}
	return nil, fmt.Errorf("%w: fruit '%v'", registry.ErrNotFound, name)
}
