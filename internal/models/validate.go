package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidVehicle = errors.New("invalid vehicle")
	ErrInvalidDriver  = errors.New("invalid driver")
)

var validate = validator.New()

type vehicleRules struct {
	ID        string      `validate:"required"`
	Brand     string      `validate:"required"`
	Kind      VehicleKind `validate:"oneof=car bicycle"`
	EngineHP  float64     `validate:"gte=0"`
	GearCount int         `validate:"gte=0"`
}

type driverRules struct {
	Name string `validate:"required"`
}

// Validate checks that the vehicle has an id and a brand and that its
// horsepower or gear count is not negative. Construction never calls it.
func (v *Vehicle) Validate() error {
	err := validate.Struct(vehicleRules{
		ID:        v.id,
		Brand:     v.brand,
		Kind:      v.kind,
		EngineHP:  v.engineHP,
		GearCount: v.gearCount,
	})
	if err != nil {
		return fmt.Errorf("%w: vin %d: %v", ErrInvalidVehicle, v.vin, err)
	}
	return nil
}

// Validate checks that the driver is named and that an owned vehicle is
// itself valid.
func (d *Driver) Validate() error {
	if err := validate.Struct(driverRules{Name: d.name}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDriver, err)
	}
	if d.vehicle != nil {
		if err := d.vehicle.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDriver, err)
		}
	}
	return nil
}
