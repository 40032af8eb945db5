package models

import (
	"errors"
	"fmt"
)

// ErrAlreadyOwned is returned when claiming a vehicle that has an owner.
var ErrAlreadyOwned = errors.New("vehicle already has an owner")

// VehicleKind tags the variant of a Vehicle.
type VehicleKind string

const (
	KindCar     VehicleKind = "car"
	KindBicycle VehicleKind = "bicycle"
)

// bicycleSpeedPerGear is the max speed contributed by each gear.
const bicycleSpeedPerGear = 3

// VehicleView is the read-only capability set of a vehicle. It is what
// non-owning code (filters, drivers' lookups, renderers) gets to see.
type VehicleView interface {
	VIN() int64
	ID() string
	Brand() string
	Kind() VehicleKind
	MaxSpeed() float64
	String() string
}

// Valid reports whether k is one of the known variants.
func (k VehicleKind) Valid() bool {
	return k == KindCar || k == KindBicycle
}

// Vehicle is either a car or a bicycle. Build one with VINCounter.NewCar
// or VINCounter.NewBicycle; a zero Vehicle has no kind and is rejected by
// the fleet.
type Vehicle struct {
	vin       int64
	id        string
	brand     string
	kind      VehicleKind
	engineHP  float64 // cars only
	gearCount int     // bicycles only
	owned     bool
}

// IsNil reports whether v is nil, including a nil *Vehicle held in the
// interface.
func IsNil(v VehicleView) bool {
	if v == nil {
		return true
	}
	p, ok := v.(*Vehicle)
	return ok && p == nil
}

// VIN returns the identifier drawn at construction.
func (v *Vehicle) VIN() int64 { return v.vin }

// ID returns the caller supplied identifier. It is not guaranteed unique.
func (v *Vehicle) ID() string { return v.id }

func (v *Vehicle) Brand() string { return v.brand }

func (v *Vehicle) Kind() VehicleKind { return v.kind }

// EngineHP returns the engine horsepower of a car, zero for bicycles.
func (v *Vehicle) EngineHP() float64 { return v.engineHP }

// GearCount returns the number of gears of a bicycle, zero for cars.
func (v *Vehicle) GearCount() int { return v.gearCount }

// MaxSpeed returns the engine horsepower for a car, used directly as a
// speed proxy, and three times the gear count for a bicycle. A nil
// vehicle has no speed.
func (v *Vehicle) MaxSpeed() float64 {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindCar:
		return v.engineHP
	case KindBicycle:
		return float64(v.gearCount * bicycleSpeedPerGear)
	default:
		return 0
	}
}

// Owned reports whether a fleet or a driver currently holds v.
func (v *Vehicle) Owned() bool { return v.owned }

// Claim marks v as held by the caller. It fails with ErrAlreadyOwned if
// someone else holds it.
func (v *Vehicle) Claim() error {
	if v.owned {
		return fmt.Errorf("vin %d: %w", v.vin, ErrAlreadyOwned)
	}
	v.owned = true
	return nil
}

// Unclaim gives up the hold taken by Claim.
func (v *Vehicle) Unclaim() { v.owned = false }

// Clone returns a new, unowned vehicle with the same attributes and a
// fresh VIN drawn from vins. A plain value copy keeps the VIN instead and
// stands for the same vehicle.
func (v *Vehicle) Clone(vins *VINCounter) *Vehicle {
	c := *v
	c.vin = vins.Next()
	c.owned = false
	return &c
}

// String renders the vehicle as
// Car[id=A1, brand=Audi, vin=3, max_speed=120.00].
func (v *Vehicle) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s[id=%s, brand=%s, vin=%d, max_speed=%.2f]",
		v.kind.label(), v.id, v.brand, v.vin, v.MaxSpeed())
}

func (k VehicleKind) label() string {
	switch k {
	case KindCar:
		return "Car"
	case KindBicycle:
		return "Bicycle"
	default:
		return "Vehicle"
	}
}
