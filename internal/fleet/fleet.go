// Package fleet holds the registry that owns vehicles until they are
// handed to drivers.
package fleet

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/vehicles/internal/models"
)

var (
	ErrEmptyFleet  = errors.New("fleet is empty")
	ErrNilVehicle  = errors.New("vehicle is nil")
	ErrNilDriver   = errors.New("driver is nil")
	ErrNoVehicle   = errors.New("driver has no vehicle")
	ErrUnknownKind = errors.New("unknown vehicle kind")

	ErrAlreadyOwned = models.ErrAlreadyOwned
)

// Fleet is an ordered collection of vehicles it exclusively owns, along
// with the counter that mints their VINs. The rest of the program only
// sees its vehicles through models.VehicleView.
//
// Fleet is not safe for concurrent use.
type Fleet struct {
	vins     *models.VINCounter
	vehicles []*models.Vehicle
	validate bool
	log      log.FieldLogger
}

// Option configures a Fleet.
type Option func(*Fleet)

// WithVINCounter makes the fleet mint VINs from c, so several fleets can
// share one sequence.
func WithVINCounter(c *models.VINCounter) Option {
	return func(f *Fleet) { f.vins = c }
}

// WithFirstVIN starts a private counter at first.
func WithFirstVIN(first int64) Option {
	return func(f *Fleet) { f.vins = models.NewVINCounter(first) }
}

// WithLogger replaces the standard logrus logger.
func WithLogger(l log.FieldLogger) Option {
	return func(f *Fleet) { f.log = l }
}

// WithValidation rejects vehicles that fail models.Vehicle.Validate.
func WithValidation() Option {
	return func(f *Fleet) { f.validate = true }
}

// New creates an empty fleet. Unless configured otherwise VINs start at 1
// and the fleet logs through logrus.StandardLogger, which writes Info and
// above to stderr. Routine operations are logged at Debug.
func New(opts ...Option) *Fleet {
	f := &Fleet{}
	for _, opt := range opts {
		opt(f)
	}
	if f.vins == nil {
		f.vins = models.NewVINCounter(1)
	}
	if f.log == nil {
		f.log = log.StandardLogger()
	}
	f.log = f.log.WithField("component", "fleet")
	return f
}

// VINs returns the counter the fleet mints VINs from.
func (f *Fleet) VINs() *models.VINCounter { return f.vins }

// AddCar builds a car and adds it to the end of the fleet.
func (f *Fleet) AddCar(id, brand string, engineHP float64) (models.VehicleView, error) {
	v := f.vins.NewCar(id, brand, engineHP)
	if err := f.Add(v); err != nil {
		return nil, err
	}
	return v, nil
}

// AddBicycle builds a bicycle and adds it to the end of the fleet.
func (f *Fleet) AddBicycle(id, brand string, gearCount int) (models.VehicleView, error) {
	v := f.vins.NewBicycle(id, brand, gearCount)
	if err := f.Add(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Add takes ownership of v; the caller hands it over and must not keep
// using it. A vehicle already held by this or another fleet, or by a
// driver, is rejected with ErrAlreadyOwned. A vehicle without a known
// kind is rejected with ErrUnknownKind even when validation is off.
func (f *Fleet) Add(v *models.Vehicle) error {
	if v == nil {
		return fmt.Errorf("add vehicle: %w", ErrNilVehicle)
	}
	if !v.Kind().Valid() {
		f.log.WithField("vin", v.VIN()).Warn("Rejected vehicle without kind")
		return fmt.Errorf("add vehicle %d: %w", v.VIN(), ErrUnknownKind)
	}
	if f.validate {
		if err := v.Validate(); err != nil {
			f.log.WithError(err).WithField("vin", v.VIN()).Warn("Rejected vehicle")
			return fmt.Errorf("add vehicle: %w", err)
		}
	}
	if err := v.Claim(); err != nil {
		f.log.WithField("vin", v.VIN()).Warn("Rejected vehicle with an owner")
		return fmt.Errorf("add vehicle: %w", err)
	}
	f.vehicles = append(f.vehicles, v)
	f.log.WithFields(log.Fields{
		"vin":   v.VIN(),
		"id":    v.ID(),
		"kind":  v.Kind(),
		"brand": v.Brand(),
	}).Debug("Added vehicle")
	return nil
}

// Len returns the number of vehicles the fleet still owns.
func (f *Fleet) Len() int { return len(f.vehicles) }

// Views returns non-owning views of the vehicles in fleet order. The
// slice is fresh, the vehicles behind it are not.
func (f *Fleet) Views() []models.VehicleView {
	views := make([]models.VehicleView, len(f.vehicles))
	for i, v := range f.vehicles {
		views[i] = v
	}
	return views
}

// Filter returns the vehicles matching pred, in fleet order.
func (f *Fleet) Filter(pred Predicate) []models.VehicleView {
	return FilterVehicles(f.Views(), pred)
}

// AssignToDriver moves the first vehicle of the fleet to d. Any vehicle
// d owned before is dropped. On an empty fleet it returns ErrEmptyFleet
// and leaves both the fleet and d untouched.
func (f *Fleet) AssignToDriver(d *models.Driver) error {
	if d == nil {
		return fmt.Errorf("assign vehicle: %w", ErrNilDriver)
	}
	if len(f.vehicles) == 0 {
		f.log.WithField("driver", d.Name()).Warn("No vehicle left to assign")
		return fmt.Errorf("assign vehicle to %s: %w", d.Name(), ErrEmptyFleet)
	}

	v := f.vehicles[0]
	f.vehicles[0] = nil
	f.vehicles = f.vehicles[1:]
	v.Unclaim()

	if prev := d.Vehicle(); prev != nil {
		f.log.WithFields(log.Fields{
			"driver": d.Name(),
			"vin":    prev.VIN(),
		}).Debug("Dropping previously owned vehicle")
	}
	d.AssignVehicle(v)

	f.log.WithFields(log.Fields{
		"driver":    d.Name(),
		"vin":       v.VIN(),
		"remaining": len(f.vehicles),
	}).Debug("Assigned vehicle")
	return nil
}

// Reclaim takes d's vehicle back and appends it to the fleet.
func (f *Fleet) Reclaim(d *models.Driver) error {
	if d == nil {
		return fmt.Errorf("reclaim vehicle: %w", ErrNilDriver)
	}
	if !d.HasVehicle() {
		return fmt.Errorf("reclaim vehicle from %s: %w", d.Name(), ErrNoVehicle)
	}

	v := d.Release()
	if err := v.Claim(); err != nil {
		return fmt.Errorf("reclaim vehicle from %s: %w", d.Name(), err)
	}
	f.vehicles = append(f.vehicles, v)

	f.log.WithFields(log.Fields{
		"driver": d.Name(),
		"vin":    v.VIN(),
	}).Debug("Reclaimed vehicle")
	return nil
}

// String renders the fleet one vehicle per line.
func (f *Fleet) String() string {
	return models.FormatVehicles(f.Views())
}
