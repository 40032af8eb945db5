// Package travel estimates how long a vehicle needs to cover a distance.
package travel

import (
	"errors"
	"fmt"
	"math"

	"github.com/ukydev/vehicles/internal/models"
)

var (
	ErrZeroMaxSpeed = errors.New("vehicle max speed is zero")
	ErrNilVehicle   = errors.New("vehicle is nil")

	ErrNonFiniteDuration = errors.New("travel duration is not finite")
)

// MinTravelDuration returns distance divided by the vehicle's max speed,
// in hours when distance is in kilometres. Negative inputs are not
// rejected, but a result that is NaN or infinite is reported as
// ErrNonFiniteDuration.
func MinTravelDuration(distance float64, v models.VehicleView) (float64, error) {
	if models.IsNil(v) {
		return 0, fmt.Errorf("min travel duration: %w", ErrNilVehicle)
	}
	speed := v.MaxSpeed()
	if speed == 0 {
		return 0, fmt.Errorf("min travel duration for vin %d: %w", v.VIN(), ErrZeroMaxSpeed)
	}
	d := distance / speed
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("min travel duration for vin %d: %w", v.VIN(), ErrNonFiniteDuration)
	}
	return d, nil
}

// MinTravelDurationString formats MinTravelDuration as "2.00 h".
func MinTravelDurationString(distance float64, v models.VehicleView) (string, error) {
	d, err := MinTravelDuration(distance, v)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.2f h", d), nil
}
