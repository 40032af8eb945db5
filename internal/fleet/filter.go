package fleet

import "github.com/ukydev/vehicles/internal/models"

// Predicate selects vehicles. It should be a pure function of the view;
// FilterVehicles calls it once per vehicle, in order.
type Predicate func(models.VehicleView) bool

// FilterVehicles returns the vehicles for which pred holds, keeping their
// original order. A nil pred matches nothing and nil vehicles are skipped
// without calling pred. The result is never nil.
func FilterVehicles(vehicles []models.VehicleView, pred Predicate) []models.VehicleView {
	out := make([]models.VehicleView, 0, len(vehicles))
	if pred == nil {
		return out
	}
	for _, v := range vehicles {
		if models.IsNil(v) {
			continue
		}
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// FasterThan matches vehicles whose max speed is strictly above speed.
func FasterThan(speed float64) Predicate {
	return func(v models.VehicleView) bool { return v.MaxSpeed() > speed }
}

// OfKind matches vehicles of the given kind.
func OfKind(kind models.VehicleKind) Predicate {
	return func(v models.VehicleView) bool { return v.Kind() == kind }
}

// OfBrand matches vehicles of the given brand.
func OfBrand(brand string) Predicate {
	return func(v models.VehicleView) bool { return v.Brand() == brand }
}

// All matches vehicles satisfying every predicate.
func All(preds ...Predicate) Predicate {
	return func(v models.VehicleView) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}
