package models

import "strings"

// VehicleSeparator separates vehicles rendered by FormatVehicles.
const VehicleSeparator = "\n"

// FormatVehicles renders each vehicle in order, one per line. Nil
// entries are skipped.
func FormatVehicles(vehicles []VehicleView) string {
	parts := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		if IsNil(v) {
			continue
		}
		parts = append(parts, v.String())
	}
	return strings.Join(parts, VehicleSeparator)
}
