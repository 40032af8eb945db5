package models

// Location is a point given by latitude and longitude in degrees.
type Location struct {
	Lat float64
	Lon float64
}
