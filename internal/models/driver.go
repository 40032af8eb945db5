package models

import "fmt"

// Driver is a named person who exclusively owns at most one vehicle.
type Driver struct {
	name    string
	vehicle *Vehicle
}

// NewDriver creates a driver without a vehicle.
func NewDriver(name string) *Driver {
	return &Driver{name: name}
}

// NewDriverWithVehicle creates a driver that takes ownership of v. The
// caller hands v over and must not give it to anyone else; v should not
// be held by a fleet or another driver.
func NewDriverWithVehicle(name string, v *Vehicle) *Driver {
	d := &Driver{name: name}
	d.AssignVehicle(v)
	return d
}

func (d *Driver) Name() string { return d.name }

// Vehicle returns a read-only view of the owned vehicle, or nil.
func (d *Driver) Vehicle() VehicleView {
	if d.vehicle == nil {
		return nil
	}
	return d.vehicle
}

// HasVehicle reports whether the driver currently owns a vehicle.
func (d *Driver) HasVehicle() bool { return d.vehicle != nil }

// AssignVehicle replaces the owned vehicle with v. The previous vehicle,
// if any, is dropped and becomes unowned. A nil v clears ownership. Like
// NewDriverWithVehicle, the caller hands v over.
func (d *Driver) AssignVehicle(v *Vehicle) {
	if d.vehicle == v {
		return
	}
	if d.vehicle != nil {
		d.vehicle.Unclaim()
	}
	d.vehicle = v
	if v != nil {
		v.owned = true
	}
}

// Release gives up ownership of the vehicle and returns it, or nil.
func (d *Driver) Release() *Vehicle {
	v := d.vehicle
	d.vehicle = nil
	if v != nil {
		v.Unclaim()
	}
	return v
}

// MoveFrom makes d a copy of src that takes over src's vehicle. Whatever
// d owned before is dropped and src is left without a vehicle.
func (d *Driver) MoveFrom(src *Driver) {
	if src == nil || src == d {
		return
	}
	d.name = src.name
	d.AssignVehicle(src.Release())
}

// String renders the driver as Driver[name=Ann, vehicle=<vehicle>] or
// Driver[name=Ann, vehicle=<none>].
func (d *Driver) String() string {
	vehicle := "<none>"
	if d.vehicle != nil {
		vehicle = d.vehicle.String()
	}
	return fmt.Sprintf("Driver[name=%s, vehicle=%s]", d.name, vehicle)
}
