package models

// VINCounter mints vehicle identification numbers. Values are handed out
// in increasing order starting at the first value given to
// NewVINCounter; there is no way to reset it. The zero value starts at 0.
//
// VINCounter is not safe for concurrent use.
type VINCounter struct {
	next int64
}

// NewVINCounter creates a counter whose first VIN is first.
func NewVINCounter(first int64) *VINCounter {
	return &VINCounter{next: first}
}

// Next returns the next VIN and advances the counter.
func (c *VINCounter) Next() int64 {
	vin := c.next
	c.next++
	return vin
}

// Peek returns the VIN the next construction will receive.
func (c *VINCounter) Peek() int64 { return c.next }

// NewCar builds a car whose max speed is its engine horsepower.
func (c *VINCounter) NewCar(id, brand string, engineHP float64) *Vehicle {
	return &Vehicle{
		vin:      c.Next(),
		id:       id,
		brand:    brand,
		kind:     KindCar,
		engineHP: engineHP,
	}
}

// NewBicycle builds a bicycle whose max speed is three times its gear count.
func (c *VINCounter) NewBicycle(id, brand string, gearCount int) *Vehicle {
	return &Vehicle{
		vin:       c.Next(),
		id:        id,
		brand:     brand,
		kind:      KindBicycle,
		gearCount: gearCount,
	}
}
