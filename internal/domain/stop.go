package domain

// Coordinate is a geographic point in floating-point degrees.
type Coordinate struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// Stop is a single delivery location. Name, Address, Locality and
// PackageCount are opaque payload: the optimization core never reads them,
// they are carried through for presentation only.
type Stop struct {
	ID           int     `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Address      string  `json:"address" db:"address"`
	Locality     string  `json:"locality" db:"locality"`
	Lat          float64 `json:"lat" db:"lat"`
	Lon          float64 `json:"lon" db:"lon"`
	PackageCount int     `json:"package_count" db:"package_count"`
	IsDepot      bool    `json:"is_depot" db:"is_depot"`
}

// Tour is an ordered visiting sequence of stop indices. A valid tour is
// closed: it starts and ends at the depot index and visits every other
// index exactly once in between.
type Tour []int

// Clone returns an independent copy so improvers never mutate a caller's tour.
func (t Tour) Clone() Tour {
	out := make(Tour, len(t))
	copy(out, t)
	return out
}
