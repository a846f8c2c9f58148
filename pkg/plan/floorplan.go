package plan

// FloorPlan is a complete single-story plan: the requested program
// (target square footage, bedroom and bathroom counts, style) together
// with the placed rooms and the computed building envelope.
//
// Bedrooms and Bathrooms record the caller's targets, not counts derived
// from Rooms; the compliance validator compares the two.
type FloorPlan struct {
	// ID identifies one generation request. Empty for plans reconstructed
	// from external data.
	ID string `json:"id,omitempty"`

	TotalSqFt float64 `json:"total_sqft"`
	Rooms     []Room  `json:"rooms"`
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	Floors    int     `json:"floors,omitempty"`

	// Style is a free-form tag; it only selects the allocation table.
	Style string `json:"style,omitempty"`

	// LotWidth and LotDepth are the computed envelope dimensions.
	// Zero when unset.
	LotWidth float64 `json:"lot_width,omitempty"`
	LotDepth float64 `json:"lot_depth,omitempty"`
}

// TotalRoomArea returns the sum of all room areas.
func (p *FloorPlan) TotalRoomArea() float64 {
	var total float64
	for _, r := range p.Rooms {
		total += r.Area
	}
	return total
}

// TotalLivingArea returns the summed area of all rooms except garages and
// storage.
func (p *FloorPlan) TotalLivingArea() float64 {
	var total float64
	for _, r := range p.Rooms {
		if r.Type == Garage || r.Type == Storage {
			continue
		}
		total += r.Area
	}
	return total
}

// EfficiencyRatio returns living area as a percentage of total room area,
// or 0 for an empty plan.
func (p *FloorPlan) EfficiencyRatio() float64 {
	total := p.TotalRoomArea()
	if total == 0 {
		return 0
	}
	return p.TotalLivingArea() / total * 100
}

// RoomCount returns the number of placed rooms.
func (p *FloorPlan) RoomCount() int { return len(p.Rooms) }

// RoomsByType returns all rooms of the given type, in placement order.
func (p *FloorPlan) RoomsByType(t RoomType) []Room {
	var out []Room
	for _, r := range p.Rooms {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

// BedroomRoomCount returns the number of rooms of bedroom kind
// (bedroom plus master bedroom).
func (p *FloorPlan) BedroomRoomCount() int {
	n := 0
	for _, r := range p.Rooms {
		if r.Type.IsBedroom() {
			n++
		}
	}
	return n
}

// BathroomRoomCount returns the number of rooms of bathroom kind.
func (p *FloorPlan) BathroomRoomCount() int {
	n := 0
	for _, r := range p.Rooms {
		if r.Type.IsBathroom() {
			n++
		}
	}
	return n
}

// Bounds returns the bounding box of all placed rooms as
// (minX, minY, maxX, maxY). Returns zeros for an empty plan.
func (p *FloorPlan) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.Rooms) == 0 {
		return 0, 0, 0, 0
	}
	first := p.Rooms[0]
	minX, minY = first.X, first.Y
	maxX, maxY = first.X+first.Width, first.Y+first.Height
	for _, r := range p.Rooms[1:] {
		minX = min(minX, r.X)
		minY = min(minY, r.Y)
		maxX = max(maxX, r.X+r.Width)
		maxY = max(maxY, r.Y+r.Height)
	}
	return minX, minY, maxX, maxY
}
