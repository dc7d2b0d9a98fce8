package domain

// SegmentBreakdown is one slice of the guest base grouped by segment label.
type SegmentBreakdown struct {
	Segment    string
	Count      int
	Percentage float64
	AvgSpend   float64
}

// ZoneBreakdown aggregates guest order activity per delivery zone.
type ZoneBreakdown struct {
	Zone          string
	OrderCount    int
	Revenue       float64
	AvgOrderValue float64
}

// CustomerAnalytics is recomputed from the full guest list on every request.
type CustomerAnalytics struct {
	TotalGuests   int
	TotalOrders   int
	TotalRevenue  float64
	AvgOrderValue float64
	Segments      []SegmentBreakdown
	Zones         []ZoneBreakdown
}
