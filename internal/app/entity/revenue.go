package entity

// Revenue holds the derived sums over a set of orders: the grand total and
// the totals restricted to each order status.
type Revenue struct {
	Total   float64
	Pending float64
	Confirm float64
	Cancel  float64
}

type StatusCounts struct {
	Pending int
	Confirm int
	Cancel  int
}

type ConsoleCounts struct {
	Advisories int
	Products   int
}
