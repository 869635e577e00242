package domain

// RouteBalance is the outstanding item count attributed to a delivery
// route alongside its return count. Route records are read-only reference
// data for the session; no mutation targets them.
type RouteBalance struct {
	Route    string `json:"route"`
	Balance  int    `json:"balance"`
	Returned int    `json:"returned"`
}
