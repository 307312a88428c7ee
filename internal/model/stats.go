package model

// DashboardStats is the role-shaped dashboard payload. Revenue and active-trip
// figures are role-keyed constants (no trip or revenue ledger exists). The
// count fields are pointers so they are omitted entirely for non-owner roles.
type DashboardStats struct {
	TotalRevenue      string `json:"totalRevenue"`
	ActiveTrips       int    `json:"activeTrips"`
	TotalDrivers      *int   `json:"totalDrivers,omitempty"`
	TotalUsers        *int   `json:"totalUsers,omitempty"`
	TotalVehicles     *int   `json:"totalVehicles,omitempty"`
	AvailableVehicles *int   `json:"availableVehicles,omitempty"`
	InUseVehicles     *int   `json:"inUseVehicles,omitempty"`
}
