package processing

// Compile-time interface compliance checks
// These will cause compilation errors if the types don't implement the interfaces

var (
	_ DashboardBuilder = (*DashboardService)(nil)
	_ DashboardBuilder = (*CachedDashboardService)(nil)
)
