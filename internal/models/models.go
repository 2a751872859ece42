package models

// Role is a user's access tier. Only admin unlocks the /admin routes;
// the other tiers are recorded but not ranked.
type Role string

const (
	RoleGuest  Role = "guest"
	RoleUser   Role = "user"
	RoleAdmin  Role = "admin"
	RoleSystem Role = "system"
)

// Plan is the service tier selected for a host.
type Plan string

const (
	PlanDemo   Plan = "demo"
	PlanYearly Plan = "yearly"
)

// Valid reports whether p is one of the known plans.
func (p Plan) Valid() bool {
	return p == PlanDemo || p == PlanYearly
}

// HostStatus is the lifecycle state of a host record.
// pending -> active -> expiring -> disabled; archived is reachable from
// any state via admin action and is terminal.
type HostStatus string

const (
	StatusPending  HostStatus = "pending"
	StatusActive   HostStatus = "active"
	StatusExpiring HostStatus = "expiring"
	StatusDisabled HostStatus = "disabled"
	StatusArchived HostStatus = "archived"
)
