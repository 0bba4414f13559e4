package domain

// Permission is an atomic named capability gating one action.
type Permission string

const (
	PermUserCreate      Permission = "user.create"
	PermUserRead        Permission = "user.read"
	PermUserUpdate      Permission = "user.update"
	PermUserDelete      Permission = "user.delete"
	PermDashboardRead   Permission = "dashboard.read"
	PermPricesRead      Permission = "prices.read"
	PermPricesUpdate    Permission = "prices.update"
	PermLocationsRead   Permission = "locations.read"
	PermLocationsUpdate Permission = "locations.update"
	PermAdminSettings   Permission = "admin.settings"
)

// AllPermissions lists the full catalogue in a stable order.
var AllPermissions = []Permission{
	PermUserCreate,
	PermUserRead,
	PermUserUpdate,
	PermUserDelete,
	PermDashboardRead,
	PermPricesRead,
	PermPricesUpdate,
	PermLocationsRead,
	PermLocationsUpdate,
	PermAdminSettings,
}

// PermissionTable maps each role to the permissions it holds. It is built once
// at startup, passed by reference to every consumer, and never mutated after
// construction. Lookups return copies.
type PermissionTable struct {
	byRole map[Role]map[Permission]struct{}
}

// NewPermissionTable builds the fixed role→permission mapping: admin holds the
// full catalogue, employee the read-mostly subset.
func NewPermissionTable() *PermissionTable {
	grants := map[Role][]Permission{
		RoleAdmin: AllPermissions,
		RoleEmployee: {
			PermDashboardRead,
			PermPricesRead,
			PermLocationsRead,
			PermLocationsUpdate,
		},
	}

	byRole := make(map[Role]map[Permission]struct{}, len(grants))
	for role, perms := range grants {
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		byRole[role] = set
	}
	return &PermissionTable{byRole: byRole}
}

// PermissionsFor returns the permissions held by role, ordered as in
// AllPermissions. An unknown role yields an empty set.
func (t *PermissionTable) PermissionsFor(role Role) []Permission {
	set := t.byRole[role]
	out := make([]Permission, 0, len(set))
	for _, p := range AllPermissions {
		if _, ok := set[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// HasPermission reports whether role holds perm.
func (t *PermissionTable) HasPermission(role Role, perm Permission) bool {
	_, ok := t.byRole[role][perm]
	return ok
}
