package access

import "strings"

func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// CanManageCatalog mirrors the storefront rule: astrologers and admins see
// the admin variant of the package grid.
func (r Role) CanManageCatalog() bool {
	return r.In(CatalogManagers...)
}

func (r Role) In(roles ...Role) bool {
	for _, x := range roles {
		if r == x {
			return true
		}
	}
	return false
}
