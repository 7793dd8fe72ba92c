package access

type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleAstrologer Role = "astrologer"
)

// CatalogManagers may create, edit and delete services and home content.
var CatalogManagers = []Role{RoleAdmin, RoleAstrologer}
