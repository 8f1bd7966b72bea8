package models

// Role is a builder category tag drawn from a fixed enumeration.
type Role string

const (
	RoleDeveloper      Role = "Developer"
	RoleDesigner       Role = "Designer"
	RoleFounder        Role = "Founder"
	RoleProductManager Role = "Product Manager"
	RoleCommunity      Role = "Community"
	RoleMarketer       Role = "Marketer"
	RoleInvestor       Role = "Investor"
	RoleWriter         Role = "Writer"
)

// AllRoles lists the enumeration in presentation order.
var AllRoles = []Role{
	RoleDeveloper,
	RoleDesigner,
	RoleFounder,
	RoleProductManager,
	RoleCommunity,
	RoleMarketer,
	RoleInvestor,
	RoleWriter,
}

// RoleColors maps each role to its fixed tag color classes.
var RoleColors = map[Role]string{
	RoleDeveloper:      "bg-blue-100 text-blue-800",
	RoleDesigner:       "bg-purple-100 text-purple-800",
	RoleFounder:        "bg-amber-100 text-amber-800",
	RoleProductManager: "bg-green-100 text-green-800",
	RoleCommunity:      "bg-pink-100 text-pink-800",
	RoleMarketer:       "bg-orange-100 text-orange-800",
	RoleInvestor:       "bg-emerald-100 text-emerald-800",
	RoleWriter:         "bg-slate-100 text-slate-800",
}

// IsValid reports whether r belongs to the fixed enumeration.
func (r Role) IsValid() bool {
	_, ok := RoleColors[r]
	return ok
}

// Color returns the fixed tag color for the role.
func (r Role) Color() string {
	return RoleColors[r]
}
