package models

import pkgerrors "github.com/gusau-brt/ticketing-service/pkg/errors"

// Role is the user category a participant registers under. The values are
// stored verbatim in the users table.
type Role string

const (
	RolePrivateTicketAgent Role = "Private Ticket Agent"
	RoleClientPassenger    Role = "Client / Passenger"
	RoleBusConductor       Role = "Bus Conductor"
)

func Roles() []Role {
	return []Role{RolePrivateTicketAgent, RoleClientPassenger, RoleBusConductor}
}

func ParseRole(s string) (Role, error) {
	for _, r := range Roles() {
		if s == string(r) {
			return r, nil
		}
	}
	return "", pkgerrors.ErrInvalidRole
}

type User struct {
	ID        string
	FirstName string
	Role      Role
	Phone     string
	BusStop   string
}
