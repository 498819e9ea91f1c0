package entity

import "github.com/sangkips/snacksbunk-pos/internal/domain/enum"

// Principal is the authenticated operator of a request
type Principal struct {
	Username string    `json:"username"`
	Role     enum.Role `json:"role"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == enum.RoleAdmin
}
