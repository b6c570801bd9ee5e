package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso da aplicação. O role define qual variante de rubrica
// o usuário utiliza e qual dashboard ele enxerga.
const (
	RoleAdmin           = 1
	RoleSalesDirector   = 2
	RoleRegionalManager = 3
	RoleSalesLead       = 4
	RoleSalesperson     = 5
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	TeamID       *int       `json:"team_id"`
	RegionID     *string    `json:"region_id"`
	AvatarURL    *string    `json:"avatar_url"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsManager indica se o usuário avalia outras pessoas (qualquer perfil
// acima de vendedor).
func (u *User) IsManager() bool {
	return u.RoleID == RoleAdmin ||
		u.RoleID == RoleSalesDirector ||
		u.RoleID == RoleRegionalManager ||
		u.RoleID == RoleSalesLead
}

type UpdateUserRequest struct {
	ID        int     `json:"id"`
	Name      *string `json:"name"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
	Active    *bool   `json:"active"`
	RoleID    *int    `json:"role_id"`
	TeamID    *int    `json:"team_id"`
	RegionID  *string `json:"region_id"`
	AvatarURL *string `json:"avatar_url"`
	Deleted   *bool   `json:"deleted"`
}

type Claims struct {
	UserID        int
	UserName      string
	UserLastname  string
	UserEmail     string
	UserActive    bool
	UserRoleID    int
	UserTeamID    *int
	UserRegionID  *string
	UserAvatarURL *string
	jwt.RegisteredClaims
}
