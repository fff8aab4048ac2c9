package models

import "gorm.io/gorm"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleKepala     Role = "kepala"
	RoleSekretaris Role = "sekretaris"
	RoleKabid      Role = "kabid"
	RoleStaf       Role = "staf"
)

type User struct {
	gorm.Model
	Name         string `gorm:"type:varchar(150);not null" json:"name"`
	Email        string `gorm:"type:varchar(191);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role   `gorm:"type:varchar(30);not null;index" json:"role"`
	Jabatan      string `gorm:"type:varchar(150);index" json:"jabatan"`
	Bidang       string `gorm:"type:varchar(150);index" json:"bidang"`
}

func (User) TableName() string {
	return "users"
}

// --- Helper Methods ---

func (u *User) IsKepala() bool     { return u.Role == RoleKepala }
func (u *User) IsSekretaris() bool { return u.Role == RoleSekretaris }
func (u *User) IsKabid() bool      { return u.Role == RoleKabid }
func (u *User) IsStaf() bool       { return u.Role == RoleStaf }
func (u *User) IsAdmin() bool      { return u.Role == RoleAdmin }

// IsAtasan reports whether the user belongs to one of the two superior roles
// that can receive a disposition addressed to a jabatan.
func (u *User) IsAtasan() bool {
	return u.Role == RoleKabid || u.Role == RoleSekretaris
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleKepala, RoleSekretaris, RoleKabid, RoleStaf:
		return true
	default:
		return false
	}
}
