package model

import (
	"time"
)

// Roles are fixed; there is no role administration surface.
const (
	RoleAdministrateur = "Administrateur"
	RoleSecretaire     = "Secretaire"
	RoleMedecin        = "Medecin"
)

// DefaultPhoto is served when a user never uploaded a profile photo.
const DefaultPhoto = "default.png"

// User represents a system user (administrateur, secretaire or medecin)
type User struct {
	ID            int64      `json:"idUser" db:"id_user"`
	Prenom        string     `json:"prenom" db:"prenom"`
	Nom           string     `json:"nom" db:"nom"`
	Login         string     `json:"login" db:"login"`
	PasswordHash  string     `json:"-" db:"password_hash"`
	Role          string     `json:"role" db:"role"`
	PhotoProfil   string     `json:"photoProfil" db:"photo_profil"`
	DateConnexion *time.Time `json:"dateConnexion" db:"date_connexion"`
}

// Photo returns the stored photo reference or the default one.
func (u *User) Photo() string {
	if u.PhotoProfil == "" {
		return DefaultPhoto
	}
	return u.PhotoProfil
}

// UserSummary is the shape the admin dashboard lists recent accounts with.
type UserSummary struct {
	Prenom        string     `json:"prenom" db:"prenom"`
	Nom           string     `json:"nom" db:"nom"`
	Login         string     `json:"login" db:"login"`
	DateConnexion *time.Time `json:"dateConnexion" db:"date_connexion"`
}

// Medecin is the restricted projection the secretaire namespace works with.
type Medecin struct {
	ID     int64  `json:"idUser" db:"id_user"`
	Prenom string `json:"prenom" db:"prenom"`
	Nom    string `json:"nom" db:"nom"`
	Login  string `json:"login" db:"login"`
}

// CreateUserRequest represents user creation parameters
type CreateUserRequest struct {
	Prenom   string `json:"prenom" form:"prenom" binding:"required"`
	Nom      string `json:"nom" form:"nom" binding:"required"`
	Login    string `json:"login" form:"login" binding:"required"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
	Role     string `json:"role" form:"role" binding:"required,oneof=Administrateur Secretaire Medecin"`
}

// CreateMedecinRequest is the secretaire variant: the role is forced to
// Medecin server-side and never accepted from the form.
type CreateMedecinRequest struct {
	Prenom   string `json:"prenom" form:"prenom" binding:"required"`
	Nom      string `json:"nom" form:"nom" binding:"required"`
	Login    string `json:"login" form:"login" binding:"required"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
}

// UpdateMedecinRequest represents medecin update parameters
type UpdateMedecinRequest struct {
	Prenom string `json:"prenom" form:"prenom" binding:"required"`
	Nom    string `json:"nom" form:"nom" binding:"required"`
	Login  string `json:"login" form:"login" binding:"required"`
}

// UpdateProfileRequest carries the settings-page profile form. Blank fields
// keep the current value.
type UpdateProfileRequest struct {
	Prenom string `json:"prenom" form:"prenom"`
	Nom    string `json:"nom" form:"nom"`
	Login  string `json:"login" form:"login"`
}

// ChangePasswordRequest represents a password change submission
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" form:"newPassword" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" binding:"required"`
}

// LoginRequest represents the credentials of the login form
type LoginRequest struct {
	Login    string `json:"login" form:"login" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
