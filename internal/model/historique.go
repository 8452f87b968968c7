package model

import "time"

// Connection history actions. Rows are append-only.
const (
	ActionLogin  = "login"
	ActionLogout = "logout"
)

// Connexion is one connection-history row.
type Connexion struct {
	ID         int64     `json:"id" db:"id"`
	IDUser     int64     `json:"idUser" db:"id_user"`
	Action     string    `json:"action" db:"action"`
	DateAction time.Time `json:"dateAction" db:"date_action"`
}

// ConnexionWithUser joins a history row with the user it belongs to, the
// shape the admin history listing returns.
type ConnexionWithUser struct {
	Prenom     string    `json:"prenom" db:"prenom"`
	Nom        string    `json:"nom" db:"nom"`
	Role       string    `json:"role" db:"role"`
	Action     string    `json:"action" db:"action"`
	DateAction time.Time `json:"dateAction" db:"date_action"`
}
