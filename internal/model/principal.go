package model

// Principal is the authenticated identity bound to a session. It is derived
// from the user row at login, stored server-side keyed by the session token,
// and treated as immutable within a request; profile updates write a fresh
// copy back to the session store.
type Principal struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	Prenom      string `json:"prenom"`
	Nom         string `json:"nom"`
	Login       string `json:"login"`
	PhotoProfil string `json:"photoProfil"`
}

// NewPrincipal builds the session principal from a user row.
func NewPrincipal(u *User) *Principal {
	return &Principal{
		ID:          u.ID,
		Role:        u.Role,
		Prenom:      u.Prenom,
		Nom:         u.Nom,
		Login:       u.Login,
		PhotoProfil: u.Photo(),
	}
}
