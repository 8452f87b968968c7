package model

// Patient sex constants
const (
	SexeHomme = "Homme"
	SexeFemme = "Femme"
)

// Patient represents a hospital patient
type Patient struct {
	ID          int64  `json:"idPatient" db:"id_patient"`
	Nom         string `json:"nom" db:"nom"`
	Prenom      string `json:"prenom" db:"prenom"`
	Age         int    `json:"age" db:"age"`
	Tel         string `json:"tel" db:"tel"`
	Sexe        string `json:"sexe" db:"sexe"`
	Nationalite string `json:"nationalite" db:"nationalite"`
}

// CreatePatientRequest represents patient creation parameters
type CreatePatientRequest struct {
	Nom         string `json:"nom" form:"nom" binding:"required"`
	Prenom      string `json:"prenom" form:"prenom" binding:"required"`
	Age         int    `json:"age" form:"age" binding:"min=0"`
	Tel         string `json:"tel" form:"tel" binding:"omitempty,telephone"`
	Sexe        string `json:"sexe" form:"sexe" binding:"required,oneof=Homme Femme"`
	Nationalite string `json:"nationalite" form:"nationalite"`
}

// UpdatePatientRequest represents patient update parameters
type UpdatePatientRequest struct {
	Nom         string `json:"nom" form:"nom" binding:"required"`
	Prenom      string `json:"prenom" form:"prenom" binding:"required"`
	Age         int    `json:"age" form:"age" binding:"min=0"`
	Tel         string `json:"tel" form:"tel" binding:"omitempty,telephone"`
	Sexe        string `json:"sexe" form:"sexe" binding:"required,oneof=Homme Femme"`
	Nationalite string `json:"nationalite" form:"nationalite"`
}
