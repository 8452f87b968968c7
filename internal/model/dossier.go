package model

import "time"

// Dossier represents a patient's medical record, the container for examens.
type Dossier struct {
	ID           int64     `json:"idDossier" db:"id_dossier"`
	DateCreation time.Time `json:"dateCreation" db:"date_creation"`
	IDPatient    int64     `json:"idPatient" db:"id_patient"`
}

// DossierWithPatient is the listing shape: a dossier joined with the name of
// the patient it belongs to.
type DossierWithPatient struct {
	ID           int64     `json:"idDossier" db:"id_dossier"`
	DateCreation time.Time `json:"dateCreation" db:"date_creation"`
	Nom          string    `json:"nom" db:"nom"`
	Prenom       string    `json:"prenom" db:"prenom"`
}

// RecentDossier joins the last created dossiers with their patient for the
// medecin dashboard.
type RecentDossier struct {
	Nom          string    `json:"nom" db:"nom"`
	Prenom       string    `json:"prenom" db:"prenom"`
	Age          int       `json:"age" db:"age"`
	Tel          string    `json:"tel" db:"tel"`
	IDDossier    int64     `json:"idDossier" db:"id_dossier"`
	DateCreation time.Time `json:"dateCreation" db:"date_creation"`
}

// CreateDossierRequest represents dossier creation parameters. The date
// arrives as the form's yyyy-mm-dd string.
type CreateDossierRequest struct {
	IDPatient    int64  `json:"idPatient" form:"idPatient" binding:"required"`
	DateCreation string `json:"dateCreation" form:"dateCreation" binding:"required,datetime=2006-01-02"`
}

// UpdateDossierRequest represents dossier update parameters
type UpdateDossierRequest struct {
	DateCreation string `json:"dateCreation" form:"dateCreation" binding:"required,datetime=2006-01-02"`
}
