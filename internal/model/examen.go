package model

import "time"

// Examen represents a lab result attached to one dossier.
type Examen struct {
	ID           int64     `json:"idExamen" db:"id_examen"`
	Nom          string    `json:"nom" db:"nom"`
	DateResultat time.Time `json:"dateResultat" db:"date_resultat"`
	IDDossier    int64     `json:"idDossier" db:"id_dossier"`
}

// CreateExamenRequest represents examen creation parameters
type CreateExamenRequest struct {
	Nom          string `json:"nom" form:"nom" binding:"required"`
	DateResultat string `json:"dateResultat" form:"dateResultat" binding:"required,datetime=2006-01-02"`
	IDDossier    int64  `json:"idDossier" form:"idDossier" binding:"required"`
}

// UpdateExamenRequest represents examen update parameters. IDDossier is only
// used to route the caller back to the parent listing.
type UpdateExamenRequest struct {
	Nom          string `json:"nom" form:"nom" binding:"required"`
	DateResultat string `json:"dateResultat" form:"dateResultat" binding:"required,datetime=2006-01-02"`
	IDDossier    int64  `json:"idDossier" form:"idDossier"`
}
