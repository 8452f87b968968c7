package model

// Dashboard payloads. "Most recent" is highest-id order for users, patients
// and dossiers; the history listing orders by its date column.

type AdminStats struct {
	TotalPatients    int `json:"totalPatients"`
	TotalMedecins    int `json:"totalMedecins"`
	TotalSecretaires int `json:"totalSecretaires"`
	TotalDossiers    int `json:"totalDossiers"`
}

type AdminDashboard struct {
	User        *Principal     `json:"user"`
	Stats       AdminStats     `json:"stats"`
	Medecins    []*UserSummary `json:"medecins"`
	Secretaires []*UserSummary `json:"secretaires"`
}

type MedecinStats struct {
	TotalPatients int `json:"totalPatients"`
	TotalDossiers int `json:"totalDossiers"`
	TotalExamens  int `json:"totalExamens"`
	Hommes        int `json:"hommes"`
	Femmes        int `json:"femmes"`
}

type MedecinDashboard struct {
	Stats        MedecinStats     `json:"stats"`
	LastPatients []*RecentDossier `json:"lastPatients"`
}

type SecretaireStats struct {
	TotalPatients int `json:"totalPatients"`
	TotalMedecins int `json:"totalMedecins"`
	TotalDossiers int `json:"totalDossiers"`
	Hommes        int `json:"hommes"`
	Femmes        int `json:"femmes"`
}

type SecretaireDashboard struct {
	Stats        SecretaireStats `json:"stats"`
	LastPatients []*Patient      `json:"lastPatients"`
}
