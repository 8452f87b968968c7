package postgres

import (
	"context"
	"fmt"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/repository"
)

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(base BaseRepository) repository.PatientRepository {
	return &patientRepository{base}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (
			nom, prenom, age, tel, sexe, nationalite
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_patient
	`

	if err := r.db.QueryRowContext(ctx, query,
		patient.Nom,
		patient.Prenom,
		patient.Age,
		patient.Tel,
		patient.Sexe,
		patient.Nationalite,
	).Scan(&patient.ID); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}

	return nil
}

func (r *patientRepository) GetByID(ctx context.Context, id int64) (*model.Patient, error) {
	query := `
		SELECT * FROM patients
		WHERE id_patient = $1
	`

	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	return &patient, nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `
		SELECT * FROM patients
		ORDER BY id_patient
	`

	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients SET
			nom = $1,
			prenom = $2,
			age = $3,
			tel = $4,
			sexe = $5,
			nationalite = $6
		WHERE id_patient = $7
	`

	// Updating a missing id affects zero rows and is not an error.
	if _, err := r.db.ExecContext(ctx, query,
		patient.Nom,
		patient.Prenom,
		patient.Age,
		patient.Tel,
		patient.Sexe,
		patient.Nationalite,
		patient.ID,
	); err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM patients
		WHERE id_patient = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	return nil
}

func (r *patientRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM patients`

	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}

	return count, nil
}

func (r *patientRepository) CountBySexe(ctx context.Context, sexe string) (int, error) {
	query := `SELECT COUNT(*) FROM patients WHERE sexe = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, sexe); err != nil {
		return 0, fmt.Errorf("failed to count patients by sexe: %w", err)
	}

	return count, nil
}

func (r *patientRepository) Last(ctx context.Context, n int) ([]*model.Patient, error) {
	query := `
		SELECT * FROM patients
		ORDER BY id_patient DESC
		LIMIT $1
	`

	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query, n); err != nil {
		return nil, fmt.Errorf("failed to list recent patients: %w", err)
	}

	return patients, nil
}
