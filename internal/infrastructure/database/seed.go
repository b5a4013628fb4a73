package database

import (
	"context"
	"fmt"

	"github.com/josephsae/healthhub-app/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedResult reports how many catalog rows each table received.
type SeedResult struct {
	Specialists  int
	Medications  int
	Examinations int
	Procedures   int
}

var seedSpecialists = []entity.Specialist{
	{Name: "Dr. Laura Gómez", Specialization: "Cardiology"},
	{Name: "Dr. Andrés Pérez", Specialization: "Dermatology"},
	{Name: "Dr. María Rodríguez", Specialization: "Pediatrics"},
	{Name: "Dr. Carlos Ramírez", Specialization: "Orthopedics"},
	{Name: "Dr. Sofía Martínez", Specialization: "Neurology"},
}

var seedMedications = []entity.Medication{
	{Name: "Amoxicillin 500mg", Description: "Broad-spectrum antibiotic capsule"},
	{Name: "Atorvastatin 20mg", Description: "Statin used to lower cholesterol"},
	{Name: "Ibuprofen 400mg", Description: "Non-steroidal anti-inflammatory tablet"},
	{Name: "Losartan 50mg", Description: "Angiotensin receptor blocker for hypertension"},
	{Name: "Metformin 850mg", Description: "First-line oral treatment for type 2 diabetes"},
}

var seedExaminations = []entity.Examination{
	{Name: "Complete Blood Count"},
	{Name: "Electrocardiogram"},
	{Name: "Lipid Panel"},
	{Name: "Chest X-Ray"},
}

var seedProcedures = []entity.Procedure{
	{Name: "Blood Draw"},
	{Name: "Skin Biopsy"},
	{Name: "MRI Scan"},
}

// SeedCatalog fills empty catalog tables. Tables that already hold rows are
// left untouched, so running it twice is safe.
func SeedCatalog(ctx context.Context, db *gorm.DB, log *logrus.Logger) (*SeedResult, error) {
	result := &SeedResult{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if result.Specialists, err = seedTable(tx, &entity.Specialist{}, cloneSlice(seedSpecialists)); err != nil {
			return err
		}
		if result.Medications, err = seedTable(tx, &entity.Medication{}, cloneSlice(seedMedications)); err != nil {
			return err
		}
		if result.Examinations, err = seedTable(tx, &entity.Examination{}, cloneSlice(seedExaminations)); err != nil {
			return err
		}
		if result.Procedures, err = seedTable(tx, &entity.Procedure{}, cloneSlice(seedProcedures)); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Warnf("Failed to seed catalog: %+v", err)
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"specialists":  result.Specialists,
		"medications":  result.Medications,
		"examinations": result.Examinations,
		"procedures":   result.Procedures,
	}).Info("Catalog seeded")

	return result, nil
}

func seedTable[T any](tx *gorm.DB, model *T, rows []T) (int, error) {
	var count int64
	if err := tx.Model(model).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %T rows: %w", *model, err)
	}
	if count > 0 {
		return 0, nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("failed to insert %T rows: %w", *model, err)
	}
	return len(rows), nil
}

// cloneSlice keeps the package-level fixtures free of ids gorm writes back.
func cloneSlice[T any](src []T) []T {
	return append([]T(nil), src...)
}
