package dto

type SpecialistResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

type SpecialistListResponse struct {
	Specialists []SpecialistResponse `json:"specialists"`
}

type SpecialistEnvelope struct {
	Specialist *SpecialistResponse `json:"specialist"`
}

type MedicationResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type MedicationListResponse struct {
	Medications []MedicationResponse `json:"medications"`
}
