package dto

import "io"

type MedicalRecordResponse struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

type MedicalRecordListResponse struct {
	MedicalRecords []MedicalRecordResponse `json:"medicalRecords"`
}

type MedicalRecordEnvelope struct {
	MedicalRecord *MedicalRecordResponse `json:"medicalRecord"`
}

// MedicalRecordDocument is a laid-out medical record; Body streams it.
type MedicalRecordDocument struct {
	FileName    string
	ContentType string
	Body        io.WriterTo
}
