package usecase

import (
	"context"
	"testing"

	"github.com/josephsae/healthhub-app/internal/delivery/dto"
	"github.com/josephsae/healthhub-app/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMedicationRequestCreate(t *testing.T) {
	requests := new(mockMedicationRequestRepo)
	medications := new(mockMedicationRepo)
	users := new(mockUserRepo)
	uc := NewMedicationRequestUsecase(newTestDB(t), newTestLogger(), requests, medications, users)

	users.On("FindByID", mock.Anything, uint(1)).Return(&entity.User{ID: 1}, nil)
	medications.On("FindByID", mock.Anything, uint(2)).Return(&entity.Medication{ID: 2, Name: "Aspirin"}, nil)
	requests.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.MedicationRequest) bool {
		return r.UserID == 1 && r.MedicationID == 2 && r.Status == entity.MedicationRequestStatusPending && !r.RequestedAt.IsZero()
	})).Return(nil)

	resp, err := uc.Create(context.Background(), 1, &dto.CreateMedicationRequestRequest{MedicationID: 2})
	require.NoError(t, err)

	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "Aspirin", resp.Medication.Name)
	assert.Nil(t, resp.ApprovedAt)
}

func TestMedicationRequestCreate_UnknownMedication(t *testing.T) {
	requests := new(mockMedicationRequestRepo)
	medications := new(mockMedicationRepo)
	users := new(mockUserRepo)
	uc := NewMedicationRequestUsecase(newTestDB(t), newTestLogger(), requests, medications, users)
	users.On("FindByID", mock.Anything, uint(1)).Return(&entity.User{ID: 1}, nil)
	medications.On("FindByID", mock.Anything, uint(99)).Return(nil, nil)

	_, err := uc.Create(context.Background(), 1, &dto.CreateMedicationRequestRequest{MedicationID: 99})

	assert.ErrorIs(t, err, ErrMedicationNotFound)
	requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMedicationRequestGet_OtherOwnerIsNotFound(t *testing.T) {
	requests := new(mockMedicationRequestRepo)
	uc := NewMedicationRequestUsecase(newTestDB(t), newTestLogger(), requests, new(mockMedicationRepo), new(mockUserRepo))
	requests.On("FindByIDForOwner", mock.Anything, uint(6), uint(2)).Return(nil, nil)

	_, err := uc.Get(context.Background(), 2, 6)

	assert.ErrorIs(t, err, ErrMedicationRequestNotFound)
}

func TestMedicationRequestCreate_DeletedUser(t *testing.T) {
	requests := new(mockMedicationRequestRepo)
	medications := new(mockMedicationRepo)
	users := new(mockUserRepo)
	uc := NewMedicationRequestUsecase(newTestDB(t), newTestLogger(), requests, medications, users)
	users.On("FindByID", mock.Anything, uint(99)).Return(nil, nil)

	_, err := uc.Create(context.Background(), 99, &dto.CreateMedicationRequestRequest{MedicationID: 2})

	assert.ErrorIs(t, err, ErrUserNotFound)
	medications.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
