package usecase

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/josephsae/healthhub-app/internal/domain/entity"
	"github.com/josephsae/healthhub-app/internal/domain/repository"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns a gorm handle that repositories never reach; the mocked
// repositories ignore it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func newTestLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	args := m.Called(db, username)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByID(db *gorm.DB, id uint) (*entity.User, error) {
	args := m.Called(db, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

type mockAppointmentRepo struct{ mock.Mock }

func (m *mockAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}

func (m *mockAppointmentRepo) FindByIDForOwner(db *gorm.DB, id, userID uint) (*entity.Appointment, error) {
	args := m.Called(db, id, userID)
	appointment, _ := args.Get(0).(*entity.Appointment)
	return appointment, args.Error(1)
}

func (m *mockAppointmentRepo) FindAllByOwner(db *gorm.DB, userID uint, dir repository.SortDirection) ([]entity.Appointment, error) {
	args := m.Called(db, userID, dir)
	appointments, _ := args.Get(0).([]entity.Appointment)
	return appointments, args.Error(1)
}

func (m *mockAppointmentRepo) UpdateForOwner(db *gorm.DB, appointment *entity.Appointment) (int64, error) {
	args := m.Called(db, appointment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAppointmentRepo) DeleteForOwner(db *gorm.DB, id, userID uint) (int64, error) {
	args := m.Called(db, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockExaminationResultRepo struct{ mock.Mock }

func (m *mockExaminationResultRepo) FindByIDForOwner(db *gorm.DB, id, userID uint) (*entity.ExaminationResult, error) {
	args := m.Called(db, id, userID)
	result, _ := args.Get(0).(*entity.ExaminationResult)
	return result, args.Error(1)
}

func (m *mockExaminationResultRepo) FindAllByOwner(db *gorm.DB, userID uint, dir repository.SortDirection) ([]entity.ExaminationResult, error) {
	args := m.Called(db, userID, dir)
	results, _ := args.Get(0).([]entity.ExaminationResult)
	return results, args.Error(1)
}

func (m *mockExaminationResultRepo) FindByAppointmentIDs(db *gorm.DB, appointmentIDs []uint) ([]entity.ExaminationResult, error) {
	args := m.Called(db, appointmentIDs)
	results, _ := args.Get(0).([]entity.ExaminationResult)
	return results, args.Error(1)
}

type mockMedicalRecordRepo struct{ mock.Mock }

func (m *mockMedicalRecordRepo) FindByIDForOwner(db *gorm.DB, id, userID uint) (*entity.MedicalRecord, error) {
	args := m.Called(db, id, userID)
	record, _ := args.Get(0).(*entity.MedicalRecord)
	return record, args.Error(1)
}

func (m *mockMedicalRecordRepo) FindAllByOwner(db *gorm.DB, userID uint) ([]entity.MedicalRecord, error) {
	args := m.Called(db, userID)
	records, _ := args.Get(0).([]entity.MedicalRecord)
	return records, args.Error(1)
}

type mockMedicationRequestRepo struct{ mock.Mock }

func (m *mockMedicationRequestRepo) Create(db *gorm.DB, request *entity.MedicationRequest) error {
	args := m.Called(db, request)
	return args.Error(0)
}

func (m *mockMedicationRequestRepo) FindByIDForOwner(db *gorm.DB, id, userID uint) (*entity.MedicationRequest, error) {
	args := m.Called(db, id, userID)
	request, _ := args.Get(0).(*entity.MedicationRequest)
	return request, args.Error(1)
}

func (m *mockMedicationRequestRepo) FindAllByOwner(db *gorm.DB, userID uint, dir repository.SortDirection) ([]entity.MedicationRequest, error) {
	args := m.Called(db, userID, dir)
	requests, _ := args.Get(0).([]entity.MedicationRequest)
	return requests, args.Error(1)
}

type mockAuthorizationRepo struct{ mock.Mock }

func (m *mockAuthorizationRepo) Create(db *gorm.DB, authorization *entity.Authorization) error {
	args := m.Called(db, authorization)
	return args.Error(0)
}

func (m *mockAuthorizationRepo) FindByIDForOwner(db *gorm.DB, id, userID uint) (*entity.Authorization, error) {
	args := m.Called(db, id, userID)
	authorization, _ := args.Get(0).(*entity.Authorization)
	return authorization, args.Error(1)
}

func (m *mockAuthorizationRepo) FindAllByOwner(db *gorm.DB, userID uint) ([]entity.Authorization, error) {
	args := m.Called(db, userID)
	authorizations, _ := args.Get(0).([]entity.Authorization)
	return authorizations, args.Error(1)
}

type mockSpecialistRepo struct{ mock.Mock }

func (m *mockSpecialistRepo) FindAll(db *gorm.DB) ([]entity.Specialist, error) {
	args := m.Called(db)
	specialists, _ := args.Get(0).([]entity.Specialist)
	return specialists, args.Error(1)
}

func (m *mockSpecialistRepo) FindByID(db *gorm.DB, id uint) (*entity.Specialist, error) {
	args := m.Called(db, id)
	specialist, _ := args.Get(0).(*entity.Specialist)
	return specialist, args.Error(1)
}

type mockMedicationRepo struct{ mock.Mock }

func (m *mockMedicationRepo) FindAll(db *gorm.DB) ([]entity.Medication, error) {
	args := m.Called(db)
	medications, _ := args.Get(0).([]entity.Medication)
	return medications, args.Error(1)
}

func (m *mockMedicationRepo) FindByID(db *gorm.DB, id uint) (*entity.Medication, error) {
	args := m.Called(db, id)
	medication, _ := args.Get(0).(*entity.Medication)
	return medication, args.Error(1)
}
