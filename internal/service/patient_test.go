package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
	"github.com/shenikar/ambulance_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestPatientService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestPatientService(t *testing.T) (service.PatientService, *mocks.MockPatientRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockPatientRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		OtpTTL: 5 * time.Minute,
	}

	svc := service.NewPatientService(repoMock, logger, cfg)
	return svc, repoMock
}

func TestRequestOtp_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestPatientService(t)
	ctx := context.Background()
	patient := &models.Patient{
		ID:     "p1",
		AbhaID: "12-3456-7890-1234",
		Name:   "Рамеш Кумар",
	}

	// Ожидания
	repoMock.EXPECT().
		GetByAbhaID(ctx, "12-3456-7890-1234").
		Return(patient, nil).
		Times(1)
	repoMock.EXPECT().
		CreateOtpSession(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, session *models.OtpSession) error {
			session.ID = "session-1"
			return nil
		}).
		Times(1)

	// Действие
	session, err := svc.RequestOtp(ctx, "12-3456-7890-1234")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "session-1", session.ID)
	assert.Equal(t, patient.AbhaID, session.AbhaID)
	assert.Len(t, session.Otp, 6)
	assert.False(t, session.Verified)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), session.ExpiresAt, time.Minute)
}

func TestRequestOtp_PatientNotFound(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestPatientService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetByAbhaID(ctx, "unknown").
		Return(nil, service.ErrPatientNotFound).
		Times(1)

	// Действие
	session, err := svc.RequestOtp(ctx, "unknown")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, service.ErrPatientNotFound)
}

func TestVerifyOtp_Success(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestPatientService(t)
	ctx := context.Background()

	session := &models.OtpSession{
		ID:        "session-1",
		AbhaID:    "12-3456-7890-1234",
		Otp:       "123456",
		ExpiresAt: time.Now().Add(time.Minute),
	}
	patient := &models.Patient{
		ID:     "p1",
		AbhaID: "12-3456-7890-1234",
	}

	// Ожидания
	repoMock.EXPECT().GetOtpSession(ctx, "session-1").Return(session, nil).Times(1)
	repoMock.EXPECT().VerifyOtpSession(ctx, "session-1").Return(session, nil).Times(1)
	repoMock.EXPECT().GetByAbhaID(ctx, "12-3456-7890-1234").Return(patient, nil).Times(1)

	// Действие
	got, err := svc.VerifyOtp(ctx, "session-1", "123456")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, patient, got)
}

func TestVerifyOtp_Expired(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestPatientService(t)
	ctx := context.Background()

	session := &models.OtpSession{
		ID:        "session-1",
		AbhaID:    "12-3456-7890-1234",
		Otp:       "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	// Ожидания
	repoMock.EXPECT().GetOtpSession(ctx, "session-1").Return(session, nil).Times(1)

	// Действие
	got, err := svc.VerifyOtp(ctx, "session-1", "123456")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, service.ErrOtpExpired)
}

func TestVerifyOtp_WrongCode(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestPatientService(t)
	ctx := context.Background()

	session := &models.OtpSession{
		ID:        "session-1",
		AbhaID:    "12-3456-7890-1234",
		Otp:       "123456",
		ExpiresAt: time.Now().Add(time.Minute),
	}

	// Ожидания
	repoMock.EXPECT().GetOtpSession(ctx, "session-1").Return(session, nil).Times(1)

	// Действие
	got, err := svc.VerifyOtp(ctx, "session-1", "000000")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, service.ErrOtpInvalid)
}

func TestVerifyOtp_SessionNotFound(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestPatientService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetOtpSession(ctx, "missing").
		Return(nil, service.ErrOtpSessionNotFound).
		Times(1)

	// Действие
	got, err := svc.VerifyOtp(ctx, "missing", "123456")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, service.ErrOtpSessionNotFound)
}

func TestAddMedicalRecord_PatientNotFound(t *testing.T) {
	// Подготовка
	svc, repoMock := newTestPatientService(t)
	ctx := context.Background()
	record := &models.MedicalRecord{PatientID: "missing", Type: "prescription", Title: "Тест"}

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, "missing").
		Return(nil, service.ErrPatientNotFound).
		Times(1)

	// Действие
	err := svc.AddMedicalRecord(ctx, record)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPatientNotFound)
}
