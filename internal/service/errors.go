package service

import "errors"

// Ошибки уровня "не найдено" и ошибки OTP-потока.
// Хендлеры различают их через errors.Is и отдают 404/400.
var (
	ErrAmbulanceNotFound  = errors.New("ambulance not found")
	ErrIncidentNotFound   = errors.New("incident not found")
	ErrHospitalNotFound   = errors.New("hospital not found")
	ErrPatientNotFound    = errors.New("patient not found")
	ErrOtpSessionNotFound = errors.New("otp session not found")
	ErrOtpExpired         = errors.New("otp has expired")
	ErrOtpInvalid         = errors.New("invalid otp")
)
