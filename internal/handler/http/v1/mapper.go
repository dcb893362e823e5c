package v1

import (
	"time"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
)

// displayTimeLayout - формат отображения времени для диспетчерской панели
const displayTimeLayout = "03:04 PM"

func formatDisplayTime(t time.Time) string {
	return t.Format(displayTimeLayout)
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	resp := &IncidentResponse{
		ID:                  model.ID,
		PatientID:           model.PatientID,
		Latitude:            model.Latitude,
		Longitude:           model.Longitude,
		Status:              string(model.Status),
		AssignedAmbulanceID: model.AssignedAmbulanceID,
		CreatedAt:           formatDisplayTime(model.CreatedAt),
		ETA:                 model.ETA,
		Notes:               model.Notes,
	}
	if model.ResolvedAt != nil {
		resp.ResolvedAt = formatDisplayTime(*model.ResolvedAt)
	}
	return resp
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToAmbulanceResponse преобразует доменную модель в DTO для ответа
func ModelToAmbulanceResponse(model *models.Ambulance) *AmbulanceResponse {
	return &AmbulanceResponse{
		ID:            model.ID,
		VehicleNumber: model.VehicleNumber,
		DriverName:    model.DriverName,
		DriverPhone:   model.DriverPhone,
		Status:        string(model.Status),
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		HospitalID:    model.HospitalID,
	}
}

// ModelsToAmbulanceResponses преобразует слайс моделей в слайс DTO
func ModelsToAmbulanceResponses(models []*models.Ambulance) []*AmbulanceResponse {
	responses := make([]*AmbulanceResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAmbulanceResponse(model)
	}
	return responses
}

// ModelToAmbulanceContact преобразует машину в DTO с контактами экипажа
func ModelToAmbulanceContact(model *models.Ambulance) *AmbulanceContactResponse {
	if model == nil {
		return nil
	}
	return &AmbulanceContactResponse{
		VehicleNumber: model.VehicleNumber,
		DriverName:    model.DriverName,
		DriverPhone:   model.DriverPhone,
	}
}

// CandidatesToNearestResponses преобразует кандидатов диспетчеризации в DTO
func CandidatesToNearestResponses(candidates []service.NearestCandidate) []*NearestAmbulanceResponse {
	responses := make([]*NearestAmbulanceResponse, len(candidates))
	for i, c := range candidates {
		responses[i] = &NearestAmbulanceResponse{
			ID:            c.Ambulance.ID,
			VehicleNumber: c.Ambulance.VehicleNumber,
			DistanceKm:    c.DistanceKm,
			EtaMinutes:    c.EtaMinutes,
			Status:        c.EffectiveStatus,
		}
	}
	return responses
}

// ModelToHospitalResponse преобразует доменную модель в DTO для ответа
func ModelToHospitalResponse(model *models.Hospital) *HospitalResponse {
	return &HospitalResponse{
		ID:            model.ID,
		Name:          model.Name,
		Address:       model.Address,
		Phone:         model.Phone,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		BedsAvailable: model.BedsAvailable,
		Specialties:   model.Specialties,
	}
}

// ModelsToHospitalResponses преобразует слайс моделей в слайс DTO
func ModelsToHospitalResponses(models []*models.Hospital) []*HospitalResponse {
	responses := make([]*HospitalResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToHospitalResponse(model)
	}
	return responses
}

// ModelToPatientResponse преобразует доменную модель в DTO для ответа
func ModelToPatientResponse(model *models.Patient) *PatientResponse {
	return &PatientResponse{
		ID:               model.ID,
		AbhaID:           model.AbhaID,
		Name:             model.Name,
		Phone:            model.Phone,
		Email:            model.Email,
		DateOfBirth:      model.DateOfBirth,
		BloodGroup:       model.BloodGroup,
		Address:          model.Address,
		EmergencyContact: model.EmergencyContact,
	}
}

// ModelsToPatientResponses преобразует слайс моделей в слайс DTO
func ModelsToPatientResponses(models []*models.Patient) []*PatientResponse {
	responses := make([]*PatientResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToPatientResponse(model)
	}
	return responses
}

// ModelToMedicalRecordResponse преобразует доменную модель в DTO для ответа
func ModelToMedicalRecordResponse(model *models.MedicalRecord) *MedicalRecordResponse {
	return &MedicalRecordResponse{
		ID:           model.ID,
		PatientID:    model.PatientID,
		Type:         model.Type,
		Title:        model.Title,
		DoctorName:   model.DoctorName,
		HospitalName: model.HospitalName,
		Date:         model.Date,
		Notes:        model.Notes,
	}
}

// ModelsToMedicalRecordResponses преобразует слайс моделей в слайс DTO
func ModelsToMedicalRecordResponses(models []*models.MedicalRecord) []*MedicalRecordResponse {
	responses := make([]*MedicalRecordResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToMedicalRecordResponse(model)
	}
	return responses
}

// DTOToAmbulanceModel преобразует DTO регистрации машины в доменную модель
func DTOToAmbulanceModel(dto CreateAmbulanceRequest) *models.Ambulance {
	return &models.Ambulance{
		VehicleNumber: dto.VehicleNumber,
		DriverName:    dto.DriverName,
		DriverPhone:   dto.DriverPhone,
		Status:        models.AmbulanceStatus(dto.Status),
		Latitude:      *dto.Latitude,
		Longitude:     *dto.Longitude,
		HospitalID:    dto.HospitalID,
	}
}

// DTOToMedicalRecordModel преобразует DTO медицинской записи в доменную модель
func DTOToMedicalRecordModel(dto CreateMedicalRecordRequest) *models.MedicalRecord {
	return &models.MedicalRecord{
		PatientID:    dto.PatientID,
		Type:         dto.Type,
		Title:        dto.Title,
		DoctorName:   dto.DoctorName,
		HospitalName: dto.HospitalName,
		Date:         dto.Date,
		Notes:        dto.Notes,
	}
}
