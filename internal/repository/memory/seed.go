package memory

import (
	"context"
	"fmt"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
)

// SeedDemoData наполняет in-memory хранилища демонстрационными данными
// по Джайпуру: больницы, машины скорой помощи, пациенты и их записи
func SeedDemoData(ctx context.Context, fleet *FleetRepository, hospitals *HospitalRepository, patients *PatientRepository) error {
	hospitalSeed := []*models.Hospital{
		{
			ID:            "h1",
			Name:          "Sawai Man Singh Hospital",
			Address:       "JLN Marg, Jaipur",
			Phone:         "+91 141 251 8888",
			Latitude:      26.8947,
			Longitude:     75.8062,
			BedsAvailable: "1500",
			Specialties:   "Multi-specialty, Trauma, Emergency",
		},
		{
			ID:            "h2",
			Name:          "Fortis Escorts Hospital",
			Address:       "Malviya Nagar, Jaipur",
			Phone:         "+91 141 254 7000",
			Latitude:      26.8582,
			Longitude:     75.8012,
			BedsAvailable: "300",
			Specialties:   "Cardiology, Neurology, Orthopedics",
		},
		{
			ID:            "h3",
			Name:          "Narayana Multispeciality Hospital",
			Address:       "Sector 28, Kumbha Marg, Jaipur",
			Phone:         "+91 141 712 8888",
			Latitude:      26.8515,
			Longitude:     75.8108,
			BedsAvailable: "200",
			Specialties:   "Cardiac Surgery, Oncology, Nephrology",
		},
		{
			ID:            "h4",
			Name:          "Manipal Hospital",
			Address:       "Sector 5, Vidhyadhar Nagar, Jaipur",
			Phone:         "+91 141 303 0303",
			Latitude:      26.9520,
			Longitude:     75.7780,
			BedsAvailable: "250",
			Specialties:   "Emergency, Pediatrics, Gastroenterology",
		},
		{
			ID:            "h5",
			Name:          "RUHS Hospital",
			Address:       "Kumbha Marg, Pratap Nagar, Jaipur",
			Phone:         "+91 141 279 5600",
			Latitude:      26.8449,
			Longitude:     75.7869,
			BedsAvailable: "800",
			Specialties:   "Government Hospital, All Specialties",
		},
	}
	for _, h := range hospitalSeed {
		if err := hospitals.Create(ctx, h); err != nil {
			return fmt.Errorf("seed hospital %s: %w", h.ID, err)
		}
	}

	fleetSeed := []*models.Ambulance{
		{
			ID:            "a1",
			VehicleNumber: "RJ-14-AM-1234",
			DriverName:    "Rajesh Kumar",
			DriverPhone:   "+91 98111 22334",
			Status:        models.AmbulanceAvailable,
			Latitude:      26.9124,
			Longitude:     75.7873,
			HospitalID:    "h1",
		},
		{
			ID:            "a2",
			VehicleNumber: "RJ-14-AM-5678",
			DriverName:    "Suresh Yadav",
			DriverPhone:   "+91 98222 33445",
			Status:        models.AmbulanceAvailable,
			Latitude:      26.8820,
			Longitude:     75.7590,
			HospitalID:    "h2",
		},
		{
			ID:            "a3",
			VehicleNumber: "RJ-14-AM-9012",
			DriverName:    "Mohammed Ali",
			DriverPhone:   "+91 98333 44556",
			Status:        models.AmbulanceAvailable,
			Latitude:      26.8650,
			Longitude:     75.8150,
			HospitalID:    "h3",
		},
		{
			ID:            "a4",
			VehicleNumber: "RJ-14-AM-3456",
			DriverName:    "Vikram Chauhan",
			DriverPhone:   "+91 98444 55667",
			Status:        models.AmbulanceBusy,
			Latitude:      26.9350,
			Longitude:     75.7720,
			HospitalID:    "h4",
		},
		{
			ID:            "a5",
			VehicleNumber: "RJ-14-AM-7890",
			DriverName:    "Arun Sharma",
			DriverPhone:   "+91 98555 66778",
			Status:        models.AmbulanceAvailable,
			Latitude:      26.8780,
			Longitude:     75.8250,
			HospitalID:    "h5",
		},
	}
	for _, a := range fleetSeed {
		if err := fleet.Create(ctx, a); err != nil {
			return fmt.Errorf("seed ambulance %s: %w", a.ID, err)
		}
	}

	patientSeed := []*models.Patient{
		{
			ID:               "p1",
			AbhaID:           "ABHA001",
			Name:             "Rahul Sharma",
			Phone:            "+91 98765 43210",
			Email:            "rahul.sharma@email.com",
			DateOfBirth:      "1985-03-15",
			BloodGroup:       "B+",
			Address:          "C-12, Malviya Nagar, Jaipur",
			EmergencyContact: "+91 98765 43211",
		},
		{
			ID:               "p2",
			AbhaID:           "ABHA002",
			Name:             "Priya Patel",
			Phone:            "+91 87654 32109",
			Email:            "priya.patel@email.com",
			DateOfBirth:      "1990-07-22",
			BloodGroup:       "O+",
			Address:          "A-45, Vaishali Nagar, Jaipur",
			EmergencyContact: "+91 87654 32110",
		},
		{
			ID:               "p3",
			AbhaID:           "ABHA003",
			Name:             "Amit Kumar",
			Phone:            "+91 76543 21098",
			Email:            "amit.kumar@email.com",
			DateOfBirth:      "1978-11-08",
			BloodGroup:       "A-",
			Address:          "D-78, Raja Park, Jaipur",
			EmergencyContact: "+91 76543 21099",
		},
		{
			ID:               "p4",
			AbhaID:           "ABHA004",
			Name:             "Sunita Reddy",
			Phone:            "+91 65432 10987",
			Email:            "sunita.reddy@email.com",
			DateOfBirth:      "1995-01-30",
			BloodGroup:       "AB+",
			Address:          "B-23, Mansarovar, Jaipur",
			EmergencyContact: "+91 65432 10988",
		},
		{
			ID:               "p5",
			AbhaID:           "ABHA005",
			Name:             "Vikram Singh",
			Phone:            "+91 54321 09876",
			Email:            "vikram.singh@email.com",
			DateOfBirth:      "1982-09-12",
			BloodGroup:       "O-",
			Address:          "E-56, C-Scheme, Jaipur",
			EmergencyContact: "+91 54321 09877",
		},
	}
	for _, p := range patientSeed {
		if err := patients.Create(ctx, p); err != nil {
			return fmt.Errorf("seed patient %s: %w", p.ID, err)
		}
	}

	recordSeed := []*models.MedicalRecord{
		{
			ID:           "r1",
			PatientID:    "p1",
			Type:         "lab_report",
			Title:        "Complete Blood Count (CBC)",
			DoctorName:   "Dr. Anil Mehta",
			HospitalName: "Apollo Hospital",
			Date:         "2024-12-01",
			Notes:        "All values within normal range. Hemoglobin: 14.2 g/dL",
		},
		{
			ID:           "r2",
			PatientID:    "p1",
			Type:         "prescription",
			Title:        "Seasonal Flu Treatment",
			DoctorName:   "Dr. Priya Gupta",
			HospitalName: "Max Healthcare",
			Date:         "2024-11-28",
			Notes:        "Prescribed Paracetamol 500mg, rest for 3 days",
		},
		{
			ID:           "r3",
			PatientID:    "p1",
			Type:         "lab_report",
			Title:        "Lipid Profile Test",
			DoctorName:   "Dr. Rajesh Kapoor",
			HospitalName: "Fortis Hospital",
			Date:         "2024-11-15",
			Notes:        "Cholesterol slightly elevated. Diet modification recommended.",
		},
		{
			ID:           "r4",
			PatientID:    "p2",
			Type:         "prescription",
			Title:        "Thyroid Medication",
			DoctorName:   "Dr. Sunita Rao",
			HospitalName: "Medanta Hospital",
			Date:         "2024-12-05",
			Notes:        "Thyroxine 50mcg daily before breakfast",
		},
		{
			ID:           "r5",
			PatientID:    "p3",
			Type:         "lab_report",
			Title:        "HbA1c Test",
			DoctorName:   "Dr. Venkat Krishnan",
			HospitalName: "AIIMS",
			Date:         "2024-11-20",
			Notes:        "HbA1c: 6.2% - Good glycemic control maintained",
		},
	}
	for _, rec := range recordSeed {
		if err := patients.CreateMedicalRecord(ctx, rec); err != nil {
			return fmt.Errorf("seed medical record %s: %w", rec.ID, err)
		}
	}

	return nil
}
