package validation

import (
	"strconv"

	"labrecords/internal/apperrors"
	"labrecords/internal/models"
)

// LabReportInput is the full nested report payload. The test-group sections
// reuse the stored document types so accepted values round-trip unchanged.
type LabReportInput struct {
	Patient     uint  `json:"patient" validate:"required"`
	RequestedBy *uint `json:"requestedBy,omitempty"`
	PerformedBy uint  `json:"performedBy" validate:"required"`

	LabNo                    string `json:"labNo,omitempty"`
	ClinicalIndication       string `json:"clinicalIndication,omitempty"`
	SampleType               string `json:"sampleType" validate:"required"`
	OtherSampleSpecification string `json:"otherSampleSpecification,omitempty"`

	HematologyTests        models.HematologyTests        `json:"hematologyTests"`
	ParasitologyFluidTests models.ParasitologyFluidTests `json:"parasitologyFluidTests"`
	RapidDiagnosticTests   models.RapidDiagnosticTests   `json:"rapidDiagnosticTests"`
	UrineDipstickTests     models.UrineDipstickTests     `json:"urineDipstickTests"`
	ClinicalChemistry      models.ClinicalChemistry      `json:"clinicalChemistry"`

	Comments string `json:"comments,omitempty"`
}

// numericRule binds one measured field to its hard clinical bounds. Absent
// values always pass; present values outside the bounds are rejected, never
// clamped.
type numericRule struct {
	path     string
	value    func(*LabReportInput) *float64
	min, max float64
	message  string
}

var numericRules = []numericRule{
	{
		path:    "hematologyTests.hemoglobin.value",
		value:   func(in *LabReportInput) *float64 { return in.HematologyTests.Hemoglobin.Value },
		min:     models.HemoglobinMin,
		max:     models.HemoglobinMax,
		message: "Hemoglobin must be between 1 and 25 g/dL",
	},
	{
		path:    "hematologyTests.wbcCount.value",
		value:   func(in *LabReportInput) *float64 { return in.HematologyTests.WbcCount.Value },
		min:     models.WbcCountMin,
		max:     models.WbcCountMax,
		message: "WBC count must be between 1,000 and 50,000 /mm³",
	},
	{
		path:    "hematologyTests.differentialCount.neutrophils.value",
		value:   func(in *LabReportInput) *float64 { return in.HematologyTests.DifferentialCount.Neutrophils.Value },
		min:     models.PercentMin,
		max:     models.PercentMax,
		message: "Neutrophils percentage must be between 0 and 100%",
	},
	{
		path:    "hematologyTests.differentialCount.lymphocytes.value",
		value:   func(in *LabReportInput) *float64 { return in.HematologyTests.DifferentialCount.Lymphocytes.Value },
		min:     models.PercentMin,
		max:     models.PercentMax,
		message: "Lymphocytes percentage must be between 0 and 100%",
	},
	{
		path:    "hematologyTests.differentialCount.monocytes.value",
		value:   func(in *LabReportInput) *float64 { return in.HematologyTests.DifferentialCount.Monocytes.Value },
		min:     models.PercentMin,
		max:     models.PercentMax,
		message: "Monocytes percentage must be between 0 and 100%",
	},
	{
		path:    "hematologyTests.differentialCount.eosinophils.value",
		value:   func(in *LabReportInput) *float64 { return in.HematologyTests.DifferentialCount.Eosinophils.Value },
		min:     models.PercentMin,
		max:     models.PercentMax,
		message: "Eosinophils percentage must be between 0 and 100%",
	},
	{
		path:    "hematologyTests.differentialCount.basophils.value",
		value:   func(in *LabReportInput) *float64 { return in.HematologyTests.DifferentialCount.Basophils.Value },
		min:     models.PercentMin,
		max:     models.PercentMax,
		message: "Basophils percentage must be between 0 and 100%",
	},
	{
		path:    "clinicalChemistry.randomBloodSugar.value",
		value:   func(in *LabReportInput) *float64 { return in.ClinicalChemistry.RandomBloodSugar.Value },
		min:     models.BloodSugarMin,
		max:     models.BloodSugarMax,
		message: "Random blood sugar must be between 20 and 500 mg/dL",
	},
	{
		path:    "clinicalChemistry.fastingBloodSugar.value",
		value:   func(in *LabReportInput) *float64 { return in.ClinicalChemistry.FastingBloodSugar.Value },
		min:     models.BloodSugarMin,
		max:     models.BloodSugarMax,
		message: "Fasting blood sugar must be between 20 and 500 mg/dL",
	},
	{
		path:    "clinicalChemistry.creatinine.value",
		value:   func(in *LabReportInput) *float64 { return in.ClinicalChemistry.Creatinine.Value },
		min:     models.CreatinineMin,
		max:     models.CreatinineMax,
		message: "Creatinine must be between 0.1 and 20 mg/dL",
	},
	{
		path:    "clinicalChemistry.alt.value",
		value:   func(in *LabReportInput) *float64 { return in.ClinicalChemistry.Alt.Value },
		min:     models.AltMin,
		max:     models.AltMax,
		message: "ALT must be between 0 and 2000 U/L",
	},
}

// ValidateLabReport checks a report payload against the schema set: required
// references, enum membership, and every clinical range.
func ValidateLabReport(input LabReportInput) []apperrors.FieldError {
	fields := collectTagErrors(input)
	add := func(field, message string) {
		fields = append(fields, apperrors.FieldError{Field: field, Message: message})
	}

	if input.SampleType != "" && !models.IsValidSampleType(input.SampleType) {
		add("sampleType", "Sample type must be one of: Blood, Urine, Stool, CSF, or Others")
	}

	for _, rule := range numericRules {
		if v := rule.value(&input); v != nil && (*v < rule.min || *v > rule.max) {
			add(rule.path, rule.message)
		}
	}

	if bg := input.RapidDiagnosticTests.BloodGroup.Result; bg != "" && !models.IsValidBloodType(bg) {
		add("rapidDiagnosticTests.bloodGroup.result", "Blood group must be a valid blood type (A+, A-, B+, B-, AB+, AB-, O+, O-)")
	}

	if ph := input.UrineDipstickTests.PH; ph != "" {
		num, err := strconv.ParseFloat(ph, 64)
		if err != nil || num < models.UrinePHMin || num > models.UrinePHMax {
			add("urineDipstickTests.pH", "pH must be between 4.5 and 9")
		}
	}

	return fields
}

// BuildLabReport converts an accepted payload into the stored record.
func BuildLabReport(input LabReportInput) models.LabReport {
	return models.LabReport{
		PatientID:                input.Patient,
		RequestedByID:            input.RequestedBy,
		PerformedByID:            input.PerformedBy,
		LabNo:                    input.LabNo,
		ClinicalIndication:       input.ClinicalIndication,
		SampleType:               input.SampleType,
		OtherSampleSpecification: input.OtherSampleSpecification,
		HematologyTests:          input.HematologyTests,
		ParasitologyFluidTests:   input.ParasitologyFluidTests,
		RapidDiagnosticTests:     input.RapidDiagnosticTests,
		UrineDipstickTests:       input.UrineDipstickTests,
		ClinicalChemistry:        input.ClinicalChemistry,
		Comments:                 input.Comments,
	}
}
