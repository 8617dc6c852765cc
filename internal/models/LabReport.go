package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"labrecords/internal/apperrors"
)

// Sample types accepted on a report.
var SampleTypes = []string{"Blood", "Urine", "Stool", "CSF", "Others"}

func IsValidSampleType(st string) bool {
	for _, s := range SampleTypes {
		if s == st {
			return true
		}
	}
	return false
}

// Hard plausibility bounds for every numeric measurement. Values outside
// these are rejected outright, not clamped. Distinct from the per-field
// reference ranges, which only describe the normal interval for display.
const (
	HemoglobinMin   = 1
	HemoglobinMax   = 25
	WbcCountMin     = 1000
	WbcCountMax     = 50000
	PercentMin      = 0
	PercentMax      = 100
	BloodSugarMin   = 20
	BloodSugarMax   = 500
	CreatinineMin   = 0.1
	CreatinineMax   = 20
	AltMin          = 0
	AltMax          = 2000
	UrinePHMin      = 4.5
	UrinePHMax      = 9
)

// Reference is the normal-value interval shown alongside a measurement.
type Reference struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// Measurement is one orderable numeric test: a requested flag, an optional
// measured value and the reference range it is read against.
type Measurement struct {
	Requested bool      `json:"requested"`
	Value     *float64  `json:"value,omitempty"`
	Reference Reference `json:"reference"`
}

// DifferentialEntry is one cell line of the differential count.
type DifferentialEntry struct {
	Value     *float64  `json:"value,omitempty"`
	Reference Reference `json:"reference"`
}

type DifferentialCount struct {
	Requested   bool              `json:"requested"`
	Neutrophils DifferentialEntry `json:"neutrophils"`
	Lymphocytes DifferentialEntry `json:"lymphocytes"`
	Monocytes   DifferentialEntry `json:"monocytes"`
	Eosinophils DifferentialEntry `json:"eosinophils"`
	Basophils   DifferentialEntry `json:"basophils"`
}

type BloodCellMorphology struct {
	Requested bool   `json:"requested"`
	Comments  string `json:"comments,omitempty"`
}

type HematologyTests struct {
	Hemoglobin          Measurement         `json:"hemoglobin"`
	WbcCount            Measurement         `json:"wbcCount"`
	DifferentialCount   DifferentialCount   `json:"differentialCount"`
	BloodCellMorphology BloodCellMorphology `json:"bloodCellMorphology"`
}

// TextResult is one orderable free-text test.
type TextResult struct {
	Requested bool   `json:"requested"`
	Result    string `json:"result,omitempty"`
}

type FluidAnalysis struct {
	Requested  bool   `json:"requested"`
	Appearance string `json:"appearance,omitempty"`
	Color      string `json:"color,omitempty"`
	Glucose    string `json:"glucose,omitempty"`
	Protein    string `json:"protein,omitempty"`
	WbcCount   string `json:"wbcCount,omitempty"`
	GramStain  string `json:"gramStain,omitempty"`
}

type ParasitologyFluidTests struct {
	MalariaBloodFilm TextResult    `json:"malariaBloodFilm"`
	StoolMicroscopy  TextResult    `json:"stoolMicroscopy"`
	UrineMicroscopy  TextResult    `json:"urineMicroscopy"`
	FluidAnalysis    FluidAnalysis `json:"fluidAnalysis"`
}

type RapidDiagnosticTests struct {
	Malaria       TextResult `json:"malaria"`
	HepBsAg       TextResult `json:"hepBsAg"`
	Syphillis     TextResult `json:"syphillis"`
	PregnancyTest TextResult `json:"pregnancyTest"`
	HepEsAg       TextResult `json:"hepEsAg"`
	HepCsAg       TextResult `json:"hepCsAg"`
	Rk39          TextResult `json:"rk39"`
	BloodGroup    TextResult `json:"bloodGroup"`
	Hiv           TextResult `json:"hiv"`
}

type UrineDipstickTests struct {
	Requested  bool   `json:"requested"`
	Leucocytes string `json:"leucocytes,omitempty"`
	Blood      string `json:"blood,omitempty"`
	Protein    string `json:"protein,omitempty"`
	Ketone     string `json:"ketone,omitempty"`
	Nitrate    string `json:"nitrate,omitempty"`
	Glucose    string `json:"glucose,omitempty"`
	Bilirubin  string `json:"bilirubin,omitempty"`
	Urobilin   string `json:"urobilin,omitempty"`
	PH         string `json:"pH,omitempty"`
}

// ValueOnly is a measurement carrying no displayed reference range.
type ValueOnly struct {
	Requested bool     `json:"requested"`
	Value     *float64 `json:"value,omitempty"`
}

type ClinicalChemistry struct {
	RandomBloodSugar  Measurement `json:"randomBloodSugar"`
	FastingBloodSugar Measurement `json:"fastingBloodSugar"`
	Creatinine        ValueOnly   `json:"creatinine"`
	Alt               ValueOnly   `json:"alt"`
}

// LabReport is a single lab test record for one patient. The five test-group
// sections are stored as JSON documents; the user references are real foreign
// keys so reads can attach a restricted projection of each referenced account.
type LabReport struct {
	gorm.Model
	PatientID     uint  `json:"patient" gorm:"not null;index"`
	RequestedByID *uint `json:"requestedBy,omitempty" gorm:"index"`
	PerformedByID uint  `json:"performedBy" gorm:"not null;index"`

	Patient     *User `json:"-" gorm:"foreignKey:PatientID"`
	RequestedBy *User `json:"-" gorm:"foreignKey:RequestedByID"`
	PerformedBy *User `json:"-" gorm:"foreignKey:PerformedByID"`

	LabNo                    string `json:"labNo"`
	ClinicalIndication       string `json:"clinicalIndication,omitempty"`
	SampleType               string `json:"sampleType" gorm:"not null"`
	OtherSampleSpecification string `json:"otherSampleSpecification,omitempty"`

	HematologyTests        HematologyTests        `json:"hematologyTests" gorm:"serializer:json"`
	ParasitologyFluidTests ParasitologyFluidTests `json:"parasitologyFluidTests" gorm:"serializer:json"`
	RapidDiagnosticTests   RapidDiagnosticTests   `json:"rapidDiagnosticTests" gorm:"serializer:json"`
	UrineDipstickTests     UrineDipstickTests     `json:"urineDipstickTests" gorm:"serializer:json"`
	ClinicalChemistry      ClinicalChemistry      `json:"clinicalChemistry" gorm:"serializer:json"`

	Comments string `json:"comments,omitempty"`
}

// LabReportView is the read projection: the stored report with patient and
// performer expanded to their restricted user projections.
type LabReportView struct {
	ID                       uint                   `json:"id"`
	Patient                  *UserRef               `json:"patient"`
	RequestedBy              *UserRef               `json:"requestedBy,omitempty"`
	PerformedBy              *UserRef               `json:"performedBy"`
	LabNo                    string                 `json:"labNo"`
	ClinicalIndication       string                 `json:"clinicalIndication,omitempty"`
	SampleType               string                 `json:"sampleType"`
	OtherSampleSpecification string                 `json:"otherSampleSpecification,omitempty"`
	HematologyTests          HematologyTests        `json:"hematologyTests"`
	ParasitologyFluidTests   ParasitologyFluidTests `json:"parasitologyFluidTests"`
	RapidDiagnosticTests     RapidDiagnosticTests   `json:"rapidDiagnosticTests"`
	UrineDipstickTests       UrineDipstickTests     `json:"urineDipstickTests"`
	ClinicalChemistry        ClinicalChemistry      `json:"clinicalChemistry"`
	Comments                 string                 `json:"comments,omitempty"`
	CreatedAt                string                 `json:"createdAt"`
	UpdatedAt                string                 `json:"updatedAt"`
}

func (r *LabReport) View() LabReportView {
	view := LabReportView{
		ID:                       r.ID,
		LabNo:                    r.LabNo,
		ClinicalIndication:       r.ClinicalIndication,
		SampleType:               r.SampleType,
		OtherSampleSpecification: r.OtherSampleSpecification,
		HematologyTests:          r.HematologyTests,
		ParasitologyFluidTests:   r.ParasitologyFluidTests,
		RapidDiagnosticTests:     r.RapidDiagnosticTests,
		UrineDipstickTests:       r.UrineDipstickTests,
		ClinicalChemistry:        r.ClinicalChemistry,
		Comments:                 r.Comments,
		CreatedAt:                r.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		UpdatedAt:                r.UpdatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
	}
	if r.Patient != nil {
		ref := r.Patient.Ref()
		view.Patient = &ref
	}
	if r.RequestedBy != nil {
		ref := r.RequestedBy.Ref()
		view.RequestedBy = &ref
	}
	if r.PerformedBy != nil {
		ref := r.PerformedBy.Ref()
		view.PerformedBy = &ref
	}
	return view
}

// ApplyDefaults fills the display reference ranges that were not supplied and
// assigns a lab number when the requester left it blank.
func (r *LabReport) ApplyDefaults() {
	if r.LabNo == "" {
		r.LabNo = "LAB-" + strings.ToUpper(uuid.NewString()[:8])
	}
	defaultRef(&r.HematologyTests.Hemoglobin.Reference, 12, 17, "g/dL")
	defaultRef(&r.HematologyTests.WbcCount.Reference, 4800, 10800, "/mm³")
	diff := &r.HematologyTests.DifferentialCount
	defaultRef(&diff.Neutrophils.Reference, 40, 75, "%")
	defaultRef(&diff.Lymphocytes.Reference, 20, 40, "%")
	defaultRef(&diff.Monocytes.Reference, 2, 10, "%")
	defaultRef(&diff.Eosinophils.Reference, 1, 6, "%")
	defaultRef(&diff.Basophils.Reference, 0, 1, "%")
	defaultRef(&r.ClinicalChemistry.RandomBloodSugar.Reference, 75, 140, "mg/dL")
	defaultRef(&r.ClinicalChemistry.FastingBloodSugar.Reference, 70, 150, "mg/dL")
}

func defaultRef(ref *Reference, min, max float64, unit string) {
	if ref.Min == 0 && ref.Max == 0 && ref.Unit == "" {
		*ref = Reference{Min: min, Max: max, Unit: unit}
	}
}

// Validate re-checks report structure at the persistence boundary. It is
// intentionally written separately from internal/validation so an invalid
// record is rejected even when a caller bypasses the schema layer.
func (r *LabReport) Validate() error {
	var fields []apperrors.FieldError
	add := func(field, message string) {
		fields = append(fields, apperrors.FieldError{Field: field, Message: message})
	}

	if r.PatientID == 0 {
		add("patient", "patient reference is required")
	}
	if r.PerformedByID == 0 {
		add("performedBy", "performer reference is required")
	}
	if r.SampleType == "" {
		add("sampleType", "sample type is required")
	} else if !IsValidSampleType(r.SampleType) {
		add("sampleType", "sample type must be one of: Blood, Urine, Stool, CSF, or Others")
	}

	checkRange := func(field string, value *float64, min, max float64) {
		if value != nil && (*value < min || *value > max) {
			add(field, fmt.Sprintf("value must be between %g and %g", min, max))
		}
	}

	checkRange("hematologyTests.hemoglobin.value", r.HematologyTests.Hemoglobin.Value, HemoglobinMin, HemoglobinMax)
	checkRange("hematologyTests.wbcCount.value", r.HematologyTests.WbcCount.Value, WbcCountMin, WbcCountMax)
	diff := r.HematologyTests.DifferentialCount
	checkRange("hematologyTests.differentialCount.neutrophils.value", diff.Neutrophils.Value, PercentMin, PercentMax)
	checkRange("hematologyTests.differentialCount.lymphocytes.value", diff.Lymphocytes.Value, PercentMin, PercentMax)
	checkRange("hematologyTests.differentialCount.monocytes.value", diff.Monocytes.Value, PercentMin, PercentMax)
	checkRange("hematologyTests.differentialCount.eosinophils.value", diff.Eosinophils.Value, PercentMin, PercentMax)
	checkRange("hematologyTests.differentialCount.basophils.value", diff.Basophils.Value, PercentMin, PercentMax)
	checkRange("clinicalChemistry.randomBloodSugar.value", r.ClinicalChemistry.RandomBloodSugar.Value, BloodSugarMin, BloodSugarMax)
	checkRange("clinicalChemistry.fastingBloodSugar.value", r.ClinicalChemistry.FastingBloodSugar.Value, BloodSugarMin, BloodSugarMax)
	checkRange("clinicalChemistry.creatinine.value", r.ClinicalChemistry.Creatinine.Value, CreatinineMin, CreatinineMax)
	checkRange("clinicalChemistry.alt.value", r.ClinicalChemistry.Alt.Value, AltMin, AltMax)

	if bg := r.RapidDiagnosticTests.BloodGroup.Result; bg != "" && !IsValidBloodType(bg) {
		add("rapidDiagnosticTests.bloodGroup.result", "blood group must be a valid blood type (A+, A-, B+, B-, AB+, AB-, O+, O-)")
	}
	if ph := r.UrineDipstickTests.PH; ph != "" {
		num, err := strconv.ParseFloat(ph, 64)
		if err != nil || num < UrinePHMin || num > UrinePHMax {
			add("urineDipstickTests.pH", "pH must be between 4.5 and 9")
		}
	}

	if len(fields) > 0 {
		return apperrors.Validation(fields)
	}
	return nil
}

// BeforeSave is the store-side defense layer: structural checks run on every
// write, independent of the request-path schema validation.
func (r *LabReport) BeforeSave(tx *gorm.DB) error {
	r.ApplyDefaults()
	return r.Validate()
}
