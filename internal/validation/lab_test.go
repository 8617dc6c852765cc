package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labrecords/internal/models"
)

func f(v float64) *float64 { return &v }

func validReport() LabReportInput {
	return LabReportInput{
		Patient:            3,
		PerformedBy:        9,
		SampleType:         "Blood",
		ClinicalIndication: "routine checkup",
		HematologyTests: models.HematologyTests{
			Hemoglobin: models.Measurement{Requested: true, Value: f(14)},
			WbcCount:   models.Measurement{Requested: true, Value: f(7200)},
		},
		ClinicalChemistry: models.ClinicalChemistry{
			RandomBloodSugar: models.Measurement{Requested: true, Value: f(110)},
		},
	}
}

func TestValidateLabReportAcceptsValidPayload(t *testing.T) {
	assert.Empty(t, ValidateLabReport(validReport()))
}

func TestValidateLabReportMissingRequiredFields(t *testing.T) {
	fields := ValidateLabReport(LabReportInput{})
	paths := fieldPaths(fields)
	assert.Contains(t, paths, "patient")
	assert.Contains(t, paths, "performedBy")
	assert.Contains(t, paths, "sampleType")
}

func TestValidateLabReportSampleTypeEnum(t *testing.T) {
	input := validReport()
	input.SampleType = "Plasma"

	fields := ValidateLabReport(input)
	require.Len(t, fields, 1)
	assert.Equal(t, "sampleType", fields[0].Field)
}

func TestValidateLabReportOutOfRangeValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*LabReportInput)
		path   string
	}{
		{
			name:   "hemoglobin above max",
			mutate: func(in *LabReportInput) { in.HematologyTests.Hemoglobin.Value = f(26) },
			path:   "hematologyTests.hemoglobin.value",
		},
		{
			name:   "wbc below min",
			mutate: func(in *LabReportInput) { in.HematologyTests.WbcCount.Value = f(500) },
			path:   "hematologyTests.wbcCount.value",
		},
		{
			name: "neutrophils above 100",
			mutate: func(in *LabReportInput) {
				in.HematologyTests.DifferentialCount.Neutrophils.Value = f(101)
			},
			path: "hematologyTests.differentialCount.neutrophils.value",
		},
		{
			name:   "random blood sugar above max",
			mutate: func(in *LabReportInput) { in.ClinicalChemistry.RandomBloodSugar.Value = f(501) },
			path:   "clinicalChemistry.randomBloodSugar.value",
		},
		{
			name:   "fasting blood sugar below min",
			mutate: func(in *LabReportInput) { in.ClinicalChemistry.FastingBloodSugar.Value = f(19) },
			path:   "clinicalChemistry.fastingBloodSugar.value",
		},
		{
			name:   "creatinine below min",
			mutate: func(in *LabReportInput) { in.ClinicalChemistry.Creatinine.Value = f(0.05) },
			path:   "clinicalChemistry.creatinine.value",
		},
		{
			name:   "alt above max",
			mutate: func(in *LabReportInput) { in.ClinicalChemistry.Alt.Value = f(2001) },
			path:   "clinicalChemistry.alt.value",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validReport()
			tc.mutate(&input)

			fields := ValidateLabReport(input)
			require.NotEmpty(t, fields)
			assert.Contains(t, fieldPaths(fields), tc.path)
		})
	}
}

func TestValidateLabReportBoundsAreInclusive(t *testing.T) {
	input := validReport()
	input.HematologyTests.Hemoglobin.Value = f(25)
	input.HematologyTests.WbcCount.Value = f(1000)
	input.HematologyTests.DifferentialCount.Basophils.Value = f(0)
	input.ClinicalChemistry.Alt.Value = f(2000)
	input.ClinicalChemistry.Creatinine.Value = f(0.1)

	assert.Empty(t, ValidateLabReport(input))
}

func TestValidateLabReportAbsentValuesPass(t *testing.T) {
	// Every numeric value left nil must pass regardless of range, whether
	// the test was requested or not.
	input := validReport()
	input.HematologyTests = models.HematologyTests{
		Hemoglobin: models.Measurement{Requested: true},
	}
	input.ClinicalChemistry = models.ClinicalChemistry{}

	assert.Empty(t, ValidateLabReport(input))
}

func TestValidateLabReportUrinePH(t *testing.T) {
	t.Run("above max", func(t *testing.T) {
		input := validReport()
		input.UrineDipstickTests.PH = "9.5"

		fields := ValidateLabReport(input)
		require.Len(t, fields, 1)
		assert.Equal(t, "urineDipstickTests.pH", fields[0].Field)
	})

	t.Run("unparseable", func(t *testing.T) {
		input := validReport()
		input.UrineDipstickTests.PH = "acidic"

		fields := ValidateLabReport(input)
		assert.Contains(t, fieldPaths(fields), "urineDipstickTests.pH")
	})

	t.Run("in range", func(t *testing.T) {
		input := validReport()
		input.UrineDipstickTests.PH = "6.8"

		assert.Empty(t, ValidateLabReport(input))
	})

	t.Run("empty passes", func(t *testing.T) {
		input := validReport()
		input.UrineDipstickTests.PH = ""

		assert.Empty(t, ValidateLabReport(input))
	})
}

func TestValidateLabReportBloodGroup(t *testing.T) {
	input := validReport()
	input.RapidDiagnosticTests.BloodGroup = models.TextResult{Requested: true, Result: "Z+"}

	fields := ValidateLabReport(input)
	require.Len(t, fields, 1)
	assert.Equal(t, "rapidDiagnosticTests.bloodGroup.result", fields[0].Field)

	input.RapidDiagnosticTests.BloodGroup.Result = "AB-"
	assert.Empty(t, ValidateLabReport(input))
}

func TestBuildLabReportCarriesAllSections(t *testing.T) {
	input := validReport()
	input.Comments = "sample slightly hemolyzed"
	input.UrineDipstickTests.PH = "6.8"
	input.ParasitologyFluidTests.MalariaBloodFilm = models.TextResult{Requested: true, Result: "no parasites seen"}

	report := BuildLabReport(input)
	assert.Equal(t, uint(3), report.PatientID)
	assert.Equal(t, uint(9), report.PerformedByID)
	assert.Nil(t, report.RequestedByID)
	assert.Equal(t, "Blood", report.SampleType)
	assert.Equal(t, f(14), report.HematologyTests.Hemoglobin.Value)
	assert.Equal(t, "no parasites seen", report.ParasitologyFluidTests.MalariaBloodFilm.Result)
	assert.Equal(t, "6.8", report.UrineDipstickTests.PH)
	assert.Equal(t, "sample slightly hemolyzed", report.Comments)
}
