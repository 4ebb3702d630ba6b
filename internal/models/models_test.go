package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHospitalEligible(t *testing.T) {
	base := Hospital{
		IsActive:       true,
		VerifiedStatus: VerifiedStatusVerified,
		AntivenomStock: AntivenomStock{Polyvalent: 3},
	}
	assert.True(t, base.Eligible())

	inactive := base
	inactive.IsActive = false
	assert.False(t, inactive.Eligible())

	pending := base
	pending.VerifiedStatus = VerifiedStatusPending
	assert.False(t, pending.Eligible())

	empty := base
	empty.AntivenomStock = AntivenomStock{}
	assert.False(t, empty.Eligible())

	mono := base
	mono.AntivenomStock = AntivenomStock{Monovalent: 1}
	assert.True(t, mono.Eligible())
}

func TestHospitalAlertContact(t *testing.T) {
	h := Hospital{ContactInfo: ContactInfo{Phone: "+254700000001", Emergency: "+254700000999"}}
	assert.Equal(t, "+254700000999", h.AlertContact())

	h.ContactInfo.Emergency = ""
	assert.Equal(t, "+254700000001", h.AlertContact())

	h.ContactInfo.Phone = ""
	assert.Empty(t, h.AlertContact())
}

func TestCertaintyFor(t *testing.T) {
	assert.Equal(t, CertaintyHigh, CertaintyFor(0.75))
	assert.Equal(t, CertaintyMedium, CertaintyFor(0.7))
	assert.Equal(t, CertaintyMedium, CertaintyFor(0.51))
	assert.Equal(t, CertaintyLow, CertaintyFor(0.5))
	assert.Equal(t, CertaintyLow, CertaintyFor(0.1))
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]AlertOutcome{
		{Status: AlertSent},
		{Status: AlertFailed},
		{Status: AlertSkipped},
		{Status: AlertSent},
	})
	assert.Equal(t, AlertSummary{Attempted: 4, Successful: 2, Failed: 1, Skipped: 1}, summary)
	assert.Equal(t, summary.Attempted, summary.Successful+summary.Failed+summary.Skipped)

	assert.Equal(t, AlertSummary{}, Summarize(nil))
}

func TestRiskLevelSeverity(t *testing.T) {
	assert.Greater(t, RiskCritical.Severity(), RiskHigh.Severity())
	assert.Greater(t, RiskHigh.Severity(), RiskMedium.Severity())
	assert.Greater(t, RiskMedium.Severity(), RiskLow.Severity())
	assert.Zero(t, RiskLevel("UNKNOWN").Severity())
}

func TestEmergencyIsAssigned(t *testing.T) {
	id := uuid.New()
	e := Emergency{AssignedHospitals: []HospitalAssignment{{HospitalID: id}}}
	assert.True(t, e.IsAssigned(id))
	assert.False(t, e.IsAssigned(uuid.New()))
}

func TestCoordinateValid(t *testing.T) {
	assert.True(t, Coordinate{Longitude: 36.82, Latitude: -1.29}.Valid())
	assert.False(t, Coordinate{Longitude: 181, Latitude: 0}.Valid())
	assert.False(t, Coordinate{Longitude: 0, Latitude: -91}.Valid())
}

func TestPrincipalCanModerate(t *testing.T) {
	assert.True(t, Principal{Role: RoleAdmin}.CanModerate())
	assert.True(t, Principal{Role: RoleModerator}.CanModerate())
	assert.False(t, Principal{Role: RoleUser}.CanModerate())
}
