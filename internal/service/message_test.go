package service

import (
	"testing"
	"time"

	"github.com/shenikar/snaktox/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestComposeAlertMessage_Full(t *testing.T) {
	age := 34
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	msg := ComposeAlertMessage(models.IncidentSummary{
		SpeciesName: "Black Mamba",
		VenomType:   models.VenomNeurotoxic,
		RiskLevel:   models.RiskCritical,
		Address:     "Kibera, Nairobi",
		Victim:      models.VictimInfo{Age: &age, Gender: "Female", Condition: "Drowsy, ptosis"},
	}, at)

	assert.Contains(t, msg, "SNAKEBITE EMERGENCY ALERT")
	assert.Contains(t, msg, "Species: Black Mamba")
	assert.Contains(t, msg, "Venom Type: neurotoxic")
	assert.Contains(t, msg, "Risk Level: CRITICAL")
	assert.Contains(t, msg, "Location: Kibera, Nairobi")
	assert.Contains(t, msg, "Time: 14 Mar 2025 09:30 UTC")
	assert.Contains(t, msg, "Victim Info: Age 34, Female")
	assert.Contains(t, msg, "Condition: Drowsy, ptosis")
	assert.Contains(t, msg, "Please confirm receipt and antivenom availability")
}

func TestComposeAlertMessage_Fallbacks(t *testing.T) {
	msg := ComposeAlertMessage(models.IncidentSummary{
		SpeciesName: "Puff Adder",
		VenomType:   models.VenomCytotoxic,
		RiskLevel:   models.RiskHigh,
		Address:     "   ",
	}, time.Now())

	assert.Contains(t, msg, "Location: Check system for coordinates")
	assert.Contains(t, msg, "Victim Info: Age unknown, Gender unknown")
	assert.Contains(t, msg, "Condition: Not specified")
}
