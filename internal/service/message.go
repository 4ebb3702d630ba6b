package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/snaktox/internal/models"
)

const alertTimeLayout = "02 Jan 2006 15:04 MST"

// ComposeAlertMessage собирает текст SMS для больницы
func ComposeAlertMessage(incident models.IncidentSummary, at time.Time) string {
	address := incident.Address
	if strings.TrimSpace(address) == "" {
		address = "Check system for coordinates"
	}

	age := "Age unknown"
	if incident.Victim.Age != nil {
		age = fmt.Sprintf("Age %d", *incident.Victim.Age)
	}
	gender := incident.Victim.Gender
	if gender == "" {
		gender = "Gender unknown"
	}
	condition := incident.Victim.Condition
	if condition == "" {
		condition = "Not specified"
	}

	var b strings.Builder
	b.WriteString("🚨 SNAKEBITE EMERGENCY ALERT 🚨\n\n")
	fmt.Fprintf(&b, "Species: %s\n", incident.SpeciesName)
	fmt.Fprintf(&b, "Venom Type: %s\n", incident.VenomType)
	fmt.Fprintf(&b, "Risk Level: %s\n", incident.RiskLevel)
	fmt.Fprintf(&b, "Location: %s\n", address)
	fmt.Fprintf(&b, "Time: %s\n\n", at.Format(alertTimeLayout))
	fmt.Fprintf(&b, "Victim Info: %s, %s\n", age, gender)
	fmt.Fprintf(&b, "Condition: %s\n\n", condition)
	b.WriteString("ACTION REQUIRED: Please confirm receipt and antivenom availability.\n\n")
	b.WriteString("- SnaKTox Emergency System")
	return b.String()
}
