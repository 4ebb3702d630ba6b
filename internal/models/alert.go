package models

import (
	"time"

	"github.com/google/uuid"
)

type AlertStatus string

const (
	AlertSent    AlertStatus = "SENT"
	AlertFailed  AlertStatus = "FAILED"
	AlertSkipped AlertStatus = "SKIPPED"
)

const (
	NoContactRecipient = "No contact available"
	NoContactReason    = "no emergency contact number"
)

// AlertOutcome - результат одной попытки уведомить больницу
type AlertOutcome struct {
	HospitalID uuid.UUID   `json:"hospital_id"`
	To         string      `json:"to"`
	Status     AlertStatus `json:"status"`
	SentAt     time.Time   `json:"sent_at"`
	MessageID  string      `json:"message_id,omitempty"`
	Mode       ChannelMode `json:"mode,omitempty"`
	Error      string      `json:"error,omitempty"`
	Reason     string      `json:"reason,omitempty"`
}

// HospitalAssignment фиксирует, что больница выбрана для вызова, независимо от исхода SMS
type HospitalAssignment struct {
	HospitalID uuid.UUID `json:"hospital_id"`
	NotifiedAt time.Time `json:"notified_at"`
	Responded  bool      `json:"responded"`
}

type AlertSummary struct {
	Attempted  int `json:"attempted"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
	Skipped    int `json:"skipped"`
}

// Summarize считает агрегаты: attempted == successful + failed + skipped
func Summarize(outcomes []AlertOutcome) AlertSummary {
	summary := AlertSummary{Attempted: len(outcomes)}
	for _, o := range outcomes {
		switch o.Status {
		case AlertSent:
			summary.Successful++
		case AlertFailed:
			summary.Failed++
		case AlertSkipped:
			summary.Skipped++
		}
	}
	return summary
}

type ChannelMode string

const (
	ChannelModeLive      ChannelMode = "live"
	ChannelModeSimulated ChannelMode = "simulated"
)

// SendResult - ответ канала сообщений на одну отправку
type SendResult struct {
	Success   bool        `json:"success"`
	MessageID string      `json:"message_id,omitempty"`
	Mode      ChannelMode `json:"mode"`
	Error     string      `json:"error,omitempty"`
}

type ChannelStatus struct {
	Enabled        bool        `json:"is_enabled"`
	HasCredentials bool        `json:"has_credentials"`
	Mode           ChannelMode `json:"mode"`
	Service        string      `json:"service"`
}

// DispatchResult - итог рассылки: назначения и исходы идут отдельными списками
type DispatchResult struct {
	Assignments   []HospitalAssignment
	Alerts        []AlertOutcome
	Summary       AlertSummary
	ChannelStatus ChannelStatus
}
