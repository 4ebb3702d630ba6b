package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/snaktox/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	defaultSendTimeout = 5 * time.Second
	maxParallelSends   = 8
)

// AlertDispatcher рассылает SMS больницам; сбой одной отправки не прерывает остальные
type AlertDispatcher struct {
	channel     AlertChannel
	logger      *logrus.Logger
	sendTimeout time.Duration
	now         func() time.Time
}

func NewAlertDispatcher(channel AlertChannel, logger *logrus.Logger, sendTimeout time.Duration) *AlertDispatcher {
	if sendTimeout <= 0 {
		sendTimeout = defaultSendTimeout
	}
	return &AlertDispatcher{
		channel:     channel,
		logger:      logger,
		sendTimeout: sendTimeout,
		now:         time.Now,
	}
}

// ChannelStatus отдает состояние канала (live/simulated) для ответа API
func (d *AlertDispatcher) ChannelStatus() models.ChannelStatus {
	return d.channel.Status()
}

// Notify уведомляет каждую больницу параллельно. Исходы лежат в порядке входного списка.
// Ошибка возвращается только если рассылка не началась (контекст уже отменен).
func (d *AlertDispatcher) Notify(ctx context.Context, hospitals []*models.Hospital, incident models.IncidentSummary) (*models.DispatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service: dispatch aborted before start: %w", err)
	}

	log := d.logger.WithFields(logrus.Fields{
		"service":      "alert_dispatcher",
		"method":       "Notify",
		"emergency_id": incident.EmergencyID,
		"hospitals":    len(hospitals),
	})

	targets := make([]*models.Hospital, 0, len(hospitals))
	for _, h := range hospitals {
		if h == nil {
			log.Warn("Nil hospital in dispatch list, skipped")
			continue
		}
		targets = append(targets, h)
	}

	assignments := make([]models.HospitalAssignment, len(targets))
	outcomes := make([]models.AlertOutcome, len(targets))

	var g errgroup.Group
	g.SetLimit(maxParallelSends)
	for i, h := range targets {
		assignments[i] = models.HospitalAssignment{HospitalID: h.ID, NotifiedAt: d.now()}
		g.Go(func() error {
			outcomes[i] = d.notifyOne(ctx, h, incident, log)
			return nil
		})
	}
	_ = g.Wait()

	result := &models.DispatchResult{
		Assignments:   assignments,
		Alerts:        outcomes,
		Summary:       models.Summarize(outcomes),
		ChannelStatus: d.channel.Status(),
	}
	log.WithFields(logrus.Fields{
		"attempted":  result.Summary.Attempted,
		"successful": result.Summary.Successful,
		"failed":     result.Summary.Failed,
		"skipped":    result.Summary.Skipped,
	}).Info("Hospital alerts dispatched")
	return result, nil
}

type sendReply struct {
	result models.SendResult
	err    error
}

func (d *AlertDispatcher) notifyOne(ctx context.Context, h *models.Hospital, incident models.IncidentSummary, log *logrus.Entry) models.AlertOutcome {
	log = log.WithFields(logrus.Fields{"hospital_id": h.ID, "hospital": h.Name})

	to := h.AlertContact()
	if to == "" {
		log.Warn("No emergency contact for hospital, alert skipped")
		return models.AlertOutcome{
			HospitalID: h.ID,
			To:         models.NoContactRecipient,
			Status:     models.AlertSkipped,
			SentAt:     d.now(),
			Reason:     models.NoContactReason,
		}
	}

	body := ComposeAlertMessage(incident, d.now())

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	// Канал может игнорировать контекст, поэтому ждем его ответа не дольше таймаута
	replies := make(chan sendReply, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				replies <- sendReply{err: fmt.Errorf("channel panic: %v", r)}
			}
		}()
		res, err := d.channel.Send(sendCtx, to, body)
		replies <- sendReply{result: res, err: err}
	}()

	outcome := models.AlertOutcome{HospitalID: h.ID, To: to}
	select {
	case reply := <-replies:
		outcome.SentAt = d.now()
		outcome.Mode = reply.result.Mode
		switch {
		case reply.err != nil:
			outcome.Status = models.AlertFailed
			outcome.Error = reply.err.Error()
		case !reply.result.Success:
			outcome.Status = models.AlertFailed
			outcome.Error = reply.result.Error
		default:
			outcome.Status = models.AlertSent
			outcome.MessageID = reply.result.MessageID
		}
	case <-sendCtx.Done():
		outcome.SentAt = d.now()
		outcome.Status = models.AlertFailed
		outcome.Error = fmt.Sprintf("send timed out: %v", sendCtx.Err())
	}

	if outcome.Status == models.AlertSent {
		log.WithField("message_id", outcome.MessageID).Info("Hospital alert sent")
	} else {
		log.WithField("error", outcome.Error).Warn("Hospital alert failed")
	}
	return outcome
}
