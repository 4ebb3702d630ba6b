// Package sms отправляет оповещения больницам через Twilio Messages API.
package sms

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/shenikar/snaktox/internal/config"
	"github.com/shenikar/snaktox/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	serviceName        = "Twilio"
	messagesPathFormat = "/2010-04-01/Accounts/%s/Messages.json"
	logPreviewLength   = 100
)

// Config - неизменяемая конфигурация канала, собирается один раз при старте
type Config struct {
	AccountSID  string
	AuthToken   string
	PhoneNumber string
	BaseURL     string
	Timeout     time.Duration
	Development bool
}

// ConfigFromApp собирает Config из конфигурации приложения
func ConfigFromApp(cfg *config.Config) Config {
	return Config{
		AccountSID:  cfg.TwilioAccountSID,
		AuthToken:   cfg.TwilioAuthToken,
		PhoneNumber: cfg.TwilioPhoneNumber,
		BaseURL:     cfg.TwilioBaseURL,
		Timeout:     cfg.SMSTimeout,
		Development: cfg.IsDevelopment(),
	}
}

func (c Config) hasCredentials() bool {
	return c.AccountSID != "" && c.AuthToken != ""
}

// live - реальные отправки возможны только с полным набором реквизитов и вне development
func (c Config) live() bool {
	return c.hasCredentials() && c.PhoneNumber != "" &&
		strings.HasPrefix(c.AccountSID, "AC") && !c.Development
}

type messageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TwilioChannel - канал SMS. Без валидных реквизитов работает в режиме симуляции:
// сообщения пишутся в лог и считаются доставленными.
type TwilioChannel struct {
	cfg        Config
	enabled    bool
	httpClient *resty.Client
	logger     *logrus.Logger
	now        func() time.Time
}

func NewTwilioChannel(cfg Config, logger *logrus.Logger) *TwilioChannel {
	ch := &TwilioChannel{
		cfg:     cfg,
		enabled: cfg.live(),
		logger:  logger,
		now:     time.Now,
	}
	if ch.enabled {
		ch.httpClient = resty.New().
			SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
			SetTimeout(cfg.Timeout).
			SetBasicAuth(cfg.AccountSID, cfg.AuthToken).
			SetHeader("Accept", "application/json")
		logger.WithField("service", serviceName).Info("SMS channel initialized in live mode")
	} else {
		logger.WithFields(logrus.Fields{
			"service":         serviceName,
			"has_credentials": cfg.hasCredentials(),
		}).Warn("SMS channel running in simulated mode, messages will be logged but not sent")
	}
	return ch
}

// Send отправляет одно сообщение. Ошибка означает сбой транспорта или таймаут;
// отказ провайдера приходит как SendResult{Success: false}.
func (ch *TwilioChannel) Send(ctx context.Context, to, body string) (models.SendResult, error) {
	log := ch.logger.WithFields(logrus.Fields{
		"service": serviceName,
		"to":      to,
	})

	if !ch.enabled {
		log.WithField("preview", preview(body)).Info("SMS alert (simulated)")
		return models.SendResult{
			Success:   true,
			MessageID: fmt.Sprintf("sim_%d", ch.now().UnixMilli()),
			Mode:      models.ChannelModeSimulated,
		}, nil
	}

	var (
		result  messageResponse
		failure errorResponse
	)
	resp, err := ch.httpClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"To":   to,
			"From": ch.cfg.PhoneNumber,
			"Body": body,
		}).
		SetResult(&result).
		SetError(&failure).
		Post(fmt.Sprintf(messagesPathFormat, ch.cfg.AccountSID))
	if err != nil {
		log.WithError(err).Error("SMS request failed")
		return models.SendResult{Mode: models.ChannelModeLive}, fmt.Errorf("sms: send to %s: %w", to, err)
	}

	if !resp.IsSuccess() || result.SID == "" {
		reason := failure.Message
		if reason == "" {
			reason = fmt.Sprintf("provider responded with status %d", resp.StatusCode())
		}
		log.WithFields(logrus.Fields{
			"status_code": resp.StatusCode(),
			"error_code":  failure.Code,
		}).Warn("SMS rejected by provider")
		return models.SendResult{Success: false, Mode: models.ChannelModeLive, Error: reason}, nil
	}

	log.WithField("message_id", result.SID).Info("SMS sent successfully")
	return models.SendResult{Success: true, MessageID: result.SID, Mode: models.ChannelModeLive}, nil
}

func (ch *TwilioChannel) Status() models.ChannelStatus {
	mode := models.ChannelModeSimulated
	if ch.enabled {
		mode = models.ChannelModeLive
	}
	return models.ChannelStatus{
		Enabled:        ch.enabled,
		HasCredentials: ch.cfg.hasCredentials(),
		Mode:           mode,
		Service:        serviceName,
	}
}

// Instructions - подсказка для оператора к текущему режиму канала
func Instructions(status models.ChannelStatus) string {
	if status.Enabled {
		return "SMS service is active and will send real messages"
	}
	return "SMS service is in simulated mode. Messages are logged but not sent."
}

func preview(body string) string {
	if utf8.RuneCountInString(body) <= logPreviewLength {
		return body
	}
	return string([]rune(body)[:logPreviewLength]) + "..."
}
