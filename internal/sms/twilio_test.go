package sms

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shenikar/snaktox/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSID = "AC0123456789"

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func liveConfig(baseURL string) Config {
	return Config{
		AccountSID:  testSID,
		AuthToken:   "token",
		PhoneNumber: "+15550000000",
		BaseURL:     baseURL,
		Timeout:     time.Second,
	}
}

func TestStatus_Modes(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantEnabled bool
		wantCreds   bool
	}{
		{name: "no credentials", cfg: Config{}, wantEnabled: false, wantCreds: false},
		{name: "bad sid", cfg: Config{AccountSID: "XX1", AuthToken: "t", PhoneNumber: "+1"}, wantEnabled: false, wantCreds: true},
		{name: "missing phone", cfg: Config{AccountSID: testSID, AuthToken: "t"}, wantEnabled: false, wantCreds: true},
		{name: "development", cfg: Config{AccountSID: testSID, AuthToken: "t", PhoneNumber: "+1", Development: true}, wantEnabled: false, wantCreds: true},
		{name: "live", cfg: liveConfig("http://localhost"), wantEnabled: true, wantCreds: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := NewTwilioChannel(tt.cfg, newTestLogger()).Status()
			assert.Equal(t, tt.wantEnabled, status.Enabled)
			assert.Equal(t, tt.wantCreds, status.HasCredentials)
			assert.Equal(t, "Twilio", status.Service)
			if tt.wantEnabled {
				assert.Equal(t, models.ChannelModeLive, status.Mode)
			} else {
				assert.Equal(t, models.ChannelModeSimulated, status.Mode)
			}
		})
	}
}

func TestSend_Simulated(t *testing.T) {
	ch := NewTwilioChannel(Config{}, newTestLogger())
	ch.now = func() time.Time { return time.UnixMilli(1700000000000) }

	res, err := ch.Send(context.Background(), "+254700000001", strings.Repeat("x", 300))

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "sim_1700000000000", res.MessageID)
	assert.Equal(t, models.ChannelModeSimulated, res.Mode)
}

func TestSend_Live_Success(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotBody, gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, _, _ = r.BasicAuth()
		_ = r.ParseForm()
		gotTo = r.PostForm.Get("To")
		gotFrom = r.PostForm.Get("From")
		gotBody = r.PostForm.Get("Body")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM123","status":"queued"}`))
	}))
	defer srv.Close()

	ch := NewTwilioChannel(liveConfig(srv.URL), newTestLogger())
	res, err := ch.Send(context.Background(), "+254700000001", "alert body")

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "SM123", res.MessageID)
	assert.Equal(t, models.ChannelModeLive, res.Mode)
	assert.Equal(t, "/2010-04-01/Accounts/"+testSID+"/Messages.json", gotPath)
	assert.Equal(t, testSID, gotUser)
	assert.Equal(t, "+254700000001", gotTo)
	assert.Equal(t, "+15550000000", gotFrom)
	assert.Equal(t, "alert body", gotBody)
}

func TestSend_Live_ProviderRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":21211,"message":"The 'To' number is not a valid phone number."}`))
	}))
	defer srv.Close()

	ch := NewTwilioChannel(liveConfig(srv.URL), newTestLogger())
	res, err := ch.Send(context.Background(), "bogus", "alert body")

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "The 'To' number is not a valid phone number.", res.Error)
}

func TestSend_Live_StatusWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ch := NewTwilioChannel(liveConfig(srv.URL), newTestLogger())
	res, err := ch.Send(context.Background(), "+254700000001", "alert body")

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "503")
}

func TestSend_Live_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	cfg := liveConfig(srv.URL)
	cfg.Timeout = 20 * time.Millisecond
	ch := NewTwilioChannel(cfg, newTestLogger())

	_, err := ch.Send(context.Background(), "+254700000001", "alert body")
	assert.Error(t, err)
}

func TestInstructions(t *testing.T) {
	assert.Contains(t, Instructions(models.ChannelStatus{Enabled: true}), "active")
	assert.Contains(t, Instructions(models.ChannelStatus{}), "simulated")
}
