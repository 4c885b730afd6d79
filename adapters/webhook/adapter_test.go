package webhook

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"premium-quote/core/lead"
	"premium-quote/core/quote"
	"premium-quote/internal/config"
	qerrors "premium-quote/internal/errors"
)

type recorder struct {
	mu       sync.Mutex
	statuses []int
	bodies   [][]byte
	headers  []http.Header
}

// server answers with statuses in order, repeating the last one
func (rec *recorder) server(t *testing.T, statuses ...int) *httptest.Server {
	t.Helper()
	rec.statuses = statuses
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		n := len(rec.bodies)
		rec.bodies = append(rec.bodies, body)
		rec.headers = append(rec.headers, r.Header.Clone())
		rec.mu.Unlock()

		status := rec.statuses[len(rec.statuses)-1]
		if n < len(rec.statuses) {
			status = rec.statuses[n]
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(http.StatusText(status)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func (rec *recorder) calls() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return len(rec.bodies)
}

func sampleLead() *lead.Lead {
	date := quote.NewDate(1968, time.May, 12)
	req := quote.Request{
		VehicleType:           quote.VehicleCar,
		FirstRegistrationDate: &date,
		UserStatus:            quote.UserSupporter,
		Coverages:             &quote.Coverages{RC: true},
	}
	res := quote.Result{Annual: decimal.NewFromInt(79), Monthly: decimal.RequireFromString("6.58")}
	l := lead.New(req, lead.Contact{FirstName: "Lou", LastName: "Janssens", Email: "lou@example.test"}, res,
		time.Date(2026, time.July, 1, 8, 0, 0, 0, time.UTC))
	l.Vehicle = lead.Vehicle{Brand: "Volvo", Model: "P1800"}
	return l
}

func testConfig(endpoint string) *Config {
	cfg := DefaultConfig(ProviderCustom)
	cfg.Endpoint = endpoint
	cfg.Timeout = 2 * time.Second
	cfg.RetryDelay = time.Millisecond
	return cfg
}

func TestSendSuccess(t *testing.T) {
	rec := &recorder{}
	srv := rec.server(t, http.StatusOK)

	cfg := testConfig(srv.URL)
	cfg.Secret = "hook-secret"
	cfg.Headers["X-Source"] = "cli"

	l := sampleLead()
	delivery, err := New(cfg).Send(context.Background(), l)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, delivery.StatusCode)
	assert.Equal(t, 1, delivery.Attempts)
	assert.Equal(t, l.ID.String(), delivery.LeadID)
	require.Equal(t, 1, rec.calls())

	body := rec.bodies[0]
	assert.Equal(t, "application/json", rec.headers[0].Get("Content-Type"))
	assert.Equal(t, "cli", rec.headers[0].Get("X-Source"))
	assert.True(t, VerifySignature(body, rec.headers[0].Get(SignatureHeader), "hook-secret"))

	var wire map[string]any
	require.NoError(t, json.Unmarshal(body, &wire))
	assert.Equal(t, "Lou", wire["firstName"])
	assert.Equal(t, "car", wire["vehicleType"])
	assert.Equal(t, "1968-05-12", wire["firstRegistrationDate"])
	assert.Contains(t, wire, "estimatedPremium")
}

func TestSendAccepts2xx(t *testing.T) {
	rec := &recorder{}
	srv := rec.server(t, http.StatusAccepted)

	delivery, err := New(testConfig(srv.URL)).Send(context.Background(), sampleLead())
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, delivery.StatusCode)
	assert.Empty(t, rec.headers[0].Get(SignatureHeader))
}

func TestSendFailsOnNon2xx(t *testing.T) {
	for _, status := range []int{http.StatusFound, http.StatusBadRequest, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			rec := &recorder{}
			srv := rec.server(t, status)

			delivery, err := New(testConfig(srv.URL)).Send(context.Background(), sampleLead())
			require.Error(t, err)
			assert.Nil(t, delivery)
			assert.True(t, qerrors.IsType(err, qerrors.TypeNetwork))
			assert.Equal(t, 1, rec.calls(), "no automatic retry by default")
		})
	}
}

func TestSendRetries(t *testing.T) {
	rec := &recorder{}
	srv := rec.server(t, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusOK)

	cfg := testConfig(srv.URL)
	cfg.RetryCount = 3

	delivery, err := New(cfg).Send(context.Background(), sampleLead())
	require.NoError(t, err)
	assert.Equal(t, 3, delivery.Attempts)
	assert.Equal(t, 3, rec.calls())
}

func TestSendGivesUpAfterRetries(t *testing.T) {
	rec := &recorder{}
	srv := rec.server(t, http.StatusInternalServerError)

	cfg := testConfig(srv.URL)
	cfg.RetryCount = 2

	_, err := New(cfg).Send(context.Background(), sampleLead())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, rec.calls())
}

func TestSendWithoutEndpoint(t *testing.T) {
	_, err := New(DefaultConfig(ProviderCustom)).Send(context.Background(), sampleLead())
	require.Error(t, err)
	assert.True(t, qerrors.IsType(err, qerrors.TypeConfig))
}

func TestSendCancelled(t *testing.T) {
	rec := &recorder{}
	srv := rec.server(t, http.StatusOK)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testConfig(srv.URL)).Send(ctx, sampleLead())
	require.Error(t, err)
	assert.True(t, qerrors.IsType(err, qerrors.TypeNetwork))
	assert.Equal(t, 0, rec.calls())
}

func TestSendAbortsInFlightOnCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	cfg := testConfig(srv.URL)
	cfg.Timeout = 10 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	start := time.Now()
	_, err := New(cfg).Send(ctx, sampleLead())
	require.Error(t, err)
	assert.True(t, qerrors.IsType(err, qerrors.TypeNetwork))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSlackPayload(t *testing.T) {
	rec := &recorder{}
	srv := rec.server(t, http.StatusOK)

	cfg := testConfig(srv.URL)
	cfg.Provider = ProviderSlack

	_, err := New(cfg).Send(context.Background(), sampleLead())
	require.NoError(t, err)

	var msg struct {
		Text        string `json:"text"`
		Attachments []struct {
			Title string `json:"title"`
		} `json:"attachments"`
	}
	require.NoError(t, json.Unmarshal(rec.bodies[0], &msg))
	assert.Equal(t, "New quote request from Lou Janssens", msg.Text)
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "Estimate: 79.00/year", msg.Attachments[0].Title)
}

func TestFromAppConfig(t *testing.T) {
	app := config.Default().Webhook
	app.Endpoint = "https://hooks.example.test/lead"
	app.Headers = map[string]string{"X-Env": "test"}
	app.RetryCount = 1

	cfg := FromAppConfig(app)
	assert.Equal(t, ProviderCustom, cfg.Provider)
	assert.Equal(t, "https://hooks.example.test/lead", cfg.Endpoint)
	assert.Equal(t, "test", cfg.Headers["X-Env"])
	assert.Equal(t, 1, cfg.RetryCount)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"email":"lou@example.test"}`)
	sig := Sign(body, "k")

	assert.True(t, VerifySignature(body, sig, "k"))
	assert.False(t, VerifySignature(body, sig, "other"))
	assert.False(t, VerifySignature([]byte(`{}`), sig, "k"))
}
