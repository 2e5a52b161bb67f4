package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/models"
	"github.com/code01-66/Digi-Sanchaar/services/alert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPushGW(t *testing.T) *PushGW {
	t.Helper()

	privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)

	return NewPushGW(models.PushConfig{
		VAPIDPublicKey:  publicKey,
		VAPIDPrivateKey: privateKey,
		Subscriber:      "mailto:alerts@example.com",
		TTLSeconds:      60,
	})
}

func testSubscription(t *testing.T, endpoint string) string {
	t.Helper()

	// Key material from a real browser subscription shape; the test
	// server never decrypts, it only acknowledges delivery.
	sub := webpush.Subscription{
		Endpoint: endpoint,
		Keys: webpush.Keys{
			P256dh: "BNcRdreALRFXTkOOUHK1EtK2wtaz5Ry4YfYCA_0QTpQtUbVlUls0VJXg7A8u-Ts1XbjhazAkj7I99e8QcYP7DkM=",
			Auth:   "tBHItJI5svbpez7KI4CCXg==",
		},
	}
	raw, err := json.Marshal(sub)
	require.NoError(t, err)
	return string(raw)
}

func TestPushGW_Send_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	gw := newTestPushGW(t)

	err := gw.Send(context.Background(), testSubscription(t, srv.URL), []byte(`{"type":"sos_alert"}`))

	assert.NoError(t, err)
}

func TestPushGW_Send_GoneSubscription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer srv.Close()

	gw := newTestPushGW(t)

	err := gw.Send(context.Background(), testSubscription(t, srv.URL), []byte(`{}`))

	assert.ErrorIs(t, err, alert.ErrSubscriptionGone)
}

func TestPushGW_Send_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	gw := newTestPushGW(t)

	err := gw.Send(context.Background(), testSubscription(t, srv.URL), []byte(`{}`))

	assert.Error(t, err)
	assert.NotErrorIs(t, err, alert.ErrSubscriptionGone)
}

func TestPushGW_Send_InvalidSubscription(t *testing.T) {
	gw := newTestPushGW(t)

	err := gw.Send(context.Background(), "not json at all", []byte(`{}`))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid push subscription")
}
