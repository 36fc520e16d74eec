package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hospital-booking-backend/internal/notification"
	"hospital-booking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationServer(t *testing.T) (*httptest.Server, *notification.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	utils.InitJWT("test-secret", 15*time.Minute, time.Hour)

	hub := notification.NewHub()
	h := NewNotificationHandler(hub, nil)

	r := gin.New()
	r.GET("/ws/notifications/:hospital_id", h.Connect)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, hub
}

func wsURL(srv *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + path
}

// waitForGroupSize polls until the hospital's group reaches the wanted
// size; join/leave happen asynchronously to the client handshake.
func waitForGroupSize(t *testing.T, hub *notification.Hub, hospitalID uint, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.GroupSize(hospitalID) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("group %d never reached size %d", hospitalID, want)
}

func TestConnectAndReceiveNewBooking(t *testing.T) {
	srv, hub := newNotificationServer(t)
	pub := notification.NewPublisher(hub)

	token, err := utils.GenerateAccessToken(1, utils.RoleHospital)
	require.NoError(t, err)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/notifications/1?token="+token), nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	waitForGroupSize(t, hub, 1, 1)

	pub.Publish(1, notification.NewBookingEvent{
		Type:        notification.EventNewBooking,
		BookingID:   42,
		PatientName: "alice",
		Timestamp:   time.Now().UTC(),
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &frame))
	assert.Equal(t, "new_booking", frame["type"])
	assert.Equal(t, float64(42), frame["booking_id"])
	assert.Equal(t, "alice", frame["patient_name"])
}

func TestConnectAcceptsAuthorizationHeader(t *testing.T) {
	srv, hub := newNotificationServer(t)

	token, err := utils.GenerateAccessToken(1, utils.RoleHospital)
	require.NoError(t, err)

	header := http.Header{"Authorization": []string{"Bearer " + token}}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/notifications/1"), header)
	require.NoError(t, err)
	defer conn.Close()

	waitForGroupSize(t, hub, 1, 1)
}

func TestConnectMalformedHeaderFallsBackToQueryToken(t *testing.T) {
	srv, hub := newNotificationServer(t)

	token, err := utils.GenerateAccessToken(1, utils.RoleHospital)
	require.NoError(t, err)

	// A non-Bearer Authorization header must not mask a valid query token.
	header := http.Header{"Authorization": []string{"Basic dXNlcjpwYXNz"}}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/notifications/1?token="+token), header)
	require.NoError(t, err)
	defer conn.Close()

	waitForGroupSize(t, hub, 1, 1)
}

func TestConnectRejectsForeignHospital(t *testing.T) {
	srv, hub := newNotificationServer(t)

	token, err := utils.GenerateAccessToken(1, utils.RoleHospital)
	require.NoError(t, err)

	// Authenticated as hospital 1, claiming hospital 2's stream.
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/notifications/2?token="+token), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, hub.GroupSize(2))
	assert.Equal(t, 0, hub.GroupSize(1))
}

func TestConnectRejectsPatientToken(t *testing.T) {
	srv, _ := newNotificationServer(t)

	token, err := utils.GenerateAccessToken(1, utils.RolePatient)
	require.NoError(t, err)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/notifications/1?token="+token), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestConnectRequiresToken(t *testing.T) {
	srv, _ := newNotificationServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/notifications/1"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDisconnectThenPublishHasNoDeliveries(t *testing.T) {
	srv, hub := newNotificationServer(t)

	token, err := utils.GenerateAccessToken(1, utils.RoleHospital)
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/notifications/1?token="+token), nil)
	require.NoError(t, err)

	waitForGroupSize(t, hub, 1, 1)

	require.NoError(t, conn.Close())
	waitForGroupSize(t, hub, 1, 0)

	// Publishing right after the disconnect must complete normally with
	// zero deliveries.
	delivered := hub.Publish(1, []byte(`{"type":"new_booking"}`))
	assert.Equal(t, 0, delivered)
}

func TestTwoSessionsBothReceive(t *testing.T) {
	srv, hub := newNotificationServer(t)
	pub := notification.NewPublisher(hub)

	token, err := utils.GenerateAccessToken(2, utils.RoleHospital)
	require.NoError(t, err)

	conn1, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/notifications/2?token="+token), nil)
	require.NoError(t, err)
	defer conn1.Close()

	conn2, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/notifications/2?token="+token), nil)
	require.NoError(t, err)
	defer conn2.Close()

	waitForGroupSize(t, hub, 2, 2)

	pub.Publish(2, notification.NewBookingEvent{Type: notification.EventNewBooking, BookingID: 7})

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(payload), `"booking_id":7`)
	}
}
