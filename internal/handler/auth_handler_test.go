package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"hospital-booking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshCookieTracksConfiguredExpiry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	utils.InitJWT("test-secret", 15*time.Minute, 72*time.Hour)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h := NewAuthHandler(nil)
	h.setRefreshCookie(c, "token-value")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.Equal(t, int((72 * time.Hour).Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
}
