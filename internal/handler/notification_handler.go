package handler

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"hospital-booking-backend/internal/notification"
	"hospital-booking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type NotificationHandler struct {
	hub      *notification.Hub
	upgrader websocket.Upgrader
}

func NewNotificationHandler(hub *notification.Hub, allowedOrigins []string) *NotificationHandler {
	return &NotificationHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					// Non-browser clients don't send an Origin header
					return true
				}
				for _, allowed := range allowedOrigins {
					if origin == allowed {
						return true
					}
				}
				return false
			},
		},
	}
}

// Connect authenticates the caller, verifies it is permitted to act as
// the hospital named in the path, and only then upgrades the connection
// and joins the hospital's notification group.
func (h *NotificationHandler) Connect(c *gin.Context) {
	hospitalID, err := strconv.ParseUint(c.Param("hospital_id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	token := extractToken(c)
	if token == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	claims, err := utils.ValidateAccessToken(token)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	if claims.Role != utils.RoleHospital || claims.AccountID != uint(hospitalID) {
		utils.ErrorResponse(c, http.StatusForbidden, "Not authorized for this hospital's notifications")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote an HTTP error to the client
		log.Printf("notification: upgrade failed for hospital %d: %v", hospitalID, err)
		return
	}

	session := notification.NewSession(h.hub, conn, uint(hospitalID))
	if err := h.hub.Join(uint(hospitalID), session); err != nil {
		log.Printf("notification: join failed for hospital %d: %v", hospitalID, err)
		conn.Close()
		return
	}

	go session.WritePump()
	session.ReadPump()
}

// extractToken reads the access token from the Authorization header or,
// because browser WebSocket clients cannot set headers, from the token
// query parameter.
func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	return c.Query("token")
}
