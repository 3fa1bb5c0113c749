package controllers

import (
	"strings"
	"sync"

	"attendbot/response"
	"attendbot/services/logger"
	"attendbot/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

const userIDKey = "userId"

type NotificationObserver interface {
	Notify(message string) error
}

type MelodyObserver struct {
	session *melody.Session
	userID  string
}

func NewMelodyObserver(session *melody.Session, userID string) *MelodyObserver {
	return &MelodyObserver{
		session: session,
		userID:  userID,
	}
}

func (o *MelodyObserver) Notify(message string) error {
	return o.session.Write([]byte(message))
}

// NotificationController quản lý kết nối websocket của bảng tin chấm công
type NotificationController struct {
	logger    logger.Logger
	melody    *melody.Melody
	mu        sync.RWMutex
	observers map[string][]NotificationObserver
}

func NewNotificationController(log logger.Logger, m *melody.Melody) *NotificationController {
	nc := &NotificationController{
		logger:    log,
		melody:    m,
		observers: make(map[string][]NotificationObserver),
	}
	m.HandleConnect(func(s *melody.Session) {
		if userID := s.Request.URL.Query().Get(userIDKey); userID != "" {
			s.Set(userIDKey, userID)
			nc.RegisterObserver(s, userID)
		}
	})
	m.HandleDisconnect(func(s *melody.Session) {
		if userID, ok := s.Get(userIDKey); ok {
			nc.RemoveObserver(s, userID.(string))
		}
	})
	return nc
}

// HandleWebSocket nâng cấp kết nối /ws, ?userId= để nhận tin riêng
func (nc *NotificationController) HandleWebSocket(c *gin.Context) {
	if err := nc.melody.HandleRequest(c.Writer, c.Request); err != nil {
		nc.logger.Warn("⚠️ Không thể mở websocket: %v", err)
	}
}

func (nc *NotificationController) NotifyAll(ctx *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Tin nhắn là bắt buộc")
		return
	}

	if err := notification.NewMelodyService(nc.melody).SendMessage(req.Message); err != nil {
		nc.logger.Error("❌ Lỗi gửi thông báo tổng: %v", err)
		response.ServerError(ctx)
		return
	}

	response.Success(ctx, req.Message)
}

// NotifyUser gửi tin tới các kết nối đang mở của một user
func (nc *NotificationController) NotifyUser(ctx *gin.Context) {
	userID := strings.TrimSpace(ctx.Param("userId"))

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Tin nhắn là bắt buộc")
		return
	}

	nc.mu.RLock()
	observers := append([]NotificationObserver(nil), nc.observers[userID]...)
	nc.mu.RUnlock()

	if len(observers) == 0 {
		response.NotFound(ctx)
		return
	}

	delivered := 0
	for _, observer := range observers {
		if err := observer.Notify(req.Message); err != nil {
			nc.logger.Warn("⚠️ Không gửi được tin tới %s: %v", userID, err)
			continue
		}
		delivered++
	}

	response.Success(ctx, gin.H{"userId": userID, "delivered": delivered})
}

func (nc *NotificationController) RegisterObserver(session *melody.Session, userID string) {
	nc.mu.Lock()
	nc.observers[userID] = append(nc.observers[userID], NewMelodyObserver(session, userID))
	nc.mu.Unlock()
	nc.logger.Info("Người quan sát đã đăng ký cho userID: %s", userID)
}

func (nc *NotificationController) RemoveObserver(session *melody.Session, userID string) {
	nc.mu.Lock()
	observers := nc.observers[userID]
	for i, obs := range observers {
		if mo, ok := obs.(*MelodyObserver); ok && mo.session == session {
			nc.observers[userID] = append(observers[:i], observers[i+1:]...)
			break
		}
	}
	if len(nc.observers[userID]) == 0 {
		delete(nc.observers, userID)
	}
	nc.mu.Unlock()
	nc.logger.Info("Đã xóa người quan sát cho userID: %s", userID)
}

// ObserverCount số kết nối đang mở của một user
func (nc *NotificationController) ObserverCount(userID string) int {
	nc.mu.RLock()
	defer nc.mu.RUnlock()
	return len(nc.observers[userID])
}
