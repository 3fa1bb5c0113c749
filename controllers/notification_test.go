package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"attendbot/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/stretchr/testify/assert"
)

func notifyRouter(nc *NotificationController) *gin.Engine {
	r := gin.New()
	r.POST("/notify", nc.NotifyAll)
	r.POST("/notify/:userId", nc.NotifyUser)
	return r
}

func TestNotifyAll(t *testing.T) {
	m := melody.New()
	defer m.Close()
	r := notifyRouter(NewNotificationController(logger.NopLogger{}, m))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notify", strings.NewReader(`{"message":"hello"}`)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notify", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotifyUserWithoutObservers(t *testing.T) {
	m := melody.New()
	defer m.Close()
	nc := NewNotificationController(logger.NopLogger{}, m)

	w := httptest.NewRecorder()
	notifyRouter(nc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notify/42", strings.NewReader(`{"message":"hi"}`)))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, nc.ObserverCount("42"))
}
