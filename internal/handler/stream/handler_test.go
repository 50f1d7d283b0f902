package stream

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-notification/internal/domain"
	"hr-notification/internal/handler/jwt"
	"hr-notification/internal/service/push"
)

const testSecret = "test-secret"

func TestStream(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	gateway := push.NewRegistry()
	t.Cleanup(gateway.Close)

	tokenSvc := jwt.NewTokenService(testSecret)
	engine := gin.New()
	engine.Use(tokenSvc.Middleware())
	NewHandler(gateway).PrivateRoutes(engine)

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	receiver := domain.Receiver{ID: "9", Type: domain.ReceiverTypeAdmin}
	token, err := tokenSvc.Generate(receiver)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	// EventSource 不能带自定义头，token走query参数
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		server.URL+"/api/notifications/stream?token="+token, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// 连接注册是异步的，推到送达为止
	payload := push.Payload{
		Notification: domain.Notification{
			ID:    1,
			Type:  domain.EventTypeLeaveRequested,
			Count: 1,
		},
		Message: "E1 requested leave",
	}
	require.Eventually(t, func() bool {
		delivered, _ := gateway.Push(receiver.Type, receiver.ID, payload)
		return delivered > 0
	}, 3*time.Second, 10*time.Millisecond)

	reader := bufio.NewReader(resp.Body)
	var event, data string
	deadline := time.After(3 * time.Second)
	lines := make(chan string, 16)
	go func() {
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				close(lines)
				return
			}
			lines <- strings.TrimRight(line, "\n")
		}
	}()

	for data == "" {
		select {
		case line, ok := <-lines:
			if !ok {
				t.Fatal("推送流提前关闭")
			}
			switch {
			case strings.HasPrefix(line, "event: "):
				event = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				data = strings.TrimPrefix(line, "data: ")
			}
		case <-deadline:
			t.Fatal("等待推送消息超时")
		}
	}

	assert.Equal(t, "notification", event)
	assert.Contains(t, data, `"message":"E1 requested leave"`)
	assert.Contains(t, data, `"type":"LEAVE_REQUESTED"`)
}

func TestStream_Unauthenticated(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	gateway := push.NewRegistry()
	t.Cleanup(gateway.Close)

	engine := gin.New()
	engine.Use(jwt.NewTokenService(testSecret).Middleware())
	NewHandler(gateway).PrivateRoutes(engine)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/stream", nil)
	engine.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
