package notification

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hr-notification/internal/domain"
	"hr-notification/internal/errs"
	"hr-notification/internal/handler/jwt"
	busmocks "hr-notification/internal/service/bus/mocks"
	notificationmocks "hr-notification/internal/service/notification/mocks"
)

const testSecret = "test-secret"

func newServer(t *testing.T, h *Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	server := gin.New()
	h.PublicRoutes(server)
	server.Use(jwt.NewTokenService(testSecret).Middleware())
	h.PrivateRoutes(server)
	return server
}

func authToken(t *testing.T, receiver domain.Receiver) string {
	t.Helper()
	token, err := jwt.NewTokenService(testSecret).Generate(receiver)
	require.NoError(t, err)
	return token
}

func decodeResult(t *testing.T, recorder *httptest.ResponseRecorder) ginx.Result {
	t.Helper()
	var res ginx.Result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	return res
}

func TestPublishEvent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) *busmocks.MockEventBus
		req      PublishEventReq
		wantCode int
	}{
		{
			name: "正常发布",
			mock: func(ctrl *gomock.Controller) *busmocks.MockEventBus {
				eventBus := busmocks.NewMockEventBus(ctrl)
				eventBus.EXPECT().Publish(gomock.Any(), domain.DomainEvent{
					Type:       domain.EventTypeLeaveRequested,
					ActorID:    "E1",
					TargetID:   "77",
					TargetType: "LEAVE",
				}).Return(domain.DomainEvent{ID: 1001}, nil)
				return eventBus
			},
			req: PublishEventReq{
				Type:       domain.EventTypeLeaveRequested,
				ActorID:    "E1",
				TargetID:   "77",
				TargetType: "LEAVE",
			},
		},
		{
			name: "入参非法",
			mock: func(ctrl *gomock.Controller) *busmocks.MockEventBus {
				eventBus := busmocks.NewMockEventBus(ctrl)
				eventBus.EXPECT().Publish(gomock.Any(), gomock.Any()).
					Return(domain.DomainEvent{}, fmt.Errorf("%w: 缺少事件类型", errs.ErrInvalidParameter))
				return eventBus
			},
			req:      PublishEventReq{ActorID: "E1"},
			wantCode: codeInvalidInput,
		},
		{
			name: "内部错误",
			mock: func(ctrl *gomock.Controller) *busmocks.MockEventBus {
				eventBus := busmocks.NewMockEventBus(ctrl)
				eventBus.EXPECT().Publish(gomock.Any(), gomock.Any()).
					Return(domain.DomainEvent{}, errors.New("数据库不可用"))
				return eventBus
			},
			req: PublishEventReq{
				Type:       domain.EventTypeLeaveRequested,
				ActorID:    "E1",
				TargetID:   "77",
				TargetType: "LEAVE",
			},
			wantCode: codeSystemError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			server := newServer(t, NewHandler(tc.mock(ctrl), nil))

			body, err := json.Marshal(tc.req)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()

			server.ServeHTTP(recorder, req)

			require.Equal(t, http.StatusOK, recorder.Code)
			res := decodeResult(t, recorder)
			assert.Equal(t, tc.wantCode, res.Code)
		})
	}
}

func TestList(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	receiver := domain.Receiver{ID: "9", Type: domain.ReceiverTypeAdmin}
	svc := notificationmocks.NewMockService(ctrl)
	svc.EXPECT().ListByReceiver(gomock.Any(), receiver, 0, 10).
		Return([]domain.Notification{
			{
				ID:     1,
				Type:   domain.EventTypeLeaveRequested,
				Actors: []string{"E1", "E2"},
				Count:  3,
				Status: domain.NotificationStatusUnread,
			},
		}, nil)

	server := newServer(t, NewHandler(nil, svc))

	req := httptest.NewRequest(http.MethodGet, "/api/notifications?limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+authToken(t, receiver))
	recorder := httptest.NewRecorder()

	server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	var res struct {
		Code int      `json:"code"`
		Data ListResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	require.Len(t, res.Data.Notifications, 1)
	got := res.Data.Notifications[0]
	assert.Equal(t, uint64(1), got.ID)
	// 列表条目带渲染好的文案
	assert.Equal(t, "3 new leave requests submitted", got.Message)
	assert.Equal(t, "UNREAD", got.Status)
}

func TestList_Unauthenticated(t *testing.T) {
	t.Parallel()
	server := newServer(t, NewHandler(nil, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	recorder := httptest.NewRecorder()

	server.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestUnreadCount(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	receiver := domain.Receiver{ID: "42", Type: domain.ReceiverTypeEmployee}
	svc := notificationmocks.NewMockService(ctrl)
	svc.EXPECT().UnreadCount(gomock.Any(), receiver).Return(int64(7), nil)

	server := newServer(t, NewHandler(nil, svc))

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/unread-count", nil)
	req.Header.Set("Authorization", "Bearer "+authToken(t, receiver))
	recorder := httptest.NewRecorder()

	server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	var res struct {
		Data UnreadCountResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	assert.Equal(t, int64(7), res.Data.Count)
}

func TestMarkSeen(t *testing.T) {
	t.Parallel()

	receiver := domain.Receiver{ID: "9", Type: domain.ReceiverTypeAdmin}

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) *notificationmocks.MockService
		body string
	}{
		{
			name: "指定ID",
			mock: func(ctrl *gomock.Controller) *notificationmocks.MockService {
				svc := notificationmocks.NewMockService(ctrl)
				svc.EXPECT().MarkSeen(gomock.Any(), receiver, []uint64{1, 2}).Return(nil)
				return svc
			},
			body: `{"ids":[1,2]}`,
		},
		{
			name: "空体全量标记",
			mock: func(ctrl *gomock.Controller) *notificationmocks.MockService {
				svc := notificationmocks.NewMockService(ctrl)
				svc.EXPECT().MarkSeen(gomock.Any(), receiver, gomock.Len(0)).Return(nil)
				return svc
			},
			body: `{}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			server := newServer(t, NewHandler(nil, tc.mock(ctrl)))

			req := httptest.NewRequest(http.MethodPost, "/api/notifications/seen", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+authToken(t, receiver))
			recorder := httptest.NewRecorder()

			server.ServeHTTP(recorder, req)

			require.Equal(t, http.StatusOK, recorder.Code)
			res := decodeResult(t, recorder)
			assert.Equal(t, "OK", res.Msg)
		})
	}
}
