package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/adapter"
	"github.com/MKhiriev/flashcard-bridge/internal/config"
	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/internal/mock"
	"github.com/MKhiriev/flashcard-bridge/internal/relay"
	"github.com/MKhiriev/flashcard-bridge/internal/service"
	"github.com/MKhiriev/flashcard-bridge/internal/utils"
	"github.com/MKhiriev/flashcard-bridge/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testRecordID = "5f1a2b3c4d5e6f7a8b9c0d1e"

// testEnv is a relay HTTP server backed by a real session registry and a
// mocked record client.
type testEnv struct {
	handler  *Handler
	registry *relay.Registry
	records  *mock.MockRecordClient
	server   *httptest.Server
}

func newTestEnv(t *testing.T, serverCfg config.Server) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	records := mock.NewMockRecordClient(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3").AnyTimes()
	appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.2.3", "2026-10-01", "9f2c1e0")).AnyTimes()

	cfg := config.StructuredConfig{
		Knack:  config.Knack{AppID: "app-1"},
		Server: serverCfg,
		Relay: config.Relay{
			SaveSettleDelay:      time.Millisecond,
			AddToBankSettleDelay: time.Millisecond,
			SessionIdleTTL:       time.Hour,
		},
	}
	factory := func(adapter.TokenSource, *logger.Logger) service.RecordClient { return records }
	registry := relay.NewRegistry(cfg, factory, utils.NewUUIDGenerator(), logger.Nop())

	h := NewHandler(registry, appInfo, serverCfg, logger.Nop())
	h.pingInterval = 50 * time.Millisecond

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	t.Cleanup(registry.CloseAll)

	return &testEnv{handler: h, registry: registry, records: records, server: srv}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.server.URL+path, r)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (e *testEnv) createSession(t *testing.T, token string) models.CreateSessionResponse {
	t.Helper()

	resp := e.do(t, http.MethodPost, "/api/sessions", token, models.CreateSessionRequest{
		User: models.UserProfile{ID: "user-1", Email: "student@example.com", Name: "Student"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out models.CreateSessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (e *testEnv) dial(t *testing.T, channelPath string, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(e.server.URL, "http") + channelPath

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if conn != nil {
		t.Cleanup(func() { _ = conn.Close() })
	}
	return conn, resp, err
}

// readType reads frames until one with the wanted type arrives.
func readType(t *testing.T, conn *websocket.Conn, want models.MessageType) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	for {
		var msg map[string]any
		require.NoError(t, conn.ReadJSON(&msg))
		if msg["type"] == string(want) {
			return msg
		}
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).
		SignedString([]byte("host-secret"))
	require.NoError(t, err)
	return token
}
