// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/config"
	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChannel_HealthCheck(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	out := env.createSession(t, "host-token")

	conn, _, err := env.dial(t, out.ChannelPath, nil)
	require.NoError(t, err)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "HEALTH_CHECK"}))

	ack := readType(t, conn, models.TypeHealthCheckAck)
	assert.NotEmpty(t, ack["timestamp"])
}

func TestChannel_AppReady(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	out := env.createSession(t, "host-token")

	rec := &models.UserRecord{RecordID: testRecordID, Cards: []models.Card{{"id": "c1"}}}
	env.records.EXPECT().Load(gomock.Any(), "user-1").Return(rec, nil)

	conn, _, err := env.dial(t, out.ChannelPath, nil)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "APP_READY"}))

	info := readType(t, conn, models.TypeUserInfo)
	data := info["data"].(map[string]any)
	assert.Equal(t, testRecordID, data["recordId"])
	assert.Equal(t, "host-token", data["token"])
	assert.Equal(t, "app-1", data["appId"])
}

func TestChannel_TokenUpdateIsVisibleToApp(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	out := env.createSession(t, "host-token")

	conn, _, err := env.dial(t, out.ChannelPath, nil)
	require.NoError(t, err)

	resp := env.do(t, http.MethodPut, "/api/sessions/"+out.SessionID+"/token", "refreshed-token", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "REQUEST_TOKEN_REFRESH"}))

	res := readType(t, conn, models.TypeAuthRefreshResult)
	assert.Equal(t, true, res["success"])
	assert.Equal(t, "refreshed-token", res["token"])
}

func TestChannel_SavesKeepFrameOrder(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	out := env.createSession(t, "host-token")

	var (
		mu     sync.Mutex
		writes []string
	)
	env.records.EXPECT().
		Update(gomock.Any(), testRecordID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, patch models.RecordPatch) error {
			time.Sleep(5 * time.Millisecond)
			mu.Lock()
			writes = append(writes, patch.Cards[0].ID())
			mu.Unlock()
			return nil
		}).
		Times(2)

	conn, _, err := env.dial(t, out.ChannelPath, nil)
	require.NoError(t, err)

	for _, id := range []string{"A", "B"} {
		require.NoError(t, conn.WriteJSON(map[string]any{
			"type": "SAVE_DATA",
			"data": map[string]any{"recordId": testRecordID, "cards": []any{map[string]any{"id": id}}},
		}))
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(writes) == 2
	}, 2*time.Second, time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"A", "B"}, writes, "the last frame sent is the last one written")
}

func TestChannel_UnknownSession(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	_, resp, err := env.dial(t, "/api/sessions/unknown/channel", nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestChannel_OriginRejected(t *testing.T) {
	env := newTestEnv(t, config.Server{AppOrigins: []string{"https://app.example"}})
	out := env.createSession(t, "host-token")

	_, resp, err := env.dial(t, out.ChannelPath, http.Header{"Origin": {"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := env.dial(t, out.ChannelPath, http.Header{"Origin": {"https://app.example"}})
	require.NoError(t, err)
	assert.NotNil(t, conn)
}

func TestChannel_ClosedWithSession(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	out := env.createSession(t, "host-token")

	conn, _, err := env.dial(t, out.ChannelPath, nil)
	require.NoError(t, err)

	resp := env.do(t, http.MethodDelete, "/api/sessions/"+out.SessionID, "", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()

	var closeErr *websocket.CloseError
	require.True(t, errors.As(err, &closeErr), "got %v", err)
	assert.Equal(t, websocket.CloseGoingAway, closeErr.Code)
}

func TestChannel_ReattachStartsNewLifecycle(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	out := env.createSession(t, "host-token")

	env.records.EXPECT().Load(gomock.Any(), "user-1").
		Return(&models.UserRecord{RecordID: testRecordID}, nil).Times(2)

	first, _, err := env.dial(t, out.ChannelPath, nil)
	require.NoError(t, err)
	require.NoError(t, first.WriteJSON(map[string]any{"type": "APP_READY"}))
	readType(t, first, models.TypeUserInfo)
	require.NoError(t, first.Close())

	second, _, err := env.dial(t, out.ChannelPath, nil)
	require.NoError(t, err)
	require.NoError(t, second.WriteJSON(map[string]any{"type": "APP_READY"}))
	readType(t, second, models.TypeUserInfo)
}

func TestChannel_PingKeepsSessionAlive(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	out := env.createSession(t, "host-token")
	s, err := env.registry.Get(out.SessionID)
	require.NoError(t, err)

	conn, _, err := env.dial(t, out.ChannelPath, nil)
	require.NoError(t, err)

	// the client answers pings only while it reads
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	before := s.IdleSince()
	require.Eventually(t, func() bool {
		return s.IdleSince().After(before)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCheckAppOrigin(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		host    string
		want    bool
	}{
		{name: "no origin header", allowed: []string{"https://app.example"}, want: true},
		{name: "listed origin", allowed: []string{"https://app.example/"}, origin: "https://app.example", want: true},
		{name: "case insensitive", allowed: []string{"https://App.Example"}, origin: "https://app.example", want: true},
		{name: "unlisted origin", allowed: []string{"https://app.example"}, origin: "https://evil.example", want: false},
		{name: "wildcard", allowed: []string{"*"}, origin: "https://any.example", want: true},
		{name: "same origin without list", origin: "http://relay.local:8080", host: "relay.local:8080", want: true},
		{name: "cross origin without list", origin: "https://evil.example", host: "relay.local:8080", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(nil, nil, config.Server{AppOrigins: tt.allowed}, logger.Nop())

			r := httptest.NewRequest(http.MethodGet, "/api/sessions/s/channel", nil)
			if tt.host != "" {
				r.Host = tt.host
			}
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}

			assert.Equal(t, tt.want, h.checkAppOrigin(r))
		})
	}
}
