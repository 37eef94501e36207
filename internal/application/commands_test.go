package application

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/bnema/labdesk/internal/adapters/session/memory"
	"github.com/bnema/labdesk/internal/domain"
	"github.com/bnema/labdesk/internal/ports"
	"github.com/bnema/labdesk/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	remote   *mocks.MockRemoteClient
	sink     *mocks.MockDownloadSink
	session  *memory.Store
	observer *recordingObserver
	registry *Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		remote:   mocks.NewMockRemoteClient(t),
		sink:     mocks.NewMockDownloadSink(t),
		session:  memory.NewStore(),
		observer: &recordingObserver{},
	}
	f.registry = NewRegistry(Deps{
		Remote:    f.remote,
		Session:   f.session,
		Downloads: f.sink,
	}, WithObserver(f.observer))
	RegisterAll(f.registry)

	return f
}

func (f *fixture) invoke(name string, args string) Result {
	return f.registry.Invoke(context.Background(), name, json.RawMessage(args))
}

func (f *fixture) expectCall(t *testing.T, check func(req ports.Request), raw ports.RawResponse, err error) {
	t.Helper()

	f.remote.EXPECT().Call(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, req ports.Request) (ports.RawResponse, error) {
		if check != nil {
			check(req)
		}
		return raw, err
	}).Once()
}

func encodeResult(t *testing.T, result Result) map[string]any {
	t.Helper()

	encoded, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	return decoded
}

var analyst = domain.User{
	ID:       7,
	Name:     "Ana",
	Email:    "ana@lab.test",
	Role:     domain.RoleAnalyst,
	Active:   true,
	Language: "pt-BR",
	Token:    "tok-7",
}

func TestUpdateSettingsMergesOnlyEchoedFields(t *testing.T) {
	f := newFixture(t)
	f.session.SaveUser(analyst)

	f.expectCall(t, func(req ports.Request) {
		assert.Equal(t, http.MethodPut, req.Method)
		assert.Equal(t, "/usuarios/configuracoes", req.Path)
		assert.Equal(t, []string{"7"}, req.Params)
		assert.Equal(t, "tok-7", req.Token)
	}, okResponse(`{"success":true,"dark_mode":true,"profile_photo_path":"/p.png"}`), nil)

	result := f.invoke("update_settings", `{"dark_mode":true,"profile_photo_path":"/p.png"}`)
	require.True(t, result.IsSuccess(), result.Message())

	want := analyst
	want.DarkMode = true
	want.ProfilePhoto = "/p.png"

	got, ok := f.session.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, want, got)

	encoded := encodeResult(t, result)
	data := encoded["data"].(map[string]any)
	assert.Equal(t, "/p.png", data["profile_photo"])
	assert.Equal(t, true, data["dark_mode"])
	assert.NotContains(t, data, "token")
}

func TestUpdateSettingsRequiresSession(t *testing.T) {
	f := newFixture(t)

	result := f.invoke("update_settings", `{"dark_mode":true}`)

	require.False(t, result.IsSuccess())
	assert.Equal(t, domain.FailureSession, result.Kind())
	assert.Equal(t, "no authenticated user", result.Message())
}

func TestLoginStoresUserWithToken(t *testing.T) {
	f := newFixture(t)

	f.expectCall(t, func(req ports.Request) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/auth/login", req.Path)
		assert.Equal(t, LoginArgs{Email: "bia@lab.test", Password: "s3cret"}, req.Body)
		assert.Empty(t, req.Token)
	}, okResponse(`{"success":true,"data":{"token":"abc","user":{"id":5,"name":"Bia","email":"bia@lab.test","role":"admin","active":1,"dark_mode":"0","profile_photo_path":"/b.png","language":"en"}}}`), nil)

	result := f.invoke("login", `{"email":"bia@lab.test","password":"s3cret"}`)
	require.True(t, result.IsSuccess(), result.Message())

	user, ok := f.session.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, domain.User{
		ID:           5,
		Name:         "Bia",
		Email:        "bia@lab.test",
		Role:         domain.RoleAdmin,
		Active:       true,
		ProfilePhoto: "/b.png",
		Language:     "en",
		Token:        "abc",
	}, user)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "abc")
}

func TestLoginRejectedKeepsSessionEmpty(t *testing.T) {
	f := newFixture(t)
	f.expectCall(t, nil, okResponse(`{"success":false,"message":"invalid credentials"}`), nil)

	result := f.invoke("login", `{"email":"bia@lab.test","password":"wrong"}`)

	require.False(t, result.IsSuccess())
	assert.Equal(t, "invalid credentials", result.Message())
	_, ok := f.session.CurrentUser()
	assert.False(t, ok)
}

func TestLoginLeavesCredentialRulesToTheServer(t *testing.T) {
	f := newFixture(t)

	f.expectCall(t, func(req ports.Request) {
		assert.Equal(t, LoginArgs{Email: "bia@lab.test"}, req.Body)
	}, ports.RawResponse{StatusCode: http.StatusUnprocessableEntity, Status: "422 Unprocessable Entity", Body: []byte(`{"success":false,"message":"password is required"}`)}, nil)

	result := f.invoke("login", `{"email":"bia@lab.test"}`)

	require.False(t, result.IsSuccess())
	assert.Equal(t, domain.FailureStatus, result.Kind())
	assert.Contains(t, result.Message(), "password is required")
}

func TestCommandsForwardArgumentsWithoutLocalRules(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    string
		check   func(t *testing.T, req ports.Request)
	}{
		{
			name:    "same passwords",
			command: "change_password",
			args:    `{"current_password":"x","new_password":"x"}`,
			check: func(t *testing.T, req ports.Request) {
				assert.Equal(t, ChangePasswordArgs{CurrentPassword: "x", NewPassword: "x"}, req.Body)
			},
		},
		{
			name:    "blank sample code",
			command: "create_sample",
			args:    `{"code":"","technique_id":0}`,
			check: func(t *testing.T, req ports.Request) {
				assert.Equal(t, SampleInput{}, req.Body)
			},
		},
		{
			name:    "page zero",
			command: "list_samples",
			args:    `{"page":0,"technique_id":-1}`,
			check: func(t *testing.T, req ports.Request) {
				assert.Equal(t, "page=0&technique_id=-1", req.Query.Encode())
			},
		},
		{
			name:    "zero stock delta",
			command: "adjust_inventory_stock",
			args:    `{"id":8,"delta":0}`,
			check: func(t *testing.T, req ports.Request) {
				assert.Equal(t, []string{"8", "estoque"}, req.Params)
			},
		},
		{
			name:    "unknown audit status",
			command: "list_financial_audits",
			args:    `{"status":"pending"}`,
			check: func(t *testing.T, req ports.Request) {
				assert.Equal(t, "status=pending", req.Query.Encode())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.session.SaveUser(analyst)

			f.expectCall(t, func(req ports.Request) {
				tt.check(t, req)
			}, ports.RawResponse{StatusCode: http.StatusBadRequest, Status: "400 Bad Request", Body: []byte(`{"success":false,"message":"rejected by server"}`)}, nil)

			result := f.invoke(tt.command, tt.args)

			require.False(t, result.IsSuccess())
			assert.Equal(t, domain.FailureStatus, result.Kind())
			assert.Contains(t, result.Message(), "rejected by server")
		})
	}
}

func TestLogoutClearsSessionEvenWhenRemoteFails(t *testing.T) {
	f := newFixture(t)
	f.session.SaveUser(analyst)
	f.session.SaveNotification(domain.Notification{ID: 1, Title: "Hi"})

	f.expectCall(t, func(req ports.Request) {
		assert.Equal(t, "tok-7", req.Token)
	}, ports.RawResponse{}, &domain.TransportError{Method: http.MethodPost, URL: "http://localhost:8080/auth/logout", Cause: errors.New("connection refused")})

	result := f.invoke("logout", "")

	require.False(t, result.IsSuccess())
	assert.Equal(t, domain.FailureTransport, result.Kind())
	_, ok := f.session.CurrentUser()
	assert.False(t, ok)
	_, ok = f.session.CurrentNotification()
	assert.False(t, ok)
}

func TestCurrentUserRefreshesSessionAndKeepsToken(t *testing.T) {
	f := newFixture(t)
	f.session.SaveUser(analyst)

	f.expectCall(t, func(req ports.Request) {
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/usuarios", req.Path)
		assert.Equal(t, []string{"7"}, req.Params)
	}, okResponse(`{"success":true,"data":{"id":7,"name":"Ana Souza","email":"ana@lab.test","role":"manager","active":true,"dark_mode":1,"language":"pt-BR"}}`), nil)

	result := f.invoke("current_user", `{}`)
	require.True(t, result.IsSuccess(), result.Message())

	user, _ := f.session.CurrentUser()
	assert.Equal(t, "Ana Souza", user.Name)
	assert.Equal(t, domain.RoleManager, user.Role)
	assert.True(t, user.DarkMode)
	assert.Equal(t, "tok-7", user.Token)
}

func TestListSamplesSendsOnlyPresentFilters(t *testing.T) {
	f := newFixture(t)

	f.expectCall(t, func(req ports.Request) {
		assert.Equal(t, "/amostras", req.Path)
		assert.Empty(t, req.Params)
		assert.Equal(t, "search=%C3%A1gua+bruta&status=IN_ANALYSIS", req.Query.Encode())
	}, okResponse(`{"success":true,"data":[{"id":1,"code":"AM-1","status":"in_analysis","urgent":0}]}`), nil)

	result := f.invoke("list_samples", `{"status":"IN_ANALYSIS","search":"água bruta"}`)
	require.True(t, result.IsSuccess(), result.Message())

	encoded := encodeResult(t, result)
	items := encoded["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "AM-1", items[0].(map[string]any)["code"])
}

func TestListSamplesSendsUnknownStatusFilterAsGiven(t *testing.T) {
	f := newFixture(t)

	f.expectCall(t, func(req ports.Request) {
		assert.Equal(t, "status=archived", req.Query.Encode())
	}, okResponse(`{"success":true,"data":[]}`), nil)

	result := f.invoke("list_samples", `{"status":"archived"}`)

	require.True(t, result.IsSuccess(), result.Message())
	assert.Equal(t, "samples loaded", result.Message())
}

func TestUpdateSampleStatusPatchesStatusAsGiven(t *testing.T) {
	f := newFixture(t)

	f.expectCall(t, func(req ports.Request) {
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.Equal(t, []string{"12", "status"}, req.Params)
		assert.Equal(t, map[string]string{"status": "Completed"}, req.Body)
	}, okResponse(`{"success":true,"data":{"id":12,"code":"AM-12","status":"completed"}}`), nil)

	result := f.invoke("update_sample_status", `{"id":12,"status":"Completed"}`)
	require.True(t, result.IsSuccess(), result.Message())
	assert.Equal(t, "sample status updated", result.Message())
}

func TestDeleteSampleSucceedsWithNullData(t *testing.T) {
	f := newFixture(t)
	f.expectCall(t, func(req ports.Request) {
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, []string{"3"}, req.Params)
	}, ports.RawResponse{StatusCode: http.StatusNoContent}, nil)

	result := f.invoke("delete_sample", `{"id":3}`)

	require.True(t, result.IsSuccess(), result.Message())
	encoded := encodeResult(t, result)
	assert.Contains(t, encoded, "data")
	assert.Nil(t, encoded["data"])
}

func TestGetSampleReportsStatusCode(t *testing.T) {
	f := newFixture(t)
	f.expectCall(t, nil, ports.RawResponse{StatusCode: http.StatusNotFound, Body: []byte(`{"message":"sample 99 not found"}`)}, nil)

	result := f.invoke("get_sample", `{"id":99}`)

	require.False(t, result.IsSuccess())
	assert.Equal(t, domain.FailureStatus, result.Kind())
	assert.Equal(t, "server returned status 404 Not Found: sample 99 not found", result.Message())
}

func TestAdjustInventoryStockBody(t *testing.T) {
	f := newFixture(t)
	f.expectCall(t, func(req ports.Request) {
		assert.Equal(t, []string{"8", "estoque"}, req.Params)
		encoded, err := json.Marshal(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"delta":-2.5,"reason":"used in batch 4"}`, string(encoded))
	}, okResponse(`{"success":true,"data":{"id":8,"name":"Ethanol","quantity":7.5,"minimum_quantity":10,"unit":"L"}}`), nil)

	result := f.invoke("adjust_inventory_stock", `{"id":8,"delta":-2.5,"reason":"used in batch 4"}`)
	require.True(t, result.IsSuccess(), result.Message())
}

func TestListFinancialAuditsQuery(t *testing.T) {
	f := newFixture(t)
	f.expectCall(t, func(req ports.Request) {
		assert.Equal(t, "/auditorias-financeiras", req.Path)
		assert.Equal(t, "status=closed&year=2025", req.Query.Encode())
	}, okResponse(`{"success":true,"data":[]}`), nil)

	result := f.invoke("list_financial_audits", `{"year":2025,"status":"closed"}`)
	require.True(t, result.IsSuccess(), result.Message())
}

func TestListMyNotificationsRequiresSessionBeforeIO(t *testing.T) {
	f := newFixture(t)

	result := f.invoke("list_my_notifications", `{}`)

	assert.Equal(t, domain.FailureSession, result.Kind())
	assert.Equal(t, "no authenticated user", result.Message())
}

func TestListMyNotificationsAddressesCurrentUser(t *testing.T) {
	f := newFixture(t)
	f.session.SaveUser(analyst)

	f.expectCall(t, func(req ports.Request) {
		assert.Equal(t, "/notificacoes/usuario", req.Path)
		assert.Equal(t, []string{"7"}, req.Params)
		assert.Equal(t, "unread=true", req.Query.Encode())
	}, okResponse(`{"success":true,"data":[{"id":1,"title":"Sample ready","read":0}]}`), nil)

	result := f.invoke("list_my_notifications", `{"unread_only":true}`)
	require.True(t, result.IsSuccess(), result.Message())
}

func TestCurrentNotificationReadsSession(t *testing.T) {
	f := newFixture(t)

	empty := f.invoke("current_notification", "")
	require.True(t, empty.IsSuccess())
	assert.Nil(t, encodeResult(t, empty)["data"])

	f.session.SaveNotification(domain.Notification{ID: 4, Title: "Audit closed"})
	loaded := f.invoke("current_notification", "")
	require.True(t, loaded.IsSuccess())
	data := encodeResult(t, loaded)["data"].(map[string]any)
	assert.Equal(t, "Audit closed", data["title"])
}

func TestDownloadFileSavesThroughSink(t *testing.T) {
	f := newFixture(t)
	payload := []byte("%PDF-1.4 report")

	f.expectCall(t, func(req ports.Request) {
		assert.Equal(t, "/arquivos", req.Path)
		assert.Equal(t, []string{"4", "download"}, req.Params)
		assert.True(t, req.Binary)
		assert.Equal(t, 30*time.Second, req.Timeout)
	}, ports.RawResponse{StatusCode: http.StatusOK, Body: payload}, nil)
	f.sink.EXPECT().Save(mock.Anything, "laudo.pdf", payload).Return(domain.Download{Path: "/home/ana/Downloads/laudo.pdf", Size: int64(len(payload)), ContentType: "application/pdf"}, nil).Once()

	result := f.invoke("download_file", `{"id":4,"filename":"laudo.pdf"}`)

	require.True(t, result.IsSuccess(), result.Message())
	assert.Equal(t, "file saved to /home/ana/Downloads/laudo.pdf", result.Message())
}

func TestDownloadFileDerivesNameAndReportsLocalFailures(t *testing.T) {
	f := newFixture(t)
	f.expectCall(t, nil, ports.RawResponse{StatusCode: http.StatusOK, Body: []byte("data")}, nil)
	f.sink.EXPECT().Save(mock.Anything, "arquivo-9", []byte("data")).Return(domain.Download{}, errors.New("disk full")).Once()

	result := f.invoke("download_file", `{"id":9}`)

	require.False(t, result.IsSuccess())
	assert.Equal(t, domain.FailureLocal, result.Kind())
	assert.Equal(t, "save download: disk full", result.Message())
}

func TestRequestsCarrySessionToken(t *testing.T) {
	f := newFixture(t)
	f.session.SaveUser(analyst)
	f.expectCall(t, func(req ports.Request) {
		assert.Equal(t, "tok-7", req.Token)
	}, okResponse(`{"success":true,"data":[]}`), nil)

	result := f.invoke("list_techniques", "")
	require.True(t, result.IsSuccess(), result.Message())
}
