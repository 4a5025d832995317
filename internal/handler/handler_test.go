package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jdnielss/socialmedia-api/internal/config"
	"github.com/jdnielss/socialmedia-api/internal/handler"
	"github.com/jdnielss/socialmedia-api/internal/middleware"
	"github.com/jdnielss/socialmedia-api/internal/model"
	"github.com/jdnielss/socialmedia-api/internal/router"
	"github.com/jdnielss/socialmedia-api/internal/server"
	"github.com/jdnielss/socialmedia-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory stores backing the real services, so endpoint tests
// exercise the full router/middleware/handler/service stack without a
// database.

type memAccountStore struct {
	nextID   int
	accounts map[int]model.Account
}

func (m *memAccountStore) Insert(_ context.Context, username, password string) (*model.Account, error) {
	account := model.Account{AccountID: m.nextID, Username: username, Password: password}
	m.accounts[account.AccountID] = account
	m.nextID++
	return &account, nil
}

func (m *memAccountStore) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, a := range m.accounts {
		if a.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memAccountStore) GetByCredentials(_ context.Context, username, password string) (*model.Account, error) {
	for _, a := range m.accounts {
		if a.Username == username && a.Password == password {
			account := a
			return &account, nil
		}
	}
	return nil, nil
}

func (m *memAccountStore) GetByID(_ context.Context, id int) (*model.Account, error) {
	if a, ok := m.accounts[id]; ok {
		account := a
		return &account, nil
	}
	return nil, nil
}

type memMessageStore struct {
	nextID   int
	messages map[int]model.Message
}

func (m *memMessageStore) Insert(_ context.Context, msg model.Message) (*model.Message, error) {
	msg.MessageID = m.nextID
	m.messages[msg.MessageID] = msg
	m.nextID++
	return &msg, nil
}

func (m *memMessageStore) GetAll(_ context.Context) ([]model.Message, error) {
	all := []model.Message{}
	for id := 1; id < m.nextID; id++ {
		if msg, ok := m.messages[id]; ok {
			all = append(all, msg)
		}
	}
	return all, nil
}

func (m *memMessageStore) GetByID(_ context.Context, id int) (*model.Message, error) {
	if msg, ok := m.messages[id]; ok {
		out := msg
		return &out, nil
	}
	return nil, nil
}

func (m *memMessageStore) DeleteByID(_ context.Context, id int) (*model.Message, error) {
	if msg, ok := m.messages[id]; ok {
		delete(m.messages, id)
		out := msg
		return &out, nil
	}
	return nil, nil
}

func (m *memMessageStore) UpdateTextByID(_ context.Context, id int, text string) (*model.Message, error) {
	if msg, ok := m.messages[id]; ok {
		msg.MessageText = text
		m.messages[id] = msg
		out := msg
		return &out, nil
	}
	return nil, nil
}

func (m *memMessageStore) GetByAccountID(_ context.Context, accountID int) ([]model.Message, error) {
	out := []model.Message{}
	for id := 1; id < m.nextID; id++ {
		if msg, ok := m.messages[id]; ok && msg.PostedBy == accountID {
			out = append(out, msg)
		}
	}
	return out, nil
}

// setupTestServer wires the full stack (router, middleware, handlers,
// services) over in-memory stores and returns a running test server.
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := zerolog.Nop()
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			CORSAllowedOrigins: []string{"*"},
		},
		Observability: config.DefaultObservabilityConfig(),
	}
	s := &server.Server{Config: cfg, Logger: &log}

	accounts := &memAccountStore{nextID: 1, accounts: make(map[int]model.Account)}
	messages := &memMessageStore{nextID: 1, messages: make(map[int]model.Message)}

	services := &service.Services{
		Account: service.NewAccountService(accounts),
		Message: service.NewMessageService(messages, accounts),
	}

	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	ts := httptest.NewServer(router.New(handlers, middlewares))
	t.Cleanup(ts.Close)
	return ts
}

func doRequest(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func registerAlice(t *testing.T, ts *httptest.Server) model.Account {
	t.Helper()

	resp, body := doRequest(t, http.MethodPost, ts.URL+"/register", `{"username":"alice","password":"password1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var account model.Account
	require.NoError(t, json.Unmarshal([]byte(body), &account))
	return account
}

func TestRegisterEndToEnd(t *testing.T) {
	ts := setupTestServer(t)

	account := registerAlice(t, ts)
	assert.Equal(t, 1, account.AccountID)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, "password1", account.Password)

	// Re-registering the same username fails even with a different
	// password; the failure body is empty.
	resp, body := doRequest(t, http.MethodPost, ts.URL+"/register", `{"username":"alice","password":"otherpw"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, body)
}

func TestRegisterValidationFailures(t *testing.T) {
	ts := setupTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"blank username", `{"username":"   ","password":"password1"}`},
		{"short password", `{"username":"alice","password":"pw3"}`},
		{"malformed json", `{"username":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doRequest(t, http.MethodPost, ts.URL+"/register", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Empty(t, body)
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	ts := setupTestServer(t)
	registered := registerAlice(t, ts)

	resp, body := doRequest(t, http.MethodPost, ts.URL+"/login", `{"username":"alice","password":"password1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var account model.Account
	require.NoError(t, json.Unmarshal([]byte(body), &account))
	assert.Equal(t, registered.AccountID, account.AccountID)

	// Mismatch answers 401 with an empty body.
	resp, body = doRequest(t, http.MethodPost, ts.URL+"/login", `{"username":"alice","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, body)
}

func TestCreateAndFetchMessageRoundTrip(t *testing.T) {
	ts := setupTestServer(t)
	registerAlice(t, ts)

	resp, body := doRequest(t, http.MethodPost, ts.URL+"/messages",
		`{"posted_by":1,"message_text":"hi","time_posted_epoch":1000}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created model.Message
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.NotZero(t, created.MessageID)
	assert.Equal(t, 1, created.PostedBy)
	assert.Equal(t, "hi", created.MessageText)
	assert.Equal(t, int64(1000), created.TimePostedEpoch)

	// Fetching it back returns the identical record.
	resp, body = doRequest(t, http.MethodGet, ts.URL+"/messages/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched model.Message
	require.NoError(t, json.Unmarshal([]byte(body), &fetched))
	assert.Equal(t, created, fetched)
}

func TestCreateMessageFailures(t *testing.T) {
	ts := setupTestServer(t)
	registerAlice(t, ts)

	longText := strings.Repeat("a", 255)

	cases := []struct {
		name string
		body string
	}{
		{"unknown author", `{"posted_by":99,"message_text":"hi","time_posted_epoch":1000}`},
		{"blank text", `{"posted_by":1,"message_text":"   ","time_posted_epoch":1000}`},
		{"empty text", `{"posted_by":1,"message_text":"","time_posted_epoch":1000}`},
		{"text too long", `{"posted_by":1,"message_text":"` + longText + `","time_posted_epoch":1000}`},
		{"malformed json", `{"posted_by":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doRequest(t, http.MethodPost, ts.URL+"/messages", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Empty(t, body)
		})
	}
}

func TestGetMessageByIDNotFound(t *testing.T) {
	ts := setupTestServer(t)

	// Not-found lookups answer 200 with an empty body, not 404.
	resp, body := doRequest(t, http.MethodGet, ts.URL+"/messages/999", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body)
}

func TestDeleteMessageTwice(t *testing.T) {
	ts := setupTestServer(t)
	registerAlice(t, ts)

	_, _ = doRequest(t, http.MethodPost, ts.URL+"/messages",
		`{"posted_by":1,"message_text":"to delete","time_posted_epoch":1000}`)

	// First delete returns the deleted record.
	resp, body := doRequest(t, http.MethodDelete, ts.URL+"/messages/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var deleted model.Message
	require.NoError(t, json.Unmarshal([]byte(body), &deleted))
	assert.Equal(t, "to delete", deleted.MessageText)

	// Second delete answers 200 with an empty body.
	resp, body = doRequest(t, http.MethodDelete, ts.URL+"/messages/1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body)

	// And the record stays gone.
	resp, body = doRequest(t, http.MethodGet, ts.URL+"/messages/1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body)
}

func TestUpdateMessageEndpoint(t *testing.T) {
	ts := setupTestServer(t)
	registerAlice(t, ts)

	_, _ = doRequest(t, http.MethodPost, ts.URL+"/messages",
		`{"posted_by":1,"message_text":"original","time_posted_epoch":1000}`)

	// Overlong replacement text fails and leaves the record unchanged.
	overlong := strings.Repeat("b", 256)
	resp, body := doRequest(t, http.MethodPatch, ts.URL+"/messages/1", `{"message_text":"`+overlong+`"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, body)

	resp, body = doRequest(t, http.MethodGet, ts.URL+"/messages/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var current model.Message
	require.NoError(t, json.Unmarshal([]byte(body), &current))
	assert.Equal(t, "original", current.MessageText)

	// Updating a missing message is a 400, not a 200-empty.
	resp, body = doRequest(t, http.MethodPatch, ts.URL+"/messages/42", `{"message_text":"edited"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, body)

	// Valid update returns the record with new text, other fields intact.
	resp, body = doRequest(t, http.MethodPatch, ts.URL+"/messages/1", `{"message_text":"edited"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated model.Message
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "edited", updated.MessageText)
	assert.Equal(t, 1, updated.MessageID)
	assert.Equal(t, 1, updated.PostedBy)
	assert.Equal(t, int64(1000), updated.TimePostedEpoch)
}

func TestAccountMessagesEndpoint(t *testing.T) {
	ts := setupTestServer(t)
	registerAlice(t, ts)

	// No messages yet: empty JSON array, not an error and not null.
	resp, body := doRequest(t, http.MethodGet, ts.URL+"/accounts/1/messages", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, body)

	_, _ = doRequest(t, http.MethodPost, ts.URL+"/messages",
		`{"posted_by":1,"message_text":"first","time_posted_epoch":1}`)
	_, _ = doRequest(t, http.MethodPost, ts.URL+"/messages",
		`{"posted_by":1,"message_text":"second","time_posted_epoch":2}`)

	resp, body = doRequest(t, http.MethodGet, ts.URL+"/accounts/1/messages", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var messages []model.Message
	require.NoError(t, json.Unmarshal([]byte(body), &messages))
	assert.Len(t, messages, 2)
}

func TestGetAllMessagesEndpoint(t *testing.T) {
	ts := setupTestServer(t)
	registerAlice(t, ts)

	resp, body := doRequest(t, http.MethodGet, ts.URL+"/messages", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, body)

	_, _ = doRequest(t, http.MethodPost, ts.URL+"/messages",
		`{"posted_by":1,"message_text":"hello","time_posted_epoch":1}`)

	resp, body = doRequest(t, http.MethodGet, ts.URL+"/messages", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var messages []model.Message
	require.NoError(t, json.Unmarshal([]byte(body), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].MessageText)
}

func TestUnknownRouteAnswers404(t *testing.T) {
	ts := setupTestServer(t)

	resp, body := doRequest(t, http.MethodGet, ts.URL+"/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, body)
}
