package service

import (
	"context"
	"strings"
	"testing"

	"github.com/jdnielss/socialmedia-api/internal/errs"
	"github.com/jdnielss/socialmedia-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memMessageStore is an in-memory MessageStore.
type memMessageStore struct {
	nextID   int
	messages map[int]model.Message
}

func newMemMessageStore() *memMessageStore {
	return &memMessageStore{
		nextID:   1,
		messages: make(map[int]model.Message),
	}
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

// newMessageFixture builds a MessageService with one registered
// account ("alice") and returns the service plus the account id.
func newMessageFixture(t *testing.T) (*MessageService, *memMessageStore, int) {
	t.Helper()

	accounts := newMemAccountStore()
	alice, err := accounts.Insert(context.Background(), "alice", "password1")
	require.NoError(t, err)

	messages := newMemMessageStore()
	return NewMessageService(messages, accounts), messages, alice.AccountID
}

func badRequest(t *testing.T, err error) {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
}

func TestCreateMessageLengthBoundary(t *testing.T) {
	svc, _, alice := newMessageFixture(t)

	// Length 254 is the longest accepted text.
	created, err := svc.Create(context.Background(), model.Message{
		PostedBy:        alice,
		MessageText:     strings.Repeat("a", 254),
		TimePostedEpoch: 1000,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	// Length 255 is rejected.
	rejected, err := svc.Create(context.Background(), model.Message{
		PostedBy:        alice,
		MessageText:     strings.Repeat("a", 255),
		TimePostedEpoch: 1000,
	})
	assert.Nil(t, rejected)
	badRequest(t, err)
}

func TestCreateMessageRejectsBlankText(t *testing.T) {
	svc, _, alice := newMessageFixture(t)

	for _, text := range []string{"", "   ", "\t \n"} {
		created, err := svc.Create(context.Background(), model.Message{
			PostedBy:    alice,
			MessageText: text,
		})
		assert.Nil(t, created)
		badRequest(t, err)
	}

	// Internal whitespace is permitted.
	created, err := svc.Create(context.Background(), model.Message{
		PostedBy:    alice,
		MessageText: "hello there",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello there", created.MessageText)
}

func TestCreateMessageRejectsUnknownAuthor(t *testing.T) {
	svc, _, _ := newMessageFixture(t)

	created, err := svc.Create(context.Background(), model.Message{
		PostedBy:    9999,
		MessageText: "hi",
	})
	assert.Nil(t, created)
	badRequest(t, err)
}

func TestCreateMessageKeepsTimestampVerbatim(t *testing.T) {
	svc, _, alice := newMessageFixture(t)

	created, err := svc.Create(context.Background(), model.Message{
		PostedBy:        alice,
		MessageText:     "hi",
		TimePostedEpoch: 1669947792,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1669947792), created.TimePostedEpoch)
	assert.NotZero(t, created.MessageID)
}

func TestDeleteMessageIsIdempotentSafe(t *testing.T) {
	svc, _, alice := newMessageFixture(t)

	created, err := svc.Create(context.Background(), model.Message{
		PostedBy:    alice,
		MessageText: "hi",
	})
	require.NoError(t, err)

	// First delete returns the pre-deletion snapshot.
	deleted, err := svc.DeleteByID(context.Background(), created.MessageID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, created.MessageText, deleted.MessageText)

	// The record is gone.
	got, err := svc.GetByID(context.Background(), created.MessageID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Second delete is absence, not an error.
	deleted, err = svc.DeleteByID(context.Background(), created.MessageID)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestUpdateMessageRejectsOverlongText(t *testing.T) {
	svc, messages, alice := newMessageFixture(t)

	created, err := svc.Create(context.Background(), model.Message{
		PostedBy:    alice,
		MessageText: "original",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTextByID(context.Background(), created.MessageID, strings.Repeat("b", 256))
	assert.Nil(t, updated)
	badRequest(t, err)

	// Stored text is untouched.
	stored, err := messages.GetByID(context.Background(), created.MessageID)
	require.NoError(t, err)
	assert.Equal(t, "original", stored.MessageText)
}

func TestUpdateMessageRejectsBlankText(t *testing.T) {
	svc, _, alice := newMessageFixture(t)

	created, err := svc.Create(context.Background(), model.Message{
		PostedBy:    alice,
		MessageText: "original",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTextByID(context.Background(), created.MessageID, "   ")
	assert.Nil(t, updated)
	badRequest(t, err)
}

func TestUpdateMessageAbsentWhenNoSuchID(t *testing.T) {
	svc, _, _ := newMessageFixture(t)

	updated, err := svc.UpdateTextByID(context.Background(), 42, "new text")
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUpdateMessageReplacesTextOnly(t *testing.T) {
	svc, _, alice := newMessageFixture(t)

	created, err := svc.Create(context.Background(), model.Message{
		PostedBy:        alice,
		MessageText:     "original",
		TimePostedEpoch: 1000,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTextByID(context.Background(), created.MessageID, "edited")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "edited", updated.MessageText)
	assert.Equal(t, created.MessageID, updated.MessageID)
	assert.Equal(t, created.PostedBy, updated.PostedBy)
	assert.Equal(t, created.TimePostedEpoch, updated.TimePostedEpoch)
}

func TestGetByAccountIDReturnsEmptySliceNotAbsence(t *testing.T) {
	svc, _, alice := newMessageFixture(t)

	// Account exists but has no messages.
	got, err := svc.GetByAccountID(context.Background(), alice)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)

	// Unknown account also yields an empty slice, never an error.
	got, err = svc.GetByAccountID(context.Background(), 9999)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetAllReturnsEveryMessage(t *testing.T) {
	svc, _, alice := newMessageFixture(t)

	for _, text := range []string{"one", "two", "three"} {
		_, err := svc.Create(context.Background(), model.Message{
			PostedBy:    alice,
			MessageText: text,
		})
		require.NoError(t, err)
	}

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
