package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unihostel/internal/adapter/api"
	"unihostel/internal/domain/entity"
	"unihostel/internal/usecase"
)

type fakeContactRepo struct {
	messages []*entity.ContactMessage
}

func (f *fakeContactRepo) Create(ctx context.Context, message *entity.ContactMessage) error {
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeContactRepo) ListAll(ctx context.Context) ([]*entity.ContactMessage, error) {
	return f.messages, nil
}

func (f *fakeContactRepo) MarkRead(ctx context.Context, id string) error { return nil }
func (f *fakeContactRepo) Delete(ctx context.Context, id string) error   { return nil }

func postContact(t *testing.T, h *ContactHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateMessage(e.NewContext(req, rec)))
	return rec
}

func TestCreateMessageRejectsMalformedPhone(t *testing.T) {
	repo := &fakeContactRepo{}
	h := NewContactHandler(usecase.NewContactUseCase(repo))

	body := `{"name":"Asha","email":"asha@example.com","phone":"not-a-phone-###","subject":"Room query","message":"Is a single room free next month?"}`
	rec := postContact(t, h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "phone")
	assert.Empty(t, repo.messages)
}

func TestCreateMessageAcceptsE164Phone(t *testing.T) {
	repo := &fakeContactRepo{}
	h := NewContactHandler(usecase.NewContactUseCase(repo))

	body := `{"name":"Asha","email":"asha@example.com","phone":"+919876543210","subject":"Room query","message":"Is a single room free next month?"}`
	rec := postContact(t, h, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.messages, 1)
	assert.Equal(t, "+919876543210", repo.messages[0].Phone)
}

func TestCreateMessageAllowsMissingPhone(t *testing.T) {
	repo := &fakeContactRepo{}
	h := NewContactHandler(usecase.NewContactUseCase(repo))

	body := `{"name":"Asha","email":"asha@example.com","subject":"Room query","message":"Is a single room free next month?"}`
	rec := postContact(t, h, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.messages, 1)
}
