package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"

	"sendaboop-backend/internal/registry"
	"sendaboop-backend/internal/services"
	"sendaboop-backend/internal/token"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	To      string
	Subject string
	HTML    string
}

type fakeSender struct {
	mu     sync.Mutex
	sent   []sentEmail
	failTo map[string]error
}

func newFakeSender() *fakeSender {
	return &fakeSender{failTo: make(map[string]error)}
}

func (f *fakeSender) Send(_ context.Context, to, subject, html string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.failTo[to]; err != nil {
		return err
	}
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, HTML: html})
	return nil
}

func (f *fakeSender) emails() []sentEmail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentEmail(nil), f.sent...)
}

// newTestRouter wires the API routes the way cmd.Run does, minus the
// rate limiters, over an in-memory registry and a fake email transport.
func newTestRouter(t *testing.T, mailer *fakeSender) chi.Router {
	t.Helper()

	codec := token.NewCodec("test-secret")
	used := registry.NewMemoryStore()
	boopService := services.NewBoopService(codec, used, mailer, "https://sendaboop.app")
	contactService := services.NewContactService(mailer, "owner@example.com")
	dogService, err := services.NewDogService("", "", "", "", "")
	require.NoError(t, err)

	boopHandler := NewBoopHandler(boopService)
	dogHandler := NewDogHandler(dogService)
	contactHandler := NewContactHandler(contactService)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/dogs", dogHandler.GetDogs)
		r.Post("/send-boop", boopHandler.SendBoop)
		r.Get("/verify-boop", boopHandler.VerifyBoop)
		r.Get("/verify-boop/{token}", boopHandler.VerifyBoop)
		r.Post("/contact", contactHandler.SendMessage)
	})
	return r
}

const validBody = `{
	"dog": {"id": "corgi", "url": "https://example.com/corgi.jpg", "alt": "Adorable corgi"},
	"senderName": "Alice",
	"senderEmail": "alice@example.com",
	"recipientName": "Bob",
	"recipientEmail": "bob@example.com",
	"message": "boop!"
}`

var tokenPattern = regexp.MustCompile(`verify\?token=([A-Za-z0-9_.-]+)`)

func extractToken(t *testing.T, html string) string {
	t.Helper()
	m := tokenPattern.FindStringSubmatch(html)
	require.Len(t, m, 2, "verification email must contain the token link")
	return m[1]
}

func TestSendThenVerifyFlow(t *testing.T) {
	mailer := newFakeSender()
	router := newTestRouter(t, mailer)

	// Phase 1: submitting the form emails a verification link to the sender
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/send-boop", strings.NewReader(validBody)))
	require.Equal(t, http.StatusOK, rec.Code)

	var sendResp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sendResp))
	assert.Equal(t, true, sendResp["success"])
	assert.Equal(t, true, sendResp["pendingVerification"])

	sent := mailer.emails()
	require.Len(t, sent, 1)
	require.Equal(t, "alice@example.com", sent[0].To)
	signed := extractToken(t, sent[0].HTML)

	// Phase 2: following the link delivers the boop
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/verify-boop/"+signed, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var verifyResp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verifyResp))
	assert.Equal(t, true, verifyResp["success"])
	assert.Equal(t, "Bob", verifyResp["recipientName"])
	assert.Equal(t, "corgi", verifyResp["dogId"])

	// Repeating the same link is a replay
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/verify-boop/"+signed, nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var replayResp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &replayResp))
	assert.Equal(t, false, replayResp["success"])
	assert.Equal(t, "Token already used", replayResp["error"])
}

func TestSendBoopRejectsInvalidEmail(t *testing.T) {
	mailer := newFakeSender()
	router := newTestRouter(t, mailer)

	body := strings.Replace(validBody, "alice@example.com", "not-an-email", 1)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/send-boop", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email format"}`, rec.Body.String())
	assert.Empty(t, mailer.emails())
}

func TestSendBoopRejectsMissingFields(t *testing.T) {
	mailer := newFakeSender()
	router := newTestRouter(t, mailer)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/send-boop", strings.NewReader(`{"senderName":"Alice"}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
	assert.Empty(t, mailer.emails())
}

func TestSendBoopDeliveryFailure(t *testing.T) {
	mailer := newFakeSender()
	mailer.failTo["alice@example.com"] = errors.New("smtp down")
	router := newTestRouter(t, mailer)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/send-boop", strings.NewReader(validBody)))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to send verification email"}`, rec.Body.String())
}

func TestVerifyBoopNoToken(t *testing.T) {
	router := newTestRouter(t, newFakeSender())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/verify-boop", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"No token provided"}`, rec.Body.String())
}

func TestVerifyBoopInvalidToken(t *testing.T) {
	router := newTestRouter(t, newFakeSender())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/verify-boop/garbage", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid token"}`, rec.Body.String())
}

func TestVerifyBoopRecipientDeliveryFailure(t *testing.T) {
	mailer := newFakeSender()
	router := newTestRouter(t, mailer)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/send-boop", strings.NewReader(validBody)))
	require.Equal(t, http.StatusOK, rec.Code)
	signed := extractToken(t, mailer.emails()[0].HTML)

	mailer.failTo["bob@example.com"] = errors.New("mailbox full")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/verify-boop/"+signed, nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to send boop"}`, rec.Body.String())

	// The rollback leaves the token redeemable once delivery recovers
	delete(mailer.failTo, "bob@example.com")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/verify-boop/"+signed, nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetDogs(t *testing.T) {
	router := newTestRouter(t, newFakeSender())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/dogs", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Dogs []struct {
			ID  string `json:"id"`
			URL string `json:"url"`
			Alt string `json:"alt"`
		} `json:"dogs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Dogs)
	for _, dog := range resp.Dogs {
		assert.NotEmpty(t, dog.ID)
		assert.NotEmpty(t, dog.URL)
		assert.NotEmpty(t, dog.Alt)
	}
}

func TestContactForm(t *testing.T) {
	mailer := newFakeSender()
	router := newTestRouter(t, mailer)

	body := `{"name":"Carol","email":"carol@example.com","comments":"love the pups"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/contact", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	sent := mailer.emails()
	require.Len(t, sent, 1)
	assert.Equal(t, "owner@example.com", sent[0].To)
	assert.Equal(t, "Contact Form: Message from Carol", sent[0].Subject)
	assert.Contains(t, sent[0].HTML, "love the pups")
}

func TestContactFormRejectsMissingFields(t *testing.T) {
	mailer := newFakeSender()
	router := newTestRouter(t, mailer)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/contact", strings.NewReader(`{"name":"Carol"}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
	assert.Empty(t, mailer.emails())
}
