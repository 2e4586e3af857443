package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactBody struct {
	Valid  bool `json:"valid"`
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
	Normalized *struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"normalized"`
}

func postContact(t *testing.T, s *Server, payload string) (int, contactBody) {
	t.Helper()
	w := do(t, s, http.MethodPost, "/api/contact/validate", payload)
	var body contactBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w.Code, body
}

func TestHandleValidateContact_Valid(t *testing.T) {
	s := newTestServer(t)

	code, body := postContact(t, s, `{"name":"  Ada Lovelace ","email":"Ada@Example.COM","message":"I would like to chat about a role."}`)

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, body.Valid)
	assert.Empty(t, body.Errors)
	require.NotNil(t, body.Normalized)
	assert.Equal(t, "Ada Lovelace", body.Normalized.Name)
	assert.Equal(t, "ada@example.com", body.Normalized.Email)
}

func TestHandleValidateContact_FieldErrors(t *testing.T) {
	s := newTestServer(t)

	code, body := postContact(t, s, `{"name":"A","email":"not-an-email","message":"short"}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, body.Valid)
	assert.Nil(t, body.Normalized)

	fields := make([]string, 0, len(body.Errors))
	for _, fe := range body.Errors {
		fields = append(fields, fe.Field)
		assert.NotEmpty(t, fe.Message)
	}
	assert.ElementsMatch(t, []string{"name", "email", "message"}, fields)
}

func TestHandleValidateContact_MalformedBody(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: `name=Ada`},
		{name: "unknown field", payload: `{"name":"Ada Lovelace","phone":"555"}`},
		{name: "wrong type", payload: `{"name":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/api/contact/validate", tt.payload)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp["error"], "malformed request body")
		})
	}
}

func TestHandleValidateContact_BodyTooLarge(t *testing.T) {
	s := newTestServer(t)

	payload := `{"name":"Ada Lovelace","email":"ada@example.com","message":"` + strings.Repeat("x", maxContactBodyBytes) + `"}`
	w := do(t, s, http.MethodPost, "/api/contact/validate", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleValidateContact_WrongMethod(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/contact/validate", "")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
