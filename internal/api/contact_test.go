package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMessages(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/contact", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Pat", "email": "pat@example.com",
			 "subject": "Parking?", "message": "Is there parking at the venue?"},
			{"id": 2, "name": "Sam", "email": "sam@example.com",
			 "subject": "Refunds", "message": "How do refunds work?"}
		]`))
	}))

	msgs, err := c.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Pat", msgs[0].Name)
	assert.Equal(t, "pat@example.com", msgs[0].Email)
	assert.Equal(t, "Is there parking at the venue?", msgs[0].Body)
}

func TestSendEmail(t *testing.T) {
	var got map[string]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send-email", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))

	err := c.SendEmail(context.Background(), "pat@example.com", "Re: Parking?", "Yes, lot across the street.")
	require.NoError(t, err)
	assert.Equal(t, "pat@example.com", got["to"])
	assert.Equal(t, "Re: Parking?", got["subject"])
	assert.Equal(t, "Yes, lot across the street.", got["message"])
}

// The backend reports success for this endpoint with 200 only; other 2xx
// codes mean the mail was not sent.
func TestSendEmailRequiresExactly200(t *testing.T) {
	for _, code := range []int{http.StatusAccepted, http.StatusNoContent, http.StatusBadGateway} {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))
		err := c.SendEmail(context.Background(), "pat@example.com", "s", "b")
		assert.Error(t, err, "status %d must be treated as failure", code)
	}
}
