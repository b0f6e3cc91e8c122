package app

import (
	"net/http"
	"testing"
)

func TestRequireAuthentication(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId := r.Context().Value(SessionKeyUserId)
		if userId != 42 {
			t.Errorf("user id in context = %v, want 42", userId)
		}

		w.WriteHeader(http.StatusOK)
	})

	t.Run("request without a session is rejected", func(t *testing.T) {
		app := newTestApplication()

		w, r := executeRequest(t, http.MethodGet, "/orders", nil)

		ctx, err := app.sessionManager.Load(r.Context(), "session")
		if err != nil {
			t.Fatalf("Failed to load session: %v", err)
		}
		r = r.WithContext(ctx)

		app.requireAuthentication(next).ServeHTTP(w, r)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %v, want %v", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("request with a user session passes through", func(t *testing.T) {
		app := newTestApplication()

		w, r := executeRequest(t, http.MethodGet, "/orders", nil)
		r = setupTestSession(t, app, r, 42)

		app.requireAuthentication(next).ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Errorf("status = %v, want %v", w.Code, http.StatusOK)
		}
	})
}
