package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/emreakdogan/cinema-booking-api/api"
	"github.com/emreakdogan/cinema-booking-api/internal/domain"
	"github.com/emreakdogan/cinema-booking-api/internal/mocks"
)

func TestGetGenres(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.genreRepo = &mocks.MockGenreRepo{
			GetAllFunc: func(ctx context.Context) ([]domain.Genre, error) {
				return []domain.Genre{
					{ID: 1, Name: "Comedy"},
					{ID: 2, Name: "Crime"},
				}, nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/genres", nil)

	app.GetGenres(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("GetGenres() status = %v, want %v", w.Code, http.StatusOK)
	}

	var response api.GenreListResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	want := api.GenreListResponse{
		Genres: []api.Genre{
			{Id: 1, Name: "Comedy"},
			{Id: 2, Name: "Crime"},
		},
	}

	if diff := cmp.Diff(want, response); diff != "" {
		t.Errorf("GetGenres() response mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateGenre(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		createFunc     func(ctx context.Context, genre *domain.Genre) error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "successful creation",
			body: api.GenreRequest{Name: "Comedy"},
			createFunc: func(ctx context.Context, genre *domain.Genre) error {
				genre.ID = 1
				return nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate name",
			body: api.GenreRequest{Name: "Comedy"},
			createFunc: func(ctx context.Context, genre *domain.Genre) error {
				return domain.ValidationError{
					Field:   "name",
					Message: "a genre with this name already exists",
				}
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "a genre with this name already exists",
		},
		{
			name:           "missing name",
			body:           api.GenreRequest{},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name: "database error",
			body: api.GenreRequest{Name: "Comedy"},
			createFunc: func(ctx context.Context, genre *domain.Genre) error {
				return fmt.Errorf("database connection error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.genreRepo = &mocks.MockGenreRepo{
					CreateFunc: tt.createFunc,
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/genres", tt.body)

			app.CreateGenre(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("CreateGenre() status = %v, want %v", got, tt.wantStatus)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestDeleteGenre(t *testing.T) {
	tests := []struct {
		name           string
		genreId        string
		deleteFunc     func(ctx context.Context, id int) error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:    "successful deletion",
			genreId: "1",
			deleteFunc: func(ctx context.Context, id int) error {
				return nil
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:    "genre not found",
			genreId: "99",
			deleteFunc: func(ctx context.Context, id int) error {
				return domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.genreRepo = &mocks.MockGenreRepo{
					DeleteFunc: tt.deleteFunc,
				}
			})

			w, r := executeRequest(t, http.MethodDelete, "/genres/"+tt.genreId, nil)
			r = withUrlParam(r, "genreId", tt.genreId)

			app.DeleteGenre(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("DeleteGenre() status = %v, want %v", got, tt.wantStatus)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
