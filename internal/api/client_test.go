package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdeck/internal/domain"
)

func listBody(t *testing.T, items any, meta domain.PageMeta) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"success": true,
		"data":    map[string]any{"data": items, "meta": meta},
	})
	require.NoError(t, err)
	return body
}

func TestListSendsFilterParams(t *testing.T) {
	t.Parallel()
	var gotQuery url.Values
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Write(listBody(t, []domain.Company{{ID: 1, Name: "Acme"}}, domain.PageMeta{CurrentPage: 2, LastPage: 4, PerPage: 10, Total: 31}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token", time.Second)
	repo := NewResource[domain.Company](client, EntityCompanies)

	items, meta, err := repo.List(context.Background(), ListFilters{
		Page:          2,
		Search:        "acme",
		SortBy:        "name",
		SortDirection: "desc",
		Scope:         url.Values{"company_id": []string{"7"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "acme", gotQuery.Get("search"))
	assert.Equal(t, "name", gotQuery.Get("sort_by"))
	assert.Equal(t, "desc", gotQuery.Get("sort_direction"))
	assert.Equal(t, "7", gotQuery.Get("company_id"))
	assert.Equal(t, "Bearer secret-token", gotAuth)

	require.Len(t, items, 1)
	assert.Equal(t, "Acme", items[0].Name)
	require.NotNil(t, meta)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 31, meta.Total)
}

func TestListOmitsEmptyParams(t *testing.T) {
	t.Parallel()
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write(listBody(t, []domain.Zone{}, domain.PageMeta{CurrentPage: 1, LastPage: 1}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	repo := NewResource[domain.Zone](client, EntityZones)

	_, _, err := repo.List(context.Background(), ListFilters{Page: 1})
	require.NoError(t, err)

	assert.False(t, gotQuery.Has("search"), "empty search must not be sent")
	assert.False(t, gotQuery.Has("sort_by"), "unset sort field must not be sent")
	assert.False(t, gotQuery.Has("sort_direction"), "sort direction is only sent with a sort field")
}

func TestServerErrorTranslation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "error field",
			status:  http.StatusInternalServerError,
			body:    `{"success":false,"error":"database unavailable"}`,
			wantMsg: "database unavailable",
		},
		{
			name:    "message field",
			status:  http.StatusUnprocessableEntity,
			body:    `{"success":false,"message":"the name field is required"}`,
			wantMsg: "the name field is required",
		},
		{
			name:    "no body",
			status:  http.StatusNotFound,
			body:    "",
			wantMsg: "server returned 404 Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "", time.Second)
			repo := NewResource[domain.Material](client, EntityMaterials)

			_, _, err := repo.List(context.Background(), ListFilters{Page: 1})
			require.Error(t, err)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, tt.wantMsg, statusErr.Error())
		})
	}
}

func TestNetworkFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewClient(srv.URL, "", time.Second)
	repo := NewResource[domain.User](client, EntityUsers)

	_, _, err := repo.List(context.Background(), ListFilters{Page: 1})
	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr), "a transport failure is not a status error")
}

func TestCRUDPaths(t *testing.T) {
	t.Parallel()
	type seen struct {
		method string
		path   string
	}
	var requests []seen
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, seen{r.Method, r.URL.Path})
		if r.Method == http.MethodDelete {
			w.Write([]byte(`{"success":true}`))
			return
		}
		w.Write([]byte(`{"success":true,"data":{"id":9,"name":"Mop"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	repo := NewResource[domain.Material](client, EntityMaterials)
	ctx := context.Background()

	created, err := repo.Create(ctx, map[string]any{"name": "Mop"})
	require.NoError(t, err)
	assert.Equal(t, 9, created.ID)

	got, err := repo.Get(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "Mop", got.Name)

	_, err = repo.Update(ctx, 9, map[string]any{"name": "Mop XL"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, 9))

	want := []seen{
		{http.MethodPost, "/api/materials"},
		{http.MethodGet, "/api/materials/9"},
		{http.MethodPut, "/api/materials/9"},
		{http.MethodDelete, "/api/materials/9"},
	}
	assert.Equal(t, want, requests)
}

func TestProfile(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/profile", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"user":{"id":3,"name":"Ana","role":"admin"},"permissions":["companies.create","materials.delete"]}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	profile, err := client.Profile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Ana", profile.User.Name)
	assert.True(t, profile.Can("companies.create"))
	assert.False(t, profile.Can("companies.delete"))
}
