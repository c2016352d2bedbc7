package manager

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdeck/internal/api"
	"opsdeck/internal/domain"
	"opsdeck/internal/eventbus"
	"opsdeck/internal/listctrl"
)

// captureBus records published events synchronously
type captureBus struct {
	events []eventbus.DomainEvent
}

func (b *captureBus) Publish(e eventbus.DomainEvent) { b.events = append(b.events, e) }
func (b *captureBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func newTestManager(t *testing.T, handler http.HandlerFunc) (*Manager[domain.Company], *captureBus) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, "", time.Second)
	repo := api.NewResource[domain.Company](client, api.EntityCompanies)
	bus := &captureBus{}
	return New(api.EntityCompanies, repo, bus, func(c *domain.Company) int { return c.ID }), bus
}

func TestFetchSuccess(t *testing.T) {
	t.Parallel()
	m, _ := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"data":[{"id":1,"name":"Acme"},{"id":2,"name":"Globex"}],"meta":{"current_page":1,"last_page":1,"per_page":15,"total":2}}}`))
	})

	res := m.Fetch()(context.Background(), listctrl.Filters{Page: 1})
	require.True(t, res.OK())
	require.Len(t, res.Items(), 2)
	assert.Equal(t, "Acme", res.Items()[0].Name)
	assert.Empty(t, res.Err())
	require.NotNil(t, res.Meta())
	assert.Equal(t, 2, res.Meta().Total)
}

func TestFetchFailure(t *testing.T) {
	t.Parallel()
	m, _ := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"error":"database unavailable"}`))
	})

	res := m.Fetch()(context.Background(), listctrl.Filters{Page: 1})
	require.False(t, res.OK())
	assert.Equal(t, "database unavailable", res.Err())
	assert.Empty(t, res.Items(), "a failed fetch carries no items")
	assert.Nil(t, res.Meta())
}

func TestFetchAppliesScope(t *testing.T) {
	t.Parallel()
	var gotQuery url.Values
	m, _ := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"success":true,"data":{"data":[],"meta":{"current_page":1,"last_page":1}}}`))
	})
	m.SetScope(url.Values{"company_id": []string{"12"}})

	m.Fetch()(context.Background(), listctrl.Filters{Page: 1, Search: "pump"})
	assert.Equal(t, "12", gotQuery.Get("company_id"))
	assert.Equal(t, "pump", gotQuery.Get("search"))
}

func TestMutationsPublishEvents(t *testing.T) {
	t.Parallel()
	m, bus := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.Write([]byte(`{"success":true}`))
			return
		}
		w.Write([]byte(`{"success":true,"data":{"id":5,"name":"Initech"}}`))
	})
	ctx := context.Background()

	_, err := m.Create(ctx, map[string]any{"name": "Initech"})
	require.NoError(t, err)
	_, err = m.Update(ctx, 5, map[string]any{"name": "Initech LLC"})
	require.NoError(t, err)
	require.NoError(t, m.Delete(ctx, 5))

	require.Len(t, bus.events, 3)
	assert.Equal(t, eventbus.EntityCreatedEvent{Entity: "companies", ID: 5}, bus.events[0])
	assert.Equal(t, eventbus.EntityUpdatedEvent{Entity: "companies", ID: 5}, bus.events[1])
	assert.Equal(t, eventbus.EntityDeletedEvent{Entity: "companies", ID: 5}, bus.events[2])
}

func TestFailedMutationPublishesNothing(t *testing.T) {
	t.Parallel()
	m, bus := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"error":"the name field is required"}`))
	})

	_, err := m.Create(context.Background(), map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "the name field is required")
	assert.Empty(t, bus.events, "failed mutations must not publish events")
}

func TestProfileManagerCan(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"user":{"id":1,"name":"Ana"},"permissions":["companies.create"]}}`))
	}))
	t.Cleanup(srv.Close)

	bus := &captureBus{}
	pm := NewProfileManager(api.NewClient(srv.URL, "", time.Second), bus)

	assert.True(t, pm.Can("anything"), "before loading, gating is left to the server")

	require.NoError(t, pm.Load(context.Background()))
	assert.True(t, pm.Can("companies.create"))
	assert.False(t, pm.Can("companies.delete"))
	require.NotNil(t, pm.User())
	assert.Equal(t, "Ana", pm.User().Name)
	require.Len(t, bus.events, 1)
}
