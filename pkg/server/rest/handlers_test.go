package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/lintang-b-s/roadnet/pkg/roadmap"
	"github.com/lintang-b-s/roadnet/pkg/server/rest/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*chi.Mux, *Metrics) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r := chi.NewRouter()
	r.Use(PromeHttpMiddleware(m))
	RoadNetworkRouter(r, service.NewRoadNetworkService(roadmap.NewRoadMap(), reg))
	return r, m
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func addRoad(t *testing.T, h http.Handler, c1, c2 string, length, year int64) {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/roads", AddRoadRequest{City1: c1, City2: c2, Length: length, BuiltYear: year})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestRoadEndpoints(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/roads", AddRoadRequest{City1: "Gdańsk", City2: "Sopot", Length: 12, BuiltYear: -5})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, RoadResponse{City1: "Gdańsk", City2: "Sopot", Length: 12, BuiltYear: -5}, decode[RoadResponse](t, rec))

	rec = do(t, h, http.MethodPost, "/api/roads", AddRoadRequest{City1: "Sopot", City2: "Gdańsk", Length: 12, BuiltYear: 1})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPatch, "/api/roads/repair", RepairRoadRequest{City1: "Sopot", City2: "Gdańsk", RepairYear: 2000})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(2000), decode[RoadResponse](t, rec).BuiltYear)

	rec = do(t, h, http.MethodPatch, "/api/roads/repair", RepairRoadRequest{City1: "Sopot", City2: "Gdańsk", RepairYear: 1999})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/roads?from=Sopot&to="+url.QueryEscape("Gdańsk"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint32(12), decode[RoadResponse](t, rec).Length)

	rec = do(t, h, http.MethodGet, "/api/roads?from=Sopot", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/cities", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Gdańsk", "Sopot"}, decode[[]string](t, rec))

	rec = do(t, h, http.MethodDelete, "/api/roads", RemoveRoadRequest{City1: "Gdańsk", City2: "Sopot"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/roads?from=Sopot&to="+url.QueryEscape("Gdańsk"), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoadEndpointsValidation(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/roads", AddRoadRequest{City1: "A", City2: "A", Length: 1, BuiltYear: 1})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decode[ErrResponse](t, rec).ErrValidation)

	rec = do(t, h, http.MethodPost, "/api/roads", AddRoadRequest{City1: "A", City2: "B", Length: -3, BuiltYear: 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/roads", AddRoadRequest{City1: "A;", City2: "B", Length: 3, BuiltYear: 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/roads", AddRoadRequest{City1: "A", City2: "B", Length: 1 << 40, BuiltYear: 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/roads", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouteEndpoints(t *testing.T) {
	h, _ := newTestRouter(t)
	addRoad(t, h, "A", "B", 1, 2000)
	addRoad(t, h, "B", "C", 1, 2000)
	addRoad(t, h, "A", "D", 2, 2000)
	addRoad(t, h, "D", "B", 2, 1999)

	rec := do(t, h, http.MethodPost, "/api/routes", NewRouteRequest{ID: 3, City1: "A", City2: "B"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	route := decode[RouteResponse](t, rec)
	assert.Equal(t, "3;A;1;2000;B", route.Description)
	assert.Equal(t, uint64(1), route.Length)

	rec = do(t, h, http.MethodPost, "/api/routes", NewRouteRequest{ID: 3, City1: "A", City2: "C"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/routes", NewRouteRequest{ID: 1000, City1: "A", City2: "C"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/routes/3/extend", ExtendRouteRequest{City: "C"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "3;A;1;2000;B;1;2000;C", decode[RouteResponse](t, rec).Description)

	rec = do(t, h, http.MethodPost, "/api/routes/3/extend", ExtendRouteRequest{City: "C"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/roads", RemoveRoadRequest{City1: "A", City2: "B"})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/routes/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	route = decode[RouteResponse](t, rec)
	assert.Equal(t, "3;A;2;2000;D;2;1999;B;1;2000;C", route.Description)
	assert.Equal(t, []RouteHop{
		{City: "A", Length: 2, Year: 2000},
		{City: "D", Length: 2, Year: 1999},
		{City: "B", Length: 1, Year: 2000},
		{City: "C"},
	}, route.Hops)

	// D-B satu satunya jalan, remove ditolak
	rec = do(t, h, http.MethodDelete, "/api/roads", RemoveRoadRequest{City1: "D", City2: "B"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPut, "/api/routes/9", DefineRouteRequest{Hops: []RouteHop{
		{City: "C", Length: 5, Year: 1500},
		{City: "X"},
	}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/routes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	routes := decode[[]RouteResponse](t, rec)
	require.Len(t, routes, 2)
	assert.Equal(t, 3, routes[0].ID)
	assert.Equal(t, "9;C;5;1500;X", routes[1].Description)

	rec = do(t, h, http.MethodDelete, "/api/routes/3", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/routes/3", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/routes/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouteEndpointAmbiguous(t *testing.T) {
	h, _ := newTestRouter(t)
	addRoad(t, h, "A", "X", 2, 2000)
	addRoad(t, h, "X", "B", 3, 2000)
	addRoad(t, h, "A", "Y", 3, 2000)
	addRoad(t, h, "Y", "B", 2, 2000)

	rec := do(t, h, http.MethodPost, "/api/routes", NewRouteRequest{ID: 1, City1: "A", City2: "B"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/routes/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPromeHttpMiddleware(t *testing.T) {
	h, m := newTestRouter(t)
	addRoad(t, h, "A", "B", 1, 2000)
	do(t, h, http.MethodGet, "/api/routes/7", nil)
	do(t, h, http.MethodGet, "/api/routes/8", nil)

	assert.Equal(t, 2, testutil.CollectAndCount(m.requests))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("/api/routes/{id}", http.MethodGet, "404")))
}
