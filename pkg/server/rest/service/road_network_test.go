package service

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/lintang-b-s/roadnet/pkg/roadmap"
	"github.com/lintang-b-s/roadnet/pkg/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *RoadNetworkService {
	t.Helper()
	return NewRoadNetworkService(roadmap.NewRoadMap(), prometheus.NewRegistry())
}

func TestRoadNetworkServiceRoutes(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	require.NoError(t, svc.AddRoad(ctx, "A", "B", 2, 2000))
	require.NoError(t, svc.AddRoad(ctx, "B", "C", 3, -10))

	route, err := svc.NewRoute(ctx, 4, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, "4;A;2;2000;B;3;-10;C", route.Description)
	assert.Equal(t, uint64(5), route.Length)
	assert.Equal(t, []Hop{{"A", 2, 2000}, {"B", 3, -10}, {"C", 0, 0}}, route.Hops)

	require.NoError(t, svc.AddRoad(ctx, "C", "D", 1, 1999))
	route, err = svc.ExtendRoute(ctx, 4, "D")
	require.NoError(t, err)
	assert.Equal(t, "4;A;2;2000;B;3;-10;C;1;1999;D", route.Description)

	route, err = svc.DefineRoute(ctx, 5, []HopInput{{"E", 4, 1980}, {"A", 2, 2001}, {"B", 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, "5;E;4;1980;A;2;2001;B", route.Description)

	routes, err := svc.Routes(ctx)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, 4, routes[0].ID)
	assert.Equal(t, "4;A;2;2001;B;3;-10;C;1;1999;D", routes[0].Description)

	require.NoError(t, svc.RemoveRoute(ctx, 4))
	_, err = svc.Route(ctx, 4)
	assert.ErrorIs(t, err, roadmap.ErrRouteNotFound)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, svc.Cities(ctx))
}

func TestRoadNetworkServiceRanges(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	err := svc.AddRoad(ctx, "A", "B", math.MaxUint32+1, 2000)
	assert.Equal(t, server.ErrBadParamInput, server.CodeOf(err))

	err = svc.AddRoad(ctx, "A", "B", -1, 2000)
	assert.Equal(t, server.ErrBadParamInput, server.CodeOf(err))

	err = svc.AddRoad(ctx, "A", "B", 1, math.MinInt32-1)
	assert.Equal(t, server.ErrBadParamInput, server.CodeOf(err))

	_, err = svc.DefineRoute(ctx, 1, []HopInput{{"A", 1, math.MaxInt32 + 1}, {"B", 0, 0}})
	assert.Equal(t, server.ErrBadParamInput, server.CodeOf(err))

	_, err = svc.DefineRoute(ctx, 1, nil)
	assert.Equal(t, server.ErrBadParamInput, server.CodeOf(err))

	assert.Empty(t, svc.Cities(ctx))
}

func TestRoadNetworkServiceRoad(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	require.NoError(t, svc.AddRoad(ctx, "A", "B", 2, 2000))
	require.NoError(t, svc.RepairRoad(ctx, "B", "A", 2020))

	road, err := svc.Road(ctx, "B", "A")
	require.NoError(t, err)
	assert.Equal(t, RoadView{From: "B", To: "A", Length: 2, BuiltYear: 2020}, road)

	require.NoError(t, svc.RemoveRoad(ctx, "A", "B"))
	_, err = svc.Road(ctx, "A", "B")
	assert.Equal(t, server.ErrNotFound, server.CodeOf(err))
}

func TestRoadNetworkServiceMetrics(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	require.NoError(t, svc.AddRoad(ctx, "A", "B", 2, 2000))
	assert.Error(t, svc.AddRoad(ctx, "A", "B", 2, 2000))
	assert.Error(t, svc.AddRoad(ctx, "A", "A", 2, 2000))

	assert.Equal(t, float64(1), testutil.ToFloat64(svc.operations.WithLabelValues("add_road", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.operations.WithLabelValues("add_road", "conflict")))
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.operations.WithLabelValues("add_road", "bad_param_input")))
}

func TestRoadNetworkServiceConcurrent(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	require.NoError(t, svc.AddRoad(ctx, "hub", "c0", 1, 2000))

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			city := "c" + string(rune('A'+i%26)) + string(rune('a'+i/26))
			assert.NoError(t, svc.AddRoad(ctx, "hub", city, int64(i), 2000))
			_, err := svc.NewRoute(ctx, i, "hub", city)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	routes, err := svc.Routes(ctx)
	require.NoError(t, err)
	assert.Len(t, routes, 50)
}
