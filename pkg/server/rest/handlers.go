package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/lintang-b-s/roadnet/pkg/server"
	"github.com/lintang-b-s/roadnet/pkg/server/rest/service"
)

type RoadNetworkService interface {
	AddRoad(ctx context.Context, city1, city2 string, length, builtYear int64) error
	RepairRoad(ctx context.Context, city1, city2 string, repairYear int64) error
	RemoveRoad(ctx context.Context, city1, city2 string) error
	Road(ctx context.Context, city1, city2 string) (service.RoadView, error)
	Cities(ctx context.Context) []string

	NewRoute(ctx context.Context, id int, city1, city2 string) (service.RouteView, error)
	ExtendRoute(ctx context.Context, id int, city string) (service.RouteView, error)
	DefineRoute(ctx context.Context, id int, hops []service.HopInput) (service.RouteView, error)
	RemoveRoute(ctx context.Context, id int) error
	Route(ctx context.Context, id int) (service.RouteView, error)
	Routes(ctx context.Context) ([]service.RouteView, error)
}

type RoadNetworkHandler struct {
	svc RoadNetworkService
}

func RoadNetworkRouter(r *chi.Mux, svc RoadNetworkService) {
	handler := &RoadNetworkHandler{svc}

	r.Group(func(r chi.Router) {
		r.Route("/api/roads", func(r chi.Router) {
			r.Post("/", handler.AddRoad)
			r.Get("/", handler.GetRoad)
			r.Delete("/", handler.RemoveRoad)
			r.Patch("/repair", handler.RepairRoad)
		})
		r.Get("/api/cities", handler.Cities)
		r.Route("/api/routes", func(r chi.Router) {
			r.Get("/", handler.Routes)
			r.Post("/", handler.NewRoute)
			r.Get("/{id}", handler.GetRoute)
			r.Put("/{id}", handler.DefineRoute)
			r.Delete("/{id}", handler.RemoveRoute)
			r.Post("/{id}/extend", handler.ExtendRoute)
		})
	})
}

// AddRoadRequest model info
//
//	@Description	request body untuk menambah road dua arah
type AddRoadRequest struct {
	City1     string `json:"city1" validate:"required"`
	City2     string `json:"city2" validate:"required,nefield=City1"`
	Length    int64  `json:"length" validate:"required,gt=0"`
	BuiltYear int64  `json:"built_year" validate:"required"`
}

func (s *AddRoadRequest) Bind(r *http.Request) error {
	return nil
}

// RepairRoadRequest model info
//
//	@Description	request body untuk repair road
type RepairRoadRequest struct {
	City1      string `json:"city1" validate:"required"`
	City2      string `json:"city2" validate:"required"`
	RepairYear int64  `json:"repair_year" validate:"required"`
}

func (s *RepairRoadRequest) Bind(r *http.Request) error {
	return nil
}

// RemoveRoadRequest model info
//
//	@Description	request body untuk hapus road
type RemoveRoadRequest struct {
	City1 string `json:"city1" validate:"required"`
	City2 string `json:"city2" validate:"required"`
}

func (s *RemoveRoadRequest) Bind(r *http.Request) error {
	return nil
}

// RoadResponse model info
//
//	@Description	response body road
type RoadResponse struct {
	City1     string `json:"city1"`
	City2     string `json:"city2"`
	Length    uint32 `json:"length"`
	BuiltYear int32  `json:"built_year"`
}

// NewRouteRequest model info
//
//	@Description	request body untuk membuat route lewat shortest path yang unique
type NewRouteRequest struct {
	ID    int    `json:"id" validate:"required,min=1,max=999"`
	City1 string `json:"city1" validate:"required"`
	City2 string `json:"city2" validate:"required"`
}

func (s *NewRouteRequest) Bind(r *http.Request) error {
	return nil
}

// ExtendRouteRequest model info
//
//	@Description	request body untuk memperpanjang route
type ExtendRouteRequest struct {
	City string `json:"city" validate:"required"`
}

func (s *ExtendRouteRequest) Bind(r *http.Request) error {
	return nil
}

// RouteHop model info
//
//	@Description	satu city di route, length & year adalah road ke city berikutnya
type RouteHop struct {
	City   string `json:"city" validate:"required"`
	Length int64  `json:"length,omitempty"`
	Year   int64  `json:"year,omitempty"`
}

// DefineRouteRequest model info
//
//	@Description	request body untuk mendefinisikan route secara manual
type DefineRouteRequest struct {
	Hops []RouteHop `json:"hops" validate:"required,min=2,dive"`
}

func (s *DefineRouteRequest) Bind(r *http.Request) error {
	if len(s.Hops) < 2 {
		return errors.New("route needs at least two cities")
	}
	return nil
}

// RouteResponse model info
//
//	@Description	response body route
type RouteResponse struct {
	ID          int        `json:"id"`
	Description string     `json:"description"`
	Length      uint64     `json:"length"`
	Hops        []RouteHop `json:"hops"`
}

func RenderRouteResponse(route service.RouteView) *RouteResponse {
	hops := make([]RouteHop, 0, len(route.Hops))
	for _, h := range route.Hops {
		hops = append(hops, RouteHop{City: h.City, Length: int64(h.Length), Year: int64(h.Year)})
	}
	return &RouteResponse{
		ID:          route.ID,
		Description: route.Description,
		Length:      route.Length,
		Hops:        hops,
	}
}

func routeID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, server.WrapErrorf(err, server.ErrBadParamInput, "route id %q", chi.URLParam(r, "id"))
	}
	return id, nil
}

// AddRoad
//
//	@Summary		tambah road dua arah antara dua city. city yang belum ada dibuat.
//	@Tags			roads
//	@Param			body	body	AddRoadRequest	true	"request body add road"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/roads [post]
//	@Success		201	{object}	RoadResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *RoadNetworkHandler) AddRoad(w http.ResponseWriter, r *http.Request) {
	data := &AddRoadRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}

	if err := h.svc.AddRoad(r.Context(), data.City1, data.City2, data.Length, data.BuiltYear); err != nil {
		render.Render(w, r, ErrRoadNetwork(err))
		return
	}
	h.renderRoad(w, r, data.City1, data.City2, http.StatusCreated)
}

// RepairRoad
//
//	@Summary		repair road, year road tidak boleh mundur. route yang lewat road ikut diupdate.
//	@Tags			roads
//	@Param			body	body	RepairRoadRequest	true	"request body repair road"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/roads/repair [patch]
//	@Success		200	{object}	RoadResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
func (h *RoadNetworkHandler) RepairRoad(w http.ResponseWriter, r *http.Request) {
	data := &RepairRoadRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}

	if err := h.svc.RepairRoad(r.Context(), data.City1, data.City2, data.RepairYear); err != nil {
		render.Render(w, r, ErrRoadNetwork(err))
		return
	}
	h.renderRoad(w, r, data.City1, data.City2, http.StatusOK)
}

// RemoveRoad
//
//	@Summary		hapus road. route yang lewat road dialihkan, gagal tanpa perubahan kalau ada route yang tidak bisa dialihkan.
//	@Tags			roads
//	@Param			body	body	RemoveRoadRequest	true	"request body remove road"
//	@Accept			application/json
//	@Router			/roads [delete]
//	@Success		204
//	@Failure		404	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
func (h *RoadNetworkHandler) RemoveRoad(w http.ResponseWriter, r *http.Request) {
	data := &RemoveRoadRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}

	if err := h.svc.RemoveRoad(r.Context(), data.City1, data.City2); err != nil {
		render.Render(w, r, ErrRoadNetwork(err))
		return
	}
	render.NoContent(w, r)
}

// GetRoad
//
//	@Summary		road antara dua city
//	@Tags			roads
//	@Param			from	query	string	true	"city pertama"
//	@Param			to		query	string	true	"city kedua"
//	@Produce		application/json
//	@Router			/roads [get]
//	@Success		200	{object}	RoadResponse
//	@Failure		404	{object}	ErrResponse
func (h *RoadNetworkHandler) GetRoad(w http.ResponseWriter, r *http.Request) {
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" || to == "" {
		render.Render(w, r, ErrInvalidRequest(errors.New("query from & to are required")))
		return
	}
	h.renderRoad(w, r, from, to, http.StatusOK)
}

func (h *RoadNetworkHandler) renderRoad(w http.ResponseWriter, r *http.Request, city1, city2 string, status int) {
	road, err := h.svc.Road(r.Context(), city1, city2)
	if err != nil {
		render.Render(w, r, ErrRoadNetwork(err))
		return
	}
	render.Status(r, status)
	render.JSON(w, r, &RoadResponse{
		City1:     road.From,
		City2:     road.To,
		Length:    road.Length,
		BuiltYear: road.BuiltYear,
	})
}

// Cities
//
//	@Summary		nama semua city
//	@Tags			roads
//	@Produce		application/json
//	@Router			/cities [get]
//	@Success		200	{array}	string
func (h *RoadNetworkHandler) Cities(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.svc.Cities(r.Context()))
}

// NewRoute
//
//	@Summary		buat route lewat shortest path yang unique (length terpendek, lalu oldest year paling baru)
//	@Tags			routes
//	@Param			body	body	NewRouteRequest	true	"request body new route"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes [post]
//	@Success		201	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
func (h *RoadNetworkHandler) NewRoute(w http.ResponseWriter, r *http.Request) {
	data := &NewRouteRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}

	route, err := h.svc.NewRoute(r.Context(), data.ID, data.City1, data.City2)
	if err != nil {
		render.Render(w, r, ErrRoadNetwork(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, RenderRouteResponse(route))
}

// ExtendRoute
//
//	@Summary		perpanjang route sampai city, dari ujung yang memberi path lebih baik
//	@Tags			routes
//	@Param			id		path	int					true	"route id"
//	@Param			body	body	ExtendRouteRequest	true	"request body extend route"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/{id}/extend [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
func (h *RoadNetworkHandler) ExtendRoute(w http.ResponseWriter, r *http.Request) {
	id, err := routeID(r)
	if err != nil {
		render.Render(w, r, ErrRoadNetwork(err))
		return
	}
	data := &ExtendRouteRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}

	route, err := h.svc.ExtendRoute(r.Context(), id, data.City)
	if err != nil {
		render.Render(w, r, ErrRoadNetwork(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRouteResponse(route))
}

// DefineRoute
//
//	@Summary		definisikan route dengan urutan city, length & year. road yang belum ada dibuat, yang sudah ada diperbaiki.
//	@Tags			routes
//	@Param			id		path	int					true	"route id"
//	@Param			body	body	DefineRouteRequest	true	"request body define route"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/{id} [put]
//	@Success		201	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
func (h *RoadNetworkHandler) DefineRoute(w http.ResponseWriter, r *http.Request) {
	id, err := routeID(r)
	if err != nil {
		render.Render(w, r, ErrRoadNetwork(err))
		return
	}
	data := &DefineRouteRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}

	hops := make([]service.HopInput, 0, len(data.Hops))
	for _, hop := range data.Hops {
		hops = append(hops, service.HopInput{City: hop.City, Length: hop.Length, Year: hop.Year})
	}
	route, err := h.svc.DefineRoute(r.Context(), id, hops)
	if err != nil {
		render.Render(w, r, ErrRoadNetwork(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, RenderRouteResponse(route))
}

// RemoveRoute
//
//	@Summary		hapus route, id bisa dipakai lagi
//	@Tags			routes
//	@Param			id	path	int	true	"route id"
//	@Router			/routes/{id} [delete]
//	@Success		204
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *RoadNetworkHandler) RemoveRoute(w http.ResponseWriter, r *http.Request) {
	id, err := routeID(r)
	if err != nil {
		render.Render(w, r, ErrRoadNetwork(err))
		return
	}
	if err := h.svc.RemoveRoute(r.Context(), id); err != nil {
		render.Render(w, r, ErrRoadNetwork(err))
		return
	}
	render.NoContent(w, r)
}

// GetRoute
//
//	@Summary		route dengan description id;city;length;year;...;city
//	@Tags			routes
//	@Param			id	path	int	true	"route id"
//	@Produce		application/json
//	@Router			/routes/{id} [get]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *RoadNetworkHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	id, err := routeID(r)
	if err != nil {
		render.Render(w, r, ErrRoadNetwork(err))
		return
	}
	route, err := h.svc.Route(r.Context(), id)
	if err != nil {
		render.Render(w, r, ErrRoadNetwork(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRouteResponse(route))
}

// Routes
//
//	@Summary		semua route terurut id
//	@Tags			routes
//	@Produce		application/json
//	@Router			/routes [get]
//	@Success		200	{array}	RouteResponse
func (h *RoadNetworkHandler) Routes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.svc.Routes(r.Context())
	if err != nil {
		render.Render(w, r, ErrRoadNetwork(err))
		return
	}
	resp := make([]*RouteResponse, 0, len(routes))
	for _, route := range routes {
		resp = append(resp, RenderRouteResponse(route))
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}
