// AngelaMos | 2026
// handler.go

package portfolio

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/venturedesk/internal/access"
	"github.com/angelamos/venturedesk/internal/core"
	"github.com/angelamos/venturedesk/internal/middleware"
)

type Handler struct {
	service   *Service
	guard     *access.Guard
	validator *validator.Validate
}

func NewHandler(service *Service, guard *access.Guard) *Handler {
	return &Handler{
		service:   service,
		guard:     guard,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes wires the company, founder, fundraising and revenue
// routes. Routes carrying {companyID} are gated by the
// admin-or-own-company middleware; routes keyed by a sub-resource id
// load the row first and consult the guard in the handler.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly, adminOrOwnCompany func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Route("/companies", func(r chi.Router) {
			r.With(adminOnly).Get("/", h.ListCompanies)
			r.With(adminOnly).Post("/", h.CreateCompany)

			r.Route("/{companyID}", func(r chi.Router) {
				r.Use(adminOrOwnCompany)

				r.Get("/", h.GetCompany)
				r.Put("/", h.UpdateCompany)
				r.Patch("/", h.PatchCompany)
				r.With(adminOnly).Delete("/", h.DeleteCompany)

				r.Get("/fundraising", h.ListRounds)
				r.Post("/fundraising", h.CreateRound)

				r.Get("/revenue", h.ListRevenue)
				r.Post("/revenue", h.CreateRevenue)
			})
		})

		r.Get("/my-company", h.GetMyCompany)

		r.Route("/founders/{founderID}", func(r chi.Router) {
			r.Get("/", h.GetFounder)
			r.Put("/", h.UpdateFounder)
		})

		r.Route("/fundraising/{roundID}", func(r chi.Router) {
			r.Put("/", h.UpdateRound)
			r.Delete("/", h.DeleteRound)
		})

		r.Route("/revenue/{recordID}", func(r chi.Router) {
			r.Put("/", h.UpdateRevenue)
			r.Delete("/", h.DeleteRevenue)
		})
	})
}

func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, &CompanyListResponse{Companies: companies})
}

func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, err, "company")
		return
	}

	core.Created(w, resp)
}

func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	resp, err := h.service.GetComposite(
		r.Context(),
		companyID,
		middleware.IsAdmin(r.Context()),
	)
	if err != nil {
		h.handleError(w, err, "company")
		return
	}

	core.OK(w, resp)
}

func (h *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	var req UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	resp, err := h.service.Update(r.Context(), companyID, req)
	if err != nil {
		h.handleError(w, err, "company")
		return
	}

	core.OK(w, resp)
}

func (h *Handler) PatchCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	var req PatchCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	// Portfolio-company callers never see or modify the snapshot.
	if req.AdminSnapshot != nil && !middleware.IsAdmin(r.Context()) {
		core.Forbidden(w, "admin snapshot is admin-only")
		return
	}

	resp, err := h.service.Patch(
		r.Context(),
		companyID,
		req,
		middleware.IsAdmin(r.Context()),
	)
	if err != nil {
		h.handleError(w, err, "company")
		return
	}

	core.OK(w, resp)
}

func (h *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	if err := h.service.Delete(r.Context(), companyID); err != nil {
		h.handleError(w, err, "company")
		return
	}

	core.NoContent(w)
}

// GetMyCompany resolves the caller's company through its founder link
// and returns the composite view without the admin snapshot.
func (h *Handler) GetMyCompany(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		core.Unauthorized(w, "")
		return
	}

	if identity.Role != access.RolePortfolioCompany {
		core.Forbidden(w, "portfolio company accounts only")
		return
	}

	companyID, err := h.guard.OwnCompanyID(r.Context(), *identity)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.BadRequest(w, "No associated founder")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	if companyID == "" {
		core.NotFound(w, "company")
		return
	}

	resp, err := h.service.GetComposite(r.Context(), companyID, false)
	if err != nil {
		h.handleError(w, err, "company")
		return
	}

	core.OK(w, resp)
}

func (h *Handler) GetFounder(w http.ResponseWriter, r *http.Request) {
	founderID := chi.URLParam(r, "founderID")

	founder, err := h.service.GetFounder(r.Context(), founderID)
	if err != nil {
		h.handleError(w, err, "founder")
		return
	}

	if !h.requireCompanyAccess(w, r, deref(founder.CompanyID)) {
		return
	}

	core.OK(w, toFounderResponse(founder))
}

func (h *Handler) UpdateFounder(w http.ResponseWriter, r *http.Request) {
	founderID := chi.URLParam(r, "founderID")

	founder, err := h.service.GetFounder(r.Context(), founderID)
	if err != nil {
		h.handleError(w, err, "founder")
		return
	}

	if !h.requireCompanyAccess(w, r, deref(founder.CompanyID)) {
		return
	}

	var req FounderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	resp, err := h.service.UpdateFounder(r.Context(), founderID, req)
	if err != nil {
		h.handleError(w, err, "founder")
		return
	}

	core.OK(w, resp)
}

func (h *Handler) ListRounds(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	rounds, err := h.service.ListRounds(r.Context(), companyID)
	if err != nil {
		h.handleError(w, err, "company")
		return
	}

	core.OK(w, &RoundListResponse{Fundraising: rounds})
}

func (h *Handler) CreateRound(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	var payload RoundPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(payload); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	resp, err := h.service.CreateRound(r.Context(), companyID, payload)
	if err != nil {
		h.handleError(w, err, "company")
		return
	}

	core.Created(w, resp)
}

func (h *Handler) UpdateRound(w http.ResponseWriter, r *http.Request) {
	roundID := chi.URLParam(r, "roundID")

	round, err := h.service.GetRound(r.Context(), roundID)
	if err != nil {
		h.handleError(w, err, "fundraising round")
		return
	}

	if !h.requireCompanyAccess(w, r, round.CompanyID) {
		return
	}

	var payload RoundPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(payload); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	resp, err := h.service.UpdateRound(r.Context(), roundID, payload)
	if err != nil {
		h.handleError(w, err, "fundraising round")
		return
	}

	core.OK(w, resp)
}

func (h *Handler) DeleteRound(w http.ResponseWriter, r *http.Request) {
	roundID := chi.URLParam(r, "roundID")

	round, err := h.service.GetRound(r.Context(), roundID)
	if err != nil {
		h.handleError(w, err, "fundraising round")
		return
	}

	if !h.requireCompanyAccess(w, r, round.CompanyID) {
		return
	}

	if err := h.service.DeleteRound(r.Context(), roundID); err != nil {
		h.handleError(w, err, "fundraising round")
		return
	}

	core.NoContent(w)
}

func (h *Handler) ListRevenue(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	records, err := h.service.ListRevenue(r.Context(), companyID)
	if err != nil {
		h.handleError(w, err, "company")
		return
	}

	core.OK(w, &RevenueListResponse{Revenue: records})
}

func (h *Handler) CreateRevenue(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	var payload RevenuePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(payload); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	resp, err := h.service.CreateRevenue(r.Context(), companyID, payload)
	if err != nil {
		h.handleError(w, err, "company")
		return
	}

	core.Created(w, resp)
}

func (h *Handler) UpdateRevenue(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordID")

	record, err := h.service.GetRevenue(r.Context(), recordID)
	if err != nil {
		h.handleError(w, err, "revenue record")
		return
	}

	if !h.requireCompanyAccess(w, r, record.CompanyID) {
		return
	}

	var payload RevenuePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(payload); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	resp, err := h.service.UpdateRevenue(r.Context(), recordID, payload)
	if err != nil {
		h.handleError(w, err, "revenue record")
		return
	}

	core.OK(w, resp)
}

func (h *Handler) DeleteRevenue(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordID")

	record, err := h.service.GetRevenue(r.Context(), recordID)
	if err != nil {
		h.handleError(w, err, "revenue record")
		return
	}

	if !h.requireCompanyAccess(w, r, record.CompanyID) {
		return
	}

	if err := h.service.DeleteRevenue(r.Context(), recordID); err != nil {
		h.handleError(w, err, "revenue record")
		return
	}

	core.NoContent(w)
}

// requireCompanyAccess runs the admin-or-own-company check for routes
// keyed by a sub-resource id, after the handler has resolved the owning
// company. Writes the response and returns false on denial.
func (h *Handler) requireCompanyAccess(
	w http.ResponseWriter,
	r *http.Request,
	companyID string,
) bool {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		core.Unauthorized(w, "")
		return false
	}

	if err := h.guard.RequireCompany(r.Context(), *identity, companyID); err != nil {
		core.Forbidden(w, "access to this company is denied")
		return false
	}

	return true
}

func (h *Handler) handleError(w http.ResponseWriter, err error, resource string) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, resource)
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "")
	case core.IsAppError(err):
		core.JSONError(w, err)
	default:
		core.InternalServerError(w, err)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
