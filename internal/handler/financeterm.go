package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/premiafi/finance-terms/internal/domain"
	"github.com/premiafi/finance-terms/internal/service"
	"github.com/premiafi/finance-terms/pkg/response"
)

type FinanceTermHandler struct {
	service *service.FinanceTermService
}

func NewFinanceTermHandler(service *service.FinanceTermService) *FinanceTermHandler {
	return &FinanceTermHandler{service: service}
}

// Create handles POST /finance-terms
func (h *FinanceTermHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateFinanceTermsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body.")
		return
	}

	term, err := h.service.Create(r.Context(), &request)
	if err != nil {
		// Validation and storage failures share the 400 error shape
		response.BadRequest(w, err.Error())
		return
	}

	response.Created(w, term)
}

// Agree handles PATCH /finance-terms/{id}/agree
func (h *FinanceTermHandler) Agree(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid finance term id.")
		return
	}

	term, err := h.service.Agree(r.Context(), id)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	// A missing id yields a null body with 200, preserving the original
	// pass-through contract rather than a 404.
	response.Success(w, term)
}

// List handles GET /finance-terms
func (h *FinanceTermHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := domain.ListQuery{
		Downpayment: params.Get("downpayment"),
		Status:      params.Get("status"),
		Sort:        params.Get("sort"),
	}

	terms, err := h.service.List(r.Context(), query)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.Success(w, terms)
}
