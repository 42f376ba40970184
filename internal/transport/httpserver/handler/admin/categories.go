package admin

import (
	"net/http"

	"volunteer-tracker-go/internal/domain/category"
	commonhandler "volunteer-tracker-go/internal/transport/httpserver/handler/common"
)

type createCategoryRequest struct {
	Name     string `json:"name" validate:"notblank"`
	IsActive *bool  `json:"isActive"`
}

type updateCategoryRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Categories.ListAll(r.Context())
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.categories.list", err)
		return
	}
	commonhandler.WriteJSON(w, h.log, http.StatusOK, commonhandler.NewCategoryResponses(categories))
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if !commonhandler.Bind(w, r, &req) {
		return
	}

	created, err := h.Categories.Create(r.Context(), category.CreateInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.categories.create", err)
		return
	}
	commonhandler.WriteJSON(w, h.log, http.StatusCreated, commonhandler.NewCategoryResponse(*created))
}

func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := commonhandler.URLID(r)
	var req updateCategoryRequest
	if !commonhandler.Bind(w, r, &req) {
		return
	}

	updated, err := h.Categories.Update(r.Context(), id, category.UpdateInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.categories.update", err, "category_id", id)
		return
	}
	commonhandler.WriteJSON(w, h.log, http.StatusOK, commonhandler.NewCategoryResponse(*updated))
}

// DeleteCategory hides the category from parents. Logged tasks keep it.
func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := commonhandler.URLID(r)
	archived, err := h.Categories.Archive(r.Context(), id)
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.categories.delete", err, "category_id", id)
		return
	}
	commonhandler.WriteJSON(w, h.log, http.StatusOK, commonhandler.NewCategoryResponse(*archived))
}
