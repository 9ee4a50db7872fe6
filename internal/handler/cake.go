package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bakehouse/bakehouse-go/internal/middleware"
	"github.com/bakehouse/bakehouse-go/internal/model"
	"github.com/bakehouse/bakehouse-go/internal/service"
	"github.com/bakehouse/bakehouse-go/internal/storage"
)

const maxUploadSize = 10 << 20 // 10MB

// CakeHandler handles HTTP requests for the cake catalog.
type CakeHandler struct {
	service *service.CatalogService
	images  *storage.ImageStore
}

// NewCakeHandler creates a new CakeHandler.
func NewCakeHandler(svc *service.CatalogService, images *storage.ImageStore) *CakeHandler {
	return &CakeHandler{service: svc, images: images}
}

// HandleListCakes handles GET /api/cakes requests.
func (h *CakeHandler) HandleListCakes(w http.ResponseWriter, r *http.Request) {
	cakes, err := h.service.ListCakes(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, cakes)
}

// HandleListFeatured handles GET /api/cakes/featured requests.
func (h *CakeHandler) HandleListFeatured(w http.ResponseWriter, r *http.Request) {
	cakes, err := h.service.ListFeaturedCakes(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, cakes)
}

// HandleListCategories handles GET /api/cakes/categories requests.
func (h *CakeHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// HandleListByCategory handles GET /api/cakes/category/{category} requests.
func (h *CakeHandler) HandleListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("category is required"))
		return
	}

	cakes, err := h.service.ListCakesByCategory(r.Context(), category)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, cakes)
}

// HandleCreateCake handles POST /api/cakes requests. The dashboard submits a
// multipart form with the image file under "image".
func (h *CakeHandler) HandleCreateCake(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid multipart form"))
		return
	}

	tags, err := parseTags(r.FormValue("tags"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("tags must be a JSON string array"))
		return
	}

	in := model.CakeInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Flavor:      r.FormValue("flavor"),
		Category:    r.FormValue("category"),
		PriceRange:  r.FormValue("priceRange"),
		Tags:        tags,
		Featured:    parseBool(r.FormValue("isFeatured")),
	}

	// A missing file falls through with an empty image reference, which the
	// service rejects as a validation error.
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()

		url, err := h.images.Save(file, header)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedImageType) {
				writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse("failed to store image"))
			return
		}
		in.ImageURL = url
	}

	resp, err := h.service.CreateCake(r.Context(), in)
	if err != nil {
		if service.IsValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	admin, _ := middleware.AdminFromContext(r.Context())
	slog.Info("cake created", "id", resp.ID, "name", resp.Name, "admin", admin)

	writeJSON(w, http.StatusCreated, resp)
}

// HandleGetCake handles GET /api/cakes/{id} requests on the admin surface.
// Unlike the public listings it resolves soft-deleted cakes too, so the
// dashboard can inspect and recover them.
func (h *CakeHandler) HandleGetCake(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid cake id"))
		return
	}

	resp, err := h.service.GetCake(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCakeNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdateCake handles PUT /api/cakes/{id} requests. All form fields are
// optional; omitted fields keep their stored values.
func (h *CakeHandler) HandleUpdateCake(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid cake id"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid multipart form"))
		return
	}

	upd := model.CakeUpdate{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Flavor:      r.FormValue("flavor"),
		Category:    r.FormValue("category"),
		PriceRange:  r.FormValue("priceRange"),
	}

	if raw := r.FormValue("tags"); raw != "" {
		tags, err := parseTags(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("tags must be a JSON string array"))
			return
		}
		upd.Tags = tags
		upd.TagsSet = true
	}

	if raw := r.FormValue("isFeatured"); raw != "" {
		featured := parseBool(raw)
		upd.Featured = &featured
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()

		url, err := h.images.Save(file, header)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedImageType) {
				writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse("failed to store image"))
			return
		}
		upd.ImageURL = url
	}

	resp, err := h.service.UpdateCake(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, service.ErrCakeNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	admin, _ := middleware.AdminFromContext(r.Context())
	slog.Info("cake updated", "id", resp.ID, "admin", admin)

	writeJSON(w, http.StatusOK, resp)
}

// HandleDeleteCake handles DELETE /api/cakes/{id} requests.
func (h *CakeHandler) HandleDeleteCake(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid cake id"))
		return
	}

	if err := h.service.DeleteCake(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrCakeNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	admin, _ := middleware.AdminFromContext(r.Context())
	slog.Info("cake soft-deleted", "id", id, "admin", admin)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Cake deleted successfully"})
}

// parseTags decodes the tags form field, sent by the dashboard as a JSON
// string array. An absent field means an empty tag list.
func parseTags(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}

	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

// parseBool maps the form's "true"/"false" strings onto a real boolean.
// Anything other than "true", including an absent field, is false.
func parseBool(raw string) bool {
	return raw == "true"
}
