// Package handlers содержит HTTP-обработчики API товаров.
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/RoGogDBD/items/internal/models"
	"github.com/RoGogDBD/items/internal/pagination"
	"github.com/RoGogDBD/items/internal/repository"
	"github.com/RoGogDBD/items/internal/validation"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	cache    repository.Cache
	store    repository.ItemStore
	validate *validator.Validate
}

func NewHandler(cache repository.Cache, store repository.ItemStore) *Handler {
	return &Handler{
		cache:    cache,
		store:    store,
		validate: validation.New(),
	}
}

// HealthHandler возвращает статус 200 OK и тело "OK" для проверки состояния сервера.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// ListItems обрабатывает запрос списка товаров с фильтрацией и пагинацией.
//
// @Summary      List all items
// @Tags         items
// @Produce      json
// @Param        search     query  string  false  "Case-insensitive substring over id, name, price"
// @Param        id         query  string  false  "Item id"
// @Param        name       query  string  false  "Item name"
// @Param        price      query  string  false  "Item price"
// @Param        price_from query  string  false  "Item sales price from"
// @Param        price_to   query  string  false  "Item sales price to"
// @Param        ordering   query  string  false  "Ordering field, prefix with - for descending"
// @Param        page       query  int     false  "Page number"
// @Param        page_size  query  int     false  "Page size"
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /items/ [get]
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	log.Println("Fetching all items")

	opts := parseListOptions(r.URL.Query())
	params := pagination.ParseParams(r.URL.Query())
	opts.Limit = params.Limit()
	opts.Offset = params.Offset()

	items, total, err := h.store.ListItems(r.Context(), opts)
	if err != nil {
		log.Printf("Error fetching all items: %v", err)
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	writeData(w, http.StatusOK, pagination.NewPage(r, items, total, params))
}

// GetItem обрабатывает запрос одного товара по идентификатору.
//
// @Summary      Retrieve item details
// @Tags         items
// @Produce      json
// @Param        id   path  int  true  "Item id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /items/{id}/ [get]
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if item, err := h.cache.GetByID(id); err == nil {
		writeData(w, http.StatusOK, item)
		return
	}

	item, err := h.store.GetItemByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		log.Printf("Error fetching item %d: %v", id, err)
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Save(item)
	writeData(w, http.StatusOK, item)
}

// CreateItem обрабатывает создание товара.
//
// @Summary      Add new Item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        item  body  models.ItemForm  true  "Item fields"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Router       /items/ [post]
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var form models.ItemForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.validate.Struct(&form); err != nil {
		writeFieldErrors(w, validation.FormatErrors(err))
		return
	}

	item, err := h.store.InsertItem(r.Context(), &form)
	if err != nil {
		log.Printf("Error creating item: %v", err)
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Save(item)
	writeData(w, http.StatusCreated, item)
}

// UpdateItem обрабатывает частичное обновление товара: меняются
// только переданные поля, несмотря на метод PUT.
//
// @Summary      Update item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "Item id"
// @Param        item  body  models.ItemForm  true  "Fields to update"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /items/{id}/ [put]
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var form models.ItemForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.validate.Struct(&form); err != nil {
		writeFieldErrors(w, validation.FormatErrors(err))
		return
	}

	item, err := h.store.UpdateItem(r.Context(), id, &form)
	if errors.Is(err, repository.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		log.Printf("Error updating item %d: %v", id, err)
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Save(item)
	writeData(w, http.StatusOK, item)
}

// DeleteItem обрабатывает безусловное удаление товара.
//
// @Summary      Delete item
// @Tags         items
// @Produce      json
// @Param        id   path  int  true  "Item id"
// @Success      204
// @Failure      404  {object}  map[string]any
// @Router       /items/{id}/ [delete]
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	err := h.store.DeleteItem(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		log.Printf("Error deleting item %d: %v", id, err)
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.cache.Invalidate(id)
	log.Printf("Item %d deleted successfully", id)
	writeEnvelope(w, envelope{Status: http.StatusNoContent, Message: "Item deleted successfully"})
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Item not found")
		return 0, false
	}
	return id, true
}
