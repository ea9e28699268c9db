// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jeremy-dai/hi-time-sub000/internal/app"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/utils"
	"github.com/jeremy-dai/hi-time-sub000/internal/validators"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

// maxBodyBytes bounds every request body read by the resource handlers.
const maxBodyBytes = 4 << 20

// resourceRoute binds one resource kind to its URL and wire envelope.
type resourceRoute struct {
	kind models.ResourceKind

	// envelope is the JSON field wrapping the document, e.g. "settings".
	// Empty means the document is sent bare (weeks).
	envelope string

	// key extracts the resource key from the request.
	key func(r *http.Request) string
}

func urlParam(name string) func(r *http.Request) string {
	return func(r *http.Request) string {
		return chi.URLParam(r, name)
	}
}

func fixedKey(key string) func(r *http.Request) string {
	return func(*http.Request) string {
		return key
	}
}

// shippingDate joins /{year}/{month}/{day} into the YYYY-MM-DD key.
func shippingDate(r *http.Request) string {
	return fmt.Sprintf("%s-%s-%s", chi.URLParam(r, "year"), chi.URLParam(r, "month"), chi.URLParam(r, "day"))
}

func (h *Handler) getResource(route resourceRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		resource, err := h.services.ResourceService.Get(r.Context(), userID, route.kind, route.key(r))
		if err != nil {
			writeServiceError(w, r, route.kind, err)
			return
		}

		writeDocument(w, r, route.envelope, resource.Payload, http.StatusOK)
	}
}

func (h *Handler) putResource(route resourceRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		payload, ok := readDocument(w, r, route.envelope)
		if !ok {
			return
		}

		saved, err := h.services.ResourceService.Put(r.Context(), models.Resource{
			UserID:  userID,
			Kind:    route.kind,
			Key:     route.key(r),
			Payload: payload,
		})
		if err != nil {
			writeServiceError(w, r, route.kind, err)
			return
		}

		writeDocument(w, r, route.envelope, saved.Payload, http.StatusOK)
	}
}

func (h *Handler) deleteResource(route resourceRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := h.services.ResourceService.Delete(r.Context(), userID, route.kind, route.key(r)); err != nil {
			writeServiceError(w, r, route.kind, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	resources, err := h.services.ResourceService.List(r.Context(), userID, models.KindGoal, "")
	if err != nil {
		writeServiceError(w, r, models.KindGoal, err)
		return
	}

	writeList(w, r, "goals", resources)
}

func (h *Handler) createGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	payload, ok := readDocument(w, r, "goal")
	if !ok {
		return
	}

	created, err := h.services.ResourceService.Create(r.Context(), models.Resource{
		UserID:  userID,
		Kind:    models.KindGoal,
		Payload: payload,
	})
	if err != nil {
		writeServiceError(w, r, models.KindGoal, err)
		return
	}

	writeDocument(w, r, "goal", created.Payload, http.StatusCreated)
}

func (h *Handler) listShipping(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	year, err := validators.ParseYear(chi.URLParam(r, "year"))
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.listShipping").Msg("invalid year")
		utils.WriteError(w, app.MsgInvalidYear, http.StatusBadRequest)
		return
	}

	prefix := fmt.Sprintf("%04d-", year)
	resources, err := h.services.ResourceService.List(r.Context(), userID, models.KindShipping, prefix)
	if err != nil {
		writeServiceError(w, r, models.KindShipping, err)
		return
	}

	writeList(w, r, "entries", resources)
}

// userIDFromRequest returns the id stored by the auth middleware. A request
// that reached a protected handler without one is answered with 401.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Err(ErrNoUserInContext).Send()
		utils.WriteError(w, app.MsgNoTokenProvided, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

// readDocument decodes the request body and unwraps the document stored
// under envelope.
func readDocument(w http.ResponseWriter, r *http.Request, envelope string) (json.RawMessage, bool) {
	log := logger.FromRequest(r)

	var body json.RawMessage
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return nil, false
	}

	if envelope == "" {
		return body, true
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err != nil {
		log.Err(err).Str("envelope", envelope).Msg("request body is not an object")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return nil, false
	}

	doc, ok := wrapped[envelope]
	if !ok || string(doc) == "null" {
		log.Error().Str("envelope", envelope).Msg("request body misses its envelope")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return nil, false
	}

	return doc, true
}

func writeDocument(w http.ResponseWriter, r *http.Request, envelope string, payload json.RawMessage, status int) {
	var data any = payload
	if envelope != "" {
		data = map[string]json.RawMessage{envelope: payload}
	}

	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeDocument").Msg("writing response failed")
	}
}

func writeList(w http.ResponseWriter, r *http.Request, field string, resources []models.Resource) {
	docs := make([]json.RawMessage, 0, len(resources))
	for _, res := range resources {
		docs = append(docs, res.Payload)
	}

	if _, err := utils.WriteJSON(w, map[string][]json.RawMessage{field: docs}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeList").Msg("writing response failed")
	}
}
