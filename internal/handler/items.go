package handler

import (
	"net/http"
	"strconv"

	"englearn/internal/domain"

	"go.uber.org/zap"
)

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	itemType := domain.ItemType(r.URL.Query().Get("type"))
	if itemType != "" && itemType != domain.TypeAll && !itemType.Valid() {
		respondError(w, http.StatusBadRequest, "unknown item type")
		return
	}
	limit := queryInt(r, "limit", 0)

	items, err := h.selector.ForLearning(itemType, limit)
	if err != nil {
		h.logger.Error("Failed to list items", zap.String("type", string(itemType)), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load items")
		return
	}

	respondData(w, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

func (h *Handler) handleTestItems(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)

	items, err := h.selector.ForTest(limit)
	if err != nil {
		h.logger.Error("Failed to build test set", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to build test set")
		return
	}

	respondData(w, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.Summary()
	if err != nil {
		h.logger.Error("Failed to load statistics", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load statistics")
		return
	}
	respondData(w, summary)
}

type importRequest struct {
	Type  domain.ItemType       `json:"type"`
	Items []domain.LearningItem `json:"items"`
}

func (h *Handler) handleImportItems(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	count, err := h.importer.Import(req.Type, req.Items)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondData(w, map[string]int{"imported": count})
}
