package handler

import (
	"net/http"

	"go.uber.org/zap"
)

type recordRequest struct {
	ItemID    int  `json:"item_id"`
	IsCorrect bool `json:"is_correct"`
}

func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.progress.Record(req.ItemID, req.IsCorrect); err != nil {
		if req.ItemID <= 0 {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to record progress", zap.Int("item_id", req.ItemID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to record progress")
		return
	}

	respondMessage(w, http.StatusOK, "recorded")
}

type reviewAddRequest struct {
	ItemIDs []int `json:"item_ids"`
}

func (h *Handler) handleAddToReview(w http.ResponseWriter, r *http.Request) {
	var req reviewAddRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	added, err := h.review.Enqueue(req.ItemIDs)
	if err != nil {
		h.logger.Error("Failed to enqueue reviews", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to add review items")
		return
	}

	respondData(w, map[string]int{"added": added})
}

func (h *Handler) handleReviewList(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)

	pending, err := h.review.ListPending(limit)
	if err != nil {
		h.logger.Error("Failed to list pending reviews", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load review items")
		return
	}

	respondData(w, map[string]interface{}{
		"items": pending,
		"count": len(pending),
	})
}

type reviewMarkRequest struct {
	ItemID int `json:"item_id"`
}

func (h *Handler) handleMarkReviewed(w http.ResponseWriter, r *http.Request) {
	var req reviewMarkRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	marked, err := h.review.MarkReviewed(req.ItemID)
	if err != nil {
		if req.ItemID <= 0 {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to mark reviewed", zap.Int("item_id", req.ItemID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to mark reviewed")
		return
	}

	respondData(w, map[string]bool{"marked": marked})
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days", 0)

	history, err := h.stats.History(days)
	if err != nil {
		h.logger.Error("Failed to load history", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	respondData(w, map[string]interface{}{
		"history": history,
		"days":    len(history),
	})
}

func (h *Handler) handleDetailedStatistics(w http.ResponseWriter, r *http.Request) {
	detail, err := h.stats.Detailed()
	if err != nil {
		h.logger.Error("Failed to load detailed statistics", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load statistics")
		return
	}
	respondData(w, detail)
}

func (h *Handler) handleTodayProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.stats.TodayProgress()
	if err != nil {
		h.logger.Error("Failed to load today progress", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load progress")
		return
	}
	respondData(w, progress)
}

func (h *Handler) handleStreak(w http.ResponseWriter, r *http.Request) {
	streak, err := h.stats.Streak()
	if err != nil {
		h.logger.Error("Failed to compute streak", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to compute streak")
		return
	}
	respondData(w, map[string]int{"streak": streak})
}
