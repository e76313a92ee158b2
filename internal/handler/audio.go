package handler

import (
	"net/http"

	"englearn/internal/tts"

	"go.uber.org/zap"
)

type audioRequest struct {
	Text  string  `json:"text"`
	Voice string  `json:"voice"`
	Rate  float64 `json:"rate"`
}

func (h *Handler) handleGenerateAudio(w http.ResponseWriter, r *http.Request) {
	var req audioRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	path, err := h.tts.Generate(req.Text, req.Voice, req.Rate)
	if err != nil {
		h.logger.Error("Speech synthesis failed", zap.String("voice", req.Voice), zap.Error(err))
		respondError(w, http.StatusBadGateway, "speech synthesis failed")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	http.ServeFile(w, r, path)
}

func (h *Handler) handleVoices(w http.ResponseWriter, r *http.Request) {
	respondData(w, tts.Voices)
}
