package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.catalogService.ListSeasons(ctx)
	if err != nil {
		h.logFailure(ctx, "list seasons failed", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, season := range seasons {
		items = append(items, seasonToDTO(season))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListSeasonClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonClubs")
	defer span.End()

	seasonCode := r.PathValue("seasonCode")
	clubs, err := h.catalogService.ListClubs(ctx, seasonCode)
	if err != nil {
		h.logFailure(ctx, "list season clubs failed", err, "season_code", seasonCode)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubDTO, 0, len(clubs))
	for _, club := range clubs {
		items = append(items, clubToDTO(club))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListClubCrests(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubCrests")
	defer span.End()

	seasonCode := strings.TrimSpace(r.URL.Query().Get("seasonCode"))
	crests, err := h.catalogService.ClubCrests(ctx, seasonCode)
	if err != nil {
		h.logFailure(ctx, "list club crests failed", err, "season_code", seasonCode)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, crests)
}
