package search_yachts

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/harbourline/yacht-booking-service/internal/api/handlers"
	"github.com/harbourline/yacht-booking-service/internal/domain"
	searchYachts "github.com/harbourline/yacht-booking-service/internal/usecase/search_yachts"
)

const (
	msgInvalidPeopleNo  = "invalid people count"
	msgInvalidStartDate = "invalid start date, RFC 3339 timestamp expected"
	msgInvalidParams    = "invalid search parameters"
	msgInvalidPackage   = "unknown or invalid package"
)

type Handler struct {
	useCase SearchYachtsUseCase
	logger  Logger
}

func NewHandler(useCase SearchYachtsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/yachts/search
//
// Query параметры: location, yachtType, peopleNo, package, startDate,
// addons (через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	peopleNo, err := strconv.Atoi(query.Get("peopleNo"))
	if err != nil {
		h.logger.Warn("GET /yachts/search - Invalid peopleNo: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeopleNo)
		return
	}

	startDate, err := time.Parse(time.RFC3339, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /yachts/search - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	var addons []domain.AddonService
	if raw := query.Get("addons"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			addons = append(addons, domain.AddonService(strings.TrimSpace(a)))
		}
	}

	useCaseReq := &searchYachts.Request{
		Location:  domain.LocationType(query.Get("location")),
		YachtType: query.Get("yachtType"),
		PeopleNo:  peopleNo,
		Package:   domain.PackageType(query.Get("package")),
		StartDate: startDate,
		Addons:    addons,
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, searchYachts.ErrInvalidPackage):
			h.logger.Warn("GET /yachts/search - Invalid package: package=%s", query.Get("package"))
			handlers.RespondBadRequest(w, msgInvalidPackage)

		case errors.Is(err, searchYachts.ErrInvalidInput):
			h.logger.Warn("GET /yachts/search - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /yachts/search - Search failed: location=%s, error=%v", query.Get("location"), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /yachts/search - %d yachts found: location=%s, people=%d",
		len(result.Yachts), query.Get("location"), peopleNo)
	handlers.RespondJSON(w, http.StatusOK, result)
}
