package api

import (
	"net/http"

	resdto "tripdesk/internal/handler/dto/response"
	"tripdesk/internal/handler/httperr"
	"tripdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List flights
// @Description List bookable flights ordered by departure
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string][]resdto.FlightResponse
// @Failure 500 {object} httperr.Response
// @Router /flights [get]
func (h *CatalogHandler) ListFlights(c *gin.Context) {
	flights, err := h.q.ListFlights(c.Request.Context())
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flights": resdto.FromFlightList(flights)})
}

// @Summary Get flight
// @Description Get a flight with its live seat availability
// @Tags catalog
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} resdto.FlightResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /flights/{id} [get]
func (h *CatalogHandler) GetFlight(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeInvalidRequest, "Invalid flight ID format", nil)
		return
	}

	flight, err := h.q.GetFlight(c.Request.Context(), id)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlightView(flight))
}

// @Summary List tour packages
// @Description List bookable tour packages
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string][]resdto.PackageResponse
// @Failure 500 {object} httperr.Response
// @Router /packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	packages, err := h.q.ListPackages(c.Request.Context())
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": resdto.FromPackageList(packages)})
}

// @Summary Get tour package
// @Description Get a tour package with its parsed group size
// @Tags catalog
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /packages/{id} [get]
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			httperr.CodeInvalidRequest, "Invalid package ID format", nil)
		return
	}

	pkg, err := h.q.GetPackage(c.Request.Context(), id)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(pkg))
}
