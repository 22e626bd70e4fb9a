package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/report"

	"github.com/labstack/echo/v4"
)

// GetDriverRankReport handles GET /api/v1/reports/drivers[?cityId=].
// Without cityId the report covers every city.
func (s *Server) GetDriverRankReport(ctx echo.Context) error {
	var (
		rows []report.DriverDistance
		err  error
	)

	if raw := ctx.QueryParam("cityId"); raw != "" {
		cityID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid cityId")
		}

		query, queryErr := queries.NewGetDriverRankReportByCityQuery(cityID)
		if queryErr != nil {
			return respondError(ctx, queryErr)
		}
		rows, err = s.handlers.CityRankReport.Handle(ctx.Request().Context(), query)
	} else {
		rows, err = s.handlers.RankReport.Handle(ctx.Request().Context(), queries.NewGetDriverRankReportQuery())
	}

	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDriverRanks(rows))
}
