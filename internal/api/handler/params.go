package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetledger/fleetledger/internal/core/ports"
)

// dateLayout is the wire format for date-only query parameters and payload
// fields (data_vencimento, validade_cnh, ...).
const dateLayout = "2006-01-02"

// parseDate parses a required date-only value.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "data inválida, use o formato AAAA-MM-DD")
	}
	return t, nil
}

// parseDateOpt parses an optional date-only value; empty string yields nil.
func parseDateOpt(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// listFilterFromQuery reads the pagination and ativo query parameters shared
// by the registry list endpoints (?ativo=true&skip=0&limit=50).
func listFilterFromQuery(c echo.Context) (ports.ListFilter, error) {
	var filter ports.ListFilter

	if raw := c.QueryParam("ativo"); raw != "" {
		ativo, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "ativo deve ser true ou false")
		}
		filter.Ativo = &ativo
	}

	skip, limit, err := paginationFromQuery(c)
	if err != nil {
		return filter, err
	}
	filter.Skip = skip
	filter.Limit = limit

	return filter, nil
}

func paginationFromQuery(c echo.Context) (skip, limit int, err error) {
	if raw := c.QueryParam("skip"); raw != "" {
		skip, err = strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "skip deve ser um inteiro não negativo")
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "limit deve ser um inteiro não negativo")
		}
	}
	return skip, limit, nil
}
