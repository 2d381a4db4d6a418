package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	serviceName      = "fleetledger"
	readinessTimeout = 3 * time.Second
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": serviceName,
	})
}

// dependencyCheck is one named backing-store probe. A failing check marks
// the service degraded but never aborts the remaining checks, so the
// response always reports every dependency.
type dependencyCheck struct {
	name string
	ping func(ctx context.Context) error
}

// HealthDependenciesHandler handles GET /health/ready — readiness probe over
// the service's backing stores.
type HealthDependenciesHandler struct {
	checks  []dependencyCheck
	timeout time.Duration
}

func NewHealthDependenciesHandler(db *mongo.Database, rdb *redis.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		timeout: readinessTimeout,
		checks: []dependencyCheck{
			{name: "mongodb", ping: func(ctx context.Context) error {
				if err := db.Client().Ping(ctx, nil); err != nil {
					return err
				}
				// The client ping only proves the topology is reachable;
				// run a server-side ping against our database as well.
				return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
			}},
			{name: "redis", ping: func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			}},
		},
	}
}

type checkStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status  string                 `json:"status"`
	Service string                 `json:"service"`
	Checks  map[string]checkStatus `json:"checks"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	checks := make(map[string]checkStatus, len(h.checks))
	healthy := true
	for _, chk := range h.checks {
		if err := chk.ping(ctx); err != nil {
			checks[chk.name] = checkStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			continue
		}
		checks[chk.name] = checkStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:  status,
		Service: serviceName,
		Checks:  checks,
	})
}
