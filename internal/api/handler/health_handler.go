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

const readinessTimeout = 3 * time.Second

// HealthHandler serves the liveness and readiness probes. Liveness answers
// immediately; readiness pings MongoDB and Redis, the two stores the API
// cannot serve traffic without.
type HealthHandler struct {
	db  *mongo.Database
	rdb *redis.Client
}

func NewHealthHandler(db *mongo.Database, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type storeCheck struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessReport struct {
	Status string                `json:"status"`
	Stores map[string]storeCheck `json:"stores"`
}

func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	checks := []struct {
		name string
		ping func(context.Context) error
	}{
		{"mongodb", h.pingMongo},
		{"redis", h.pingRedis},
	}

	report := readinessReport{
		Status: "ok",
		Stores: make(map[string]storeCheck, len(checks)),
	}
	code := http.StatusOK
	for _, chk := range checks {
		if err := chk.ping(ctx); err != nil {
			report.Stores[chk.name] = storeCheck{Status: "unhealthy", Error: err.Error()}
			report.Status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		report.Stores[chk.name] = storeCheck{Status: "ok"}
	}

	return c.JSON(code, report)
}

func (h *HealthHandler) pingMongo(ctx context.Context) error {
	if err := h.db.Client().Ping(ctx, nil); err != nil {
		return err
	}
	// A reachable client can still sit in front of an unresponsive primary.
	return h.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (h *HealthHandler) pingRedis(ctx context.Context) error {
	return h.rdb.Ping(ctx).Err()
}
