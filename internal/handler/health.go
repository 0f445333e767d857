package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// healthReport condenses the dependency probes. Details stay coarse
// ("ok"/"error") to avoid leaking internals.
type healthReport struct {
	status   int
	database string
	queue    string
}

func buildHealthReport(dbErr, queueErr error) healthReport {
	probe := func(err error) string {
		if err != nil {
			return "error"
		}
		return "ok"
	}
	status := http.StatusOK
	if dbErr != nil || queueErr != nil {
		status = http.StatusServiceUnavailable
	}
	return healthReport{status: status, database: probe(dbErr), queue: probe(queueErr)}
}

// Health probes the database and the mail queue backend. Healthy instances
// answer a plain "ok" so dumb liveness checks can string-match the body;
// degraded ones return 503 with per-dependency detail so the load balancer
// pulls the instance.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		var dbErr error
		if sqlDB, err := db.DB(); err != nil {
			dbErr = err
		} else {
			dbErr = sqlDB.PingContext(ctx)
		}

		report := buildHealthReport(dbErr, rdb.Ping(ctx).Err())
		if report.status == http.StatusOK {
			c.String(http.StatusOK, "ok")
			return
		}
		c.JSON(report.status, gin.H{
			"ok":       false,
			"database": report.database,
			"queue":    report.queue,
		})
	}
}
