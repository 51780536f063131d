package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/healthapi/internal/telemetry/metrics"
	"github.com/2beens/healthapi/pkg"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit limits requests per client IP. Routes named in routeLimits get a
// bucket and limit of their own, all other routes share the global bucket.
// It must be used on a router, so the matched route is known.
func RateLimit(
	rateLimiter RequestRateLimiter,
	metricsManager *metrics.Manager,
	globalLimit redis_rate.Limit,
	routeLimits map[string]redis_rate.Limit,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bucket, limit := "global", globalLimit
			if route := mux.CurrentRoute(r); route != nil {
				if routeLimit, ok := routeLimits[route.GetName()]; ok {
					bucket, limit = route.GetName(), routeLimit
				}
			}
			limitRequest(w, r, next, rateLimiter, metricsManager, bucket, limit)
		})
	}
}

func limitRequest(
	w http.ResponseWriter,
	r *http.Request,
	next http.Handler,
	rateLimiter RequestRateLimiter,
	metricsManager *metrics.Manager,
	bucket string,
	limit redis_rate.Limit,
) {
	clientIP, err := pkg.ReadUserIP(r)
	if err != nil {
		log.Debugf("rate limit, read user ip: %s", err)
		clientIP = "unknown"
	}

	res, err := rateLimiter.Allow(r.Context(), bucket+"||"+clientIP, limit)
	if err != nil {
		log.Errorf("rate limit [%s]: %s", bucket, err)
		pkg.WriteJSONError(w, "rate limit internal error", http.StatusInternalServerError)
		return
	}

	if res.Allowed > 0 {
		next.ServeHTTP(w, r)
		return
	}

	if metricsManager != nil {
		metricsManager.CounterRateLimitedRequests.Inc()
	}
	w.Header().Set("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())+1))
	pkg.WriteJSONError(
		w,
		fmt.Sprintf("retry after %.0f seconds", res.RetryAfter.Seconds()),
		http.StatusTooManyRequests,
	)
}
