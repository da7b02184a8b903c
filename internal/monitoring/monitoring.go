package monitoring

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	TweetsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweets_created_total",
		Help: "Total tweets successfully created",
	})

	TweetsDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweets_deleted_total",
		Help: "Total tweets successfully deleted",
	})

	MediaUploaded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "media_uploaded_total",
		Help: "Total media files successfully uploaded",
	})

	FollowChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "follow_changes_total",
		Help: "Total follow and unfollow operations",
	}, []string{"action"})

	LikeChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "like_changes_total",
		Help: "Total like and unlike operations",
	}, []string{"action"})
)

func init() {
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(TweetsCreated)
	prometheus.MustRegister(TweetsDeleted)
	prometheus.MustRegister(MediaUploaded)
	prometheus.MustRegister(FollowChanges)
	prometheus.MustRegister(LikeChanges)
}

// Middleware records request timing and status per route
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			duration := time.Since(start).Seconds()
			route := c.Path()
			status := strconv.Itoa(c.Response().Status)
			RequestDuration.WithLabelValues(c.Request().Method, route, status).Observe(duration)
			return err
		}
	}
}
