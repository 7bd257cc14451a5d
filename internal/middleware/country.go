package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/readyiolab/GDL-BACKEND/internal/events"
	"github.com/readyiolab/GDL-BACKEND/internal/metrics"
	"github.com/readyiolab/GDL-BACKEND/internal/session"
)

// DefaultCountry is used whenever no country can be determined.
const DefaultCountry = "US"

const detectedCountryKey = "detectedCountry"

type countryLocator interface {
	Lookup(ctx context.Context, ip string) (string, error)
}

type lookupRecorder interface {
	ObserveGeoLookup(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveGeoLookup(string) {}

// CountryDetector decides which country a request is browsing from.
type CountryDetector struct {
	locator   countryLocator
	publisher events.Publisher
	recorder  lookupRecorder
	now       func() time.Time
}

// NewCountryDetector creates a detector. publisher and recorder may be nil.
func NewCountryDetector(locator countryLocator, publisher events.Publisher, recorder lookupRecorder) *CountryDetector {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &CountryDetector{
		locator:   locator,
		publisher: publisher,
		recorder:  recorder,
		now:       time.Now,
	}
}

// Detect returns, in order of preference: the explicit country, the
// country cached in the session, or the geolocated country of remoteIP.
// A successful geolocation is cached in the session. Failures fall back to
// DefaultCountry and are never cached.
func (d *CountryDetector) Detect(ctx context.Context, sess *session.Session, explicit, remoteIP string) string {
	if explicit != "" {
		return explicit
	}

	if sess != nil {
		cached, ok, err := sess.Country(ctx)
		if err != nil {
			log.Warn().Err(err).Str("session", sess.ID).Msg("Error reading session country")
		} else if ok {
			return cached
		}
	}

	country, err := d.locator.Lookup(ctx, remoteIP)
	if err != nil {
		d.recorder.ObserveGeoLookup(metrics.GeoOutcomeFailure)
		log.Warn().Err(err).Str("ip", remoteIP).Msg("Country detection failed")
		return DefaultCountry
	}
	d.recorder.ObserveGeoLookup(metrics.GeoOutcomeSuccess)

	if sess != nil {
		if _, err := sess.SetCountry(ctx, country); err != nil {
			log.Warn().Err(err).Str("session", sess.ID).Msg("Error caching session country")
		}
		err := d.publisher.PublishCountryDetected(ctx, events.CountryDetected{
			SessionID:  sess.ID,
			Country:    country,
			IP:         remoteIP,
			DetectedAt: d.now(),
		})
		if err != nil {
			log.Warn().Err(err).Msg("Error publishing country detected event")
		}
	}

	return country
}

// Middleware runs Detect for each request and stores the result on the
// echo context.
func (d *CountryDetector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			country := d.Detect(c.Request().Context(), SessionFrom(c), c.QueryParam("country"), c.RealIP())
			c.Set(detectedCountryKey, country)
			return next(c)
		}
	}
}

// DetectedCountry returns the value stored by CountryDetector.Middleware.
func DetectedCountry(c echo.Context) (string, bool) {
	country, ok := c.Get(detectedCountryKey).(string)
	return country, ok && country != ""
}
