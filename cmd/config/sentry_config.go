package config

import (
	"Foodgram-Backend/internal/utils"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2/log"
)

// InitSentry enables error reporting when SENTRY_DSN is set. The returned
// function flushes pending events and is safe to call either way.
func InitSentry() func() {
	dsn := utils.GetConfig("SENTRY_DSN")
	if dsn == "" {
		return func() {}
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		EnableTracing:    true,
		TracesSampleRate: 0.2,
		Environment:      utils.GetConfig("APP_ENV"),
	}); err != nil {
		log.Errorf("Sentry init failed: %v", err)
		return func() {}
	}

	return func() { sentry.Flush(2 * time.Second) }
}
