// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"team-directory/internal/usecase"

	"go.uber.org/zap"
)

// SyncObserver records outcomes of organization syncs.
type SyncObserver interface {
	ObserveSync(outcome string)
}

// Handler serves the JSON API using service layer interfaces.
type Handler struct {
	log     *zap.SugaredLogger
	uc      usecase.InterfaceUsecase
	metrics SyncObserver
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, metrics SyncObserver) *Handler {
	return &Handler{
		log:     log.Named("http"),
		uc:      usecase,
		metrics: metrics,
	}
}
