package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/SERMEX0/sermex-backend/internal/domain"
	"github.com/SERMEX0/sermex-backend/internal/repository"
)

// LogisticsService exposes the RMA ticket tracker.
type LogisticsService struct {
	tickets repository.LogisticsRepository
	logger  *zap.Logger
}

func NewLogisticsService(tickets repository.LogisticsRepository, logger *zap.Logger) *LogisticsService {
	return &LogisticsService{tickets: tickets, logger: logger}
}

// ListTickets returns every ticket, newest first.
func (s *LogisticsService) ListTickets(ctx context.Context) ([]domain.LogisticsTicket, error) {
	ctx, span := startSpan(ctx, "LogisticsService.ListTickets")
	defer span.End()

	tickets, err := s.tickets.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// ListTicketsByCorreo returns the tickets belonging to one customer email.
func (s *LogisticsService) ListTicketsByCorreo(ctx context.Context, correo string) ([]domain.LogisticsTicket, error) {
	ctx, span := startSpan(ctx, "LogisticsService.ListTicketsByCorreo")
	defer span.End()

	tickets, err := s.tickets.ListByCorreo(ctx, normalizeCorreo(correo))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list tickets by correo: %w", err)
	}
	return tickets, nil
}

// UpdateTicket sets the state and optional notes of one RMA. Absent RMAs
// surface domain.ErrTicketNotFound.
func (s *LogisticsService) UpdateTicket(ctx context.Context, rmaID, estado, notas string) error {
	ctx, span := startSpan(ctx, "LogisticsService.UpdateTicket")
	defer span.End()

	if err := s.tickets.UpdateStatus(ctx, rmaID, estado, notas); err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrTicketNotFound) {
			return domain.ErrTicketNotFound
		}
		return fmt.Errorf("update ticket: %w", err)
	}

	s.logger.Info("logistics ticket updated",
		zap.String("rma_id", rmaID),
		zap.String("estado", estado),
	)
	return nil
}
