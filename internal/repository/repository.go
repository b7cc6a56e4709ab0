// Package repository defines the persistence interfaces consumed by the
// services and their PostgreSQL implementations.
package repository

import (
	"context"

	"github.com/SERMEX0/sermex-backend/internal/domain"
)

// UserRepository exposes the credential-store operations needed by auth.
type UserRepository interface {
	GetByCorreo(ctx context.Context, correo string) (domain.User, error)
	GetByID(ctx context.Context, userID int64) (domain.User, error)
	Create(ctx context.Context, correo, passwordHash string) (domain.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// ProductRepository reads the productos catalog.
type ProductRepository interface {
	GetByID(ctx context.Context, productID int64) (domain.Product, error)
}

// EvaluationRepository stores and lists product evaluations.
type EvaluationRepository interface {
	Insert(ctx context.Context, eval domain.Evaluation) (domain.Evaluation, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.Evaluation, error)
}

// LogisticsRepository tracks RMA tickets.
type LogisticsRepository interface {
	List(ctx context.Context) ([]domain.LogisticsTicket, error)
	ListByCorreo(ctx context.Context, correo string) ([]domain.LogisticsTicket, error)
	UpdateStatus(ctx context.Context, rmaID, estado, detalles string) error
}
