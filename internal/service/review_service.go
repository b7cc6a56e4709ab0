package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/SERMEX0/sermex-backend/internal/domain"
	"github.com/SERMEX0/sermex-backend/internal/repository"
)

// ReviewService handles the product catalog and its evaluations.
type ReviewService struct {
	products    repository.ProductRepository
	evaluations repository.EvaluationRepository
	logger      *zap.Logger
}

func NewReviewService(products repository.ProductRepository, evaluations repository.EvaluationRepository, logger *zap.Logger) *ReviewService {
	return &ReviewService{products: products, evaluations: evaluations, logger: logger}
}

// GetProduct fetches one product; absent rows surface domain.ErrProductNotFound.
func (s *ReviewService) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	ctx, span := startSpan(ctx, "ReviewService.GetProduct")
	defer span.End()

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		span.RecordError(err)
		return domain.Product{}, err
	}
	return product, nil
}

// SubmitEvaluation stores one evaluation on behalf of the authenticated user.
func (s *ReviewService) SubmitEvaluation(ctx context.Context, eval domain.Evaluation) (domain.Evaluation, error) {
	ctx, span := startSpan(ctx, "ReviewService.SubmitEvaluation")
	defer span.End()

	stored, err := s.evaluations.Insert(ctx, eval)
	if err != nil {
		span.RecordError(err)
		return domain.Evaluation{}, fmt.Errorf("store evaluation: %w", err)
	}

	s.logger.Info("evaluation stored",
		zap.Int64("user_id", stored.UsuarioID),
		zap.Int64("product_id", stored.ProductoID),
		zap.Int("puntuacion", stored.Puntuacion),
	)
	return stored, nil
}

// ListEvaluations returns all evaluations for a product, newest first, each
// joined with the reviewer's email.
func (s *ReviewService) ListEvaluations(ctx context.Context, productID int64) ([]domain.Evaluation, error) {
	ctx, span := startSpan(ctx, "ReviewService.ListEvaluations")
	defer span.End()

	evals, err := s.evaluations.ListByProduct(ctx, productID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	return evals, nil
}
