package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SERMEX0/sermex-backend/internal/domain"
	"github.com/SERMEX0/sermex-backend/internal/http/middleware"
	"github.com/SERMEX0/sermex-backend/internal/service"
)

// ReviewHandler serves the product catalog and its evaluations.
type ReviewHandler struct {
	Reviews *service.ReviewService
}

func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews}
}

type evaluationRequest struct {
	ProductoID  int64  `json:"producto_id"`
	Puntuacion  int    `json:"puntuacion"`
	Comentario  string `json:"comentario"`
	Sugerencias string `json:"sugerencias"`
}

// GetProduct returns one product by id, 404 when absent.
func (h *ReviewHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	product, err := h.Reviews.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			return
		}
		zap.L().Error("get product failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener producto"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// SubmitEvaluation stores one evaluation on behalf of the authenticated user.
func (h *ReviewHandler) SubmitEvaluation(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token requerido"})
		return
	}

	var req evaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	_, err := h.Reviews.SubmitEvaluation(c.Request.Context(), domain.Evaluation{
		UsuarioID:   identity.UserID,
		ProductoID:  req.ProductoID,
		Puntuacion:  req.Puntuacion,
		Comentario:  req.Comentario,
		Sugerencias: req.Sugerencias,
	})
	if err != nil {
		zap.L().Error("store evaluation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar evaluación"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Evaluación guardada correctamente"})
}

// ListEvaluations returns a product's evaluations with each reviewer's email.
func (h *ReviewHandler) ListEvaluations(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("producto_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	evals, err := h.Reviews.ListEvaluations(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("list evaluations failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener evaluaciones"})
		return
	}

	c.JSON(http.StatusOK, evals)
}
