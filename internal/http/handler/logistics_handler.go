package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SERMEX0/sermex-backend/internal/domain"
	"github.com/SERMEX0/sermex-backend/internal/service"
)

// LogisticsHandler serves the RMA ticket tracker.
type LogisticsHandler struct {
	Logistics *service.LogisticsService
}

func NewLogisticsHandler(logistics *service.LogisticsService) *LogisticsHandler {
	return &LogisticsHandler{Logistics: logistics}
}

type updateTicketRequest struct {
	RMAID       string `json:"rma_id"`
	NuevoEstado string `json:"nuevo_estado"`
	Notas       string `json:"notas"`
}

// List returns every ticket, newest first.
func (h *LogisticsHandler) List(c *gin.Context) {
	tickets, err := h.Logistics.ListTickets(c.Request.Context())
	if err != nil {
		zap.L().Error("list tickets failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al consultar"})
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// ListByCorreo returns the tickets for one customer email.
func (h *LogisticsHandler) ListByCorreo(c *gin.Context) {
	correo := c.Param("correo")

	tickets, err := h.Logistics.ListTicketsByCorreo(c.Request.Context(), correo)
	if err != nil {
		zap.L().Error("list tickets by correo failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al consultar"})
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// Update sets the state and optional notes of one RMA.
func (h *LogisticsHandler) Update(c *gin.Context) {
	var req updateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}
	if strings.TrimSpace(req.RMAID) == "" || strings.TrimSpace(req.NuevoEstado) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Los campos 'rma_id' y 'nuevo_estado' son obligatorios"})
		return
	}

	err := h.Logistics.UpdateTicket(c.Request.Context(), req.RMAID, req.NuevoEstado, req.Notas)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No se encontró el RMA especificado"})
			return
		}
		zap.L().Error("update ticket failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno al actualizar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Estado actualizado correctamente"})
}
