package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SERMEX0/sermex-backend/internal/service"
)

// NotifyHandler serves the mail-backed endpoints: warranty claims, contact
// forms, the vendor directory, and the SMTP probe.
type NotifyHandler struct {
	Notifications *service.NotificationService
	Vendors       *service.VendorDirectory
}

func NewNotifyHandler(notifications *service.NotificationService, vendors *service.VendorDirectory) *NotifyHandler {
	return &NotifyHandler{Notifications: notifications, Vendors: vendors}
}

// SendWarranty mails the warranty document plus photos to the chosen vendor.
func (h *NotifyHandler) SendWarranty(c *gin.Context) {
	var req service.WarrantyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Solicitud inválida"})
		return
	}
	if strings.TrimSpace(req.DocumentoBase64) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "El documento está vacío"})
		return
	}

	attachments, err := h.Notifications.SendWarranty(c.Request.Context(), req)
	if err != nil {
		zap.L().Error("warranty mail failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error al enviar el correo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Correo enviado correctamente",
		"attachments": attachments,
	})
}

// SendRequest forwards a documentation/support request to the sales inbox.
func (h *NotifyHandler) SendRequest(c *gin.Context) {
	var req service.SupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}
	if missingAny(req.Nombre, req.Correo, req.Telefono, req.Descripcion) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan campos obligatorios"})
		return
	}

	if err := h.Notifications.SendSupportRequest(c.Request.Context(), req); err != nil {
		zap.L().Error("support request mail failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Solicitud enviada correctamente"})
}

// SendContact forwards the general contact form to the sales inbox.
func (h *NotifyHandler) SendContact(c *gin.Context) {
	var req service.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}
	if missingAny(req.Nombre, req.Correo, req.Telefono, req.Asunto, req.Tipo, req.Descripcion) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan campos obligatorios"})
		return
	}

	if err := h.Notifications.SendContact(c.Request.Context(), req); err != nil {
		zap.L().Error("contact mail failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Solicitud de contacto enviada correctamente"})
}

// ListVendors returns the sales contacts available to the warranty form.
func (h *NotifyHandler) ListVendors(c *gin.Context) {
	c.JSON(http.StatusOK, h.Vendors.Vendors())
}

// TestMail sends a probe mail to verify SMTP configuration.
func (h *NotifyHandler) TestMail(c *gin.Context) {
	if err := h.Notifications.SendTest(c.Request.Context()); err != nil {
		zap.L().Error("test mail failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Error: %v", err)
		return
	}
	c.String(http.StatusOK, "Correo de prueba enviado. Revisa tu bandeja de entrada y spam")
}

func missingAny(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}
