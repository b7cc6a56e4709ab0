package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/SERMEX0/sermex-backend/internal/config"
	"github.com/SERMEX0/sermex-backend/internal/mail"
)

// WarrantyImage is one photo attached to a warranty claim, base64-encoded on
// the wire.
type WarrantyImage struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// WarrantyRequest is the payload of the warranty form.
type WarrantyRequest struct {
	VendedorEmail   string            `json:"vendedorEmail"`
	DatosFormulario map[string]string `json:"datosFormulario"`
	DocumentoBase64 string            `json:"documentoBase64"`
	Imagenes        []WarrantyImage   `json:"imagenes"`
}

// SupportRequest is the documentation/support form payload.
type SupportRequest struct {
	Nombre            string `json:"nombre"`
	Correo            string `json:"correo"`
	Telefono          string `json:"telefono"`
	Empresa           string `json:"empresa"`
	Producto          string `json:"producto"`
	TipoSolicitud     string `json:"tipoSolicitud"`
	Descripcion       string `json:"descripcion"`
	ContactoPreferido string `json:"contactoPreferido"`
}

// ContactRequest is the general contact form payload.
type ContactRequest struct {
	Nombre      string `json:"nombre"`
	Correo      string `json:"correo"`
	Empresa     string `json:"empresa"`
	Telefono    string `json:"telefono"`
	Asunto      string `json:"asunto"`
	Tipo        string `json:"tipo"`
	Descripcion string `json:"descripcion"`
}

var supportTypeLabels = map[string]string{
	"documentacion": "Documentación del producto",
	"soporte":       "Soporte técnico",
	"garantia":      "Solicitud de garantía",
	"dudas":         "Resolución de dudas",
	"contacto":      "Contactar con un especialista",
	"otro":          "Otro tipo de solicitud",
}

var contactTypeLabels = map[string]string{
	"soporte":     "Problema con producto",
	"asesoria":    "Solicitar asesoría",
	"experto":     "Hablar con un experto",
	"informacion": "Información",
	"facturacion": "Facturación",
	"otro":        "Otro",
}

// NotificationService assembles the Spanish HTML mails for the warranty and
// contact forms and hands them to the Dispatcher.
type NotificationService struct {
	dispatcher mail.Dispatcher
	from       string
	salesEmail string
	logger     *zap.Logger
}

func NewNotificationService(dispatcher mail.Dispatcher, cfg config.Config, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		from:       cfg.MailFrom,
		salesEmail: cfg.SalesEmail,
		logger:     logger,
	}
}

// SendWarranty mails the warranty document and photos to the selected vendor.
// Returns the number of attachments delivered.
func (s *NotificationService) SendWarranty(ctx context.Context, req WarrantyRequest) (int, error) {
	ctx, span := startSpan(ctx, "NotificationService.SendWarranty")
	defer span.End()

	doc, err := base64.StdEncoding.DecodeString(req.DocumentoBase64)
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("decode warranty document: %w", err)
	}

	attachments := []mail.Attachment{{
		Filename:    fmt.Sprintf("garantia_%d.docx", time.Now().UnixMilli()),
		Content:     doc,
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}}

	for i, img := range req.Imagenes {
		content, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			span.RecordError(err)
			return 0, fmt.Errorf("decode warranty image %d: %w", i+1, err)
		}
		ext := strings.ToLower(strings.TrimPrefix(extension(img.Name), "."))
		ctype := ext
		if ctype == "jpg" {
			ctype = "jpeg"
		}
		attachments = append(attachments, mail.Attachment{
			Filename:    fmt.Sprintf("imagen_%d.%s", i+1, ext),
			Content:     content,
			ContentType: "image/" + ctype,
		})
	}

	cliente := req.DatosFormulario["CLIENTE"]
	if cliente == "" {
		cliente = "Cliente"
	}

	msg := mail.Message{
		From:        s.from,
		To:          req.VendedorEmail,
		Subject:     fmt.Sprintf("Garantía - %s", cliente),
		HTML:        "<p>Solicitud de garantía enviada</p>",
		Attachments: attachments,
	}

	if err := s.dispatcher.Send(ctx, msg); err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("dispatch warranty mail: %w", err)
	}

	s.audit("notify.warranty.sent", "vendedor", req.VendedorEmail, "attachments", len(attachments))
	return len(attachments), nil
}

// SendSupportRequest mails a documentation/support request to the sales inbox.
func (s *NotificationService) SendSupportRequest(ctx context.Context, req SupportRequest) error {
	ctx, span := startSpan(ctx, "NotificationService.SendSupportRequest")
	defer span.End()

	label := supportTypeLabels[req.TipoSolicitud]
	if label == "" {
		label = req.TipoSolicitud
	}

	var b strings.Builder
	b.WriteString("<h2>Nueva solicitud recibida</h2>")
	writeField(&b, "Nombre", req.Nombre)
	writeField(&b, "Correo", req.Correo)
	writeField(&b, "Teléfono", req.Telefono)
	writeField(&b, "Empresa", orDefault(req.Empresa, "No especificada"))
	writeField(&b, "Producto de interés", orDefault(req.Producto, "No especificado"))
	writeField(&b, "Tipo de solicitud", label)
	writeField(&b, "Método de contacto preferido", req.ContactoPreferido)
	b.WriteString("<h3>Descripción de la solicitud:</h3>")
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(req.Descripcion))
	b.WriteString("<hr><p><em>Este mensaje fue enviado desde el formulario de contacto de SERMEX</em></p>")

	msg := mail.Message{
		From:    s.from,
		To:      s.salesEmail,
		Subject: fmt.Sprintf("Nueva solicitud: %s - %s", req.TipoSolicitud, req.Nombre),
		HTML:    b.String(),
	}

	if err := s.dispatcher.Send(ctx, msg); err != nil {
		span.RecordError(err)
		return fmt.Errorf("dispatch support request mail: %w", err)
	}

	s.audit("notify.support_request.sent", "correo", req.Correo, "tipo", req.TipoSolicitud)
	return nil
}

// SendContact mails a general contact form to the sales inbox.
func (s *NotificationService) SendContact(ctx context.Context, req ContactRequest) error {
	ctx, span := startSpan(ctx, "NotificationService.SendContact")
	defer span.End()

	label := contactTypeLabels[req.Tipo]
	if label == "" {
		label = req.Tipo
	}

	var b strings.Builder
	b.WriteString("<h2>Nuevo contacto recibido</h2>")
	writeField(&b, "Nombre", req.Nombre)
	writeField(&b, "Correo", req.Correo)
	writeField(&b, "Teléfono", req.Telefono)
	writeField(&b, "Empresa", orDefault(req.Empresa, "No especificada"))
	writeField(&b, "Asunto", req.Asunto)
	writeField(&b, "Tipo de solicitud", label)
	b.WriteString("<h3>Descripción:</h3>")
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(req.Descripcion))
	b.WriteString("<hr><p><em>Este mensaje fue enviado desde el formulario de contacto general de SERMEX</em></p>")

	msg := mail.Message{
		From:    s.from,
		To:      s.salesEmail,
		Subject: fmt.Sprintf("Contacto: %s - %s", req.Asunto, req.Nombre),
		HTML:    b.String(),
	}

	if err := s.dispatcher.Send(ctx, msg); err != nil {
		span.RecordError(err)
		return fmt.Errorf("dispatch contact mail: %w", err)
	}

	s.audit("notify.contact.sent", "correo", req.Correo, "tipo", req.Tipo)
	return nil
}

// SendTest delivers a probe mail to the sales inbox to confirm SMTP settings.
func (s *NotificationService) SendTest(ctx context.Context) error {
	ctx, span := startSpan(ctx, "NotificationService.SendTest")
	defer span.End()

	msg := mail.Message{
		From:    s.from,
		To:      s.salesEmail,
		Subject: "PRUEBA SERMEX - " + time.Now().Format("15:04:05"),
		HTML:    "<p>Este es un <strong>correo de prueba</strong> enviado desde SERMEX</p>",
		Text:    "Si recibes esto, el correo está bien configurado",
	}

	if err := s.dispatcher.Send(ctx, msg); err != nil {
		span.RecordError(err)
		return fmt.Errorf("dispatch test mail: %w", err)
	}
	return nil
}

func (s *NotificationService) audit(event string, kv ...any) {
	s.logger.Sugar().Infow(event, kv...)
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<p><strong>%s:</strong> %s</p>", label, html.EscapeString(value))
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

func extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return name[idx:]
}
