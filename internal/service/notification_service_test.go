package service

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SERMEX0/sermex-backend/internal/config"
	"github.com/SERMEX0/sermex-backend/internal/mail"
)

// recordingDispatcher captures outbound messages instead of talking to SMTP.
type recordingDispatcher struct {
	sent []mail.Message
	err  error
}

func (d *recordingDispatcher) Send(_ context.Context, msg mail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, msg)
	return nil
}

func newTestNotificationService() (*NotificationService, *recordingDispatcher) {
	dispatcher := &recordingDispatcher{}
	cfg := config.Config{MailFrom: "noreply@sermex.mx", SalesEmail: "ventas@sermex.mx"}
	return NewNotificationService(dispatcher, cfg, zap.NewNop()), dispatcher
}

func TestSendWarrantyAttachments(t *testing.T) {
	svc, dispatcher := newTestNotificationService()

	req := WarrantyRequest{
		VendedorEmail:   "ecastillo@sermex.mx",
		DatosFormulario: map[string]string{"CLIENTE": "ACME", "PRODUCTO": "Lector X"},
		DocumentoBase64: base64.StdEncoding.EncodeToString([]byte("fake docx")),
		Imagenes: []WarrantyImage{
			{Name: "frente.JPG", Data: base64.StdEncoding.EncodeToString([]byte("img-1"))},
			{Name: "detalle.png", Data: base64.StdEncoding.EncodeToString([]byte("img-2"))},
		},
	}

	count, err := svc.SendWarranty(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.Len(t, dispatcher.sent, 1)
	msg := dispatcher.sent[0]
	assert.Equal(t, "ecastillo@sermex.mx", msg.To)
	assert.Equal(t, "Garantía - ACME", msg.Subject)
	require.Len(t, msg.Attachments, 3)

	doc := msg.Attachments[0]
	assert.True(t, strings.HasPrefix(doc.Filename, "garantia_"), doc.Filename)
	assert.True(t, strings.HasSuffix(doc.Filename, ".docx"), doc.Filename)
	assert.Equal(t, []byte("fake docx"), doc.Content)

	first := msg.Attachments[1]
	assert.Equal(t, "imagen_1.jpg", first.Filename)
	assert.Equal(t, "image/jpeg", first.ContentType)

	second := msg.Attachments[2]
	assert.Equal(t, "imagen_2.png", second.Filename)
	assert.Equal(t, "image/png", second.ContentType)
}

func TestSendWarrantyClientFallback(t *testing.T) {
	svc, dispatcher := newTestNotificationService()

	req := WarrantyRequest{
		VendedorEmail:   "ecastillo@sermex.mx",
		DocumentoBase64: base64.StdEncoding.EncodeToString([]byte("doc")),
	}

	_, err := svc.SendWarranty(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, dispatcher.sent, 1)
	assert.Equal(t, "Garantía - Cliente", dispatcher.sent[0].Subject)
}

func TestSendWarrantyRejectsBadBase64(t *testing.T) {
	svc, dispatcher := newTestNotificationService()

	_, err := svc.SendWarranty(context.Background(), WarrantyRequest{
		VendedorEmail:   "ecastillo@sermex.mx",
		DocumentoBase64: "%%% not base64 %%%",
	})
	require.Error(t, err)
	assert.Empty(t, dispatcher.sent)
}

func TestSendSupportRequestBody(t *testing.T) {
	svc, dispatcher := newTestNotificationService()

	err := svc.SendSupportRequest(context.Background(), SupportRequest{
		Nombre:        "Ana López",
		Correo:        "ana@cliente.mx",
		Telefono:      "555-0100",
		TipoSolicitud: "documentacion",
		Descripcion:   "Manual del lector <v2>",
	})
	require.NoError(t, err)

	require.Len(t, dispatcher.sent, 1)
	msg := dispatcher.sent[0]
	assert.Equal(t, "ventas@sermex.mx", msg.To)
	assert.Contains(t, msg.HTML, "Ana López")
	assert.Contains(t, msg.HTML, "Documentación del producto")
	// HTML-sensitive characters in user input arrive escaped.
	assert.Contains(t, msg.HTML, "&lt;v2&gt;")
	assert.NotContains(t, msg.HTML, "<v2>")
}

func TestSendContactBody(t *testing.T) {
	svc, dispatcher := newTestNotificationService()

	err := svc.SendContact(context.Background(), ContactRequest{
		Nombre:      "Ana López",
		Correo:      "ana@cliente.mx",
		Telefono:    "555-0100",
		Asunto:      "Lector dañado",
		Tipo:        "soporte",
		Descripcion: "No enciende",
	})
	require.NoError(t, err)

	require.Len(t, dispatcher.sent, 1)
	msg := dispatcher.sent[0]
	assert.Equal(t, "ventas@sermex.mx", msg.To)
	assert.Contains(t, msg.HTML, "Problema con producto")
	assert.Contains(t, msg.HTML, "Lector dañado")
}
