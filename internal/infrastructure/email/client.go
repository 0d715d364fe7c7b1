// Package email implementa el envío de correos vía SMTP con go-mail.
// Hoy el único correo del sistema es el de credenciales temporales al crear
// una cuenta de usuario.
package email

import (
	"crypto/tls"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Client cliente SMTP de la aplicación.
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient construye el cliente con los datos del servidor SMTP.
func NewClient(host string, port int, user, password, fromName, fromEmail string) *Client {
	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Enviar envía un correo con cuerpo HTML.
func (c *Client) Enviar(to, subject, htmlBody string) error {
	m := mail.NewMsg()
	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("email: remitente: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("email: destinatario: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{ServerName: c.host}),
	)
	if err != nil {
		return fmt.Errorf("email: crear cliente SMTP (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("email: enviar a %s: %w", to, err)
	}
	return nil
}

// EnviarCredenciales envía al nuevo usuario su clave temporal.
func (c *Client) EnviarCredenciales(to, nombre, clave string) error {
	subject := fmt.Sprintf("Bienvenido a %s - Credenciales de acceso", c.fromName)
	return c.Enviar(to, subject, htmlCredenciales(nombre, to, clave))
}

func htmlCredenciales(nombre, correo, clave string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Hola %s</h2>
  <p>Se creó una cuenta para ti en el sistema de gestión de descansos médicos.</p>
  <table style="border-collapse: collapse;">
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Usuario:</strong></td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Clave temporal:</strong></td><td><code>%s</code></td></tr>
  </table>
  <p>Por seguridad, cambia la clave en tu primer ingreso.</p>
  <p style="color: #888; font-size: 12px;">Este es un mensaje automático, no respondas a este correo.</p>
</body>
</html>`, nombre, correo, clave)
}
