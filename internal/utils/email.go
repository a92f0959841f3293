package utils

import (
	"log"
	"os"

	"github.com/wneessen/go-mail"
)

// SendOrderConfirmationEmail envoie l'e-mail de confirmation de commande.
// L'appelant décide du mode best-effort : un échec ici ne doit jamais faire
// échouer la création de la commande.
func SendOrderConfirmationEmail(to, subject, htmlBody string) error {
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@saveur.example"
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de confirmation à", to)
	return client.DialAndSend(msg)
}
