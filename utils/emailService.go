package utils

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/smartcoindev389/ana-rey-video-sub000/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Ana Rey Academy <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all platform emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A1A2E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.content h2 { color: #1A1A2E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #E94560; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #E94560; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>Ana Rey Academy</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message from Ana Rey Academy. Please do not reply.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(email, name string) error {
	subject := "Welcome to Ana Rey Academy!"
	body := getEmailTemplate("Welcome aboard", fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your account has been created. You can start watching all freemium series right away.</p>
		<p>Upgrade to Basic or Premium anytime to unlock the full catalog.</p>
		<a class="btn" href="https://academy.anarey.com">Start Watching</a>`, name))
	return SendEmail([]string{email}, subject, body)
}

// SendSubscriptionUpgradedEmail confirms a subscription change
func SendSubscriptionUpgradedEmail(email, name, tier string, expiresAt *time.Time) error {
	expiryStr := "never"
	if expiresAt != nil {
		expiryStr = expiresAt.Format("January 2, 2006")
	}
	subject := "Your subscription has been upgraded"
	body := getEmailTemplate("Subscription upgraded", fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your subscription is now <strong>%s</strong>.</p>
		<div class="info-box">Valid until: <strong>%s</strong></div>
		<p>Enjoy your new content!</p>`, name, tier, expiryStr))
	return SendEmail([]string{email}, subject, body)
}

// SendSubscriptionExpiryReminder warns a user before their subscription lapses
func SendSubscriptionExpiryReminder(email, name, tier string, expiresAt *time.Time) error {
	expiryStr := "soon"
	if expiresAt != nil {
		expiryStr = expiresAt.Format("January 2, 2006")
	}
	subject := "Your Ana Rey Academy subscription is expiring soon!"
	body := getEmailTemplate("Subscription expiring soon", fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your <strong>%s</strong> subscription expires on <strong>%s</strong>.</p>
		<p>Renew before it lapses to keep access to your series. Your watch progress is kept either way.</p>
		<a class="btn" href="https://academy.anarey.com/subscription">Renew Now</a>`, name, tier, expiryStr))
	return SendEmail([]string{email}, subject, body)
}

// SendSubscriptionLapsedEmail notifies a user their subscription has expired
func SendSubscriptionLapsedEmail(email, name, tier string) error {
	subject := "Your Ana Rey Academy subscription has expired"
	body := getEmailTemplate("Subscription expired", fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your <strong>%s</strong> subscription has expired. Your account is back on the freemium plan.</p>
		<p>Renewing restores your previous plan immediately, with all your progress intact.</p>
		<a class="btn" href="https://academy.anarey.com/subscription">Renew Subscription</a>`, name, tier))
	return SendEmail([]string{email}, subject, body)
}
