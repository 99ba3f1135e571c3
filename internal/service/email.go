package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"

	"debitit-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendDailySummary(ctx context.Context, email string, date time.Time, netCash, netBank decimal.Decimal) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Daily Summary - %s", date.Format("2006-01-02")))

	body := fmt.Sprintf("Hello,\n\nHere is your book summary for %s:\n\nNet cash balance: %s\nNet bank balance: %s\n\nBest regards,\nThe Debitit Team",
		date.Format("January 2, 2006"), netCash.StringFixed(2), netBank.StringFixed(2))
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send daily summary email: %w", err)
	}

	return nil
}

func (s *emailService) SendLowStockAlert(ctx context.Context, email string, products []domain.Product) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Low Stock Alert")

	var lines strings.Builder
	for _, p := range products {
		fmt.Fprintf(&lines, "- %s: %d left in stock\n", p.ProductName, p.NumberInStock)
	}
	body := fmt.Sprintf("Hello,\n\nThe following products are running low:\n\n%s\nConsider restocking soon.\n\nBest regards,\nThe Debitit Team", lines.String())
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send low stock alert: %w", err)
	}

	return nil
}
