package mailer

import (
	"context"
	"crypto/rand"
	"crypto/tls"
	"encoding/hex"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const defaultSMTPTimeout = 30 * time.Second

type SMTPSenderParams struct {
	Host     string
	Port     int
	Username string
	Password string
	// From defaults to Username
	From       string
	SenderName string
	Timeout    time.Duration
}

// SMTPSender delivers one plain text message per call. Port 465 uses implicit TLS,
// any other port upgrades with STARTTLS.
type SMTPSender struct {
	params SMTPSenderParams
	auth   smtp.Auth
	now    func() time.Time
}

func NewSMTPSender(params SMTPSenderParams) (*SMTPSender, error) {
	if params.Host == "" || params.Port == 0 {
		return nil, errors.New("smtp host and port are required")
	}
	if params.From == "" {
		params.From = params.Username
	}
	if params.Timeout <= 0 {
		params.Timeout = defaultSMTPTimeout
	}

	var auth smtp.Auth
	if params.Username != "" {
		auth = smtp.PlainAuth("", params.Username, params.Password, params.Host)
	}

	return &SMTPSender{
		params: params,
		auth:   auth,
		now:    time.Now,
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	msg, err := s.buildMessage(to, subject, body)
	if err != nil {
		return err
	}

	address := net.JoinHostPort(s.params.Host, strconv.Itoa(s.params.Port))
	dialer := &net.Dialer{Timeout: s.params.Timeout}

	var conn net.Conn
	if s.params.Port == 465 {
		tlsDialer := &tls.Dialer{
			NetDialer: dialer,
			Config:    &tls.Config{ServerName: s.params.Host},
		}
		conn, err = tlsDialer.DialContext(ctx, "tcp", address)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", address)
	}
	if err != nil {
		return fmt.Errorf("connect to smtp server %s: %w", address, err)
	}
	defer conn.Close()

	// bound the whole smtp conversation
	deadline := time.Now().Add(s.params.Timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("set smtp conn deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, s.params.Host)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	defer client.Close()

	if s.params.Port != 465 {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.params.Host}); err != nil {
				return fmt.Errorf("start tls: %w", err)
			}
		}
	}

	return s.sendViaClient(client, to, msg)
}

func (s *SMTPSender) sendViaClient(client *smtp.Client, to string, msg []byte) error {
	if s.auth != nil {
		if err := client.Auth(s.auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(s.params.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("get data writer: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close data writer: %w", err)
	}

	if err := client.Quit(); err != nil {
		log.Debugf("smtp quit: %s", err)
	}
	return nil
}

func (s *SMTPSender) buildMessage(to, subject, body string) ([]byte, error) {
	if strings.ContainsAny(to, "\r\n") || strings.ContainsAny(subject, "\r\n") {
		return nil, errors.New("header values must not contain line breaks")
	}

	from := s.params.From
	if s.params.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", s.params.SenderName), s.params.From)
	}

	return fmt.Appendf(nil,
		"Message-ID: %s\r\n"+
			"Date: %s\r\n"+
			"To: %s\r\n"+
			"From: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=\"utf-8\"\r\n"+
			"\r\n"+
			"%s",
		s.messageID(),
		s.now().Format(time.RFC1123Z),
		to,
		from,
		mime.QEncoding.Encode("utf-8", subject),
		normalizeNewlines(body),
	), nil
}

func (s *SMTPSender) messageID() string {
	buf := make([]byte, 12)
	_, _ = rand.Read(buf)
	domain := s.params.Host
	if _, d, ok := strings.Cut(s.params.From, "@"); ok {
		domain = d
	}
	return fmt.Sprintf("<%d.%s@%s>", s.now().UnixNano(), hex.EncodeToString(buf), domain)
}

func normalizeNewlines(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	return strings.ReplaceAll(body, "\n", "\r\n")
}
