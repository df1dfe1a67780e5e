// Package contact handles storefront contact and newsletter submissions:
// validate locally, forward to the upstream forms service.
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidEmail = errors.New("please enter a valid email address")
	ErrInvalidPhone = errors.New("please enter a valid 10-digit phone number")
	ErrUpstream     = errors.New("submission was not accepted")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// Submission is a contact-form message.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Product string `json:"product,omitempty"`
	Message string `json:"message,omitempty"`
}

// Service validates and forwards form submissions.
type Service interface {
	Submit(ctx context.Context, s Submission) error
	Subscribe(ctx context.Context, email string) error
}

type service struct {
	client    *http.Client
	endpoint  string
	accessKey string
}

// NewService creates the forms forwarder. client may be nil.
func NewService(client *http.Client, endpoint, accessKey string) Service {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &service{client: client, endpoint: endpoint, accessKey: accessKey}
}

// ValidEmail reports whether the address looks deliverable.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone strips everything but digits and checks for a 10-digit
// Indian mobile number.
func ValidPhone(phone string) bool {
	clean := nonDigits.ReplaceAllString(phone, "")
	return len(clean) == 10 && phonePattern.MatchString(clean)
}

func (s *service) Submit(ctx context.Context, sub Submission) error {
	if !ValidEmail(sub.Email) {
		return ErrInvalidEmail
	}
	if !ValidPhone(sub.Phone) {
		return ErrInvalidPhone
	}

	form := url.Values{
		"name":    {sub.Name},
		"email":   {sub.Email},
		"phone":   {sub.Phone},
		"message": {sub.Message},
	}
	if sub.Product != "" {
		form.Set("product", sub.Product)
	}
	return s.forward(ctx, form)
}

func (s *service) Subscribe(ctx context.Context, email string) error {
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	return s.forward(ctx, url.Values{
		"email":   {email},
		"subject": {"Newsletter subscription"},
	})
}

func (s *service) forward(ctx context.Context, form url.Values) error {
	if s.accessKey != "" {
		form.Set("access_key", s.accessKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("forms service unreachable: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("forms service response: %w", err)
	}
	if !body.Success {
		return ErrUpstream
	}
	return nil
}
