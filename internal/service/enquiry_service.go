package service

import (
	"context"
	"errors"
	"fmt"

	"logistics_api/internal/mailer"
	"logistics_api/internal/model"
)

// EnquiryService relays public contact-form submissions by email
type EnquiryService interface {
	SubmitEnquiry(ctx context.Context, enquiry model.Enquiry) error
}

type enquiryService struct {
	mailer mailer.Mailer
}

// NewEnquiryService creates a new EnquiryService
func NewEnquiryService(m mailer.Mailer) EnquiryService {
	return &enquiryService{mailer: m}
}

// SubmitEnquiry forwards the enquiry to the mail relay. Required-field
// validation happens at the binding layer before this is reached, so no
// outbound call is made for invalid payloads. An *mailer.UpstreamError is
// passed through for the handler to surface with details.
func (s *enquiryService) SubmitEnquiry(ctx context.Context, enquiry model.Enquiry) error {
	if err := s.mailer.SendEnquiry(ctx, enquiry); err != nil {
		var upstream *mailer.UpstreamError
		if errors.As(err, &upstream) {
			return err
		}
		return fmt.Errorf("failed to relay enquiry: %w", err)
	}
	return nil
}
