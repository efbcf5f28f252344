package payment

import (
	"context"

	"github.com/hazari-app/hazari-backend-go/internal/domain/payment"
)

// PaymentService is a placeholder until the payroll engine lands; the app
// needs the summary shape on the contractor dashboard today.
// TODO: compute from the attendance ledger (days worked x daily rate).
type PaymentService interface {
	GetSummary(ctx context.Context, userID int64) (payment.SummaryResponse, error)
}

type PaymentServiceImpl struct{}

func NewPaymentService() PaymentService {
	return &PaymentServiceImpl{}
}

// GetSummary implements PaymentService with fixed figures.
func (s *PaymentServiceImpl) GetSummary(ctx context.Context, userID int64) (payment.SummaryResponse, error) {
	return payment.SummaryResponse{
		TotalAmount: 5000.0,
		DaysWorked:  22,
		DailyRate:   227.27,
	}, nil
}
