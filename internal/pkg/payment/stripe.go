package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/deeraj1899/EMS/internal/config"
)

var ErrUnknownPlan = errors.New("unknown subscription plan")

// Plan is a one-time checkout price. Amounts are in the currency's
// minor unit.
type Plan struct {
	Price          int64
	DurationMonths int
	Label          string
}

var plans = map[string]Plan{
	"6month":  {Price: 1200000, DurationMonths: 6, Label: "6-Month Plan"},
	"12month": {Price: 2000000, DurationMonths: 12, Label: "12-Month Plan"},
}

// Plans returns the purchasable plans keyed by their wire name.
func Plans() map[string]Plan {
	out := make(map[string]Plan, len(plans))
	for k, v := range plans {
		out[k] = v
	}
	return out
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type SessionDetails struct {
	Email          string `json:"email"`
	Price          int64  `json:"price"`
	DurationMonths int    `json:"duration"`
}

type Service interface {
	// CreateCheckoutSession opens a hosted checkout page for the named
	// plan. The plan duration rides along as session metadata so the
	// registration flow can read it back.
	CreateCheckoutSession(ctx context.Context, plan, email string) (CheckoutSession, error)

	// GetSession reads back a completed session's email, paid amount
	// and plan duration.
	GetSession(ctx context.Context, sessionID string) (SessionDetails, error)
}

type stripeService struct {
	api         *client.API
	frontendURL string
}

func NewStripeService(cfg config.StripeConfig) Service {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &stripeService{
		api:         api,
		frontendURL: cfg.FrontendURL,
	}
}

func (s *stripeService) CreateCheckoutSession(ctx context.Context, plan, email string) (CheckoutSession, error) {
	p, ok := plans[plan]
	if !ok {
		return CheckoutSession{}, ErrUnknownPlan
	}

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:      stripe.String(email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyINR)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(p.Label),
				},
				UnitAmount: stripe.Int64(p.Price),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(s.frontendURL + "/create-organization?payment=success&sessionId={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.frontendURL + "/create-organization?payment=cancel"),
	}
	params.AddMetadata("duration", strconv.Itoa(p.DurationMonths))

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("create checkout session: %w", err)
	}

	return CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

func (s *stripeService) GetSession(ctx context.Context, sessionID string) (SessionDetails, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	}
	params.AddExpand("line_items")

	sess, err := s.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return SessionDetails{}, fmt.Errorf("retrieve checkout session: %w", err)
	}

	details := SessionDetails{Email: sess.CustomerEmail}
	if sess.LineItems != nil && len(sess.LineItems.Data) > 0 {
		details.Price = sess.LineItems.Data[0].AmountTotal
	}
	if d, err := strconv.Atoi(sess.Metadata["duration"]); err == nil {
		details.DurationMonths = d
	}

	return details, nil
}
