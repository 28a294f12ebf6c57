package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"furnistore-be/internal/logger"
	"furnistore-be/internal/user"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Flat shipping fee in VND. There is a single carrier for now.
var shippingFee = decimal.NewFromInt(50000)

var phonePattern = regexp.MustCompile(`^(0|\+84)[35789][0-9]{8}$`)

var (
	shippingMethods = []string{"Standard"}
	paymentMethods  = []string{"Cash", "BankTransfer"}
)

type Service interface {
	Info(ctx context.Context, u *user.User) (*Info, error)
	PlaceOrder(ctx context.Context, u *user.User, params PlaceOrderParams) (*PlacedOrder, error)
}

type service struct {
	repo  Repository
	users user.Repository
}

func NewService(repo Repository, users user.Repository) Service {
	return &service{repo: repo, users: users}
}

func (s *service) Info(ctx context.Context, u *user.User) (*Info, error) {
	lines, err := s.repo.GetCartLines(ctx, u.UserID)
	if err != nil {
		return nil, err
	}

	return &Info{
		User: UserInfo{
			FullName: u.FullName,
			Phone:    u.Phone,
			Address:  u.Address,
			Email:    u.Email,
		},
		Items:           lines,
		Summary:         summarize(lines),
		ShippingMethods: shippingMethods,
		PaymentMethods:  paymentMethods,
	}, nil
}

func (s *service) PlaceOrder(ctx context.Context, u *user.User, params PlaceOrderParams) (*PlacedOrder, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Int64("user_id", u.UserID),
	)

	phone := strings.ReplaceAll(params.Phone, " ", "")
	if params.FullName == "" || phone == "" || params.ShippingAddress == "" {
		return nil, ErrMissingShippingInfo
	}
	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}

	lines, err := s.repo.GetCartLines(ctx, u.UserID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	// Fail fast on stock before opening the transaction. The locked
	// re-check inside CreateOrder is still the source of truth.
	for _, l := range lines {
		if l.Quantity > l.StockQuantity {
			return nil, &InsufficientStockError{
				ProductName: l.ProductName,
				Requested:   l.Quantity,
				Available:   l.StockQuantity,
			}
		}
	}

	summary := summarize(lines)

	placed, err := s.repo.CreateOrder(ctx, OrderInsert{
		UserID:          u.UserID,
		OrderCode:       newOrderCode(),
		TotalAmount:     summary.TotalAmount,
		ShippingFee:     shippingFee,
		ShippingAddress: params.ShippingAddress,
		PaymentMethod:   normalizePaymentMethod(params.PaymentMethod),
		Notes:           params.Notes,
	}, lines)
	if err != nil {
		return nil, err
	}

	// Keep the account's contact info current with what was just used
	// for shipping. The order is already committed, so a failure here
	// is logged and swallowed.
	if err := s.users.UpdateContact(ctx, u.UserID, params.FullName, phone); err != nil {
		log.Warn("failed to update contact info after order", zap.Error(err))
	}

	return placed, nil
}

func summarize(lines []Line) Summary {
	summary := Summary{
		Subtotal:    decimal.Zero,
		ShippingFee: shippingFee,
	}
	for _, l := range lines {
		summary.Subtotal = summary.Subtotal.Add(l.Subtotal)
		summary.ItemCount += l.Quantity
	}
	summary.TotalAmount = summary.Subtotal.Add(summary.ShippingFee)
	return summary
}

func newOrderCode() string {
	return fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}

func normalizePaymentMethod(method string) string {
	switch strings.ToLower(method) {
	case "bank", "banktransfer", "bank_transfer":
		return "BankTransfer"
	default:
		return "Cash"
	}
}
