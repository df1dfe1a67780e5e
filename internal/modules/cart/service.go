package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/nidamehendi/storefront-backend/internal/metrics"
	"github.com/nidamehendi/storefront-backend/internal/modules/identity"
	"github.com/nidamehendi/storefront-backend/internal/obs"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrAuthRequired    = errors.New("authentication required")
)

// CheckoutMessage is what members get back from the checkout stub.
const CheckoutMessage = "Checkout is not yet available. Please contact us to complete your order."

// Service presents one add/update/remove/list surface over the two cart
// backends. The session and device id are passed explicitly on every call
// and the backend is re-selected each time: a nil session routes to the
// device-local guest slot, anything else to the member rows. Signing in
// between two calls silently switches backends; guest lines are not
// migrated into the member cart.
type Service interface {
	Add(ctx context.Context, sess *identity.Session, deviceID string, productID uuid.UUID, quantity int) error
	UpdateQuantity(ctx context.Context, sess *identity.Session, deviceID string, productID uuid.UUID, quantity int) error
	Remove(ctx context.Context, sess *identity.Session, deviceID string, productID uuid.UUID) error
	List(ctx context.Context, sess *identity.Session, deviceID string) (*Cart, error)
	Count(ctx context.Context, sess *identity.Session, deviceID string) (int, error)
	Checkout(ctx context.Context, sess *identity.Session) (string, error)
}

type service struct {
	members  MemberRepository
	guests   GuestStore
	products ProductResolver
	metrics  *metrics.Registry
}

// NewService creates the dual-backend cart service. metrics may be nil.
func NewService(members MemberRepository, guests GuestStore, products ProductResolver, m *metrics.Registry) Service {
	return &service{members: members, guests: guests, products: products, metrics: m}
}

func (s *service) Add(ctx context.Context, sess *identity.Session, deviceID string, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if sess == nil {
		s.count("add", "guest")
		lines, err := s.guests.Load(deviceID)
		if err != nil {
			return err
		}
		if i := findLine(lines, productID); i >= 0 {
			lines[i].Quantity += quantity
		} else {
			lines = append(lines, Line{ProductID: productID, Quantity: quantity})
		}
		return s.guests.Save(deviceID, lines)
	}

	s.count("add", "member")
	existing, err := s.members.Find(ctx, sess.CustomerID, productID)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.members.SetQuantity(ctx, sess.CustomerID, productID, existing.Quantity+quantity)
	}
	return s.members.Insert(ctx, sess.CustomerID, Line{ProductID: productID, Quantity: quantity})
}

func (s *service) UpdateQuantity(ctx context.Context, sess *identity.Session, deviceID string, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return s.Remove(ctx, sess, deviceID, productID)
	}

	if sess == nil {
		s.count("update", "guest")
		lines, err := s.guests.Load(deviceID)
		if err != nil {
			return err
		}
		if i := findLine(lines, productID); i >= 0 {
			lines[i].Quantity = quantity
			return s.guests.Save(deviceID, lines)
		}
		return nil
	}

	s.count("update", "member")
	return s.members.SetQuantity(ctx, sess.CustomerID, productID, quantity)
}

func (s *service) Remove(ctx context.Context, sess *identity.Session, deviceID string, productID uuid.UUID) error {
	if sess == nil {
		s.count("remove", "guest")
		lines, err := s.guests.Load(deviceID)
		if err != nil {
			return err
		}
		i := findLine(lines, productID)
		if i < 0 {
			return nil
		}
		lines = append(lines[:i], lines[i+1:]...)
		return s.guests.Save(deviceID, lines)
	}

	s.count("remove", "member")
	return s.members.Delete(ctx, sess.CustomerID, productID)
}

// List hydrates each line with its product and computes the total. Lines
// whose product can no longer be resolved are dropped from the output, not
// reported: a catalog deletion must never break an open cart.
func (s *service) List(ctx context.Context, sess *identity.Session, deviceID string) (*Cart, error) {
	lines, err := s.lines(ctx, sess, deviceID)
	if err != nil {
		return nil, err
	}

	c := &Cart{Items: []Item{}}
	for _, line := range lines {
		p, err := s.products.GetProduct(ctx, line.ProductID)
		if err != nil || p == nil {
			obs.Logger.Debug("dropping unresolvable cart line", "product_id", line.ProductID.String())
			continue
		}
		c.Items = append(c.Items, Item{Line: line, Product: p})
		c.Total += float64(line.Quantity) * p.Price
	}
	return c, nil
}

// Count is the badge number: distinct lines, not summed quantities.
func (s *service) Count(ctx context.Context, sess *identity.Session, deviceID string) (int, error) {
	lines, err := s.lines(ctx, sess, deviceID)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

func (s *service) Checkout(ctx context.Context, sess *identity.Session) (string, error) {
	if sess == nil {
		return "", ErrAuthRequired
	}
	return CheckoutMessage, nil
}

func (s *service) lines(ctx context.Context, sess *identity.Session, deviceID string) ([]Line, error) {
	if sess == nil {
		return s.guests.Load(deviceID)
	}
	return s.members.List(ctx, sess.CustomerID)
}

func (s *service) count(op, backend string) {
	if s.metrics != nil {
		s.metrics.CartOps.WithLabelValues(op, backend).Inc()
	}
}

func findLine(lines []Line, productID uuid.UUID) int {
	for i := range lines {
		if lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}
