package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/guitarshop-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/guitarshop-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// Service exposes the cart operations. Every mutation re-reads the available
// inventory and refuses quantities above it; reads do not re-validate.
type Service interface {
	Read(ctx context.Context) (*Cart, error)
	Add(ctx context.Context, inventoryID int64, quantity int) error
	SetQuantity(ctx context.Context, lineID int64, quantity int) error
	Remove(ctx context.Context, lineID int64) error
	Empty(ctx context.Context) error
}

// Options tunes cart consistency rules.
type Options struct {
	// StrictAdd makes Add compare existing+requested against the available
	// quantity. Off by default: only the requested amount is checked.
	StrictAdd bool
}

type service struct {
	repo   CartRepository
	tx     txRunner
	opts   Options
	tracer trace.Tracer
}

// NewService builds a cart service backed by the provided stack.
func NewService(repo CartRepository, tx txRunner, opts Options) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo:   repo,
		tx:     tx,
		opts:   opts,
		tracer: otel.Tracer("guitarshop/cart"),
	}, nil
}

func (s *service) Read(ctx context.Context) (*Cart, error) {
	ctx, span := s.tracer.Start(ctx, "cart.Read")
	defer span.End()

	lines, err := s.repo.ListLines(ctx)
	if err != nil {
		return nil, fail(span, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "error retrieving cart"))
	}

	total := decimal.Zero
	items := make([]Line, 0, len(lines))
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, toLine(line))
	}
	span.SetAttributes(attribute.Int("cart.lines", len(items)))

	return &Cart{
		CartItems: items,
		Total:     total.Round(2).InexactFloat64(),
	}, nil
}

// Add increments the line already holding inventoryID or inserts a new one.
func (s *service) Add(ctx context.Context, inventoryID int64, quantity int) error {
	ctx, span := s.tracer.Start(ctx, "cart.Add", trace.WithAttributes(
		attribute.Int64("inventory.id", inventoryID),
		attribute.Int("cart.quantity", quantity),
	))
	defer span.End()

	if quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1").
			WithDetails(map[string]string{"quantity": "must be at least 1"})
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		stock, err := repo.FindStock(ctx, inventoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
			}
			return err
		}

		wanted := quantity
		if s.opts.StrictAdd && stock.CartQuantity != nil {
			wanted += *stock.CartQuantity
		}
		if wanted > stock.InventoryQuantity {
			return insufficient(wanted, stock.InventoryQuantity)
		}

		if stock.CartID != nil {
			return repo.IncrementQuantity(ctx, inventoryID, quantity)
		}
		return repo.InsertLine(ctx, &models.CartLine{InventoryID: inventoryID, Quantity: quantity})
	})
	return s.finish(span, err, "error adding to cart")
}

// SetQuantity overwrites a line's quantity; zero or less removes the line.
func (s *service) SetQuantity(ctx context.Context, lineID int64, quantity int) error {
	ctx, span := s.tracer.Start(ctx, "cart.SetQuantity", trace.WithAttributes(
		attribute.Int64("cart.line_id", lineID),
		attribute.Int("cart.quantity", quantity),
	))
	defer span.End()

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		line, err := repo.FindLineStock(ctx, lineID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
			}
			return err
		}
		if quantity > line.InventoryQuantity {
			return insufficient(quantity, line.InventoryQuantity)
		}
		if quantity > 0 {
			return repo.SetQuantity(ctx, lineID, quantity)
		}
		_, err = repo.DeleteLine(ctx, lineID)
		return err
	})
	return s.finish(span, err, "error updating cart")
}

func (s *service) Remove(ctx context.Context, lineID int64) error {
	ctx, span := s.tracer.Start(ctx, "cart.Remove", trace.WithAttributes(attribute.Int64("cart.line_id", lineID)))
	defer span.End()

	affected, err := s.repo.DeleteLine(ctx, lineID)
	if err != nil {
		return fail(span, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "error removing cart item"))
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return nil
}

func (s *service) Empty(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "cart.Empty")
	defer span.End()

	if err := s.repo.DeleteAll(ctx); err != nil {
		return fail(span, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "error emptying cart"))
	}
	return nil
}

// finish passes typed errors through and hides store errors behind msg.
func (s *service) finish(span trace.Span, err error, msg string) error {
	if err == nil {
		return nil
	}
	if typed := pkgerrors.As(err); typed != nil {
		span.SetAttributes(attribute.String("cart.outcome", string(typed.Code())))
		return err
	}
	return fail(span, pkgerrors.Wrap(pkgerrors.CodeInternal, err, msg))
}

func insufficient(requested, available int) error {
	return pkgerrors.New(pkgerrors.CodeInsufficientQuantity, "not enough inventory").
		WithDetails(map[string]int{"requested": requested, "available": available})
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
