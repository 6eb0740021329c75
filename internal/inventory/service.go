package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/angelmondragon/guitarshop-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/guitarshop-backend/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// Service exposes inventory CRUD.
type Service interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int64) (*Item, error)
	Create(ctx context.Context, input ItemInput) (*Item, error)
	Update(ctx context.Context, id int64, input ItemInput) error
	Delete(ctx context.Context, id int64) error
}

type itemStore interface {
	List(ctx context.Context) ([]models.InventoryItem, error)
	FindByID(ctx context.Context, id int64) (*models.InventoryItem, error)
	Create(ctx context.Context, item *models.InventoryItem) error
	Update(ctx context.Context, id int64, item models.InventoryItem) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type service struct {
	repo   itemStore
	tracer trace.Tracer
}

// NewService constructs an inventory service instance.
func NewService(repo itemStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	return &service{
		repo:   repo,
		tracer: otel.Tracer("guitarshop/inventory"),
	}, nil
}

func (s *service) List(ctx context.Context) ([]Item, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.List")
	defer span.End()

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fail(span, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "error retrieving inventory"))
	}
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, toItem(row))
	}
	span.SetAttributes(attribute.Int("inventory.count", len(items)))
	return items, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Item, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Get", trace.WithAttributes(attribute.Int64("inventory.id", id)))
	defer span.End()

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, fail(span, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "error retrieving inventory item"))
	}
	item := toItem(*row)
	return &item, nil
}

func (s *service) Create(ctx context.Context, input ItemInput) (*Item, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.Create")
	defer span.End()

	input = input.normalized()
	if err := input.validate(); err != nil {
		return nil, err
	}

	row := input.toModel()
	if err := s.repo.Create(ctx, &row); err != nil {
		return nil, fail(span, translateWriteError(err, "error adding inventory item"))
	}
	span.SetAttributes(attribute.Int64("inventory.id", row.ID))
	item := toItem(row)
	return &item, nil
}

// Update relies on the affected-row count instead of a pre-read to detect a
// missing id.
func (s *service) Update(ctx context.Context, id int64, input ItemInput) error {
	ctx, span := s.tracer.Start(ctx, "inventory.Update", trace.WithAttributes(attribute.Int64("inventory.id", id)))
	defer span.End()

	input = input.normalized()
	if err := input.validate(); err != nil {
		return err
	}

	affected, err := s.repo.Update(ctx, id, input.toModel())
	if err != nil {
		return fail(span, translateWriteError(err, "error updating inventory item"))
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "inventory.Delete", trace.WithAttributes(attribute.Int64("inventory.id", id)))
	defer span.End()

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fail(span, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "error deleting inventory item"))
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
	}
	return nil
}

func (in ItemInput) normalized() ItemInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Image = strings.TrimSpace(in.Image)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

func (in ItemInput) validate() error {
	details := map[string]string{}
	if in.Name == "" {
		details["name"] = "is required"
	}
	if in.Image == "" {
		details["image"] = "is required"
	}
	if in.Description == "" {
		details["description"] = "is required"
	}
	if in.Price.IsNegative() {
		details["price"] = "must be at least 0"
	}
	if in.Quantity < 0 {
		details["quantity"] = "must be at least 0"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "all fields are required").WithDetails(details)
	}
	return nil
}

// translateWriteError surfaces constraint violations the input checks missed as
// validation failures; everything else is an opaque store error.
func translateWriteError(err error, msg string) error {
	switch pkgerrors.PGCode(err) {
	case pkgerrors.PGCheckViolation, pkgerrors.PGNotNullViolation:
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid inventory item")
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, msg)
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
