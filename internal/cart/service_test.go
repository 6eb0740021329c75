package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/angelmondragon/guitarshop-backend/pkg/db"
	"github.com/angelmondragon/guitarshop-backend/pkg/db/dbtest"
	"github.com/angelmondragon/guitarshop-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/guitarshop-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSeededService(t *testing.T, opts Options, lines ...models.CartLine) (Service, *db.Client) {
	t.Helper()
	client := dbtest.Open(t)
	dbtest.Seed(t, client, lines...)
	svc, err := NewService(NewRepository(client.DB()), client, opts)
	require.NoError(t, err)
	return svc, client
}

func cartRows(t *testing.T, client *db.Client) []models.CartLine {
	t.Helper()
	var rows []models.CartLine
	require.NoError(t, client.DB().Order("id").Find(&rows).Error)
	return rows
}

func requireCode(t *testing.T, err error, code pkgerrors.Code) *pkgerrors.Error {
	t.Helper()
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed, "expected typed error, got %v", err)
	require.Equal(t, code, typed.Code())
	return typed
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	client := dbtest.Open(t)

	_, err := NewService(nil, client, Options{})
	require.Error(t, err)

	_, err = NewService(NewRepository(client.DB()), nil, Options{})
	require.Error(t, err)
}

func TestAddThenSetZeroScenario(t *testing.T) {
	svc, client := newSeededService(t, Options{})
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, 1, 1))

	cart, err := svc.Read(ctx)
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)
	line := cart.CartItems[0]
	assert.Equal(t, int64(1), line.InventoryID)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 599.99, line.Price)
	assert.Equal(t, "Stratocaster", line.Name)
	assert.Equal(t, "strat.jpg", line.Image)
	assert.Equal(t, 3, line.InventoryQuantity)
	assert.Equal(t, 599.99, cart.Total)

	require.NoError(t, svc.SetQuantity(ctx, line.ID, 0))
	assert.Empty(t, cartRows(t, client))

	cart, err = svc.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.CartItems)
	assert.Equal(t, 0.0, cart.Total)
}

func TestReadTotalsAcrossLines(t *testing.T) {
	svc, _ := newSeededService(t, Options{},
		models.CartLine{InventoryID: 2, Quantity: 2},
		models.CartLine{InventoryID: 3, Quantity: 1},
		models.CartLine{InventoryID: 7, Quantity: 5},
		models.CartLine{InventoryID: 8, Quantity: 3},
		models.CartLine{InventoryID: 9, Quantity: 1},
	)

	cart, err := svc.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 5)

	// 2*49.99 + 399.99 + 5*9.99 + 3*12.99 + 19.99
	assert.Equal(t, 608.88, cart.Total)

	for i := 1; i < len(cart.CartItems); i++ {
		assert.Less(t, cart.CartItems[i-1].ID, cart.CartItems[i].ID)
	}
}

func TestReadEmptyCartHasZeroTotal(t *testing.T) {
	svc, _ := newSeededService(t, Options{})

	cart, err := svc.Read(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cart.CartItems)
	assert.Empty(t, cart.CartItems)
	assert.Zero(t, cart.Total)
}

func TestReadSkipsLinesWithoutInventory(t *testing.T) {
	svc, client := newSeededService(t, Options{},
		models.CartLine{InventoryID: 5, Quantity: 1},
		models.CartLine{InventoryID: 404, Quantity: 2},
	)

	cart, err := svc.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, int64(5), cart.CartItems[0].InventoryID)
	assert.Equal(t, 99.99, cart.Total)
	assert.Len(t, cartRows(t, client), 2)
}

func TestAddIncrementsExistingLine(t *testing.T) {
	svc, client := newSeededService(t, Options{})
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, 2, 3))
	require.NoError(t, svc.Add(ctx, 2, 4))

	rows := cartRows(t, client)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].InventoryID)
	assert.Equal(t, 7, rows[0].Quantity)
}

func TestAddAllowsExactlyAvailable(t *testing.T) {
	svc, client := newSeededService(t, Options{})

	require.NoError(t, svc.Add(context.Background(), 1, 3))

	rows := cartRows(t, client)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Quantity)
}

func TestAddRejectsMoreThanAvailable(t *testing.T) {
	svc, client := newSeededService(t, Options{})

	err := svc.Add(context.Background(), 1, 4)
	typed := requireCode(t, err, pkgerrors.CodeInsufficientQuantity)
	assert.Equal(t, map[string]int{"requested": 4, "available": 3}, typed.Details())
	assert.Empty(t, cartRows(t, client))
}

func TestAddMissingItemIsNotFound(t *testing.T) {
	svc, client := newSeededService(t, Options{})

	requireCode(t, svc.Add(context.Background(), 999, 1), pkgerrors.CodeNotFound)
	assert.Empty(t, cartRows(t, client))
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	svc, client := newSeededService(t, Options{})

	requireCode(t, svc.Add(context.Background(), 1, 0), pkgerrors.CodeValidation)
	requireCode(t, svc.Add(context.Background(), 1, -2), pkgerrors.CodeValidation)
	assert.Empty(t, cartRows(t, client))
}

func TestAddIncrementIsNotRevalidatedByDefault(t *testing.T) {
	svc, client := newSeededService(t, Options{})
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, 1, 2))
	require.NoError(t, svc.Add(ctx, 1, 2))

	rows := cartRows(t, client)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].Quantity)
}

func TestStrictAddChecksCombinedQuantity(t *testing.T) {
	svc, client := newSeededService(t, Options{StrictAdd: true})
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, 1, 2))

	err := svc.Add(ctx, 1, 2)
	typed := requireCode(t, err, pkgerrors.CodeInsufficientQuantity)
	assert.Equal(t, map[string]int{"requested": 4, "available": 3}, typed.Details())

	require.NoError(t, svc.Add(ctx, 1, 1))
	rows := cartRows(t, client)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Quantity)
}

func TestSetQuantityOverwrites(t *testing.T) {
	svc, client := newSeededService(t, Options{}, models.CartLine{InventoryID: 4, Quantity: 1})
	line := cartRows(t, client)[0]

	require.NoError(t, svc.SetQuantity(context.Background(), line.ID, 4))

	rows := cartRows(t, client)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].Quantity)
}

func TestSetQuantityRejectsMoreThanAvailable(t *testing.T) {
	svc, client := newSeededService(t, Options{}, models.CartLine{InventoryID: 4, Quantity: 1})
	line := cartRows(t, client)[0]

	err := svc.SetQuantity(context.Background(), line.ID, 5)
	typed := requireCode(t, err, pkgerrors.CodeInsufficientQuantity)
	assert.Equal(t, map[string]int{"requested": 5, "available": 4}, typed.Details())
	assert.Equal(t, 1, cartRows(t, client)[0].Quantity)
}

func TestSetQuantityNegativeDeletes(t *testing.T) {
	svc, client := newSeededService(t, Options{}, models.CartLine{InventoryID: 4, Quantity: 1})
	line := cartRows(t, client)[0]

	require.NoError(t, svc.SetQuantity(context.Background(), line.ID, -3))
	assert.Empty(t, cartRows(t, client))
}

func TestSetQuantityMissingLineIsNotFound(t *testing.T) {
	svc, _ := newSeededService(t, Options{})

	requireCode(t, svc.SetQuantity(context.Background(), 42, 1), pkgerrors.CodeNotFound)
}

func TestSetQuantityOrphanedLineIsNotFound(t *testing.T) {
	svc, client := newSeededService(t, Options{}, models.CartLine{InventoryID: 404, Quantity: 1})
	line := cartRows(t, client)[0]

	requireCode(t, svc.SetQuantity(context.Background(), line.ID, 1), pkgerrors.CodeNotFound)
	assert.Len(t, cartRows(t, client), 1)
}

func TestRemoveDeletesLine(t *testing.T) {
	svc, client := newSeededService(t, Options{},
		models.CartLine{InventoryID: 1, Quantity: 1},
		models.CartLine{InventoryID: 2, Quantity: 1},
	)
	first := cartRows(t, client)[0]

	require.NoError(t, svc.Remove(context.Background(), first.ID))

	rows := cartRows(t, client)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].InventoryID)
}

func TestRemoveMissingLineIsNotFound(t *testing.T) {
	svc, _ := newSeededService(t, Options{})

	requireCode(t, svc.Remove(context.Background(), 42), pkgerrors.CodeNotFound)
}

func TestEmptyIsIdempotent(t *testing.T) {
	svc, client := newSeededService(t, Options{},
		models.CartLine{InventoryID: 1, Quantity: 1},
		models.CartLine{InventoryID: 2, Quantity: 2},
	)
	ctx := context.Background()

	require.NoError(t, svc.Empty(ctx))
	assert.Empty(t, cartRows(t, client))
	require.NoError(t, svc.Empty(ctx))

	var inventory int64
	require.NoError(t, client.DB().Model(&models.InventoryItem{}).Count(&inventory).Error)
	assert.Equal(t, int64(9), inventory)
}

type failingRepo struct {
	CartRepository
	err error
}

func (f failingRepo) WithTx(*gorm.DB) CartRepository { return f }

func (f failingRepo) ListLines(context.Context) ([]LineRecord, error) { return nil, f.err }

func (f failingRepo) FindStock(context.Context, int64) (*StockRecord, error) { return nil, f.err }

func (f failingRepo) DeleteLine(context.Context, int64) (int64, error) { return 0, f.err }

func (f failingRepo) DeleteAll(context.Context) error { return f.err }

type directTx struct{}

func (directTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error { return fn(nil) }

func TestStoreFailuresAreInternal(t *testing.T) {
	boom := errors.New("connection reset")
	svc, err := NewService(failingRepo{err: boom}, directTx{}, Options{})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Read(ctx)
	typed := requireCode(t, err, pkgerrors.CodeInternal)
	assert.ErrorIs(t, typed, boom)

	requireCode(t, svc.Add(ctx, 1, 1), pkgerrors.CodeInternal)
	requireCode(t, svc.Remove(ctx, 1), pkgerrors.CodeInternal)
	requireCode(t, svc.Empty(ctx), pkgerrors.CodeInternal)
}
