package sqlite_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/tool-rental/catalog"
	"github.com/warp/tool-rental/generic"
	"github.com/warp/tool-rental/rental"
	"github.com/warp/tool-rental/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SeedIfEmpty(t *testing.T) {
	// GIVEN: An empty catalog
	store := newTestStore(t)
	ctx := context.Background()

	// WHEN: Seeding twice
	seeded, err := store.SeedIfEmpty(ctx, catalog.DefaultTools())
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = store.SeedIfEmpty(ctx, catalog.DefaultTools())
	require.NoError(t, err)

	// THEN: Only the first seed writes
	assert.False(t, seeded)
	count, err := store.CountTools(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestStore_LookupAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveTools(ctx, catalog.DefaultTools()))

	tool, err := store.Lookup(ctx, "chns")
	require.NoError(t, err)
	assert.Equal(t, rental.Tool{Type: rental.Chainsaw, Brand: rental.Stihl, Code: "CHNS"}, tool)

	tools, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, tools, 4)
	assert.Equal(t, rental.ToolCode("CHNS"), tools[0].Code)
	assert.Equal(t, rental.ToolCode("LADW"), tools[3].Code)

	_, err = store.Lookup(ctx, "NOPE")
	assert.ErrorIs(t, err, generic.ErrToolNotFound)
}

func TestStore_SaveToolUpdatesBrand(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTool(ctx, rental.Tool{Type: rental.Ladder, Brand: rental.Werner, Code: "LADW"}))
	require.NoError(t, store.SaveTool(ctx, rental.Tool{Type: rental.Ladder, Brand: "Little Giant", Code: "LADW"}))

	tool, err := store.Lookup(ctx, "LADW")
	require.NoError(t, err)
	assert.Equal(t, rental.ToolBrand("Little Giant"), tool.Brand)
}

func TestStore_SaveToolsIsAtomic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.SaveTools(ctx, []rental.Tool{
		{Type: rental.Ladder, Brand: rental.Werner, Code: "LADW"},
		{Type: "Drill", Brand: "Bosch", Code: "DRLL"},
	})
	assert.ErrorIs(t, err, generic.ErrInvalidCatalog)

	count, err := store.CountTools(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestStore_DeleteTool(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveTools(ctx, catalog.DefaultTools()))

	require.NoError(t, store.DeleteTool(ctx, "JAKD"))
	_, err := store.Lookup(ctx, "JAKD")
	assert.ErrorIs(t, err, generic.ErrToolNotFound)

	assert.ErrorIs(t, store.DeleteTool(ctx, "JAKD"), generic.ErrToolNotFound)
}

func TestStore_DeleteToolKeepsCallerCode(t *testing.T) {
	store := newTestStore(t)

	err := store.DeleteTool(context.Background(), "nope")

	var notFound *generic.ToolNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.Code)
}

func TestStore_SeedIfEmptyConcurrent(t *testing.T) {
	// GIVEN: An empty catalog and several seeders racing
	store := newTestStore(t)
	ctx := context.Background()

	const seeders = 8
	results := make([]bool, seeders)
	errs := make([]error, seeders)

	var wg sync.WaitGroup
	for i := 0; i < seeders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.SeedIfEmpty(ctx, catalog.DefaultTools())
		}(i)
	}
	wg.Wait()

	// THEN: Exactly one seeder wrote
	writes := 0
	for i := 0; i < seeders; i++ {
		require.NoError(t, errs[i])
		if results[i] {
			writes++
		}
	}
	assert.Equal(t, 1, writes)

	count, err := store.CountTools(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestStore_ServesCheckout(t *testing.T) {
	// GIVEN: A checkout service backed by the SQLite catalog
	store := newTestStore(t)
	ctx := context.Background()
	_, err := store.SeedIfEmpty(ctx, catalog.DefaultTools())
	require.NoError(t, err)
	svc := rental.NewService(store, nil)

	// WHEN: Pricing a chainsaw over the 2015 Independence Day weekend
	a, err := svc.Checkout(ctx, rental.Request{
		ToolCode:        "CHNS",
		RentalDayCount:  5,
		DiscountPercent: 25,
		CheckoutDate:    generic.NewTimePoint(2015, time.July, 2),
	})

	// THEN: Same figures as the in-memory catalog
	require.NoError(t, err)
	assert.Equal(t, 4, a.ChargeDays)
	assert.Equal(t, "4.47", a.FinalCharge.String())
}
