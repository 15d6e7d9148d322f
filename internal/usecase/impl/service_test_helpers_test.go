package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"inventory/config"
	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/infra/persistence/postgres"
	"inventory/internal/infra/persistence/sqlitetest"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Sweeper: &config.SweeperConfig{DeadStockDays: 180, StaleDeliveryDays: 6},
		Storage: &config.StorageConfig{MaxUploadSize: 1024},
	}
}

// recordingPublisher keeps every published event in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.DeliveryEvent
}

func (p *recordingPublisher) PublishDeliveryEvent(_ context.Context, event *service.DeliveryEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]string, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.EventType)
	}

	return types
}

// inventoryFixtures wires the workflow services against a private in-memory database.
type inventoryFixtures struct {
	db           *gorm.DB
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	partnerRepo  repository.PartnerRepository
	deliveryRepo repository.DeliveryRepository
	movementRepo repository.StockMovementRepository
	publisher    *recordingPublisher
	deliveries   usecase.DeliveryUsecase
	deadStock    *deadStockSweeper
	stale        *staleDeliverySweeper
	user         *entity.User
}

func createInventoryFixtures(t *testing.T) *inventoryFixtures {
	t.Helper()

	db := sqlitetest.Open(t)
	fx := &inventoryFixtures{
		db:           db,
		txManager:    postgres.NewTransactionManager(db),
		productRepo:  postgres.NewProductRepository(db),
		partnerRepo:  postgres.NewPartnerRepository(db),
		deliveryRepo: postgres.NewDeliveryRepository(db),
		movementRepo: postgres.NewStockMovementRepository(db),
		publisher:    &recordingPublisher{},
	}

	fx.deliveries = NewDeliveryService(DeliveryServiceParams{
		TxManager:    fx.txManager,
		DeliveryRepo: fx.deliveryRepo,
		Publisher:    fx.publisher,
		Logger:       newDiscardLogger(),
	})

	cfg := newTestConfig()
	fx.deadStock = NewDeadStockSweeper(DeadStockSweeperParams{
		TxManager: fx.txManager,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*deadStockSweeper)
	fx.stale = NewStaleDeliverySweeper(StaleDeliverySweeperParams{
		TxManager:    fx.txManager,
		DeliveryRepo: fx.deliveryRepo,
		Publisher:    fx.publisher,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	}).(*staleDeliverySweeper)

	fx.user = &entity.User{Username: "keeper", Email: uuid.NewString() + "@example.com", PasswordHash: "hash"}
	require.NoError(t, postgres.NewUserRepository(db).Create(context.Background(), fx.user))

	return fx
}

func (fx *inventoryFixtures) addProduct(t *testing.T, code string, units int, purchased *time.Time) *entity.Product {
	t.Helper()

	product := &entity.Product{
		UserID:         fx.user.ID,
		Name:           "Product " + code,
		ProductCode:    code,
		PurchasePrice:  decimal.NewFromInt(5),
		ListingPrice:   decimal.NewFromInt(9),
		Units:          units,
		DateOfPurchase: purchased,
	}
	require.NoError(t, fx.productRepo.Create(context.Background(), product))

	return product
}

func (fx *inventoryFixtures) addPartner(t *testing.T, name string) *entity.DeliveryPartner {
	t.Helper()

	partner := &entity.DeliveryPartner{Name: name}
	require.NoError(t, fx.partnerRepo.Create(context.Background(), partner))

	return partner
}

func (fx *inventoryFixtures) units(t *testing.T, productID uuid.UUID) int {
	t.Helper()

	product, err := fx.productRepo.FindByID(context.Background(), productID)
	require.NoError(t, err)

	return product.Units
}

func (fx *inventoryFixtures) deliveryCount(t *testing.T) int {
	t.Helper()

	views, err := fx.deliveryRepo.ListViews(context.Background())
	require.NoError(t, err)

	return len(views)
}

// setNow pins the clock the workflow services stamp records with.
func (fx *inventoryFixtures) setNow(now time.Time) {
	clock := func() time.Time { return now }
	fx.deliveries.(*deliveryService).now = clock
	fx.deadStock.now = clock
	fx.stale.now = clock
}

func deliveryInput(code, partner string, quantity int) *usecase.CreateDeliveryInput {
	return &usecase.CreateDeliveryInput{
		ProductCode: code,
		PartnerName: partner,
		Quantity:    quantity,
		Address:     "42 Dock Street",
	}
}

func intPtr(v int) *int {
	return &v
}
