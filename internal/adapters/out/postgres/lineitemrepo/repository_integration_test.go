package lineitemrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"pos/internal/adapters/out/postgres/lineitemrepo"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LineItemLedgerIntegrationTestSuite provides integration tests for the line
// item ledger using PostgreSQL containers, in particular the atomicity of the
// quantity upsert.
type LineItemLedgerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	ledger    *lineitemrepo.GormLineItemLedger
}

func (suite *LineItemLedgerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&lineitemrepo.LineItemDTO{}))
}

func (suite *LineItemLedgerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_line_items").Error)
	suite.ledger = lineitemrepo.NewGormLineItemLedger(suite.db)
}

func (suite *LineItemLedgerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LineItemLedgerIntegrationTestSuite) TestIncrement_NewLine_StartsAtOne() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	suite.Require().NoError(suite.ledger.Increment(ctx, orderID, itemID))

	quantity, found, err := suite.ledger.Quantity(ctx, orderID, itemID)
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(1, quantity)
}

func (suite *LineItemLedgerIntegrationTestSuite) TestIncrement_ExistingLine_RaisesQuantity() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	suite.Require().NoError(suite.ledger.Increment(ctx, orderID, itemID))
	suite.Require().NoError(suite.ledger.Increment(ctx, orderID, itemID))
	suite.Require().NoError(suite.ledger.Increment(ctx, orderID, itemID))

	quantity, found, err := suite.ledger.Quantity(ctx, orderID, itemID)
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(3, quantity)
}

func (suite *LineItemLedgerIntegrationTestSuite) TestIncrement_ConcurrentRings_LoseNoUpdate() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	const rings = 20
	var wg sync.WaitGroup
	errCh := make(chan error, rings)
	for range rings {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- suite.ledger.Increment(ctx, orderID, itemID)
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		suite.Require().NoError(err)
	}

	quantity, found, err := suite.ledger.Quantity(ctx, orderID, itemID)
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(rings, quantity)
}

func (suite *LineItemLedgerIntegrationTestSuite) TestIncrement_SeparateKeys_DoNotInterfere() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	otherOrderID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	suite.Require().NoError(suite.ledger.Increment(ctx, orderID, itemID))
	suite.Require().NoError(suite.ledger.Increment(ctx, otherOrderID, itemID))
	suite.Require().NoError(suite.ledger.Increment(ctx, otherOrderID, itemID))

	quantity, _, err := suite.ledger.Quantity(ctx, orderID, itemID)
	suite.Require().NoError(err)
	suite.Equal(1, quantity)

	quantity, _, err = suite.ledger.Quantity(ctx, otherOrderID, itemID)
	suite.Require().NoError(err)
	suite.Equal(2, quantity)
}

func (suite *LineItemLedgerIntegrationTestSuite) TestQuantity_AbsentLine_ReportsNotFound() {
	ctx := context.Background()

	quantity, found, err := suite.ledger.Quantity(ctx, kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(found)
	suite.Zero(quantity)
}

func (suite *LineItemLedgerIntegrationTestSuite) TestSetQuantity_ExistingLine_Overwrites() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	suite.Require().NoError(suite.ledger.Increment(ctx, orderID, itemID))
	suite.Require().NoError(suite.ledger.SetQuantity(ctx, orderID, itemID, 7))

	quantity, found, err := suite.ledger.Quantity(ctx, orderID, itemID)
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(7, quantity)
}

func (suite *LineItemLedgerIntegrationTestSuite) TestSetQuantity_AbsentLine_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.ledger.SetQuantity(ctx, kernel.NewUUID(), kernel.NewUUID(), 5)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *LineItemLedgerIntegrationTestSuite) TestRemove_ExistingLine_Deletes() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	suite.Require().NoError(suite.ledger.Increment(ctx, orderID, itemID))
	suite.Require().NoError(suite.ledger.Remove(ctx, orderID, itemID))

	_, found, err := suite.ledger.Quantity(ctx, orderID, itemID)
	suite.Require().NoError(err)
	suite.False(found)
}

func (suite *LineItemLedgerIntegrationTestSuite) TestRemove_AbsentLine_IsNoOp() {
	ctx := context.Background()

	err := suite.ledger.Remove(ctx, kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
}

func TestLineItemLedgerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LineItemLedgerIntegrationTestSuite))
}
