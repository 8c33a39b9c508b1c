package billrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/billrepo"
	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// BillRepositoryIntegrationTestSuite verifies bill persistence, including the
// unique constraint that keeps bill generation idempotent under concurrency.
type BillRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *billrepo.GormBillRepository
	tracker    *MockAggregateTracker
}

func (suite *BillRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&billrepo.BillDTO{}))
}

func (suite *BillRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE bills").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = billrepo.NewGormBillRepository(suite.db, suite.tracker)
}

func (suite *BillRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BillRepositoryIntegrationTestSuite) createTestBill(orderID kernel.UUID) *billing.Bill {
	charges, err := billing.ComputeCharges(2, true)
	suite.Require().NoError(err)

	bill, err := billing.NewBill(kernel.NewUUID(), orderID, charges, time.Now())
	suite.Require().NoError(err)
	return bill
}

func (suite *BillRepositoryIntegrationTestSuite) TestAdd_And_GetByOrderID() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	bill := suite.createTestBill(orderID)

	suite.Require().NoError(suite.repository.Add(ctx, bill))

	loaded, err := suite.repository.GetByOrderID(ctx, orderID)
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(bill.ID()))
	suite.InDelta(700.0, loaded.TotalAmount(), 1e-9)
	suite.InDelta(200.0, loaded.BaseAmount(), 1e-9)
	suite.InDelta(500.0, loaded.VipCharges(), 1e-9)
	suite.Equal(billing.BillUnpaid, loaded.Status())
}

func (suite *BillRepositoryIntegrationTestSuite) TestAdd_SecondBillForOrder_Fails() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestBill(orderID)))

	err := suite.repository.Add(ctx, suite.createTestBill(orderID))
	suite.Require().ErrorIs(err, billing.ErrBillAlreadyExists)
}

func (suite *BillRepositoryIntegrationTestSuite) TestUpdate_PersistsPayments() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	bill := suite.createTestBill(orderID)
	suite.Require().NoError(suite.repository.Add(ctx, bill))

	settled, err := bill.RecordPayment(700, time.Now())
	suite.Require().NoError(err)
	suite.True(settled)
	suite.Require().NoError(suite.repository.Update(ctx, bill))

	loaded, err := suite.repository.GetByOrderID(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(billing.BillPaid, loaded.Status())
	suite.InDelta(700.0, loaded.AmountPaid(), 1e-9)
	suite.NotNil(loaded.PaidAt())
}

func (suite *BillRepositoryIntegrationTestSuite) TestGetByOrderID_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByOrderID(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestBillRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BillRepositoryIntegrationTestSuite))
}
