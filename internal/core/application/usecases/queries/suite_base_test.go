package queries_test

import (
	"context"
	"time"

	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/adapters/out/postgres/snapshotrepo"
	"procurement/internal/adapters/out/postgres/vendorrepo"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// queryHandlerTestSuite provides the shared Postgres container setup for the
// query handler suites below. Each embedding suite gets a migrated schema and
// truncated tables before every test.
type queryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *queryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&vendorrepo.VendorDTO{},
		&orderrepo.OrderDTO{},
		&snapshotrepo.PerformanceSnapshotDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *queryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *queryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE vendors, purchase_orders, performance_snapshots CASCADE",
	).Error
	suite.Require().NoError(err)
}

func (suite *queryHandlerTestSuite) mustCode(value string) kernel.Code {
	code, err := kernel.CodeFromString(value)
	suite.Require().NoError(err)
	return code
}

func (suite *queryHandlerTestSuite) saveVendor(v *vendor.Vendor) {
	repo := vendorrepo.NewGormVendorRepository(suite.db, &noopAggregateTracker{})
	err := repo.Add(context.Background(), v)
	suite.Require().NoError(err)
}

func (suite *queryHandlerTestSuite) saveOrder(o *order.PurchaseOrder) {
	repo := orderrepo.NewGormOrderRepository(suite.db, &noopAggregateTracker{})
	err := repo.Add(context.Background(), o)
	suite.Require().NoError(err)
}

func (suite *queryHandlerTestSuite) newVendor(code, name string) *vendor.Vendor {
	v, err := vendor.NewVendor(suite.mustCode(code), name, name+"@example.com", "1 Supply St")
	suite.Require().NoError(err)
	return v
}

func (suite *queryHandlerTestSuite) newVendorWithMetrics(
	code, name string,
	metrics vendor.Metrics,
) *vendor.Vendor {
	v, err := vendor.RestoreVendor(
		suite.mustCode(code), name, name+"@example.com", "1 Supply St", metrics,
	)
	suite.Require().NoError(err)
	return v
}

func (suite *queryHandlerTestSuite) newPendingOrder(poNumber string, orderDate time.Time) *order.PurchaseOrder {
	item, err := order.NewItem("Steel bolts", 40)
	suite.Require().NoError(err)

	o, err := order.NewPurchaseOrder(suite.mustCode(poNumber), orderDate, nil, []order.Item{item})
	suite.Require().NoError(err)
	return o
}

func (suite *queryHandlerTestSuite) newIssuedOrder(
	poNumber, vendorCode string,
	orderDate time.Time,
) *order.PurchaseOrder {
	o := suite.newPendingOrder(poNumber, orderDate)
	err := o.Issue(suite.mustCode(vendorCode), orderDate.AddDate(0, 0, 1))
	suite.Require().NoError(err)
	return o
}

func floatPtr(value float64) *float64 {
	return &value
}

// noopAggregateTracker satisfies the repository tracker dependency. Query
// tests read committed rows directly, so nothing needs tracking.
type noopAggregateTracker struct{}

func (t *noopAggregateTracker) TrackAggregate(_ kernel.Code, _ any) {}
