package cmd

import (
	"log/slog"

	"procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/postgres"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateVendorCommandHandler() commands.CreateVendorCommandHandler {
	var f commands.VendorUoWFactory = FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVendorCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePurchaseOrderCommandHandler() commands.CreatePurchaseOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePurchaseOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateIssueOrderCommandHandler() commands.IssueOrderCommandHandler {
	return commands.NewIssueOrderCommandHandler(c.createTransitionUoWFactory())
}

func (c *CompositionRoot) CreateAcknowledgeOrderCommandHandler() commands.AcknowledgeOrderCommandHandler {
	return commands.NewAcknowledgeOrderCommandHandler(c.createTransitionUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.createTransitionUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.createTransitionUoWFactory())
}

func (c *CompositionRoot) CreateRateOrderQualityCommandHandler() commands.RateOrderQualityCommandHandler {
	return commands.NewRateOrderQualityCommandHandler(c.createTransitionUoWFactory())
}

func (c *CompositionRoot) CreateRecordPerformanceSnapshotsCommandHandler() commands.RecordPerformanceSnapshotsCommandHandler {
	var f commands.SnapshotUoWFactory = FuncSnapshotUoWFactory(func() commands.SnapshotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPerformanceSnapshotsCommandHandler(f)
}

func (c *CompositionRoot) createTransitionUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateGetAllVendorsQueryHandler() queries.GetAllVendorsQueryHandler {
	return queries.NewGetAllVendorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVendorPerformanceQueryHandler() queries.GetVendorPerformanceQueryHandler {
	return queries.NewGetVendorPerformanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPerformanceHistoryQueryHandler() queries.GetPerformanceHistoryQueryHandler {
	return queries.NewGetPerformanceHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateVendorCommandHandler(),
		c.CreateCreatePurchaseOrderCommandHandler(),
		c.CreateIssueOrderCommandHandler(),
		c.CreateAcknowledgeOrderCommandHandler(),
		c.CreateDeliverOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateRateOrderQualityCommandHandler(),
		c.CreateGetAllVendorsQueryHandler(),
		c.CreateGetVendorPerformanceQueryHandler(),
		c.CreateGetPerformanceHistoryQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateIssueOrderCommandHandler(),
		c.CreateAcknowledgeOrderCommandHandler(),
		c.CreateDeliverOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateRateOrderQualityCommandHandler(),
		c.CreateRecordPerformanceSnapshotsCommandHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateGetAllVendorsQueryHandler(),
		c.logger,
	)
}

type FuncVendorUoWFactory func() commands.VendorUoW

func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncSnapshotUoWFactory func() commands.SnapshotUoW

func (f FuncSnapshotUoWFactory) Create() commands.SnapshotUoW {
	return f()
}
