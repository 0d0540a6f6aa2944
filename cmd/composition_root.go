package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"pos/internal/adapters/out/postgres"
	"pos/internal/adapters/out/postgres/catalogrepo"
	"pos/internal/adapters/out/settings"
	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/services"
	"pos/internal/core/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.Catalog
	taxRates   ports.TaxRateProvider
	calculator services.TotalCalculator
	logger     *slog.Logger

	// shared so every request goes through the same allocator lock
	assignNumberHandler commands.AssignOrderNumberCommandHandler

	numberRetention time.Duration
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	taxRate, err := decimal.NewFromString(config.SalesTaxRate)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid SALES_TAX_RATE %q: %w", config.SalesTaxRate, err)
	}

	taxRates, err := settings.NewStaticTaxRateProvider(taxRate)
	if err != nil {
		return CompositionRoot{}, err
	}

	retentionHours, err := strconv.Atoi(config.NumberRetentionHours)
	if err != nil || retentionHours <= 0 {
		return CompositionRoot{}, fmt.Errorf("invalid NUMBER_RETENTION_HOURS %q", config.NumberRetentionHours)
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	root := CompositionRoot{
		gormDB:          gormDB,
		uowFactory:      *uowFactory,
		catalog:         catalogrepo.NewGormCatalog(gormDB),
		taxRates:        taxRates,
		calculator:      services.NewTotalCalculator(),
		logger:          logger,
		numberRetention: time.Duration(retentionHours) * time.Hour,
	}

	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return root.uowFactory.Create()
	})
	root.assignNumberHandler = commands.NewAssignOrderNumberCommandHandler(f, logger)

	return root, nil
}

func (c *CompositionRoot) NumberRetention() time.Duration {
	return c.numberRetention
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateAssignOrderNumberCommandHandler() commands.AssignOrderNumberCommandHandler {
	return c.assignNumberHandler
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateSetItemQuantityCommandHandler() commands.SetItemQuantityCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetItemQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f, c.catalog, c.taxRates, c.calculator)
}

func (c *CompositionRoot) CreateReleaseOrderNumbersCommandHandler() commands.ReleaseOrderNumbersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseOrderNumbersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB, c.catalog, c.taxRates, c.calculator)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
