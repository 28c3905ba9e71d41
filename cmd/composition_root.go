package cmd

import (
	"expertise/internal/adapters/out/postgres"
	"expertise/internal/core/application/usecases/commands"
	"expertise/internal/core/application/usecases/queries"
	"expertise/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	documentStore  ports.DocumentStore
	paymentGateway ports.PaymentGateway
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	documentStore ports.DocumentStore,
	paymentGateway ports.PaymentGateway,
) CompositionRoot {
	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		documentStore:  documentStore,
		paymentGateway: paymentGateway,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetStatusCommandHandler() commands.SetStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveAnalysisCommandHandler() commands.SaveAnalysisCommandHandler {
	var f commands.AnalysisUoWFactory = FuncAnalysisUoWFactory(func() commands.AnalysisUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveAnalysisCommandHandler(f)
}

func (c *CompositionRoot) CreateCompletePaymentCommandHandler() commands.CompletePaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompletePaymentCommandHandler(f, c.paymentGateway)
}

func (c *CompositionRoot) CreateAddCommentCommandHandler() commands.AddCommentCommandHandler {
	var f commands.CommentUoWFactory = FuncCommentUoWFactory(func() commands.CommentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCommentCommandHandler(f)
}

func (c *CompositionRoot) CreateAttachDocumentsCommandHandler() commands.AttachDocumentsCommandHandler {
	var f commands.DocumentUoWFactory = FuncDocumentUoWFactory(func() commands.DocumentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachDocumentsCommandHandler(f, c.documentStore)
}

func (c *CompositionRoot) CreateGetClientOrdersQueryHandler() queries.GetClientOrdersQueryHandler {
	return queries.NewGetClientOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDocumentContentQueryHandler() queries.GetDocumentContentQueryHandler {
	return queries.NewGetDocumentContentQueryHandler(c.gormDB, c.documentStore)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAnalysisUoWFactory func() commands.AnalysisUoW

func (f FuncAnalysisUoWFactory) Create() commands.AnalysisUoW {
	return f()
}

type FuncDocumentUoWFactory func() commands.DocumentUoW

func (f FuncDocumentUoWFactory) Create() commands.DocumentUoW {
	return f()
}

type FuncCommentUoWFactory func() commands.CommentUoW

func (f FuncCommentUoWFactory) Create() commands.CommentUoW {
	return f()
}
