package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/domicilia/backoffice-api/internal/application/auth"
	"github.com/domicilia/backoffice-api/internal/application/billing"
	"github.com/domicilia/backoffice-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.UseCase
	RegisterUC      *usecase.RegisterUseCase
	CompanyUC       *usecase.CompanyUseCase
	CompanyDataUC   *usecase.CompanyDataUseCase
	ThemeUC         *usecase.ThemeUseCase
	OfferUC         *usecase.OfferUseCase
	VirtualOfficeUC *usecase.VirtualOfficeUseCase
	UserUC          *usecase.UserUseCase
	FileUC          *usecase.FileUseCase
	InvoiceUC       *billing.InvoiceUseCase
	PDFUC           *billing.PDFUseCase
	ChatUC          *usecase.ChatUseCase
	AnalysisUC      *usecase.AnalysisUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	guard := AuthMiddleware(deps.AuthUC)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.RegisterUC)
	api.Post("/login", authHandler.Login)
	api.Post("/register", authHandler.Register)
	api.Post("/logout", guard, authHandler.Logout)
	api.Get("/me", guard, authHandler.Me)
	api.Get("/password-hash", guard, authHandler.PasswordHash)

	// Companies (lecturas públicas; mutaciones protegidas)
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.CompanyDataUC)
	companies := api.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Post("/", guard, companyHandler.Create)
	companies.Put("/:id", guard, companyHandler.Update)
	companies.Delete("/:id", guard, companyHandler.Delete)
	// Payload de contexto para el chat, por slug
	api.Get("/company/:slug", companyHandler.RAGData)

	// Color themes
	themeHandler := NewThemeHandler(deps.ThemeUC)
	themes := api.Group("/themes")
	themes.Get("/", themeHandler.List)
	themes.Get("/company/:companyId", themeHandler.GetByCompany)
	themes.Get("/:id", themeHandler.GetByID)
	themes.Post("/upsert", guard, themeHandler.Upsert)
	themes.Delete("/:id", guard, themeHandler.Delete)

	// Virtual office offers
	offerHandler := NewOfferHandler(deps.OfferUC)
	offers := api.Group("/offers")
	offers.Get("/", offerHandler.List)
	offers.Get("/:id", offerHandler.GetByID)
	offers.Post("/", guard, offerHandler.Create)
	offers.Put("/:id", guard, offerHandler.Update)
	offers.Delete("/:id", guard, offerHandler.Delete)

	// Virtual offices (la sociedad domiciliada de cada usuario)
	voHandler := NewVirtualOfficeHandler(deps.VirtualOfficeUC)
	vos := api.Group("/virtual-offices", guard)
	vos.Get("/", voHandler.List)
	vos.Get("/user/:userId", voHandler.GetByBasicUser)
	vos.Get("/:id", voHandler.GetByID)
	vos.Post("/", voHandler.Create)
	vos.Put("/:id", voHandler.Update)

	// Users
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users", guard)
	users.Get("/basic/company/:companyId", userHandler.ListBasic)
	users.Get("/basic/:id", userHandler.GetBasic)
	users.Put("/basic/:id", userHandler.UpdateBasic)
	users.Delete("/basic/:id", userHandler.DeleteBasic)
	users.Get("/admin/company/:companyId", userHandler.ListAdmins)
	users.Get("/admin/:id", userHandler.GetAdmin)
	users.Put("/admin/:id", userHandler.UpdateAdmin)

	// Invoices
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices := api.Group("/invoice")
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/single", invoiceHandler.ListSingle)
	invoices.Get("/single/:id", invoiceHandler.GetByID)
	invoices.Get("/single/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/latest/:companyId", invoiceHandler.Latest)
	invoices.Post("/", guard, invoiceHandler.Create)
	invoices.Patch("/single/:id", guard, invoiceHandler.Update)

	// Files (todo protegido: son documentos de clientes)
	fileHandler := NewFileHandler(deps.FileUC)
	files := api.Group("/files", guard)
	files.Get("/received", fileHandler.ListReceived)
	files.Get("/received/:id", fileHandler.GetReceived)
	files.Post("/received", fileHandler.CreateReceived)
	files.Put("/received/:id", fileHandler.UpdateReceived)
	files.Get("/contracts", fileHandler.ListContracts)
	files.Get("/contracts/:id", fileHandler.GetContract)
	files.Post("/contracts", fileHandler.CreateContract)
	files.Put("/contracts/:id", fileHandler.UpdateContract)
	files.Get("/supporting", fileHandler.ListSupporting)
	files.Post("/supporting", fileHandler.CreateSupporting)
	files.Put("/supporting/:id", fileHandler.UpdateSupporting)
	files.Delete("/supporting/:id", fileHandler.DeleteSupporting)
	files.Get("/categories", fileHandler.ListCategories)
	files.Post("/categories", fileHandler.CreateCategory)
	files.Put("/categories/:id", fileHandler.UpdateCategory)
	files.Delete("/categories/:id", fileHandler.DeleteCategory)
	files.Get("/types", fileHandler.ListFileTypes)
	files.Post("/types", fileHandler.CreateFileType)
	files.Put("/types/:id", fileHandler.UpdateFileType)

	// IA (público: lo consume la web de cada empresa)
	aiHandler := NewAIHandler(deps.ChatUC, deps.AnalysisUC)
	api.Post("/chat", aiHandler.Chat)
	api.Post("/analyze-file", aiHandler.AnalyzeFile)
}
