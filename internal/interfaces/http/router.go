package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/auth"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/crm"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/hr"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/reports"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/usecase"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	ClientUC     *usecase.ClientUseCase
	ProjectUC    *usecase.ProjectUseCase
	TaskUC       *usecase.TaskUseCase
	SaleUC       *crm.SaleUseCase
	SalesReport  *reports.SalesReportUseCase
	LeadUC       *crm.LeadUseCase
	ConvertLead  *crm.ConvertLeadUseCase
	AttendanceUC *hr.AttendanceUseCase
	UserRepo     repository.UserRepository
	JWTSecret    string
	CookieDays   int
	Environment  string
}

// Router registra las rutas de la API y sus gates de rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	adminOnly := RequireRole(entity.RoleAdmin)
	elevated := RequireRole(entity.RoleAdmin, entity.RoleManager)
	staff := RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleEmployee)

	authMW := AuthMiddleware(deps.JWTSecret, deps.UserRepo)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieDays, deps.Environment)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	// Alta de usuarios restringida: política admin-only.
	authGroup.Post("/register", authMW, adminOnly, authHandler.Register)
	authGroup.Get("/me", authMW, authHandler.Me)

	// Rutas protegidas
	protected := api.Group("/", authMW)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Clients (admin/manager)
	clients := protected.Group("/clients", elevated)
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Projects (lecturas admin/manager; escrituras solo admin)
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Post("/", adminOnly, projectHandler.Create)
	projects.Get("/", elevated, projectHandler.List)
	projects.Get("/:id", elevated, projectHandler.GetByID)
	projects.Put("/:id", adminOnly, projectHandler.Update)
	projects.Delete("/:id", adminOnly, projectHandler.Delete)

	// Tasks (ownership fino en el caso de uso)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", elevated, taskHandler.Create)
	tasks.Get("/", elevated, taskHandler.List)
	tasks.Get("/my-tasks", taskHandler.ListMine)
	tasks.Get("/project/:projectId", elevated, taskHandler.ListByProject)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Patch("/:id/status", taskHandler.UpdateStatus)
	tasks.Delete("/:id", taskHandler.Delete)

	// Sales (ownership fino en el caso de uso; delete solo admin)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.SalesReport)
	sales.Post("/", staff, saleHandler.Create)
	sales.Get("/", elevated, saleHandler.List)
	sales.Get("/my-sales", saleHandler.ListMine)
	sales.Get("/stats", elevated, saleHandler.Stats)
	sales.Get("/report.pdf", elevated, saleHandler.Report)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", adminOnly, saleHandler.Delete)

	// Leads (ownership fino en el caso de uso)
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC, deps.ConvertLead)
	leads.Post("/", staff, leadHandler.Create)
	leads.Get("/", elevated, leadHandler.List)
	leads.Get("/my-leads", leadHandler.ListMine)
	leads.Get("/recent", elevated, leadHandler.ListRecent)
	leads.Get("/stats", elevated, leadHandler.Stats)
	leads.Get("/:id", leadHandler.GetByID)
	leads.Put("/:id", leadHandler.Update)
	leads.Patch("/:id/status", leadHandler.UpdateStatus)
	leads.Patch("/:id/assign", elevated, leadHandler.Assign)
	leads.Post("/:id/convert", leadHandler.Convert)
	leads.Delete("/:id", leadHandler.Delete)

	// Attendance (check-in/out propios; administración admin/manager)
	attendance := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	attendance.Post("/check-in", attendanceHandler.CheckIn)
	attendance.Post("/check-out", attendanceHandler.CheckOut)
	attendance.Get("/my-attendance", attendanceHandler.MyAttendance)
	attendance.Get("/", elevated, attendanceHandler.List)
	attendance.Get("/stats", elevated, attendanceHandler.Stats)
	attendance.Get("/:id", attendanceHandler.GetByID)
	attendance.Put("/:id/status", adminOnly, attendanceHandler.UpdateStatus)
	attendance.Post("/bulk-status", adminOnly, attendanceHandler.BulkStatus)
	attendance.Delete("/:id", adminOnly, attendanceHandler.Delete)
}
