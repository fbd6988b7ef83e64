package handlers

import (
	"event-registration-system/services"

	"github.com/gofiber/fiber/v2"
)

// SetupRegistrationRoutes wires the public sign-up endpoints used by
// the event pages.
func SetupRegistrationRoutes(app *fiber.App, regService *services.RegistrationService) {
	// Data Alchemy — single participant
	app.Post("/api/dataalchemy-register", regService.RegisterDataAlchemy)

	// Code Cortex — leader creates, members join by team ID
	app.Post("/api/codecortex-register", regService.RegisterCodeCortex)
	app.Post("/api/codecortex-join", regService.JoinCodeCortex)

	// Survival Showdown — same workflow, own collection
	app.Post("/api/survival-register", regService.RegisterSurvival)
	app.Post("/api/survival-join", regService.JoinSurvival)
}

// SetupAdminRoutes wires the admin panel endpoints. Update and delete
// take the storage key, not the shareable registration/team ID. Patch
// bodies may carry arbitrary fields; unrecognized ones are dropped
// without complaint, keys and timestamps among them.
func SetupAdminRoutes(app *fiber.App, adminService *services.AdminService) {
	app.Get("/api/registrations", adminService.GetAllRegistrations)
	app.Get("/api/dataregs", adminService.GetDataRegs)
	app.Get("/api/survivalregs", adminService.GetSurvivalRegs)
	app.Get("/api/codecortexregs", adminService.GetCodeCortexRegs)

	app.Put("/api/registrations/single/:id", adminService.UpdateSingle)
	app.Put("/api/registrations/team/:id", adminService.UpdateTeam)
	app.Delete("/api/registrations/single/:id", adminService.DeleteSingle)
	app.Delete("/api/registrations/team/:id", adminService.DeleteTeam)
}
