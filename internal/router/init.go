package router

import (
	"github.com/pawcare/pawcare-api/internal/application"
	"github.com/pawcare/pawcare-api/internal/container"
	pginfra "github.com/pawcare/pawcare-api/internal/infrastructure/postgres"
	handlers "github.com/pawcare/pawcare-api/internal/interface/http"
	"github.com/pawcare/pawcare-api/internal/interface/middleware"
	"github.com/pawcare/pawcare-api/internal/router/modules"
)

// InitModules builds repositories, services, and handlers from the
// container singletons and registers every feature module. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	petRepo := pginfra.NewPetRepository(pool)
	apptRepo := pginfra.NewAppointmentRepository(pool)

	authMW := middleware.Auth(container.GetJWT(), userRepo)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger)
	petSvc := application.NewPetService(petRepo, container.GetGCS(), cfg.GCSBucket, container.GetES(), cfg.ESPetsIndex, logger)
	apptSvc := application.NewAppointmentService(apptRepo, petRepo, userRepo, container.GetRabbitPub(), cfg.MailSendEnabled, logger)
	userSvc := application.NewUserService(userRepo, container.GetRedis(), logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure), authMW))
	r.Add(modules.NewPetModule(handlers.NewPetHandler(petSvc, logger), authMW))
	r.Add(modules.NewAppointmentModule(handlers.NewAppointmentHandler(apptSvc, logger), authMW))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), authMW))
}
