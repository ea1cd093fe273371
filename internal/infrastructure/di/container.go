package di

import (
	"database/sql"
	"log"

	"upilinker/internal/adapters/inbound/http/controllers"
	httpRouter "upilinker/internal/adapters/inbound/http/router"
	"upilinker/internal/adapters/outbound/docs"
	postgresqlbootstrap "upilinker/internal/adapters/outbound/persistence/postgresql/bootstrap"
	postgresqlpaymentrequest "upilinker/internal/adapters/outbound/persistence/postgresql/paymentrequest"
	postgresqlshared "upilinker/internal/adapters/outbound/persistence/postgresql/shared"
	postgresqluser "upilinker/internal/adapters/outbound/persistence/postgresql/user"
	qrimagehttp "upilinker/internal/adapters/outbound/qrimage/http"
	tokenjwt "upilinker/internal/adapters/outbound/token/jwt"
	portsin "upilinker/internal/application/ports/in"
	"upilinker/internal/application/use_cases"
	"upilinker/internal/infrastructure/config"
	"upilinker/internal/infrastructure/events"
	"upilinker/internal/infrastructure/httpserver"
)

type Container struct {
	Database                     *sql.DB
	Server                       *httpserver.Server
	InitializePersistenceUseCase portsin.InitializePersistenceUseCase
}

func Build(cfg config.Config, logger *log.Logger) (Container, error) {
	healthUseCase := use_cases.NewGetHealthUseCase()
	openAPIReadModel := docs.NewFileOpenAPISpecReadModel(cfg.OpenAPISpecPath)
	openAPIUseCase := use_cases.NewGetOpenAPISpecUseCase(openAPIReadModel)
	persistenceGateway := postgresqlbootstrap.NewGateway(
		cfg.DatabaseURL,
		cfg.DatabaseTarget,
		cfg.MigrationsPath,
		logger,
	)
	initializePersistenceUseCase := use_cases.NewInitializePersistenceUseCase(persistenceGateway)
	databasePool := postgresqlshared.NewDatabasePool(cfg.DatabaseURL, logger)

	paymentRequestRepository := postgresqlpaymentrequest.NewRepository(databasePool, logger)
	paymentRequestReadModel := postgresqlpaymentrequest.NewReadModel(databasePool)
	userRepository := postgresqluser.NewRepository(databasePool)
	tokenIssuer := tokenjwt.NewIssuer(cfg.JWTSecret)
	qrGateway := qrimagehttp.NewGateway(qrimagehttp.Config{
		BaseURL: cfg.QRAPIBaseURL,
		Size:    cfg.QRImageSize,
	})
	eventHub := events.NewHub(logger)
	clock := use_cases.NewSystemClock()

	createPaymentRequestUseCase := use_cases.NewCreatePaymentRequestUseCase(
		paymentRequestRepository,
		eventHub,
		clock,
	)
	listPaymentRequestsUseCase := use_cases.NewListPaymentRequestsUseCase(paymentRequestReadModel)
	updateStatusUseCase := use_cases.NewUpdatePaymentRequestStatusUseCase(
		paymentRequestRepository,
		paymentRequestReadModel,
		eventHub,
	)
	deletePaymentRequestUseCase := use_cases.NewDeletePaymentRequestUseCase(
		paymentRequestRepository,
		eventHub,
	)
	getPayPageUseCase := use_cases.NewGetPayPageUseCase(
		paymentRequestReadModel,
		qrGateway,
		clock,
	)
	buildPaymentLinkUseCase := use_cases.NewBuildPaymentLinkUseCase(qrGateway)
	watchPaymentRequestsUseCase := use_cases.NewWatchPaymentRequestsUseCase(eventHub)
	registerUserUseCase := use_cases.NewRegisterUserUseCase(userRepository, clock)
	loginUserUseCase := use_cases.NewLoginUserUseCase(userRepository, tokenIssuer, clock)

	healthController := controllers.NewHealthController(healthUseCase, logger)
	swaggerController := controllers.NewSwaggerController(openAPIUseCase, logger)
	authController := controllers.NewAuthController(registerUserUseCase, loginUserUseCase, logger)
	paymentRequestsController := controllers.NewPaymentRequestsController(
		createPaymentRequestUseCase,
		listPaymentRequestsUseCase,
		updateStatusUseCase,
		deletePaymentRequestUseCase,
		logger,
	)
	payPageController := controllers.NewPayPageController(getPayPageUseCase, qrGateway, logger)
	linksController := controllers.NewLinksController(buildPaymentLinkUseCase, logger)
	eventsController := controllers.NewEventsController(watchPaymentRequestsUseCase, logger)

	router := httpRouter.New(httpRouter.Dependencies{
		HealthController:          healthController,
		SwaggerController:         swaggerController,
		AuthController:            authController,
		PaymentRequestsController: paymentRequestsController,
		PayPageController:         payPageController,
		LinksController:           linksController,
		EventsController:          eventsController,
		TokenVerifier:             tokenIssuer,
		DefaultLocale:             cfg.DefaultLocale,
	})

	server := httpserver.New(cfg.Address(), router, logger)

	return Container{
		Database:                     databasePool,
		Server:                       server,
		InitializePersistenceUseCase: initializePersistenceUseCase,
	}, nil
}
