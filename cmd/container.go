package main

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/vinculohr/vinculo/internal/config"
	"github.com/vinculohr/vinculo/pkg/fsx"
	"github.com/vinculohr/vinculo/pkg/fsx/fsxs3"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/iam/auth/authinfra"
	"github.com/vinculohr/vinculo/pkg/iam/user/userapi"
	"github.com/vinculohr/vinculo/pkg/iam/user/userinfra"
	"github.com/vinculohr/vinculo/pkg/iam/user/usersrv"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/pkg/logx"
	"github.com/vinculohr/vinculo/seleccion/candidato"
	"github.com/vinculohr/vinculo/seleccion/candidato/candidatoapi"
	"github.com/vinculohr/vinculo/seleccion/candidato/candidatoauth"
	"github.com/vinculohr/vinculo/seleccion/candidato/candidatoinfra"
	"github.com/vinculohr/vinculo/seleccion/candidato/candidatosrv"
	"github.com/vinculohr/vinculo/seleccion/catalogo/catalogoapi"
	"github.com/vinculohr/vinculo/seleccion/catalogo/catalogoinfra"
	"github.com/vinculohr/vinculo/seleccion/catalogo/catalogosrv"
	"github.com/vinculohr/vinculo/seleccion/certificado"
	"github.com/vinculohr/vinculo/seleccion/certificado/certificadoapi"
	"github.com/vinculohr/vinculo/seleccion/certificado/certificadoinfra"
	"github.com/vinculohr/vinculo/seleccion/certificado/certificadosrv"
	"github.com/vinculohr/vinculo/seleccion/certificado/worker"
	"github.com/vinculohr/vinculo/seleccion/cita/citaapi"
	"github.com/vinculohr/vinculo/seleccion/cita/citainfra"
	"github.com/vinculohr/vinculo/seleccion/cita/citasrv"
	"github.com/vinculohr/vinculo/seleccion/empresa"
	"github.com/vinculohr/vinculo/seleccion/empresa/empresaapi"
	"github.com/vinculohr/vinculo/seleccion/empresa/empresaauth"
	"github.com/vinculohr/vinculo/seleccion/empresa/empresainfra"
	"github.com/vinculohr/vinculo/seleccion/empresa/empresasrv"
	"github.com/vinculohr/vinculo/seleccion/informe/informeapi"
	"github.com/vinculohr/vinculo/seleccion/informe/informesrv"
	"github.com/vinculohr/vinculo/seleccion/prestador/prestadorapi"
	"github.com/vinculohr/vinculo/seleccion/prestador/prestadorinfra"
	"github.com/vinculohr/vinculo/seleccion/prestador/prestadorsrv"
	"github.com/vinculohr/vinculo/seleccion/solicitud"
	"github.com/vinculohr/vinculo/seleccion/solicitud/solicitudapi"
	"github.com/vinculohr/vinculo/seleccion/solicitud/solicitudinfra"
	"github.com/vinculohr/vinculo/seleccion/solicitud/solicitudsrv"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// IAM
	TokenService    auth.TokenService
	PasswordService auth.PasswordService
	AuthHandlers    *auth.AuthHandlers
	UserService     *usersrv.UserService
	UserHandlers    *userapi.Handlers

	// Domain Services
	SolicitudService   *solicitudsrv.SolicitudService
	CandidatoService   *candidatosrv.CandidatoService
	EmpresaService     *empresasrv.EmpresaService
	CatalogoService    *catalogosrv.CatalogoService
	PrestadorService   *prestadorsrv.PrestadorService
	CitaService        *citasrv.CitaService
	CertificadoService *certificadosrv.CertificadoService
	InformeService     *informesrv.InformeService

	CandidatoAuthService *candidatoauth.CandidatoAuthService

	// API Handlers
	SolicitudHandlers     *solicitudapi.Handlers
	CandidatoHandlers     *candidatoapi.Handlers
	CandidatoAuthHandlers *candidatoauth.Handlers
	EmpresaHandlers       *empresaapi.Handlers
	CatalogoHandlers      *catalogoapi.Handlers
	PrestadorHandlers     *prestadorapi.Handlers
	CitaHandlers          *citaapi.Handlers
	CertificadoHandlers   *certificadoapi.Handlers
	InformeHandlers       *informeapi.Handlers

	// Portal token services
	CandidatoTokenService *candidatoauth.CandidatoTokenService
	EmpresaTokenService   *empresaauth.EmpresaTokenService
	EmpresaRepo           empresa.Repository

	// Background work
	CertificadoWorker *worker.CertificadoWorker

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	cfg := c.Config

	// 1. Database Connection
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Pass,
		DB:       cfg.Redis.DB,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(awsCfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, cfg.AWS.Bucket, cfg.AWS.Prefix)

	if cfg.JWT.Secret == "" {
		logx.Warn("VINCULO_JWT_SECRET is not set, using default (unsafe for production)")
		cfg.JWT.Secret = "super-secret-key-please-change-me-in-production"
	}
}

func (c *Container) initServices() {
	cfg := c.Config

	// --- IAM ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	perfilRepo := userinfra.NewPostgresPerfilRepository(c.DB)
	sessionRepo := authinfra.NewPostgresSessionRepository(c.DB)
	resetStore := authinfra.NewRedisResetTokenStore(c.Redis)
	passwordSvc := authinfra.NewBcryptPasswordService(cfg.Auth.BcryptCost)
	c.PasswordService = passwordSvc

	c.TokenService = auth.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTTL,
		cfg.JWT.RefreshTTL,
		cfg.JWT.Issuer,
	)

	authConfig := auth.DefaultConfig()
	authConfig.JWT.SecretKey = cfg.JWT.Secret
	authConfig.JWT.AccessTokenTTL = cfg.JWT.AccessTTL
	authConfig.JWT.RefreshTokenTTL = cfg.JWT.RefreshTTL
	authConfig.JWT.Issuer = cfg.JWT.Issuer
	authConfig.ResetTokenTTL = cfg.Auth.ResetTokenTTL

	c.AuthHandlers = auth.NewAuthHandlers(
		authConfig,
		c.TokenService,
		passwordSvc,
		userRepo,
		perfilRepo,
		sessionRepo,
		resetStore,
		NewConsoleResetNotifier(),
	)
	c.UserService = usersrv.NewUserService(userRepo, perfilRepo, passwordSvc)
	c.AuthMiddleware = auth.NewAuthMiddleware(c.TokenService)

	// --- Repositories ---
	solicitudRepo := solicitudinfra.NewPostgresSolicitudRepository(c.DB)
	candidatoRepo := candidatoinfra.NewPostgresCandidatoRepository(c.DB)
	empresaRepo := empresainfra.NewPostgresEmpresaRepository(c.DB)
	catalogoRepo := catalogoinfra.NewPostgresCatalogoRepository(c.DB)
	prestadorRepo := prestadorinfra.NewPostgresPrestadorRepository(c.DB)
	citaRepo := citainfra.NewPostgresCitaRepository(c.DB)
	certificadoRepo := certificadoinfra.NewPostgresCertificadoRepository(c.DB)
	c.EmpresaRepo = empresaRepo

	// --- Catalogo ---
	resolver := catalogoinfra.NewRedisResolver(c.Redis, catalogoRepo, cfg.Catalogo.CacheTTL)
	c.CatalogoService = catalogosrv.NewCatalogoService(catalogoRepo, resolver)

	// --- Prestadores / Citas ---
	c.PrestadorService = prestadorsrv.NewPrestadorService(prestadorRepo)
	picker := citainfra.NewCoveragePicker(prestadorRepo)
	c.CitaService = citasrv.NewCitaService(citaRepo, picker)

	// --- Solicitudes ---
	c.SolicitudService = solicitudsrv.NewSolicitudService(
		solicitudRepo,
		&candidatoDirectory{repo: candidatoRepo},
		&analistaValidator{users: c.UserService},
		c.PrestadorService,
		c.CitaService,
	)

	// --- Candidatos ---
	c.CandidatoService = candidatosrv.NewCandidatoService(
		candidatoRepo,
		&solicitudReceiver{solicitudes: c.SolicitudService},
		passwordSvc,
		c.FileSystem,
	)
	c.CandidatoTokenService = candidatoauth.NewCandidatoTokenService(c.TokenService)
	c.CandidatoAuthService = candidatoauth.NewCandidatoAuthService(
		candidatoRepo,
		passwordSvc,
		c.CandidatoTokenService,
		resetStore,
		NewConsoleResetNotifier(),
		cfg.Auth.ResetTokenTTL,
	)

	// --- Empresas ---
	c.EmpresaService = empresasrv.NewEmpresaService(empresaRepo, passwordSvc)
	c.EmpresaTokenService = empresaauth.NewEmpresaTokenService(c.TokenService)

	// --- Certificados ---
	queue := certificadoinfra.NewRedisQueue(c.Redis, cfg.Certificados.QueueName)
	c.CertificadoService = certificadosrv.NewCertificadoService(
		certificadoRepo,
		&solicitudGate{repo: solicitudRepo},
		queue,
		NewConsoleCertificadoNotifier(),
		c.FileSystem,
		cfg.Certificados.VerificationURL,
	)
	c.CertificadoWorker = worker.NewCertificadoWorker(c.CertificadoService, queue, cfg.Certificados.Workers)

	// --- Informes ---
	c.InformeService = informesrv.NewInformeService(solicitudRepo, resolver)

	// --- Handlers ---
	c.UserHandlers = userapi.NewHandlers(c.UserService)
	c.SolicitudHandlers = solicitudapi.NewHandlers(c.SolicitudService)
	c.CandidatoHandlers = candidatoapi.NewHandlers(c.CandidatoService)
	c.CandidatoAuthHandlers = candidatoauth.NewHandlers(c.CandidatoAuthService, c.CandidatoService)
	c.EmpresaHandlers = empresaapi.NewHandlers(c.EmpresaService, c.SolicitudService)
	c.CatalogoHandlers = catalogoapi.NewHandlers(c.CatalogoService)
	c.PrestadorHandlers = prestadorapi.NewHandlers(c.PrestadorService)
	c.CitaHandlers = citaapi.NewHandlers(c.CitaService)
	c.CertificadoHandlers = certificadoapi.NewHandlers(c.CertificadoService, c.FileSystem)
	c.InformeHandlers = informeapi.NewHandlers(c.InformeService)
}

// ============================================================================
// Port adapters
// ============================================================================

// candidatoDirectory adapts the candidato repository to the slice the
// solicitud lifecycle needs
type candidatoDirectory struct {
	repo candidato.Repository
}

func (d *candidatoDirectory) GetBySolicitud(ctx context.Context, solicitudID kernel.SolicitudID) (*solicitud.CandidatoInfo, error) {
	entity, err := d.repo.GetBySolicitud(ctx, solicitudID)
	if err != nil {
		return nil, err
	}
	return &solicitud.CandidatoInfo{
		ID:       entity.ID,
		Nombre:   entity.GetFullName(),
		Email:    entity.Email,
		CiudadID: entity.CiudadID,
	}, nil
}

// analistaValidator adapts the user service to the solicitud port
type analistaValidator struct {
	users *usersrv.UserService
}

func (v *analistaValidator) ValidateAnalista(ctx context.Context, userID kernel.UserID) error {
	_, err := v.users.ValidateAnalista(ctx, userID)
	return err
}

// solicitudReceiver lets the candidato portal report document submission
// without importing the solicitud service directly
type solicitudReceiver struct {
	solicitudes *solicitudsrv.SolicitudService
}

func (r *solicitudReceiver) RegistrarEntregaDocumentos(ctx context.Context, solicitudID kernel.SolicitudID, candidatoID kernel.CandidatoID) error {
	_, err := r.solicitudes.RegistrarEntregaDocumentos(ctx, solicitudID, solicitudsrv.Actor{
		Nombre: "portal candidato " + string(candidatoID),
	})
	return err
}

// solicitudGate exposes the solicitud state certificado issuance checks
type solicitudGate struct {
	repo solicitud.Repository
}

func (g *solicitudGate) GetEstadoInfo(ctx context.Context, solicitudID kernel.SolicitudID) (certificado.EstadoInfo, error) {
	entity, err := g.repo.GetByID(ctx, solicitudID)
	if err != nil {
		return certificado.EstadoInfo{}, err
	}
	return certificado.EstadoInfo{
		Contratado:  entity.Estado == solicitud.EstadoContratado,
		CandidatoID: entity.CandidatoID,
	}, nil
}

// ============================================================================
// Console notifiers (real transports plug in behind these interfaces)
// ============================================================================

// ConsoleResetNotifier prints password reset tokens to the terminal
type ConsoleResetNotifier struct{}

// NewConsoleResetNotifier creates a console-based reset notifier
func NewConsoleResetNotifier() *ConsoleResetNotifier {
	return &ConsoleResetNotifier{}
}

// SendPasswordReset prints the reset token instead of emailing it
func (n *ConsoleResetNotifier) SendPasswordReset(ctx context.Context, email kernel.Email, token string) error {
	fmt.Printf("PASSWORD RESET for %s: token=%s\n", email, token)
	logx.Infof("password reset token issued for %s", email)
	return nil
}

// ConsoleCertificadoNotifier prints certificado deliveries to the terminal
type ConsoleCertificadoNotifier struct{}

// NewConsoleCertificadoNotifier creates a console-based certificado notifier
func NewConsoleCertificadoNotifier() *ConsoleCertificadoNotifier {
	return &ConsoleCertificadoNotifier{}
}

// SendCertificado prints the delivery instead of calling a transport
func (n *ConsoleCertificadoNotifier) SendCertificado(ctx context.Context, canal certificado.Canal, destino string, cert *certificado.Certificado) error {
	fmt.Printf("CERTIFICADO %s via %s to %s (codigo %s)\n", cert.ID, canal, destino, cert.Codigo)
	logx.Infof("certificado %s delivered via %s", cert.ID, canal)
	return nil
}
