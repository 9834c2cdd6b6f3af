package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/syndata/field-scheduler/internal/audit"
	"github.com/syndata/field-scheduler/internal/cache"
	"github.com/syndata/field-scheduler/internal/config"
	"github.com/syndata/field-scheduler/internal/handlers"
	infraRepo "github.com/syndata/field-scheduler/internal/infra/repository"
	"github.com/syndata/field-scheduler/internal/middleware"
	"github.com/syndata/field-scheduler/internal/signature"
	ucAgendamento "github.com/syndata/field-scheduler/internal/usecase/agendamento"
	ucEncaixe "github.com/syndata/field-scheduler/internal/usecase/encaixe"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	redisClient *redis.Client,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Metrics())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	agendamentoRepo := infraRepo.NewAgendamentoGormRepository(db)
	encaixeRepo := infraRepo.NewEncaixeGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	assinaturaStore := signature.NewStore(cfg)
	lookupCache := cache.NewJSONCache(redisClient, 5*time.Minute)

	// ======================================================
	// 🧠 USE CASES — AGENDAMENTOS
	// ======================================================
	criarAgendamentoUC := ucAgendamento.NewCreateAgendamento(
		agendamentoRepo,
		auditDispatcher,
	)

	listarAgendamentosUC := ucAgendamento.NewListarAgendamentos(
		agendamentoRepo,
	)

	listarDoTecnicoUC := ucAgendamento.NewListarAgendamentosDoTecnico(
		agendamentoRepo,
	)

	montarGradeUC := ucAgendamento.NewMontarGrade(agendamentoRepo)
	detalheUC := ucAgendamento.NewDetalheAgendamento(agendamentoRepo)
	localizacoesUC := ucAgendamento.NewListarLocalizacoes(agendamentoRepo)
	proximoNumeroUC := ucAgendamento.NewProximoNumero(agendamentoRepo)

	atualizarAgendamentoUC := ucAgendamento.NewAtualizarAgendamento(
		agendamentoRepo,
		assinaturaStore,
		auditDispatcher,
	)

	remarcarAgendamentoUC := ucAgendamento.NewRemarcarAgendamento(
		agendamentoRepo,
		auditDispatcher,
	)

	cancelarAgendamentoUC := ucAgendamento.NewCancelarAgendamento(
		agendamentoRepo,
		auditDispatcher,
	)

	registrarSaidaUC := ucAgendamento.NewRegistrarSaida(
		agendamentoRepo,
		auditDispatcher,
	)

	registrarChegadaUC := ucAgendamento.NewRegistrarChegada(
		agendamentoRepo,
		auditDispatcher,
	)

	finalizarAgendamentoUC := ucAgendamento.NewFinalizarAgendamento(
		agendamentoRepo,
		assinaturaStore,
		auditDispatcher,
	)

	excluirAgendamentoUC := ucAgendamento.NewExcluirAgendamento(
		agendamentoRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧠 USE CASES — ENCAIXES
	// ======================================================
	criarEncaixeUC := ucEncaixe.NewCriarEncaixe(
		encaixeRepo,
		auditDispatcher,
	)

	listarEncaixesUC := ucEncaixe.NewListarEncaixes(encaixeRepo)

	solicitarEncaixeUC := ucEncaixe.NewSolicitarEncaixe(
		encaixeRepo,
		auditDispatcher,
	)

	atribuirTecnicoUC := ucEncaixe.NewAtribuirTecnico(
		encaixeRepo,
		auditDispatcher,
	)

	converterEncaixeUC := ucEncaixe.NewConverterEncaixe(
		encaixeRepo,
		criarAgendamentoUC,
		auditDispatcher,
	)

	atualizarEncaixeUC := ucEncaixe.NewAtualizarEncaixe(
		encaixeRepo,
		auditDispatcher,
	)

	excluirEncaixeUC := ucEncaixe.NewExcluirEncaixe(
		encaixeRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	agendamentoHandler := handlers.NewAgendamentoHandler(
		criarAgendamentoUC,
		listarAgendamentosUC,
		listarDoTecnicoUC,
		montarGradeUC,
		detalheUC,
		localizacoesUC,
		proximoNumeroUC,
		atualizarAgendamentoUC,
		remarcarAgendamentoUC,
		cancelarAgendamentoUC,
		registrarSaidaUC,
		registrarChegadaUC,
		finalizarAgendamentoUC,
		excluirAgendamentoUC,
	)

	encaixeHandler := handlers.NewEncaixeHandler(
		criarEncaixeUC,
		listarEncaixesUC,
		solicitarEncaixeUC,
		atribuirTecnicoUC,
		converterEncaixeUC,
		atualizarEncaixeUC,
		excluirEncaixeUC,
	)

	funcionarioHandler := handlers.NewFuncionarioHandler(db, lookupCache)
	clienteHandler := handlers.NewClienteHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me", authHandler.Me)

			// ------------------------------
			// 📅 AGENDAMENTOS
			// ------------------------------
			ag := secured.Group("/agendamentos")
			{
				ag.GET("", agendamentoHandler.List)
				ag.GET("/grade", agendamentoHandler.Grade)
				ag.GET("/detalhes/:id", agendamentoHandler.Detalhe)
				ag.GET("/:id/locs", agendamentoHandler.Localizacoes)
				ag.GET("/proximo-numero", agendamentoHandler.ProximoNumero)

				// Somente secretaria
				agSec := ag.Group("")
				agSec.Use(middleware.RequireSecretaria())
				{
					agSec.POST("", agendamentoHandler.Create)
					agSec.PUT("/:id", agendamentoHandler.Update)
					agSec.PUT("/:id/remarcar", agendamentoHandler.Remarcar)
					agSec.PUT("/:id/cancelar", agendamentoHandler.Cancelar)
					agSec.DELETE("/:id", agendamentoHandler.Delete)
				}

				// Somente técnico (fluxo de campo)
				agTec := ag.Group("")
				agTec.Use(middleware.RequireTecnico())
				{
					agTec.GET("/me", agendamentoHandler.ListMe)
					agTec.PUT("/:id/saida", agendamentoHandler.Saida)
					agTec.PUT("/:id/chegada", agendamentoHandler.Chegada)
					agTec.PUT("/:id/finalizar", agendamentoHandler.Finalizar)
				}
			}

			// ------------------------------
			// 🧩 ENCAIXES
			// ------------------------------
			enc := secured.Group("/encaixes")
			{
				enc.GET("/aguardando", encaixeHandler.Aguardando)

				encSec := enc.Group("")
				encSec.Use(middleware.RequireSecretaria())
				{
					encSec.POST("", encaixeHandler.Create)
					encSec.GET("", encaixeHandler.List)
					encSec.PUT("/:id/atribuir", encaixeHandler.Atribuir)
					encSec.POST("/:id/converter", encaixeHandler.Converter)
					encSec.PUT("/:id", encaixeHandler.Update)
					encSec.DELETE("/:id", encaixeHandler.Delete)
				}

				encTec := enc.Group("")
				encTec.Use(middleware.RequireTecnico())
				{
					encTec.GET("/disponiveis", encaixeHandler.Disponiveis)
					encTec.POST("/:id/solicitar", encaixeHandler.Solicitar)
				}
			}

			// ------------------------------
			// 👥 EQUIPE E CLIENTES
			// ------------------------------
			secured.GET("/funcionarios/tecnicos", funcionarioHandler.Tecnicos)
			secured.GET("/funcionarios/secretarias", funcionarioHandler.Secretarias)

			secured.GET("/clientes", clienteHandler.List)
			secured.GET("/clientes/:id", clienteHandler.Get)

			// ------------------------------
			// 📜 AUDITORIA
			// ------------------------------
			secured.GET("/audit-logs",
				middleware.RequireSecretaria(),
				auditLogsHandler.List,
			)
		}
	}
}
