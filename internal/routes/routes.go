package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ThriveAssessments/case-manager/internal/audit"
	"github.com/ThriveAssessments/case-manager/internal/config"
	"github.com/ThriveAssessments/case-manager/internal/handlers"
	"github.com/ThriveAssessments/case-manager/internal/infra/draftstore"
	infraRepo "github.com/ThriveAssessments/case-manager/internal/infra/repository"
	"github.com/ThriveAssessments/case-manager/internal/infra/storage"
	"github.com/ThriveAssessments/case-manager/internal/middleware"
	"github.com/ThriveAssessments/case-manager/internal/notify"
	ucAvailability "github.com/ThriveAssessments/case-manager/internal/usecase/availability"
	ucContract "github.com/ThriveAssessments/case-manager/internal/usecase/contract"
	ucExamination "github.com/ThriveAssessments/case-manager/internal/usecase/examination"
	ucReferral "github.com/ThriveAssessments/case-manager/internal/usecase/referral"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(db)
	contractRepo := infraRepo.NewContractGormRepository(db)
	referralRepo := infraRepo.NewReferralGormRepository(db)
	examinationRepo := infraRepo.NewExaminationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifier := notify.NewLogNotifier()

	redisClient := draftstore.NewRedisClient(cfg)
	draftStore := draftstore.NewRedisDraftStore(redisClient)
	draftTTL := time.Duration(cfg.DraftTTLMinutes) * time.Minute

	documentStore := storage.NewS3DocumentStore(cfg)

	// ======================================================
	// USE CASES — AVAILABILITY
	// ======================================================
	saveAvailabilityUC := ucAvailability.NewSaveCompleteAvailability(
		availabilityRepo,
		auditDispatcher,
	)

	getAvailabilityUC := ucAvailability.NewGetCompleteAvailability(
		availabilityRepo,
	)

	checkWindowUC := ucAvailability.NewCheckWindow(
		availabilityRepo,
	)

	// ======================================================
	// USE CASES — REFERRALS
	// ======================================================
	draftWizard := ucReferral.NewDraftWizard(draftStore, draftTTL)

	submitReferralUC := ucReferral.NewSubmitReferral(
		referralRepo,
		draftStore,
		auditDispatcher,
		notifier,
	)

	// ======================================================
	// USE CASES — EXAMINATIONS
	// ======================================================
	createExaminationUC := ucExamination.NewCreateExamination(
		examinationRepo,
		checkWindowUC,
		auditDispatcher,
	)

	cancelExaminationUC := ucExamination.NewCancelExamination(
		examinationRepo,
		auditDispatcher,
	)

	completeExaminationUC := ucExamination.NewCompleteExamination(
		examinationRepo,
		auditDispatcher,
	)

	// ======================================================
	// USE CASES — CONTRACTS
	// ======================================================
	createContractUC := ucContract.NewCreateContract(
		contractRepo,
		auditDispatcher,
	)

	signContractUC := ucContract.NewSignContract(
		contractRepo,
		documentStore,
		storage.NormalizeSignature,
		auditDispatcher,
		notifier,
	)

	reviewContractUC := ucContract.NewReviewContract(
		contractRepo,
		documentStore,
		auditDispatcher,
	)

	requirementsUC := ucContract.NewListCompatibleFeeStructures(contractRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(db)

	providerHandler := handlers.NewProviderHandler(db)
	examTypeHandler := handlers.NewExamTypeHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(
		db,
		saveAvailabilityUC,
		getAvailabilityUC,
	)

	referralHandler := handlers.NewReferralHandler(
		db,
		draftWizard,
		submitReferralUC,
		referralRepo,
	)

	examinationHandler := handlers.NewExaminationHandler(
		db,
		examinationRepo,
		createExaminationUC,
		cancelExaminationUC,
		completeExaminationUC,
	)

	templateHandler := handlers.NewTemplateHandler(db, requirementsUC)
	feeStructureHandler := handlers.NewFeeStructureHandler(db)

	contractHandler := handlers.NewContractHandler(
		db,
		createContractUC,
		signContractUC,
		reviewContractUC,
	)

	claimantHandler := handlers.NewClaimantHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		draftWizard,
		submitReferralUC,
		getAvailabilityUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/exam-types", publicHandler.ListExamTypes)
			publicAPI.GET("/:slug/availability", publicHandler.DayAvailability)

			publicAPI.POST("/:slug/referral-drafts", publicHandler.SaveDraftStep)
			publicAPI.GET("/:slug/referral-drafts/:draftId", publicHandler.GetDraft)
			publicAPI.POST("/:slug/referrals", publicHandler.SubmitReferral)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/organization", organizationHandler.GetMeOrganization)
			secured.PATCH("/me/organization", organizationHandler.UpdateMeOrganization)

			secured.GET("/me/providers", providerHandler.List)
			secured.POST("/me/providers", providerHandler.Create)
			secured.PATCH("/me/providers/:id", providerHandler.Update)

			secured.GET("/me/providers/:id/availability", availabilityHandler.Get)
			secured.PUT("/me/providers/:id/availability", availabilityHandler.Update)

			secured.GET("/me/exam-types", examTypeHandler.List)
			secured.POST("/me/exam-types", examTypeHandler.Create)
			secured.PATCH("/me/exam-types/:id", examTypeHandler.Update)

			// ------------------------------
			// REFERRALS
			// ------------------------------
			secured.POST("/me/referral-drafts", referralHandler.SaveDraftStep)
			secured.GET("/me/referral-drafts/:draftId", referralHandler.GetDraft)
			secured.POST("/me/referrals", referralHandler.Submit)
			secured.GET("/me/referrals", referralHandler.List)
			secured.GET("/me/referrals/:id", referralHandler.Get)

			secured.GET("/me/claimants", claimantHandler.List)

			// ------------------------------
			// EXAMINATIONS
			// ------------------------------
			secured.POST("/me/examinations", examinationHandler.Create)
			secured.GET("/me/examinations", examinationHandler.ListByDate)
			secured.PATCH("/me/examinations/:id/cancel", examinationHandler.Cancel)
			secured.PATCH("/me/examinations/:id/complete", examinationHandler.Complete)

			// ------------------------------
			// CONTRACTS
			// ------------------------------
			secured.GET("/me/templates", templateHandler.List)
			secured.POST("/me/templates", templateHandler.Create)
			secured.PATCH("/me/templates/:id", templateHandler.Update)
			secured.GET("/me/templates/:id/placeholders", templateHandler.Placeholders)
			secured.GET("/me/templates/:id/requirements", templateHandler.Requirements)

			secured.GET("/me/fee-structures", feeStructureHandler.List)
			secured.POST("/me/fee-structures", feeStructureHandler.Create)
			secured.PATCH("/me/fee-structures/:id", feeStructureHandler.Update)

			secured.GET("/me/contracts", contractHandler.List)
			secured.POST("/me/contracts", contractHandler.Create)
			secured.GET("/me/contracts/:id", contractHandler.Get)
			secured.POST("/me/contracts/:id/sign", contractHandler.Sign)
			secured.POST("/me/contracts/:id/review", contractHandler.Review)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
