// Command seed populates a development database with a small but complete
// object graph: plans, an agreement, a fully allocated service with its user
// list, systems and users.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	appbilling "github.com/agreements/backend/internal/application/billing"
	appcontract "github.com/agreements/backend/internal/application/contract"
	appidentity "github.com/agreements/backend/internal/application/identity"
	applandscape "github.com/agreements/backend/internal/application/landscape"
	"github.com/agreements/backend/internal/infrastructure/config"
	"github.com/agreements/backend/internal/infrastructure/logger"
	"github.com/agreements/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	log, err := logger.NewForEnvironment(os.Getenv("AGREEMENTS_APP_ENV"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := seed(context.Background(), db, log); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
	log.Info("Seeding completed")
}

func seed(ctx context.Context, db *persistence.Database, log *zap.Logger) error {
	txScope := persistence.NewGormTransactionScope(db.DB)
	agreementRepo := persistence.NewGormAgreementRepository(db.DB)
	planRepo := persistence.NewGormPlanRepository(db.DB)
	serviceRepo := persistence.NewGormServiceRepository(db.DB)
	systemRepo := persistence.NewGormSystemRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	userListRepo := persistence.NewGormUserListRepository(db.DB)

	plans := appcontract.NewPlanService(planRepo)
	agreements := appcontract.NewAgreementService(agreementRepo, planRepo, txScope)
	systems := applandscape.NewSystemService(systemRepo)
	services := appbilling.NewServiceService(serviceRepo, agreementRepo, systemRepo, txScope)
	userLists := appbilling.NewUserListService(serviceRepo, userListRepo)
	users := appidentity.NewUserService(userRepo)

	year := time.Now().Year()

	providerPlan, err := plans.Create(ctx, appcontract.CreatePlanRequest{
		Year:        year,
		Name:        fmt.Sprintf("Provider Plan %d", year),
		Scope:       "provider",
		Description: "Seeded provider-side plan",
	})
	if err != nil {
		return err
	}
	localPlan, err := plans.Create(ctx, appcontract.CreatePlanRequest{
		Year:        year,
		Name:        fmt.Sprintf("Local Plan %d", year),
		Scope:       "local",
		Description: "Seeded local plan",
	})
	if err != nil {
		return err
	}
	log.Info("Seeded plans",
		zap.String("provider_plan_id", providerPlan.ID.String()),
		zap.String("local_plan_id", localPlan.ID.String()),
	)

	agreement, err := agreements.Create(ctx, appcontract.CreateAgreementRequest{
		Year:           year,
		Code:           "AGR-0001",
		RevisionDate:   time.Now(),
		ProviderPlanID: providerPlan.ID,
		LocalPlanID:    localPlan.ID,
		Name:           "Managed Hosting Agreement",
		Description:    "Seeded agreement covering managed hosting services",
		ContactEmail:   "contracts@example.com",
	})
	if err != nil {
		return err
	}
	log.Info("Seeded agreement", zap.String("agreement_id", agreement.ID.String()))

	erpSystem, err := systems.Create(ctx, applandscape.CreateSystemRequest{
		Name:          "ERP Production",
		Description:   "Core ERP landscape",
		ApplicationID: "APP-ERP-01",
		UserCount:     240,
	})
	if err != nil {
		return err
	}
	crmSystem, err := systems.Create(ctx, applandscape.CreateSystemRequest{
		Name:          "CRM Production",
		Description:   "Customer relationship landscape",
		ApplicationID: "APP-CRM-01",
		UserCount:     120,
	})
	if err != nil {
		return err
	}
	log.Info("Seeded systems",
		zap.String("erp_system_id", erpSystem.ID.String()),
		zap.String("crm_system_id", crmSystem.ID.String()),
	)

	service, err := services.Create(ctx, appbilling.CreateServiceRequest{
		AgreementID:      agreement.ID,
		Name:             "Application Hosting",
		Description:      "Hosting and operations for the seeded landscapes",
		Currency:         "EUR",
		RunAmount:        decimal.RequireFromString("12000.00"),
		ChgAmount:        decimal.RequireFromString("3000.00"),
		ResponsibleEmail: "hosting@example.com",
		Allocations: []appbilling.AllocationRequest{
			{SystemID: erpSystem.ID, Percent: decimal.RequireFromString("66.666667")},
			{SystemID: crmSystem.ID, Percent: decimal.RequireFromString("33.333333")},
		},
	})
	if err != nil {
		return err
	}
	log.Info("Seeded service",
		zap.String("service_id", service.ID.String()),
		zap.Bool("is_active", service.IsActive),
	)

	if _, err := userLists.Save(ctx, service.ID, appbilling.SaveUserListRequest{
		Items: []appbilling.UserListItemRequest{
			{Name: "Alex Fischer", Email: "alex.fischer@example.com", ExternalUserID: "U-1001", Area: "Finance", CostCenter: "CC-100"},
			{Name: "Maria Rossi", Email: "maria.rossi@example.com", ExternalUserID: "U-1002", Area: "Sales", CostCenter: "CC-200"},
		},
	}); err != nil {
		return err
	}

	for _, req := range []appidentity.CreateUserRequest{
		{Name: "Admin", Email: "admin@example.com", Role: "admin"},
		{Name: "Validator", Email: "validator@example.com", Role: "validator"},
		{Name: "Viewer", Email: "viewer@example.com", Role: "viewer"},
	} {
		if _, err := users.Create(ctx, req); err != nil {
			return err
		}
	}

	return nil
}
