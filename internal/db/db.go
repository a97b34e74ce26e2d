package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ThriveAssessments/case-manager/internal/config"
	"github.com/ThriveAssessments/case-manager/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Organization{},
		&models.User{},
		&models.Provider{},
		&models.AvailabilityProvider{},
		&models.WeeklyHour{},
		&models.OverrideHour{},
		&models.Claimant{},
		&models.Referral{},
		&models.ExamType{},
		&models.Examination{},
		&models.ContractTemplate{},
		&models.FeeStructure{},
		&models.FeeVariable{},
		&models.Contract{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE organizations
        SET timezone = 'America/Toronto'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}
