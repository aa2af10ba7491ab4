package db

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/punitsirse123/TempCall/internal/config"
	"github.com/punitsirse123/TempCall/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Role{},
		&models.UserRole{},
		&models.TimeSlot{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	seedRoles(db, log)

	return db
}

// seedRoles guarantees the admin role exists so the dashboard gate
// has something to attach users to.
func seedRoles(db *gorm.DB, log *zap.Logger) {
	var count int64
	db.Model(&models.Role{}).Where("name = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	role := models.Role{ID: uuid.New(), Name: models.RoleAdmin}
	if err := db.Create(&role).Error; err != nil {
		log.Warn("failed to seed admin role", zap.Error(err))
	}
}
