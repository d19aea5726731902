package di

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mindvault/application/ports"
	"mindvault/application/store"
	"mindvault/infrastructure/config"
	"mindvault/infrastructure/persistence/snapshot"
	"mindvault/infrastructure/persistence/sqlite"
	"mindvault/infrastructure/services/analytics"
	"mindvault/infrastructure/services/local"
)

// ProvideLogger creates the application logger from the configured
// environment and level.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Environment == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	return zcfg.Build()
}

// ProvideDB opens the embedded document store.
func ProvideDB(cfg *config.Config, logger *zap.Logger) (*sqlite.DB, error) {
	return sqlite.Open(cfg.DatabasePath(), logger)
}

// ProvideKnowledgeService creates the local knowledge service.
func ProvideKnowledgeService(db *sqlite.DB, logger *zap.Logger) ports.KnowledgeService {
	return local.NewKnowledgeService(db, logger)
}

// ProvideLearningService creates the local learning service.
func ProvideLearningService(db *sqlite.DB) ports.LearningService {
	return local.NewLearningService(db)
}

// ProvideUserService creates the local user service.
func ProvideUserService(db *sqlite.DB) ports.UserService {
	return local.NewUserService(db)
}

// ProvideFileService creates the local file service.
func ProvideFileService(cfg *config.Config) ports.FileService {
	return local.NewFileService(cfg.UploadPath())
}

// ProvideDataService creates the local import/export service.
func ProvideDataService(cfg *config.Config, db *sqlite.DB, logger *zap.Logger) ports.DataService {
	return local.NewDataService(db, cfg.ExportPath(), logger)
}

// ProvideAnalyticsService creates the analytics service.
func ProvideAnalyticsService() ports.AnalyticsService {
	return analytics.NewService()
}

// ProvideSkillStorage creates the skill key-value store.
func ProvideSkillStorage(db *sqlite.DB) ports.SkillStorage {
	return local.NewSkillStorage(db)
}

// ProvideAchievementStorage creates the achievement key-value store.
func ProvideAchievementStorage(db *sqlite.DB) ports.AchievementStorage {
	return local.NewAchievementStorage(db)
}

// ProvideSnapshotStore creates the persisted-subset store.
func ProvideSnapshotStore(cfg *config.Config, logger *zap.Logger) ports.SnapshotStore {
	return snapshot.NewFileStore(cfg.SnapshotPath(), logger)
}

// ProvideServices bundles the service boundary for the coordinator.
func ProvideServices(
	knowledge ports.KnowledgeService,
	learning ports.LearningService,
	user ports.UserService,
	file ports.FileService,
	data ports.DataService,
	analytics ports.AnalyticsService,
	skills ports.SkillStorage,
	achievements ports.AchievementStorage,
) store.Services {
	return store.Services{
		Knowledge:    knowledge,
		Learning:     learning,
		User:         user,
		File:         file,
		Data:         data,
		Analytics:    analytics,
		Skills:       skills,
		Achievements: achievements,
	}
}

// ProvideStore creates the application state coordinator.
func ProvideStore(services store.Services, snapshots ports.SnapshotStore, logger *zap.Logger) *store.Store {
	return store.New(services, snapshots, logger)
}
