package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	agendamentoModel "reservasalas_backend/internals/features/agendamentos/model"
	horarioModel "reservasalas_backend/internals/features/horarios/model"
	instituicaoModel "reservasalas_backend/internals/features/instituicoes/instituicao/model"
	vinculoModel "reservasalas_backend/internals/features/instituicoes/vinculo/model"
	salaModel "reservasalas_backend/internals/features/salas/model"
	authModel "reservasalas_backend/internals/features/users/auth/model"
	userModel "reservasalas_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando ao PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=reservasalas&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatível com PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger:         NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}
	DB = db
	log.Println("✅ DB conectado.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate cria/atualiza as tabelas e os índices únicos dos quais a
// integridade do agendamento depende (reserva por intervalo exato e
// vínculo único por instituição/usuário).
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UsuarioModel{},
		&authModel.TokenBlacklist{},
		&instituicaoModel.InstituicaoModel{},
		&vinculoModel.VinculoModel{},
		&salaModel.SalaModel{},
		&horarioModel.HorarioModel{},
		&agendamentoModel.AgendamentoModel{},
		&agendamentoModel.AgendamentoHorarioModel{},
	)
	if err != nil {
		log.Fatalf("❌ Falha na migração: %v", err)
	}
	log.Println("✅ Migração concluída.")
}

func WarmUpQueries() {
	// ping leve para o pool já subir pronto
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		log.Printf("[SQL ERROR] %v | %s | rows=%d | %s", err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SQL SLOW] %s | rows=%d | %s", elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[SQL] %s | rows=%d | %s", elapsed, rows, sql)
	}
}
