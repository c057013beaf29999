package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	SMTP       SMTPConfig
	Storage    StorageConfig
	Stripe     StripeConfig
	Leave      LeavePolicy
	Attendance AttendancePolicy
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

type StripeConfig struct {
	SecretKey   string
	FrontendURL string
}

// LeavePolicy carries the leave accounting knobs. Defaults mirror the
// company handbook: Sick 10, Personal 5, Official 3, Vacation 15 days a
// year, with Personal/Official capped at 3 days per request and per month.
type LeavePolicy struct {
	SickTotal     int
	PersonalTotal int
	OfficialTotal int
	VacationTotal int
	PerRequestCap int
	MonthlyCap    int
}

// AttendancePolicy carries the attendance knobs. WorkStartHour/Minute is
// the local cutoff after which a check-in counts as Late. DayEndHour is
// the earliest local hour at which the scheduled absentee sweep may run;
// sweeping earlier would mark not-yet-arrived employees absent and block
// their check-in.
type AttendancePolicy struct {
	WorkStartHour    int
	WorkStartMinute  int
	DayEndHour       int
	AbsenteeInterval time.Duration
}

func Load() (*Config, error) {
	// A missing .env is fine in production; env vars take precedence anyway.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "ems"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:     getEnv("JWT_SECRET_KEY", ""),
		Expiration: getEnv("JWT_EXPIRATION_TIME", "24h"),
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", getEnv("SMTP_USERNAME", "")),
	}

	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	config.Stripe = StripeConfig{
		SecretKey:   getEnv("STRIPE_SECRET_KEY", ""),
		FrontendURL: config.App.FrontendURL,
	}

	leave, err := loadLeavePolicy()
	if err != nil {
		return nil, err
	}
	config.Leave = leave

	attendance, err := loadAttendancePolicy()
	if err != nil {
		return nil, err
	}
	config.Attendance = attendance

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadLeavePolicy() (LeavePolicy, error) {
	policy := LeavePolicy{}
	fields := []struct {
		key      string
		fallback int
		dst      *int
	}{
		{"LEAVE_SICK_TOTAL", 10, &policy.SickTotal},
		{"LEAVE_PERSONAL_TOTAL", 5, &policy.PersonalTotal},
		{"LEAVE_OFFICIAL_TOTAL", 3, &policy.OfficialTotal},
		{"LEAVE_VACATION_TOTAL", 15, &policy.VacationTotal},
		{"LEAVE_PER_REQUEST_CAP", 3, &policy.PerRequestCap},
		{"LEAVE_MONTHLY_CAP", 3, &policy.MonthlyCap},
	}
	for _, f := range fields {
		v, err := strconv.Atoi(getEnv(f.key, strconv.Itoa(f.fallback)))
		if err != nil {
			return policy, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = v
	}
	return policy, nil
}

func loadAttendancePolicy() (AttendancePolicy, error) {
	workStartHour, err := strconv.Atoi(getEnv("ATTENDANCE_WORK_START_HOUR", "10"))
	if err != nil {
		return AttendancePolicy{}, fmt.Errorf("invalid ATTENDANCE_WORK_START_HOUR: %w", err)
	}
	workStartMinute, err := strconv.Atoi(getEnv("ATTENDANCE_WORK_START_MINUTE", "0"))
	if err != nil {
		return AttendancePolicy{}, fmt.Errorf("invalid ATTENDANCE_WORK_START_MINUTE: %w", err)
	}
	dayEndHour, err := strconv.Atoi(getEnv("ATTENDANCE_DAY_END_HOUR", "20"))
	if err != nil {
		return AttendancePolicy{}, fmt.Errorf("invalid ATTENDANCE_DAY_END_HOUR: %w", err)
	}
	interval, err := time.ParseDuration(getEnv("ATTENDANCE_ABSENTEE_INTERVAL", "1h"))
	if err != nil {
		return AttendancePolicy{}, fmt.Errorf("invalid ATTENDANCE_ABSENTEE_INTERVAL: %w", err)
	}
	return AttendancePolicy{
		WorkStartHour:    workStartHour,
		WorkStartMinute:  workStartMinute,
		DayEndHour:       dayEndHour,
		AbsenteeInterval: interval,
	}, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Leave.PerRequestCap <= 0 || c.Leave.MonthlyCap <= 0 {
		return fmt.Errorf("leave caps must be positive")
	}
	if c.Attendance.WorkStartHour < 0 || c.Attendance.WorkStartHour > 23 {
		return fmt.Errorf("ATTENDANCE_WORK_START_HOUR out of range")
	}
	if c.Attendance.DayEndHour < 0 || c.Attendance.DayEndHour > 23 {
		return fmt.Errorf("ATTENDANCE_DAY_END_HOUR out of range")
	}
	if c.Attendance.DayEndHour <= c.Attendance.WorkStartHour {
		return fmt.Errorf("ATTENDANCE_DAY_END_HOUR must be after ATTENDANCE_WORK_START_HOUR")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
