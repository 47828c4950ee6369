package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB          DBConfig
	Server      ServerConfig
	Redis       RedisConfig
	Logger      LoggerConfig
	JWT         JWTConfig
	GoogleOAuth GoogleOAuthConfig
	Quiz        QuizConfig
	Matching    MatchingConfig
}

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"name"`
}

type ServerConfig struct {
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

type JWTConfig struct {
	SecretKey       string        `yaml:"secret_key"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl"`
}

type GoogleOAuthConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"`
}

// QuizConfig controls session provisioning and open-ended scoring.
type QuizConfig struct {
	SessionQuestionCount int    `yaml:"session_question_count"`
	MinKeywordHits       int    `yaml:"min_keyword_hits"`
	OpenEndedStrategy    string `yaml:"open_ended_strategy"` // "keyword" or "llm"
	LLMServer            string `yaml:"llm_server"`
	LLMModel             string `yaml:"llm_model"`
}

// MatchingConfig tunes the career matcher and derived caching.
type MatchingConfig struct {
	MatchThreshold  float64       `yaml:"match_threshold"`
	TopN            int           `yaml:"top_n"`
	MinMatchFloor   float64       `yaml:"min_match_floor"`
	CatalogCacheTTL time.Duration `yaml:"catalog_cache_ttl"`
	ResultCacheTTL  time.Duration `yaml:"result_cache_ttl"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("quiz.session_question_count", 10)
	viper.SetDefault("quiz.min_keyword_hits", 1)
	viper.SetDefault("quiz.open_ended_strategy", "keyword")
	viper.SetDefault("matching.match_threshold", 60.0)
	viper.SetDefault("matching.top_n", 5)
	viper.SetDefault("matching.min_match_floor", 10.0)
	viper.SetDefault("matching.catalog_cache_ttl", "10m")
	viper.SetDefault("matching.result_cache_ttl", "1h")
	viper.SetDefault("jwt.access_token_ttl", "15m")
	viper.SetDefault("jwt.refresh_token_ttl", "168h")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
		},
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		JWT: JWTConfig{
			SecretKey:       viper.GetString("jwt.secret_key"),
			AccessTokenTTL:  viper.GetDuration("jwt.access_token_ttl"),
			RefreshTokenTTL: viper.GetDuration("jwt.refresh_token_ttl"),
		},
		GoogleOAuth: GoogleOAuthConfig{
			ClientID:     viper.GetString("google_oauth.client_id"),
			ClientSecret: viper.GetString("google_oauth.client_secret"),
			RedirectURL:  viper.GetString("google_oauth.redirect_url"),
		},
		Quiz: QuizConfig{
			SessionQuestionCount: viper.GetInt("quiz.session_question_count"),
			MinKeywordHits:       viper.GetInt("quiz.min_keyword_hits"),
			OpenEndedStrategy:    viper.GetString("quiz.open_ended_strategy"),
			LLMServer:            viper.GetString("quiz.llm_server"),
			LLMModel:             viper.GetString("quiz.llm_model"),
		},
		Matching: MatchingConfig{
			MatchThreshold:  viper.GetFloat64("matching.match_threshold"),
			TopN:            viper.GetInt("matching.top_n"),
			MinMatchFloor:   viper.GetFloat64("matching.min_match_floor"),
			CatalogCacheTTL: viper.GetDuration("matching.catalog_cache_ttl"),
			ResultCacheTTL:  viper.GetDuration("matching.result_cache_ttl"),
		},
	}

	// Environment overrides for deployment without a config file edit.
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if secret := os.Getenv("JWT_SECRET_KEY"); secret != "" {
		config.JWT.SecretKey = secret
	}
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		config.Quiz.LLMServer = llmServer
	}

	return config, nil
}

// GetDSN builds the Oracle connection string for go-ora.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}

// GetMigrateDSN builds the keyword-form connection string godror expects.
func (c *Config) GetMigrateDSN() string {
	return fmt.Sprintf("user=%q password=%q connectString=%q",
		c.DB.User,
		c.DB.Password,
		fmt.Sprintf("%s:%d/%s", c.DB.Host, c.DB.Port, c.DB.DBName),
	)
}
