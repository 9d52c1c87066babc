package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Conf holds the application configuration. It is loaded once at import time
// from defaults, an optional .env file and environment variables (prefixed
// with the current ENV name).
var Conf *Config

type Config struct {
	Debug    bool
	TestMode bool
	Env      string
	Build    string
	AppName  string

	// SecretKey is the HS256 key shared with the authentication service;
	// session tokens are validated against it.
	SecretKey string

	FrontendBaseURL  string
	DefaultFromEmail mail.Address
	SendgridAPIKey   string
	RollbarToken     string

	// ReportRecipients receive an email whenever a file report is filed.
	ReportRecipients []mail.Address

	Server struct {
		Host string
		Addr string
	}

	Database struct {
		Engine     string
		Host       string
		Port       string
		Name       string
		User       string
		Password   string
		DisableTLS bool
	}

	Storage StorageConfig
}

// StorageConfig points at an S3-compatible blob store.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func (c *Config) DatabaseDSN() string {
	sslMode := "require"
	if c.Database.DisableTLS {
		sslMode = "disable"
	}
	parts := []string{
		"host=" + c.Database.Host,
		"port=" + c.Database.Port,
		"user=" + c.Database.User,
		"password=" + c.Database.Password,
		"dbname=" + c.Database.Name,
		"sslmode=" + sslMode,
		"timezone=utc",
	}
	return strings.Join(parts, " ")
}

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "CampuShare")
	v.SetDefault("build", "dev")
	v.SetDefault("secretKey", "w#8gh2ml)d$vu+q5x(7byz&0c_ej!9s*tkr4f-na6po3i%1m")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("frontendBaseURL", "http://localhost:3000")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("dbEngine", "postgres")
	v.SetDefault("dbHost", "localhost")
	v.SetDefault("dbPort", "5432")
	v.SetDefault("dbName", "campushare")
	v.SetDefault("dbUser", "campushare")
	v.SetDefault("storageBucket", "files")
	v.SetDefault("storageEndpoint", "localhost:9000")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Debug:           v.GetBool("debug"),
		TestMode:        v.GetBool("testMode"),
		Env:             env,
		Build:           v.GetString("build"),
		AppName:         v.GetString("appName"),
		SecretKey:       v.GetString("secretKey"),
		FrontendBaseURL: v.GetString("frontendBaseURL"),
		DefaultFromEmail: mail.Address{
			Name:    v.GetString("appName"),
			Address: v.GetString("defaultFromEmail"),
		},
		SendgridAPIKey: v.GetString("sendgridAPIKey"),
		RollbarToken:   v.GetString("rollbarToken"),
	}
	for _, addr := range strings.Split(v.GetString("reportRecipients"), ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			Conf.ReportRecipients = append(Conf.ReportRecipients, mail.Address{Address: addr})
		}
	}

	Conf.Server.Host = v.GetString("serverHost")
	Conf.Server.Addr = v.GetString("serverAddr")

	Conf.Database.Engine = v.GetString("dbEngine")
	Conf.Database.Host = v.GetString("dbHost")
	Conf.Database.Port = v.GetString("dbPort")
	Conf.Database.Name = v.GetString("dbName")
	Conf.Database.User = v.GetString("dbUser")
	Conf.Database.Password = v.GetString("dbPassword")
	Conf.Database.DisableTLS = v.GetBool("dbDisableTLS")

	Conf.Storage.Endpoint = v.GetString("storageEndpoint")
	Conf.Storage.AccessKey = v.GetString("storageAccessKey")
	Conf.Storage.SecretKey = v.GetString("storageSecretKey")
	Conf.Storage.Bucket = v.GetString("storageBucket")
	Conf.Storage.UseSSL = v.GetBool("storageUseSSL")
}
