package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Company CompanyConfig
	Invoice InvoiceConfig
	Assets  AssetsConfig
	S3      S3Config
	Log     LogConfig
}

// CompanyConfig describes the issuer printed on every invoice.
type CompanyConfig struct {
	Name       string   `mapstructure:"name"`
	Tagline    string   `mapstructure:"tagline"`
	Address    []string `mapstructure:"address"`
	Phone      string   `mapstructure:"phone"`
	Email      string   `mapstructure:"email"`
	Website    string   `mapstructure:"website"`
	GSTIN      string   `mapstructure:"gstin"`
	PAN        string   `mapstructure:"pan"`
	HomeState  string   `mapstructure:"home_state"`
	Membership string   `mapstructure:"membership"`
	Signatory  string   `mapstructure:"signatory"`
}

// InvoiceConfig holds defaults applied to a fresh invoice form.
type InvoiceConfig struct {
	DefaultGSTRate float64 `mapstructure:"default_gst_rate"`
	DefaultTerms   string  `mapstructure:"default_terms"`
	OutputDir      string  `mapstructure:"output_dir"`
}

// AssetsConfig holds header/footer art settings.
type AssetsConfig struct {
	Source string `mapstructure:"source"`
	Dir    string `mapstructure:"dir"`
	Header string `mapstructure:"header"`
	Footer string `mapstructure:"footer"`
}

// S3Config holds AWS S3 settings used when assets are fetched from a bucket.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Asset sources.
const (
	AssetSourceFile = "file"
	AssetSourceS3   = "s3"
)

// Load reads configuration from environment variables with the ADINVOICE_ prefix.
// If configFile is non-empty it is read first and env vars override it.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ADINVOICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Company defaults
	v.SetDefault("company.name", "SHREE GANESH ADVERTISING")
	v.SetDefault("company.tagline", "Outdoor Media | Hoardings | Unipoles | Bus Shelters")
	v.SetDefault("company.address", "Shop No. 12, Pandri Main Road; Raipur, Chhattisgarh - 492001")
	v.SetDefault("company.phone", "+91 98261 00000")
	v.SetDefault("company.email", "accounts@shreeganeshads.in")
	v.SetDefault("company.website", "www.shreeganeshads.in")
	v.SetDefault("company.gstin", "22AKJPD0941N4Z8")
	v.SetDefault("company.pan", "AKJPD0941N")
	v.SetDefault("company.home_state", "Chhattisgarh")
	v.SetDefault("company.membership", "Member: Indian Outdoor Advertising Association")
	v.SetDefault("company.signatory", "Authorised Signatory")

	// Invoice defaults
	v.SetDefault("invoice.default_gst_rate", 18.0)
	v.SetDefault("invoice.default_terms", strings.Join([]string{
		"Payment is due within 30 days of the invoice date.",
		"Interest @ 18% p.a. will be charged on overdue payments.",
		"Subject to Raipur jurisdiction.",
	}, "\n"))
	v.SetDefault("invoice.output_dir", ".")

	// Assets defaults
	v.SetDefault("assets.source", AssetSourceFile)
	v.SetDefault("assets.dir", "assets")
	v.SetDefault("assets.header", "header-image.jpg")
	v.SetDefault("assets.footer", "footer-image.jpg")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.prefix", "")
	v.SetDefault("s3.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"company.name":             "ADINVOICE_COMPANY_NAME",
		"company.tagline":          "ADINVOICE_COMPANY_TAGLINE",
		"company.address":          "ADINVOICE_COMPANY_ADDRESS",
		"company.phone":            "ADINVOICE_COMPANY_PHONE",
		"company.email":            "ADINVOICE_COMPANY_EMAIL",
		"company.website":          "ADINVOICE_COMPANY_WEBSITE",
		"company.gstin":            "ADINVOICE_COMPANY_GSTIN",
		"company.pan":              "ADINVOICE_COMPANY_PAN",
		"company.home_state":       "ADINVOICE_COMPANY_HOME_STATE",
		"company.membership":       "ADINVOICE_COMPANY_MEMBERSHIP",
		"company.signatory":        "ADINVOICE_COMPANY_SIGNATORY",
		"invoice.default_gst_rate": "ADINVOICE_INVOICE_DEFAULT_GST_RATE",
		"invoice.default_terms":    "ADINVOICE_INVOICE_DEFAULT_TERMS",
		"invoice.output_dir":       "ADINVOICE_INVOICE_OUTPUT_DIR",
		"assets.source":            "ADINVOICE_ASSETS_SOURCE",
		"assets.dir":               "ADINVOICE_ASSETS_DIR",
		"assets.header":            "ADINVOICE_ASSETS_HEADER",
		"assets.footer":            "ADINVOICE_ASSETS_FOOTER",
		"s3.region":                "ADINVOICE_S3_REGION",
		"s3.bucket":                "ADINVOICE_S3_BUCKET",
		"s3.prefix":                "ADINVOICE_S3_PREFIX",
		"s3.endpoint":              "ADINVOICE_S3_ENDPOINT",
		"s3.access_key":            "ADINVOICE_S3_ACCESS_KEY",
		"s3.secret_key":            "ADINVOICE_S3_SECRET_KEY",
		"log.level":                "ADINVOICE_LOG_LEVEL",
		"log.format":               "ADINVOICE_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{}

	cfg.Company = CompanyConfig{
		Name:       v.GetString("company.name"),
		Tagline:    v.GetString("company.tagline"),
		Address:    splitList(v.Get("company.address")),
		Phone:      v.GetString("company.phone"),
		Email:      v.GetString("company.email"),
		Website:    v.GetString("company.website"),
		GSTIN:      strings.ToUpper(v.GetString("company.gstin")),
		PAN:        strings.ToUpper(v.GetString("company.pan")),
		HomeState:  v.GetString("company.home_state"),
		Membership: v.GetString("company.membership"),
		Signatory:  v.GetString("company.signatory"),
	}
	cfg.Invoice = InvoiceConfig{
		DefaultGSTRate: v.GetFloat64("invoice.default_gst_rate"),
		DefaultTerms:   v.GetString("invoice.default_terms"),
		OutputDir:      v.GetString("invoice.output_dir"),
	}
	cfg.Assets = AssetsConfig{
		Source: strings.ToLower(v.GetString("assets.source")),
		Dir:    v.GetString("assets.dir"),
		Header: v.GetString("assets.header"),
		Footer: v.GetString("assets.footer"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Prefix:    v.GetString("s3.prefix"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail deep inside an export.
func (c *Config) Validate() error {
	switch c.Assets.Source {
	case AssetSourceFile:
	case AssetSourceS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("assets.source is s3 but s3.bucket is empty")
		}
	default:
		return fmt.Errorf("unknown assets.source %q (allowed: file, s3)", c.Assets.Source)
	}
	if c.Invoice.DefaultGSTRate < 0 {
		return fmt.Errorf("invoice.default_gst_rate must not be negative")
	}
	return nil
}

// splitList accepts both a YAML/JSON list and a single semicolon-separated string.
func splitList(raw interface{}) []string {
	var items []string
	switch val := raw.(type) {
	case string:
		items = strings.Split(val, ";")
	case []string:
		items = val
	case []interface{}:
		for _, item := range val {
			items = append(items, fmt.Sprint(item))
		}
	}
	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
