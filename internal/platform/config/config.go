// internal/platform/config/config.go
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Core   CoreConfig   `yaml:"core"`
	DNS    DNSConfig    `yaml:"dns"`
	HTTP   HTTPConfig   `yaml:"http"`
	Output OutputConfig `yaml:"output"`

	// Solo CLI, nunca desde fichero
	ConfigFile   string `yaml:"-"`
	PrintVersion bool   `yaml:"-"`
}

type CoreConfig struct {
	Target string `yaml:"target"`

	// ActiveOnly exige contenido HTTP antes de reportar un dominio resuelto
	ActiveOnly bool `yaml:"active_only"`

	// CheckCommon añade candidatos keyword.<common>.<tld> bajo cada TLD
	CheckCommon bool     `yaml:"check_common"`
	CommonTLDs  []string `yaml:"common_tlds"`

	TLDListURL    string `yaml:"tld_list_url"`
	SkipWildcards bool   `yaml:"skip_wildcards"`

	// MaxConcurrency acota resoluciones DNS simultáneas y el tamaño de lote
	MaxConcurrency int `yaml:"max_concurrency"`

	TimeoutS int `yaml:"timeout_s"` // 0 = sin timeout global
}

type DNSConfig struct {
	Servers   []string `yaml:"servers"`
	TimeoutMS int      `yaml:"timeout_ms"`
	Retries   int      `yaml:"retries"`
}

type HTTPConfig struct {
	TimeoutS  int `yaml:"timeout_s"`
	Retries   int `yaml:"retries"`
	RateLimit int `yaml:"rate_limit"` // requests/segundo (0 = sin límite)
}

type OutputConfig struct {
	Dir           string `yaml:"dir"`
	TableDisabled bool   `yaml:"no_table"`

	// JSONStdout duplica el JSON en stdout (para pipelines); el fichero
	// JSON se genera siempre
	JSONStdout bool `yaml:"json_stdout"`
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Core: CoreConfig{
			Target:         "",
			ActiveOnly:     true,
			CheckCommon:    true,
			CommonTLDs:     []string{"com", "info", "net", "org", "biz", "co", "edu", "gov", "mil"},
			TLDListURL:     "https://data.iana.org/TLD/tlds-alpha-by-domain.txt",
			SkipWildcards:  true,
			MaxConcurrency: 100,
			TimeoutS:       0,
		},
		DNS: DNSConfig{
			Servers:   []string{"8.8.8.8:53", "8.8.4.4:53", "1.1.1.1:53", "1.0.0.1:53"},
			TimeoutMS: 3000,
			Retries:   1,
		},
		HTTP: HTTPConfig{
			TimeoutS:  10,
			Retries:   1,
			RateLimit: 0,
		},
		Output: OutputConfig{
			Dir:           "tldhunt_out",
			TableDisabled: false,
		},
	}
}

// Load inicializa la configuración con precedencia creciente:
// defaults -> fichero YAML -> ENV -> flags CLI.
func Load() (Config, error) {
	cfg := DefaultConfig()

	// El path del fichero se resuelve antes de parsear flags para que
	// ENV y flags puedan sobreescribir lo que el fichero establezca.
	path := configPathFromArgs(os.Args[1:])
	if path == "" {
		path = getenv("TLDHUNT_CONFIG", "")
	}
	if path != "" {
		if err := loadFromFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	loadFromEnv(&cfg)
	loadFromFlags(&cfg)
	normalize(&cfg)

	return cfg, nil
}

// loadFromFile mezcla un fichero YAML sobre la configuración actual.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// configPathFromArgs localiza --config en los argumentos sin parsearlos.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	if v := getenv("TLDHUNT_TARGET", ""); v != "" {
		cfg.Core.Target = v
	}
	if v := getenv("TLDHUNT_ACTIVE_ONLY", ""); v != "" {
		cfg.Core.ActiveOnly = parseBool(v)
	}
	if v := getenv("TLDHUNT_CHECK_COMMON", ""); v != "" {
		cfg.Core.CheckCommon = parseBool(v)
	}
	if v := getenv("TLDHUNT_COMMON_TLDS", ""); v != "" {
		cfg.Core.CommonTLDs = parseList(v)
	}
	if v := getenv("TLDHUNT_TLD_LIST_URL", ""); v != "" {
		cfg.Core.TLDListURL = v
	}
	if v := getenv("TLDHUNT_SKIP_WILDCARDS", ""); v != "" {
		cfg.Core.SkipWildcards = parseBool(v)
	}
	if v := getenv("TLDHUNT_CONCURRENCY", ""); v != "" {
		cfg.Core.MaxConcurrency = parseInt(v, cfg.Core.MaxConcurrency)
	}
	if v := getenv("TLDHUNT_TIMEOUT", ""); v != "" {
		cfg.Core.TimeoutS = parseInt(v, cfg.Core.TimeoutS)
	}

	// DNS
	if v := getenv("TLDHUNT_DNS_SERVERS", ""); v != "" {
		cfg.DNS.Servers = parseList(v)
	}
	if v := getenv("TLDHUNT_DNS_TIMEOUT_MS", ""); v != "" {
		cfg.DNS.TimeoutMS = parseInt(v, cfg.DNS.TimeoutMS)
	}
	if v := getenv("TLDHUNT_DNS_RETRIES", ""); v != "" {
		cfg.DNS.Retries = parseInt(v, cfg.DNS.Retries)
	}

	// HTTP
	if v := getenv("TLDHUNT_HTTP_TIMEOUT", ""); v != "" {
		cfg.HTTP.TimeoutS = parseInt(v, cfg.HTTP.TimeoutS)
	}
	if v := getenv("TLDHUNT_HTTP_RETRIES", ""); v != "" {
		cfg.HTTP.Retries = parseInt(v, cfg.HTTP.Retries)
	}
	if v := getenv("TLDHUNT_HTTP_RATE_LIMIT", ""); v != "" {
		cfg.HTTP.RateLimit = parseInt(v, cfg.HTTP.RateLimit)
	}

	// Output
	if v := getenv("TLDHUNT_OUTPUT_DIR", ""); v != "" {
		cfg.Output.Dir = v
	}
	if v := getenv("TLDHUNT_OUTPUT_NO_TABLE", ""); v != "" {
		cfg.Output.TableDisabled = parseBool(v)
	}
	if v := getenv("TLDHUNT_OUTPUT_JSON_STDOUT", ""); v != "" {
		cfg.Output.JSONStdout = parseBool(v)
	}
}

// loadFromFlags parsea flags de CLI (overrides fichero y ENV).
func loadFromFlags(cfg *Config) {
	fs := pflag.CommandLine
	fs.Usage = PrintHelp

	fs.StringVarP(&cfg.Core.Target, "target", "t", cfg.Core.Target, "Dominio objetivo (e.g., example.com)")
	fs.BoolVarP(&cfg.Core.ActiveOnly, "active-only", "a", cfg.Core.ActiveOnly, "Reportar solo dominios con contenido HTTP")
	fs.BoolVar(&cfg.Core.CheckCommon, "check-common", cfg.Core.CheckCommon, "Incluir sub-TLDs comunes bajo cada TLD")
	fs.StringSliceVar(&cfg.Core.CommonTLDs, "common-tlds", cfg.Core.CommonTLDs, "Sub-TLDs comunes a combinar")
	fs.StringVar(&cfg.Core.TLDListURL, "tld-list", cfg.Core.TLDListURL, "URL de la lista de TLDs")
	fs.BoolVar(&cfg.Core.SkipWildcards, "skip-wildcards", cfg.Core.SkipWildcards, "Omitir zonas con DNS wildcard")
	fs.IntVarP(&cfg.Core.MaxConcurrency, "concurrency", "c", cfg.Core.MaxConcurrency, "Resoluciones DNS concurrentes máximas")
	fs.IntVarP(&cfg.Core.TimeoutS, "timeout", "T", cfg.Core.TimeoutS, "Timeout global en segundos (0 = sin timeout)")

	fs.StringSliceVar(&cfg.DNS.Servers, "dns-servers", cfg.DNS.Servers, "Servidores DNS (host:puerto)")

	fs.StringVarP(&cfg.Output.Dir, "out", "o", cfg.Output.Dir, "Directorio de salida")
	fs.BoolVarP(&cfg.Output.TableDisabled, "quiet", "q", cfg.Output.TableDisabled, "Desactivar salida en tabla (JSON siempre se genera)")
	fs.BoolVar(&cfg.Output.JSONStdout, "json-stdout", cfg.Output.JSONStdout, "Emitir el resultado JSON también por stdout")

	fs.StringVar(&cfg.ConfigFile, "config", "", "Fichero de configuración YAML")
	fs.BoolVarP(&cfg.PrintVersion, "version", "v", false, "Imprimir versión y salir")

	pflag.Parse()
}

func normalize(c *Config) {
	c.Core.Target = strings.TrimSpace(strings.ToLower(strings.TrimSuffix(c.Core.Target, ".")))
	if c.Core.MaxConcurrency < 1 {
		c.Core.MaxConcurrency = 1
	}
	if c.Core.TimeoutS < 0 {
		c.Core.TimeoutS = 0
	}
	for i, tld := range c.Core.CommonTLDs {
		c.Core.CommonTLDs[i] = strings.TrimSpace(strings.ToLower(tld))
	}
	if c.DNS.TimeoutMS < 1 {
		c.DNS.TimeoutMS = 3000
	}
	if c.DNS.Retries < 0 {
		c.DNS.Retries = 0
	}
	if c.HTTP.TimeoutS < 1 {
		c.HTTP.TimeoutS = 10
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "tldhunt_out"
	}
}

// ToJSON serializa la configuración a JSON (útil para debugging).
func (c Config) ToJSON() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Timeout devuelve el timeout global como time.Duration (0 = sin timeout).
func (c Config) Timeout() time.Duration {
	if c.Core.TimeoutS <= 0 {
		return 0
	}
	return time.Duration(c.Core.TimeoutS) * time.Second
}

// DNSTimeout devuelve el timeout por consulta DNS.
func (c Config) DNSTimeout() time.Duration {
	return time.Duration(c.DNS.TimeoutMS) * time.Millisecond
}

// HTTPTimeout devuelve el timeout por petición HTTP.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutS) * time.Second
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

func parseList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
