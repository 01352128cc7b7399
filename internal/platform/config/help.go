// internal/platform/config/help.go
package config

import (
	"fmt"
	"os"
	"runtime"
)

const helpText = `
tldhunt - Sibling Domain Enumerator

USAGE:
  tldhunt -t <domain> [options]

IMPORTANT:
  Use double dash (--) for long flag names: --target, --concurrency
  Use single dash (-) for short flags: -t, -c, -a

  ❌ WRONG:  tldhunt -target example.com
  ✓  RIGHT:  tldhunt --target example.com
  ✓  RIGHT:  tldhunt -t example.com

CORE OPTIONS:
  -t, --target string        Target domain (required, e.g., example.com)
  -a, --active-only          Only report domains serving HTTP content (default: true)
  -c, --concurrency int      Max concurrent DNS resolutions (default: 100)
  -T, --timeout int          Global timeout in seconds, 0=no timeout (default: 0)
  -o, --out string           Output directory (default: "tldhunt_out")

CANDIDATE OPTIONS:
  --check-common             Also try common sub-TLDs under every TLD (default: true)
  --common-tlds strings      Comma-separated sub-TLD list (default: com,info,net,org,biz,co,edu,gov,mil)
  --tld-list string          TLD list URL (default: IANA tlds-alpha-by-domain.txt)
  --skip-wildcards           Skip zones with wildcard DNS (default: true)

DNS OPTIONS:
  --dns-servers strings      Resolvers as host:port (default: 8.8.8.8:53,8.8.4.4:53,1.1.1.1:53,1.0.0.1:53)

OUTPUT OPTIONS:
  -q, --quiet                Disable table output, JSON only (default: false)
  --json-stdout              Also emit the JSON result on stdout (default: false)

INFO:
  --config string            YAML configuration file
  -v, --version              Print version information and exit
  -h, --help                 Show this help message

EXAMPLES:
  Basic hunt:
    tldhunt -t example.com

  Report every resolving name, content or not:
    tldhunt -t example.com --active-only=false

  Lower concurrency for a constrained resolver:
    tldhunt -t example.com -c 20

  Quiet mode (JSON output only):
    tldhunt -t example.com -q

  Pipeline mode (compact JSON on stdout):
    tldhunt -t example.com -q --json-stdout

  Custom resolvers:
    tldhunt -t example.com --dns-servers 9.9.9.9:53

ENVIRONMENT VARIABLES:
  Most flags can be set via environment variables with TLDHUNT_ prefix:

  TLDHUNT_TARGET                 Target domain
  TLDHUNT_ACTIVE_ONLY=false      Report resolving names without probing content
  TLDHUNT_CONCURRENCY=50         Max concurrent resolutions
  TLDHUNT_TIMEOUT=300            Global timeout in seconds
  TLDHUNT_OUTPUT_DIR=/path       Output directory
  TLDHUNT_DNS_SERVERS=1.1.1.1:53 Comma-separated resolvers
  TLDHUNT_CONFIG=/path/cfg.yaml  Configuration file

  Note: CLI flags override environment variables, which override the file.

OUTPUT:
  tldhunt generates JSON output in the specified directory:
  - Full run results with discoveries, warnings, and metadata
  - Table summary to stdout (unless --quiet)
`

// PrintHelp prints the custom help message and exits.
func PrintHelp() {
	fmt.Fprint(os.Stdout, helpText)
	os.Exit(0)
}

// PrintVersion prints version information and exits.
func PrintVersion(version, commit, date string) {
	fmt.Printf("tldhunt %s\n", version)
	fmt.Printf("  Commit:  %s\n", commit)
	fmt.Printf("  Built:   %s\n", date)
	fmt.Printf("  Go:      %s\n", getGoVersion())
	os.Exit(0)
}

func getGoVersion() string {
	return runtime.Version()
}
