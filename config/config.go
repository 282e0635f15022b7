package config

// Config holds the enquiry server configuration.
type Config struct {
	Server ServerConfig
	PDF    PDFConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string
	Port string
}

// PDFConfig holds render engine settings.
type PDFConfig struct {
	Engine          string
	ChromiumPath    string
	Headless        bool
	Args            []string
	Timeout         int
	WKHTMLTOPDFPath string
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: "3000",
		},
		PDF: PDFConfig{
			Engine:          "chromium",
			Headless:        true,
			Timeout:         30,
			WKHTMLTOPDFPath: "wkhtmltopdf",
		},
	}
}
