package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"mmexport/internal/core"
	"mmexport/internal/daterange"
)

type Config struct {
	// Backup
	SourcePath string

	// Date selection
	StartDate string
	EndDate   string
	Month     string

	// Diagnostics
	DebugLevel int

	// AMQP (optional report publication)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets (optional report export)
	GoogleSpreadsheetID      string
	GoogleSheetName          string
	GoogleServiceAccountFile string
	GoogleServiceAccountJSON string
}

// Load reads the configuration from the environment. Command line flags
// override these values afterwards.
func Load() *Config {
	return &Config{
		SourcePath: getEnv("MMEXPORT_SOURCE", ""),

		StartDate: getEnv("MMEXPORT_START", ""),
		EndDate:   getEnv("MMEXPORT_END", ""),
		Month:     getEnv("MMEXPORT_MONTH", ""),

		DebugLevel: getEnvInt("MMEXPORT_DEBUG", 0),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "mmexport"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "expense_reports"),

		GoogleSpreadsheetID:      getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:          getEnv("GOOGLE_SHEET_NAME", "Gastos"),
		GoogleServiceAccountFile: getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", getEnv("GOOGLE_APPLICATION_CREDENTIALS", "")),
		GoogleServiceAccountJSON: getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
	}
}

// Query returns the date selection inputs.
func (c *Config) Query() daterange.Query {
	return daterange.Query{
		Start: c.StartDate,
		End:   c.EndDate,
		Month: c.Month,
	}
}

// AMQPEnabled reports whether the report is published to a broker.
func (c *Config) AMQPEnabled() bool {
	return c.AMQPURL != ""
}

// SheetsEnabled reports whether the report is appended to a spreadsheet.
func (c *Config) SheetsEnabled() bool {
	return c.GoogleSpreadsheetID != ""
}

// Validate validates the configuration. The returned error wraps
// core.ErrArgument.
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.SourcePath) == "" {
		errors = append(errors, "source backup file is required")
	}

	// A month overrides the explicit dates, which are then never parsed.
	if c.Month == "" {
		if c.StartDate != "" {
			if _, err := core.ParseDate(c.StartDate); err != nil {
				errors = append(errors, fmt.Sprintf("invalid start date '%s': must be YYYY-MM-DD", c.StartDate))
			}
		}
		if c.EndDate != "" {
			if _, err := core.ParseDate(c.EndDate); err != nil {
				errors = append(errors, fmt.Sprintf("invalid end date '%s': must be YYYY-MM-DD", c.EndDate))
			}
		}
	}

	if c.DebugLevel < 0 {
		errors = append(errors, fmt.Sprintf("invalid debug level %d: must not be negative", c.DebugLevel))
	}

	if c.AMQPEnabled() {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.SheetsEnabled() {
		if strings.TrimSpace(c.GoogleSheetName) == "" {
			errors = append(errors, "Google Sheet name is required when a spreadsheet ID is provided")
		}
		hasFile := c.GoogleServiceAccountFile != ""
		hasJSON := c.GoogleServiceAccountJSON != ""
		if !hasFile && !hasJSON {
			errors = append(errors, "either GOOGLE_SERVICE_ACCOUNT_FILE or GOOGLE_SERVICE_ACCOUNT_JSON must be provided for sheets export")
		}
		if hasFile && !hasJSON {
			if _, err := os.Stat(c.GoogleServiceAccountFile); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("Google service account file does not exist: %s", c.GoogleServiceAccountFile))
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%w: configuration validation failed:\n- %s", core.ErrArgument, strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
