package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/mcapi/internal/constants"
	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
	"github.com/fivetwenty-io/mcapi/pkg/mcclient"
)

// Configuration keys shared by flags, the config file and MCAPI_* variables.
const (
	KeyAPIKey      = "api_key"
	KeyAPIEndpoint = "api_endpoint"
	KeyOutput      = "output"
	KeyNATSURL     = "nats_url"
)

const userAgent = "mcapi-cli/3"

// newClient builds an API client from the merged flag, env and file
// configuration.
func newClient(ctx context.Context) (mcapi.Client, error) {
	apiKey := viper.GetString(KeyAPIKey)
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	config := &mcapi.Config{
		APIKey:      apiKey,
		APIEndpoint: viper.GetString(KeyAPIEndpoint),
		UserAgent:   userAgent,
	}

	if viper.GetBool("verbose") {
		logger := NewStderrLogger(os.Stderr)
		config.Logger = logger
		config.Debug = true
		config.Interceptors = mcapi.NewInterceptorChain().
			AddRequestInterceptor(mcapi.RequestIDInterceptor()).
			AddRequestInterceptor(mcapi.LoggingInterceptor(logger)).
			AddResponseInterceptor(mcapi.LoggingResponseInterceptor(logger))
	}

	if natsURL := viper.GetString(KeyNATSURL); natsURL != "" {
		config.Cache = &mcapi.CacheConfig{
			Type: mcapi.CacheTypeTiered,
			NATS: &mcapi.NATSKVConfig{URL: natsURL, Bucket: constants.DefaultNATSBucket},
		}
	}

	client, err := mcclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// commandContext returns the command context, or a background context when
// the command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// outputFormat returns the selected output format.
func outputFormat() string {
	return strings.ToLower(viper.GetString(KeyOutput))
}

// render writes data as json or yaml, or calls table for the default format.
func render[T any](w io.Writer, data T, table func(io.Writer) error) error {
	switch outputFormat() {
	case constants.FormatJSON:
		return renderJSON(w, data)
	case constants.FormatYAML:
		return renderYAML(w, data)
	default:
		return table(w)
	}
}

func renderJSON[T any](w io.Writer, data T) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

func renderYAML[T any](w io.Writer, data T) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// renderRows renders a table with the given header and rows.
func renderRows(w io.Writer, header []string, rows [][]string) error {
	cells := make([]any, 0, len(header))
	for _, title := range header {
		cells = append(cells, title)
	}

	table := tablewriter.NewWriter(w)
	table.Header(cells...)

	for _, row := range rows {
		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderProperties renders a two column property table.
func renderProperties(w io.Writer, rows [][]string) error {
	return renderRows(w, []string{"Property", "Value"}, rows)
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// maskAPIKey keeps the data center suffix visible.
func maskAPIKey(key string) string {
	if key == "" {
		return constants.NotAvailable
	}

	if index := strings.LastIndex(key, "-"); index >= 0 {
		return constants.MaskedSecret + key[index:]
	}

	return constants.MaskedSecret
}

// readPayload decodes a json or yaml file into T, picking the codec from the
// file extension.
func readPayload[T any](path string) (*T, error) {
	if path == "" {
		return nil, constants.ErrPayloadFileRequired
	}

	// path is supplied by the operator running the CLI
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading payload file: %w", err)
	}

	var payload T

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &payload)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &payload)
	default:
		return nil, fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, filepath.Ext(path))
	}

	if err != nil {
		return nil, fmt.Errorf("decoding payload file %s: %w", path, err)
	}

	return &payload, nil
}

// pageParams builds query params for a single page listing.
func pageParams(count, offset int) *mcapi.QueryParams {
	return mcapi.NewQueryParams().WithCount(count).WithOffset(offset)
}

// StderrLogger implements mcapi.Logger with one line per message.
type StderrLogger struct {
	w io.Writer
}

// NewStderrLogger creates a logger writing to w.
func NewStderrLogger(w io.Writer) *StderrLogger {
	return &StderrLogger{w: w}
}

var _ mcapi.Logger = (*StderrLogger)(nil)

func (l *StderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *StderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *StderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *StderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

func (l *StderrLogger) log(level, msg string, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var line strings.Builder

	line.WriteString("[" + level + "] " + msg)

	for _, key := range keys {
		fmt.Fprintf(&line, " %s=%v", key, fields[key])
	}

	line.WriteString("\n")

	_, _ = io.WriteString(l.w, line.String())
}
