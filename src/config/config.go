package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config holds the service configuration loaded from config.json.
type Config struct {
	Email struct {
		Server        string   `json:"server"`
		Username      string   `json:"username"`
		Password      string   `json:"password"`
		TargetSubject string   `json:"target_subject"`
		CheckInterval Duration `json:"check_interval"`
	} `json:"email"`

	DataDir    string `json:"data_dir"`
	OutDir     string `json:"out_dir"`
	SheetName  string `json:"sheet_name"`
	LogName    string `json:"log_name"`
	LogMaxSize string `json:"log_max_size"`
	WebhookURL string `json:"webhook_url"`

	SendEmail struct {
		Server   string `json:"server"`
		Username string `json:"username"`
		Password string `json:"password"`
		Subject  string `json:"subject"`
	} `json:"send_email"`
}

// CleanConfig holds the per-dataset cleaning rules loaded from cleanconfig.json.
type CleanConfig struct {
	DateColumns    []string `json:"date_columns"`
	DateLayout     string   `json:"date_layout"`
	BoolColumns    []string `json:"bool_columns"`
	TextColumns    []string `json:"text_columns"`
	NormalizeNames bool     `json:"normalize_names"`
	NAValues       []string `json:"na_values"`
}

var (
	once             sync.Once
	instance         *Config
	cleanCfgInstance *CleanConfig
	mu               sync.RWMutex
)

func LoadConfig(jsonFolder, jsonFile, cleanJsonFile string) (*Config, *CleanConfig, error) {
	var err error
	once.Do(func() {
		instance, cleanCfgInstance, err = loadConfigs(jsonFolder, jsonFile, cleanJsonFile)
	})
	return instance, cleanCfgInstance, err
}

func loadConfigs(jsonFolder, jsonFile, cleanJsonFile string) (*Config, *CleanConfig, error) {
	configFile := filepath.Join(jsonFolder, jsonFile)
	cleanConfigFile := filepath.Join(jsonFolder, cleanJsonFile)

	configData, err := readFile(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cleanConfigData, err := readFile(cleanConfigFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read clean config file: %w", err)
	}

	cfgChan := make(chan *Config, 1)
	ccfgChan := make(chan *CleanConfig, 1)
	errChan := make(chan error, 2)

	go parseConfig(configData, cfgChan, errChan)
	go parseCleanConfig(cleanConfigData, ccfgChan, errChan)

	cfg, ccfg, err := waitForResults(cfgChan, ccfgChan, errChan)
	if err != nil {
		return nil, nil, err
	}

	return cfg, ccfg, nil
}

func readFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("cannot read file %s: %w", filePath, err)
	}
	return data, nil
}

func parseConfig(data []byte, resultChan chan<- *Config, errChan chan<- error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		errChan <- fmt.Errorf("failed to parse Config: %w", err)
		return
	}
	resultChan <- &cfg
}

func parseCleanConfig(data []byte, resultChan chan<- *CleanConfig, errChan chan<- error) {
	var ccfg CleanConfig
	if err := json.Unmarshal(data, &ccfg); err != nil {
		errChan <- fmt.Errorf("failed to parse CleanConfig: %w", err)
		return
	}
	resultChan <- &ccfg
}

func waitForResults(
	cfgChan <-chan *Config,
	ccfgChan <-chan *CleanConfig,
	errChan <-chan error,
) (*Config, *CleanConfig, error) {
	var (
		cfg    *Config
		ccfg   *CleanConfig
		errors []error
	)

	for i := 0; i < 2; i++ {
		select {
		case c := <-cfgChan:
			cfg = c
		case d := <-ccfgChan:
			ccfg = d
		case err := <-errChan:
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return nil, nil, combineErrors(errors)
	}

	if cfg == nil || ccfg == nil {
		return nil, nil, fmt.Errorf("some configuration was not loaded")
	}

	return cfg, ccfg, nil
}

func combineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	msg := "configuration loading hit multiple errors:"
	for _, err := range errs {
		msg = fmt.Sprintf("%s\n- %v", msg, err)
	}
	return fmt.Errorf("%s", msg)
}

// Duration wraps time.Duration so config values can be written
// as strings like "5m" in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (cc *CleanConfig) GetDateLayout() string {
	mu.RLock()
	defer mu.RUnlock()
	if cc.DateLayout == "" {
		return "02/01/2006"
	}
	return cc.DateLayout
}

func (cc *CleanConfig) SetDateLayout(layout string) {
	mu.Lock()
	defer mu.Unlock()
	cc.DateLayout = layout
}

func (cc *CleanConfig) GetNAValues() []string {
	mu.RLock()
	defer mu.RUnlock()
	if len(cc.NAValues) == 0 {
		return []string{"", "NA", "N/A", "NaN", "null"}
	}
	return cc.NAValues
}
