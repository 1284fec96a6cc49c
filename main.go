package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/robfig/cron"

	"TidyTable/src/cleaning"
	"TidyTable/src/config"
	"TidyTable/src/datapush"
	"TidyTable/src/datasource/email"
	"TidyTable/src/datasource/file"
	"TidyTable/src/storage"
	"TidyTable/src/utils"
)

func main() {
	cfg, ccfg, err := config.LoadConfig("./config", "config.json", "cleanconfig.json")
	if err != nil {
		log.Fatal("failed to load configuration:", err)
	}

	logger, err := storage.NewLogger(cfg.LogName)
	if err != nil {
		log.Fatal("failed to initialize logger:", err)
	}
	defer logger.Close()
	setupSignalHandler(logger, cfg)

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		log.Fatal("failed to create output directory:", err)
	}

	pipeline := cleaning.NewPipeline(ccfg)
	pusher := datapush.NewPusher(cfg.WebhookURL)

	// clean whatever is already in the data directory
	tables, err := file.ScanDir(cfg.DataDir, cfg.SheetName, ccfg.GetNAValues())
	if err != nil {
		logger.Error("initial scan failed: " + err.Error())
	}
	for name, df := range tables {
		processTable(name, df, cfg, pipeline, pusher, logger)
	}

	// periodic mailbox check for new exports
	emailClient := email.NewClient(cfg.Email.Server, cfg.Email.Username, cfg.Email.Password)
	handler := email.NewAttachmentHandler(cfg.Email.TargetSubject, cfg.DataDir)

	c := cron.New()
	interval := time.Duration(cfg.Email.CheckInterval)
	cronSpec := fmt.Sprintf("@every %s", interval)

	err = c.AddFunc(cronSpec, func() {
		newEmail, err := email.CheckAndProcessEmails(emailClient, cfg.Email.TargetSubject, logger)
		if err != nil {
			logger.Error("mailbox check failed: " + err.Error())
			return
		}
		if newEmail == nil {
			return
		}

		// saved attachments land in the data directory, where the
		// monitor picks them up
		saved, err := handler.Handle(newEmail)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to handle mail (UID %d): %v", newEmail.UID, err))
		}
		for _, path := range saved {
			logger.Info("saved attachment: " + path)
		}
		logger.CheckRotate(cfg)
	})
	if err != nil {
		logger.Error("failed to schedule mailbox check: " + err.Error())
		return
	}
	c.Start()
	defer c.Stop()

	// clean new files as they land in the data directory
	monitor, err := file.NewMonitor(cfg.DataDir)
	if err != nil {
		logger.Error("failed to create data directory monitor: " + err.Error())
		return
	}
	defer monitor.Close()

	logger.Info(fmt.Sprintf("watching %s (mailbox check every %v)", cfg.DataDir, interval))

	err = monitor.Watch(func(path string) {
		df, err := file.LoadTable(path, cfg.SheetName, ccfg.GetNAValues())
		if err != nil {
			logger.Error("failed to load " + path + ": " + err.Error())
			return
		}
		processTable(filepath.Base(path), df, cfg, pipeline, pusher, logger)
	})
	if err != nil {
		logger.Error("monitoring stopped: " + err.Error())
	}
}

// processTable runs the cleaning pipeline over one loaded table, saves
// the cleaned copy and pushes the report.
func processTable(name string, df dataframe.DataFrame, cfg *config.Config, pipeline *cleaning.Pipeline, pusher *datapush.Pusher, logger *storage.Logger) {
	cleaned, report, err := pipeline.Run(df, name)
	if err != nil {
		logger.Error("cleaning failed for " + name + ": " + err.Error())
		return
	}

	outPath := cleanedPath(cfg.OutDir, name)
	var saveErr error
	if strings.EqualFold(filepath.Ext(outPath), ".xlsx") {
		saveErr = utils.SaveXLSX(cleaned, outPath)
	} else {
		saveErr = utils.SaveCSV(cleaned, outPath)
	}
	if saveErr != nil {
		logger.Error(saveErr.Error())
		return
	}
	logger.Info("cleaned table saved to " + outPath)

	if err := pusher.PushReport("TidyTable: "+report.Name, report.Markdown()); err != nil {
		logger.Warning(err.Error())
	}
	mailReport(cfg, report, outPath, logger)
}

// mailReport mails the cleaned file back with the run report as body.
// Skipped when no outgoing server is configured; failures only warn so
// a broken SMTP setup never blocks the cleaning itself.
func mailReport(cfg *config.Config, report *cleaning.Report, outPath string, logger *storage.Logger) {
	if cfg.SendEmail.Server == "" {
		return
	}
	if err := email.SendReport(cfg, report.Markdown(), outPath); err != nil {
		logger.Warning(err.Error())
	}
}

// cleanedPath maps a source table name to its cleaned counterpart in
// the output directory. Names without an extension save as CSV.
func cleanedPath(outDir, srcName string) string {
	base := filepath.Base(srcName)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".csv"
	}
	return filepath.Join(outDir, name+"_clean"+ext)
}

func setupSignalHandler(logger *storage.Logger, cfg *config.Config) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		for sig := range sigChan {
			switch sig {
			case syscall.SIGINT, syscall.SIGTERM:
				logger.Info("received signal " + sig.String() + ", shutting down")
				logger.Close()
				os.Exit(0)
			case syscall.SIGHUP:
				rotated := cfg.LogName + "." + time.Now().Format("20060102150405")
				if err := os.Rename(cfg.LogName, rotated); err == nil {
					if err := logger.Reopen(cfg.LogName); err != nil {
						log.Printf("failed to rotate logs: %v", err)
					}
				}
			}
		}
	}()
}
