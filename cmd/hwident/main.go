package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sentinel/hwident/internal/config"
	"github.com/sentinel/hwident/internal/hwinfo"
)

var Version = "1.0.0"

var (
	configPath      = flag.String("config", "", "Path to the config file")
	namespace       = flag.String("namespace", "", `WMI namespace to query (default root\cimv2)`)
	fingerprintOnly = flag.Bool("fingerprint", false, "Print only the hardware fingerprint")
	jsonOutput      = flag.Bool("json", false, "Print the full report as JSON")
	logPath         = flag.String("log", "", "Append logs to this file")
	showVersion     = flag.Bool("version", false, "Show version information")
)

// report is the envelope written for a full collection.
type report struct {
	ReportID    string               `json:"report_id"`
	ClientID    string               `json:"client_id,omitempty"`
	CollectedAt time.Time            `json:"collected_at"`
	Host        *hwinfo.HostInfo     `json:"host,omitempty"`
	Hardware    *hwinfo.HardwareInfo `json:"hardware"`
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("hwident v%s\n", Version)
		fmt.Printf("OS: %s\n", runtime.GOOS)
		fmt.Printf("Arch: %s\n", runtime.GOARCH)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logFile := *logPath
	if logFile == "" {
		logFile = cfg.LogFile
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			log.SetOutput(f)
			defer f.Close()
		}
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	ns := *namespace
	if ns == "" {
		ns = cfg.Namespace
	}

	querier := hwinfo.NewPlatformQuerier(ns)
	if err := querier.Initialize(); err != nil {
		log.Printf("Initialize failed: %v", err)
		fmt.Fprintf(os.Stderr, "Failed to initialize hardware query session: %v\n", err)
		os.Exit(1)
	}
	defer querier.Cleanup()

	id := hwinfo.New(querier)

	if *fingerprintOnly {
		fp, err := id.GetFingerprint()
		if err != nil {
			log.Printf("GetFingerprint failed: %v", err)
			fmt.Fprintf(os.Stderr, "Failed to compute fingerprint: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(fp)
		return
	}

	hw, err := id.GetAll()
	if err != nil {
		log.Printf("GetAll failed: %v", err)
		fmt.Fprintf(os.Stderr, "Failed to collect hardware info: %v\n", err)
		os.Exit(1)
	}

	hostInfo, err := hwinfo.CollectHost()
	if err != nil {
		log.Printf("CollectHost failed: %v", err)
	}

	if *jsonOutput {
		r := &report{
			ReportID:    uuid.New().String(),
			ClientID:    cfg.ClientID,
			CollectedAt: time.Now().UTC(),
			Host:        hostInfo,
			Hardware:    hw,
		}
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode report: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	if hostInfo != nil {
		fmt.Printf("Host:               %s (%s %s)\n", hostInfo.Hostname, hostInfo.Platform, hostInfo.PlatformVersion)
	}
	fmt.Printf("CPU ID:             %s\n", hw.CPUID)
	fmt.Printf("Motherboard Serial: %s\n", hw.MotherboardSerial)
	fmt.Printf("BIOS Serial:        %s\n", hw.BiosSerial)
	fmt.Printf("Disk Serials:       %s\n", strings.Join(hw.DiskSerials, ", "))
	fmt.Printf("MAC Addresses:      %s\n", strings.Join(hw.MACAddresses, ", "))
	if hw.MachineGUID != "" {
		fmt.Printf("Machine GUID:       %s\n", hw.MachineGUID)
	}
	fmt.Printf("Fingerprint:        %s\n", hw.Fingerprint)
}
