// Command vfdctl drives a Shuttle front-panel VFD from the command
// line.
//
// Usage:
//
//	vfdctl [flags]
//
// Flags:
//
//	-config string      YAML configuration file
//	-text string        Write a line of text (max 20 characters)
//	-icon name=level    Set one light (repeatable), e.g. -icon tv=1
//	-volume int         Set the volume bar level (0-12)
//	-clear              Clear text, icons and volume before other actions
//	-interactive        Start an interactive shell after the one-shot actions
//	-trace string       Append a CBOR packet trace to this file
//	-dump-trace string  Print a recorded packet trace and exit
//	-dry-run            Print packets instead of opening a USB device
//	-log-level string   Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Show a message with the play icon and volume at 8
//	vfdctl -text "now playing" -icon play=1 -volume 8
//
//	# Interactive session against real hardware, tracing all packets
//	vfdctl -interactive -trace /tmp/vfd.cbor
//
//	# Inspect what was sent
//	vfdctl -dump-trace /tmp/vfd.cbor
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/shuttle-vfd/vfd-go/pkg/log"
	"github.com/shuttle-vfd/vfd-go/pkg/model"
	"github.com/shuttle-vfd/vfd-go/pkg/registry"
	"github.com/shuttle-vfd/vfd-go/pkg/transport"
	"github.com/shuttle-vfd/vfd-go/pkg/usbvfd"
	"github.com/shuttle-vfd/vfd-go/pkg/vfd"
	"github.com/shuttle-vfd/vfd-go/pkg/wire"
)

// iconFlag is one -icon name=level argument, parsed at flag time.
type iconFlag struct {
	icon  model.Icon
	level int
}

var (
	configPath  string
	text        string
	textSet     bool
	icons       []iconFlag
	volume      int
	clearAll    bool
	interactive bool
	tracePath   string
	dumpPath    string
	dryRun      bool
	logLevel    string
)

func init() {
	flag.StringVar(&configPath, "config", "", "YAML configuration file")
	flag.Func("text", "write a line of text (max 20 characters)", func(s string) error {
		if len(s) > wire.TextWidth {
			return fmt.Errorf("text longer than %d characters", wire.TextWidth)
		}
		text = s
		textSet = true
		return nil
	})
	flag.Func("icon", "set one light, e.g. -icon tv=1 (repeatable)", func(s string) error {
		name, levelStr, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf("want name=level, got %q", s)
		}
		icon, err := model.ParseIcon(name)
		if err != nil {
			return err
		}
		level, err := strconv.Atoi(levelStr)
		if err != nil {
			return fmt.Errorf("bad level %q: %w", levelStr, err)
		}
		icons = append(icons, iconFlag{icon: icon, level: level})
		return nil
	})
	flag.IntVar(&volume, "volume", -1, "set the volume bar level (0-12)")
	flag.BoolVar(&clearAll, "clear", false, "clear text, icons and volume first")
	flag.BoolVar(&interactive, "interactive", false, "start an interactive shell")
	flag.StringVar(&tracePath, "trace", "", "append a CBOR packet trace to this file")
	flag.StringVar(&dumpPath, "dump-trace", "", "print a recorded packet trace and exit")
	flag.BoolVar(&dryRun, "dry-run", false, "print packets instead of opening a USB device")
	flag.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vfdctl:", err)
		os.Exit(1)
	}
}

func run() error {
	if dumpPath != "" {
		return dumpTrace(dumpPath)
	}

	var cfg FileConfig
	if configPath != "" {
		var err error
		if cfg, err = loadFileConfig(configPath); err != nil {
			return err
		}
	}
	if logLevel == "info" && cfg.LogLevel != "" {
		logLevel = cfg.LogLevel
	}
	if tracePath == "" {
		tracePath = cfg.TracePath
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(logLevel),
	}))

	sender, closeSender, err := openSender(logger)
	if err != nil {
		return err
	}
	defer closeSender()

	var trace log.Logger
	if tracePath != "" {
		fl, err := log.NewFileLogger(tracePath)
		if err != nil {
			return fmt.Errorf("open trace: %w", err)
		}
		defer fl.Close()
		trace = fl
	}

	dev, err := vfd.New(vfd.Config{
		Sender: sender,
		Delay:  cfg.delay(),
		Logger: logger,
		Trace:  trace,
	})
	if err != nil {
		return err
	}
	defer dev.Close()

	if clearAll {
		if err := dev.Init(); err != nil {
			return err
		}
	}
	if err := applyStartup(dev, cfg); err != nil {
		return err
	}
	for _, ic := range icons {
		if err := dev.SetBrightness(ic.icon, ic.level); err != nil {
			return err
		}
	}
	if volume >= 0 {
		if err := dev.SetVolume(volume); err != nil {
			return err
		}
	}
	if textSet {
		if err := dev.SetText([]byte(text)); err != nil {
			return err
		}
	}

	if !interactive {
		return nil
	}

	reg := registry.NewInMemory()
	if err := dev.RegisterLights(reg); err != nil {
		return err
	}
	return runInteractive(dev, reg)
}

// openSender picks the transport: real hardware, or a packet printer
// for -dry-run.
func openSender(logger *slog.Logger) (transport.ControlSender, func(), error) {
	if dryRun {
		return transport.ControlSenderFunc(func(p wire.Packet) error {
			fmt.Printf("%-14s len=%d data=%s\n", p.Command(), p.Len(), hex.EncodeToString(p.Data()))
			return nil
		}), func() {}, nil
	}

	usb, err := usbvfd.Open()
	if err != nil {
		return nil, nil, err
	}
	logger.Info("vfd attached", "vendor", usbvfd.VendorID)
	return usb, func() { _ = usb.Close() }, nil
}

// applyStartup applies the config file's startup icons and text.
func applyStartup(dev *vfd.Device, cfg FileConfig) error {
	for name, level := range cfg.StartupIcons {
		icon, err := model.ParseIcon(name)
		if err != nil {
			return err
		}
		if err := dev.SetBrightness(icon, level); err != nil {
			return err
		}
	}
	if cfg.StartupText != "" {
		return dev.SetText([]byte(cfg.StartupText))
	}
	return nil
}

// dumpTrace prints a recorded CBOR packet trace.
func dumpTrace(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	events, err := log.ReadEvents(f)
	if err != nil && len(events) == 0 {
		return err
	}
	for _, event := range events {
		printEvent(os.Stdout, event)
	}
	if err != nil {
		return fmt.Errorf("trace truncated after %d events: %w", len(events), err)
	}
	return nil
}

func printEvent(w io.Writer, event log.Event) {
	status := "ok"
	if event.Error != nil {
		status = "error: " + event.Error.Message
	}
	if event.Packet == nil {
		fmt.Fprintf(w, "%s  %s  (no packet)  %s\n",
			event.Timestamp.Format("15:04:05.000"), event.DeviceID, status)
		return
	}
	fmt.Fprintf(w, "%s  %s  %-14s len=%d data=%s  %s\n",
		event.Timestamp.Format("15:04:05.000"),
		event.DeviceID,
		wire.Command(event.Packet.Command),
		event.Packet.Length,
		hex.EncodeToString(event.Packet.Data),
		status)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
