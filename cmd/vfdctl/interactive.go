package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/shuttle-vfd/vfd-go/pkg/model"
	"github.com/shuttle-vfd/vfd-go/pkg/registry"
	"github.com/shuttle-vfd/vfd-go/pkg/vfd"
	"github.com/shuttle-vfd/vfd-go/pkg/wire"
)

// runInteractive drives the device from a readline shell. Light
// changes go through the registry, the same path an external framework
// would take.
func runInteractive(dev *vfd.Device, reg *registry.InMemory) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "vfd> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("create readline: %w", err)
	}
	defer rl.Close()

	fmt.Println("Interactive VFD shell. Type 'help' for commands.")

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "exit" || fields[0] == "quit" {
			return nil
		}
		if err := runCommand(dev, reg, fields); err != nil {
			fmt.Println("error:", err)
		}
	}
}

func runCommand(dev *vfd.Device, reg *registry.InMemory, fields []string) error {
	switch fields[0] {
	case "help":
		printHelp()
		return nil

	case "text":
		line := strings.Join(fields[1:], " ")
		if len(line) > wire.TextWidth {
			return fmt.Errorf("text longer than %d characters", wire.TextWidth)
		}
		return dev.SetText([]byte(line))

	case "icon":
		if len(fields) != 3 {
			return errors.New("usage: icon <name> <level>")
		}
		return setLight(reg, fields[1], fields[2])

	case "volume":
		if len(fields) != 2 {
			return errors.New("usage: volume <0-12>")
		}
		return setLight(reg, "volume", fields[1])

	case "clear":
		all := len(fields) > 1 && fields[1] == "all"
		return dev.Clear(all)

	case "show":
		fmt.Printf("text:   %q\n", strings.TrimSuffix(string(dev.Text()), "\n"))
		mask := dev.Mask()
		var lit []string
		for _, icon := range model.Icons() {
			if icon != model.IconVolume && mask.IconOn(icon.Bit()) {
				lit = append(lit, icon.String())
			}
		}
		fmt.Printf("icons:  %s\n", strings.Join(lit, " "))
		fmt.Printf("volume: %d\n", mask.Volume())
		return nil

	case "lights":
		for _, name := range reg.Names() {
			class, _ := reg.Lookup(name)
			fmt.Printf("%-12s max %d\n", name, class.MaxBrightness)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q (try 'help')", fields[0])
	}
}

// setLight resolves a light through the registry and applies the level
// via its registered setter.
func setLight(reg *registry.InMemory, name, levelStr string) error {
	level, err := strconv.Atoi(levelStr)
	if err != nil {
		return fmt.Errorf("bad level %q: %w", levelStr, err)
	}
	class, ok := reg.Lookup(name)
	if !ok {
		return fmt.Errorf("no light named %q", name)
	}
	if level < 0 || level > class.MaxBrightness {
		return fmt.Errorf("level %d out of range for %q (max %d)", level, name, class.MaxBrightness)
	}
	return class.BrightnessSet(level)
}

func printHelp() {
	fmt.Print(`Commands:
  text <line>          write a line of text (max 20 characters)
  icon <name> <0|1>    switch a binary icon
  volume <0-12>        set the volume bar
  clear [all]          clear text; 'all' also drops icons and volume
  show                 print the driver's view of the display
  lights               list registered lights
  exit                 leave the shell
`)
}
