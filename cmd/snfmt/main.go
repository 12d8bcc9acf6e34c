package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"
	"golang.org/x/term"

	snfmt "github.com/snfmt/snfmt"
	"github.com/snfmt/snfmt/hostio"
)

func main() {
	var (
		format      = flag.String("f", "", "Format template")
		capacity    = flag.Int("n", 0, "Destination capacity in bytes (0 = size automatically)")
		wasmFile    = flag.String("wasm", "", "Run a wasm guest against the libc format bridge")
		entry       = flag.String("entry", "_start", "Guest entry function")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		hostio.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *wasmFile != "" {
		if err := runGuest(*wasmFile, *entry); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *format == "" {
		fmt.Fprintln(os.Stderr, "Usage: snfmt -f <template> [arg ...]")
		fmt.Fprintln(os.Stderr, "       snfmt -f <template> -n <capacity> [arg ...]")
		fmt.Fprintln(os.Stderr, "       snfmt -wasm <file.wasm> [-entry name]")
		fmt.Fprintln(os.Stderr, "       snfmt -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Arguments are kind:value pairs: int:-42 uint:7 str:hello")
		fmt.Fprintln(os.Stderr, "char:A ptr:0x1000 float:3.14 null")
		os.Exit(1)
	}

	if err := run(*format, *capacity, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(format string, capacity int, rawArgs []string) error {
	args, err := parseArgs(rawArgs)
	if err != nil {
		return err
	}

	// Mismatches still render deterministically; surface them anyway.
	if err := snfmt.Check(format, args...); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	if capacity <= 0 {
		fmt.Println(snfmt.Sprint(format, args...))
		return nil
	}

	buf := make([]byte, capacity)
	n := snfmt.Render(buf, format, args...)
	content := buf[:min(n, capacity-1)]
	fmt.Printf("%s\n", content)
	fmt.Printf("logical length: %d\n", n)
	if n >= capacity {
		fmt.Printf("truncated: %d byte(s) did not fit\n", n-len(content))
	}
	return nil
}

// parseArgs converts kind:value strings into tagged arguments.
func parseArgs(raw []string) ([]snfmt.Arg, error) {
	var args []snfmt.Arg
	for _, r := range raw {
		a, err := parseArg(r)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	return args, nil
}

func parseArg(r string) (snfmt.Arg, error) {
	if r == "null" {
		return snfmt.Null(), nil
	}
	kind, value, found := strings.Cut(r, ":")
	if !found {
		return snfmt.Arg{}, fmt.Errorf("argument %q: want kind:value", r)
	}
	switch kind {
	case "int":
		v, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return snfmt.Arg{}, fmt.Errorf("argument %q: %w", r, err)
		}
		return snfmt.Int(v), nil
	case "uint":
		v, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return snfmt.Arg{}, fmt.Errorf("argument %q: %w", r, err)
		}
		return snfmt.Uint(v), nil
	case "char":
		if len(value) != 1 {
			return snfmt.Arg{}, fmt.Errorf("argument %q: want a single character", r)
		}
		return snfmt.Char(value[0]), nil
	case "ptr":
		v, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return snfmt.Arg{}, fmt.Errorf("argument %q: %w", r, err)
		}
		return snfmt.Ptr(uintptr(v)), nil
	case "str":
		return snfmt.String(value), nil
	case "float":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return snfmt.Arg{}, fmt.Errorf("argument %q: %w", r, err)
		}
		return snfmt.Float(v), nil
	}
	return snfmt.Arg{}, fmt.Errorf("argument %q: unknown kind %q", r, kind)
}

// runGuest instantiates a wasm module with the formatting bridge and calls
// its entry function. Guest printf output goes to our stdout.
func runGuest(wasmFile, entry string) error {
	ctx := context.Background()

	data, err := os.ReadFile(wasmFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	bridge := hostio.NewBridge(os.Stdout)
	if _, err := bridge.Instantiate(ctx, r); err != nil {
		return fmt.Errorf("instantiate bridge: %w", err)
	}

	mod, err := r.Instantiate(ctx, data)
	if err != nil {
		return fmt.Errorf("instantiate guest: %w", err)
	}
	defer mod.Close(ctx)

	fn := mod.ExportedFunction(entry)
	if fn == nil {
		return fmt.Errorf("guest exports no %q function", entry)
	}
	if _, err := fn.Call(ctx); err != nil {
		return fmt.Errorf("call %s: %w", entry, err)
	}
	return nil
}
