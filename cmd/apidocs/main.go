package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnana997/apidocs/pkg/generator"
	mcpserver "github.com/gnana997/apidocs/pkg/mcp"
	"github.com/gnana997/apidocs/pkg/reference"
	"github.com/gnana997/apidocs/pkg/source"
	"github.com/gnana997/apidocs/pkg/util"
)

const version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "build":
		return runBuild(args[1:], false)
	case "watch":
		return runBuild(args[1:], true)
	case "serve":
		return runServe(args[1:])
	case "inspect":
		return runInspect(args[1:])
	case "version":
		fmt.Printf("apidocs %s\n", version)
		return 0
	case "help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		return 1
	}
}

// buildFlags holds the flags shared by build and watch.
type buildFlags struct {
	root         string
	out          string
	library      string
	formatConfig string
	systemDir    string
	logLevel     string
	workers      int
}

func parseBuildFlags(name string, args []string) (*buildFlags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &buildFlags{}
	fs.StringVar(&f.root, "root", "", "source root to scan")
	fs.StringVar(&f.out, "out", "", "output directory for API pages")
	fs.StringVar(&f.library, "library", "", "library name recorded in pages.json")
	fs.StringVar(&f.formatConfig, "format-config", "", "path to the JSON format config")
	fs.StringVar(&f.systemDir, "system-dir", "", "directory whose components are documented as system components")
	fs.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.IntVar(&f.workers, "workers", 0, "extraction worker count (0 = auto)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// newGenerator assembles the generator config from flags and the project
// config file, sets up logging, and loads the system component list.
func newGenerator(f *buildFlags) (*generator.Generator, string, error) {
	proj, err := loadProjectConfig()
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", projectConfigPath, err)
	}
	if proj == nil {
		proj = &ProjectConfig{}
	}

	logCfg := util.DefaultLoggerConfig()
	logCfg.Level = util.LogLevel(resolve(f.logLevel, proj.LogLevel, string(util.LevelInfo)))
	logger := util.NewLogger(logCfg)
	util.SetDefault(logger)

	cfg := generator.DefaultConfig()
	cfg.Library = resolve(f.library, proj.Library, "unknown")
	cfg.OutputDir = resolve(f.out, proj.OutputDir, "api-docs")
	cfg.FormatConfigPath = resolve(f.formatConfig, proj.FormatConfigPath, ".apidocsrc.json")
	if len(proj.Include) > 0 {
		cfg.Include = proj.Include
	}
	if len(proj.Exclude) > 0 {
		cfg.Exclude = proj.Exclude
	}
	if f.workers > 0 {
		cfg.Workers = f.workers
	} else if proj.Workers > 0 {
		cfg.Workers = proj.Workers
	}

	if systemDir := resolve(f.systemDir, proj.SystemDir, ""); systemDir != "" {
		names, err := source.SystemComponents(systemDir)
		if err != nil {
			return nil, "", fmt.Errorf("failed to list system components: %w", err)
		}
		cfg.SystemComponents = names
	}

	root := resolve(f.root, proj.Root, ".")
	return generator.New(cfg, logger), root, nil
}

func runBuild(args []string, watch bool) int {
	name := "build"
	if watch {
		name = "watch"
	}
	f, err := parseBuildFlags(name, args)
	if err != nil {
		return 1
	}

	gen, root, err := newGenerator(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer gen.Close()

	if watch {
		return runWatch(gen, root)
	}

	_, stats, err := gen.Build(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		return 1
	}

	fmt.Printf("Built %d component page(s) and %d hook page(s) in %dms\n",
		stats.ComponentsBuilt, stats.HooksBuilt, stats.TotalTimeMs)
	if stats.FilesSkipped > 0 {
		fmt.Printf("Skipped %d ignored file(s)\n", stats.FilesSkipped)
	}
	if stats.FilesFailed > 0 {
		fmt.Fprintf(os.Stderr, "%d file(s) failed, see log for details\n", stats.FilesFailed)
		return 1
	}
	return 0
}

func runWatch(gen *generator.Generator, root string) int {
	w, err := generator.NewWatcher(gen, generator.DefaultWatchOptions(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	if err := w.Start(root); err != nil {
		fmt.Fprintf(os.Stderr, "watch failed: %v\n", err)
		return 1
	}
	defer w.Stop()

	fmt.Printf("Watching %s for changes (Ctrl-C to stop)\n", root)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	return 0
}

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	pages := fs.String("pages", "", "path to the generated pages.json")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	proj, err := loadProjectConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", projectConfigPath, err)
		return 1
	}
	if proj == nil {
		proj = &ProjectConfig{}
	}
	pagesPath := resolve(*pages, proj.PagesPath, "api-docs/pages.json")

	qs, err := reference.LoadAndQuery(pagesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load reference: %v\n", err)
		return 1
	}

	logger := util.NewLogger(util.DefaultLoggerConfig())
	srv := mcpserver.NewServer(qs, logger)
	if err := srv.ServeStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		return 1
	}
	return 0
}

func runInspect(args []string) int {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	pages := fs.String("pages", "", "path to the generated pages.json")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: apidocs inspect [--pages <file>] <name>")
		return 1
	}
	name := fs.Arg(0)

	proj, err := loadProjectConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", projectConfigPath, err)
		return 1
	}
	if proj == nil {
		proj = &ProjectConfig{}
	}
	pagesPath := resolve(*pages, proj.PagesPath, "api-docs/pages.json")

	qs, err := reference.LoadAndQuery(pagesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load reference: %v\n", err)
		return 1
	}

	if comp, ok := qs.GetComponent(name); ok {
		printComponentHuman(comp)
		return 0
	}
	if hook, ok := qs.GetHook(name); ok {
		printHookHuman(hook)
		return 0
	}

	fmt.Fprintf(os.Stderr, "no component or hook named %q in %s\n", name, pagesPath)
	return 1
}

func printUsage() {
	fmt.Println("Usage: apidocs <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  build      Generate API reference pages from component sources")
	fmt.Println("  watch      Rebuild pages continuously as sources change")
	fmt.Println("  serve      Start the MCP server over a generated reference")
	fmt.Println("  inspect    Print a component's or hook's API page")
	fmt.Println("  version    Print version")
	fmt.Println("  help       Show this help message")
}
