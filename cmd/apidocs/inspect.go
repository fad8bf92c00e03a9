package main

import (
	"fmt"
	"strings"

	"github.com/gnana997/apidocs/pkg/reference"
)

const maxWidth = 80

// printComponentHuman prints a human-readable component page to stdout.
func printComponentHuman(comp *reference.ComponentPage) {
	header := comp.Name
	if comp.PrefixedName != "" {
		header = fmt.Sprintf("%s  (%s)", comp.Name, comp.PrefixedName)
	}
	fmt.Printf("%s  [%s]\n", header, comp.Package)
	fmt.Printf("  %s\n", comp.Pathname)

	if comp.Description != "" {
		fmt.Println()
		printWrapped(comp.Description, 0, maxWidth)
	}

	fmt.Println()
	printPropsSection("Props", comp.Props)

	fmt.Println()
	if comp.Spread {
		fmt.Println("Additional props are spread to the root element.")
	} else {
		fmt.Println("Props are limited to those documented above.")
	}
	if comp.InheritedComponent != "" {
		fmt.Printf("Inherits the props of %s.\n", comp.InheritedComponent)
	}
	if comp.SystemComponent {
		fmt.Println("System component: also accepts the system style props.")
	}
	if comp.DemoApiLink != "" {
		fmt.Println()
		fmt.Printf("Demos: %s\n", comp.DemoApiLink)
	}
}

// printHookHuman prints a human-readable hook page to stdout.
func printHookHuman(hook *reference.HookPage) {
	fmt.Printf("%s  [%s]\n", hook.Name, hook.Package)
	fmt.Printf("  %s\n", hook.Pathname)

	if hook.Description != "" {
		fmt.Println()
		printWrapped(hook.Description, 0, maxWidth)
	}

	fmt.Println()
	printPropsSection("Parameters", hook.Parameters)
	fmt.Println()
	printPropsSection("Return value", hook.ReturnValue)

	if hook.DemoApiLink != "" {
		fmt.Println()
		fmt.Printf("Demos: %s\n", hook.DemoApiLink)
	}
}

// printPropsSection renders a prop table with dynamic column widths.
func printPropsSection(title string, props []reference.PropDef) {
	if len(props) == 0 {
		fmt.Printf("%s  (none)\n", title)
		return
	}

	fmt.Println(title)

	nameW := len("NAME")
	typeW := len("TYPE")
	defW := len("DEFAULT")
	for _, p := range props {
		if len(p.Name) > nameW {
			nameW = len(p.Name)
		}
		if len(p.Type) > typeW {
			typeW = len(p.Type)
		}
		def := p.Default
		if def == "" {
			def = "-"
		}
		if len(def) > defW {
			defW = len(def)
		}
	}

	sepLen := nameW + typeW + 5 + defW + 4
	fmt.Printf("  %-*s  %-*s  %-3s  %-*s\n", nameW, "NAME", typeW, "TYPE", "REQ", defW, "DEFAULT")
	fmt.Printf("  %s\n", strings.Repeat("-", sepLen))

	for _, p := range props {
		req := "no"
		if p.Required {
			req = "yes"
		}
		def := p.Default
		if def == "" {
			def = "-"
		}
		deprecated := ""
		if p.Deprecated {
			deprecated = " [deprecated]"
		}
		fmt.Printf("  %-*s  %-*s  %-3s  %-*s%s\n",
			nameW, p.Name, typeW, p.Type, req, defW, def, deprecated)

		if p.Description != "" {
			fmt.Printf("  %s  %s\n", strings.Repeat(" ", nameW), p.Description)
		}
		if p.DeprecationNote != "" {
			fmt.Printf("  %s  deprecated: %s\n", strings.Repeat(" ", nameW), p.DeprecationNote)
		}
	}
}

// printWrapped prints text word-wrapped at maxWidth with the given left indent.
func printWrapped(text string, indent, width int) {
	words := strings.Fields(text)
	prefix := strings.Repeat(" ", indent)
	line := prefix
	for _, word := range words {
		if len(line)+len(word)+1 > width && line != prefix {
			fmt.Println(line)
			line = prefix + word
		} else {
			if line == prefix {
				line += word
			} else {
				line += " " + word
			}
		}
	}
	if line != prefix {
		fmt.Println(line)
	}
}
