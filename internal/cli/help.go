package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Help styles
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SandGold).
			MarginBottom(1)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(Sandstone).
			Italic(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Sandstone).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(SandLight).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(IceBlue).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(DustGray).
				Italic(true)
)

// Description is the one-line summary shown in help.
const Description = "Forge the textures, meshes and sounds of Shadow Temple Escape."

// StyledHelpPrinter creates a custom help printer with Lipgloss styling
func StyledHelpPrinter(options kong.HelpOptions) kong.HelpPrinter {
	return kong.HelpPrinter(func(options kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		sb.WriteString(helpTitleStyle.Render("Templeforge 🏛"))
		sb.WriteString("\n")
		sb.WriteString(helpDescStyle.Render(Description))
		sb.WriteString("\n")

		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(fmt.Sprintf("%s [<output>] [flags]", ctx.Model.Name))
		sb.WriteString("\n")

		if args := getArguments(ctx); len(args) > 0 {
			sb.WriteString("\n")
			sb.WriteString(helpSectionStyle.Render("Arguments:"))
			sb.WriteString("\n")
			writeColumns(&sb, helpArgStyle, args)
		}

		if flags := getFlags(ctx); len(flags) > 0 {
			sb.WriteString("\n")
			sb.WriteString(helpSectionStyle.Render("Flags:"))
			sb.WriteString("\n")
			writeColumns(&sb, helpFlagStyle, flags)
		}

		sb.WriteString("\n")
		sb.WriteString(helpSectionStyle.Render("Examples:"))
		sb.WriteString("\n")
		for _, ex := range []string{
			ctx.Model.Name,
			ctx.Model.Name + " build/assets --seed 42",
			ctx.Model.Name + " --only '*.wav' --only 'ice_*'",
			ctx.Model.Name + " --verify --sheet textures.png",
		} {
			sb.WriteString("  " + ex + "\n")
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	})
}

// helpRow is one name/description pair in the help output.
type helpRow struct {
	name       string
	help       string
	defaultVal string
}

// writeColumns prints rows with their descriptions aligned.
func writeColumns(sb *strings.Builder, nameStyle lipgloss.Style, rows []helpRow) {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.name))
	}

	for _, r := range rows {
		sb.WriteString("  ")
		sb.WriteString(nameStyle.Render(r.name))
		if r.help != "" {
			sb.WriteString(strings.Repeat(" ", width-lipgloss.Width(r.name)+2))
			sb.WriteString(r.help)
		}
		if r.defaultVal != "" {
			sb.WriteString(" ")
			sb.WriteString(helpDefaultStyle.Render("(default: " + r.defaultVal + ")"))
		}
		sb.WriteString("\n")
	}
}

func getArguments(ctx *kong.Context) []helpRow {
	var rows []helpRow
	for _, arg := range ctx.Model.Node.Positional {
		row := helpRow{name: arg.Summary(), help: arg.Help}
		if arg.HasDefault {
			row.defaultVal = arg.Default
		}
		rows = append(rows, row)
	}
	return rows
}

func getFlags(ctx *kong.Context) []helpRow {
	rows := []helpRow{{name: "-h, --help", help: "Show context-sensitive help."}}

	for _, f := range ctx.Model.Node.Flags {
		if f.Name == "help" || f.Hidden {
			continue
		}

		name := "    --" + f.Name
		if f.Short != 0 {
			name = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
		}
		if !f.IsBool() && f.PlaceHolder != "" {
			name += "=" + strings.ToUpper(f.PlaceHolder)
		}

		// Only show meaningful defaults, not type placeholders
		row := helpRow{name: name, help: f.Help}
		if f.HasDefault && !f.IsBool() && f.Default != "" {
			row.defaultVal = f.Default
		}
		rows = append(rows, row)
	}

	return rows
}
