package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/costview/aws-cost-dashboard-go/pkg/console"
	"github.com/costview/aws-cost-dashboard-go/pkg/version"
)

// displayWelcomeBanner shows the welcome banner with version information.
func displayWelcomeBanner(versionStr string) {
	banner := `
          ██████╗ ██████╗ ███████╗████████╗    ██╗   ██╗██╗███████╗██╗    ██╗
         ██╔════╝██╔═══██╗██╔════╝╚══██╔══╝    ██║   ██║██║██╔════╝██║    ██║
         ██║     ██║   ██║███████╗   ██║       ██║   ██║██║█████╗  ██║ █╗ ██║
         ██║     ██║   ██║╚════██║   ██║       ╚██╗ ██╔╝██║██╔══╝  ██║███╗██║
         ╚██████╗╚██████╔╝███████║   ██║        ╚████╔╝ ██║███████╗╚███╔███╔╝
          ╚═════╝ ╚═════╝ ╚══════╝   ╚═╝         ╚═══╝  ╚═╝╚══════╝ ╚══╝╚══╝
        `
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(console.BrightCyan(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("AWS Cost Dashboard (v%s)", formattedVersion)))
}

// formatAmount renders a monetary amount for console display.
func formatAmount(v float64) string {
	return console.BrightGreen(fmt.Sprintf("$%.2f", v))
}
