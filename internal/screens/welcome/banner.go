package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pwaquiz/internal/ui/theme"
)

const bannerArt = `
██████╗ ██╗    ██╗ █████╗      ██████╗ ██╗   ██╗██╗███████╗
██╔══██╗██║    ██║██╔══██╗    ██╔═══██╗██║   ██║██║╚══███╔╝
██████╔╝██║ █╗ ██║███████║    ██║   ██║██║   ██║██║  ███╔╝
██╔═══╝ ██║███╗██║██╔══██║    ██║▄▄ ██║██║   ██║██║ ███╔╝
██║     ╚███╔███╔╝██║  ██║    ╚██████╔╝╚██████╔╝██║███████╗
╚═╝      ╚══╝╚══╝ ╚═╝  ╚═╝     ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "P W A   Q U I Z"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 62

// RenderBanner returns the PWA QUIZ banner styled in the primary color.
// Uses a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
