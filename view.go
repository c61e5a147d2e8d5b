package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"cryptoterm-tui/config"
	"cryptoterm-tui/helpers"
	"cryptoterm-tui/styles"
	"cryptoterm-tui/views/chatview"
	"cryptoterm-tui/views/details"
	"cryptoterm-tui/views/home"
	logview "cryptoterm-tui/views/log"
	"cryptoterm-tui/views/settings"
	"cryptoterm-tui/views/wallets"
	"cryptoterm-tui/wallet"
)

// -------------------- VIEW --------------------

const chatSidebarWidth = 34

func (m *model) renderBackendDeleteDialog() string {
	var (
		dialogBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#874BFD")).
				Padding(1, 0).
				BorderTop(true).
				BorderLeft(true).
				BorderRight(true).
				BorderBottom(true)

		buttonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFF7DB")).
				Background(lipgloss.Color("#888B7E")).
				Padding(0, 3).
				MarginTop(1)

		activeButtonStyle = buttonStyle.Copy().
					Foreground(lipgloss.Color("#FFF7DB")).
					Background(lipgloss.Color("#F25D94")).
					MarginRight(2).
					Underline(true)
	)
	msg := helpers.FadeString("Are you sure you want to delete the backend "+m.deleteDialogName+"?", "#F25D94", "#EDFF82")
	question := lipgloss.NewStyle().Width(50).Align(lipgloss.Center).Render(msg)

	var okButton, cancelButton string
	if m.deleteDialogYesSelected {
		okButton = activeButtonStyle.Render("Yes")
		cancelButton = buttonStyle.Render("No")
	} else {
		okButton = buttonStyle.Copy().MarginRight(2).Render("Yes")
		cancelButton = activeButtonStyle.Copy().MarginRight(0).Render("No")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top, okButton, cancelButton)
	ui := lipgloss.JoinVertical(lipgloss.Center, question, buttons)

	dialog := dialogBoxStyle.Render(ui)

	return lipgloss.Place(
		m.w, m.h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

func (m *model) renderQRPopup() string {
	det, ok := m.directory.Detail()
	if !ok {
		return ""
	}

	dialogBoxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.ChainColor(string(det.Wallet.ChainType))).
		Padding(1, 2)

	title := styles.TitleStyle.Render("Receive " + helpers.NativeSymbol(det.Wallet.ChainType))
	qr := helpers.GenerateQRCode(det.Wallet.Address)
	addr := lipgloss.NewStyle().Foreground(styles.CAccent2).Render(det.Wallet.Address)
	hint := hotkeyStyle.Render("Esc to close")

	ui := lipgloss.JoinVertical(lipgloss.Center, title, "", qr, addr, "", hint)
	dialog := dialogBoxStyle.Render(ui)

	return lipgloss.Place(
		m.w, m.h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

func (m *model) globalHeader() string {
	availableWidth := max(0, m.w-8) // Account for panel padding

	// Selected wallet, if any
	var walletDisplay string
	if w, ok := m.directory.Selected(); ok {
		walletDisplay = lipgloss.NewStyle().
			Foreground(cAccent2).
			Bold(true).
			Render("Wallet: " + helpers.FadeString(w.Name+" "+helpers.ShortenAddr(w.Address), "#F25D94", "#EDFF82"))
	} else {
		walletDisplay = lipgloss.NewStyle().
			Foreground(cMuted).
			Render("Wallet: No selection")
	}

	// Active backend with green dot
	var backendDisplay string
	backendName := ""
	for _, b := range m.cfg.Backends {
		if b.Active {
			backendName = b.Name
			break
		}
	}
	if backendName == "" {
		backendDisplay = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c01c28")).
			Bold(true).
			Render("○ No backend")
	} else {
		backendDisplay = lipgloss.NewStyle().
			Foreground(cAccent).
			Bold(true).
			Render("● " + backendName)
	}

	// Center title
	titleText := lipgloss.NewStyle().
		Foreground(cAccent).
		Bold(true).
		Render(helpers.FadeString("cryptoterm", "#7EE787", "#82CFFD"))

	walletWidth := lipgloss.Width(walletDisplay)
	backendWidth := lipgloss.Width(backendDisplay)
	titleWidth := lipgloss.Width(titleText)

	totalOtherWidth := walletWidth + backendWidth + titleWidth

	var headerLine string
	if totalOtherWidth+4 > availableWidth {
		// Not enough space, stack vertically
		headerLine = walletDisplay + "\n" + titleText + "\n" + backendDisplay
	} else {
		// Three-column layout: Wallet | Title (centered) | Backend
		remainingSpace := availableWidth - totalOtherWidth
		leftPadding := remainingSpace / 2
		rightPadding := remainingSpace - leftPadding

		leftSpacer := strings.Repeat(" ", max(1, leftPadding))
		rightSpacer := strings.Repeat(" ", max(1, rightPadding))

		headerLine = walletDisplay + leftSpacer + titleText + rightSpacer + backendDisplay
	}

	separator := lipgloss.NewStyle().
		Foreground(cBorder).
		Render(strings.Repeat("─", availableWidth))

	return headerLine + "\n" + separator
}

func (m *model) View() string {
	// Render global header outside of page content
	globalHdr := m.globalHeader()
	headerPanel := panelStyle.Width(max(0, m.w-2)).Render(globalHdr)

	var pageContent string
	var nav string

	switch m.activePage {
	case config.PageHome:
		pageContent = panelStyle.Width(max(0, m.w-2)).Render(home.Render(m.homeForm))
		nav = home.Nav(m.w - 2)

	case config.PageWallets:
		status := ""
		if m.statusMsg != "" && time.Since(m.statusTime) < 5*time.Second {
			status = m.statusMsg
		}
		walletsContent := wallets.Render(m.directory.Wallets(), m.selectedWallet, status)

		if m.walletsLoading {
			walletsContent += "\n\n" + m.spin.View() + " Loading wallets…"
		}

		// Show create/import form if active
		if m.creating && m.createForm != nil {
			walletsContent = styles.TitleStyle.Render("New Wallet") + "\n\n" + m.createForm.View()
		}

		pageContent = panelStyle.Width(max(0, m.w-2)).Render(walletsContent)
		nav = wallets.Nav(m.w-2, m.creating)

	case config.PageDetails:
		var detailsContent string
		if det, ok := m.directory.Detail(); ok {
			detailsContent = details.Render(det, m.detailLoading, m.copiedMsg, m.spin.View())
		} else {
			detailsContent = m.spin.View() + " Loading wallet…"
		}

		// Send form replaces the detail body while open
		if m.showSendForm && m.sendForm != nil {
			if m.sendInFlight {
				detailsContent = styles.TitleStyle.Render("Send Transaction") + "\n\n" +
					m.spin.View() + " Submitting transaction…"
			} else {
				detailsContent = styles.TitleStyle.Render("Send Transaction") + "\n\n" + m.sendForm.View()
			}
		}

		if m.statusMsg != "" && time.Since(m.statusTime) < 5*time.Second {
			detailsContent += "\n\n" + styles.ErrorStyle.Render(m.statusMsg)
		}

		pageContent = panelStyle.Width(max(0, m.w-2)).Render(detailsContent)
		nav = details.Nav(m.w-2, m.showSendForm)

		if m.showQR {
			return m.renderQRPopup()
		}

	case config.PageChat:
		var detailPtr *wallet.Detail
		if det, ok := m.directory.Detail(); ok {
			detailPtr = &det
		}
		sidebar := chatview.RenderSidebar(m.directory.Wallets(), m.session.WalletID(), detailPtr, m.pickingWallet, m.pickIdx)

		transcript := m.chatViewport.View()
		inputLine := m.chatInput.View()
		if m.chatThinking {
			inputLine = m.spin.View() + " Thinking…"
		}
		conversation := lipgloss.JoinVertical(lipgloss.Left, transcript, "", inputLine)

		sidebarPanel := panelStyle.Width(chatSidebarWidth).Render(sidebar)
		conversationPanel := panelStyle.Width(max(0, m.w-chatSidebarWidth-4)).Render(conversation)

		pageContent = lipgloss.JoinHorizontal(lipgloss.Top, sidebarPanel, conversationPanel)
		nav = chatview.Nav(m.w - 2)

	case config.PageSettings:
		settingsContent := settings.Render(m.cfg.Backends, m.selectedBackendIdx)

		// Show form if in add/edit mode
		if (m.settingsMode == "add" || m.settingsMode == "edit") && m.form != nil {
			settingsContent = styles.TitleStyle.Render("Backend Settings") + "\n\n" + m.form.View()
		}

		if m.statusMsg != "" && time.Since(m.statusTime) < 5*time.Second {
			settingsContent += "\n\n" + styles.ErrorStyle.Render(m.statusMsg)
		}

		pageContent = panelStyle.Width(max(0, m.w-2)).Render(settingsContent)
		nav = settings.Nav(m.w-2, m.settingsMode)

		if m.showDeleteDialog {
			return m.renderBackendDeleteDialog()
		}
	}

	// Render log panel only if enabled
	if m.logEnabled {
		// Ensure viewport height stays in sync with the rendered panel
		reservedHeight := 10
		availableHeight := max(5, m.h-reservedHeight)
		maxLogHeight := min(m.h/3, 15)
		m.logViewport.Height = min(availableHeight, maxLogHeight)

		logPanel := logview.Render(m.w, m.h, m.logReady, m.logSpinner.View(), m.logViewport)
		content := lipgloss.JoinVertical(lipgloss.Left, headerPanel, pageContent, nav, logPanel)
		return appStyle.Render(content)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, headerPanel, pageContent, nav)
	return appStyle.Render(content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
