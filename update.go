package main

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"cryptoterm-tui/api"
	"cryptoterm-tui/config"
	"cryptoterm-tui/helpers"
	"cryptoterm-tui/styles"
	"cryptoterm-tui/views/home"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle home menu form first (before message switching)
	if m.activePage == config.PageHome && m.homeForm != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc", "q", "ctrl+c":
				return m, tea.Quit
			case "l", "L":
				m.logEnabled = !m.logEnabled
				m.cfg.Logger = m.logEnabled
				config.Save(m.configPath, m.cfg)
				if m.logEnabled {
					m.logReady = false
					return m, tea.Batch(initLogViewport(), m.logSpinner.Tick)
				}
				if m.logBuffer != nil {
					m.logBuffer.Reset()
				}
				m.logReady = false
				return m, nil
			}
			form, cmd := m.homeForm.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				m.homeForm = f

				if m.homeForm.State == huh.StateCompleted {
					switch home.TempSelection {
					case "wallets":
						m.activePage = config.PageWallets
					case "chat":
						m.activePage = config.PageChat
						m.chatInput.Focus()
					case "settings":
						m.activePage = config.PageSettings
						m.settingsMode = "list"
					}
					// Fresh form for the next visit
					m.homeForm = home.CreateForm()
					return m, nil
				}
			}
			return m, cmd
		}
	}

	// Handle create/import wallet form
	if m.activePage == config.PageWallets && m.creating && m.createForm != nil {
		// Intercept ESC key to cancel form
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.creating = false
			m.createForm = nil
			return m, nil
		}

		form, cmd := m.createForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.createForm = f

			// Check if form is completed
			if m.createForm.State == huh.StateCompleted {
				req := api.CreateWalletRequest{
					Name:      tempCreateName,
					ChainType: api.ChainType(tempCreateChain),
					Mnemonic:  tempCreateMnemonic,
				}
				if req.Mnemonic == "" {
					m.addLog("info", fmt.Sprintf("Creating %s wallet `%s`", req.ChainType, req.Name))
				} else {
					m.addLog("info", fmt.Sprintf("Importing %s wallet `%s`", req.ChainType, req.Name))
				}
				m.creating = false
				m.createForm = nil
				m.walletsLoading = true
				return m, tea.Batch(createWallet(m.apiClient, req), m.spin.Tick)
			}

			// Check if form was aborted (ESC pressed)
			if m.createForm.State == huh.StateAborted {
				m.creating = false
				m.createForm = nil
				return m, nil
			}
		}
		return m, cmd
	}

	// Handle send form updates
	if m.activePage == config.PageDetails && m.showSendForm && m.sendForm != nil && !m.sendInFlight {
		// Intercept ESC key to cancel form
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.showSendForm = false
			m.sendForm = nil
			return m, nil
		}

		form, cmd := m.sendForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.sendForm = f

			// Check if form is completed
			if m.sendForm.State == huh.StateCompleted {
				req := api.SendTransactionRequest{
					WalletID:  m.directory.SelectedID(),
					ToAddress: tempSendToAddr,
					Amount:    tempSendAmount,
				}
				if det, ok := m.directory.Detail(); ok && det.Balance != nil {
					req.TokenSymbol = det.Balance.TokenSymbol
				}
				m.addLog("info", fmt.Sprintf("Sending %s to %s", tempSendAmount, helpers.ShortenAddr(tempSendToAddr)))
				m.sendInFlight = true
				return m, tea.Batch(sendTransaction(m.apiClient, req), m.spin.Tick)
			}

			// Check if form was aborted (ESC pressed)
			if m.sendForm.State == huh.StateAborted {
				m.showSendForm = false
				m.sendForm = nil
				return m, nil
			}
		}
		return m, cmd
	}

	// Handle backend add/edit form
	if m.activePage == config.PageSettings && (m.settingsMode == "add" || m.settingsMode == "edit") && m.form != nil {
		// Intercept ESC key to cancel form
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.settingsMode = "list"
			m.form = nil
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f

			// Check if form is completed
			if m.form.State == huh.StateCompleted {
				if m.settingsMode == "add" {
					if tempBackendName != "" && tempBackendURL != "" {
						m.cfg.Backends = append(m.cfg.Backends, config.Backend{Name: tempBackendName, URL: tempBackendURL, Active: false})
						config.Save(m.configPath, m.cfg)
						m.addLog("success", fmt.Sprintf("Added backend: `%s` (%s)", tempBackendName, tempBackendURL))
					}
				} else if m.settingsMode == "edit" {
					if m.selectedBackendIdx >= 0 && m.selectedBackendIdx < len(m.cfg.Backends) {
						m.cfg.Backends[m.selectedBackendIdx].Name = tempBackendName
						m.cfg.Backends[m.selectedBackendIdx].URL = tempBackendURL
						config.Save(m.configPath, m.cfg)
						m.addLog("success", fmt.Sprintf("Updated backend: `%s`", tempBackendName))
						// Editing the active backend swaps the client immediately
						if m.cfg.Backends[m.selectedBackendIdx].Active {
							m.apiClient = api.New(tempBackendURL)
							m.directory.Replace(nil)
							m.session.Reset()
							m.walletsLoading = true
							m.settingsMode = "list"
							m.form = nil
							return m, loadWallets(m.apiClient)
						}
					}
				}
				m.settingsMode = "list"
				m.form = nil
				// Return without the form's cmd to ensure we're back in list mode
				return m, nil
			}

			// Check if form was aborted (ESC pressed)
			if m.form.State == huh.StateAborted {
				m.settingsMode = "list"
				m.form = nil
				return m, nil
			}
		}
		return m, cmd
	}

	switch msg := msg.(type) {

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		m.logger.SetStyles(&log.Styles{
			Timestamp: lipgloss.NewStyle().Foreground(styles.CMuted),
			Caller:    lipgloss.NewStyle().Faint(true),
			Prefix:    lipgloss.NewStyle().Bold(true).Foreground(styles.CAccent2),
			Message:   lipgloss.NewStyle().Foreground(styles.CText),
			Key:       lipgloss.NewStyle().Foreground(styles.CAccent),
			Value:     lipgloss.NewStyle().Foreground(styles.CText),
			Separator: lipgloss.NewStyle().Faint(true),
			Levels: map[log.Level]lipgloss.Style{
				log.DebugLevel: lipgloss.NewStyle().Foreground(styles.CMuted).SetString("DEBUG"),
				log.InfoLevel:  lipgloss.NewStyle().Foreground(styles.CAccent2).SetString("INFO"),
				log.WarnLevel:  lipgloss.NewStyle().Foreground(styles.CWarn).SetString("WARN"),
				log.ErrorLevel: lipgloss.NewStyle().Foreground(styles.CError).SetString("ERROR"),
			},
		})
		m.logReady = true
		m.addLog("info", "Logger enabled")
		return m, nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height

		// Transcript sits beside the wallet sidebar
		m.chatViewport.Width = max(0, msg.Width-chatSidebarWidth-8)
		m.chatViewport.Height = max(1, msg.Height-10)
		m.chatReady = true
		m.updateChatViewport()

		// Only initialize viewport if log is enabled
		if m.logEnabled {
			m.logViewport.Width = max(0, msg.Width-6)
			if m.logReady {
				m.updateLogViewport()
			}
		}

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.chatThinking {
			m.updateChatViewport()
		}
		return m, tea.Batch(cmds...)

	case clipboardCopiedMsg:
		m.copiedMsg = "Address copied."
		m.copiedMsgTime = time.Now()
		m.addLog("info", "Copied address to clipboard")
		return m, clearStatusAfter(3 * time.Second)

	case clearStatusMsg:
		if m.statusMsg != "" && time.Since(m.statusTime) >= 3*time.Second {
			m.statusMsg = ""
		}
		if m.copiedMsg != "" && time.Since(m.copiedMsgTime) >= 3*time.Second {
			m.copiedMsg = ""
		}
		return m, nil

	case walletsLoadedMsg:
		m.walletsLoading = false
		if msg.err != nil {
			m.addLog("error", "Failed to load wallets: "+msg.err.Error())
			return m, m.notify("Failed to load wallets.")
		}
		m.directory.Replace(msg.wallets)
		if m.selectedWallet >= m.directory.Len() {
			m.selectedWallet = max(0, m.directory.Len()-1)
		}
		for _, w := range msg.wallets {
			if !api.KnownChain(w.ChainType) {
				m.addLog("warning", fmt.Sprintf("Wallet `%s` has unrecognized chain type `%s`", w.Name, w.ChainType))
			}
		}
		m.addLog("success", fmt.Sprintf("Loaded %d wallets", m.directory.Len()))
		return m, nil

	case walletCreatedMsg:
		m.walletsLoading = false
		if msg.err != nil {
			m.addLog("error", "Wallet creation failed: "+msg.err.Error())
			// Reopen the form with everything the user typed still in place
			m.buildCreateForm()
			m.creating = true
			return m, m.notify("Wallet creation failed: " + msg.err.Error())
		}
		m.directory.Append(msg.wallet)
		m.selectedWallet = m.directory.Len() - 1
		m.addLog("success", fmt.Sprintf("Created wallet `%s` (%s)", msg.wallet.Name, helpers.ShortenAddr(msg.wallet.Address)))
		return m, m.notify(fmt.Sprintf("Wallet `%s` created.", msg.wallet.Name))

	case detailLoadedMsg:
		// Discard results from a fetch started before the selection changed
		if msg.gen != m.directory.Generation() {
			m.addLog("debug", "Dropped stale detail response for "+msg.walletID)
			return m, nil
		}
		if msg.notFound {
			m.detailLoading = false
			m.directory.Select("")
			if m.activePage == config.PageDetails {
				m.activePage = config.PageWallets
			}
			m.addLog("warning", "Wallet no longer exists, refreshing list")
			m.walletsLoading = true
			return m, tea.Batch(loadWallets(m.apiClient), m.notify("Wallet no longer exists."))
		}
		// Wallet record fetch failed outright; nothing worth storing
		if msg.err != nil && msg.detail.Wallet.WalletID == "" {
			m.detailLoading = false
			m.addLog("error", "Failed to load wallet: "+msg.err.Error())
			return m, m.notify("Failed to load wallet details.")
		}
		if !m.directory.ApplyDetail(msg.gen, msg.detail) {
			return m, nil
		}
		m.detailLoading = false
		if msg.err != nil {
			m.addLog("error", fmt.Sprintf("Failed to load details for `%s`: %s", msg.walletID, msg.err.Error()))
		} else {
			if msg.tokensErr != nil {
				m.addLog("warning", "Token holdings unavailable: "+msg.tokensErr.Error())
			}
			if msg.txsErr != nil {
				m.addLog("warning", "Transaction history unavailable: "+msg.txsErr.Error())
			}
			if msg.detail.Balance != nil {
				m.addLog("success", fmt.Sprintf("Loaded `%s` - balance %s %s", msg.detail.Wallet.Name, msg.detail.Balance.Balance, msg.detail.Balance.TokenSymbol))
			}
		}
		m.updateChatViewport()
		return m, nil

	case txSentMsg:
		m.sendInFlight = false
		if msg.err != nil {
			m.addLog("error", "Transaction failed: "+msg.err.Error())
			// Keep the form open with the recipient and amount intact, but
			// only while the sent wallet is still the selection
			if msg.walletID == m.directory.SelectedID() {
				m.buildSendForm()
			} else {
				m.showSendForm = false
				m.sendForm = nil
			}
			return m, m.notify("Transaction failed: " + msg.err.Error())
		}
		m.showSendForm = false
		m.sendForm = nil
		tempSendToAddr = ""
		tempSendAmount = ""
		m.addLog("success", fmt.Sprintf("Transaction submitted: `%s`", msg.tx.TxHash))
		// Refresh only while the sent wallet is still the selection. The user
		// may have moved on during the send; a result for this wallet must
		// never land under another selection's generation, so re-selecting
		// mints a fresh one instead of reusing whatever is current.
		if msg.walletID == m.directory.SelectedID() {
			gen := m.directory.Select(msg.walletID)
			m.detailLoading = true
			return m, tea.Batch(
				loadDetail(m.apiClient, gen, msg.walletID),
				m.notify("Transaction submitted."),
			)
		}
		return m, m.notify("Transaction submitted.")

	case chatTurnMsg:
		m.chatThinking = false
		if msg.err != nil {
			m.session.AppendFailure()
			m.addLog("error", "Chat request failed: "+msg.err.Error())
			m.updateChatViewport()
			return m, nil
		}
		m.session.Adopt(msg.resp.ChatID)
		m.session.AppendAssistant(msg.resp.Response)
		if msg.resp.Action != nil {
			// Dispatcher logs both handled and unknown kinds itself
			m.dispatcher.Dispatch(*msg.resp.Action)
			m.updateLogViewport()
			cmds = m.flushPending(cmds)
		}
		m.updateChatViewport()
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		allowMenuHotkeys := !m.textInputActive()
		// global keys
		if allowMenuHotkeys {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit

			case "q", "Q":
				// Details page uses q for the receive QR popup
				if m.activePage != config.PageDetails {
					return m, tea.Quit
				}

			case "l", "L":
				// Toggle logger
				m.logEnabled = !m.logEnabled
				m.cfg.Logger = m.logEnabled
				if m.logEnabled {
					if m.w > 0 {
						m.logViewport.Width = m.w - 6
					}
					m.logReady = false
					config.Save(m.configPath, m.cfg)
					return m, tea.Batch(initLogViewport(), m.logSpinner.Tick)
				}
				// Clear logs and de-initialize when disabling
				if m.logBuffer != nil {
					m.logBuffer.Reset()
				}
				m.logReady = false
				config.Save(m.configPath, m.cfg)
				return m, nil

			case "pageup", "pagedown":
				// Allow scrolling in log viewport when enabled
				if m.logEnabled && m.logReady {
					var cmd tea.Cmd
					m.logViewport, cmd = m.logViewport.Update(msg)
					return m, cmd
				}
			}
		}

		// page-specific behavior
		switch m.activePage {

		case config.PageHome:
			// Menu form handles its own keys
			return m, nil

		case config.PageWallets:
			switch msg.String() {
			case "up", "k":
				if m.selectedWallet > 0 {
					m.selectedWallet--
				}
				return m, nil

			case "down", "j":
				if m.selectedWallet < m.directory.Len()-1 {
					m.selectedWallet++
				}
				return m, nil

			case "a", "A":
				m.openCreateForm()
				return m, nil

			case "r", "R":
				m.walletsLoading = true
				m.addLog("info", "Refreshing wallet list")
				return m, tea.Batch(loadWallets(m.apiClient), m.spin.Tick)

			case "enter":
				w, ok := m.directory.At(m.selectedWallet)
				if !ok {
					return m, nil
				}
				gen := m.directory.Select(w.WalletID)
				m.activePage = config.PageDetails
				m.detailLoading = true
				m.addLog("info", fmt.Sprintf("Opening wallet `%s`", w.Name))
				return m, tea.Batch(loadDetail(m.apiClient, gen, w.WalletID), m.spin.Tick)

			case "c", "C":
				m.activePage = config.PageChat
				m.chatInput.Focus()
				m.updateChatViewport()
				return m, nil

			case "s", "S":
				m.activePage = config.PageSettings
				m.settingsMode = "list"
				return m, nil

			case "h", "H", "esc":
				m.activePage = config.PageHome
				return m, nil
			}
			return m, nil

		case config.PageDetails:
			// QR popup captures keys while open
			if m.showQR {
				switch msg.String() {
				case "esc", "q", "Q", "enter":
					m.showQR = false
				}
				return m, nil
			}

			switch msg.String() {
			case "esc", "backspace", "w", "W":
				m.activePage = config.PageWallets
				m.showSendForm = false
				m.sendForm = nil
				return m, nil

			case "r", "R":
				id := m.directory.SelectedID()
				if id == "" {
					return m, nil
				}
				gen := m.directory.Select(id)
				m.detailLoading = true
				m.addLog("info", "Refreshing wallet details")
				return m, tea.Batch(loadDetail(m.apiClient, gen, id), m.spin.Tick)

			case "t", "T":
				if det, ok := m.directory.Detail(); ok && det.Balance != nil {
					m.createSendForm()
				}
				return m, nil

			case "q", "Q":
				m.showQR = true
				return m, nil

			case "c", "C":
				if det, ok := m.directory.Detail(); ok {
					return m, copyToClipboard(det.Wallet.Address)
				}
				return m, nil
			}
			return m, nil

		case config.PageChat:
			// Wallet-context picker captures keys while open
			if m.pickingWallet {
				switch msg.String() {
				case "up", "k":
					if m.pickIdx > 0 {
						m.pickIdx--
					}
					return m, nil
				case "down", "j":
					if m.pickIdx < m.directory.Len() {
						m.pickIdx++
					}
					return m, nil
				case "enter":
					m.pickingWallet = false
					m.chatInput.Focus()
					if m.pickIdx == 0 {
						m.session.SetWallet("")
						m.directory.Select("")
						m.addLog("info", "Chat context: general")
						return m, nil
					}
					w, ok := m.directory.At(m.pickIdx - 1)
					if !ok {
						return m, nil
					}
					m.session.SetWallet(w.WalletID)
					gen := m.directory.Select(w.WalletID)
					m.detailLoading = true
					m.addLog("info", fmt.Sprintf("Chat context: wallet `%s`", w.Name))
					return m, tea.Batch(loadDetail(m.apiClient, gen, w.WalletID), m.spin.Tick)
				case "esc":
					m.pickingWallet = false
					m.chatInput.Focus()
					return m, nil
				}
				return m, nil
			}

			switch msg.String() {
			case "esc":
				m.activePage = config.PageHome
				m.chatInput.Blur()
				return m, nil

			case "ctrl+w":
				m.pickingWallet = true
				m.pickIdx = 0
				m.chatInput.Blur()
				return m, nil

			case "ctrl+n":
				m.session.Reset()
				m.chatInput.Reset()
				m.addLog("info", "Started new chat session")
				m.updateChatViewport()
				return m, nil

			case "ctrl+v":
				if text, err := clipboard.ReadAll(); err == nil && text != "" {
					m.chatInput.SetValue(m.chatInput.Value() + text)
				}
				return m, nil

			case "enter":
				if m.chatThinking {
					return m, nil
				}
				text, ok := m.session.AppendUser(m.chatInput.Value())
				if !ok {
					return m, nil
				}
				m.chatInput.Reset()
				m.chatThinking = true
				m.updateChatViewport()
				return m, tea.Batch(
					sendChatTurn(m.apiClient, text, m.session.ChatID(), m.session.WalletID()),
					m.spin.Tick,
				)
			}

			var cmd tea.Cmd
			m.chatInput, cmd = m.chatInput.Update(msg)
			return m, cmd

		case config.PageSettings:
			if m.showDeleteDialog {
				switch msg.String() {
				case "left", "right", "tab":
					m.deleteDialogYesSelected = !m.deleteDialogYesSelected
					return m, nil
				case "enter":
					if m.deleteDialogYesSelected {
						idx := m.deleteDialogIdx
						if idx >= 0 && idx < len(m.cfg.Backends) && !m.cfg.Backends[idx].Active {
							deleted := m.deleteDialogName
							m.cfg.Backends = append(m.cfg.Backends[:idx], m.cfg.Backends[idx+1:]...)
							if m.selectedBackendIdx >= len(m.cfg.Backends) && m.selectedBackendIdx > 0 {
								m.selectedBackendIdx--
							}
							config.Save(m.configPath, m.cfg)
							m.addLog("warning", fmt.Sprintf("Deleted backend `%s`", deleted))
						}
					}
					m.showDeleteDialog = false
					return m, nil
				case "esc":
					m.showDeleteDialog = false
					return m, nil
				}
				return m, nil
			}

			// Only handle list mode controls here (form handled at top of Update)
			if m.settingsMode == "list" {
				switch msg.String() {
				case "esc", "h", "H":
					m.activePage = config.PageHome
					return m, nil

				case "w", "W":
					m.activePage = config.PageWallets
					return m, nil

				case "a", "A":
					m.settingsMode = "add"
					m.createAddBackendForm()
					return m, nil

				case "e", "E":
					if len(m.cfg.Backends) > 0 {
						m.settingsMode = "edit"
						m.createEditBackendForm(m.selectedBackendIdx)
					}
					return m, nil

				case "delete", "backspace":
					if len(m.cfg.Backends) > 1 && m.selectedBackendIdx < len(m.cfg.Backends) {
						if m.cfg.Backends[m.selectedBackendIdx].Active {
							return m, m.notify("Cannot delete the active backend.")
						}
						m.showDeleteDialog = true
						m.deleteDialogYesSelected = true
						m.deleteDialogIdx = m.selectedBackendIdx
						m.deleteDialogName = m.cfg.Backends[m.selectedBackendIdx].Name
					}
					return m, nil

				case "up", "k":
					if m.selectedBackendIdx > 0 {
						m.selectedBackendIdx--
					}
					return m, nil

				case "down", "j":
					if m.selectedBackendIdx < len(m.cfg.Backends)-1 {
						m.selectedBackendIdx++
					}
					return m, nil

				case "enter", " ":
					// Switch active backend: new client, clean slate
					if len(m.cfg.Backends) > 0 && m.selectedBackendIdx < len(m.cfg.Backends) {
						for i := range m.cfg.Backends {
							m.cfg.Backends[i].Active = (i == m.selectedBackendIdx)
						}
						b := m.cfg.Backends[m.selectedBackendIdx]
						config.Save(m.configPath, m.cfg)
						m.apiClient = api.New(b.URL)
						m.directory.Replace(nil)
						m.directory.Select("")
						m.selectedWallet = 0
						m.session.Reset()
						m.session.SetWallet("")
						m.walletsLoading = true
						m.addLog("success", fmt.Sprintf("Switched backend to `%s` (%s)", b.Name, b.URL))
						return m, tea.Batch(loadWallets(m.apiClient), m.spin.Tick)
					}
					return m, nil
				}
			}
			return m, nil
		}
	}

	return m, tea.Batch(cmds...)
}
