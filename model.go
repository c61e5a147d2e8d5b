package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"cryptoterm-tui/action"
	"cryptoterm-tui/api"
	"cryptoterm-tui/chat"
	"cryptoterm-tui/config"
	"cryptoterm-tui/helpers"
	"cryptoterm-tui/styles"
	"cryptoterm-tui/views/chatview"
	"cryptoterm-tui/views/home"
	"cryptoterm-tui/wallet"
)

// -------------------- MODEL --------------------

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	activePage config.Page

	// backend client, fixed per active backend; swapped only from settings
	apiClient *api.Client

	// state components, mutated only inside Update
	directory  wallet.Directory
	session    chat.Session
	dispatcher *action.Dispatcher

	// cmds queued by dispatcher handlers during Dispatch
	pendingCmds []tea.Cmd

	// wallets page
	selectedWallet int
	walletsLoading bool
	statusMsg      string // blocking notification for user-initiated failures
	statusTime     time.Time

	// create/import wallet form
	creating   bool
	createForm *huh.Form

	// details page
	spin          spinner.Model
	detailLoading bool
	copiedMsg     string
	copiedMsgTime time.Time
	showSendForm  bool
	sendForm      *huh.Form
	sendInFlight  bool
	showQR        bool

	// chat page
	chatInput     textinput.Model
	chatViewport  viewport.Model
	chatReady     bool
	chatThinking  bool
	pickingWallet bool // sidebar wallet-context selector has focus
	pickIdx       int

	// settings state
	settingsMode       string // "list", "add", "edit"
	selectedBackendIdx int
	form               *huh.Form
	configPath         string
	cfg                config.Config

	// backend delete confirmation dialog
	showDeleteDialog        bool
	deleteDialogYesSelected bool
	deleteDialogIdx         int
	deleteDialogName        string

	// home form
	homeForm *huh.Form

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *strings.Builder
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model
}

// newModel creates and initializes a new model with configuration from disk
func newModel() *model {
	// config path
	homeDir, _ := os.UserHomeDir()
	configPath := filepath.Join(homeDir, ".cryptoterm-config.json")

	cfg := config.LoadOrCreate(configPath)

	// backend URL from environment wins over config
	apiFromEnv := strings.TrimSpace(os.Getenv("WALLET_API_URL"))
	if apiFromEnv != "" {
		cfg.Backends = []config.Backend{{Name: "Environment", URL: apiFromEnv, Active: true}}
	}

	baseURL := cfg.ActiveBackendURL()

	// chat input line
	in := textinput.New()
	in.Placeholder = "Ask anything about your wallets or crypto…"
	in.Prompt = "> "
	in.PromptStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
	in.TextStyle = lipgloss.NewStyle().Foreground(styles.CText)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)
	in.CharLimit = 500
	in.Width = 60

	// spinner
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	// transcript viewport; sized on first WindowSizeMsg
	chatVP := viewport.New(0, 20)

	// log viewport
	vp := viewport.New(0, 20)
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	logBuf := &strings.Builder{}
	logger := log.New(logBuf)
	logger.SetLevel(log.DebugLevel)
	logger.SetTimeFormat("15:04:05")

	m := &model{
		activePage:   config.PageHome,
		apiClient:    api.New(baseURL),
		spin:         sp,
		chatInput:    in,
		chatViewport: chatVP,
		settingsMode: "list",
		configPath:   configPath,
		cfg:          cfg,
		logEnabled:   cfg.Logger,
		logViewport:  vp,
		logBuffer:    logBuf,
		logger:       logger,
		logSpinner:   logSpin,
		homeForm:     home.CreateForm(),
	}
	m.setupDispatcher()

	return m
}

// setupDispatcher wires the AI action table. The four wallet-detail kinds
// share one navigation handler; new kinds get new table entries.
func (m *model) setupDispatcher() {
	d := action.NewDispatcher(m.logger)

	d.Register(action.KindCreateWallet, func(string) {
		m.activePage = config.PageWallets
		m.openCreateForm()
	})

	d.Register(action.KindCheckBalance, func(walletID string) {
		if walletID == "" {
			walletID = m.directory.SelectedID()
		}
		if walletID == "" {
			return
		}
		gen := m.directory.Select(walletID)
		m.detailLoading = true
		m.pendingCmds = append(m.pendingCmds, loadDetail(m.apiClient, gen, walletID))
	})

	openDetails := func(walletID string) {
		if walletID == "" {
			return
		}
		gen := m.directory.Select(walletID)
		m.activePage = config.PageDetails
		m.detailLoading = true
		m.pendingCmds = append(m.pendingCmds, loadDetail(m.apiClient, gen, walletID))
	}
	d.Register(action.KindSendTransaction, openDetails)
	d.Register(action.KindUpdateOwner, openDetails)
	d.Register(action.KindSetSponsor, openDetails)
	d.Register(action.KindBundleTransaction, openDetails)

	m.dispatcher = d
}

// Init implements tea.Model interface and returns initial commands
func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, loadWallets(m.apiClient)}
	m.walletsLoading = true
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	return tea.Batch(cmds...)
}

// -------------------- TEMP FORM STORAGE --------------------
// Temporary form field storage (package-level to avoid pointer-to-copy issues)
var (
	tempCreateName     string
	tempCreateChain    string
	tempCreateMnemonic string
	tempSendToAddr     string
	tempSendAmount     string
	tempBackendName    string
	tempBackendURL     string
)

func (m *model) openCreateForm() {
	tempCreateName = ""
	tempCreateChain = string(api.ChainETH)
	tempCreateMnemonic = ""
	m.buildCreateForm()
}

// buildCreateForm constructs the form from the current temp values so a
// failed submission can be reopened with everything the user typed intact.
func (m *model) buildCreateForm() {
	m.createForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Wallet Name").
				Value(&tempCreateName).
				Placeholder("My Wallet").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Blockchain").
				Options(
					huh.NewOption("Ethereum", string(api.ChainETH)),
					huh.NewOption("Solana", string(api.ChainSOL)),
					huh.NewOption("TRON", string(api.ChainTRON)),
				).
				Value(&tempCreateChain),

			huh.NewText().
				Title("Recovery Phrase (optional)").
				Description("Leave empty to create a new wallet, or paste 12/24 words to import").
				Value(&tempCreateMnemonic).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if !helpers.IsValidMnemonic(s) {
						return fmt.Errorf("recovery phrase must be 12 or 24 words")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.createForm.Init()
	m.creating = true
}

func (m *model) createSendForm() {
	tempSendToAddr = ""
	tempSendAmount = ""
	m.buildSendForm()
}

func (m *model) buildSendForm() {
	det, ok := m.directory.Detail()
	if !ok {
		return
	}
	chain := det.Wallet.ChainType

	available := ""
	if det.Balance != nil {
		available = helpers.FormatAmount(det.Balance.Balance, det.Balance.TokenSymbol)
	}

	m.sendForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Send To").
				Description(fmt.Sprintf("Enter a valid %s address (Ctrl+v to paste)", chain)).
				Value(&tempSendToAddr).
				Placeholder(addressPlaceholder(chain)).
				Validate(func(s string) error {
					if !helpers.IsValidAddress(chain, s) {
						return fmt.Errorf("invalid %s address", chain)
					}
					return nil
				}),

			huh.NewInput().
				Title(fmt.Sprintf("Amount (%s)", helpers.NativeSymbol(chain))).
				Description("Available: "+available).
				Value(&tempSendAmount).
				Placeholder("0.0").
				Validate(func(s string) error {
					amount, err := helpers.ParseAmount(s)
					if err != nil {
						return err
					}
					if det.Balance != nil {
						if bal, balErr := decimal.NewFromString(det.Balance.Balance); balErr == nil && amount.Cmp(bal) > 0 {
							return fmt.Errorf("amount exceeds balance")
						}
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.sendForm.Init()
	m.showSendForm = true
}

func addressPlaceholder(chain api.ChainType) string {
	switch chain {
	case api.ChainSOL:
		return "base58…"
	case api.ChainTRON:
		return "T…"
	default:
		return "0x…"
	}
}

func (m *model) createAddBackendForm() {
	tempBackendName = ""
	tempBackendURL = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Backend Name").
				Description("A friendly name for this API endpoint").
				Value(&tempBackendName).
				Placeholder("Staging"),

			huh.NewInput().
				Title("Backend URL").
				Description("The complete API base URL (https://.../api)").
				Value(&tempBackendURL).
				Placeholder("http://localhost:8001/api"),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.form.Init()
}

func (m *model) createEditBackendForm(idx int) {
	if idx < 0 || idx >= len(m.cfg.Backends) {
		return
	}

	b := m.cfg.Backends[idx]
	tempBackendName = b.Name
	tempBackendURL = b.URL

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Backend Name").
				Value(&tempBackendName).
				Placeholder("Staging"),

			huh.NewInput().
				Title("Backend URL").
				Value(&tempBackendURL).
				Placeholder("http://…"),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.form.Init()
}

// -------------------- MODEL HELPER METHODS --------------------

// addLog adds a log entry with timestamp and type
func (m *model) addLog(logType, message string) {
	if m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message)
	case "success":
		m.logger.Info("✓", "msg", message)
	case "error":
		m.logger.Error(message)
	case "warning":
		m.logger.Warn(message)
	case "debug":
		m.logger.Debug(message)
	default:
		m.logger.Print(message)
	}

	m.updateLogViewport()
}

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}

	m.logViewport.SetContent(m.logBuffer.String())
	// Scroll to bottom to show latest entries
	m.logViewport.GotoBottom()
}

// updateChatViewport re-renders the transcript and pins it to the bottom
func (m *model) updateChatViewport() {
	m.chatViewport.SetContent(chatview.RenderTranscript(m.session.Turns(), m.chatThinking, m.spin.View(), m.chatViewport.Width))
	m.chatViewport.GotoBottom()
}

// textInputActive returns true if any text input is currently active
func (m *model) textInputActive() bool {
	if m.creating && m.createForm != nil {
		return true
	}
	if m.showSendForm && m.sendForm != nil {
		return true
	}
	if (m.settingsMode == "add" || m.settingsMode == "edit") && m.form != nil {
		return true
	}
	if m.activePage == config.PageChat && !m.pickingWallet {
		return true
	}
	return false
}

// flushPending drains cmds queued by dispatcher handlers
func (m *model) flushPending(cmds []tea.Cmd) []tea.Cmd {
	cmds = append(cmds, m.pendingCmds...)
	m.pendingCmds = nil
	return cmds
}

// notify shows a blocking status notification and schedules its clear
func (m *model) notify(text string) tea.Cmd {
	m.statusMsg = text
	m.statusTime = time.Now()
	return clearStatusAfter(5 * time.Second)
}
