package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusArea int

const (
	focusCircuit focusArea = iota
	focusQASM
	focusMenu
	focusSelectTarget
	focusInputParam
)

const (
	minQubits = 1
	maxQubits = 6
)

// Model is the bubbletea model for the interactive circuit editor.
type Model struct {
	circuit     *Circuit
	cursorQubit int

	width  int
	height int

	qasmEditor textarea.Model
	focus      focusArea
	lastQASM   string
	statusMsg  string

	// add-gate flow state
	menuCat     int
	menuItem    int
	pendingGate Kind
	targetQubit int
	paramInput  string

	rng *rand.Rand
}

func initialModel() Model {
	ta := textarea.New()
	ta.Placeholder = "OPENQASM 2.0;"
	ta.ShowLineNumbers = true
	ta.SetWidth(44)
	ta.SetHeight(18)

	m := Model{
		circuit:    NewCircuit(3, 3),
		qasmEditor: ta,
		focus:      focusCircuit,
		rng:        rand.New(rand.NewPCG(42, 1)),
	}
	m.syncQASM()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// syncQASM regenerates the QASM panel from the circuit.
func (m *Model) syncQASM() {
	m.lastQASM = ToQASM(m.circuit)
	m.qasmEditor.SetValue(m.lastQASM)
}

// applyQASM parses the editor contents back into the circuit.
func (m *Model) applyQASM() {
	parsed, err := ParseQASM(m.qasmEditor.Value())
	if err != nil {
		m.statusMsg = fmt.Sprintf("QASM error: %v", err)
		m.syncQASM()
		return
	}
	m.circuit = parsed
	if m.cursorQubit >= m.circuit.NumQubits {
		m.cursorQubit = max(m.circuit.NumQubits-1, 0)
	}
	m.statusMsg = "QASM applied"
	m.syncQASM()
}

// compile rewrites the circuit to the native gate set, optionally running the
// rotation merger, and reports the result in the status line.
func (m *Model) compile(optimize bool) {
	before := len(m.circuit.Ops)
	dec, err := Decompose(m.circuit)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	result := dec
	label := "decomposed"
	if optimize {
		result, err = Optimize(dec)
		if err != nil {
			m.statusMsg = err.Error()
			return
		}
		label = "optimized"
	}

	verdict := ""
	if m.circuit.NumQubits <= maxVerifyQubits {
		if GlobalPhaseEquivalent(UnitaryOf(m.circuit), UnitaryOf(result)) {
			verdict = ", unitary ✓"
		} else {
			verdict = ", unitary MISMATCH"
		}
	}

	m.statusMsg = fmt.Sprintf("%s: %d → %d ops%s", label, before, len(result.Ops), verdict)
	m.circuit = result
	m.syncQASM()
}

// addPendingGate commits the gate selected in the menu at the cursor qubit.
func (m *Model) addPendingGate(item menuItem) {
	switch {
	case item.needsTarget:
		if m.circuit.NumQubits < 2 {
			m.statusMsg = fmt.Sprintf("%s needs two qubits", item.name)
			m.focus = focusCircuit
			return
		}
		m.pendingGate = item.kind
		m.targetQubit = (m.cursorQubit + 1) % m.circuit.NumQubits
		m.focus = focusSelectTarget
	case item.needsParam:
		m.pendingGate = item.kind
		m.paramInput = ""
		m.focus = focusInputParam
		m.statusMsg = fmt.Sprintf("%s angle: ▏ (e.g. %s, Enter to confirm)", item.name, item.example)
	case item.kind == KindMeasure:
		m.circuit.AddMeasure(m.cursorQubit, m.cursorQubit)
		m.statusMsg = fmt.Sprintf("measure q[%d] -> c[%d]", m.cursorQubit, m.cursorQubit)
		m.focus = focusCircuit
		m.syncQASM()
	default:
		m.circuit.AddGate(item.kind, m.cursorQubit)
		m.statusMsg = fmt.Sprintf("added %s on q[%d]", item.name, m.cursorQubit)
		m.focus = focusCircuit
		m.syncQASM()
	}
}

// setQubits resizes the register, dropping operations that no longer fit.
func (m *Model) setQubits(n int) {
	if n < minQubits || n > maxQubits {
		return
	}
	kept := make([]Operation, 0, len(m.circuit.Ops))
	for _, op := range m.circuit.Ops {
		fits := op.Target < n && (op.Control < 0 || op.Control < n) && (op.Clbit < 0 || op.Clbit < n)
		if fits {
			kept = append(kept, op)
		}
	}
	m.circuit.NumQubits = n
	m.circuit.NumClbits = n
	m.circuit.Ops = kept
	if m.cursorQubit >= n {
		m.cursorQubit = n - 1
	}
	m.syncQASM()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.qasmEditor.SetHeight(max(msg.Height-12, 6))
		return m, nil

	case tea.KeyMsg:
		switch m.focus {
		case focusQASM:
			return m.updateQASM(msg)
		case focusMenu:
			return m.updateMenu(msg)
		case focusSelectTarget:
			return m.updateSelectTarget(msg)
		case focusInputParam:
			return m.updateInputParam(msg)
		default:
			return m.updateCircuit(msg)
		}
	}
	return m, nil
}

func (m Model) updateCircuit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.focus = focusQASM
		m.qasmEditor.Focus()
		return m, textarea.Blink
	case "up", "k":
		if m.cursorQubit > 0 {
			m.cursorQubit--
		}
	case "down", "j":
		if m.cursorQubit < m.circuit.NumQubits-1 {
			m.cursorQubit++
		}
	case "a":
		m.focus = focusMenu
		m.menuCat, m.menuItem = 0, 0
	case "u":
		if n := len(m.circuit.Ops); n > 0 {
			m.circuit.Ops = m.circuit.Ops[:n-1]
			m.statusMsg = "undo"
			m.syncQASM()
		}
	case "ctrl+r":
		m.circuit = NewCircuit(3, 3)
		m.cursorQubit = 0
		m.statusMsg = "reset"
		m.syncQASM()
	case "g":
		m.circuit = RandomCircuit(m.rng, m.circuit.NumQubits, 8)
		m.statusMsg = "random circuit"
		m.syncQASM()
	case "d":
		m.compile(false)
	case "o":
		m.compile(true)
	case "+", "=":
		m.setQubits(m.circuit.NumQubits + 1)
	case "-", "_":
		m.setQubits(m.circuit.NumQubits - 1)
	case "ctrl+s":
		if err := os.WriteFile("circuit.qasm", []byte(m.lastQASM), 0o644); err != nil {
			m.statusMsg = fmt.Sprintf("save failed: %v", err)
		} else {
			m.statusMsg = "saved circuit.qasm"
		}
	}
	return m, nil
}

func (m Model) updateQASM(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "esc":
		m.qasmEditor.Blur()
		m.focus = focusCircuit
		m.applyQASM()
		return m, nil
	}
	var cmd tea.Cmd
	m.qasmEditor, cmd = m.qasmEditor.Update(msg)
	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "a", "q":
		m.focus = focusCircuit
	case "left", "h":
		if m.menuCat > 0 {
			m.menuCat--
			m.menuItem = 0
		}
	case "right", "l":
		if m.menuCat < len(gateMenu)-1 {
			m.menuCat++
			m.menuItem = 0
		}
	case "up", "k":
		if m.menuItem > 0 {
			m.menuItem--
		}
	case "down", "j":
		if m.menuItem < len(gateMenu[m.menuCat].items)-1 {
			m.menuItem++
		}
	case "enter":
		m.addPendingGate(gateMenu[m.menuCat].items[m.menuItem])
	}
	return m, nil
}

func (m Model) updateSelectTarget(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusCircuit
		m.statusMsg = "cancelled"
	case "up", "k":
		if m.targetQubit > 0 {
			m.targetQubit--
			if m.targetQubit == m.cursorQubit && m.targetQubit > 0 {
				m.targetQubit--
			}
		}
	case "down", "j":
		if m.targetQubit < m.circuit.NumQubits-1 {
			m.targetQubit++
			if m.targetQubit == m.cursorQubit && m.targetQubit < m.circuit.NumQubits-1 {
				m.targetQubit++
			}
		}
	case "enter":
		if m.targetQubit != m.cursorQubit {
			m.circuit.AddControlled(m.pendingGate, m.cursorQubit, m.targetQubit)
			m.statusMsg = fmt.Sprintf("added %s q[%d], q[%d]", m.pendingGate, m.cursorQubit, m.targetQubit)
			m.focus = focusCircuit
			m.syncQASM()
		}
	}
	return m, nil
}

func (m Model) updateInputParam(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusCircuit
		m.statusMsg = "cancelled"
		return m, nil
	case "enter":
		angle, ok := parseParamExpr(m.paramInput)
		if !ok {
			m.statusMsg = fmt.Sprintf("bad angle %q, try pi/2 or 1.57", m.paramInput)
			return m, nil
		}
		m.circuit.AddRotation(m.pendingGate, m.cursorQubit, angle)
		m.statusMsg = fmt.Sprintf("added %s(%s) on q[%d]", m.pendingGate, formatParam(angle), m.cursorQubit)
		m.focus = focusCircuit
		m.syncQASM()
		return m, nil
	case "backspace":
		if len(m.paramInput) > 0 {
			m.paramInput = m.paramInput[:len(m.paramInput)-1]
		}
	default:
		if len(msg.String()) == 1 {
			m.paramInput += msg.String()
		}
	}
	m.statusMsg = fmt.Sprintf("%s angle: %s▏ (Enter to confirm)", m.pendingGate, m.paramInput)
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	qasmWidth := 48
	circuitWidth := max(m.width-qasmWidth-6, 40)
	mainHeight := max(m.height-8, 12)

	circuitPanel := m.renderCircuitPanel(circuitWidth, mainHeight)
	qasmPanel := m.renderQASMPanel(qasmWidth, mainHeight)
	controls := m.renderControlsPanel(m.width-4, 3)

	main := lipgloss.JoinHorizontal(lipgloss.Top, circuitPanel, qasmPanel)
	view := lipgloss.JoinVertical(lipgloss.Left, main, controls)

	if m.focus == focusMenu {
		menu := m.renderMenu()
		view = overlayAt(view, menu, 6, 2)
	}
	return view
}
