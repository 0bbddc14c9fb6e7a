package main

import (
	"fmt"
	"strings"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// gateDisplayName returns a short display name for a gate.
func gateDisplayName(op Operation) string {
	switch op.Kind {
	case KindMeasure:
		return "M"
	case KindCNOT:
		return "CX"
	default:
		return op.Kind.String()
	}
}

// targetSymbol returns the wire symbol for the target qubit of a two-qubit gate.
func targetSymbol(kind Kind) string {
	if kind == KindCZ {
		return "●"
	}
	return "⊕"
}

// circuitLayout is the display geometry of a circuit: each operation's
// column, computed from the dependency graph so that concurrent operations
// share a column even though the log stores them one after another.
type circuitLayout struct {
	steps    []int // per-op column
	maxSteps int
}

func layoutCircuit(c *Circuit) circuitLayout {
	g, err := BuildDepGraph(c)
	if err != nil {
		// malformed circuits are caught before rendering; fall back to one
		// op per column rather than crash the view
		steps := make([]int, len(c.Ops))
		for i := range steps {
			steps[i] = i
		}
		return circuitLayout{steps: steps, maxSteps: len(c.Ops)}
	}
	levels := g.Levels()
	maxSteps := 0
	for _, l := range levels {
		if l+1 > maxSteps {
			maxSteps = l + 1
		}
	}
	return circuitLayout{steps: levels, maxSteps: maxSteps}
}

// cellInfo describes what occupies a single cell in the circuit grid.
type cellInfo struct {
	op           *Operation
	isControl    bool
	isTarget     bool
	vertAbove    bool
	vertBelow    bool
	passThrough  bool
	measureBelow bool
}

// cellAt returns rendering information for the cell at (step, qubit).
func (l circuitLayout) cellAt(c *Circuit, step, qubit int) cellInfo {
	var info cellInfo

	for i := range c.Ops {
		if l.steps[i] != step {
			continue
		}
		op := &c.Ops[i]

		if op.Touches(qubit) && info.op == nil {
			info.op = op
			info.isControl = op.Control == qubit
			info.isTarget = op.Target == qubit && op.Control >= 0
		}

		// Vertical connection span for two-qubit gates
		if op.Control >= 0 {
			minQ, maxQ := min(op.Control, op.Target), max(op.Control, op.Target)
			if qubit >= minQ && qubit <= maxQ {
				if qubit > minQ {
					info.vertAbove = true
				}
				if qubit < maxQ {
					info.vertBelow = true
				}
				if qubit > minQ && qubit < maxQ && info.op == nil {
					info.passThrough = true
				}
			}
		}

		// Measurement connection down to the classical wire
		if op.Kind == KindMeasure && qubit > op.Target {
			info.measureBelow = true
		}
	}

	return info
}

// measureAt returns the classical bit receiving a measurement at the given
// step, or -1.
func (l circuitLayout) measureAt(c *Circuit, step int) int {
	for i, op := range c.Ops {
		if l.steps[i] == step && op.Kind == KindMeasure {
			return op.Clbit
		}
	}
	return -1
}

// ──────────────────────────── Cell rendering ────────────────────────────

type cellHighlight int

const (
	hlNone cellHighlight = iota
	hlCursor
	hlTargetSelect
)

// renderCell returns 3 lines (top, mid, bot) for a single cell.
// Each line is exactly cellW visual characters wide.
func renderCell(info cellInfo, hl cellHighlight) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dblVertRow := strings.Repeat(" ", halfW) + cbitConnectorStyle.Render("║") + strings.Repeat(" ", cellW-halfW-1)

	// ── Highlighted cell (cursor or target selection) ──
	if hl == hlCursor || hl == hlTargetSelect {
		bdr := cursorBoxStyle
		if hl == hlTargetSelect {
			bdr = targetSelectStyle
		}
		innerW := cellW - 2
		dashL := (innerW - 1) / 2
		dashR := innerW - dashL - 1

		top = bdr.Render("╔" + strings.Repeat("═", innerW) + "╗")
		bot = bdr.Render("╚" + strings.Repeat("═", innerW) + "╝")

		switch {
		case info.op != nil && info.isControl:
			mid = bdr.Render("║") + strings.Repeat("─", dashL) + gateStyle.Render("●") + strings.Repeat("─", dashR) + bdr.Render("║")
		case info.op != nil && info.isTarget:
			sym := targetSymbol(info.op.Kind)
			mid = bdr.Render("║") + strings.Repeat("─", dashL) + gateStyle.Render(sym) + strings.Repeat("─", dashR) + bdr.Render("║")
		case info.op != nil:
			name := padCenter(gateDisplayName(*info.op), gateNameW)
			mid = bdr.Render("║") + "─┤" + gateStyle.Render(name) + "├─" + bdr.Render("║")
		case info.passThrough:
			mid = bdr.Render("║") + strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR) + bdr.Render("║")
		default:
			mid = bdr.Render("║") + strings.Repeat("─", innerW) + bdr.Render("║")
		}

		return
	}

	// ── Normal (non-highlighted) cells ──
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	switch {
	case info.op != nil && (info.isControl || info.isTarget):
		top = emptyRow
		if info.vertAbove {
			top = vertRow
		}
		sym := "●"
		if info.isTarget {
			sym = targetSymbol(info.op.Kind)
		}
		mid = strings.Repeat("─", dashL) + gateStyle.Render(sym) + strings.Repeat("─", dashR)
		bot = emptyRow
		if info.vertBelow {
			bot = vertRow
		}
		if info.measureBelow {
			bot = dblVertRow
		}

	case info.op != nil:
		// Boxed single-qubit gate or measurement
		margin := (cellW - gateBoxW) / 2
		rightMargin := cellW - margin - gateBoxW
		name := padCenter(gateDisplayName(*info.op), gateNameW)

		top = strings.Repeat(" ", margin) + gateStyle.Render("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin)
		mid = strings.Repeat("─", margin) + gateStyle.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)
		bot = strings.Repeat(" ", margin) + gateStyle.Render("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)
		if info.op.Kind == KindMeasure || info.measureBelow {
			bot = dblVertRow
		}

	case info.passThrough:
		top = vertRow
		mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
		bot = vertRow
		if info.measureBelow {
			bot = dblVertRow
		}

	case info.measureBelow:
		// No gate here, but a measurement connection passes through vertically
		top = dblVertRow
		mid = strings.Repeat("─", dashL) + cbitConnectorStyle.Render("╫") + strings.Repeat("─", dashR)
		bot = dblVertRow
		if info.vertAbove {
			top = vertRow
		}

	default:
		// Empty wire
		top = emptyRow
		if info.vertAbove {
			top = vertRow
		}
		mid = strings.Repeat("─", cellW)
		bot = emptyRow
		if info.vertBelow {
			bot = vertRow
		}
	}

	return
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderCircuitPanel renders the circuit grid panel.
func (m Model) renderCircuitPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Circuit"))
	fmt.Fprintf(&sb, "  %s\n\n", dimStyle.Render(fmt.Sprintf("%d ops", len(m.circuit.Ops))))

	layout := layoutCircuit(m.circuit)

	// How many steps fit
	availWidth := width - labelVisualW - 4
	maxVisible := max(availWidth/cellW, 1)
	startStep := 0
	if layout.maxSteps > maxVisible {
		startStep = layout.maxSteps - maxVisible
		fmt.Fprintf(&sb, "  ◀ showing steps %d..%d\n", startStep, startStep+maxVisible-1)
	}

	// Step number header
	header := strings.Repeat(" ", labelVisualW)
	for step := startStep; step < startStep+maxVisible; step++ {
		header += dimStyle.Render(padCenter(fmt.Sprintf("%d", step), cellW))
	}
	sb.WriteString(header + "\n")

	// Render each qubit as 3 lines
	for qubit := range m.circuit.NumQubits {
		topLine := strings.Repeat(" ", labelVisualW)
		label := fmt.Sprintf("q[%d]", qubit)
		midLine := qubitLabelStyle.Render(fmt.Sprintf("%-5s", label)) + "──"
		botLine := strings.Repeat(" ", labelVisualW)

		for step := startStep; step < startStep+maxVisible; step++ {
			info := layout.cellAt(m.circuit, step, qubit)

			hl := hlNone
			if qubit == m.cursorQubit && (m.focus == focusCircuit || m.focus == focusMenu) && step == startStep+maxVisible-1 {
				hl = hlCursor
			} else if qubit == m.targetQubit && m.focus == focusSelectTarget && step == startStep+maxVisible-1 {
				hl = hlTargetSelect
			} else if qubit == m.cursorQubit && m.focus == focusSelectTarget && step == startStep+maxVisible-1 {
				hl = hlCursor
			}

			top, mid, bot := renderCell(info, hl)
			topLine += top
			midLine += mid
			botLine += bot
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	// ── Classical bit wire (single line) ──
	if m.circuit.NumClbits > 0 {
		label := fmt.Sprintf("c%d", m.circuit.NumClbits)
		cbitLine := cbitLabelStyle.Render(fmt.Sprintf("%-5s", label)) + cbitWireStyle.Render("══")

		for step := startStep; step < startStep+maxVisible; step++ {
			clbit := layout.measureAt(m.circuit, step)
			if clbit >= 0 {
				bitLabel := fmt.Sprintf("%d", clbit)
				dashL := (cellW - 1) / 2
				dashR := max(cellW-dashL-1-len(bitLabel), 0)
				cbitLine += cbitWireStyle.Render(strings.Repeat("═", dashL)) +
					cbitConnectorStyle.Render("╩"+bitLabel) +
					cbitWireStyle.Render(strings.Repeat("═", dashR))
			} else {
				cbitLine += cbitWireStyle.Render(strings.Repeat("═", cellW))
			}
		}
		sb.WriteString(cbitLine + "\n")
	}

	// ── Per-qubit |1⟩ probabilities from the simulator ──
	probs := SimulateCircuit(m.circuit).GetQubitProbabilities()
	sb.WriteString("\n  " + dimStyle.Render("p(1):"))
	for q, p := range probs {
		fmt.Fprintf(&sb, " %s", dimStyle.Render(fmt.Sprintf("q%d=%.2f", q, p.Prob1)))
	}

	// Status line
	if m.focus == focusSelectTarget {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  %s", activeGateStyle.Render(m.pendingGate.String()))
		sb.WriteString("  Select target qubit: ")
		fmt.Fprintf(&sb, "%s", targetSelectStyle.Render(fmt.Sprintf("q[%d]", m.targetQubit)))
		sb.WriteString(dimStyle.Render("   ↑↓ Move  Enter Confirm  Esc Cancel"))
	} else {
		fmt.Fprintf(&sb, "\n  Qubit %d", m.cursorQubit)
		if m.statusMsg != "" {
			fmt.Fprintf(&sb, "  │  %s", activeGateStyle.Render(m.statusMsg))
		}
	}

	return circuitStyle.Width(width).Height(height).Render(sb.String())
}

// renderQASMPanel renders the QASM editor panel.
func (m Model) renderQASMPanel(width, height int) string {
	var sb strings.Builder

	title := "QASM"
	if m.focus == focusQASM {
		title += " [ACTIVE]"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(m.qasmEditor.View())

	return qasmStyle.Width(width).Height(height).Render(sb.String())
}

// renderControlsPanel renders the bottom help/controls bar.
func (m Model) renderControlsPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(activeGateStyle.Render("Edit:     "))
	sb.WriteString("↑↓/jk Qubit  +/- Qubits  a Add gate  u Undo  g Random  ^R Reset\n")

	sb.WriteString(activeGateStyle.Render("Compile:  "))
	sb.WriteString("d Decompose  o Decompose+Optimize    ")
	sb.WriteString(activeGateStyle.Render("Misc: "))
	sb.WriteString("Tab Focus  ^S Save  q Quit")

	return controlsStyle.Width(width).Height(height).Render(sb.String())
}

// ──────────────────────────── Overlay helpers ────────────────────────────

// overlayAt composites the overlay string on top of the background at position (x, y).
// It handles ANSI escape sequences by tracking visible column positions.
func overlayAt(bg, overlay string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	ovLines := strings.Split(overlay, "\n")

	for i, ovLine := range ovLines {
		bgIdx := y + i
		if bgIdx < 0 || bgIdx >= len(bgLines) {
			continue
		}
		bgLines[bgIdx] = spliceLineAt(bgLines[bgIdx], ovLine, x)
	}
	return strings.Join(bgLines, "\n")
}

// spliceLineAt replaces visible columns starting at position x in bgLine with overlay content.
// It properly handles ANSI escape sequences in the background line.
func spliceLineAt(bgLine, overlay string, x int) string {
	runes := []rune(bgLine)
	ovWidth := visibleLen(overlay)

	var prefix strings.Builder
	var suffix strings.Builder

	col := 0
	i := 0
	inEsc := false

	// Collect prefix: everything up to visible column x
	for i < len(runes) && col < x {
		if runes[i] == '\x1b' {
			inEsc = true
			for i < len(runes) {
				prefix.WriteRune(runes[i])
				if inEsc && runes[i] != '\x1b' && runes[i] != '[' && ((runes[i] >= 'A' && runes[i] <= 'Z') || (runes[i] >= 'a' && runes[i] <= 'z')) {
					inEsc = false
					i++
					break
				}
				i++
			}
		} else {
			prefix.WriteRune(runes[i])
			col++
			i++
		}
	}

	// Pad prefix if bg line is shorter than x
	for col < x {
		prefix.WriteRune(' ')
		col++
	}

	// Skip over ovWidth visible columns in the background
	skipped := 0
	for i < len(runes) && skipped < ovWidth {
		if runes[i] == '\x1b' {
			for i < len(runes) {
				i++
				if i > 0 && runes[i-1] != '\x1b' && runes[i-1] != '[' && ((runes[i-1] >= 'A' && runes[i-1] <= 'Z') || (runes[i-1] >= 'a' && runes[i-1] <= 'z')) {
					break
				}
			}
		} else {
			skipped++
			i++
		}
	}

	// Collect suffix: rest of the background line
	for i < len(runes) {
		suffix.WriteRune(runes[i])
		i++
	}

	return prefix.String() + overlay + suffix.String()
}

// visibleLen returns the number of visible (non-ANSI-escape) characters in a string.
func visibleLen(s string) int {
	n := 0
	inEsc := false
	for _, r := range s {
		if r == '\x1b' {
			inEsc = true
			continue
		}
		if inEsc {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEsc = false
			}
			continue
		}
		n++
	}
	return n
}
