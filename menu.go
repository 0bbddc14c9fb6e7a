package main

import (
	"fmt"
	"strings"
)

// menuItem is one selectable gate in the add-gate menu.
type menuItem struct {
	name        string
	kind        Kind
	symbol      string
	needsParam  bool // rotation gates prompt for an angle
	needsTarget bool // two-qubit gates prompt for a target qubit
	example     string
}

// menuCategory groups related gates.
type menuCategory struct {
	name  string
	items []menuItem
}

// gateMenu defines the full gate palette shown in the add-gate menu.
var gateMenu = []menuCategory{
	{
		name: "Single Qubit",
		items: []menuItem{
			{name: "Identity", kind: KindI, symbol: "I"},
			{name: "Hadamard", kind: KindH, symbol: "H"},
			{name: "Pauli-X", kind: KindX, symbol: "X"},
			{name: "Pauli-Y", kind: KindY, symbol: "Y"},
			{name: "Pauli-Z", kind: KindZ, symbol: "Z"},
		},
	},
	{
		name: "Rotation",
		items: []menuItem{
			{name: "RX", kind: KindRX, symbol: "RX", needsParam: true, example: "pi/2"},
			{name: "RY", kind: KindRY, symbol: "RY", needsParam: true, example: "pi/4"},
			{name: "RZ", kind: KindRZ, symbol: "RZ", needsParam: true, example: "pi"},
		},
	},
	{
		name: "Two Qubit",
		items: []menuItem{
			{name: "CNOT", kind: KindCNOT, symbol: "CX", needsTarget: true},
			{name: "CZ", kind: KindCZ, symbol: "CZ", needsTarget: true},
		},
	},
	{
		name: "Measurement",
		items: []menuItem{
			{name: "Measure", kind: KindMeasure, symbol: "M"},
		},
	},
}

// renderMenu renders the gate selection menu as an overlay box.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Add Gate") + "\n\n")

	for ci, cat := range gateMenu {
		catStyle := menuNormalStyle
		if ci == m.menuCat {
			catStyle = menuSelectedStyle
		}
		sb.WriteString(catStyle.Render(cat.name) + "\n")

		for ii, item := range cat.items {
			prefix := "  "
			style := menuNormalStyle
			if ci == m.menuCat && ii == m.menuItem {
				prefix = "▸ "
				style = menuSelectedStyle
			}
			line := fmt.Sprintf("%s%-4s %s", prefix, item.symbol, item.name)
			if item.needsParam {
				line += dimStyle.Render(fmt.Sprintf("  (θ, e.g. %s)", item.example))
			}
			sb.WriteString(style.Render(line) + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(dimStyle.Render("←→ Category  ↑↓ Gate  Enter Select  Esc Close"))

	return menuBorderStyle.Render(sb.String())
}
