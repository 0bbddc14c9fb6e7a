package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pre-compiled regexps for QASM parsing.
var (
	singleGateRegex      = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	singleGateParamRegex = regexp.MustCompile(`^(\w+)\s*\(\s*(` + paramPattern + `)\s*\)\s+q\[(\d+)\];?$`)
	twoQubitRegex        = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	measureRegex         = regexp.MustCompile(`^measure\s+q\[(\d+)\]\s*->\s*c\[(\d+)\];?$`)
	qregRegex            = regexp.MustCompile(`qreg\s+q\[(\d+)\]`)
	cregRegex            = regexp.MustCompile(`creg\s+c\[(\d+)\]`)
)

// ToQASM renders the circuit as OPENQASM 2.0 in authoring order.
func ToQASM(c *Circuit) string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", max(c.NumQubits, 1))
	fmt.Fprintf(&sb, "creg c[%d];\n\n", max(c.NumClbits, 1))

	for _, op := range c.Ops {
		switch {
		case op.Kind == KindMeasure:
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", op.Target, op.Clbit)
		case op.Kind.Arity() == 2:
			fmt.Fprintf(&sb, "%s q[%d], q[%d];\n", op.Kind.qasmName(), op.Control, op.Target)
		case op.Kind.IsRotation():
			fmt.Fprintf(&sb, "%s(%s) q[%d];\n", op.Kind.qasmName(), formatParam(op.Angle), op.Target)
		default:
			fmt.Fprintf(&sb, "%s q[%d];\n", op.Kind.qasmName(), op.Target)
		}
	}

	return sb.String()
}

// ParseQASM parses OPENQASM 2.0 text into a circuit. Only the supported
// vocabulary (id, h, x, y, z, rx, ry, rz, cx, cz, measure) is accepted;
// anything else is an error, since a silently skipped gate would change the
// circuit's meaning.
func ParseQASM(qasm string) (*Circuit, error) {
	c := NewCircuit(0, 0)

	for ln, line := range strings.Split(qasm, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include") {
			continue
		}
		if strings.HasPrefix(line, "qreg") {
			if matches := qregRegex.FindStringSubmatch(line); matches != nil {
				c.NumQubits, _ = strconv.Atoi(matches[1])
			}
			continue
		}
		if strings.HasPrefix(line, "creg") {
			if matches := cregRegex.FindStringSubmatch(line); matches != nil {
				c.NumClbits, _ = strconv.Atoi(matches[1])
			}
			continue
		}

		// Measurement: "measure q[0] -> c[0];"
		if matches := measureRegex.FindStringSubmatch(line); matches != nil {
			qubit, _ := strconv.Atoi(matches[1])
			clbit, _ := strconv.Atoi(matches[2])
			c.AddMeasure(qubit, clbit)
			continue
		}

		// Two-qubit gates: cx, cz
		if matches := twoQubitRegex.FindStringSubmatch(line); matches != nil {
			kind, ok := parseKind(strings.ToLower(matches[1]))
			if !ok || kind.Arity() != 2 {
				return nil, fmt.Errorf("line %d: unsupported two-qubit gate %q", ln+1, matches[1])
			}
			control, _ := strconv.Atoi(matches[2])
			target, _ := strconv.Atoi(matches[3])
			c.AddControlled(kind, control, target)
			continue
		}

		// Rotations: rx(theta), ry(theta), rz(theta)
		if matches := singleGateParamRegex.FindStringSubmatch(line); matches != nil {
			kind, ok := parseKind(strings.ToLower(matches[1]))
			if !ok || !kind.IsRotation() {
				return nil, fmt.Errorf("line %d: unsupported parameterized gate %q", ln+1, matches[1])
			}
			angle, ok := parseParamExpr(matches[2])
			if !ok {
				return nil, fmt.Errorf("line %d: bad angle %q", ln+1, matches[2])
			}
			target, _ := strconv.Atoi(matches[3])
			c.AddRotation(kind, target, angle)
			continue
		}

		// Plain single-qubit gates: id, h, x, y, z
		if matches := singleGateRegex.FindStringSubmatch(line); matches != nil {
			kind, ok := parseKind(strings.ToLower(matches[1]))
			if !ok || kind.Arity() != 1 || kind.IsRotation() || kind == KindMeasure {
				return nil, fmt.Errorf("line %d: unsupported gate %q", ln+1, matches[1])
			}
			target, _ := strconv.Atoi(matches[2])
			c.AddGate(kind, target)
			continue
		}

		return nil, fmt.Errorf("line %d: cannot parse %q", ln+1, line)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
