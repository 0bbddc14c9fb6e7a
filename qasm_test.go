package main

import (
	"math"
	"strings"
	"testing"
)

func TestParseParamExpr(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"pi", math.Pi, true},
		{"pi/2", math.Pi / 2, true},
		{"pi/4", math.Pi / 4, true},
		{"2*pi", 2 * math.Pi, true},
		{"2pi", 2 * math.Pi, true},
		{"3*pi/4", 3 * math.Pi / 4, true},
		{"3pi/4", 3 * math.Pi / 4, true},
		{"-pi", -math.Pi, true},
		{"-pi/2", -math.Pi / 2, true},
		{"-3*pi/4", -3 * math.Pi / 4, true},
		{"1.5707", 1.5707, true},
		{"-0.5", -0.5, true},
		{"3.14e-2", 3.14e-2, true},
		{"PI/2", math.Pi / 2, true},
		{"", 0, false},
		{"banana", 0, false},
		{"pi/0", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseParamExpr(tt.input)
		if ok != tt.ok {
			t.Errorf("parseParamExpr(%q): ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("parseParamExpr(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestFormatParam(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{-math.Pi / 2, "-pi/2"},
		{3 * math.Pi / 4, "3*pi/4"},
		{3 * math.Pi / 2, "3*pi/2"},
		{7 * math.Pi / 4, "7*pi/4"},
		{2 * math.Pi, "2*pi"},
		{0.123, "0.123"},
	}

	for _, tt := range tests {
		if got := formatParam(tt.input); got != tt.expected {
			t.Errorf("formatParam(%v) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestParseQASM(t *testing.T) {
	qasm := `OPENQASM 2.0;
include "qelib1.inc";

qreg q[3];
creg c[3];

h q[0];
rx(pi/2) q[1];
cx q[0], q[1];
cz q[1], q[2];
id q[2];
measure q[2] -> c[2];
`
	c, err := ParseQASM(qasm)
	if err != nil {
		t.Fatalf("ParseQASM: %v", err)
	}
	if c.NumQubits != 3 || c.NumClbits != 3 {
		t.Fatalf("registers = (%d, %d), want (3, 3)", c.NumQubits, c.NumClbits)
	}
	if len(c.Ops) != 6 {
		t.Fatalf("got %d ops, want 6", len(c.Ops))
	}

	want := []Operation{
		{Kind: KindH, Target: 0, Control: -1, Clbit: -1},
		{Kind: KindRX, Target: 1, Control: -1, Clbit: -1, Angle: math.Pi / 2},
		{Kind: KindCNOT, Target: 1, Control: 0, Clbit: -1},
		{Kind: KindCZ, Target: 2, Control: 1, Clbit: -1},
		{Kind: KindI, Target: 2, Control: -1, Clbit: -1},
		{Kind: KindMeasure, Target: 2, Control: -1, Clbit: 2},
	}
	for i, op := range want {
		if c.Ops[i] != op {
			t.Errorf("op %d = %+v, want %+v", i, c.Ops[i], op)
		}
	}
}

func TestParseQASMErrors(t *testing.T) {
	tests := []struct {
		name string
		qasm string
		want string
	}{
		{
			name: "unknown gate",
			qasm: "qreg q[1];\ncreg c[1];\nt q[0];",
			want: "unsupported gate",
		},
		{
			name: "unknown two-qubit gate",
			qasm: "qreg q[2];\ncreg c[2];\nswap q[0], q[1];",
			want: "unsupported two-qubit gate",
		},
		{
			name: "garbage line",
			qasm: "qreg q[1];\ncreg c[1];\nwibble;",
			want: "cannot parse",
		},
		{
			name: "qubit out of range",
			qasm: "qreg q[1];\ncreg c[1];\nh q[5];",
			want: "malformed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQASM(tt.qasm)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestQASMRoundTrip(t *testing.T) {
	src := exampleCircuit()
	parsed, err := ParseQASM(ToQASM(src))
	if err != nil {
		t.Fatalf("round trip parse: %v", err)
	}
	if parsed.NumQubits != src.NumQubits || parsed.NumClbits != src.NumClbits {
		t.Fatalf("registers changed: (%d, %d) -> (%d, %d)",
			src.NumQubits, src.NumClbits, parsed.NumQubits, parsed.NumClbits)
	}
	if len(parsed.Ops) != len(src.Ops) {
		t.Fatalf("op count changed: %d -> %d", len(src.Ops), len(parsed.Ops))
	}
	for i := range src.Ops {
		a, b := src.Ops[i], parsed.Ops[i]
		if a.Kind != b.Kind || a.Target != b.Target || a.Control != b.Control || a.Clbit != b.Clbit {
			t.Errorf("op %d: %+v -> %+v", i, a, b)
		}
		if math.Abs(a.Angle-b.Angle) > 1e-10 {
			t.Errorf("op %d angle: %v -> %v", i, a.Angle, b.Angle)
		}
	}

	// the transpiled form survives a round trip too
	opt, err := Optimize(mustDecompose(t, src))
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	reparsed, err := ParseQASM(ToQASM(opt))
	if err != nil {
		t.Fatalf("round trip parse of optimized circuit: %v", err)
	}
	if len(reparsed.Ops) != len(opt.Ops) {
		t.Fatalf("op count changed: %d -> %d", len(opt.Ops), len(reparsed.Ops))
	}
}

func mustDecompose(t *testing.T, c *Circuit) *Circuit {
	t.Helper()
	dec, err := Decompose(c)
	if err != nil {
		t.Fatalf("decompose: %v", err)
	}
	return dec
}
