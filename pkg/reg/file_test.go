package reg

import "testing"

func TestNewFileIsZero(t *testing.T) {
	r := NewFile()
	if r.A != 0 || r.F != 0 || r.SP != 0 || r.PC != 0 {
		t.Fatalf("expected zero register file, got %+v", r)
	}
}

func TestGetSet16RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		pair Register16
	}{
		{"AF", AF},
		{"BC", BC},
		{"DE", DE},
		{"HL", HL},
		{"SP", SP},
		{"PC", PC},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var r File
			want := uint16(0xBEE0)
			if tc.pair == AF {
				want = 0xBEE0 // low nibble of F always clears
			}
			r.Set16(tc.pair, want)
			if got := r.Get16(tc.pair); got != want {
				t.Errorf("Set16/Get16(%v) = 0x%04X, want 0x%04X", tc.pair, got, want)
			}
		})
	}
}

func TestSet16HighLowSplit(t *testing.T) {
	var r File
	r.Set16(BC, 0x1234)
	if r.B != 0x12 || r.C != 0x34 {
		t.Fatalf("Set16(BC, 0x1234): B=0x%02X C=0x%02X, want B=0x12 C=0x34", r.B, r.C)
	}
}

func TestFRegisterLowNibbleAlwaysZero(t *testing.T) {
	var r File
	r.Set8(F, 0xFF)
	if r.F&0x0F != 0 {
		t.Fatalf("F low nibble not cleared: F=0x%02X", r.F)
	}
	if r.F != 0xF0 {
		t.Fatalf("F high nibble not preserved: F=0x%02X", r.F)
	}
}

func TestFlagGetSet(t *testing.T) {
	var r File
	r.SetFlag(FlagZero, true)
	r.SetFlag(FlagCarry, true)
	if !r.Flag(FlagZero) || !r.Flag(FlagCarry) {
		t.Fatalf("expected Zero and Carry set, F=0x%02X", r.F)
	}
	if r.Flag(FlagSubtraction) || r.Flag(FlagHalfCarry) {
		t.Fatalf("expected Subtraction and HalfCarry clear, F=0x%02X", r.F)
	}
	if r.F&0x0F != 0 {
		t.Fatalf("low nibble of F must stay zero, F=0x%02X", r.F)
	}
}

func TestSetFlagsBulk(t *testing.T) {
	var r File
	r.SetFlags(
		FlagValue{FlagZero, true},
		FlagValue{FlagHalfCarry, true},
		FlagValue{FlagCarry, false},
	)
	if !r.Flag(FlagZero) || !r.Flag(FlagHalfCarry) || r.Flag(FlagCarry) {
		t.Fatalf("unexpected flag state, F=0x%02X", r.F)
	}
}

func TestNoneRegistersAreHarmless(t *testing.T) {
	var r File
	r.Set8(R8None, 0xFF)
	if r.Get8(R8None) != 0 {
		t.Fatalf("R8None should read as 0")
	}
	r.Set16(R16None, 0xFFFF)
	if r.Get16(R16None) != 0 {
		t.Fatalf("R16None should read as 0")
	}
	r.SetFlag(FlagNone, true)
	if r.Flag(FlagNone) {
		t.Fatalf("FlagNone should read as false")
	}
}
