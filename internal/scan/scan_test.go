package scan

import "testing"

func collect(t *testing.T, src string) []Token {
	t.Helper()
	s := New(src)
	var toks []Token
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestScanner_Literals(t *testing.T) {
	toks := collect(t, "hello world")
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1", len(toks))
	}
	if toks[0].IsDir || toks[0].Lit != "hello world" {
		t.Errorf("got %+v, want literal %q", toks[0], "hello world")
	}
}

func TestScanner_Directives(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Directive
	}{
		{
			name: "plain int",
			src:  "%d",
			want: Directive{Raw: "%d", Width: -1, Precision: -1, Verb: VerbInt, Char: 'd'},
		},
		{
			name: "i alias",
			src:  "%i",
			want: Directive{Raw: "%i", Width: -1, Precision: -1, Verb: VerbInt, Char: 'i'},
		},
		{
			name: "width",
			src:  "%5d",
			want: Directive{Raw: "%5d", Width: 5, Precision: -1, Verb: VerbInt, Char: 'd'},
		},
		{
			name: "zero pad width",
			src:  "%05d",
			want: Directive{Raw: "%05d", Width: 5, Precision: -1, Flags: FlagZero, Verb: VerbInt, Char: 'd'},
		},
		{
			name: "flags in any order",
			src:  "%0-+d",
			want: Directive{Raw: "%0-+d", Width: -1, Precision: -1, Flags: FlagZero | FlagMinus | FlagPlus, Verb: VerbInt, Char: 'd'},
		},
		{
			name: "repeated flags idempotent",
			src:  "%--5d",
			want: Directive{Raw: "%--5d", Width: 5, Precision: -1, Flags: FlagMinus, Verb: VerbInt, Char: 'd'},
		},
		{
			name: "width from argument",
			src:  "%*d",
			want: Directive{Raw: "%*d", Width: -1, Precision: -1, WidthArg: true, Verb: VerbInt, Char: 'd'},
		},
		{
			name: "precision",
			src:  "%.2s",
			want: Directive{Raw: "%.2s", Width: -1, Precision: 2, Verb: VerbString, Char: 's'},
		},
		{
			name: "bare dot is precision zero",
			src:  "%.d",
			want: Directive{Raw: "%.d", Width: -1, Precision: 0, Verb: VerbInt, Char: 'd'},
		},
		{
			name: "precision from argument",
			src:  "%.*f",
			want: Directive{Raw: "%.*f", Width: -1, Precision: 0, PrecArg: true, Verb: VerbFloat, Char: 'f'},
		},
		{
			name: "width and precision",
			src:  "%8.3f",
			want: Directive{Raw: "%8.3f", Width: 8, Precision: 3, Verb: VerbFloat, Char: 'f'},
		},
		{
			name: "short modifier",
			src:  "%hd",
			want: Directive{Raw: "%hd", Width: -1, Precision: -1, Mod: ModShort, Verb: VerbInt, Char: 'd'},
		},
		{
			name: "char modifier longest match",
			src:  "%hhu",
			want: Directive{Raw: "%hhu", Width: -1, Precision: -1, Mod: ModChar, Verb: VerbUint, Char: 'u'},
		},
		{
			name: "long long modifier",
			src:  "%lld",
			want: Directive{Raw: "%lld", Width: -1, Precision: -1, Mod: ModLongLong, Verb: VerbInt, Char: 'd'},
		},
		{
			name: "size modifier",
			src:  "%zu",
			want: Directive{Raw: "%zu", Width: -1, Precision: -1, Mod: ModSize, Verb: VerbUint, Char: 'u'},
		},
		{
			name: "upper hex",
			src:  "%X",
			want: Directive{Raw: "%X", Width: -1, Precision: -1, Verb: VerbHexUpper, Char: 'X'},
		},
		{
			name: "alt form hex",
			src:  "%#x",
			want: Directive{Raw: "%#x", Width: -1, Precision: -1, Flags: FlagAlt, Verb: VerbHex, Char: 'x'},
		},
		{
			name: "pointer",
			src:  "%p",
			want: Directive{Raw: "%p", Width: -1, Precision: -1, Verb: VerbPointer, Char: 'p'},
		},
		{
			name: "percent literal",
			src:  "%%",
			want: Directive{Raw: "%%", Width: -1, Precision: -1, Verb: VerbPercent, Char: '%'},
		},
		{
			name: "unrecognized conversion",
			src:  "%q",
			want: Directive{Raw: "%q", Width: -1, Precision: -1, Verb: VerbBad, Char: 'q'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := collect(t, tt.src)
			if len(toks) != 1 {
				t.Fatalf("got %d tokens, want 1", len(toks))
			}
			if !toks[0].IsDir {
				t.Fatalf("got literal %q, want directive", toks[0].Lit)
			}
			if toks[0].Dir != tt.want {
				t.Errorf("got %+v, want %+v", toks[0].Dir, tt.want)
			}
		})
	}
}

func TestScanner_Mixed(t *testing.T) {
	toks := collect(t, "x=%d, y=%d\n")
	want := []struct {
		lit   string
		isDir bool
	}{
		{"x=", false},
		{"", true},
		{", y=", false},
		{"", true},
		{"\n", false},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].IsDir != w.isDir {
			t.Errorf("token %d: IsDir = %v, want %v", i, toks[i].IsDir, w.isDir)
		}
		if !w.isDir && toks[i].Lit != w.lit {
			t.Errorf("token %d: Lit = %q, want %q", i, toks[i].Lit, w.lit)
		}
	}
}

func TestScanner_Offsets(t *testing.T) {
	toks := collect(t, "ab%dcd%s")
	if toks[1].Dir.Offset != 2 {
		t.Errorf("first directive offset = %d, want 2", toks[1].Dir.Offset)
	}
	if toks[3].Dir.Offset != 6 {
		t.Errorf("second directive offset = %d, want 6", toks[3].Dir.Offset)
	}
}

func TestScanner_TrailingPercent(t *testing.T) {
	toks := collect(t, "100%")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2", len(toks))
	}
	if toks[1].IsDir || toks[1].Lit != "%" {
		t.Errorf("trailing %% = %+v, want literal %q", toks[1], "%")
	}
}

func TestScanner_TruncatedDirective(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"%05", "%05"},
		{"%-", "%-"},
		{"%.", "%."},
		{"%ll", "%ll"},
		{"abc%0", "%0"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := collect(t, tt.src)
			last := toks[len(toks)-1]
			if last.IsDir || last.Lit != tt.want {
				t.Errorf("got %+v, want literal %q", last, tt.want)
			}
		})
	}
}

func TestVerb_Consumes(t *testing.T) {
	if VerbPercent.Consumes() {
		t.Error("percent literal must not consume arguments")
	}
	if VerbBad.Consumes() {
		t.Error("unrecognized conversion must not consume arguments")
	}
	if !VerbInt.Consumes() || !VerbString.Consumes() {
		t.Error("value verbs must consume arguments")
	}
}
