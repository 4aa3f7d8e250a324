package csvfile

import "testing"

func TestParseLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain fields",
			line: "1,Jean Dupont,FW",
			want: []string{"1", "Jean Dupont", "FW"},
		},
		{
			name: "embedded comma inside quotes",
			line: `"Doe, John",25,FW`,
			want: []string{"Doe, John", "25", "FW"},
		},
		{
			name: "doubled quote escape",
			line: `"The ""Kid""",MF`,
			want: []string{`The "Kid"`, "MF"},
		},
		{
			name: "whitespace trimmed",
			line: " 7 ,  Dupont  ,DF",
			want: []string{"7", "Dupont", "DF"},
		},
		{
			name: "trailing empty field",
			line: "a,b,",
			want: []string{"a", "b", ""},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseLine(tc.line)
			if len(got) != len(tc.want) {
				t.Fatalf("parseLine(%q) = %v, want %v", tc.line, got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("field %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestToStat(t *testing.T) {
	cases := []struct {
		name      string
		raw       string
		wantValid bool
		wantValue float64
	}{
		{name: "integer", raw: "12", wantValid: true, wantValue: 12},
		{name: "decimal", raw: "0.35", wantValid: true, wantValue: 0.35},
		{name: "blank", raw: "", wantValid: false},
		{name: "null marker", raw: "null", wantValid: false},
		{name: "undefined marker", raw: "undefined", wantValid: false},
		{name: "free text", raw: "abc", wantValid: false},
		{name: "partial number", raw: "12abc", wantValid: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := toStat(tc.raw)
			if got.Valid != tc.wantValid {
				t.Fatalf("toStat(%q).Valid = %v, want %v", tc.raw, got.Valid, tc.wantValid)
			}
			if tc.wantValid && got.Value != tc.wantValue {
				t.Fatalf("toStat(%q).Value = %v, want %v", tc.raw, got.Value, tc.wantValue)
			}
		})
	}
}

func TestParseTable(t *testing.T) {
	content := "Rk,Player,Nation,Pos,Squad,Comp,Age,Min,Gls\r\n" +
		"1,\"Doe, John\",eng ENG,FW,Arsenal,eng Premier League,24,1800,12\r\n" +
		"\r\n" +
		"2,Jean Dupont,fr FRA,MF,Lyon,fr Ligue 1,,900,3\r\n"

	players, err := parseTable(content)
	if err != nil {
		t.Fatalf("parseTable: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("got %d players, want 2 (blank lines skipped)", len(players))
	}

	doe := players[0]
	if doe.Name != "Doe, John" {
		t.Fatalf("name = %q, quoted comma mishandled", doe.Name)
	}
	if doe.Goals.Or(0) != 12 || doe.Minutes.Or(0) != 1800 {
		t.Fatalf("numeric coercion broken: %+v", doe)
	}

	dupont := players[1]
	if dupont.Age.Valid {
		t.Fatalf("blank age must be null, got %v", dupont.Age)
	}
	if dupont.Competition != "fr Ligue 1" {
		t.Fatalf("competition = %q", dupont.Competition)
	}
}

func TestParseTableNoHeader(t *testing.T) {
	if _, err := parseTable(""); err == nil {
		t.Fatalf("expected error for empty content")
	}
}
