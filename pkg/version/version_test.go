package version

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{
			name:  "full version",
			input: "2.0.1",
			want:  Version{Major: 2, Minor: 0, Patch: 1},
		},
		{
			name:  "short form major only",
			input: "3",
			want:  Version{Major: 3},
		},
		{
			name:  "short form major.minor",
			input: "0.1",
			want:  Version{Minor: 1},
		},
		{
			name:  "surrounding whitespace",
			input: " 1.2.3 ",
			want:  Version{Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:  "extra components ignored",
			input: "1.2.3.4",
			want:  Version{Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:    "non-numeric",
			input:   "1.x.0",
			wantErr: true,
		},
		{
			name:    "negative component",
			input:   "1.-2.0",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Version
		want int
	}{
		{Version{1, 0, 0}, Version{1, 0, 0}, 0},
		{Version{0, 9, 9}, Version{1, 0, 0}, -1},
		{Version{1, 1, 0}, Version{1, 0, 9}, 1},
		{Version{1, 0, 1}, Version{1, 0, 2}, -1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}

	if !(Version{0, 1, 0}).Less(Version{0, 2, 0}) {
		t.Error("0.1.0 should be less than 0.2.0")
	}
}

func TestString(t *testing.T) {
	v := Version{Major: 2, Minor: 1}
	if got := v.String(); got != "2.1.0" {
		t.Errorf("String() = %q, want %q", got, "2.1.0")
	}
}
