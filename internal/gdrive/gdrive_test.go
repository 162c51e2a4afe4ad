package gdrive

import "testing"

func TestDirectURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
		err  bool
	}{
		{
			"file形式",
			"https://drive.google.com/file/d/1AbC_dEf-123/view?usp=sharing",
			"https://drive.google.com/uc?export=download&id=1AbC_dEf-123",
			false,
		},
		{
			"idクエリ形式",
			"https://drive.google.com/open?id=1AbC_dEf-123",
			"https://drive.google.com/uc?export=download&id=1AbC_dEf-123",
			false,
		},
		{"URLでない", "P1", "", true},
		{"ID無し", "https://drive.google.com/drive/folders/", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DirectURL(tt.in)
			if tt.err {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("DirectURL(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("DirectURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
