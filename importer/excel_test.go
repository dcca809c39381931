package importer

import "testing"

func TestParseRow(t *testing.T) {
	cfg := DefaultImportConfig()

	cases := []struct {
		name    string
		row     []string
		wantErr bool
	}{
		{"valid", []string{"12", "3", "Psalms 46-50", "Songs of refuge"}, false},
		{"no title", []string{"1", "1", "Genesis 1-3"}, false},
		{"padded cells", []string{" 2 ", " 5 ", " Exodus 1-4 ", ""}, false},
		{"missing week", []string{"", "1", "Genesis 1-3"}, true},
		{"week not a number", []string{"first", "1", "Genesis 1-3"}, true},
		{"day out of range", []string{"1", "8", "Genesis 1-3"}, true},
		{"empty reference", []string{"1", "1", ""}, true},
		{"short row", []string{"1"}, true},
	}

	for _, c := range cases {
		section, err := parseRow(c.row, cfg)
		if c.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got %+v", c.name, section)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
		}
	}

	section, err := parseRow([]string{"12", "3", "Psalms 46-50", "Songs of refuge"}, cfg)
	if err != nil {
		t.Fatalf("parseRow: %v", err)
	}
	if section.Week != 12 || section.DayOrder != 3 {
		t.Errorf("got week %d day %d, want 12/3", section.Week, section.DayOrder)
	}
	if section.Reference != "Psalms 46-50" || section.Title != "Songs of refuge" {
		t.Errorf("got %q / %q", section.Reference, section.Title)
	}
}
