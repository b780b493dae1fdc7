package fetch

import "testing"

func TestParseURL(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantURL  string
		wantName string
		wantErr  bool
	}{
		{
			name:     "full history URL",
			raw:      "https://www.parkrun.org.uk/bushy/results/eventhistory/",
			wantURL:  "https://www.parkrun.org.uk/bushy/results/eventhistory/",
			wantName: "bushy",
		},
		{
			name:     "event home URL",
			raw:      "https://www.parkrun.org.uk/bushy/",
			wantURL:  "https://www.parkrun.org.uk/bushy/results/eventhistory/",
			wantName: "bushy",
		},
		{
			name:     "bare host and name",
			raw:      "parkrun.org.uk/bushy",
			wantURL:  "https://www.parkrun.org.uk/bushy/results/eventhistory/",
			wantName: "bushy",
		},
		{
			name:     "http and no trailing slash",
			raw:      "http://parkrun.com.au/newfarm/results/eventhistory",
			wantURL:  "https://www.parkrun.com.au/newfarm/results/eventhistory/",
			wantName: "newfarm",
		},
		{
			name:     "mixed case normalized",
			raw:      "HTTPS://WWW.PARKRUN.ORG.UK/Bushy/",
			wantURL:  "https://www.parkrun.org.uk/bushy/results/eventhistory/",
			wantName: "bushy",
		},
		{name: "wrong domain", raw: "https://www.example.com/bushy/", wantErr: true},
		{name: "no tld", raw: "https://parkrun/bushy/", wantErr: true},
		{name: "numeric event name", raw: "https://www.parkrun.org.uk/bushy5/", wantErr: true},
		{name: "wrong path", raw: "https://www.parkrun.org.uk/bushy/results/latestresults/", wantErr: true},
		{name: "too many parts", raw: "https://www.parkrun.org.uk/bushy/results/", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, name, err := ParseURL(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected an error for %q", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseURL(%q) failed: %v", tt.raw, err)
			}
			if url != tt.wantURL {
				t.Errorf("url = %q, expected %q", url, tt.wantURL)
			}
			if name != tt.wantName {
				t.Errorf("name = %q, expected %q", name, tt.wantName)
			}
		})
	}
}
