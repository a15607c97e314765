package analyzer

import (
	"reflect"
	"testing"
)

func termIDs(terms []IndividualTerm) []string {
	ids := make([]string, 0, len(terms))
	for _, term := range terms {
		ids = append(ids, term.ID)
	}
	return ids
}

func TestExtractTermsEssentialAlwaysFirst(t *testing.T) {
	for _, text := range []string{"", "we collect data", "cookies and marketing and location"} {
		terms := ExtractTerms(text)
		if len(terms) == 0 {
			t.Fatal("ExtractTerms returned empty list")
		}
		first := terms[0]
		if first.ID != "essential-service" || !first.IsRequired || first.Risk != SeverityLow {
			t.Errorf("first term must be required essential-service, got %+v", first)
		}

		// essential-service 必须且只出现一次
		count := 0
		for _, term := range terms {
			if term.ID == "essential-service" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("essential-service appeared %d times", count)
		}
	}
}

func TestExtractTermsGating(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"no keywords", "hello world", []string{"essential-service"}},
		{"collect", "we collect things", []string{"essential-service", "data-collection"}},
		{"marketing", "promotional offers", []string{"essential-service", "marketing"}},
		{"analytics", "usage tracking enabled", []string{"essential-service", "analytics"}},
		{"sharing", "third parties", []string{"essential-service", "third-party-sharing"}},
		{"location", "gps position", []string{"essential-service", "location-data"}},
		{"cookies", "cookie banner", []string{"essential-service", "cookies"}},
		{
			"all keywords keep fixed order",
			"collect marketing tracking share location cookie",
			[]string{"essential-service", "data-collection", "marketing", "analytics", "third-party-sharing", "location-data", "cookies"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := termIDs(ExtractTerms(tt.text))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractTerms ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractTermsSensitiveDataRisk(t *testing.T) {
	terms := ExtractTerms("we collect data")
	if terms[1].Risk != SeverityMedium {
		t.Errorf("data-collection without 'sensitive' should be medium, got %s", terms[1].Risk)
	}

	terms = ExtractTerms("we collect sensitive data")
	if terms[1].Risk != SeverityHigh {
		t.Errorf("data-collection with 'sensitive' should be high, got %s", terms[1].Risk)
	}
}

func TestExtractTermsOnlyEssentialRequired(t *testing.T) {
	terms := ExtractTerms("collect marketing tracking share location cookie")
	for _, term := range terms[1:] {
		if term.IsRequired {
			t.Errorf("optional term %s must not be required", term.ID)
		}
	}
}
