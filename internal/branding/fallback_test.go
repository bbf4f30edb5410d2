package branding

import (
	"errors"
	"testing"
)

var testDefaults = Defaults{
	LogoURL:    "/static/default-logo.svg",
	FooterText: "Powered by Brandkit",
}

func TestResolve_RemoteValueVerbatim(t *testing.T) {
	out := Resolve(TypeLogo, FetchedValue(&Asset{AssetType: TypeLogo, URL: "https://cdn.example.com/logo.png"}), testDefaults)
	if out.Value != "https://cdn.example.com/logo.png" {
		t.Fatalf("value=%q", out.Value)
	}
	if out.Source != SourceRemote {
		t.Fatalf("source=%q", out.Source)
	}
	if out.Err != nil {
		t.Fatalf("err=%v", out.Err)
	}

	// No trimming: surrounding whitespace around a non-empty value survives.
	out = Resolve(TypeFooter, FetchedValue(&Asset{AssetType: TypeFooter, Text: "  © Example Corp  "}), testDefaults)
	if out.Value != "  © Example Corp  " {
		t.Fatalf("value=%q", out.Value)
	}
	if out.Source != SourceRemote {
		t.Fatalf("source=%q", out.Source)
	}
}

func TestResolve_Fallbacks(t *testing.T) {
	boom := errors.New("boom")

	cases := []struct {
		name    string
		typ     AssetType
		fetched FetchResult
		want    string
		wantErr bool
	}{
		{"absent logo", TypeLogo, FetchedAbsent(), testDefaults.LogoURL, false},
		{"absent footer", TypeFooter, FetchedAbsent(), testDefaults.FooterText, false},
		{"failed logo", TypeLogo, FetchFailed(boom), testDefaults.LogoURL, true},
		{"failed footer", TypeFooter, FetchFailed(boom), testDefaults.FooterText, true},
		{"empty url", TypeLogo, FetchedValue(&Asset{AssetType: TypeLogo}), testDefaults.LogoURL, false},
		{"whitespace url", TypeLogo, FetchedValue(&Asset{AssetType: TypeLogo, URL: "   "}), testDefaults.LogoURL, false},
		{"empty text", TypeFooter, FetchedValue(&Asset{AssetType: TypeFooter, Text: ""}), testDefaults.FooterText, false},
		{"whitespace text", TypeFooter, FetchedValue(&Asset{AssetType: TypeFooter, Text: " \t\n"}), testDefaults.FooterText, false},
		{"nil asset", TypeLogo, FetchedValue(nil), testDefaults.LogoURL, false},
		{"wrong field set", TypeFooter, FetchedValue(&Asset{AssetType: TypeFooter, URL: "https://x"}), testDefaults.FooterText, false},
	}
	for _, tc := range cases {
		out := Resolve(tc.typ, tc.fetched, testDefaults)
		if out.Value != tc.want {
			t.Fatalf("%s: value=%q want %q", tc.name, out.Value, tc.want)
		}
		if out.Source != SourceFallback {
			t.Fatalf("%s: source=%q", tc.name, out.Source)
		}
		if (out.Err != nil) != tc.wantErr {
			t.Fatalf("%s: err=%v", tc.name, out.Err)
		}
	}
}

func TestParseAssetType(t *testing.T) {
	for _, raw := range []string{"logo", " LOGO ", "Footer"} {
		if _, err := ParseAssetType(raw); err != nil {
			t.Fatalf("%q: %v", raw, err)
		}
	}
	if _, err := ParseAssetType("banner"); err == nil {
		t.Fatal("expected error")
	}
	if _, err := ParseAssetType(""); err == nil {
		t.Fatal("expected error")
	}
}

func TestDefaultsFor(t *testing.T) {
	if got := testDefaults.For(TypeLogo); got != testDefaults.LogoURL {
		t.Fatalf("got %q", got)
	}
	if got := testDefaults.For(TypeFooter); got != testDefaults.FooterText {
		t.Fatalf("got %q", got)
	}
}
