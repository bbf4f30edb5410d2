package branding

import (
	"fmt"
	"strings"
)

// AssetType names one branding category. The set is closed: each type carries
// its own display-field and fallback rule, so adding one means adding a rule.
type AssetType string

const (
	TypeLogo   AssetType = "logo"
	TypeFooter AssetType = "footer"
)

// AllTypes returns the full configured set, suitable for a whole-portal
// resolution round.
func AllTypes() []AssetType {
	return []AssetType{TypeLogo, TypeFooter}
}

// ParseAssetType validates a raw string against the known types.
func ParseAssetType(s string) (AssetType, error) {
	switch t := AssetType(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeLogo, TypeFooter:
		return t, nil
	default:
		return "", fmt.Errorf("branding: unknown asset type %q", s)
	}
}

// Asset is the wire representation of one branding asset. At most one exists
// per type at the backend; latest write wins. The authoritative payload field
// depends on the type: URL for logo, Text for footer.
type Asset struct {
	AssetType   AssetType `json:"assetType"`
	ContentType string    `json:"contentType,omitempty"`
	FileName    string    `json:"fileName,omitempty"`
	Text        string    `json:"text,omitempty"`
	URL         string    `json:"url,omitempty"`
}

// displayField selects the field the portal actually renders for this type.
func (t AssetType) displayField(a *Asset) string {
	if a == nil {
		return ""
	}
	switch t {
	case TypeLogo:
		return a.URL
	case TypeFooter:
		return a.Text
	}
	return ""
}

// Payload carries the body of a write operation: raw file bytes for a logo,
// literal text for a footer. Exactly one of File/Text is meaningful per type.
type Payload struct {
	FileName    string
	ContentType string
	File        []byte
	Text        string
}

// Defaults holds the built-in display values, one per asset type. It is built
// once at startup from configuration and passed in explicitly; nothing in this
// package keeps ambient fallback state.
type Defaults struct {
	LogoURL    string
	FooterText string
}

// For returns the fallback value for the given type.
func (d Defaults) For(t AssetType) string {
	switch t {
	case TypeLogo:
		return d.LogoURL
	case TypeFooter:
		return d.FooterText
	}
	return ""
}
