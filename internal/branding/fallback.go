package branding

import "strings"

// Source says where a resolved display value came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

type fetchState int

const (
	fetchValue fetchState = iota
	fetchAbsent
	fetchFailed
)

// FetchResult is the outcome of one GetByType call as an explicit tagged
// variant: a value, a legitimate absence, or a failure. Resolve dispatches
// exhaustively over the tag instead of poking at nullable fields.
type FetchResult struct {
	state fetchState
	asset *Asset
	err   error
}

// FetchedValue wraps a fetched asset. A nil asset counts as absent.
func FetchedValue(a *Asset) FetchResult {
	if a == nil {
		return FetchedAbsent()
	}
	return FetchResult{state: fetchValue, asset: a}
}

// FetchedAbsent marks the "operator never configured this asset" state.
func FetchedAbsent() FetchResult {
	return FetchResult{state: fetchAbsent}
}

// FetchFailed wraps a transport or decode failure.
func FetchFailed(err error) FetchResult {
	return FetchResult{state: fetchFailed, err: err}
}

// Outcome is the settled display decision for one asset type in one round.
// Value is always concrete; Err is diagnostic only and set when the fetch
// failed and the fallback was used.
type Outcome struct {
	Value  string
	Source Source
	Err    error
}

// Resolve decides what the portal displays for one asset type. This is the
// single place that judges "good enough to show": a failed fetch, an absent
// asset, or an empty/whitespace-only display field all yield the configured
// default; anything else is the fetched field verbatim, untrimmed.
func Resolve(t AssetType, fetched FetchResult, defaults Defaults) Outcome {
	switch fetched.state {
	case fetchFailed:
		return Outcome{Value: defaults.For(t), Source: SourceFallback, Err: fetched.err}
	case fetchAbsent:
		return Outcome{Value: defaults.For(t), Source: SourceFallback}
	case fetchValue:
		v := t.displayField(fetched.asset)
		if strings.TrimSpace(v) == "" {
			return Outcome{Value: defaults.For(t), Source: SourceFallback}
		}
		return Outcome{Value: v, Source: SourceRemote}
	}
	return Outcome{Value: defaults.For(t), Source: SourceFallback}
}
