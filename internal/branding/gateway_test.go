package branding

import (
	"context"
	"errors"
	"testing"
)

// recordingMutator counts write calls so precondition tests can prove no
// network attempt was made.
type recordingMutator struct {
	calls     int
	lastToken string
}

func (m *recordingMutator) Upload(_ context.Context, t AssetType, _ Payload, token string) (*Asset, error) {
	m.calls++
	m.lastToken = token
	return &Asset{AssetType: t}, nil
}

func (m *recordingMutator) Update(_ context.Context, t AssetType, _ Payload, token string) (*Asset, error) {
	m.calls++
	m.lastToken = token
	return &Asset{AssetType: t}, nil
}

func (m *recordingMutator) Remove(_ context.Context, _ AssetType, token string) error {
	m.calls++
	m.lastToken = token
	return nil
}

func TestGateway_NoCredential(t *testing.T) {
	m := &recordingMutator{}

	for _, g := range []*Gateway{
		NewGateway(m, nil, nil),
		NewGateway(m, func() string { return "" }, nil),
		NewGateway(m, func() string { return "   " }, nil),
	} {
		if _, err := g.Upload(context.Background(), TypeFooter, Payload{Text: "x"}); !errors.Is(err, ErrNoCredential) {
			t.Fatalf("upload err=%v", err)
		}
		if _, err := g.Update(context.Background(), TypeFooter, Payload{Text: "x"}); !errors.Is(err, ErrNoCredential) {
			t.Fatalf("update err=%v", err)
		}
		if err := g.Remove(context.Background(), TypeLogo); !errors.Is(err, ErrNoCredential) {
			t.Fatalf("remove err=%v", err)
		}
	}
	if m.calls != 0 {
		t.Fatalf("network calls=%d, want 0", m.calls)
	}
}

func TestGateway_CapabilityDenied(t *testing.T) {
	m := &recordingMutator{}
	g := NewGateway(m, func() string { return "tok" }, func() bool { return false })

	if _, err := g.Upload(context.Background(), TypeFooter, Payload{Text: "x"}); !errors.Is(err, ErrNotPermitted) {
		t.Fatalf("err=%v", err)
	}
	if err := g.Remove(context.Background(), TypeLogo); !errors.Is(err, ErrNotPermitted) {
		t.Fatalf("err=%v", err)
	}
	if m.calls != 0 {
		t.Fatalf("network calls=%d, want 0", m.calls)
	}
}

func TestGateway_PassesTokenThrough(t *testing.T) {
	m := &recordingMutator{}
	g := NewGateway(m, func() string { return " tok-9 " }, func() bool { return true })

	a, err := g.Upload(context.Background(), TypeFooter, Payload{Text: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if a == nil || a.AssetType != TypeFooter {
		t.Fatalf("asset=%+v", a)
	}
	if m.lastToken != "tok-9" {
		t.Fatalf("token=%q", m.lastToken)
	}

	if err := g.Remove(context.Background(), TypeLogo); err != nil {
		t.Fatal(err)
	}
	if m.calls != 2 {
		t.Fatalf("calls=%d", m.calls)
	}
}

func TestGateway_NilCapabilityMeansServerDecides(t *testing.T) {
	m := &recordingMutator{}
	g := NewGateway(m, func() string { return "tok" }, nil)
	if _, err := g.Update(context.Background(), TypeFooter, Payload{Text: "x"}); err != nil {
		t.Fatal(err)
	}
	if m.calls != 1 {
		t.Fatalf("calls=%d", m.calls)
	}
}
